// Package transpile reconstructs builder-call code from raw HTML text.
//
// The transpiler is a best-effort approximation, not an HTML5 parser:
// it scans the input once with a single tag/text alternation, tracks
// nesting with an explicit open-tag stack, and silently tolerates
// malformed markup. Stray closing tags are dropped, and opening tags
// without an explicit trailing slash are always treated as containers,
// even for known void elements.
package transpile

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	doctypeRe = regexp.MustCompile(`(?i)<!DOCTYPE html>`)
	headRe    = regexp.MustCompile(`(?s)<head>(.*?)</head>`)
	bodyRe    = regexp.MustCompile(`(?s)<body>(.*?)</body>`)

	// tokenRe matches, in priority order: a closing tag, an opening or
	// self-closing tag, or a run of text up to the next tag.
	tokenRe = regexp.MustCompile(`(?s)<(/?)(\w+)(.*?)(/?)>|([^<]+)`)

	// attrPairRe extracts name="value" and name='value' pairs.
	attrPairRe = regexp.MustCompile(`(\w+)=["'](.*?)["']`)
)

// attrRenames maps HTML attribute names that collide with builder
// reserved words to their escaped builder spellings. This is the
// inverse of the dom package's normalization table.
var attrRenames = map[string]string{
	"class": "klass",
	"for":   "for_",
	"async": "async_",
	"type":  "type_",
}

// indentUnit is the emitted indentation per statement nesting level.
const indentUnit = "    "

// Document converts a complete HTML document to builder code. The
// first head and body blocks are transpiled independently; a missing
// section contributes nothing. The result always ends with a render
// statement.
func Document(html string) string {
	code := []string{
		"doc := golia.NewComponent()",
		"",
	}

	if doctypeRe.MatchString(html) {
		code = append(code, "// doctype declaration present in source")
	}

	if m := headRe.FindStringSubmatch(html); m != nil {
		code = append(code, "", "// head section")
		code = append(code, parseSection(m[1], "head")...)
	}
	if m := bodyRe.FindStringSubmatch(html); m != nil {
		code = append(code, "", "// body section")
		code = append(code, parseSection(m[1], "body")...)
	}

	code = append(code, "", "// render the final document", "rendered := doc.Render()")
	return strings.Join(code, "\n")
}

// parseSection emits one statement line per tag-open or text event in
// a linear left-to-right scan of the section content.
//
// The indent level starts at 1 and never drops below it. Closing tags
// only pop when they match the top of the open-tag stack; mismatched
// closers are ignored without touching the stack. Opening tags push
// unless the source itself marked them self-closing with a trailing
// slash. There is no void-element table here: a bare <br> pushes like
// any container and skews the depth of the following siblings.
func parseSection(content, section string) []string {
	var lines []string
	indent := 1
	var stack []string

	for _, m := range tokenRe.FindAllStringSubmatch(content, -1) {
		closing, name, attrs, selfClose, text := m[1], m[2], m[3], m[4], m[5]

		if text != "" {
			clean := strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
			if clean != "" {
				lines = append(lines, fmt.Sprintf("%s%s.text(%q)", indentOf(indent), section, clean))
			}
			continue
		}

		if closing == "/" {
			if len(stack) > 0 && stack[len(stack)-1] == name {
				stack = stack[:len(stack)-1]
				indent = max(1, indent-1)
			}
			continue
		}

		lines = append(lines, fmt.Sprintf("%s%s.%s(%s)", indentOf(indent), section, name, convertAttrs(attrs)))

		if selfClose != "/" {
			stack = append(stack, name)
			indent++
		}
	}

	return lines
}

// indentOf returns the indentation for a statement at the given level.
// Level 1 statements sit flush left.
func indentOf(level int) string {
	if level <= 1 {
		return ""
	}
	return strings.Repeat(indentUnit, level-1)
}

// convertAttrs rewrites an HTML attribute string as a comma-joined
// builder argument list. Reserved-word-colliding names are renamed to
// their escaped spellings, order follows first appearance, and
// duplicate names keep the last value.
func convertAttrs(attrs string) string {
	var order []string
	values := map[string]string{}

	for _, m := range attrPairRe.FindAllStringSubmatch(attrs, -1) {
		name, value := m[1], m[2]
		if renamed, ok := attrRenames[name]; ok {
			name = renamed
		}
		if _, seen := values[name]; !seen {
			order = append(order, name)
		}
		values[name] = value
	}

	args := make([]string, len(order))
	for i, name := range order {
		args[i] = fmt.Sprintf(`%s="%s"`, name, values[name])
	}
	return strings.Join(args, ", ")
}
