// Package style assembles CSS rule and keyframe strings for a component.
package style

import (
	"fmt"
	"strings"
)

// Decl is a single property declaration. Declarations keep their
// insertion order in the rendered rule.
type Decl struct {
	Name  string
	Value string
}

// D builds a declaration list from alternating name/value arguments.
func D(nv ...string) []Decl {
	decls := make([]Decl, 0, len(nv)/2)
	for i := 0; i+1 < len(nv); i += 2 {
		decls = append(decls, Decl{Name: nv[i], Value: nv[i+1]})
	}
	return decls
}

// Frame is one keyframe step. Step is the percentage, written either
// bare ("50") or with the builder underscore suffix ("50_").
type Frame struct {
	Step  string
	Decls []Decl
}

// vendorPrefixed maps properties to the prefixes they need.
var vendorPrefixed = map[string][]string{
	"background-clip":  {"-webkit-"},
	"user-select":      {"-webkit-", "-moz-", "-ms-"},
	"transition":       {"-webkit-"},
	"transform":        {"-webkit-"},
	"animation":        {"-webkit-"},
	"appearance":       {"-webkit-", "-moz-"},
	"backdrop-filter":  {"-webkit-"},
	"clip-path":        {"-webkit-"},
	"text-size-adjust": {"-webkit-", "-moz-", "-ms-"},
}

// Sheet holds pre-formatted CSS rule and keyframe strings in insertion
// order. It is cleared alongside the document by the owning component.
type Sheet struct {
	Rules     []string
	Keyframes []string
}

// NewSheet creates an empty stylesheet.
func NewSheet() *Sheet {
	return &Sheet{}
}

// convertPropName converts builder-style property names to CSS form:
// a leading underscore becomes a pseudo-class colon (_hover -> :hover),
// remaining underscores become hyphens (font_size -> font-size).
func convertPropName(name string) string {
	if strings.HasPrefix(name, "_") {
		return ":" + name[1:]
	}
	return strings.ReplaceAll(name, "_", "-")
}

// addVendorPrefixes appends prefixed copies after each property that
// needs them, preserving the original ordering.
func addVendorPrefixes(decls []Decl) []Decl {
	out := make([]Decl, 0, len(decls))
	for _, d := range decls {
		out = append(out, d)
		for _, prefix := range vendorPrefixed[convertPropName(d.Name)] {
			out = append(out, Decl{Name: prefix + convertPropName(d.Name), Value: d.Value})
		}
	}
	return out
}

// AddRule appends a CSS rule. mediaQuery, when non-empty, wraps the
// rule (e.g. "@media (min-width: 800px)").
func (s *Sheet) AddRule(selector string, decls []Decl, mediaQuery string) {
	var b strings.Builder
	for _, d := range addVendorPrefixes(decls) {
		fmt.Fprintf(&b, "    %s: %s;\n", convertPropName(d.Name), d.Value)
	}

	rule := fmt.Sprintf("%s {\n%s}", selector, b.String())
	if mediaQuery != "" {
		rule = fmt.Sprintf("%s {\n%s\n}", mediaQuery, rule)
	}
	s.Rules = append(s.Rules, rule)
}

// AddKeyframes appends a @keyframes animation. With vendorPrefix,
// -webkit-, -moz-, and -o- copies are appended as well.
func (s *Sheet) AddKeyframes(name string, frames []Frame, vendorPrefix bool) {
	rendered := make([]string, len(frames))
	for i, frame := range frames {
		var b strings.Builder
		for _, d := range addVendorPrefixes(frame.Decls) {
			fmt.Fprintf(&b, "\t%s: %s;\n", convertPropName(d.Name), d.Value)
		}
		step := strings.ReplaceAll(frame.Step, "_", "")
		rendered[i] = fmt.Sprintf("    %s%% {\n%s    }", step, b.String())
	}
	body := strings.Join(rendered, "\n")

	s.Keyframes = append(s.Keyframes, fmt.Sprintf("@keyframes %s {\n%s\n}", name, body))
	if vendorPrefix {
		for _, prefix := range []string{"-webkit-", "-moz-", "-o-"} {
			s.Keyframes = append(s.Keyframes, fmt.Sprintf("@%skeyframes %s {\n%s\n}", prefix, name, body))
		}
	}
}

// AddFontFace appends a @font-face rule for the given family and source.
func (s *Sheet) AddFontFace(family, src string, extra ...Decl) {
	decls := append([]Decl{
		{Name: "font-family", Value: family},
		{Name: "src", Value: src},
	}, extra...)
	s.AddRule("@font-face", decls, "")
}

// Render returns the stylesheet text. Minified output is produced by
// the CSS minifier; pretty output indents every rule one level for
// embedding inside a <style> block.
func (s *Sheet) Render(minified bool) string {
	if minified {
		return s.renderMinified()
	}
	return s.renderPretty()
}

func (s *Sheet) renderPretty() string {
	var out []string
	for _, rule := range s.Rules {
		out = append(out, indentRule(rule))
	}
	for _, kf := range s.Keyframes {
		out = append(out, indentKeyframe(kf))
	}
	return strings.Join(out, "\n")
}

// indentRule shifts a rule one level right.
func indentRule(rule string) string {
	lines := strings.Split(rule, "\n")
	for i, line := range lines {
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}

// indentKeyframe shifts a keyframe block right, re-aligning the frame
// bodies under the @keyframes header.
func indentKeyframe(kf string) string {
	lines := strings.Split(kf, "\n")
	if len(lines) < 2 {
		return "    " + kf
	}
	out := make([]string, len(lines))
	out[0] = "    " + lines[0]
	for i := 1; i < len(lines)-1; i++ {
		out[i] = "        " + strings.TrimSpace(lines[i])
	}
	out[len(lines)-1] = "    " + lines[len(lines)-1]
	return strings.Join(out, "\n")
}

// Empty reports whether the sheet has no rules or keyframes.
func (s *Sheet) Empty() bool {
	return len(s.Rules) == 0 && len(s.Keyframes) == 0
}

// Merge appends another sheet's rules and keyframes.
func (s *Sheet) Merge(other *Sheet) {
	s.Rules = append(s.Rules, other.Rules...)
	s.Keyframes = append(s.Keyframes, other.Keyframes...)
}

// Clear removes all rules and keyframes.
func (s *Sheet) Clear() {
	s.Rules = nil
	s.Keyframes = nil
}

// String renders with pretty formatting.
func (s *Sheet) String() string {
	return s.Render(false)
}
