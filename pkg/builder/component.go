package builder

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/golia-dev/golia/pkg/style"
)

// Component bundles an HTML document with its styles, scripts, and
// metadata, and renders the complete page.
type Component struct {
	doc         *Document
	css         *style.Sheet
	scripts     []string
	headScripts []string
	metadata    map[string]any
}

// NewComponent creates an empty component.
func NewComponent() *Component {
	return &Component{
		doc:      NewDocument(),
		css:      style.NewSheet(),
		metadata: map[string]any{"version": "0.2.0"},
	}
}

// Doc returns the component's document.
func (c *Component) Doc() *Document { return c.doc }

// CSS returns the component's stylesheet.
func (c *Component) CSS() *style.Sheet { return c.css }

// AddScript appends a JavaScript block to the body, or the head when
// inHead is set.
func (c *Component) AddScript(code string, inHead bool) *Component {
	if inHead {
		c.headScripts = append(c.headScripts, code)
	} else {
		c.scripts = append(c.scripts, code)
	}
	return c
}

// SetMetadata stores a metadata entry.
func (c *Component) SetMetadata(key string, value any) *Component {
	c.metadata[key] = value
	return c
}

// Metadata returns the stored metadata value for key.
func (c *Component) Metadata(key string) (any, bool) {
	v, ok := c.metadata[key]
	return v, ok
}

// MetadataJSON serializes the component metadata.
func (c *Component) MetadataJSON() (string, error) {
	b, err := json.MarshalIndent(c.metadata, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Render assembles the complete HTML document. Empty sections are
// skipped entirely rather than leaving blank lines.
func (c *Component) Render(minifyCSS bool) string {
	headOut := c.doc.RenderHead(1)
	bodyOut := c.doc.RenderBody(1)

	var cssBlock string
	if !c.css.Empty() {
		cssBlock = "<style>\n" + c.css.Render(minifyCSS) + "\n</style>"
	}
	var headJS string
	if len(c.headScripts) > 0 {
		headJS = "<script>" + strings.Join(c.headScripts, "\n\t") + "</script>"
	}
	var bodyJS string
	if len(c.scripts) > 0 {
		bodyJS = "<script>\n\t" + strings.Join(c.scripts, "\n\t") + "\n</script>"
	}

	parts := []string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		headOut,
		cssBlock,
		headJS,
		"</head>",
		"<body>",
		bodyOut,
		bodyJS,
		"</body>",
		"</html>",
	}

	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// Validate checks the document structure and rejects script and style
// payloads that would break out of their wrapping tags.
func (c *Component) Validate() bool {
	if !c.doc.Validate() {
		return false
	}
	for _, js := range append(append([]string{}, c.scripts...), c.headScripts...) {
		if strings.Contains(js, "</script>") {
			return false
		}
	}
	for _, rule := range c.css.Rules {
		if strings.Contains(rule, "</style>") {
			return false
		}
	}
	return true
}

// Merge appends another component's document children, styles, and
// scripts into this one.
func (c *Component) Merge(other *Component) *Component {
	c.doc.head.Children = append(c.doc.head.Children, other.doc.head.Children...)
	c.doc.body.Children = append(c.doc.body.Children, other.doc.body.Children...)
	c.css.Merge(other.css)
	c.scripts = append(c.scripts, other.scripts...)
	c.headScripts = append(c.headScripts, other.headScripts...)
	return c
}

// Clear resets the component to its empty state.
func (c *Component) Clear() {
	c.doc.Clear()
	c.css.Clear()
	c.scripts = nil
	c.headScripts = nil
	c.metadata = map[string]any{}
}

// SaveFile renders the component and writes it to path.
func (c *Component) SaveFile(path string, minifyCSS bool) error {
	return os.WriteFile(path, []byte(c.Render(minifyCSS)), 0o644)
}

// String renders with default settings.
func (c *Component) String() string {
	return c.Render(false)
}
