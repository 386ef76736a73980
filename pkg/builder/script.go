package builder

import (
	"fmt"

	"github.com/golia-dev/golia/pkg/dom"
)

// AddScriptf appends a formatted JavaScript block to the body.
func (c *Component) AddScriptf(format string, args ...any) *Component {
	return c.AddScript(fmt.Sprintf(format, args...), false)
}

// AddExternalScript appends a <script src> reference. async and defer
// render as bare attributes when set.
func (c *Component) AddExternalScript(src string, async, deferred, inHead bool) error {
	attrs := dom.A("src", src)
	if async {
		attrs.Set("async", true)
	}
	if deferred {
		attrs.Set("defer", true)
	}

	var err error
	if inHead {
		_, err = c.doc.AddHead("script", "", attrs)
	} else {
		_, err = c.doc.AddBody("script", "", attrs)
	}
	return err
}

// AddExternalStyle appends a stylesheet <link> to the head. media is
// optional.
func (c *Component) AddExternalStyle(href, media string) error {
	attrs := dom.A("rel", "stylesheet", "href", href)
	if media != "" {
		attrs.Set("media", media)
	}
	_, err := c.doc.AddHead("link", "", attrs)
	return err
}
