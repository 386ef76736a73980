package builder

import (
	"fmt"
	"strings"

	"github.com/golia-dev/golia/pkg/dom"
)

// Meta appends a generic meta tag to the head. Boolean true values are
// converted to explicit empty strings so they render as attr="".
func (c *Component) Meta(attrs dom.Attrs) error {
	processed := make(dom.Attrs, 0, len(attrs))
	for _, a := range attrs {
		if a.Value == true {
			processed.Set(a.Key, "")
		} else {
			processed.Set(a.Key, a.Value)
		}
	}
	_, err := c.doc.AddHead("meta", "", processed)
	return err
}

// MetaCharset sets the charset meta tag. An empty encoding defaults to
// UTF-8.
func (c *Component) MetaCharset(encoding string) error {
	if encoding == "" {
		encoding = "UTF-8"
	}
	return c.Meta(dom.A("charset", encoding))
}

// MetaViewport sets the viewport meta tag. An empty content defaults
// to the standard mobile viewport.
func (c *Component) MetaViewport(content string) error {
	if content == "" {
		content = "width=device-width, initial-scale=1.0"
	}
	return c.Meta(dom.A("name", "viewport", "content", content))
}

// MetaDescription sets the page description.
func (c *Component) MetaDescription(content string) error {
	return c.Meta(dom.A("name", "description", "content", content))
}

// MetaKeywords sets the keywords meta tag from its arguments.
func (c *Component) MetaKeywords(keywords ...string) error {
	return c.Meta(dom.A("name", "keywords", "content", strings.Join(keywords, ", ")))
}

// MetaHTTPEquiv sets an http-equiv meta tag.
func (c *Component) MetaHTTPEquiv(equiv, content string) error {
	return c.Meta(dom.A("http_equiv", equiv, "content", content))
}

// MetaOG sets an Open Graph property.
func (c *Component) MetaOG(property, content string) error {
	return c.Meta(dom.A("property", "og:"+property, "content", content))
}

// MetaTwitter sets a Twitter Card property.
func (c *Component) MetaTwitter(name, content string) error {
	return c.Meta(dom.A("name", "twitter:"+name, "content", content))
}

// MetaRefresh sets a refresh directive, optionally redirecting to url.
func (c *Component) MetaRefresh(seconds int, url string) error {
	content := fmt.Sprintf("%d", seconds)
	if url != "" {
		content = fmt.Sprintf("%d;url=%s", seconds, url)
	}
	return c.MetaHTTPEquiv("refresh", content)
}

// MetaAuthor sets the author meta tag.
func (c *Component) MetaAuthor(name string) error {
	return c.Meta(dom.A("name", "author", "content", name))
}

// MetaRobots sets the robots meta tag. An empty content defaults to
// allowing indexing.
func (c *Component) MetaRobots(content string) error {
	if content == "" {
		content = "index, follow"
	}
	return c.Meta(dom.A("name", "robots", "content", content))
}

// MetaThemeColor sets the theme-color meta tag.
func (c *Component) MetaThemeColor(color string) error {
	return c.Meta(dom.A("name", "theme-color", "content", color))
}

// MetaVerification sets a site verification meta tag for a service
// such as "google" or "bing".
func (c *Component) MetaVerification(service, content string) error {
	return c.Meta(dom.A("name", service+"-site-verification", "content", content))
}
