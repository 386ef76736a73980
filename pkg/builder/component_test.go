package builder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/golia-dev/golia/pkg/dom"
	"github.com/golia-dev/golia/pkg/style"
)

func TestComponentRenderFullDocument(t *testing.T) {
	c := NewComponent()
	if err := c.MetaCharset(""); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Doc().AddHead("title", "My Page", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Doc().AddBody("p", "hello", nil); err != nil {
		t.Fatal(err)
	}
	c.CSS().AddRule("body", style.D("color", "red"), "")
	c.AddScript("console.log('hi');", false)

	want := strings.Join([]string{
		"<!DOCTYPE html>",
		"<html>",
		"<head>",
		"\t<meta charset=\"UTF-8\" />",
		"\t<title>My Page</title>",
		"<style>",
		"    body {",
		"        color: red;",
		"    }",
		"</style>",
		"</head>",
		"<body>",
		"\t<p>hello</p>",
		"<script>",
		"\tconsole.log('hi');",
		"</script>",
		"</body>",
		"</html>",
	}, "\n")

	if got := c.Render(false); got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestComponentRenderEmpty(t *testing.T) {
	want := "<!DOCTYPE html>\n<html>\n<head>\n</head>\n<body>\n</body>\n</html>"
	if got := NewComponent().Render(false); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestComponentHeadScripts(t *testing.T) {
	c := NewComponent()
	c.AddScript("var a = 1;", true)

	got := c.Render(false)
	if !strings.Contains(got, "<script>var a = 1;</script>") {
		t.Errorf("head script block missing or misformatted:\n%s", got)
	}
	head := got[:strings.Index(got, "<body>")]
	if !strings.Contains(head, "var a = 1;") {
		t.Errorf("head script rendered outside the head:\n%s", got)
	}
}

func TestMetaHelpers(t *testing.T) {
	tests := []struct {
		name string
		call func(c *Component) error
		want string
	}{
		{
			name: "charset default",
			call: func(c *Component) error { return c.MetaCharset("") },
			want: `<meta charset="UTF-8" />`,
		},
		{
			name: "viewport default",
			call: func(c *Component) error { return c.MetaViewport("") },
			want: `<meta name="viewport" content="width=device-width, initial-scale=1.0" />`,
		},
		{
			name: "description",
			call: func(c *Component) error { return c.MetaDescription("A page") },
			want: `<meta name="description" content="A page" />`,
		},
		{
			name: "keywords joined",
			call: func(c *Component) error { return c.MetaKeywords("go", "html") },
			want: `<meta name="keywords" content="go, html" />`,
		},
		{
			name: "http-equiv",
			call: func(c *Component) error { return c.MetaHTTPEquiv("refresh", "30") },
			want: `<meta http-equiv="refresh" content="30" />`,
		},
		{
			name: "refresh with url",
			call: func(c *Component) error { return c.MetaRefresh(5, "/next") },
			want: `<meta http-equiv="refresh" content="5;url=/next" />`,
		},
		{
			name: "open graph",
			call: func(c *Component) error { return c.MetaOG("title", "OG Title") },
			want: `<meta property="og:title" content="OG Title" />`,
		},
		{
			name: "twitter card",
			call: func(c *Component) error { return c.MetaTwitter("card", "summary") },
			want: `<meta name="twitter:card" content="summary" />`,
		},
		{
			name: "robots default",
			call: func(c *Component) error { return c.MetaRobots("") },
			want: `<meta name="robots" content="index, follow" />`,
		},
		{
			name: "verification",
			call: func(c *Component) error { return c.MetaVerification("google", "tok") },
			want: `<meta name="google-site-verification" content="tok" />`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComponent()
			if err := tt.call(c); err != nil {
				t.Fatal(err)
			}
			if got := c.Doc().RenderHead(0); got != tt.want {
				t.Errorf("RenderHead() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMetaBareValueRendersEmpty(t *testing.T) {
	c := NewComponent()
	if err := c.Meta(dom.A("name", "flag", "content", true)); err != nil {
		t.Fatal(err)
	}
	want := `<meta name="flag" content="" />`
	if got := c.Doc().RenderHead(0); got != want {
		t.Errorf("RenderHead() = %q, want %q", got, want)
	}
}

func TestAddExternalScript(t *testing.T) {
	c := NewComponent()
	if err := c.AddExternalScript("/app.js", true, true, false); err != nil {
		t.Fatal(err)
	}
	want := `<script src="/app.js" async defer></script>`
	if got := c.Doc().RenderBody(0); got != want {
		t.Errorf("RenderBody() = %q, want %q", got, want)
	}
}

func TestAddExternalStyle(t *testing.T) {
	c := NewComponent()
	if err := c.AddExternalStyle("/main.css", "print"); err != nil {
		t.Fatal(err)
	}
	want := `<link rel="stylesheet" href="/main.css" media="print" />`
	if got := c.Doc().RenderHead(0); got != want {
		t.Errorf("RenderHead() = %q, want %q", got, want)
	}
}

func TestComponentValidateRejectsInjection(t *testing.T) {
	c := NewComponent()
	if !c.Validate() {
		t.Error("empty component should validate")
	}

	c.AddScript("x = '</script><script>evil()';", false)
	if c.Validate() {
		t.Error("script closing tag in payload should fail validation")
	}

	c2 := NewComponent()
	c2.CSS().AddRule("body", style.D("background", "url('</style>')"), "")
	if c2.Validate() {
		t.Error("style closing tag in rule should fail validation")
	}
}

func TestComponentMerge(t *testing.T) {
	a := NewComponent()
	if _, err := a.Doc().AddBody("p", "one", nil); err != nil {
		t.Fatal(err)
	}
	b := NewComponent()
	if _, err := b.Doc().AddBody("p", "two", nil); err != nil {
		t.Fatal(err)
	}
	b.CSS().AddRule("p", style.D("margin", "0"), "")
	b.AddScript("go();", false)

	a.Merge(b)
	got := a.Render(false)
	for _, fragment := range []string{"<p>one</p>", "<p>two</p>", "margin: 0;", "go();"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("merged render missing %q:\n%s", fragment, got)
		}
	}
}

func TestComponentMetadata(t *testing.T) {
	c := NewComponent()
	if v, ok := c.Metadata("version"); !ok || v != "0.2.0" {
		t.Errorf("default version = %v, %v", v, ok)
	}
	c.SetMetadata("author", "dev")
	out, err := c.MetadataJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, `"author": "dev"`) {
		t.Errorf("MetadataJSON() = %s", out)
	}
}

func TestComponentSaveFile(t *testing.T) {
	c := NewComponent()
	if _, err := c.Doc().AddBody("p", "saved", nil); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "out.html")
	if err := c.SaveFile(path, false); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != c.Render(false) {
		t.Error("file content does not match render output")
	}
}

func TestComponentClear(t *testing.T) {
	c := NewComponent()
	if _, err := c.Doc().AddBody("p", "x", nil); err != nil {
		t.Fatal(err)
	}
	c.AddScript("a();", false)
	c.CSS().AddRule("p", style.D("margin", "0"), "")

	c.Clear()
	want := "<!DOCTYPE html>\n<html>\n<head>\n</head>\n<body>\n</body>\n</html>"
	if got := c.Render(false); got != want {
		t.Errorf("Render() after Clear = %q", got)
	}
}
