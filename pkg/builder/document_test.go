package builder

import (
	"errors"
	"testing"
)

func TestDocumentScoping(t *testing.T) {
	d := NewDocument()

	if _, err := d.Begin("div", "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddBody("p", "inside", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Begin("span", "", nil); err != nil {
		t.Fatal(err)
	}
	if d.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", d.Depth())
	}
	if _, err := d.AddText("deep"); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatal(err)
	}
	if err := d.End(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddBody("p", "outside", nil); err != nil {
		t.Fatal(err)
	}

	want := "<div>\n\t<p>inside</p>\n\t<span>deep</span>\n</div>\n<p>outside</p>"
	if got := d.RenderBody(0); got != want {
		t.Errorf("RenderBody() = %q, want %q", got, want)
	}
}

func TestDocumentEndWithoutBegin(t *testing.T) {
	d := NewDocument()
	if err := d.End(); !errors.Is(err, ErrNoActiveScope) {
		t.Errorf("End() = %v, want ErrNoActiveScope", err)
	}
}

func TestDocumentAddRouting(t *testing.T) {
	d := NewDocument()

	if _, err := d.Add(SectionHead, "title", "Hi", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Add(SectionBody, "p", "hello", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Add("footer", "p", "x", nil); !errors.Is(err, ErrInvalidSectionTarget) {
		t.Errorf("Add(footer) = %v, want ErrInvalidSectionTarget", err)
	}

	if got := d.RenderHead(0); got != "<title>Hi</title>" {
		t.Errorf("RenderHead() = %q", got)
	}
	if got := d.RenderBody(1); got != "\t<p>hello</p>" {
		t.Errorf("RenderBody(1) = %q", got)
	}
}

func TestDocumentHeadIgnoresScope(t *testing.T) {
	d := NewDocument()
	if _, err := d.Begin("div", "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddHead("title", "Hi", nil); err != nil {
		t.Fatal(err)
	}
	if got := d.RenderHead(0); got != "<title>Hi</title>" {
		t.Errorf("head element landed in the wrong place: %q", got)
	}
}

func TestDocumentClear(t *testing.T) {
	d := NewDocument()
	if _, err := d.Begin("div", "", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := d.AddHead("title", "Hi", nil); err != nil {
		t.Fatal(err)
	}

	d.Clear()
	if d.Depth() != 0 {
		t.Errorf("Depth() after Clear = %d", d.Depth())
	}
	if d.RenderHead(0) != "" || d.RenderBody(0) != "" {
		t.Error("Clear left rendered content behind")
	}
}

func TestDocumentValidate(t *testing.T) {
	d := NewDocument()
	if _, err := d.AddHead("title", "One", nil); err != nil {
		t.Fatal(err)
	}
	if !d.Validate() {
		t.Error("single title should validate")
	}

	if _, err := d.AddHead("title", "Two", nil); err != nil {
		t.Fatal(err)
	}
	if d.Validate() {
		t.Error("duplicate titles should not validate")
	}
}
