package builder

import (
	"fmt"
	"strings"

	"github.com/golia-dev/golia/pkg/dom"
)

// Form builds an HTML form under a component's body, field by field.
type Form struct {
	c      *Component
	node   *dom.Node
	fields []string
	err    error
}

// SelectOption is one option in a select dropdown.
type SelectOption struct {
	Value string
	Label string
}

// Form appends a form element to the body and returns a builder for
// it. The method attribute defaults to POST.
func (c *Component) Form(attrs dom.Attrs) *Form {
	merged := dom.A("method", "POST")
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	node, err := c.doc.AddBody("form", "", merged)
	return &Form{c: c, node: node, err: err}
}

// Node returns the underlying form element.
func (f *Form) Node() *dom.Node { return f.node }

// Err returns the first error encountered while building the form.
func (f *Form) Err() error { return f.err }

func (f *Form) add(tag string, content any, attrs dom.Attrs) *dom.Node {
	if f.err != nil {
		return nil
	}
	node, err := f.node.AddChild(tag, content, attrs)
	if err != nil {
		f.err = err
	}
	return node
}

// InputField adds an input with the given name and type, preceded by a
// label when label is non-empty.
func (f *Form) InputField(name, inputType, label string, attrs dom.Attrs) *Form {
	if inputType == "" {
		inputType = "text"
	}
	if label != "" {
		f.add("label", label, dom.A("for", name))
	}
	merged := dom.A("name", name, "type", inputType, "id", name)
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	f.add("input", "", merged)
	f.fields = append(f.fields, name)
	return f
}

// TextInput adds a text input.
func (f *Form) TextInput(name string, attrs dom.Attrs) *Form {
	return f.InputField(name, "text", "", attrs)
}

// EmailInput adds an email input.
func (f *Form) EmailInput(name string, attrs dom.Attrs) *Form {
	return f.InputField(name, "email", "", attrs)
}

// PasswordInput adds a password input.
func (f *Form) PasswordInput(name string, attrs dom.Attrs) *Form {
	return f.InputField(name, "password", "", attrs)
}

// NumberInput adds a number input.
func (f *Form) NumberInput(name string, attrs dom.Attrs) *Form {
	return f.InputField(name, "number", "", attrs)
}

// Checkbox adds a labelled checkbox wrapped in a div.
func (f *Form) Checkbox(name, label string, attrs dom.Attrs) *Form {
	if f.err != nil {
		return f
	}
	div := f.add("div", "", dom.A("class", "checkbox"))
	if div == nil {
		return f
	}
	merged := dom.A("type", "checkbox", "name", name, "id", name, "value", "on")
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	if _, err := div.AddChild("input", "", merged); err != nil {
		f.err = err
		return f
	}
	if _, err := div.AddChild("label", label, dom.A("for", name)); err != nil {
		f.err = err
		return f
	}
	f.fields = append(f.fields, name)
	return f
}

// Select adds a dropdown with the given options, preceded by a label
// when label is non-empty.
func (f *Form) Select(name string, options []SelectOption, label string, attrs dom.Attrs) *Form {
	if f.err != nil {
		return f
	}
	if label != "" {
		f.add("label", label, dom.A("for", name))
	}
	merged := dom.A("name", name, "id", name)
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	sel := f.add("select", "", merged)
	if sel == nil {
		return f
	}
	for _, opt := range options {
		if _, err := sel.AddChild("option", opt.Label, dom.A("value", opt.Value)); err != nil {
			f.err = err
			return f
		}
	}
	f.fields = append(f.fields, name)
	return f
}

// TextArea adds a textarea, preceded by a label when label is
// non-empty.
func (f *Form) TextArea(name, label string, attrs dom.Attrs) *Form {
	if label != "" {
		f.add("label", label, dom.A("for", name))
	}
	merged := dom.A("name", name, "id", name)
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	f.add("textarea", "", merged)
	f.fields = append(f.fields, name)
	return f
}

// Submit adds a submit button. Empty text defaults to "Submit".
func (f *Form) Submit(text string, attrs dom.Attrs) *Form {
	if text == "" {
		text = "Submit"
	}
	merged := dom.A("type", "submit")
	for _, a := range attrs {
		merged.Set(a.Key, a.Value)
	}
	f.add("button", text, merged)
	return f
}

// CSRFToken adds a hidden CSRF token input.
func (f *Form) CSRFToken(token string) *Form {
	f.add("input", "", dom.A("type", "hidden", "name", "_csrf", "value", token))
	return f
}

// ValidateRules annotates named fields with data-validate-* attributes
// for client-side validation. Unknown field names are skipped.
func (f *Form) ValidateRules(rules map[string]dom.Attrs) *Form {
	if f.node == nil {
		return f
	}
	for _, name := range f.fields {
		fieldRules, ok := rules[name]
		if !ok {
			continue
		}
		for _, child := range f.node.Children {
			if v, ok := child.Attr.Get("name"); !ok || v != name {
				continue
			}
			for _, rule := range fieldRules {
				child.Attr.Set("data-validate-"+rule.Key, strings.ToLower(fmt.Sprintf("%v", rule.Value)))
			}
		}
	}
	return f
}
