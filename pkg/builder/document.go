// Package builder provides the document-level API for assembling HTML
// programmatically: a two-rooted document with scoped nesting, and a
// component that bundles the document with styles and scripts.
package builder

import (
	"fmt"
	"strings"

	goliaerr "github.com/golia-dev/golia/internal/errors"
	"github.com/golia-dev/golia/pkg/dom"
)

// Section names accepted by Add.
const (
	SectionHead = "head"
	SectionBody = "body"
)

// Sentinel errors returned by document operations.
var (
	// ErrNoActiveScope is returned by End when no nested scope is open.
	ErrNoActiveScope error = goliaerr.New("E003")

	// ErrInvalidSectionTarget is returned when a section name other than
	// "head" or "body" is used for routing.
	ErrInvalidSectionTarget error = goliaerr.New("E004")
)

// Document is an HTML document structure with independent head and body
// roots and an explicit scope stack for nested building.
//
// The zero value is not usable; construct with NewDocument. A Document
// is not safe for concurrent use.
type Document struct {
	head  *dom.Node
	body  *dom.Node
	scope []*dom.Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{
		head: dom.New("head", "", nil),
		body: dom.New("body", "", nil),
	}
}

// Head returns the head root node.
func (d *Document) Head() *dom.Node { return d.head }

// Body returns the body root node.
func (d *Document) Body() *dom.Node { return d.body }

// Current returns the innermost open scope node, or nil when building
// at the body root.
func (d *Document) Current() *dom.Node {
	if len(d.scope) == 0 {
		return nil
	}
	return d.scope[len(d.scope)-1]
}

// target is the node new body elements attach under.
func (d *Document) target() *dom.Node {
	if cur := d.Current(); cur != nil {
		return cur
	}
	return d.body
}

// AddHead appends an element to the document head.
func (d *Document) AddHead(tag string, content any, attrs any) (*dom.Node, error) {
	return d.head.AddChild(tag, content, attrs)
}

// AddBody appends an element under the current scope, or the body root
// when no scope is open.
func (d *Document) AddBody(tag string, content any, attrs any) (*dom.Node, error) {
	return d.target().AddChild(tag, content, attrs)
}

// AddText appends a text run under the current scope.
func (d *Document) AddText(content any) (*dom.Node, error) {
	return d.target().AddChild("", content, nil)
}

// Add routes an element to the named section.
func (d *Document) Add(section, tag string, content any, attrs any) (*dom.Node, error) {
	switch section {
	case SectionHead:
		return d.AddHead(tag, content, attrs)
	case SectionBody:
		return d.AddBody(tag, content, attrs)
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSectionTarget, section)
	}
}

// Begin opens a nested scope: the new element is appended under the
// current scope and becomes the attach point for subsequent elements
// until the matching End.
func (d *Document) Begin(tag string, content any, attrs any) (*dom.Node, error) {
	node, err := d.AddBody(tag, content, attrs)
	if err != nil {
		return nil, err
	}
	d.scope = append(d.scope, node)
	return node, nil
}

// End closes the innermost scope. Callers are expected to pair every
// Begin with an End on all exit paths, typically via defer.
func (d *Document) End() error {
	if len(d.scope) == 0 {
		return ErrNoActiveScope
	}
	d.scope = d.scope[:len(d.scope)-1]
	return nil
}

// Depth returns the number of open nested scopes.
func (d *Document) Depth() int {
	return len(d.scope)
}

// Clear resets the document to two empty roots and no open scopes.
func (d *Document) Clear() {
	d.head = dom.New("head", "", nil)
	d.body = dom.New("body", "", nil)
	d.scope = nil
}

// RenderHead renders the head section's children at the given base
// indent, one top-level child per line.
func (d *Document) RenderHead(indentLevel int) string {
	return renderChildren(d.head, indentLevel)
}

// RenderBody renders the body section's children at the given base
// indent.
func (d *Document) RenderBody(indentLevel int) string {
	return renderChildren(d.body, indentLevel)
}

func renderChildren(root *dom.Node, indentLevel int) string {
	rendered := make([]string, len(root.Children))
	for i, child := range root.Children {
		rendered[i] = child.Render(indentLevel, false)
	}
	return strings.Join(rendered, "\n")
}

// Validate checks document-level structure: at most one title in the
// head, and valid body subtrees.
func (d *Document) Validate() bool {
	titles := 0
	for _, child := range d.head.Children {
		if child.Tag == "title" {
			titles++
		}
	}
	if titles > 1 {
		return false
	}

	for _, child := range d.body.Children {
		if !child.Validate() {
			return false
		}
	}
	return true
}
