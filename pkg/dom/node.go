package dom

import (
	"fmt"
	"strings"

	goliaerr "github.com/golia-dev/golia/internal/errors"
)

// Sentinel errors returned by tree mutation.
var (
	// ErrInvalidContentType is returned when element content cannot be
	// converted to text.
	ErrInvalidContentType error = goliaerr.New("E001")

	// ErrInvalidAttributeType is returned when attributes are neither nil,
	// an Attrs value, nor a string-keyed map.
	ErrInvalidAttributeType error = goliaerr.New("E002")
)

// indentUnit is the string written per indentation level in pretty output.
const indentUnit = "\t"

// Node is one element or text run in an HTML document tree.
//
// A Node with an empty Tag is a text node: it never has children or
// attributes and renders its content literally. Children are owned
// exclusively by their parent; Parent is a back-reference only.
type Node struct {
	Tag      string
	Content  string
	Attr     Attrs
	Parent   *Node
	Children []*Node

	isVoid      bool
	isTextNode  bool
	inline      bool
	forceInline bool
}

// New constructs a detached element node. A trailing underscore on the
// tag is stripped, so reserved-word escapes like "del_" store "del".
func New(tag, content string, attrs Attrs) *Node {
	tag = strings.TrimSuffix(tag, "_")
	return &Node{
		Tag:        tag,
		Content:    content,
		Attr:       attrs.Clone(),
		isVoid:     IsVoidElement(tag),
		isTextNode: tag == "",
		inline:     IsInlineElement(tag),
	}
}

// NewText constructs a detached text node.
func NewText(content string) *Node {
	return &Node{Content: content, isTextNode: true}
}

// IsVoid reports whether the node is a void (self-closing) element.
func (n *Node) IsVoid() bool { return n.isVoid }

// IsTextNode reports whether the node is a text run.
func (n *Node) IsTextNode() bool { return n.isTextNode }

// Inline reports whether the node renders inline, either by tag default
// or by an explicit override.
func (n *Node) Inline() bool { return n.inline || n.forceInline }

// MarkInline sets the soft inline flag, as if the tag were an inline
// element.
func (n *Node) MarkInline() *Node {
	n.inline = true
	return n
}

// ForceInline sets the explicit inline override on the node. With
// recursive it cascades eagerly over all current descendants; children
// added afterwards are unaffected.
func (n *Node) ForceInline(recursive bool) *Node {
	n.forceInline = true
	if recursive {
		for _, child := range n.Children {
			child.ForceInline(true)
		}
	}
	return n
}

// AddChild constructs a child node and appends it. An empty tag appends
// a text node instead, ignoring attrs. This is the only growth
// primitive; every higher-level builder call funnels through it.
//
// Content may be a string, number, boolean, or fmt.Stringer; attrs may
// be nil, an Attrs value, []Attr, or a string-keyed map.
func (n *Node) AddChild(tag string, content any, attrs any) (*Node, error) {
	text, ok := contentString(content)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidContentType, content)
	}

	if tag == "" {
		child := NewText(text)
		child.Parent = n
		n.Children = append(n.Children, child)
		return child, nil
	}

	attrList, err := coerceAttrs(attrs)
	if err != nil {
		return nil, err
	}
	child := New(tag, text, attrList)
	child.Parent = n
	n.Children = append(n.Children, child)
	return child, nil
}

// MustAddChild is AddChild for call sites with statically valid input.
// It panics on error.
func (n *Node) MustAddChild(tag string, content any, attrs any) *Node {
	child, err := n.AddChild(tag, content, attrs)
	if err != nil {
		panic(err)
	}
	return child
}

// Render pretty-prints the node and its subtree.
//
// Inline-ness is inherited downward: an inline ancestor renders all
// descendants without newlines or indentation. A forced-inline node
// does not affect its siblings.
func (n *Node) Render(indentLevel int, parentInline bool) string {
	indent := strings.Repeat(indentUnit, indentLevel)

	if n.isTextNode {
		return indent + n.Content
	}

	inline := n.inline || n.forceInline || parentInline

	var b strings.Builder
	b.WriteString(indent)
	b.WriteByte('<')
	b.WriteString(n.Tag)
	if attrs := attrString(n.Tag, n.Attr); attrs != "" {
		b.WriteByte(' ')
		b.WriteString(attrs)
	}

	// Void elements never render children or a closing tag, even if
	// children were erroneously attached.
	if n.isVoid {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteByte('>')

	switch {
	case len(n.Children) > 0 && inline:
		for _, child := range n.Children {
			b.WriteString(child.Render(0, true))
		}
	case len(n.Children) > 0:
		rendered := make([]string, len(n.Children))
		for i, child := range n.Children {
			rendered[i] = child.Render(indentLevel+1, inline)
		}
		b.WriteByte('\n')
		b.WriteString(strings.Join(rendered, "\n"))
		b.WriteByte('\n')
		b.WriteString(indent)
	case n.Content != "":
		b.WriteString(n.Content)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
	return b.String()
}

// String renders with default indentation.
func (n *Node) String() string {
	return n.Render(0, false)
}

// Validate runs shallow structural checks over the subtree: lists must
// contain only list items and tables need a header or body group. This
// is advisory; AddChild never enforces it.
func (n *Node) Validate() bool {
	switch n.Tag {
	case "ul", "ol":
		for _, child := range n.Children {
			if child.Tag != "li" {
				return false
			}
		}
		return true
	case "table":
		for _, child := range n.Children {
			if child.Tag == "thead" || child.Tag == "tbody" {
				return true
			}
		}
		return false
	}

	for _, child := range n.Children {
		if !child.Validate() {
			return false
		}
	}
	return true
}
