package dom

// voidElements are elements that cannot have children and have no closing tag.
// These render self-closing.
var voidElements = map[string]bool{
	"area":     true,
	"base":     true,
	"br":       true,
	"col":      true,
	"command":  true,
	"embed":    true,
	"hr":       true,
	"img":      true,
	"input":    true,
	"keygen":   true,
	"link":     true,
	"menuitem": true,
	"meta":     true,
	"param":    true,
	"source":   true,
	"track":    true,
	"wbr":      true,
}

// IsVoidElement returns true if the tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// inlineElements are elements that render inline by default, without
// newlines between their children in pretty output.
var inlineElements = map[string]bool{
	"a":      true,
	"abbr":   true,
	"b":      true,
	"cite":   true,
	"code":   true,
	"data":   true,
	"del":    true,
	"em":     true,
	"i":      true,
	"ins":    true,
	"kbd":    true,
	"label":  true,
	"mark":   true,
	"q":      true,
	"s":      true,
	"samp":   true,
	"small":  true,
	"span":   true,
	"strong": true,
	"sub":    true,
	"sup":    true,
	"time":   true,
	"u":      true,
	"var":    true,
}

// IsInlineElement returns true if the tag renders inline by default.
func IsInlineElement(tag string) bool {
	return inlineElements[tag]
}
