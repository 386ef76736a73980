package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Document Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryDocument,
		Message:  "invalid content type",
		Detail:   "Element content must be a string, number, boolean, or fmt.Stringer.",
	},
	"E002": {
		Category: CategoryDocument,
		Message:  "invalid attribute type",
		Detail:   "Attributes must be nil, a dom.Attrs value, or a string-keyed map.",
	},
	"E003": {
		Category: CategoryDocument,
		Message:  "no active scope",
		Detail:   "End was called without a matching Begin. Every End must pair with an open nested-element scope.",
	},
	"E004": {
		Category: CategoryDocument,
		Message:  "invalid section target",
		Detail:   "Elements can only be routed to the \"head\" or \"body\" section.",
	},

	// ============================================
	// Config Errors (E100-E199)
	// ============================================

	"E100": {
		Category: CategoryConfig,
		Message:  "config file not found",
		Detail:   "No golia.json was found in the working directory or any parent.",
	},
	"E101": {
		Category: CategoryConfig,
		Message:  "invalid config file",
		Detail:   "golia.json exists but could not be parsed as JSON.",
	},

	// ============================================
	// Server Errors (E200-E299)
	// ============================================

	"E200": {
		Category: CategoryServer,
		Message:  "empty request body",
		Detail:   "The transpile endpoint requires raw HTML in the request body.",
	},
	"E201": {
		Category: CategoryServer,
		Message:  "request body too large",
		Detail:   "The request body exceeds the configured size limit.",
	},
}

// Lookup returns the registered template for a code, if any.
func Lookup(code string) (ErrorTemplate, bool) {
	tmpl, ok := registry[code]
	return tmpl, ok
}
