package errors

import "sort"

// Registered error codes.
const (
	CodeInvalidTag             = "T001"
	CodeTagDoesNotSupportBegin = "T002"
	CodeUnexpectedEndCall      = "T003"
	CodeTagClassMismatch       = "T004"
	CodeInvalidAttributeValue  = "T005"
	CodeAbstractInstantiation  = "T006"
	CodeMarkdown               = "T007"
	CodeNodeRender             = "T008"

	CodeThemeLoad = "T010"

	CodeConfigLoad    = "T020"
	CodeConfigInvalid = "T021"

	CodePublish      = "T030"
	CodeStoreFailure = "T031"

	CodeBadRequest = "T040"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Rendering Errors (T001-T009)
	// ============================================

	CodeInvalidTag: {
		Category: CategoryRender,
		Message:  "Invalid tag",
		Detail:   "Every tag must have a non-empty name made of letters, digits and hyphens. Inline and void elements cannot be opened and closed separately.",
	},
	CodeTagDoesNotSupportBegin: {
		Category: CategoryStack,
		Message:  "Tag does not support begin",
		Detail:   "Only block elements can be rendered with begin/end pairs. Render inline and void elements in one call.",
	},
	CodeUnexpectedEndCall: {
		Category: CategoryStack,
		Message:  "Unexpected end call",
		Detail:   "End was called for an element type that has no open begin call.",
	},
	CodeTagClassMismatch: {
		Category: CategoryStack,
		Message:  "Tag class mismatch",
		Detail:   "End was called for one element type while another element type is still open inside it. Close the innermost element first.",
	},
	CodeInvalidAttributeValue: {
		Category: CategoryAttribute,
		Message:  "Invalid attribute value",
		Detail:   "Attribute values must be booleans, strings, numbers, func() string, string lists or nested maps.",
	},
	CodeAbstractInstantiation: {
		Category: CategoryElement,
		Message:  "Element type has no tag",
		Detail:   "An element type must bind a concrete tag name before elements can be created from it.",
	},
	CodeMarkdown: {
		Category: CategoryElement,
		Message:  "Markdown conversion failed",
		Detail:   "The markdown source could not be converted to HTML.",
	},
	CodeNodeRender: {
		Category: CategoryElement,
		Message:  "Node rendering failed",
		Detail:   "A gomponents node returned an error while rendering into element content.",
	},

	// ============================================
	// Theme Errors (T010-T019)
	// ============================================

	CodeThemeLoad: {
		Category: CategoryTheme,
		Message:  "Theme file could not be loaded",
		Detail:   "The theme file must be TOML, YAML or JSON with [defaults.<type>] and [themes.<name>.<type>] tables.",
	},

	// ============================================
	// Config Errors (T020-T029)
	// ============================================

	CodeConfigLoad: {
		Category: CategoryConfig,
		Message:  "Configuration could not be loaded",
		Detail:   "The configuration file exists but could not be read or parsed.",
	},
	CodeConfigInvalid: {
		Category: CategoryConfig,
		Message:  "Invalid configuration",
		Detail:   "A configuration value is out of range or missing.",
	},

	// ============================================
	// Publish Errors (T030-T039)
	// ============================================

	CodePublish: {
		Category: CategoryPublish,
		Message:  "Publish failed",
		Detail:   "The document could not be rendered for publishing. Nothing was uploaded.",
	},
	CodeStoreFailure: {
		Category: CategoryPublish,
		Message:  "Store write failed",
		Detail:   "The rendered document could not be written to the store.",
	},

	// ============================================
	// Server Errors (T040-T049)
	// ============================================

	CodeBadRequest: {
		Category: CategoryServer,
		Message:  "Bad request",
		Detail:   "The request body must be a JSON render request.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
