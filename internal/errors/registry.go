package errors

import "net/http"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	Status   int
	DocURL   string
}

const docBase = "https://gallery.vango.dev/docs/errors/"

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "The configuration file could not be parsed.",
		DocURL:   docBase + "E120",
	},
	"E121": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration value is out of range or has the wrong form.",
		DocURL:   docBase + "E121",
	},
	"E122": {
		Category: CategoryConfig,
		Message:  "Unknown provider",
		Detail:   "provider.kind must be one of seed, rest, sql, mongo or s3.",
		DocURL:   docBase + "E122",
	},
	"E123": {
		Category: CategoryConfig,
		Message:  "Unknown cache store",
		Detail:   "cache.store must be memory or redis.",
		DocURL:   docBase + "E123",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Configuration file not found",
		Detail:   "The file passed with --config does not exist.",
		DocURL:   docBase + "E140",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Registry check failed",
		Detail:   "Some catalog components have no registered showcase. They will render with the generic fallback.",
		DocURL:   docBase + "E141",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Server failed",
		Detail:   "The HTTP server stopped unexpectedly.",
		DocURL:   docBase + "E142",
	},

	// ============================================
	// Catalog Errors (E200-E209)
	// ============================================

	"E200": {
		Category: CategoryCatalog,
		Message:  "Category not found",
		Detail:   "No category with this slug exists in the catalog.",
		Status:   http.StatusNotFound,
		DocURL:   docBase + "E200",
	},
	"E201": {
		Category: CategoryCatalog,
		Message:  "Component not found",
		Detail:   "No component with this slug exists in the catalog.",
		Status:   http.StatusNotFound,
		DocURL:   docBase + "E201",
	},

	// ============================================
	// Provider Errors (E210-E229)
	// ============================================

	"E210": {
		Category: CategoryProvider,
		Message:  "Catalog unavailable",
		Detail:   "The metadata provider could not be reached.",
		Status:   http.StatusServiceUnavailable,
		DocURL:   docBase + "E210",
	},
	"E211": {
		Category: CategoryProvider,
		Message:  "Invalid provider response",
		Detail:   "The metadata provider returned data that could not be decoded.",
		Status:   http.StatusBadGateway,
		DocURL:   docBase + "E211",
	},
	"E220": {
		Category: CategoryProvider,
		Message:  "Catalog snapshot missing",
		Detail:   "The catalog snapshot object does not exist.",
		Status:   http.StatusServiceUnavailable,
		DocURL:   docBase + "E220",
	},

	// ============================================
	// Render Errors (E230-E239)
	// ============================================

	"E230": {
		Category: CategoryRender,
		Message:  "Render failed",
		Detail:   "The page tree could not be written as HTML.",
		Status:   http.StatusInternalServerError,
		DocURL:   docBase + "E230",
	},
	"E231": {
		Category: CategoryRender,
		Message:  "Unauthorized",
		Detail:   "The request did not carry a valid token.",
		Status:   http.StatusUnauthorized,
		DocURL:   docBase + "E231",
	},
	"E232": {
		Category: CategoryRender,
		Message:  "Invalid request",
		Detail:   "The request body could not be decoded or named unknown cache keys.",
		Status:   http.StatusBadRequest,
		DocURL:   docBase + "E232",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
