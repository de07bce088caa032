package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Scan Errors (E001-E019)
	// ============================================

	"E001": {
		Category: CategoryScan,
		Message:  "Routes directory not found",
		Detail:   "The routes directory does not exist or is not readable.",
		DocURL:   "https://routedir.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryScan,
		Message:  "Routes directory unreadable",
		Detail:   "A directory inside the routes tree could not be listed. Check filesystem permissions.",
		DocURL:   "https://routedir.dev/docs/errors/E002",
	},

	// ============================================
	// Source Errors (E020-E039)
	// ============================================

	"E020": {
		Category: CategorySource,
		Message:  "Route module failed to load",
		Detail:   "The handler source could not resolve this route file.",
		DocURL:   "https://routedir.dev/docs/errors/E020",
	},
	"E021": {
		Category: CategorySource,
		Message:  "Route module has a syntax error",
		Detail:   "The route file could not be parsed as a script module.",
		DocURL:   "https://routedir.dev/docs/errors/E021",
	},
	"E022": {
		Category: CategorySource,
		Message:  "Route file exports no handlers",
		Detail:   "None of the file's exports are HTTP method handlers or a default handler. The file will be skipped at registration time.",
		DocURL:   "https://routedir.dev/docs/errors/E022",
	},

	// ============================================
	// Lint Findings (E040-E059)
	// ============================================

	"E040": {
		Category: CategoryLint,
		Message:  "Duplicate route path",
		Detail:   "Multiple route files compile to the same path. The host framework decides which one wins, which is rarely intended.",
		DocURL:   "https://routedir.dev/docs/errors/E040",
	},
	"E041": {
		Category: CategoryLint,
		Message:  "Empty parameter name",
		Detail:   "A dynamic or catch-all token has no name between the brackets.",
		DocURL:   "https://routedir.dev/docs/errors/E041",
	},
	"E042": {
		Category: CategoryLint,
		Message:  "Double slash in route path",
		Detail:   "The compiled path contains consecutive slashes. A root-level catch-all file compiles to \"//*\"; nest it one level deeper to avoid the anomaly.",
		DocURL:   "https://routedir.dev/docs/errors/E042",
	},

	// ============================================
	// Configuration Errors (E060-E079)
	// ============================================

	"E060": {
		Category: CategoryConfig,
		Message:  "Invalid routedir.yaml",
		Detail:   "The routedir.yaml configuration file is malformed.",
		DocURL:   "https://routedir.dev/docs/errors/E060",
	},
	"E061": {
		Category: CategoryConfig,
		Message:  "No routedir.yaml found",
		Detail:   "The current directory is not inside a routedir project. Commands need either a routedir.yaml or an explicit directory argument.",
		DocURL:   "https://routedir.dev/docs/errors/E061",
	},
	"E062": {
		Category: CategoryConfig,
		Message:  "Invalid extension",
		Detail:   "Configured extensions must begin with a dot, e.g. \".ts\".",
		DocURL:   "https://routedir.dev/docs/errors/E062",
	},

	// ============================================
	// CLI Errors (E080-E099)
	// ============================================

	"E080": {
		Category: CategoryCLI,
		Message:  "Output write failed",
		Detail:   "The generated file could not be written.",
		DocURL:   "https://routedir.dev/docs/errors/E080",
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

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
