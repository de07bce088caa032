package routes

import (
	"fmt"
	"net/http"
	"strings"
)

// DefaultExport is the Handlers key for a route file's fallback handler,
// used for any HTTP method the file does not export explicitly.
const DefaultExport = "default"

// Methods lists the HTTP method exports a route file may carry, in the
// fixed order the factory registers them.
var Methods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
	http.MethodPatch,
	http.MethodOptions,
	http.MethodHead,
}

// Descriptor is the parsed, pre-registration representation of one route
// or middleware file. Descriptors are created by the scanner, mutated once
// by Load to attach handlers, and read-only afterwards.
type Descriptor struct {
	// Path is the compiled route pattern, e.g. "/users/:id" or "/posts/*".
	// It always begins with "/".
	Path string

	// Params holds the parameter names contributed by dynamic and
	// catch-all tokens, in left-to-right order of appearance.
	Params []string

	// FilePath is the originating file as addressed by the scanned
	// filesystem. It is the descriptor's identity and the identifier
	// handed to a HandlerSource.
	FilePath string

	// IsMiddleware marks files matching the middleware conventions.
	IsMiddleware bool

	// IsCatchAll marks descriptors whose compilation stopped at a
	// catch-all token. Their Path ends in "/*".
	IsCatchAll bool

	// Handlers maps HTTP method names (or DefaultExport) to handlers.
	// Empty until Load runs; exports the file does not carry stay absent.
	Handlers map[string]http.Handler
}

// Kind returns "middleware" or "route", for diagnostics and listings.
func (d *Descriptor) Kind() string {
	if d.IsMiddleware {
		return "middleware"
	}
	return "route"
}

// MissingMethods returns the entries of Methods not present in
// registered, which holds lower-cased method names. Adapters use it to
// bind a route file's fallback handler to the methods its explicit
// exports left uncovered.
func MissingMethods(registered []string) []string {
	seen := make(map[string]bool, len(registered))
	for _, m := range registered {
		seen[strings.ToUpper(m)] = true
	}

	var missing []string
	for _, m := range Methods {
		if !seen[m] {
			missing = append(missing, m)
		}
	}
	return missing
}

// HandlerSource resolves a route file's identity into its exported
// handlers. The in-memory source.Registry and the goja-backed
// source/jsmodule package implement it; hosts with their own module
// systems supply their own.
//
// Resolve is called once per descriptor, sequentially, in registration
// order. Failures abort the registration pass that triggered them.
type HandlerSource interface {
	Resolve(identifier string) (map[string]http.Handler, error)
}

// Load resolves the descriptor's file through src and keeps the exports
// this package understands: the seven HTTP methods plus DefaultExport.
// Anything else the source returns is dropped. Resolution failures come
// back with the cause chain intact.
func (d *Descriptor) Load(src HandlerSource) error {
	exports, err := src.Resolve(d.FilePath)
	if err != nil {
		return fmt.Errorf("loading handlers for %s: %w", d.FilePath, err)
	}

	d.Handlers = make(map[string]http.Handler, len(exports))
	for _, method := range Methods {
		if h, ok := exports[method]; ok && h != nil {
			d.Handlers[method] = h
		}
	}
	if h, ok := exports[DefaultExport]; ok && h != nil {
		d.Handlers[DefaultExport] = h
	}

	return nil
}
