package source

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
)

// ErrNotFound reports that no module is registered for an identifier.
var ErrNotFound = errors.New("module not found")

// Registry is an in-memory HandlerSource. Hosts register the exports for
// each route file up front, keyed by file path, and the factory resolves
// descriptors against them. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]map[string]http.Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		modules: make(map[string]map[string]http.Handler),
	}
}

// Add registers the exports for the module at path, replacing any earlier
// registration. The map is copied; callers may reuse theirs.
func (r *Registry) Add(path string, exports map[string]http.Handler) {
	cp := make(map[string]http.Handler, len(exports))
	for name, h := range exports {
		cp[name] = h
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[normalizeKey(path)] = cp
}

// AddFunc registers a single export for the module at path, creating the
// module entry when needed.
func (r *Registry) AddFunc(path, export string, h http.HandlerFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeKey(path)
	exports, ok := r.modules[key]
	if !ok {
		exports = make(map[string]http.Handler)
		r.modules[key] = exports
	}
	exports[export] = h
}

// Resolve implements the HandlerSource contract. An identifier matches a
// registered module when it equals the registered path or ends with
// "/" + path, so hosts can register portable tree-relative keys while the
// scanner hands over absolute paths. When several registrations match,
// the longest one wins: "users/route.ts" beats "route.ts".
func (r *Registry) Resolve(identifier string) (map[string]http.Handler, error) {
	id := normalizeKey(identifier)

	r.mu.RLock()
	defer r.mu.RUnlock()

	exports, ok := r.modules[id]
	if !ok {
		best := -1
		for key, candidate := range r.modules {
			if strings.HasSuffix(id, "/"+key) && len(key) > best {
				exports = candidate
				best = len(key)
				ok = true
			}
		}
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, identifier)
	}

	cp := make(map[string]http.Handler, len(exports))
	for name, h := range exports {
		cp[name] = h
	}
	return cp, nil
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}

// normalizeKey makes path separators uniform so registrations written
// with forward slashes match identifiers produced on any platform.
func normalizeKey(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}
