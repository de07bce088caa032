// Package stdmux adapts registrations to net/http's ServeMux using the
// Go 1.22 pattern syntax.
package stdmux

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/routedir-dev/routedir/internal/middleware"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter registers routes on an http.ServeMux and layers middleware
// around it. The adapter itself serves requests; mount it wherever the
// mux would go.
//
// ServeMux reports pattern conflicts by panicking; the adapter converts
// those panics into errors so a conflicting tree aborts the registration
// pass instead of crashing the host.
type Adapter struct {
	mux     *http.ServeMux
	chain   []func(http.Handler) http.Handler
	handler http.Handler
}

// New creates an adapter over a fresh ServeMux.
func New() *Adapter {
	return NewWithMux(http.NewServeMux())
}

// NewWithMux creates an adapter over an existing ServeMux.
func NewWithMux(mux *http.ServeMux) *Adapter {
	return &Adapter{mux: mux, handler: mux}
}

func (a *Adapter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}

// TransformPath converts ":name" segments to "{name}" and a trailing
// catch-all to "{name...}", named after the catch-all parameter.
func (a *Adapter) TransformPath(path string, d *routes.Descriptor) string {
	if d.IsCatchAll {
		path = strings.TrimSuffix(path, "*") + "{" + catchAllName(d) + "...}"
	}

	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func (a *Adapter) RegisterRoute(method, path string, d *routes.Descriptor, h http.Handler) error {
	return a.handle(method+" "+path, withParams(d, h))
}

func (a *Adapter) RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) error {
	a.chain = append(a.chain, middleware.Prefix(d.Path, h))
	a.rebuild()
	return nil
}

func (a *Adapter) RegisterDefaultHandler(path string, d *routes.Descriptor, h http.Handler, registered []string) error {
	wrapped := withParams(d, h)
	for _, method := range routes.MissingMethods(registered) {
		if err := a.handle(method+" "+path, wrapped); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) handle(pattern string, h http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering pattern %q: %v", pattern, r)
		}
	}()
	a.mux.Handle(pattern, h)
	return nil
}

func (a *Adapter) rebuild() {
	h := http.Handler(a.mux)
	for i := len(a.chain) - 1; i >= 0; i-- {
		h = a.chain[i](h)
	}
	a.handler = h
}

// withParams copies the mux's path values into the portable params
// context so handlers can stay framework-agnostic.
func withParams(d *routes.Descriptor, h http.Handler) http.Handler {
	if len(d.Params) == 0 {
		return h
	}
	names := d.Params
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(names))
		for _, name := range names {
			if name == "" {
				continue
			}
			params[name] = r.PathValue(name)
		}
		h.ServeHTTP(w, r.WithContext(routes.WithParams(r.Context(), params)))
	})
}

func catchAllName(d *routes.Descriptor) string {
	if len(d.Params) > 0 && d.Params[len(d.Params)-1] != "" {
		return d.Params[len(d.Params)-1]
	}
	return "rest"
}
