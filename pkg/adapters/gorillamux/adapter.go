// Package gorillamux adapts registrations to a gorilla/mux router.
package gorillamux

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/routedir-dev/routedir/internal/middleware"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter registers routes and middleware on a mux.Router. Registration
// failures surface through the route's recorded error.
type Adapter struct {
	router *mux.Router
}

// New creates an adapter over r.
func New(r *mux.Router) *Adapter {
	return &Adapter{router: r}
}

// TransformPath converts ":name" segments to "{name}" and a trailing
// catch-all to a "{name:.*}" regexp variable.
func (a *Adapter) TransformPath(path string, d *routes.Descriptor) string {
	if d.IsCatchAll {
		path = strings.TrimSuffix(path, "*") + "{" + catchAllName(d) + ":.*}"
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
	return a.router.Handle(path, withParams(d, h)).Methods(method).GetError()
}

func (a *Adapter) RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) error {
	a.router.Use(mux.MiddlewareFunc(middleware.Prefix(d.Path, h)))
	return nil
}

func (a *Adapter) RegisterDefaultHandler(path string, d *routes.Descriptor, h http.Handler, registered []string) error {
	missing := routes.MissingMethods(registered)
	if len(missing) == 0 {
		return nil
	}
	return a.router.Handle(path, withParams(d, h)).Methods(missing...).GetError()
}

// withParams copies mux.Vars into the portable params context. The
// catch-all variable shares its parameter's name, so a plain copy covers
// both dynamic and catch-all tokens.
func withParams(d *routes.Descriptor, h http.Handler) http.Handler {
	if len(d.Params) == 0 {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		params := make(map[string]string, len(d.Params))
		for _, name := range d.Params {
			if name == "" {
				continue
			}
			params[name] = vars[name]
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
