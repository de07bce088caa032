// Package chiadapter adapts registrations to a chi router.
package chiadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/routedir-dev/routedir/internal/middleware"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter registers routes and middleware on a chi.Router.
//
// chi requires all middleware to be attached before the first route;
// registration order guarantees that, since middleware descriptors always
// sort ahead of routes. chi reports invalid patterns by panicking; the
// adapter converts those panics into errors.
type Adapter struct {
	router chi.Router
}

// New creates an adapter over r.
func New(r chi.Router) *Adapter {
	return &Adapter{router: r}
}

// TransformPath converts ":name" segments to chi's "{name}" syntax. A
// trailing catch-all "*" is already chi's wildcard and passes through.
func (a *Adapter) TransformPath(path string, d *routes.Descriptor) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		if strings.HasPrefix(seg, ":") {
			segments[i] = "{" + seg[1:] + "}"
		}
	}
	return strings.Join(segments, "/")
}

func (a *Adapter) RegisterRoute(method, path string, d *routes.Descriptor, h http.Handler) error {
	return a.method(method, path, withParams(d, h))
}

func (a *Adapter) RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mounting middleware %s: %v", path, r)
		}
	}()
	a.router.Use(middleware.Prefix(d.Path, h))
	return nil
}

func (a *Adapter) RegisterDefaultHandler(path string, d *routes.Descriptor, h http.Handler, registered []string) error {
	wrapped := withParams(d, h)
	for _, method := range routes.MissingMethods(registered) {
		if err := a.method(method, path, wrapped); err != nil {
			return err
		}
	}
	return nil
}

func (a *Adapter) method(method, path string, h http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering %s %s: %v", method, path, r)
		}
	}()
	a.router.Method(method, path, h)
	return nil
}

// withParams copies chi's URL params into the portable params context.
// The catch-all parameter maps to chi's "*" wildcard value.
func withParams(d *routes.Descriptor, h http.Handler) http.Handler {
	if len(d.Params) == 0 {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := make(map[string]string, len(d.Params))
		for i, name := range d.Params {
			if name == "" {
				continue
			}
			if d.IsCatchAll && i == len(d.Params)-1 {
				params[name] = chi.URLParam(r, "*")
			} else {
				params[name] = chi.URLParam(r, name)
			}
		}
		h.ServeHTTP(w, r.WithContext(routes.WithParams(r.Context(), params)))
	})
}
