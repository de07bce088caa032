// Package echoadapter adapts registrations to an echo instance.
package echoadapter

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/routedir-dev/routedir/internal/middleware"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter registers routes and middleware on an echo.Echo.
//
// echo resolves its middleware chain per request, so Use applies to
// every route regardless of registration order.
type Adapter struct {
	echo *echo.Echo
}

// New creates an adapter over e.
func New(e *echo.Echo) *Adapter {
	return &Adapter{echo: e}
}

// TransformPath returns the path unchanged: ":name" segments and a
// trailing "*" are already echo syntax.
func (a *Adapter) TransformPath(path string, d *routes.Descriptor) string {
	return path
}

func (a *Adapter) RegisterRoute(method, path string, d *routes.Descriptor, h http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering %s %s: %v", method, path, r)
		}
	}()
	a.echo.Add(method, path, wrap(d, h))
	return nil
}

func (a *Adapter) RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) error {
	mount := d.Path
	a.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !middleware.Matches(mount, c.Request().URL.Path) {
				return next(c)
			}
			h.ServeHTTP(c.Response(), c.Request())
			if c.Response().Committed {
				return nil
			}
			return next(c)
		}
	})
	return nil
}

func (a *Adapter) RegisterDefaultHandler(path string, d *routes.Descriptor, h http.Handler, registered []string) error {
	for _, method := range routes.MissingMethods(registered) {
		if err := a.RegisterRoute(method, path, d, h); err != nil {
			return err
		}
	}
	return nil
}

// wrap serves a net/http handler from echo, copying echo's params into
// the portable params context. echo exposes the trailing catch-all
// value as the "*" parameter; it is surfaced under the catch-all
// parameter's declared name.
func wrap(d *routes.Descriptor, h http.Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		if len(d.Params) > 0 {
			params := make(map[string]string, len(d.Params))
			for i, name := range d.Params {
				if name == "" {
					continue
				}
				if d.IsCatchAll && i == len(d.Params)-1 {
					params[name] = c.Param("*")
					continue
				}
				params[name] = c.Param(name)
			}
			req = req.WithContext(routes.WithParams(req.Context(), params))
		}
		h.ServeHTTP(c.Response(), req)
		return nil
	}
}
