// Package ginadapter adapts registrations to a gin engine.
package ginadapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/routedir-dev/routedir/internal/middleware"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter registers routes and middleware on a gin.Engine.
//
// gin applies engine middleware only to routes registered after the Use
// call; registration order guarantees that, since middleware descriptors
// always sort ahead of routes. gin reports route conflicts by panicking;
// the adapter converts those panics into errors.
type Adapter struct {
	engine *gin.Engine
}

// New creates an adapter over e.
func New(e *gin.Engine) *Adapter {
	return &Adapter{engine: e}
}

// TransformPath keeps ":name" segments, which are already gin syntax, and
// names a trailing catch-all as "*name" after the catch-all parameter.
func (a *Adapter) TransformPath(path string, d *routes.Descriptor) string {
	if d.IsCatchAll {
		path = strings.TrimSuffix(path, "*") + "*" + catchAllName(d)
	}
	return path
}

func (a *Adapter) RegisterRoute(method, path string, d *routes.Descriptor, h http.Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("registering %s %s: %v", method, path, r)
		}
	}()
	a.engine.Handle(method, path, wrap(d, h))
	return nil
}

func (a *Adapter) RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) error {
	mount := d.Path
	a.engine.Use(func(c *gin.Context) {
		if !middleware.Matches(mount, c.Request.URL.Path) {
			c.Next()
			return
		}
		h.ServeHTTP(c.Writer, c.Request)
		if c.Writer.Written() {
			c.Abort()
			return
		}
		c.Next()
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

// wrap serves a net/http handler from gin, copying gin's params into the
// portable params context. gin's catch-all values carry a leading slash,
// which is stripped for consistency with the other adapters.
func wrap(d *routes.Descriptor, h http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		req := c.Request
		if len(d.Params) > 0 {
			params := make(map[string]string, len(d.Params))
			for i, name := range d.Params {
				if name == "" {
					continue
				}
				value := c.Param(name)
				if d.IsCatchAll && i == len(d.Params)-1 {
					value = strings.TrimPrefix(value, "/")
				}
				params[name] = value
			}
			req = req.WithContext(routes.WithParams(req.Context(), params))
		}
		h.ServeHTTP(c.Writer, req)
	}
}

func catchAllName(d *routes.Descriptor) string {
	if len(d.Params) > 0 && d.Params[len(d.Params)-1] != "" {
		return d.Params[len(d.Params)-1]
	}
	return "path"
}
