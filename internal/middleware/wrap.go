// Package middleware adapts route-file middleware handlers into standard
// net/http middleware. A middleware handler runs before the routes below
// its mount path; writing any response short-circuits the chain.
package middleware

import (
	"net/http"
	"strings"
)

// Writer wraps http.ResponseWriter and records whether the wrapped
// handler produced any response.
type Writer struct {
	http.ResponseWriter
	wrote bool
}

// NewWriter wraps w.
func NewWriter(w http.ResponseWriter) *Writer {
	return &Writer{ResponseWriter: w}
}

func (w *Writer) WriteHeader(code int) {
	w.wrote = true
	w.ResponseWriter.WriteHeader(code)
}

func (w *Writer) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}

// Wrote reports whether the handler wrote a header or body.
func (w *Writer) Wrote() bool {
	return w.wrote
}

// Unwrap exposes the underlying writer for http.ResponseController.
func (w *Writer) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Prefix turns a middleware handler mounted at a route pattern into
// standard net/http middleware. Requests outside the mount pass straight
// through; requests under it run the hook first and continue only if the
// hook wrote nothing.
func Prefix(mount string, hook http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !Matches(mount, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			rec := NewWriter(w)
			hook.ServeHTTP(rec, r)
			if rec.Wrote() {
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Matches reports whether a request path falls under a middleware mount:
// the mount itself or anything below it. Mounts may carry ":name"
// segments, which match any single segment, and a trailing "*", which
// matches the rest. "/" matches everything.
func Matches(mount, path string) bool {
	if mount == "/" {
		return true
	}

	mountSegs := strings.Split(strings.TrimPrefix(mount, "/"), "/")
	pathSegs := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(pathSegs) < len(mountSegs) {
		return false
	}

	for i, seg := range mountSegs {
		switch {
		case seg == "*":
			return true
		case strings.HasPrefix(seg, ":"):
			if pathSegs[i] == "" {
				return false
			}
		case pathSegs[i] != seg:
			return false
		}
	}
	return true
}
