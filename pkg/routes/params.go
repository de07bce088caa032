package routes

import (
	"context"
	"net/http"
)

type paramsKey struct{}

// WithParams returns a context carrying path parameters extracted by an
// adapter. Adapters attach them before invoking a handler so handlers can
// read parameters without importing the host framework.
func WithParams(ctx context.Context, params map[string]string) context.Context {
	if len(params) == 0 {
		return ctx
	}
	return context.WithValue(ctx, paramsKey{}, params)
}

// Params returns the path parameters attached to the request, nil when
// none were.
func Params(r *http.Request) map[string]string {
	params, _ := r.Context().Value(paramsKey{}).(map[string]string)
	return params
}

// Param returns a single path parameter, "" when absent.
func Param(r *http.Request, name string) string {
	return Params(r)[name]
}
