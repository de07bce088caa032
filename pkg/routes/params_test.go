package routes

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestParams(t *testing.T) {
	r := httptest.NewRequest("GET", "/users/42", nil)

	if got := Params(r); got != nil {
		t.Errorf("Params() on bare request = %v, want nil", got)
	}
	if got := Param(r, "id"); got != "" {
		t.Errorf("Param() on bare request = %q, want empty", got)
	}

	ctx := WithParams(r.Context(), map[string]string{"id": "42"})
	r = r.WithContext(ctx)

	if got := Param(r, "id"); got != "42" {
		t.Errorf("Param(id) = %q, want %q", got, "42")
	}
	if got := Param(r, "other"); got != "" {
		t.Errorf("Param(other) = %q, want empty", got)
	}
}

func TestWithParamsEmpty(t *testing.T) {
	ctx := context.Background()
	if got := WithParams(ctx, nil); got != ctx {
		t.Error("WithParams(nil) allocated a new context")
	}
}
