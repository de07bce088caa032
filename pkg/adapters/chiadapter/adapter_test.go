package chiadapter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/routedir-dev/routedir/pkg/routes"
)

func TestTransformPath(t *testing.T) {
	a := New(chi.NewRouter())

	tests := []struct {
		desc *routes.Descriptor
		want string
	}{
		{&routes.Descriptor{Path: "/users"}, "/users"},
		{&routes.Descriptor{Path: "/users/:id", Params: []string{"id"}}, "/users/{id}"},
		{&routes.Descriptor{Path: "/files/*", Params: []string{"path"}, IsCatchAll: true}, "/files/*"},
	}

	for _, tt := range tests {
		if got := a.TransformPath(tt.desc.Path, tt.desc); got != tt.want {
			t.Errorf("TransformPath(%q) = %q, want %q", tt.desc.Path, got, tt.want)
		}
	}
}

func TestRegisterRouteParams(t *testing.T) {
	r := chi.NewRouter()
	a := New(r)
	d := &routes.Descriptor{Path: "/users/:id", Params: []string{"id"}}

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, routes.Param(req, "id"))
	})
	if err := a.RegisterRoute("GET", a.TransformPath(d.Path, d), d, h); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/users/7", nil))

	if rec.Body.String() != "7" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "7")
	}
}

func TestRegisterRouteCatchAll(t *testing.T) {
	r := chi.NewRouter()
	a := New(r)
	d := &routes.Descriptor{Path: "/files/*", Params: []string{"path"}, IsCatchAll: true}

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, routes.Param(req, "path"))
	})
	if err := a.RegisterRoute("GET", a.TransformPath(d.Path, d), d, h); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/files/a/b.txt", nil))

	if rec.Body.String() != "a/b.txt" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "a/b.txt")
	}
}

func TestRegisterMiddlewareOrder(t *testing.T) {
	r := chi.NewRouter()
	a := New(r)

	guard := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Header.Get("X-Token") == "" {
			http.Error(w, "forbidden", http.StatusForbidden)
		}
	})
	if err := a.RegisterMiddleware("/admin", &routes.Descriptor{Path: "/admin", IsMiddleware: true}, guard); err != nil {
		t.Fatalf("RegisterMiddleware() error: %v", err)
	}

	ok := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "ok")
	})
	if err := a.RegisterRoute("GET", "/admin/settings", &routes.Descriptor{Path: "/admin/settings"}, ok); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}
	if err := a.RegisterRoute("GET", "/public", &routes.Descriptor{Path: "/public"}, ok); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/settings", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("guarded status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/public", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("public status = %d, want 200", rec.Code)
	}
}

func TestRegisterDefaultHandler(t *testing.T) {
	r := chi.NewRouter()
	a := New(r)
	d := &routes.Descriptor{Path: "/orders"}

	explicit := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "explicit")
	})
	fallback := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "fallback")
	})

	if err := a.RegisterRoute("POST", "/orders", d, explicit); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}
	if err := a.RegisterDefaultHandler("/orders", d, fallback, []string{"post"}); err != nil {
		t.Fatalf("RegisterDefaultHandler() error: %v", err)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("POST", "/orders", nil))
	if rec.Body.String() != "explicit" {
		t.Errorf("POST body = %q, want %q", rec.Body.String(), "explicit")
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("PUT", "/orders", nil))
	if rec.Body.String() != "fallback" {
		t.Errorf("PUT body = %q, want %q", rec.Body.String(), "fallback")
	}
}

func TestRegisterRouteInvalidPattern(t *testing.T) {
	a := New(chi.NewRouter())
	d := &routes.Descriptor{Path: "/x"}

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})
	// An empty pattern makes chi panic; the adapter must return an error
	// instead.
	if err := a.RegisterRoute("GET", "", d, h); err == nil {
		t.Error("RegisterRoute(\"\") returned nil error")
	}
}
