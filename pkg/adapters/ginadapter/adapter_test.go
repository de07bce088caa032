package ginadapter

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/routedir-dev/routedir/pkg/routes"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

func TestTransformPath(t *testing.T) {
	a := New(gin.New())

	tests := []struct {
		desc *routes.Descriptor
		want string
	}{
		{&routes.Descriptor{Path: "/users"}, "/users"},
		{&routes.Descriptor{Path: "/users/:id", Params: []string{"id"}}, "/users/:id"},
		{&routes.Descriptor{Path: "/files/*", Params: []string{"path"}, IsCatchAll: true}, "/files/*path"},
		{&routes.Descriptor{Path: "/x/*", IsCatchAll: true}, "/x/*path"},
	}

	for _, tt := range tests {
		if got := a.TransformPath(tt.desc.Path, tt.desc); got != tt.want {
			t.Errorf("TransformPath(%q) = %q, want %q", tt.desc.Path, got, tt.want)
		}
	}
}

func TestRegisterRouteParams(t *testing.T) {
	e := gin.New()
	a := New(e)
	d := &routes.Descriptor{Path: "/users/:id", Params: []string{"id"}}

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, routes.Param(req, "id"))
	})
	if err := a.RegisterRoute("GET", a.TransformPath(d.Path, d), d, h); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/users/3", nil))

	if rec.Body.String() != "3" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "3")
	}
}

func TestRegisterRouteCatchAll(t *testing.T) {
	e := gin.New()
	a := New(e)
	d := &routes.Descriptor{Path: "/files/*", Params: []string{"path"}, IsCatchAll: true}

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, routes.Param(req, "path"))
	})
	if err := a.RegisterRoute("GET", a.TransformPath(d.Path, d), d, h); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/files/a/b.txt", nil))

	if rec.Body.String() != "a/b.txt" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "a/b.txt")
	}
}

func TestRegisterMiddleware(t *testing.T) {
	e := gin.New()
	a := New(e)

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
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/settings", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("guarded status = %d, want 403", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/public", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("public status = %d, want 200", rec.Code)
	}
}

func TestRegisterDefaultHandler(t *testing.T) {
	e := gin.New()
	a := New(e)
	d := &routes.Descriptor{Path: "/orders"}

	explicit := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "explicit")
	})
	fallback := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		io.WriteString(w, "fallback")
	})

	if err := a.RegisterRoute("GET", "/orders", d, explicit); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}
	if err := a.RegisterDefaultHandler("/orders", d, fallback, []string{"get"}); err != nil {
		t.Fatalf("RegisterDefaultHandler() error: %v", err)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("GET", "/orders", nil))
	if rec.Body.String() != "explicit" {
		t.Errorf("GET body = %q, want %q", rec.Body.String(), "explicit")
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest("DELETE", "/orders", nil))
	if rec.Body.String() != "fallback" {
		t.Errorf("DELETE body = %q, want %q", rec.Body.String(), "fallback")
	}
}

func TestRegisterRouteConflict(t *testing.T) {
	e := gin.New()
	a := New(e)

	h := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {})

	d1 := &routes.Descriptor{Path: "/files/*", Params: []string{"path"}, IsCatchAll: true}
	if err := a.RegisterRoute("GET", "/files/*path", d1, h); err != nil {
		t.Fatalf("RegisterRoute() error: %v", err)
	}

	// A second wildcard with a different name conflicts in gin's tree;
	// the adapter must surface an error, not panic.
	d2 := &routes.Descriptor{Path: "/files/*", Params: []string{"other"}, IsCatchAll: true}
	if err := a.RegisterRoute("GET", "/files/*other", d2, h); err == nil {
		t.Error("conflicting RegisterRoute() returned nil error")
	}
}
