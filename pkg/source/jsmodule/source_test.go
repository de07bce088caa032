package jsmodule

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/routedir-dev/routedir/pkg/routes"
)

func writeModule(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestResolveExports(t *testing.T) {
	path := writeModule(t, "users.route.js", `
		exports.GET = function(req) {
			return { status: 200, body: "list users" };
		};
		exports.POST = function(req) {
			return { status: 201, body: "created" };
		};
		exports.limit = 50;
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(handlers) != 2 {
		t.Fatalf("len(handlers) = %d, want 2 (non-function exports dropped)", len(handlers))
	}
	if handlers["GET"] == nil || handlers["POST"] == nil {
		t.Errorf("handlers = %v, want GET and POST", handlers)
	}
}

func TestResolveModuleExportsReassigned(t *testing.T) {
	path := writeModule(t, "orders.route.js", `
		module.exports = {
			GET: function(req) { return "orders"; },
			"default": function(req) { return "fallback"; }
		};
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if handlers["GET"] == nil || handlers["default"] == nil {
		t.Errorf("handlers = %v, want GET and default", handlers)
	}
}

func TestResolveSingleFunctionExport(t *testing.T) {
	path := writeModule(t, "ping.route.js", `
		module.exports = function(req) { return "pong"; };
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if len(handlers) != 1 || handlers["default"] == nil {
		t.Fatalf("handlers = %v, want single default", handlers)
	}
}

func TestResolveMissingFile(t *testing.T) {
	if _, err := New().Resolve(filepath.Join(t.TempDir(), "missing.route.js")); err == nil {
		t.Error("Resolve() on missing file returned nil error")
	}
}

func TestResolveSyntaxError(t *testing.T) {
	path := writeModule(t, "broken.route.js", `exports.GET = function( {`)

	if _, err := New().Resolve(path); err == nil {
		t.Error("Resolve() on broken module returned nil error")
	}
}

func TestHandlerStructuredResponse(t *testing.T) {
	path := writeModule(t, "users.route.js", `
		exports.GET = function(req) {
			return {
				status: 201,
				headers: { "X-Source": "script" },
				body: { ok: true }
			};
		};
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers["GET"].ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))

	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if got := rec.Header().Get("X-Source"); got != "script" {
		t.Errorf("X-Source = %q, want %q", got, "script")
	}
	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q, want %q", got, "application/json")
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"ok":true}` {
		t.Errorf("body = %q, want %q", got, `{"ok":true}`)
	}
}

func TestHandlerStringResponse(t *testing.T) {
	path := writeModule(t, "ping.route.js", `
		exports.GET = function(req) { return "pong"; };
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers["GET"].ServeHTTP(rec, httptest.NewRequest("GET", "/ping", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != "pong" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "pong")
	}
}

func TestHandlerNoReturn(t *testing.T) {
	path := writeModule(t, "fire.route.js", `
		exports.POST = function(req) {};
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers["POST"].ServeHTTP(rec, httptest.NewRequest("POST", "/fire", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
}

func TestHandlerSeesRequest(t *testing.T) {
	path := writeModule(t, "echo.route.js", `
		exports.POST = function(req) {
			return {
				status: 200,
				body: req.method + " " + req.path + " " + req.query.v + " " + req.body
			};
		};
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/echo?v=7", strings.NewReader("payload"))
	handlers["POST"].ServeHTTP(rec, req)

	if got := rec.Body.String(); got != "POST /echo 7 payload" {
		t.Errorf("body = %q, want %q", got, "POST /echo 7 payload")
	}
}

func TestHandlerSeesParams(t *testing.T) {
	path := writeModule(t, "[id].route.js", `
		exports.GET = function(req) { return "user " + req.params.id; };
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/users/42", nil)
	req = req.WithContext(routes.WithParams(req.Context(), map[string]string{"id": "42"}))
	handlers["GET"].ServeHTTP(rec, req)

	if got := rec.Body.String(); got != "user 42" {
		t.Errorf("body = %q, want %q", got, "user 42")
	}
}

func TestHandlerScriptError(t *testing.T) {
	path := writeModule(t, "boom.route.js", `
		exports.GET = function(req) { throw new Error("boom"); };
	`)

	handlers, err := New().Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers["GET"].ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandlerTimeout(t *testing.T) {
	path := writeModule(t, "spin.route.js", `
		exports.GET = function(req) { while (true) {} };
	`)

	handlers, err := New(WithTimeout(50 * time.Millisecond)).Resolve(path)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	rec := httptest.NewRecorder()
	handlers["GET"].ServeHTTP(rec, httptest.NewRequest("GET", "/spin", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 after interrupt", rec.Code)
	}
}
