package jsmodule

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"

	"github.com/routedir-dev/routedir/pkg/routes"
)

// Source resolves route files by executing them as CommonJS modules in an
// embedded goja runtime. Each Resolve evaluates the file once; the
// returned handlers call back into that module's runtime per request.
//
// goja runtimes are not safe for concurrent use, so a single lock
// serializes every script call a Source makes. Hosts that need parallel
// script handlers should shard routes across Sources.
type Source struct {
	mu      sync.Mutex
	timeout time.Duration
	logger  *slog.Logger
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout bounds each script handler call. Zero disables the bound.
// Default: 5s.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithLogger sets the logger script console output and handler failures
// go to. Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Source) {
		s.logger = logger
	}
}

// New creates a Source.
func New(opts ...Option) *Source {
	s := &Source{
		timeout: 5 * time.Second,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Resolve reads and evaluates the module at identifier and adapts its
// exported functions to handlers. Read and evaluation failures propagate;
// non-function exports are dropped.
func (s *Source) Resolve(identifier string) (map[string]http.Handler, error) {
	src, err := os.ReadFile(identifier)
	if err != nil {
		return nil, fmt.Errorf("reading module %s: %w", identifier, err)
	}

	program, err := goja.Compile(identifier, string(src), false)
	if err != nil {
		return nil, fmt.Errorf("compiling module %s: %w", identifier, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vm := goja.New()
	module := vm.NewObject()
	exportsObj := vm.NewObject()
	module.Set("exports", exportsObj)
	vm.Set("module", module)
	vm.Set("exports", exportsObj)
	s.addConsole(vm, identifier)

	if _, err := vm.RunProgram(program); err != nil {
		return nil, fmt.Errorf("evaluating module %s: %w", identifier, err)
	}

	// The script may have reassigned module.exports wholesale.
	exported := module.Get("exports")
	if exported == nil || goja.IsUndefined(exported) || goja.IsNull(exported) {
		return map[string]http.Handler{}, nil
	}

	// module.exports = function(req) {...} is the classic single-export
	// form; it serves as the fallback handler.
	if fn, ok := goja.AssertFunction(exported); ok {
		return map[string]http.Handler{"default": s.handler(vm, fn, identifier)}, nil
	}

	handlers := make(map[string]http.Handler)
	obj := exported.ToObject(vm)
	for _, key := range obj.Keys() {
		fn, ok := goja.AssertFunction(obj.Get(key))
		if !ok {
			continue
		}
		handlers[key] = s.handler(vm, fn, identifier)
	}
	return handlers, nil
}

// handler adapts one exported function. The script receives a plain
// request object and returns a string, a {status, headers, body} object,
// or nothing.
func (s *Source) handler(vm *goja.Runtime, fn goja.Callable, modulePath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "failed to read request body", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		if s.timeout > 0 {
			timer := time.AfterFunc(s.timeout, func() { vm.Interrupt("handler timeout") })
			defer timer.Stop()
			defer vm.ClearInterrupt()
		}

		result, err := fn(goja.Undefined(), vm.ToValue(requestObject(r, body)))
		if err != nil {
			s.logger.Error("script handler failed",
				"module", modulePath,
				"path", r.URL.Path,
				"error", err)
			http.Error(w, "script execution failed", http.StatusInternalServerError)
			return
		}

		writeScriptResponse(w, result)
	})
}

// addConsole routes console.log/warn/error to the Source's logger.
func (s *Source) addConsole(vm *goja.Runtime, modulePath string) {
	console := vm.NewObject()
	log := func(level slog.Level) func(args ...interface{}) {
		return func(args ...interface{}) {
			parts := make([]string, len(args))
			for i, arg := range args {
				parts[i] = fmt.Sprint(arg)
			}
			s.logger.Log(context.Background(), level, strings.Join(parts, " "), "module", modulePath)
		}
	}
	console.Set("log", log(slog.LevelInfo))
	console.Set("warn", log(slog.LevelWarn))
	console.Set("error", log(slog.LevelError))
	vm.Set("console", console)
}

// requestObject flattens the request into the shape scripts see. Route
// parameters come from the portable params context the adapters fill in
// before the handler runs. Headers and query parameters keep their first
// value only.
func requestObject(r *http.Request, body []byte) map[string]interface{} {
	headers := make(map[string]string, len(r.Header))
	for name := range r.Header {
		headers[name] = r.Header.Get(name)
	}

	query := make(map[string]string)
	for name, values := range r.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	params := routes.Params(r)
	if params == nil {
		params = map[string]string{}
	}

	return map[string]interface{}{
		"method":  r.Method,
		"path":    r.URL.Path,
		"params":  params,
		"query":   query,
		"headers": headers,
		"body":    string(body),
	}
}

// writeScriptResponse maps a script return value onto the response:
// nothing → 204, a string → text body, an object → {status, headers,
// body}, anything else → JSON.
func writeScriptResponse(w http.ResponseWriter, v goja.Value) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	switch out := v.Export().(type) {
	case string:
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, out)
	case map[string]interface{}:
		writeStructuredResponse(w, out)
	default:
		writeJSON(w, http.StatusOK, out)
	}
}

func writeStructuredResponse(w http.ResponseWriter, out map[string]interface{}) {
	status := http.StatusOK
	switch n := out["status"].(type) {
	case int64:
		status = int(n)
	case float64:
		status = int(n)
	}

	if headers, ok := out["headers"].(map[string]interface{}); ok {
		for name, value := range headers {
			if str, ok := value.(string); ok {
				w.Header().Set(name, str)
			}
		}
	}

	body, ok := out["body"]
	if !ok || body == nil {
		w.WriteHeader(status)
		return
	}

	if str, ok := body.(string); ok {
		if w.Header().Get("Content-Type") == "" {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		}
		w.WriteHeader(status)
		io.WriteString(w, str)
		return
	}

	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(status)
	w.Write(data)
}
