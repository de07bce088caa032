package routedir

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/codes"

	"github.com/routedir-dev/routedir/pkg/routefs"
	"github.com/routedir-dev/routedir/pkg/routes"
)

// Adapter binds a registration pass to a concrete HTTP framework. The
// pkg/adapters tree ships implementations for net/http, chi, gorilla/mux,
// gin and echo; custom frameworks implement these four hooks.
//
// Registration is sequential and single-goroutine; adapters never see
// concurrent calls from one pass. A hook returning an error aborts the
// pass with everything registered so far left in place.
type Adapter interface {
	// TransformPath converts a compiled pattern to the framework's
	// syntax. It runs once per descriptor; every registration hook for
	// that descriptor receives the transformed path.
	TransformPath(path string, d *routes.Descriptor) string

	// RegisterRoute registers one handler for one HTTP method.
	RegisterRoute(method, path string, d *routes.Descriptor, h http.Handler) error

	// RegisterMiddleware mounts a middleware handler at path, covering
	// the path itself and everything below it.
	RegisterMiddleware(path string, d *routes.Descriptor, h http.Handler) error

	// RegisterDefaultHandler registers a route file's fallback handler.
	// registered lists the lower-cased methods RegisterRoute already
	// covered for this path, in registration order, so the adapter can
	// bind the fallback to the remaining methods only.
	RegisterDefaultHandler(path string, d *routes.Descriptor, h http.Handler, registered []string) error
}

// Options configures a registration pass.
type Options struct {
	// RoutesDir is the directory scanned for route files. Required.
	RoutesDir string

	// Source resolves route files into their exported handlers. Required.
	Source routes.HandlerSource

	// FS is the filesystem the scanner walks. Default: routefs.OS().
	FS routefs.FS

	// Extensions replaces the accepted file extensions,
	// routes.DefaultExtensions when empty.
	Extensions []string

	// Verbose logs every descriptor and registration.
	Verbose bool

	// Logger receives verbose output. Default: slog.Default().
	Logger *slog.Logger

	// Metrics records registration counters when set.
	Metrics *Metrics

	// Tracing traces the pass when set.
	Tracing *Tracing
}

// CreateRouter scans opts.RoutesDir, resolves each route file through
// opts.Source and registers the results on adapter. It returns the
// descriptors in registration order: middleware first, then routes,
// deeper paths before shallower ones.
//
// Files matching no naming convention and route files exporting no usable
// handler are skipped silently. Scan and source failures abort the pass;
// registrations already performed are not rolled back.
func CreateRouter(ctx context.Context, adapter Adapter, opts Options) ([]*routes.Descriptor, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if adapter == nil {
		return nil, errors.New("routedir: adapter is required")
	}
	if opts.RoutesDir == "" {
		return nil, errors.New("routedir: Options.RoutesDir is required")
	}
	if opts.Source == nil {
		return nil, errors.New("routedir: Options.Source is required")
	}

	if opts.Tracing == nil {
		return createRouter(ctx, adapter, opts)
	}

	ctx, span := opts.Tracing.start(ctx, opts.RoutesDir)
	defer span.End()

	descriptors, err := createRouter(ctx, adapter, opts)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetStatus(codes.Ok, "")
	return descriptors, nil
}

func createRouter(ctx context.Context, adapter Adapter, opts Options) ([]*routes.Descriptor, error) {
	start := time.Now()

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var scanOpts []routes.ScannerOption
	if opts.FS != nil {
		scanOpts = append(scanOpts, routes.WithFS(opts.FS))
	}
	if len(opts.Extensions) > 0 {
		scanOpts = append(scanOpts, routes.WithExtensions(opts.Extensions...))
	}

	descriptors, err := routes.NewScanner(opts.RoutesDir, scanOpts...).Scan()
	if err != nil {
		return nil, err
	}

	for _, d := range descriptors {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := registerDescriptor(ctx, adapter, d, opts, logger); err != nil {
			return nil, err
		}
	}

	opts.Metrics.observeRun(time.Since(start))
	return descriptors, nil
}

// registerDescriptor loads one descriptor's handlers and performs its
// adapter registrations.
func registerDescriptor(ctx context.Context, adapter Adapter, d *routes.Descriptor, opts Options, logger *slog.Logger) (err error) {
	if opts.Tracing != nil {
		if span := opts.Tracing.descriptorSpan(ctx, d); span != nil {
			defer func() {
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				}
				span.End()
			}()
		}
	}

	if err := d.Load(opts.Source); err != nil {
		return err
	}

	path := adapter.TransformPath(d.Path, d)

	if opts.Verbose {
		logger.Info("registering",
			"kind", d.Kind(),
			"path", path,
			"file", d.FilePath)
	}
	opts.Metrics.recordDescriptor(d.Kind())

	if d.IsMiddleware {
		return registerMiddleware(adapter, d, path, opts, logger)
	}
	return registerRoute(adapter, d, path, opts, logger)
}

func registerMiddleware(adapter Adapter, d *routes.Descriptor, path string, opts Options, logger *slog.Logger) error {
	// A middleware file contributes its default export, falling back to
	// GET. Files exporting neither are skipped.
	h := d.Handlers[routes.DefaultExport]
	if h == nil {
		h = d.Handlers[http.MethodGet]
	}
	if h == nil {
		if opts.Verbose {
			logger.Warn("middleware file exports no callable, skipping",
				"path", path,
				"file", d.FilePath)
		}
		opts.Metrics.recordSkip("middleware", "no_callable")
		return nil
	}

	if err := adapter.RegisterMiddleware(path, d, h); err != nil {
		return fmt.Errorf("registering middleware %s: %w", path, err)
	}
	if opts.Verbose {
		logger.Info("  mounted middleware", "path", path)
	}
	opts.Metrics.recordRegistration("middleware", "use")
	return nil
}

func registerRoute(adapter Adapter, d *routes.Descriptor, path string, opts Options, logger *slog.Logger) error {
	var registered []string
	for _, method := range routes.Methods {
		h, ok := d.Handlers[method]
		if !ok {
			continue
		}
		if err := adapter.RegisterRoute(method, path, d, h); err != nil {
			return fmt.Errorf("registering %s %s: %w", method, path, err)
		}
		registered = append(registered, strings.ToLower(method))
		if opts.Verbose {
			logger.Info("  registered route", "method", method, "path", path)
		}
		opts.Metrics.recordRegistration("route", strings.ToLower(method))
	}

	if h, ok := d.Handlers[routes.DefaultExport]; ok {
		if err := adapter.RegisterDefaultHandler(path, d, h, registered); err != nil {
			return fmt.Errorf("registering default handler %s: %w", path, err)
		}
		if opts.Verbose {
			logger.Info("  registered default handler",
				"path", path,
				"covered", registered)
		}
		opts.Metrics.recordRegistration("route", "default")
		return nil
	}

	if len(registered) == 0 {
		if opts.Verbose {
			logger.Warn("route file exports no callable, skipping",
				"path", path,
				"file", d.FilePath)
		}
		opts.Metrics.recordSkip("route", "no_callable")
	}
	return nil
}
