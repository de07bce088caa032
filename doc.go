// Package routedir turns a directory of route files into registrations
// on the HTTP framework of your choice.
//
// A routes directory describes an API by naming convention alone:
//
//	app/routes/
//	├── route.ts                  → /
//	├── middleware.ts             → middleware for /
//	├── users.route.ts            → /users
//	├── users.[id].route.ts       → /users/:id
//	├── admin/
//	│   ├── middleware.ts         → middleware for /admin
//	│   └── settings.route.ts     → /admin/settings
//	└── files/
//	    └── [...path].route.ts    → /files/*
//
// CreateRouter scans the tree, resolves each file's handlers through a
// HandlerSource and registers everything on an Adapter:
//
//	reg := source.NewRegistry()
//	reg.AddFunc("users.route.ts", "GET", listUsers)
//	reg.AddFunc("users.route.ts", "POST", createUser)
//
//	r := chi.NewRouter()
//	_, err := routedir.CreateRouter(ctx, chiadapter.New(r), routedir.Options{
//	    RoutesDir: "app/routes",
//	    Source:    reg,
//	})
//
// # Registration Order
//
// Registration order is deterministic: middleware strictly before routes,
// deeper patterns before shallower ones, ties broken by descending path
// comparison. Scanning an unchanged tree twice produces the same order.
//
// # Handler Sources
//
// A HandlerSource maps a route file's path to its exported handlers.
// source.Registry serves hosts whose handlers live in Go;
// source/jsmodule executes the files themselves as CommonJS modules.
//
// # Adapters
//
// The pkg/adapters tree binds registrations to net/http (stdmux), chi,
// gorilla/mux, gin and echo. Each adapter translates compiled patterns
// into its framework's parameter syntax and scopes middleware to the
// subtree it was mounted on.
//
// # Observability
//
// Options.Verbose logs every registration through a caller-supplied
// slog.Logger. NewMetrics provides Prometheus counters for descriptors,
// registrations and skips; NewTracing emits one OpenTelemetry span per
// pass with a child span per descriptor. All three are opt-in and carry
// no package-level state.
package routedir
