// Package routes implements filename-convention route discovery.
//
// The scanner walks a directory tree and turns qualifying files into
// ordered route descriptors:
//
//   - Recursive discovery over a pluggable filesystem (routefs)
//   - Dot-separated path segments with bracketed dynamic tokens
//   - Catch-all tokens that truncate everything after them
//   - Deterministic registration order: middleware first, deeper paths
//     first, ties broken by descending path comparison
//
// # File Structure Convention
//
// Four filename shapes qualify; everything else is ignored:
//
//	app/routes/
//	├── route.ts                   → /            (route)
//	├── auth.middleware.ts         → /auth        (middleware)
//	├── users.route.ts             → /users       (route)
//	├── users.[id].route.ts        → /users/:id   (route)
//	├── files.[...path].route.ts   → /files/*     (route)
//	└── blog/
//	    ├── route.ts               → /blog        (route)
//	    └── [slug].route.ts        → /blog/:slug  (route)
//
// Directory separators and dots both introduce path segments, so
// "a/b.route.ts" and "a.b.route.ts" compile identically. Parts named
// "index" contribute nothing: "users/index.route.ts" → /users.
//
// # Parameters
//
// Dynamic segments are bracketed:
//
//	[id]        → :id   (one path component)
//	[...path]   → catch-all; the pattern ends in /* and nothing after
//	            the token is consumed
//
// # Usage
//
//	scanner := routes.NewScanner("app/routes")
//	descs, err := scanner.Scan()
//
//	for _, d := range descs {
//	    err := d.Load(src) // src is a routes.HandlerSource
//	    // d.Handlers now carries the file's method and default exports
//	}
//
// Descriptor loading, lint checks, and OpenAPI skeleton generation all
// operate on the scanned descriptor slice; none of them mutate it beyond
// the one-time Load step.
package routes
