// Package source provides handler sources: implementations that resolve a
// route file's path into the handlers it exports.
//
// # Registry
//
// Registry is the in-memory source. Hosts whose handlers live in Go
// register them against route file paths, usually tree-relative:
//
//	reg := source.NewRegistry()
//	reg.AddFunc("users.route.ts", "GET", listUsers)
//	reg.AddFunc("users.route.ts", "POST", createUser)
//
// Resolve matches the scanner's absolute identifiers against registered
// keys by exact comparison first, then by path-boundary suffix, so the
// registrations above keep working wherever the tree is checked out.
//
// # Script-backed sources
//
// The nested jsmodule package resolves route files by executing them as
// CommonJS modules in an embedded JavaScript engine. Hosts with their own
// module system implement the one-method HandlerSource contract directly.
package source
