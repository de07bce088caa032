// Package jsmodule resolves route files by running them as CommonJS
// JavaScript modules in an embedded goja engine.
//
// A route file exports one function per HTTP method, plus an optional
// "default" fallback:
//
//	exports.GET = function(req) {
//	    return { status: 200, body: { users: [] } };
//	};
//	exports["default"] = function(req) {
//	    return { status: 405, body: "method not allowed" };
//	};
//
// Scripts receive a flattened request ({method, path, params, query,
// headers, body}) and return a string, a {status, headers, body} object,
// or nothing for an empty 204. req.params carries the route parameters
// the registering adapter extracted. TypeScript syntax is not evaluated;
// trees scanned with the default extensions should keep script-backed
// handlers in .js files or resolve through another source.
package jsmodule
