// Package errors provides structured, actionable error messages for the
// routedir CLI.
//
// Library code (the scanner, the factory, the handler sources) returns
// plain wrapped errors; this package is the presentation layer the CLI
// puts in front of them: coded errors with route-file locations, fix
// suggestions, and documentation links.
//
// # Error Categories
//
// Errors are organized into categories:
//   - scan: walking the routes directory failed
//   - source: a route file could not be loaded or has no handlers
//   - lint: convention findings (duplicates, empty parameters)
//   - config: routedir.yaml problems
//   - cli: command execution problems
//
// # Error Codes
//
// Each error has a unique code (e.g., "E021") that maps to a short
// message, a detailed explanation, and a documentation URL.
//
// # Usage
//
//	err := errors.New("E021").
//	    WithLocation("routes/users.route.js", 3, 15).
//	    WithSuggestion("Check the export for a missing comma or bracket")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E021: Route module has a syntax error
//	//
//	//   routes/users.route.js:3:15
//	//
//	//        2 │ module.exports.GET = function (req) {
//	//   →    3 │   return { status: 200, body: users.map(, ) };
//	//          │               ^
//	//        4 │ };
//	//
//	//   Hint: Check the export for a missing comma or bracket
//	//
//	//   Learn more: https://routedir.dev/docs/errors/E021
package errors
