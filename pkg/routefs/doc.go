// Package routefs abstracts the filesystem operations the route scanner
// needs, so route trees can live anywhere a backend can enumerate.
//
// The FS interface is deliberately small: list a directory, test for a
// directory, join path elements, and compute a relative path. A backend
// supplies those four operations and the scanner does the rest.
//
// Three backends ship with this package:
//
//   - OS() walks the real filesystem with os and path/filepath.
//   - FromIOFS(fsys) walks any io/fs.FS, including embed.FS and
//     testing/fstest.MapFS, which makes scanner tests purely in-memory.
//   - NewS3FS (build tag "s3routes") walks an S3 bucket prefix using
//     aws-sdk-go-v2, for route trees deployed as bucket objects.
//
// # Usage
//
//	fsys := routefs.OS()
//	names, err := fsys.ListEntries("/srv/app/routes")
//
//	//go:embed routes
//	var routes embed.FS
//	fsys := routefs.FromIOFS(routes)
package routefs
