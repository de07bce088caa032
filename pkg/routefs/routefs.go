package routefs

// FS is the filesystem capability surface the route scanner depends on.
// Implementations must return directory entries in a stable order so that
// repeated scans of an unchanged tree produce identical results; both
// os.ReadDir and io/fs.ReadDir already sort by name.
type FS interface {
	// ListEntries returns the names (not full paths) of the entries in dir.
	ListEntries(dir string) ([]string, error)

	// IsDirectory reports whether path refers to a directory.
	IsDirectory(path string) (bool, error)

	// JoinPath joins path elements using the backend's separator.
	JoinPath(elem ...string) string

	// RelativePath returns target expressed relative to base.
	RelativePath(base, target string) (string, error)
}

// AbsFS is an optional upgrade for backends that have a notion of absolute
// paths. The scanner resolves its root through AbsolutePath when available,
// so descriptor file paths come out absolute.
type AbsFS interface {
	FS

	// AbsolutePath returns the absolute form of path.
	AbsolutePath(path string) (string, error)
}
