package routefs

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

// ioFS adapts an io/fs.FS to the scanner's capability surface.
type ioFS struct {
	fsys fs.FS
}

// FromIOFS wraps an io/fs.FS, such as an embed.FS or a fstest.MapFS.
// Scan roots must follow io/fs path rules: "." for the filesystem root,
// slash-separated and unrooted otherwise.
func FromIOFS(fsys fs.FS) FS {
	return &ioFS{fsys: fsys}
}

func (f *ioFS) ListEntries(dir string) ([]string, error) {
	if dir == "" {
		dir = "."
	}

	entries, err := fs.ReadDir(f.fsys, dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (f *ioFS) IsDirectory(p string) (bool, error) {
	if p == "" {
		p = "."
	}

	info, err := fs.Stat(f.fsys, p)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (f *ioFS) JoinPath(elem ...string) string {
	return path.Join(elem...)
}

func (f *ioFS) RelativePath(base, target string) (string, error) {
	if base == "" || base == "." {
		return target, nil
	}

	base = strings.TrimSuffix(base, "/")
	if target == base {
		return ".", nil
	}
	if rest, ok := strings.CutPrefix(target, base+"/"); ok {
		return rest, nil
	}
	return "", fmt.Errorf("routefs: %q is not under %q", target, base)
}
