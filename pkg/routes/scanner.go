package routes

import (
	"fmt"
	"strings"

	"github.com/routedir-dev/routedir/pkg/routefs"
)

// DefaultExtensions are the file extensions the scanner accepts when none
// are configured. All accepted extensions behave identically.
var DefaultExtensions = []string{".ts", ".js"}

// Scanner scans a directory tree for route and middleware files.
type Scanner struct {
	root string
	fsys routefs.FS
	exts []string
}

// ScannerOption configures a Scanner.
type ScannerOption func(*Scanner)

// WithFS sets the filesystem the scanner walks. Default: routefs.OS().
func WithFS(fsys routefs.FS) ScannerOption {
	return func(s *Scanner) {
		s.fsys = fsys
	}
}

// WithExtensions replaces the accepted file extensions. Each entry should
// include the leading dot.
func WithExtensions(exts ...string) ScannerOption {
	return func(s *Scanner) {
		s.exts = exts
	}
}

// NewScanner creates a scanner rooted at root. When the filesystem can
// resolve absolute paths the root is absolutized up front, so descriptor
// file paths come out absolute.
func NewScanner(root string, opts ...ScannerOption) *Scanner {
	s := &Scanner{
		root: root,
		fsys: routefs.OS(),
		exts: DefaultExtensions,
	}
	for _, opt := range opts {
		opt(s)
	}

	if a, ok := s.fsys.(routefs.AbsFS); ok {
		if abs, err := a.AbsolutePath(s.root); err == nil {
			s.root = abs
		}
	}

	return s
}

// Scan walks the tree and returns descriptors in registration order:
// middleware before routes, deeper paths first, ties broken by descending
// path comparison. Scanning an unchanged tree twice yields structurally
// identical results.
func (s *Scanner) Scan() ([]*Descriptor, error) {
	return s.ScanWithOptions(ScanOptions{Sort: true})
}

// ScanOptions configures scanning behavior.
type ScanOptions struct {
	// Sort enables registration-order sorting. When false, descriptors
	// come back in walk order.
	Sort bool
}

// ScanWithOptions walks the tree with configurable post-processing.
func (s *Scanner) ScanWithOptions(opts ScanOptions) ([]*Descriptor, error) {
	var descriptors []*Descriptor

	if err := s.walk(s.root, &descriptors); err != nil {
		return nil, err
	}

	if opts.Sort {
		Sort(descriptors)
	}

	return descriptors, nil
}

// walk recurses through dir, collecting a descriptor for every file that
// matches one of the four filename conventions. Everything else is
// ignored; a routes directory commonly holds helpers and type definitions
// alongside route files.
func (s *Scanner) walk(dir string, out *[]*Descriptor) error {
	names, err := s.fsys.ListEntries(dir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", dir, err)
	}

	for _, name := range names {
		full := s.fsys.JoinPath(dir, name)

		isDir, err := s.fsys.IsDirectory(full)
		if err != nil {
			return fmt.Errorf("reading %s: %w", full, err)
		}
		if isDir {
			if err := s.walk(full, out); err != nil {
				return err
			}
			continue
		}

		desc, err := s.scanFile(full, name)
		if err != nil {
			return err
		}
		if desc != nil {
			*out = append(*out, desc)
		}
	}

	return nil
}

// scanFile classifies one file against the conventions and compiles its
// descriptor. Files matching no convention yield nil.
func (s *Scanner) scanFile(full, name string) (*Descriptor, error) {
	stem, isMiddleware, ok := s.classify(name)
	if !ok {
		return nil, nil
	}

	rel, err := s.fsys.RelativePath(s.root, full)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", full, err)
	}

	// The pattern source is the directory part of the relative path plus
	// the filename stem. The bare conventions contribute no stem.
	bare := parentPath(rel)
	if stem != "" {
		if bare == "" {
			bare = stem
		} else {
			bare = bare + "/" + stem
		}
	}

	path, params, catchAll := compilePath(bare)

	return &Descriptor{
		Path:         path,
		Params:       params,
		FilePath:     full,
		IsMiddleware: isMiddleware,
		IsCatchAll:   catchAll,
	}, nil
}

// classify matches a filename against the four conventions:
//
//	route<ext>              bare route file
//	<name>.route<ext>       suffixed route file
//	middleware<ext>         bare middleware file
//	<name>.middleware<ext>  suffixed middleware file
//
// It returns the stem contributing to the pattern ("" for the bare
// forms), the middleware flag, and whether the name matched at all.
func (s *Scanner) classify(name string) (stem string, isMiddleware, ok bool) {
	for _, ext := range s.exts {
		switch {
		case name == "route"+ext:
			return "", false, true
		case name == "middleware"+ext:
			return "", true, true
		case strings.HasSuffix(name, ".route"+ext):
			return strings.TrimSuffix(name, ".route"+ext), false, true
		case strings.HasSuffix(name, ".middleware"+ext):
			return strings.TrimSuffix(name, ".middleware"+ext), true, true
		}
	}
	return "", false, false
}

// parentPath returns the directory portion of a relative file path in
// slash form, "" for files at the root. Windows separators are normalized
// here so compilation only ever sees "/".
func parentPath(rel string) string {
	rel = strings.ReplaceAll(rel, "\\", "/")
	if idx := strings.LastIndex(rel, "/"); idx >= 0 {
		return rel[:idx]
	}
	return ""
}
