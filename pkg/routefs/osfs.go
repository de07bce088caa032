package routefs

import (
	"os"
	"path/filepath"
)

// osFS walks the real filesystem.
type osFS struct{}

// OS returns the operating-system filesystem. It is the scanner's default.
func OS() FS {
	return osFS{}
}

func (osFS) ListEntries(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func (osFS) IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (osFS) JoinPath(elem ...string) string {
	return filepath.Join(elem...)
}

func (osFS) RelativePath(base, target string) (string, error) {
	return filepath.Rel(base, target)
}

func (osFS) AbsolutePath(path string) (string, error) {
	return filepath.Abs(path)
}
