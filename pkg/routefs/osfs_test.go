package routefs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestOSListEntries(t *testing.T) {
	dir := t.TempDir()

	files := []string{"users.route.ts", "auth.middleware.ts", "helpers.ts"}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("// test"), 0644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}
	if err := os.MkdirAll(filepath.Join(dir, "admin"), 0755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	fsys := OS()
	names, err := fsys.ListEntries(dir)
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}

	// os.ReadDir sorts by name.
	want := []string{"admin", "auth.middleware.ts", "helpers.ts", "users.route.ts"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListEntries = %v, want %v", names, want)
	}
}

func TestOSListEntriesMissingDir(t *testing.T) {
	fsys := OS()
	if _, err := fsys.ListEntries(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestOSIsDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "route.ts")
	if err := os.WriteFile(file, []byte("// test"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	fsys := OS()

	isDir, err := fsys.IsDirectory(dir)
	if err != nil {
		t.Fatalf("IsDirectory(%q): %v", dir, err)
	}
	if !isDir {
		t.Errorf("IsDirectory(%q) = false, want true", dir)
	}

	isDir, err = fsys.IsDirectory(file)
	if err != nil {
		t.Fatalf("IsDirectory(%q): %v", file, err)
	}
	if isDir {
		t.Errorf("IsDirectory(%q) = true, want false", file)
	}
}

func TestOSRelativePath(t *testing.T) {
	fsys := OS()

	rel, err := fsys.RelativePath(filepath.Join("app", "routes"), filepath.Join("app", "routes", "admin", "users.route.ts"))
	if err != nil {
		t.Fatalf("RelativePath: %v", err)
	}
	if want := filepath.Join("admin", "users.route.ts"); rel != want {
		t.Errorf("RelativePath = %q, want %q", rel, want)
	}
}

func TestOSAbsolutePath(t *testing.T) {
	fsys := OS().(AbsFS)

	abs, err := fsys.AbsolutePath("routes")
	if err != nil {
		t.Fatalf("AbsolutePath: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("AbsolutePath(%q) = %q, want absolute", "routes", abs)
	}
}
