package routefs

import (
	"reflect"
	"testing"
	"testing/fstest"
)

func TestIOFSListEntries(t *testing.T) {
	fsys := FromIOFS(fstest.MapFS{
		"routes/users.route.ts":     {Data: []byte("// test")},
		"routes/auth.middleware.ts": {Data: []byte("// test")},
		"routes/admin/route.ts":     {Data: []byte("// test")},
	})

	names, err := fsys.ListEntries("routes")
	if err != nil {
		t.Fatalf("ListEntries: %v", err)
	}

	want := []string{"admin", "auth.middleware.ts", "users.route.ts"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("ListEntries = %v, want %v", names, want)
	}
}

func TestIOFSIsDirectory(t *testing.T) {
	fsys := FromIOFS(fstest.MapFS{
		"routes/admin/route.ts": {Data: []byte("// test")},
	})

	tests := []struct {
		path string
		want bool
	}{
		{".", true},
		{"", true},
		{"routes", true},
		{"routes/admin", true},
		{"routes/admin/route.ts", false},
	}

	for _, tt := range tests {
		got, err := fsys.IsDirectory(tt.path)
		if err != nil {
			t.Errorf("IsDirectory(%q): %v", tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("IsDirectory(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestIOFSJoinPath(t *testing.T) {
	fsys := FromIOFS(fstest.MapFS{})

	tests := []struct {
		elem []string
		want string
	}{
		{[]string{"routes", "admin"}, "routes/admin"},
		{[]string{".", "routes"}, "routes"},
		{[]string{"routes"}, "routes"},
	}

	for _, tt := range tests {
		if got := fsys.JoinPath(tt.elem...); got != tt.want {
			t.Errorf("JoinPath(%v) = %q, want %q", tt.elem, got, tt.want)
		}
	}
}

func TestIOFSRelativePath(t *testing.T) {
	fsys := FromIOFS(fstest.MapFS{})

	tests := []struct {
		base    string
		target  string
		want    string
		wantErr bool
	}{
		{".", "routes/users.route.ts", "routes/users.route.ts", false},
		{"routes", "routes/users.route.ts", "users.route.ts", false},
		{"routes", "routes/admin/route.ts", "admin/route.ts", false},
		{"routes", "routes", ".", false},
		{"routes", "other/file.ts", "", true},
	}

	for _, tt := range tests {
		got, err := fsys.RelativePath(tt.base, tt.target)
		if tt.wantErr {
			if err == nil {
				t.Errorf("RelativePath(%q, %q): expected error", tt.base, tt.target)
			}
			continue
		}
		if err != nil {
			t.Errorf("RelativePath(%q, %q): %v", tt.base, tt.target, err)
			continue
		}
		if got != tt.want {
			t.Errorf("RelativePath(%q, %q) = %q, want %q", tt.base, tt.target, got, tt.want)
		}
	}
}
