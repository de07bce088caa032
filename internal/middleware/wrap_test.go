package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		mount string
		path  string
		want  bool
	}{
		{"/", "/", true},
		{"/", "/anything/below", true},
		{"/admin", "/admin", true},
		{"/admin", "/admin/users", true},
		{"/admin", "/administrator", false},
		{"/admin", "/", false},
		{"/users/:id", "/users/42", true},
		{"/users/:id", "/users/42/posts", true},
		{"/users/:id", "/users", false},
		{"/files/*", "/files/a/b/c.txt", true},
		{"/files/*", "/files", false},
	}

	for _, tt := range tests {
		if got := Matches(tt.mount, tt.path); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.mount, tt.path, got, tt.want)
		}
	}
}

func TestPrefixPassThrough(t *testing.T) {
	var hookRan, nextRan bool
	hook := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hookRan = true
		w.Header().Set("X-Hook", "1")
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextRan = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Prefix("/admin", hook)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/admin/users", nil))

	if !hookRan || !nextRan {
		t.Errorf("hookRan = %v, nextRan = %v, want both", hookRan, nextRan)
	}
	if rec.Header().Get("X-Hook") != "1" {
		t.Error("hook header lost")
	}
}

func TestPrefixShortCircuit(t *testing.T) {
	hook := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler ran after middleware wrote a response")
	})

	rec := httptest.NewRecorder()
	Prefix("/admin", hook)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/admin", nil))

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestPrefixOutsideMount(t *testing.T) {
	hook := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("hook ran outside its mount")
	})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	Prefix("/admin", hook)(next).ServeHTTP(rec, httptest.NewRequest("GET", "/public", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

func TestWriterTracksHeaderOnly(t *testing.T) {
	rec := httptest.NewRecorder()
	w := NewWriter(rec)

	if w.Wrote() {
		t.Error("fresh Writer reports wrote")
	}
	w.WriteHeader(http.StatusAccepted)
	if !w.Wrote() {
		t.Error("WriteHeader did not mark the writer")
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("status = %d, want 202", rec.Code)
	}
}
