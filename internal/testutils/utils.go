package testutils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// MustWriteFile writes data to a file or fails the test, creating parent directories if needed.
func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("failed to create directory %q: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file %q: %v", path, err)
	}
}

// FakeJira is an httptest server answering every request with a fixed status and body.
// It records the requests it receives.
type FakeJira struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
}

// NewFakeJira starts a FakeJira and closes it when the test ends.
func NewFakeJira(t *testing.T, status int, body string) *FakeJira {
	t.Helper()

	f := &FakeJira{}
	f.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.Clone(r.Context()))
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body)) // nolint:errcheck
	}))
	t.Cleanup(f.Close)
	return f
}

// Requests returns the requests received so far.
func (f *FakeJira) Requests() []*http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*http.Request(nil), f.requests...)
}
