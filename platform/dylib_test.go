//go:build darwin || freebsd || linux

package platform

import (
	"strings"
	"testing"
)

func TestOpenLibraryMissing(t *testing.T) {
	const path = "/nonexistent/libclasp.so"
	lib, err := OpenLibrary(path)
	if err == nil {
		lib.Close()
		t.Fatalf("OpenLibrary(%q) error = nil, want error", path)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("OpenLibrary(%q) error = %q, want it to name the path", path, err)
	}
}
