//go:build darwin || freebsd || linux

package platform

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// Dylib is a loaded shared library.
type Dylib struct {
	handle uintptr
	path   string
}

// OpenLibrary loads a shared library with lazy binding and global
// symbol visibility, so symbols it provides stay resolvable for
// everything loaded after it.
func OpenLibrary(path string) (*Dylib, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return &Dylib{handle: handle, path: path}, nil
}

func (d *Dylib) Path() string {
	return d.path
}

// Close unloads the library.
func (d *Dylib) Close() error {
	if err := purego.Dlclose(d.handle); err != nil {
		return fmt.Errorf("unload %s: %w", d.path, err)
	}
	return nil
}
