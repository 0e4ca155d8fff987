//go:build !darwin && !freebsd && !linux

package platform

import "fmt"

// Dylib is a loaded shared library. This platform cannot load any.
type Dylib struct {
	path string
}

func OpenLibrary(path string) (*Dylib, error) {
	return nil, fmt.Errorf("load %s: dynamic libraries are not supported on this platform", path)
}

func (d *Dylib) Path() string {
	return d.path
}

func (d *Dylib) Close() error {
	return fmt.Errorf("dynamic libraries are not supported on this platform")
}
