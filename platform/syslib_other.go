//go:build !linux && !darwin

package platform

// SystemLibraryPaths has no loader to ask on this platform.
func SystemLibraryPaths() ([]string, error) {
	return nil, nil
}
