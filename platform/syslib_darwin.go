//go:build darwin

package platform

// SystemLibraryPaths reports the conventional library directories that
// exist on this host. Darwin's loader does not advertise its search
// path, so the historical fixed list stands in.
func SystemLibraryPaths() ([]string, error) {
	candidates := []string{
		"/usr/local/lib/",
		"/usr/X11R6/lib/",
		"/usr/lib/",
		"/lib/",
	}

	var paths []string
	for _, dir := range candidates {
		if isDirectory(dir) {
			paths = append(paths, dir)
		}
	}
	return paths, nil
}
