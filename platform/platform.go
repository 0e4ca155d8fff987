// Package platform wraps the host facilities an interactive compiler
// session leans on: canonical filesystem paths, PATH-style list
// handling, dynamic library loading, system library search paths, and
// a raw memory readability probe.
package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath resolves path to an absolute, symlink-free, cleaned
// form. The path must exist.
func NormalizePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("normalize %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("normalize %s: %w", path, err)
	}
	return resolved, nil
}

// SplitPaths splits a PATH-style list on delim and keeps the entries
// that name existing directories. The boolean reports whether every
// entry existed. With earlyOut set, splitting stops at the first
// missing entry. An empty delim means the platform list separator.
func SplitPaths(list, delim string, earlyOut bool) ([]string, bool) {
	if delim == "" {
		delim = string(os.PathListSeparator)
	}

	allExisted := true
	var dirs []string
	for _, dir := range strings.Split(list, delim) {
		if !isDirectory(dir) {
			allExisted = false
			if earlyOut {
				return dirs, false
			}
			continue
		}
		dirs = append(dirs, dir)
	}
	return dirs, allExisted
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
