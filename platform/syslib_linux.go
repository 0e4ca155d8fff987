//go:build linux

package platform

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// SystemLibraryPaths reports the dynamic loader's library search
// directories that exist on this host. The loader prints its search
// path when LD_DEBUG=libs is set, so run a throwaway binary under that
// and scrape the report; preloading a missing library forces a search
// even when everything else is cached.
func SystemLibraryPaths() ([]string, error) {
	cmd := exec.Command("ls")
	cmd.Env = append(os.Environ(), "LD_DEBUG=libs", "LD_PRELOAD=DOESNOTEXIST")
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("query loader search path: %w", err)
	}

	report := string(out)
	if ld := strings.Index(report, "(LD_LIBRARY_PATH)"); ld >= 0 {
		report = report[ld:]
	}
	i := strings.Index(report, "search path=")
	if i < 0 {
		return nil, nil
	}
	report = report[i+len("search path="):]
	j := strings.Index(report, "(system search path)")
	if j < 0 {
		return nil, nil
	}

	list := report[:j]
	list = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, list)

	paths, _ := SplitPaths(list, ":", false)
	return paths, nil
}
