package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clasp/platform"
)

func newLibsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "libs",
		Short: "Inspect and load shared libraries",
	}

	cmd.AddCommand(newLibsListCmd())
	cmd.AddCommand(newLibsLoadCmd())

	return cmd
}

func newLibsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List shared libraries on the system search path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibsList()
		},
	}
}

func runLibsList() error {
	dirs, err := platform.SystemLibraryPaths()
	if err != nil {
		return err
	}
	if len(dirs) == 0 {
		fmt.Println("no system library search paths found")
		return nil
	}
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() || !isLibraryFile(e.Name()) {
				continue
			}
			fmt.Println(filepath.Join(dir, e.Name()))
		}
	}
	return nil
}

func isLibraryFile(name string) bool {
	return strings.Contains(name, ".so") ||
		strings.HasSuffix(name, ".dylib") ||
		strings.HasSuffix(name, ".a")
}

func newLibsLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <path>...",
		Short: "Check that shared libraries can be loaded",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLibsLoad(args)
		},
	}
}

func runLibsLoad(paths []string) error {
	failed := 0
	for _, path := range paths {
		lib, err := platform.OpenLibrary(path)
		if err != nil {
			fmt.Printf("[FAIL] %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("[OK] %s\n", path)
		_ = lib.Close()
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d libraries failed to load", failed, len(paths))
	}
	return nil
}
