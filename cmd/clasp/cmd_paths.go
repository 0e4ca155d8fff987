package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clasp/console"
	"github.com/dhamidi/clasp/platform"
)

func newPathsCmd() *cobra.Command {
	var libs bool
	var configDir string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Print the include flags for the current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaths(configDir, libs)
		},
	}

	cmd.Flags().BoolVar(&libs, "libs", false, "also print the system library search paths")
	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".",
		"directory searched for "+console.ConfigFileName)

	return cmd
}

func runPaths(configDir string, libs bool) error {
	cfg, err := console.LoadConfig(configDir)
	if err != nil {
		return err
	}
	proc, err := console.NewProcessor(cfg, os.Stdout, nil)
	if err != nil {
		return err
	}
	proc.Includes().Dump(os.Stdout, true, true)

	if libs {
		paths, err := platform.SystemLibraryPaths()
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Println(p)
		}
	}
	return nil
}
