package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clasp/check"
)

func newCheckCmd() *cobra.Command {
	var watch bool
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check source files for unbalanced input",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				return runWatch(args, interval)
			}
			return runCheck(args)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep watching and re-check on change")
	cmd.Flags().DurationVarP(&interval, "interval", "i", time.Second, "poll interval for --watch")

	return cmd
}

func runCheck(paths []string) error {
	total, defective := 0, 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}
		var verdicts []check.Verdict
		if info.IsDir() {
			verdicts, err = check.Dir(path)
		} else {
			var v check.Verdict
			v, err = check.File(path)
			verdicts = []check.Verdict{v}
		}
		if err != nil {
			return err
		}
		for _, v := range verdicts {
			fmt.Println(v)
			total++
			if !v.OK() {
				defective++
			}
		}
	}
	if defective > 0 {
		return fmt.Errorf("%d of %d files failed", defective, total)
	}
	return nil
}

func runWatch(paths []string, interval time.Duration) error {
	if len(paths) != 1 {
		return fmt.Errorf("--watch takes exactly one directory")
	}
	root := paths[0]
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("--watch needs a directory, got %s", root)
	}

	w := check.NewWatcher(root, interval, func(v check.Verdict) {
		fmt.Println(v)
	})
	w.Start()
	defer w.Stop()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)
	<-sigc
	return nil
}
