package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/dhamidi/clasp/console"
)

func newReplCmd() *cobra.Command {
	var configDir string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive console",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(configDir)
		},
	}

	cmd.Flags().StringVarP(&configDir, "config-dir", "c", ".",
		"directory searched for "+console.ConfigFileName)

	return cmd
}

func runRepl(configDir string) error {
	cfg, err := console.LoadConfig(configDir)
	if err != nil {
		return err
	}
	proc, err := console.NewProcessor(cfg, os.Stdout, nil)
	if err != nil {
		return err
	}
	defer proc.Close()

	if err := proc.LoadStartupLibraries(); err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return replPlain(proc)
	}
	return replInteractive(proc, cfg)
}

// replPlain reads lines without editing or prompts, for piped input.
func replPlain(proc *console.Processor) error {
	sc := bufio.NewScanner(os.Stdin)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		quit, err := proc.Process(sc.Text())
		if err != nil {
			fmt.Fprintln(os.Stderr, "clasp:", err)
		}
		if quit {
			return nil
		}
	}
	return sc.Err()
}

func replInteractive(proc *console.Processor, cfg *console.Config) error {
	fmt.Printf("clasp %s  (.help for commands, .q to quit)\n", version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.HistoryFile); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	// Lines of the statement in progress, kept for the history entry.
	var pendingLines []string

	for {
		line, err := ln.Prompt(proc.Prompt())
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			// Ctrl-C abandons the half-typed statement.
			pendingLines = pendingLines[:0]
			if _, err := proc.Process(".@"); err != nil {
				fmt.Fprintln(os.Stderr, "clasp:", err)
			}
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return nil
		case err != nil:
			return err
		}

		quit, err := proc.Process(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "clasp:", err)
		}
		if quit {
			return nil
		}

		pendingLines = append(pendingLines, line)
		if !proc.Pending() {
			if entry := strings.TrimSpace(strings.Join(pendingLines, " ")); entry != "" {
				ln.AppendHistory(entry)
			}
			pendingLines = pendingLines[:0]
		}
	}
}
