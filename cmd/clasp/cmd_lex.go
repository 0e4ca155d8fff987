package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/clasp/meta"
)

func newLexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lex [file]",
		Short: "Dump the token stream the validator sees",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := io.Reader(os.Stdin)
			name := "<stdin>"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open %s: %w", args[0], err)
				}
				defer f.Close()
				r = f
				name = args[0]
			}
			return runLex(r, name, os.Stdout)
		},
	}
}

func runLex(r io.Reader, name string, w io.Writer) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		lx := meta.NewLexer(sc.Text())
		for {
			tok := lx.Next()
			if tok.Kind == meta.TokenEOF {
				break
			}
			fmt.Fprintf(w, "%s:%d:%d\t%s\t%q\n", name, lineNo, tok.Off+1, tok.Kind, tok.Literal)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	return nil
}
