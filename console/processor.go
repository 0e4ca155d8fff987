// Package console implements the interactive session around the
// validator: line intake, meta-commands, prompt state, and the
// hand-off of completed statements to a pluggable sink.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/clasp/compiler"
	"github.com/dhamidi/clasp/meta"
	"github.com/dhamidi/clasp/platform"
)

// Sink receives each completed statement.
type Sink func(statement string) error

// Processor drives one console session. Ordinary lines go through the
// validator; lines opening with a dot are meta-commands.
type Processor struct {
	cfg       *Config
	validator *meta.Validator
	includes  *compiler.IncludeOptions
	libs      []*platform.Dylib
	sink      Sink
	out       io.Writer
}

// NewProcessor builds a session from the configuration, seeding the
// header search path from it. A nil sink selects the configured
// compiler when one is set, otherwise accepted statements are printed
// to out.
func NewProcessor(cfg *Config, out io.Writer, sink Sink) (*Processor, error) {
	p := &Processor{
		cfg:       cfg,
		validator: meta.NewValidator(),
		includes:  compiler.NewIncludeOptions(),
		sink:      sink,
		out:       out,
	}
	for _, list := range cfg.IncludePaths {
		p.addIncludes(list)
	}
	if p.sink == nil {
		if len(cfg.Compiler) > 0 {
			inv, err := compiler.NewInvocation(cfg.Compiler, p.includes)
			if err != nil {
				return nil, err
			}
			p.sink = inv.Run
		} else {
			p.sink = func(statement string) error {
				_, err := fmt.Fprintln(out, statement)
				return err
			}
		}
	}
	return p, nil
}

// Process consumes one line. Known meta-commands run even while a
// statement is pending, so .@ can abandon half-typed input; an unknown
// dot line mid-statement is ordinary input, since a member access can
// open a continuation line. The returned quit is true after .q or
// .quit. Errors keep the session alive.
func (p *Processor) Process(line string) (quit bool, err error) {
	if name, args := splitCommand(line); name != "" {
		if knownCommand(name) {
			return p.runCommand(name, args)
		}
		if !p.Pending() {
			return false, fmt.Errorf("unknown command %s, try .help", name)
		}
	}
	return false, p.feed(line)
}

// feed hands one ordinary line to the validator and acts on the
// verdict.
func (p *Processor) feed(line string) error {
	switch p.validator.Validate(line) {
	case meta.Complete:
		statement := p.validator.Input()
		p.validator.Reset()
		if strings.TrimSpace(statement) == "" {
			return nil
		}
		return p.sink(statement)
	case meta.Mismatch:
		p.validator.Reset()
		return fmt.Errorf("mismatched closing bracket, input discarded")
	}
	return nil
}

// Pending reports whether a statement is still accumulating.
func (p *Processor) Pending() bool {
	return p.validator.Input() != ""
}

// Depth returns the number of open contexts in the pending statement.
func (p *Processor) Depth() int {
	return p.validator.Depth()
}

// InBlockComment reports whether the pending statement has an open
// block comment.
func (p *Processor) InBlockComment() bool {
	return p.validator.InBlockComment()
}

// Prompt renders the prompt for the next read: the primary prompt at a
// fresh statement, otherwise the continuation marker indented one step
// per open context, with a distinct marker while a block comment is
// open.
func (p *Processor) Prompt() string {
	if !p.Pending() {
		return p.cfg.Prompt
	}
	marker := p.cfg.More
	if p.InBlockComment() {
		marker = p.cfg.CommentMore
	}
	return marker + strings.Repeat("  ", p.Depth())
}

// Includes exposes the header search options, shared with the compiler
// invocation so .I additions reach it.
func (p *Processor) Includes() *compiler.IncludeOptions {
	return p.includes
}

// Libraries returns the paths of the currently loaded libraries.
func (p *Processor) Libraries() []string {
	paths := make([]string, len(p.libs))
	for i, lib := range p.libs {
		paths[i] = lib.Path()
	}
	return paths
}

// LoadStartupLibraries loads the libraries named in the configuration.
func (p *Processor) LoadStartupLibraries() error {
	for _, path := range p.cfg.Libraries {
		if _, err := p.LoadLibrary(path); err != nil {
			return err
		}
	}
	return nil
}

// Close unloads every library still loaded.
func (p *Processor) Close() error {
	var first error
	for _, lib := range p.libs {
		if err := lib.Close(); err != nil && first == nil {
			first = err
		}
	}
	p.libs = nil
	return first
}
