package console

import (
	"bufio"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/dhamidi/clasp/meta"
	"github.com/dhamidi/clasp/platform"
)

const helpText = `Commands:
  .q, .quit     end the session
  .help, .?     show this help
  .L <path>     load a shared library
  .U <path>     unload a loaded library
  .I [path]     print include flags, or append search directories
  .x <file>     run a file statement by statement
  .@            abandon the current statement
`

// splitCommand extracts the meta-command word opening line and its
// arguments, or "" for ordinary input. A dot followed by a digit is
// input: a float literal can open a statement.
func splitCommand(line string) (name string, args []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], ".") {
		return "", nil
	}
	if len(fields[0]) > 1 && fields[0][1] >= '0' && fields[0][1] <= '9' {
		return "", nil
	}
	return fields[0], fields[1:]
}

func knownCommand(name string) bool {
	switch name {
	case ".q", ".quit", ".help", ".?", ".L", ".U", ".I", ".x", ".@":
		return true
	}
	return false
}

func (p *Processor) runCommand(name string, args []string) (quit bool, err error) {
	switch name {
	case ".q", ".quit":
		return true, nil
	case ".help", ".?":
		fmt.Fprint(p.out, helpText)
	case ".L":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: .L <path>")
		}
		if _, err := p.LoadLibrary(args[0]); err != nil {
			return false, err
		}
	case ".U":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: .U <path>")
		}
		return false, p.UnloadLibrary(args[0])
	case ".I":
		if len(args) == 0 {
			p.includes.Dump(p.out, true, true)
			return false, nil
		}
		for _, list := range args {
			p.addIncludes(list)
		}
	case ".x":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: .x <file>")
		}
		return false, p.executeFile(args[0])
	case ".@":
		p.validator.Reset()
	}
	return false, nil
}

// LoadLibrary opens a shared library and keeps it for the session.
func (p *Processor) LoadLibrary(path string) (*platform.Dylib, error) {
	lib, err := platform.OpenLibrary(path)
	if err != nil {
		return nil, err
	}
	p.libs = append(p.libs, lib)
	fmt.Fprintf(p.out, "loaded %s\n", lib.Path())
	return lib, nil
}

// UnloadLibrary closes a library previously loaded with LoadLibrary.
func (p *Processor) UnloadLibrary(path string) error {
	for i, lib := range p.libs {
		if lib.Path() != path {
			continue
		}
		p.libs = slices.Delete(p.libs, i, i+1)
		if err := lib.Close(); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "unloaded %s\n", path)
		return nil
	}
	return fmt.Errorf("%s is not loaded", path)
}

// addIncludes splits a PATH-style list and appends the directories
// that exist to the header search path.
func (p *Processor) addIncludes(list string) {
	dirs, all := platform.SplitPaths(list, "", false)
	if !all {
		fmt.Fprintf(p.out, "ignoring missing directories in %q\n", list)
	}
	for _, dir := range dirs {
		p.includes.AddPath(dir)
	}
}

// executeFile validates a file line by line with a fresh validator and
// submits each completed statement, leaving the session state alone.
func (p *Processor) executeFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("execute %s: %w", path, err)
	}
	defer f.Close()

	v := meta.NewValidator()
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		switch v.Validate(sc.Text()) {
		case meta.Complete:
			statement := v.Input()
			v.Reset()
			if strings.TrimSpace(statement) == "" {
				continue
			}
			if err := p.sink(statement); err != nil {
				return fmt.Errorf("%s:%d: %w", path, lineNo, err)
			}
		case meta.Mismatch:
			return fmt.Errorf("%s:%d: mismatched closing bracket", path, lineNo)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("execute %s: %w", path, err)
	}
	if v.Depth() > 0 {
		return fmt.Errorf("%s: unterminated statement at end of file", path)
	}
	return nil
}
