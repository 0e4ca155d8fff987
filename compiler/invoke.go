package compiler

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Invocation runs an external compiler over completed statements. The
// zero value is not usable; construct with NewInvocation.
type Invocation struct {
	argv     []string
	includes *IncludeOptions
	stdout   io.Writer
	stderr   io.Writer
}

// NewInvocation prepares a compiler invocation from an argv whose first
// element is the command. Include options may be nil.
func NewInvocation(argv []string, includes *IncludeOptions) (*Invocation, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("compiler: empty command")
	}
	return &Invocation{
		argv:     argv,
		includes: includes,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}, nil
}

// SetOutput redirects the child's stdout and stderr, mainly for tests.
func (in *Invocation) SetOutput(stdout, stderr io.Writer) {
	in.stdout = stdout
	in.stderr = stderr
}

// Args returns the full argument vector, include flags appended.
func (in *Invocation) Args() []string {
	args := append([]string{}, in.argv...)
	if in.includes != nil {
		args = append(args, in.includes.Flags(true, true)...)
	}
	return args
}

// Run feeds one statement to the compiler on stdin and waits for it to
// finish. The child inherits the invocation's output streams.
func (in *Invocation) Run(statement string) error {
	args := in.Args()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(statement + "\n")
	cmd.Stdout = in.stdout
	cmd.Stderr = in.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
