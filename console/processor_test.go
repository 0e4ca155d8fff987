package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTestProcessor(t *testing.T) (*Processor, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	p, err := NewProcessor(DefaultConfig(), &out, nil)
	if err != nil {
		t.Fatalf("NewProcessor() error = %v", err)
	}
	return p, &out
}

func TestProcessEchoesStatement(t *testing.T) {
	p, out := newTestProcessor(t)
	quit, err := p.Process("int x = 1;")
	if quit || err != nil {
		t.Fatalf("Process() = %v, %v, want false, nil", quit, err)
	}
	if got, want := out.String(), "int x = 1;\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProcessMultilineStatement(t *testing.T) {
	p, out := newTestProcessor(t)
	if _, err := p.Process("void f() {"); err != nil {
		t.Fatal(err)
	}
	if !p.Pending() {
		t.Fatal("Pending() = false after open brace, want true")
	}
	if got := p.Depth(); got != 1 {
		t.Errorf("Depth() = %d, want 1", got)
	}
	if out.Len() != 0 {
		t.Errorf("output = %q before completion, want empty", out.String())
	}
	if _, err := p.Process("}"); err != nil {
		t.Fatal(err)
	}
	if p.Pending() {
		t.Error("Pending() = true after close brace, want false")
	}
	if got, want := out.String(), "void f() {\n}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProcessMismatchKeepsSession(t *testing.T) {
	p, out := newTestProcessor(t)
	if _, err := p.Process(")"); err == nil {
		t.Fatal(`Process(")") error = nil, want mismatch error`)
	}
	if p.Pending() {
		t.Error("Pending() = true after mismatch, want false")
	}
	out.Reset()
	if _, err := p.Process("int y;"); err != nil {
		t.Fatalf("Process() after mismatch error = %v", err)
	}
	if got, want := out.String(), "int y;\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProcessBlankLine(t *testing.T) {
	p, out := newTestProcessor(t)
	quit, err := p.Process("")
	if quit || err != nil {
		t.Fatalf("Process(\"\") = %v, %v, want false, nil", quit, err)
	}
	if p.Pending() {
		t.Error("Pending() = true after blank line, want false")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q, want empty", out.String())
	}
}

func TestProcessQuit(t *testing.T) {
	for _, cmd := range []string{".q", ".quit", "  .q"} {
		t.Run(cmd, func(t *testing.T) {
			p, _ := newTestProcessor(t)
			quit, err := p.Process(cmd)
			if err != nil {
				t.Fatalf("Process(%q) error = %v", cmd, err)
			}
			if !quit {
				t.Errorf("Process(%q) quit = false, want true", cmd)
			}
		})
	}
}

func TestProcessUnknownCommand(t *testing.T) {
	p, _ := newTestProcessor(t)
	quit, err := p.Process(".bogus")
	if err == nil {
		t.Fatal("Process(.bogus) error = nil, want error")
	}
	if quit {
		t.Error("Process(.bogus) quit = true, want false")
	}
}

func TestProcessFloatLiteralIsInput(t *testing.T) {
	p, out := newTestProcessor(t)
	if _, err := p.Process(".5 + x;"); err != nil {
		t.Fatalf("Process(.5 + x;) error = %v", err)
	}
	if got, want := out.String(), ".5 + x;\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestProcessCancelCommand(t *testing.T) {
	p, out := newTestProcessor(t)
	if _, err := p.Process("int x = ("); err != nil {
		t.Fatal(err)
	}
	if !p.Pending() {
		t.Fatal("Pending() = false, want true")
	}
	if _, err := p.Process(".@"); err != nil {
		t.Fatalf("Process(.@) error = %v", err)
	}
	if p.Pending() {
		t.Error("Pending() = true after cancel, want false")
	}
	if out.Len() != 0 {
		t.Errorf("output = %q after cancel, want empty", out.String())
	}
}

func TestProcessDotLineMidStatement(t *testing.T) {
	p, out := newTestProcessor(t)
	if _, err := p.Process("f("); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Process(".method()"); err != nil {
		t.Fatalf("Process(dot line mid-statement) error = %v", err)
	}
	if !p.Pending() {
		t.Fatal("Pending() = false, want true")
	}
	if _, err := p.Process(");"); err != nil {
		t.Fatal(err)
	}
	if got, want := out.String(), "f(\n.method()\n);\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestPrompt(t *testing.T) {
	p, _ := newTestProcessor(t)
	if got, want := p.Prompt(), "[clasp]$ "; got != want {
		t.Errorf("Prompt() = %q, want %q", got, want)
	}
	p.Process("struct S {")
	if got, want := p.Prompt(), "?   "; got != want {
		t.Errorf("Prompt() at depth 1 = %q, want %q", got, want)
	}
	p.Process("/*")
	if got, want := p.Prompt(), "*     "; got != want {
		t.Errorf("Prompt() in comment = %q, want %q", got, want)
	}
}

func TestHelpCommand(t *testing.T) {
	for _, cmd := range []string{".help", ".?"} {
		t.Run(cmd, func(t *testing.T) {
			p, out := newTestProcessor(t)
			if _, err := p.Process(cmd); err != nil {
				t.Fatalf("Process(%s) error = %v", cmd, err)
			}
			for _, want := range []string{".quit", ".L", ".x"} {
				if !strings.Contains(out.String(), want) {
					t.Errorf("help output misses %q", want)
				}
			}
		})
	}
}

func TestIncludeCommand(t *testing.T) {
	p, out := newTestProcessor(t)
	dir := t.TempDir()
	if _, err := p.Process(".I " + dir); err != nil {
		t.Fatalf("Process(.I) error = %v", err)
	}
	if got, want := p.Includes().Paths(), []string{dir}; !reflect.DeepEqual(got, want) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}
	out.Reset()
	if _, err := p.Process(".I"); err != nil {
		t.Fatalf("Process(.I) error = %v", err)
	}
	if !strings.Contains(out.String(), "-I\n"+dir) {
		t.Errorf("dump output = %q, want it to list -I %s", out.String(), dir)
	}
}

func TestIncludeCommandMissingDir(t *testing.T) {
	p, out := newTestProcessor(t)
	missing := filepath.Join(t.TempDir(), "nope")
	if _, err := p.Process(".I " + missing); err != nil {
		t.Fatalf("Process(.I) error = %v", err)
	}
	if got := p.Includes().Paths(); len(got) != 0 {
		t.Errorf("Paths() = %v, want empty", got)
	}
	if !strings.Contains(out.String(), "ignoring") {
		t.Errorf("output = %q, want a warning about missing directories", out.String())
	}
}

func TestExecuteFileCommand(t *testing.T) {
	p, out := newTestProcessor(t)
	path := filepath.Join(t.TempDir(), "prog.c")
	src := "int a = 1;\nvoid f() {\n}\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Process(".x " + path); err != nil {
		t.Fatalf("Process(.x) error = %v", err)
	}
	if got, want := out.String(), "int a = 1;\nvoid f() {\n}\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
	if p.Pending() {
		t.Error("Pending() = true after .x, want false")
	}
}

func TestExecuteFileMissing(t *testing.T) {
	p, _ := newTestProcessor(t)
	path := filepath.Join(t.TempDir(), "absent.c")
	if _, err := p.Process(".x " + path); err == nil {
		t.Error("Process(.x absent) error = nil, want error")
	}
}

func TestExecuteFileUnterminated(t *testing.T) {
	p, _ := newTestProcessor(t)
	path := filepath.Join(t.TempDir(), "open.c")
	if err := os.WriteFile(path, []byte("void f() {\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := p.Process(".x " + path)
	if err == nil || !strings.Contains(err.Error(), "unterminated") {
		t.Errorf("Process(.x open) error = %v, want unterminated statement", err)
	}
}

func TestExecuteFileMismatch(t *testing.T) {
	p, _ := newTestProcessor(t)
	path := filepath.Join(t.TempDir(), "bad.c")
	if err := os.WriteFile(path, []byte("int a;\n);\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := p.Process(".x " + path)
	if err == nil || !strings.Contains(err.Error(), ":2:") {
		t.Errorf("Process(.x bad) error = %v, want line 2 mismatch", err)
	}
}

func TestLoadLibraryMissing(t *testing.T) {
	p, _ := newTestProcessor(t)
	if _, err := p.Process(".L /nonexistent/libclasp.so"); err == nil {
		t.Error("Process(.L missing) error = nil, want error")
	}
	if got := p.Libraries(); len(got) != 0 {
		t.Errorf("Libraries() = %v, want empty", got)
	}
}

func TestUnloadNotLoaded(t *testing.T) {
	p, _ := newTestProcessor(t)
	_, err := p.Process(".U /tmp/libnope.so")
	if err == nil || !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("Process(.U) error = %v, want not loaded", err)
	}
}

func TestCommandUsageErrors(t *testing.T) {
	for _, cmd := range []string{".L", ".U", ".x", ".L a b"} {
		t.Run(cmd, func(t *testing.T) {
			p, _ := newTestProcessor(t)
			if _, err := p.Process(cmd); err == nil {
				t.Errorf("Process(%q) error = nil, want usage error", cmd)
			}
		})
	}
}

func TestSinkErrorSurfaces(t *testing.T) {
	var out bytes.Buffer
	sinkErr := errors.New("backend down")
	p, err := NewProcessor(DefaultConfig(), &out, func(string) error { return sinkErr })
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Process("int x;"); !errors.Is(err, sinkErr) {
		t.Errorf("Process() error = %v, want %v", err, sinkErr)
	}
}

func TestConfiguredCompilerSink(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Compiler = []string{"true"}
	var out bytes.Buffer
	p, err := NewProcessor(cfg, &out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Process("int x;"); err != nil {
		t.Errorf("Process() with true(1) sink error = %v", err)
	}

	cfg.Compiler = []string{"false"}
	p, err = NewProcessor(cfg, &out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Process("int x;"); err == nil {
		t.Error("Process() with false(1) sink error = nil, want exit error")
	}
}
