package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestDiagnosticsCleanDocument(t *testing.T) {
	text := "int a = 1;\nvoid f() {\n  return;\n}\n"
	if got := Diagnostics(text); len(got) != 0 {
		t.Errorf("Diagnostics() = %v, want none", got)
	}
}

func TestDiagnosticsMismatch(t *testing.T) {
	text := "int a;\n);\nint b;\n"
	got := Diagnostics(text)
	if len(got) != 1 {
		t.Fatalf("Diagnostics() returned %d diagnostics, want 1: %v", len(got), got)
	}
	d := got[0]
	if d.Range.Start.Line != 1 || d.Range.End.Line != 1 {
		t.Errorf("diagnostic on line %d, want 1", d.Range.Start.Line)
	}
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Source == nil || *d.Source != "clasp" {
		t.Errorf("Source = %v, want clasp", d.Source)
	}
	if d.Message != "mismatched closing bracket" {
		t.Errorf("Message = %q", d.Message)
	}
}

func TestDiagnosticsResumeAfterMismatch(t *testing.T) {
	text := ");\n};\nint ok;\n"
	got := Diagnostics(text)
	if len(got) != 2 {
		t.Fatalf("Diagnostics() returned %d diagnostics, want 2: %v", len(got), got)
	}
	if got[0].Range.Start.Line != 0 || got[1].Range.Start.Line != 1 {
		t.Errorf("diagnostics on lines %d and %d, want 0 and 1",
			got[0].Range.Start.Line, got[1].Range.Start.Line)
	}
}

func TestDiagnosticsOpenStatementWarning(t *testing.T) {
	text := "void f() {\n  int x;"
	got := Diagnostics(text)
	if len(got) != 1 {
		t.Fatalf("Diagnostics() returned %d diagnostics, want 1: %v", len(got), got)
	}
	d := got[0]
	if d.Severity == nil || *d.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("Severity = %v, want warning", d.Severity)
	}
	if d.Range.Start.Line != 1 {
		t.Errorf("warning on line %d, want last line 1", d.Range.Start.Line)
	}
	if d.Message != "statement still open at end of file" {
		t.Errorf("Message = %q", d.Message)
	}
}

func TestDiagnosticsOpenCommentWarning(t *testing.T) {
	text := "/* half-written\n"
	got := Diagnostics(text)
	if len(got) != 1 {
		t.Fatalf("Diagnostics() returned %d diagnostics, want 1: %v", len(got), got)
	}
	if got[0].Message != "block comment still open at end of file" {
		t.Errorf("Message = %q", got[0].Message)
	}
	if got[0].Severity == nil || *got[0].Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("Severity = %v, want warning", got[0].Severity)
	}
}

func TestDiagnosticsEmptyDocument(t *testing.T) {
	if got := Diagnostics(""); len(got) != 0 {
		t.Errorf("Diagnostics(\"\") = %v, want none", got)
	}
}

func TestDiagnosticsRangeCoversLine(t *testing.T) {
	got := Diagnostics("foo);\n")
	if len(got) != 1 {
		t.Fatalf("Diagnostics() returned %d diagnostics, want 1", len(got))
	}
	if got[0].Range.End.Character != 5 {
		t.Errorf("End.Character = %d, want 5", got[0].Range.End.Character)
	}
}
