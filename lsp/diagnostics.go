// Package lsp publishes validator verdicts as language server
// diagnostics over stdio, with full-document sync.
package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/clasp/meta"
)

const sourceName = "clasp"

// Diagnostics checks the whole document text: every mismatching line
// yields an error, and a document that ends mid-statement yields a
// warning on its last line. Validation resumes after a mismatch so one
// bad line does not mute the rest of the document.
func Diagnostics(text string) []protocol.Diagnostic {
	var diags []protocol.Diagnostic
	v := meta.NewValidator()
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		switch v.Validate(line) {
		case meta.Complete:
			v.Reset()
		case meta.Mismatch:
			diags = append(diags, lineDiagnostic(i, line,
				protocol.DiagnosticSeverityError, "mismatched closing bracket"))
			v.Reset()
		}
	}
	if v.Depth() > 0 {
		last := len(lines) - 1
		message := "statement still open at end of file"
		if v.InBlockComment() {
			message = "block comment still open at end of file"
		}
		diags = append(diags, lineDiagnostic(last, lines[last],
			protocol.DiagnosticSeverityWarning, message))
	}
	return diags
}

func lineDiagnostic(line int, text string, severity protocol.DiagnosticSeverity, message string) protocol.Diagnostic {
	source := sourceName
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: protocol.UInteger(line)},
			End:   protocol.Position{Line: protocol.UInteger(line), Character: protocol.UInteger(len(text))},
		},
		Severity: &severity,
		Source:   &source,
		Message:  message,
	}
}
