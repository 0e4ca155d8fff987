package meta

import (
	"slices"
	"strings"
)

type Result int

const (
	Complete Result = iota
	Incomplete
	Mismatch
)

var resultNames = map[Result]string{
	Complete:   "Complete",
	Incomplete: "Incomplete",
	Mismatch:   "Mismatch",
}

func (r Result) String() string {
	if name, ok := resultNames[r]; ok {
		return name
	}
	return "Unknown"
}

// Validator decides, one physical line at a time, whether the input
// accumulated so far forms a complete top-level unit, still needs more
// lines, or already holds an unrecoverable bracket error.
//
// The nesting stack records every open context: the three bracket
// openers, TokenSlash standing for an open block comment, and a literal
// kind when a quoted literal runs past the end of its line. Stack and
// logical buffer persist across Validate calls until Reset.
type Validator struct {
	stack []TokenKind
	input strings.Builder
}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate consumes one physical line, without its terminator, and
// classifies the input gathered so far. After Mismatch the caller is
// expected to report and Reset; after Complete, to take Input and
// Reset.
func (v *Validator) Validate(line string) Result {
	res := Complete
	lx := NewLexer(line)

	// Boundary state drives the join rule below: a literal open across
	// the line boundary must not swallow a real newline.
	openLiteral := len(v.stack) > 0 && v.top().IsQuote()
	if openLiteral {
		if lx.ScanQuoted(v.top()) {
			v.pop()
		}
	}

	dg := digraph{inComment: v.InBlockComment()}

scan:
	for {
		tok := lx.Next()
		kind := tok.Kind

		switch dg.feed(kind) {
		case digraphOpen:
			v.stack = append(v.stack, TokenSlash)
			continue
		case digraphClose:
			v.unwindTo(TokenSlash)
			continue
		}

		switch {
		case kind == TokenEOF:
			if dg.inComment && trailingCommentState(line) == commentClosed {
				v.unwindTo(TokenSlash)
			}
			break scan

		case kind.IsCloser():
			if len(v.stack) == 0 || v.top() != kind.Opener() {
				// Inside a comment a stray closer is plain text.
				if dg.inComment {
					continue
				}
				res = Mismatch
				break scan
			}
			v.pop()

		case kind.IsBracket():
			v.stack = append(v.stack, kind)

		case kind.IsQuote():
			if !lx.ScanQuoted(kind) && !dg.inComment {
				v.stack = append(v.stack, kind)
			}
		}
	}

	if res != Mismatch && len(v.stack) > 0 {
		res = Incomplete
	}

	if v.input.Len() > 0 {
		if openLiteral {
			v.input.WriteString("\\n")
		} else {
			v.input.WriteByte('\n')
		}
	}
	v.input.WriteString(line)

	return res
}

// Reset drops all pending state and starts a fresh logical statement.
func (v *Validator) Reset() {
	v.stack = v.stack[:0]
	v.input.Reset()
}

// Input returns the logical statement accumulated since the last Reset,
// lines joined per the rules of Validate.
func (v *Validator) Input() string {
	return v.input.String()
}

// InBlockComment reports whether an unterminated block comment is open
// somewhere in the pending input. The marker need not sit on top of the
// stack: a comment can open while brackets are already open.
func (v *Validator) InBlockComment() bool {
	return slices.Contains(v.stack, TokenSlash)
}

// Depth returns the number of open contexts. The console indents its
// continuation prompt by it.
func (v *Validator) Depth() int {
	return len(v.stack)
}

func (v *Validator) top() TokenKind {
	return v.stack[len(v.stack)-1]
}

func (v *Validator) pop() {
	v.stack = v.stack[:len(v.stack)-1]
}

// unwindTo pops through the first occurrence of marker, discarding
// everything above it. Brackets opened inside a block comment were
// never real; closing the comment throws them away.
func (v *Validator) unwindTo(marker TokenKind) {
	for {
		if len(v.stack) == 0 {
			panic("meta: unwind past the bottom of the nesting stack")
		}
		top := v.top()
		v.pop()
		if top == marker {
			return
		}
	}
}
