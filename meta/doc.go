// Package meta decides whether interactively typed C-family input is
// complete enough to hand to a compiler.
//
// # Overview
//
// An interactive console reads one physical line at a time, but a
// top-level unit of input, a whole declaration or statement, may span
// many lines. The Validator tracks just enough lexical state
// across lines to classify the input after each one: ready to submit,
// still open, or already broken. It deliberately stops far short of
// parsing; balancing brackets and recognizing comments and literals is
// all the prompt needs, and the real compiler re-reads everything once
// a unit is submitted.
//
// # Line Protocol
//
// The caller owns the read loop and feeds lines one at a time:
//
//	v := meta.NewValidator()
//	for line := range lines {
//	    switch v.Validate(line) {
//	    case meta.Complete:
//	        compile(v.Input())
//	        v.Reset()
//	    case meta.Incomplete:
//	        // show a continuation prompt and keep reading
//	    case meta.Mismatch:
//	        // report, drop the statement
//	        v.Reset()
//	    }
//	}
//
// Validate never performs I/O and never blocks; each call is a single
// bounded pass over its line. A Validator serves one session and is not
// safe for concurrent use.
//
// # Nesting State
//
// Open contexts live on a stack of token kinds. An opening bracket
// pushes its kind and must be popped by the matching closer; a closing
// bracket that finds anything else on top is a Mismatch, the one
// unrecoverable outcome. A confirmed /* pushes TokenSlash, and the
// matching */ unwinds the stack through that marker, discarding
// brackets "opened" inside the comment text. A quoted literal still
// open at the end of its line pushes its literal kind so the next line
// resumes inside the literal; the marker never takes part in bracket
// matching.
//
// InBlockComment and Depth expose the state the console needs to render
// its continuation prompt.
//
// # The Logical Buffer
//
// Every line, including a mismatched one, is appended to an internal
// buffer. Lines are joined with a newline, except across a boundary
// where a quoted literal is still open: there the two characters \n are
// inserted instead, since a raw newline inside the literal would be
// malformed once compiled. After Complete, Input returns the whole
// multi-line statement.
//
// # Comment Heuristics
//
// Comment delimiters are recognized from single-character tokens by a
// small digraph cursor, and a line that ends while a comment is open
// gets one extra raw-character rescan (trailing */ closes, trailing /*
// keeps it open). Both are heuristics tuned for a usable prompt, not
// for standards correctness on pathological interleavings; mis-ranked
// input is still caught by the compiler after submission.
//
// # Lexing
//
// The token stream is as small as the job: the three bracket pairs,
// quote openers, slash, star, hash, identifier groups, and "other."
// Lexer.Next returns one token at a time; Lexer.ScanQuoted skips a
// whole literal body. Whitespace and backslash-escaped characters are
// consumed silently.
package meta
