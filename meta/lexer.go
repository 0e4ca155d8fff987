package meta

// Lexer produces punctuator and identifier-group tokens from one
// physical line of input. Everything the validator does not care about
// comes back as TokenOther; whitespace and backslash-escaped characters
// produce no token at all.
type Lexer struct {
	input string
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	ch := l.input[l.pos]
	l.pos++
	return ch
}

// skipInert advances past whitespace and backslash-escaped characters,
// neither of which ever forms a token on its own.
func (l *Lexer) skipInert() {
	for {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		case '\\':
			l.advance()
			l.advance()
		default:
			return
		}
	}
}

// Next returns the next token, advancing past one punctuator or one
// identifier group.
func (l *Lexer) Next() Token {
	l.skipInert()

	start := l.pos
	if l.pos >= len(l.input) {
		return Token{Kind: TokenEOF, Off: start}
	}

	ch := l.advance()
	if isIdentChar(ch) {
		return l.scanIdent(start)
	}

	kind := TokenOther
	switch ch {
	case '[':
		kind = TokenLBracket
	case ']':
		kind = TokenRBracket
	case '(':
		kind = TokenLParen
	case ')':
		kind = TokenRParen
	case '{':
		kind = TokenLBrace
	case '}':
		kind = TokenRBrace
	case '"':
		kind = TokenStringLiteral
	case '\'':
		kind = TokenCharLiteral
	case '/':
		kind = TokenSlash
	case '*':
		kind = TokenStar
	case '#':
		kind = TokenHash
	}
	return Token{Kind: kind, Off: start, Literal: l.input[start:l.pos]}
}

func (l *Lexer) scanIdent(start int) Token {
	for isIdentChar(l.peek()) {
		l.advance()
	}
	return Token{Kind: TokenIdent, Off: start, Literal: l.input[start:l.pos]}
}

// ScanQuoted consumes the body of a quoted literal whose opening quote
// has already been lexed, up to and including the closing quote. A
// backslash escapes the character after it. Reports whether the closing
// quote was found before the end of the line.
func (l *Lexer) ScanQuoted(kind TokenKind) bool {
	quote := byte('"')
	if kind == TokenCharLiteral {
		quote = '\''
	}
	for l.pos < len(l.input) {
		ch := l.advance()
		if ch == '\\' {
			l.advance()
			continue
		}
		if ch == quote {
			return true
		}
	}
	return false
}

func isIdentChar(ch byte) bool {
	return ch == '_' || ch == '$' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}
