package meta

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenOther

	// Bracket punctuators. Openers sit at even values with the matching
	// closer at opener+1; the validator relies on that pairing.
	TokenLBracket
	TokenRBracket
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace

	// Literal openers
	TokenStringLiteral
	TokenCharLiteral

	TokenSlash
	TokenStar
	TokenHash
	TokenIdent
)

var tokenKindNames = map[TokenKind]string{
	TokenEOF:           "EOF",
	TokenOther:         "Other",
	TokenLBracket:      "[",
	TokenRBracket:      "]",
	TokenLParen:        "(",
	TokenRParen:        ")",
	TokenLBrace:        "{",
	TokenRBrace:        "}",
	TokenStringLiteral: "StringLiteral",
	TokenCharLiteral:   "CharLiteral",
	TokenSlash:         "/",
	TokenStar:          "*",
	TokenHash:          "#",
	TokenIdent:         "Identifier",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsBracket reports whether k is one of the six bracket punctuators.
func (k TokenKind) IsBracket() bool {
	return k >= TokenLBracket && k <= TokenRBrace
}

// IsCloser reports whether k is a closing bracket punctuator.
func (k TokenKind) IsCloser() bool {
	return k.IsBracket() && k%2 == 1
}

// Opener returns the opening kind paired with a closing bracket kind.
func (k TokenKind) Opener() TokenKind {
	return k - 1
}

// IsQuote reports whether k opens a quoted literal.
func (k TokenKind) IsQuote() bool {
	return k == TokenStringLiteral || k == TokenCharLiteral
}

type Token struct {
	Kind    TokenKind
	Off     int
	Literal string
}
