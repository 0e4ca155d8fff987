package meta

import (
	"testing"
)

func TestTokenKindString(t *testing.T) {
	tests := []struct {
		kind TokenKind
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenOther, "Other"},
		{TokenLBracket, "["},
		{TokenRBracket, "]"},
		{TokenLParen, "("},
		{TokenRParen, ")"},
		{TokenLBrace, "{"},
		{TokenRBrace, "}"},
		{TokenStringLiteral, "StringLiteral"},
		{TokenCharLiteral, "CharLiteral"},
		{TokenSlash, "/"},
		{TokenStar, "*"},
		{TokenHash, "#"},
		{TokenIdent, "Identifier"},
		{TokenKind(99), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestBracketPairing(t *testing.T) {
	tests := []struct {
		closer TokenKind
		opener TokenKind
	}{
		{TokenRBracket, TokenLBracket},
		{TokenRParen, TokenLParen},
		{TokenRBrace, TokenLBrace},
	}

	for _, tt := range tests {
		t.Run(tt.closer.String(), func(t *testing.T) {
			if !tt.closer.IsCloser() {
				t.Errorf("IsCloser() = false, want true")
			}
			if tt.opener.IsCloser() {
				t.Errorf("opener IsCloser() = true, want false")
			}
			if !tt.opener.IsBracket() || !tt.closer.IsBracket() {
				t.Errorf("IsBracket() = false for pair %v %v", tt.opener, tt.closer)
			}
			if got := tt.closer.Opener(); got != tt.opener {
				t.Errorf("Opener() = %v, want %v", got, tt.opener)
			}
			if tt.opener%2 != 0 {
				t.Errorf("opener %v has odd value %d", tt.opener, tt.opener)
			}
		})
	}
}

func TestTokenKindClasses(t *testing.T) {
	for _, kind := range []TokenKind{TokenEOF, TokenOther, TokenStringLiteral, TokenCharLiteral, TokenSlash, TokenStar, TokenHash, TokenIdent} {
		if kind.IsBracket() {
			t.Errorf("%v IsBracket() = true, want false", kind)
		}
	}
	for _, kind := range []TokenKind{TokenStringLiteral, TokenCharLiteral} {
		if !kind.IsQuote() {
			t.Errorf("%v IsQuote() = false, want true", kind)
		}
	}
	for _, kind := range []TokenKind{TokenEOF, TokenLParen, TokenSlash, TokenIdent} {
		if kind.IsQuote() {
			t.Errorf("%v IsQuote() = true, want false", kind)
		}
	}
}
