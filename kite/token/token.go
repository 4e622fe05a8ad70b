package token

import (
	"fmt"

	"github.com/kite-lang/kite/kite/types"
)

type Token struct {
	Type   TokenType
	Pos    Pos    // Position of first character in token
	Lexeme string // Raw text. For strings the content between the quotes, for specials the name.

	Int   uint64        // Value of INT tokens
	Float float64       // Value of FLOAT tokens
	Num   types.NumType // Width tag of INT and FLOAT tokens. Family is Float for FLOAT.
	Cat   Category      // Raw category of INVALID tokens

	// If the token is EOF. Always true if the type is EOF and
	// vice versa. Simply a shorthand for tok.Type == token.EOF.
	Eof bool
}

type Pos struct {
	Line   int // Line number, starting at 1
	Col    int // Column, starting at 1
	Offset int // Byte offset in source
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Is reports whether t is the single character symbol c.
func (t Token) Is(c byte) bool {
	return t.Type == SYMBOL && len(t.Lexeme) == 1 && t.Lexeme[0] == c
}

// String returns the token as it would appear in source. Used in diagnostics.
func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("\"%s\"", t.Lexeme)
	case SPECIAL:
		return "@" + t.Lexeme
	case COMMA:
		return ","
	}
	return t.Lexeme
}

// Symbol makes a synthetic single character symbol token at pos.
func Symbol(c byte, pos Pos) Token {
	return Token{Type: SYMBOL, Lexeme: string(c), Pos: pos}
}
