package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kite-lang/kite/kite/token"
)

type ErrorKind int

const (
	InvalidToken ErrorKind = iota
	Expected
	InvalidOp
	InvalidSpecial
	UnclosedBlock
	MismatchedParen
	Unsupported
)

// Error is a single syntax error at the token Tok.
type Error struct {
	Kind     ErrorKind
	Tok      token.Token
	Expected []string // Expected
	Feature  string   // Unsupported
}

// Returned by statement parsers when the closing brace of the current block
// is consumed. Never reported.
var errDone = errors.New("end of block")

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Tok.Pos, e.Message())
}

// Message is the error text without position.
func (e *Error) Message() string {
	found := e.Tok.String()

	switch e.Kind {
	case InvalidToken:
		return fmt.Sprintf("invalid token '%s'", found)

	case Expected:
		if len(e.Expected) == 1 {
			return fmt.Sprintf("expected '%s', found '%s'", e.Expected[0], found)
		}
		return fmt.Sprintf("expected one of '%s', found '%s'", strings.Join(e.Expected, "', '"), found)

	case InvalidOp:
		return fmt.Sprintf("invalid operator '%s'", found)

	case InvalidSpecial:
		return fmt.Sprintf("not a valid special '%s'", found)

	case UnclosedBlock:
		return "unclosed block"

	case MismatchedParen:
		return "mismatched parenthesis"

	case Unsupported:
		return fmt.Sprintf("%s are not supported yet", e.Feature)
	}

	return "syntax error"
}

func errExpected(tok token.Token, expected ...string) error {
	return &Error{Kind: Expected, Tok: tok, Expected: expected}
}

func errUnsupported(tok token.Token, feature string) error {
	return &Error{Kind: Unsupported, Tok: tok, Feature: feature}
}

func errKind(kind ErrorKind, tok token.Token) error {
	return &Error{Kind: kind, Tok: tok}
}
