package checker

import (
	"fmt"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

type ErrorKind int

const (
	AlreadyDeclared ErrorKind = iota
	Undeclared
	TooFewOperands
	TypeMismatch
	ExpectedSigned
	EmptyExpression
	TypeNotDetermined
	UnknownType
	Unsupported
	MissingOperator
)

// Error is a single semantic error at the token Tok.
type Error struct {
	Kind ErrorKind
	Tok  token.Token

	Arity    int        // TooFewOperands
	Expected types.Type // TypeMismatch
	Found    types.Type // TypeMismatch, ExpectedSigned
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Tok.Pos, e.Message())
}

// Message is the error text without position.
func (e *Error) Message() string {
	name := e.Tok.String()

	switch e.Kind {
	case AlreadyDeclared:
		return fmt.Sprintf("'%s' is already declared in this scope", name)
	case Undeclared:
		return fmt.Sprintf("use of undeclared variable '%s'", name)
	case TooFewOperands:
		return fmt.Sprintf("operator '%s' expects %d operands", name, e.Arity)
	case TypeMismatch:
		return fmt.Sprintf("type mismatch, expected %s, found %s", e.Expected, e.Found)
	case ExpectedSigned:
		return fmt.Sprintf("expected signed operand to '%s', found %s", name, e.Found)
	case EmptyExpression:
		return "expected expression"
	case TypeNotDetermined:
		return fmt.Sprintf("could not determine type of '%s'", name)
	case UnknownType:
		return fmt.Sprintf("unknown type '%s'", name)
	case Unsupported:
		return fmt.Sprintf("operator '%s' is not supported yet", name)
	case MissingOperator:
		return fmt.Sprintf("missing operator before '%s'", name)
	}

	return "type error"
}

func errKind(kind ErrorKind, tok token.Token) *Error {
	return &Error{Kind: kind, Tok: tok}
}

func errMismatch(tok token.Token, expected, found types.Type) *Error {
	return &Error{Kind: TypeMismatch, Tok: tok, Expected: expected, Found: found}
}
