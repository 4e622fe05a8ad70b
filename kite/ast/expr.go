package ast

import (
	"fmt"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

// Expr is an expression in postfix order. Operands and operators are kept in
// one flat list so both inference passes can replay it with an explicit
// stack.
type Expr struct {
	Nodes []ExprNode
}

type ExprKind int

const (
	IntLit ExprKind = iota
	FloatLit
	BoolLit
	StringLit
	Ident
	Operator
)

// ExprNode is a single operand or operator. Type is filled in by the parser
// with a seed type and refined by the checker.
type ExprNode struct {
	Kind ExprKind
	T    token.Token

	Int   uint64  // IntLit
	Float float64 // FloatLit
	Bool  bool    // BoolLit
	Str   string  // StringLit value or Ident name
	Op    Op      // Operator

	Type types.Type
}

func (e *Expr) Pos() token.Pos {
	if len(e.Nodes) == 0 {
		return token.Pos{}
	}
	return e.Nodes[0].T.Pos
}

func (e *Expr) Empty() bool {
	return len(e.Nodes) == 0
}

// String returns the postfix form, eg. "1 x + 2 *".
func (e *Expr) String() string {
	s := ""
	for i, n := range e.Nodes {
		if i > 0 {
			s += " "
		}
		s += n.String()
	}
	return s
}

func (n ExprNode) String() string {
	switch n.Kind {
	case IntLit:
		return fmt.Sprint(n.Int)
	case FloatLit:
		return fmt.Sprint(n.Float)
	case BoolLit:
		return fmt.Sprint(n.Bool)
	case StringLit:
		return fmt.Sprintf("\"%s\"", n.Str)
	case Ident:
		return n.Str
	}
	return n.Op.String()
}

type Op int

const (
	Neg Op = iota // -x
	Inv           // /x
	Not           // !x
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	And
	Or
	Gt
	Lt
	Geq
	Leq
	Eq
	Neq

	// Open parenthesis on the parsers operator stack. Never part of an Expr.
	Paren
)

var opSymbols = [...]string{
	Neg:   "-x",
	Inv:   "/x",
	Not:   "!",
	Add:   "+",
	Sub:   "-",
	Mul:   "*",
	Div:   "/",
	Mod:   "%",
	Pow:   "^",
	And:   "&",
	Or:    "|",
	Gt:    ">",
	Lt:    "<",
	Geq:   ">=",
	Leq:   "<=",
	Eq:    "==",
	Neq:   "!=",
	Paren: "(",
}

func (o Op) String() string {
	return opSymbols[o]
}

// Arity is the number of operands the operator takes.
func (o Op) Arity() int {
	switch o {
	case Neg, Inv, Not:
		return 1
	}
	return 2
}

// LeftAssoc reports if the operator is left associative. Unary operators and
// power bind to the right.
func (o Op) LeftAssoc() bool {
	switch o {
	case Neg, Inv, Not, Pow:
		return false
	}
	return true
}

// Prec is the binding strength of the operator, higher binds tighter.
func (o Op) Prec() int {
	switch o {
	case Neg, Not, Inv:
		return 7
	case Pow:
		return 6
	case Mul, Div, Mod:
		return 5
	case Add, Sub:
		return 4
	case Eq, Neq, Lt, Gt, Leq, Geq:
		return 3
	case And:
		return 2
	case Or:
		return 1
	}
	return 0
}

// ReturnType is the seed type of a freshly parsed operator node.
func (o Op) ReturnType() types.Type {
	switch o {
	case Neg, Inv, Add, Sub, Mul, Div, Mod, Pow:
		return types.NumberType
	case Paren:
		return types.InvalidType
	}
	return types.BoolType
}

// IsComparison reports if the operator compares its operands, its result is
// always Bool.
func (o Op) IsComparison() bool {
	switch o {
	case Gt, Lt, Geq, Leq, Eq, Neq:
		return true
	}
	return false
}
