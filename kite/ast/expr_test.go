package ast

import (
	"testing"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

func TestOpMetadata(t *testing.T) {
	cases := []struct {
		op    Op
		arity int
		left  bool
		ret   types.Type
	}{
		{Neg, 1, false, types.NumberType},
		{Inv, 1, false, types.NumberType},
		{Not, 1, false, types.BoolType},
		{Add, 2, true, types.NumberType},
		{Pow, 2, false, types.NumberType},
		{And, 2, true, types.BoolType},
		{Leq, 2, true, types.BoolType},
		{Neq, 2, true, types.BoolType},
	}

	for _, c := range cases {
		if c.op.Arity() != c.arity {
			t.Errorf("%s: expected arity %d, got %d", c.op, c.arity, c.op.Arity())
		}
		if c.op.LeftAssoc() != c.left {
			t.Errorf("%s: expected left assoc %v", c.op, c.left)
		}
		if c.op.ReturnType() != c.ret {
			t.Errorf("%s: expected return type %s, got %s", c.op, c.ret, c.op.ReturnType())
		}
	}
}

func TestOpPrecedence(t *testing.T) {
	order := [][]Op{
		{Or},
		{And},
		{Eq, Neq, Lt, Gt, Leq, Geq},
		{Add, Sub},
		{Mul, Div, Mod},
		{Pow},
		{Neg, Inv, Not},
	}

	for i := 1; i < len(order); i++ {
		for _, lo := range order[i-1] {
			for _, hi := range order[i] {
				if lo.Prec() >= hi.Prec() {
					t.Errorf("expected %s to bind tighter than %s", hi, lo)
				}
			}
		}
	}

	if Paren.Prec() >= Or.Prec() {
		t.Errorf("paren sentinel must have the lowest precedence")
	}
}

func TestDebugVisitor(t *testing.T) {
	num := func(v uint64) ExprNode {
		return ExprNode{Kind: IntLit, Int: v, Type: types.I64}
	}

	tree := &Block{Stmts: []Stmt{
		&Decl{
			Name:     NewNode("x", token.Token{}),
			TypeName: &Node[string]{Val: "I64"},
			Value:    &Expr{Nodes: []ExprNode{num(5)}},
		},
		&Loop{Body: &Block{Stmts: []Stmt{
			&Return{},
		}}},
		&Print{Name: NewNode("x", token.Token{})},
	}}

	expect := "x: I64 = [5:I64]\nloop {\n    return\n}\n@print x\n"

	d := NewDebugVisitor(tree)
	d.Types = true
	if s := d.String(); s != expect {
		t.Errorf("expected\n%s\ngot\n%s", expect, s)
	}
}
