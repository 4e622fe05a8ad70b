package checker

import (
	"fmt"

	"github.com/kite-lang/kite/kite/ast"
)

// The TableReader is the read side of the Table handed to the backend after
// a successful check. Names resolve the same way they did while checking.
type TableReader interface {
	// Get variable by name in the current or a parent scope.
	Get(name string) *Variable

	// Resolve returns the variable the identifier at expr.Nodes[i] refers to.
	Resolve(expr *ast.Expr, i int) *Variable

	// Target returns the variable declared by a Decl, assigned by an Assign or
	// printed by a Print.
	Target(stmt ast.Stmt) *Variable

	// Push the scope of block, which must be a child of the current one.
	Push(block *ast.Block)

	// Pop current scope and return to parent.
	Pop()
}

func (t *Table) Get(name string) *Variable {
	v := t.lookup(name)
	if v == nil {
		panic(fmt.Sprintf("undefined variable after type check: '%s'", name))
	}
	return v
}

func (t *Table) Resolve(expr *ast.Expr, i int) *Variable {
	v, ok := t.uses[identRef{expr, i}]
	if !ok {
		panic(fmt.Sprintf("unresolved identifier after type check: '%s'", expr.Nodes[i].Str))
	}
	return v
}

func (t *Table) Target(stmt ast.Stmt) *Variable {
	v, ok := t.targets[stmt]
	if !ok {
		panic("statement has no target variable")
	}
	return v
}

func (t *Table) Push(block *ast.Block) {
	id, ok := t.blocks[block]
	if !ok {
		panic("block with no assigned scope")
	}
	t.cur = id
}

func (t *Table) Pop() {
	t.cur = t.scopes[t.cur].parent
}
