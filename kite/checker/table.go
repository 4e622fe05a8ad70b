package checker

import (
	"github.com/kite-lang/kite/kite/ast"
)

// An identifier node in an expression, by index into the node list.
type identRef struct {
	expr *ast.Expr
	idx  int
}

// The Table owns every scope created while checking, bound to the block that
// created it, and remembers which variable each name in the tree refers to.
type Table struct {
	scopes []Scope
	blocks map[*ast.Block]ScopeID
	cur    ScopeID

	uses    map[identRef]*Variable
	targets map[ast.Stmt]*Variable // Declared, assigned or printed variable
}

// Makes a table with a root scope bound to the top level block.
func newTable(root *ast.Block) *Table {
	t := &Table{
		blocks:  make(map[*ast.Block]ScopeID),
		uses:    make(map[identRef]*Variable),
		targets: make(map[ast.Stmt]*Variable),
		cur:     NoScope,
	}

	t.open(root)
	return t
}

// Creates a new scope for block as a child of the current one and makes it
// current.
func (t *Table) open(block *ast.Block) {
	t.scopes = append(t.scopes, newScope(t.cur))
	t.cur = ScopeID(len(t.scopes) - 1)
	t.blocks[block] = t.cur
}

// Declares v in the current scope. Returns false if the name is already
// declared in this scope. Outer declarations are shadowed.
func (t *Table) declare(v *Variable) bool {
	vars := t.scopes[t.cur].vars
	if _, ok := vars[v.Name]; ok {
		return false
	}

	vars[v.Name] = v
	return true
}

// Finds name in the current scope or the closest enclosing scope. Returns
// nil if the name is not declared.
func (t *Table) lookup(name string) *Variable {
	for id := t.cur; id != NoScope; id = t.scopes[id].parent {
		if v, ok := t.scopes[id].vars[name]; ok {
			return v
		}
	}
	return nil
}

// Scope returns the scope with the given id.
func (t *Table) Scope(id ScopeID) *Scope {
	return &t.scopes[id]
}

// Root returns the id of the top level scope.
func (t *Table) Root() ScopeID {
	return 0
}

// ScopeOf returns the scope bound to block. Ok is false if the block was
// never checked.
func (t *Table) ScopeOf(block *ast.Block) (id ScopeID, ok bool) {
	id, ok = t.blocks[block]
	return id, ok
}
