package checker

import (
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

// ScopeID is the index of a scope in the table's scope arena.
type ScopeID int

// Parent of the root scope.
const NoScope ScopeID = -1

// A Scope maps names declared directly in one block to their variables.
// Lookups continue in the parent scope.
type Scope struct {
	parent ScopeID
	vars   map[string]*Variable
}

// A Variable is a declared name and its type. After a successful check the
// type is always concrete.
type Variable struct {
	Name string
	Type types.Type
	Pos  token.Pos // Position of declaration

	// Storage owned by the backend, eg. a stack slot. Never read or written
	// by the checker.
	Handle any
}

func newScope(parent ScopeID) Scope {
	return Scope{
		parent: parent,
		vars:   make(map[string]*Variable),
	}
}

// Parent returns the id of the enclosing scope, or NoScope for the root.
func (s *Scope) Parent() ScopeID {
	return s.parent
}

// Vars returns the variables declared directly in this scope.
func (s *Scope) Vars() map[string]*Variable {
	return s.vars
}
