package ast

import "github.com/kite-lang/kite/kite/token"

// Node pairs a value with the token it was parsed from, for diagnostics.
type Node[T any] struct {
	Val T
	Tok token.Token
}

func NewNode[T any](val T, tok token.Token) Node[T] {
	return Node[T]{Val: val, Tok: tok}
}

// Stmt is any statement in a block. A program is a single top level block
// of statements.
type Stmt interface {
	Pos() token.Pos // Position of first token in statement

	// Accept a visitor to inspect this node. Must call the appropriate
	// visit method on the visitor for this node.
	Accept(v Visitor)
}

type (
	// Name [: TypeName] [= Value]
	Decl struct {
		Name     Node[string]
		TypeName *Node[string] // Nil when no type is given
		Value    *Expr         // Nil when there is no initializer
	}

	// Name = Value. Compound assignments (+= etc) are desugared into this.
	Assign struct {
		Name  Node[string]
		Value *Expr
	}

	// if Conds[0] { Blocks[0] } else if Conds[1] { Blocks[1] } ... else { Else }
	//
	// Conds and Blocks always have the same length.
	If struct {
		If     token.Token
		Conds  []*Expr
		Blocks []*Block
		Else   *Block // Nil when there is no else
	}

	// Unconditional loop, exited with return.
	Loop struct {
		Loop token.Token
		Body *Block
	}

	Return struct {
		Ret   token.Token
		Value *Expr // Is nil when no return value is specified
	}

	// @print Name. Interpreted by the backend only.
	Print struct {
		Special token.Token
		Name    Node[string]
	}

	// Block is both the body of control statements and a statement by
	// itself. The top level block has no braces.
	Block struct {
		LBrace token.Token
		Stmts  []Stmt
	}
)

func (d *Decl) Pos() token.Pos   { return d.Name.Tok.Pos }
func (a *Assign) Pos() token.Pos { return a.Name.Tok.Pos }
func (i *If) Pos() token.Pos     { return i.If.Pos }
func (l *Loop) Pos() token.Pos   { return l.Loop.Pos }
func (r *Return) Pos() token.Pos { return r.Ret.Pos }
func (p *Print) Pos() token.Pos  { return p.Special.Pos }
func (b *Block) Pos() token.Pos  { return b.LBrace.Pos }

// Empty reports if the block has no statements.
func (b *Block) Empty() bool {
	return len(b.Stmts) == 0
}

// Walk calls Accept on each statement in the block in order.
func (b *Block) Walk(v Visitor) {
	for _, stmt := range b.Stmts {
		stmt.Accept(v)
	}
}
