package ir

import (
	"fmt"

	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/checker"
	"github.com/kite-lang/kite/kite/types"
	"github.com/kite-lang/kite/kite/util"
)

// Builder implements the Visitor interface
type Builder struct {
	eh     *util.ErrorHandler
	tree   *ast.Block
	tr     checker.TableReader
	ir     []Instruction
	slots  int
	labels int
}

// NewBuilder makes a builder for a checked tree. The reader must be the one
// returned by the checker for the same tree.
func NewBuilder(tree *ast.Block, reader checker.TableReader) *Builder {
	return &Builder{
		eh:   util.NewErrorHandler(),
		tree: tree,
		tr:   reader,
	}
}

// Build lowers the tree to a flat instruction list. Every expression node
// must have a concrete type, nodes that do not are reported as errors.
func (b *Builder) Build() ([]Instruction, error) {
	b.tree.Walk(b)
	return b.ir, b.eh.Error()
}

func (b *Builder) emit(ins Instruction) {
	b.ir = append(b.ir, ins)
}

// Get next available label
func (b *Builder) label() int {
	prev := b.labels
	b.labels++
	return prev
}

// Returns the slot assigned to v when it was declared.
func (b *Builder) slot(v *checker.Variable) int {
	slot, ok := v.Handle.(int)
	if !ok {
		b.eh.Add(fmt.Errorf("%s: variable '%s' has no slot", v.Pos, v.Name))
	}
	return slot
}

func (b *Builder) block(block *ast.Block) {
	b.tr.Push(block)
	block.Walk(b)
	b.tr.Pop()
}

func (b *Builder) expr(e *ast.Expr) {
	for i, n := range e.Nodes {
		if !n.Type.IsKnown() || n.Type.Kind == types.Invalid {
			b.eh.Add(fmt.Errorf("%s: '%s' has unresolved type %s", n.T.Pos, n, n.Type))
			continue
		}

		switch n.Kind {
		case ast.IntLit:
			b.emit(Instruction{Op: PUSH, Type: n.Type, Value: Value{Kind: Int, Int: n.Int}})

		case ast.FloatLit:
			if !n.Type.IsNum(types.Float) {
				b.eh.Add(fmt.Errorf("%s: float literal '%s' typed as %s", n.T.Pos, n, n.Type))
				continue
			}
			b.emit(Instruction{Op: PUSH, Type: n.Type, Value: Value{Kind: Float, Float: n.Float}})

		case ast.BoolLit:
			b.emit(Instruction{Op: PUSH, Type: n.Type, Value: Value{Kind: Bool, Bool: n.Bool}})

		case ast.Ident:
			v := b.tr.Resolve(e, i)
			b.emit(Instruction{Op: LOAD, Name: v.Name, Slot: b.slot(v), Type: n.Type})

		case ast.Operator:
			b.emit(Instruction{Op: OP, Oper: n.Op, Type: n.Type})

		default:
			b.eh.Add(fmt.Errorf("%s: cannot build '%s'", n.T.Pos, n))
		}
	}
}

func (b *Builder) VisitDecl(node *ast.Decl) {
	v := b.tr.Target(node)
	v.Handle = b.slots
	b.slots++

	b.emit(Instruction{Op: DECL, Name: v.Name, Slot: v.Handle.(int), Type: v.Type})

	if node.Value != nil {
		b.expr(node.Value)
		b.emit(Instruction{Op: STORE, Name: v.Name, Slot: v.Handle.(int)})
	}
}

func (b *Builder) VisitAssign(node *ast.Assign) {
	v := b.tr.Target(node)
	b.expr(node.Value)
	b.emit(Instruction{Op: STORE, Name: v.Name, Slot: b.slot(v)})
}

// Each condition jumps past its block when false. Taken blocks jump to the
// end of the chain.
func (b *Builder) VisitIf(node *ast.If) {
	end := b.label()

	for i, cond := range node.Conds {
		next := b.label()
		b.expr(cond)
		b.emit(Instruction{Op: JMPF, Label: next})
		b.block(node.Blocks[i])
		b.emit(Instruction{Op: JMP, Label: end})
		b.emit(Instruction{Op: LABEL, Label: next})
	}

	if node.Else != nil {
		b.block(node.Else)
	}

	b.emit(Instruction{Op: LABEL, Label: end})
}

func (b *Builder) VisitLoop(node *ast.Loop) {
	start := b.label()
	b.emit(Instruction{Op: LABEL, Label: start})
	b.block(node.Body)
	b.emit(Instruction{Op: JMP, Label: start})
}

func (b *Builder) VisitBlock(node *ast.Block) {
	b.block(node)
}

func (b *Builder) VisitReturn(node *ast.Return) {
	if node.Value == nil {
		b.emit(Instruction{Op: RET})
		return
	}

	b.expr(node.Value)
	last := node.Value.Nodes[len(node.Value.Nodes)-1]
	b.emit(Instruction{Op: RET, HasValue: true, Type: last.Type})
}

func (b *Builder) VisitPrint(node *ast.Print) {
	v := b.tr.Target(node)
	b.emit(Instruction{Op: PRINT, Name: v.Name, Slot: b.slot(v), Type: v.Type})
}
