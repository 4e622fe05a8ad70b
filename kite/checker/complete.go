package checker

import (
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/types"
)

// Second pass. Every declared variable gets its default type if it is not
// fully known. A variable with no information at all is an error.
func (c *Checker) completeVars(block *ast.Block) {
	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *ast.Decl:
			v := c.table.targets[s]
			v.Type = types.Complete(v.Type)
			if v.Type.Kind == types.Invalid {
				c.err(errKind(TypeNotDetermined, s.Name.Tok))
			}

		case *ast.If:
			for _, b := range s.Blocks {
				c.completeVars(b)
			}
			if s.Else != nil {
				c.completeVars(s.Else)
			}

		case *ast.Loop:
			c.completeVars(s.Body)

		case *ast.Block:
			c.completeVars(s)
		}
	}
}

// Third pass. Known types are pushed back into the expression nodes that are
// still unresolved, eg. the literal in x: I64 = 5 becomes I64.
func (c *Checker) completeLits(block *ast.Block) {
	for _, stmt := range block.Stmts {
		switch s := stmt.(type) {
		case *ast.Decl:
			if s.Value != nil {
				c.completeExpr(s.Value, c.table.targets[s].Type)
			}

		case *ast.Assign:
			c.completeExpr(s.Value, c.table.targets[s].Type)

		case *ast.If:
			for _, cond := range s.Conds {
				c.completeExpr(cond, types.BoolType)
			}
			for _, b := range s.Blocks {
				c.completeLits(b)
			}
			if s.Else != nil {
				c.completeLits(s.Else)
			}

		case *ast.Loop:
			c.completeLits(s.Body)

		case *ast.Block:
			c.completeLits(s)

		case *ast.Return:
			if s.Value != nil {
				c.completeExpr(s.Value, types.UnknownType)
			}
		}
	}
}

// A value on the completion stack. While t is unknown, refs holds the
// indices of the nodes beneath it whose type is not resolved yet.
type pending struct {
	t    types.Type
	refs []int
}

func known(t types.Type) pending {
	return pending{t: t}
}

// Replays expr and resolves unknown node types from known neighbours.
// Whatever is unresolved at the top takes the type final, or its own default
// if final is not known. Any node left unknown after that is completed on
// its own, so every node has a concrete type when this returns.
func (c *Checker) completeExpr(expr *ast.Expr, final types.Type) {
	nodes := expr.Nodes
	var stack []pending

	for i := range nodes {
		node := &nodes[i]

		switch node.Kind {
		case ast.Ident:
			node.Type = c.table.uses[identRef{expr, i}].Type
			stack = append(stack, known(node.Type))

		case ast.Operator:
			stack = c.completeOp(nodes, i, stack)

		default:
			if node.Type.IsKnown() {
				stack = append(stack, known(node.Type))
			} else {
				stack = append(stack, pending{types.UnknownType, []int{i}})
			}
		}
	}

	if len(stack) > 0 {
		if top := stack[len(stack)-1]; !top.t.IsKnown() {
			if final.IsKnown() {
				c.resolve(nodes, top.refs, final)
			} else {
				c.completeRefs(nodes, top.refs)
			}
		}
	}

	for i := range nodes {
		if !nodes[i].Type.IsKnown() {
			nodes[i].Type = types.Complete(nodes[i].Type)
		}
	}
}

func (c *Checker) completeOp(nodes []ast.ExprNode, i int, stack []pending) []pending {
	node := &nodes[i]

	// The operator node itself is resolved along with its operands.
	var self []int
	if !node.Type.IsKnown() {
		self = []int{i}
	}

	if node.Op.Arity() == 1 {
		a := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !a.t.IsKnown() {
			return append(stack, pending{types.UnknownType, append(a.refs, self...)})
		}

		if !node.Type.IsKnown() {
			node.Type = a.t
		}
		return append(stack, known(node.Type))
	}

	a, b := stack[len(stack)-2], stack[len(stack)-1]
	stack = stack[:len(stack)-2]

	// Comparisons only force their operands to settle, neither side decides
	// the type of the other.
	if node.Op.IsComparison() {
		c.completeRefs(nodes, a.refs)
		c.completeRefs(nodes, b.refs)
		return append(stack, known(node.Type))
	}

	var t types.Type
	switch {
	case a.t.IsKnown() && b.t.IsKnown():
		t = a.t
	case a.t.IsKnown():
		t = a.t
		c.resolve(nodes, b.refs, t)
	case b.t.IsKnown():
		t = b.t
		c.resolve(nodes, a.refs, t)
	default:
		refs := append(append(a.refs, b.refs...), self...)
		return append(stack, pending{types.UnknownType, refs})
	}

	if !node.Type.IsKnown() {
		node.Type = t
	}
	return append(stack, known(node.Type))
}

// Merges t into each referenced node. A node that cannot take t, eg. a float
// literal next to an integer variable, is a type mismatch. Only the first
// such node in the group is reported.
func (c *Checker) resolve(nodes []ast.ExprNode, refs []int, t types.Type) {
	reported := false
	for _, r := range refs {
		merged := types.Merge(nodes[r].Type, t)
		if merged.Kind == types.Invalid && !reported {
			c.err(errMismatch(nodes[r].T, t, nodes[r].Type))
			reported = true
		}
		nodes[r].Type = merged
	}
}

// Completes the referenced nodes as one group, so they all get the same
// default.
func (c *Checker) completeRefs(nodes []ast.ExprNode, refs []int) {
	t := types.UnknownType
	for _, r := range refs {
		t = types.Merge(t, nodes[r].Type)
	}

	c.resolve(nodes, refs, types.Complete(t))
}
