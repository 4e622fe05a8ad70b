package checker

import (
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
	"github.com/kite-lang/kite/kite/util"
)

// Checker implements the Visitor interface for the first pass, which declares
// variables and unifies expression types front to back. The two completion
// passes that follow are plain walks over the tree.
type Checker struct {
	errors *util.ErrorHandler
	errs   []*Error
	file   *token.File
	tree   *ast.Block
	table  *Table

	NumErrors int
}

func New(file *token.File, tree *ast.Block) *Checker {
	return &Checker{
		errors: util.NewErrorHandler(),
		file:   file,
		tree:   tree,
	}
}

// Check type checks the tree and fills in the type of every expression node.
// Errors in the first pass are collected per statement. The completion passes
// only run when the first pass succeeds, and stop type checking after them
// if any variable type could not be determined. Returns the same as Error.
func (c *Checker) Check() error {
	util.Assert(c.tree != nil, "tree is nil")

	c.table = newTable(c.tree)
	c.tree.Walk(c)

	if c.NumErrors == 0 {
		c.completeVars(c.tree)
	}
	if c.NumErrors == 0 {
		c.completeLits(c.tree)
	}

	c.table.cur = c.table.Root()
	return c.Error()
}

// Table returns the scope table for reading after a successful check.
func (c *Checker) Table() TableReader {
	return c.table
}

// Errors returns the semantic errors in the order they were found.
func (c *Checker) Errors() []*Error {
	return c.errs
}

// Error returns all errors joined, each printed with its source line.
func (c *Checker) Error() error {
	return c.errors.Error()
}

func (c *Checker) err(e *Error) {
	length := len(e.Tok.String())
	if e.Tok.Eof {
		length = 1
	}

	c.errs = append(c.errs, e)
	c.errors.Report(c.file, e.Tok.Pos, length, e)
	c.NumErrors++
}

func (c *Checker) checkBlock(block *ast.Block) {
	c.table.open(block)
	block.Walk(c)
	c.table.Pop()
}

// The variable is declared even if its type could not be inferred, so later
// uses do not report it as undeclared.
func (c *Checker) VisitDecl(node *ast.Decl) {
	v := &Variable{
		Name: node.Name.Val,
		Type: types.UnknownType,
		Pos:  node.Pos(),
	}

	if err := c.declType(node, v); err != nil {
		c.err(err)
	}

	if !c.table.declare(v) {
		c.err(errKind(AlreadyDeclared, node.Name.Tok))
		return
	}

	c.table.targets[node] = v
}

func (c *Checker) declType(node *ast.Decl, v *Variable) *Error {
	if node.TypeName != nil {
		t, ok := types.FromName(node.TypeName.Val)
		if !ok {
			return errKind(UnknownType, node.TypeName.Tok)
		}
		v.Type = t
	}

	if node.Value == nil {
		return nil
	}

	t, err := c.typeOf(node.Value, node.Name.Tok)
	if err != nil {
		return err
	}

	merged := types.Merge(v.Type, t)
	if merged.Kind == types.Invalid {
		return errMismatch(node.Name.Tok, v.Type, t)
	}

	v.Type = merged
	return nil
}

func (c *Checker) VisitAssign(node *ast.Assign) {
	t, err := c.typeOf(node.Value, node.Name.Tok)
	if err != nil {
		c.err(err)
		return
	}

	v := c.table.lookup(node.Name.Val)
	if v == nil {
		c.err(errKind(Undeclared, node.Name.Tok))
		return
	}

	merged := types.Merge(v.Type, t)
	if merged.Kind == types.Invalid {
		c.err(errMismatch(node.Name.Tok, v.Type, t))
		return
	}

	v.Type = merged
	c.table.targets[node] = v
}

func (c *Checker) VisitIf(node *ast.If) {
	for _, cond := range node.Conds {
		t, err := c.typeOf(cond, node.If)
		if err != nil {
			c.err(err)
			continue
		}

		if t != types.BoolType {
			c.err(errMismatch(cond.Nodes[0].T, types.BoolType, t))
		}
	}

	for _, block := range node.Blocks {
		c.checkBlock(block)
	}

	if node.Else != nil {
		c.checkBlock(node.Else)
	}
}

func (c *Checker) VisitLoop(node *ast.Loop) {
	c.checkBlock(node.Body)
}

func (c *Checker) VisitBlock(node *ast.Block) {
	c.checkBlock(node)
}

func (c *Checker) VisitReturn(node *ast.Return) {
	if node.Value == nil {
		return
	}

	if _, err := c.typeOf(node.Value, node.Ret); err != nil {
		c.err(err)
	}
}

func (c *Checker) VisitPrint(node *ast.Print) {
	v := c.table.lookup(node.Name.Val)
	if v == nil {
		c.err(errKind(Undeclared, node.Name.Tok))
		return
	}

	c.table.targets[node] = v
}

// A value on the inference stack. First is the first token of the operand,
// used to point at stray values.
type operand struct {
	t     types.Type
	first token.Token
}

// Infers the type of expr by replaying it on a type stack. Identifiers are
// bound to the variable they refer to in the current scope. Operators whose
// type depends on their operands get their type slot updated. at is used as
// the error position for empty expressions.
func (c *Checker) typeOf(expr *ast.Expr, at token.Token) (types.Type, *Error) {
	var (
		stack []operand
		err   *Error
	)

	for i := range expr.Nodes {
		node := &expr.Nodes[i]

		switch node.Kind {
		case ast.Ident:
			v := c.table.lookup(node.Str)
			if v == nil {
				return types.InvalidType, errKind(Undeclared, node.T)
			}
			c.table.uses[identRef{expr, i}] = v
			stack = append(stack, operand{v.Type, node.T})

		case ast.Operator:
			if stack, err = apply(stack, node); err != nil {
				return types.InvalidType, err
			}

		default:
			stack = append(stack, operand{node.Type, node.T})
		}
	}

	switch len(stack) {
	case 0:
		return types.InvalidType, errKind(EmptyExpression, at)
	case 1:
		return stack[0].t, nil
	}

	return types.InvalidType, errKind(MissingOperator, stack[1].first)
}

// Pops the operands of node, merges them with the type the operator requires
// and pushes the result.
func apply(stack []operand, node *ast.ExprNode) ([]operand, *Error) {
	arity := node.Op.Arity()
	if len(stack) < arity {
		return stack, &Error{Kind: TooFewOperands, Tok: node.T, Arity: arity}
	}

	var req types.Type
	writes := false

	switch node.Op {
	case ast.Pow:
		return stack, errKind(Unsupported, node.T)
	case ast.And, ast.Or, ast.Not:
		req = types.BoolType
	case ast.Gt, ast.Lt, ast.Geq, ast.Leq:
		req = types.NumberType
	case ast.Eq, ast.Neq:
		req = types.UnknownType
	default:
		req = node.Type
		writes = true
	}

	args := stack[len(stack)-arity:]
	stack = stack[:len(stack)-arity]

	t := types.UnknownType
	for _, arg := range args {
		merged := types.Merge(t, arg.t)
		if merged.Kind == types.Invalid {
			return stack, errMismatch(node.T, t, arg.t)
		}
		t = merged
	}

	merged := types.Merge(t, req)
	if merged.Kind == types.Invalid {
		return stack, errMismatch(node.T, req, t)
	}

	if writes {
		node.Type = merged
		if node.Op == ast.Neg && merged.IsNum(types.Unsigned) {
			return stack, &Error{Kind: ExpectedSigned, Tok: node.T, Found: merged}
		}
	}

	return append(stack, operand{node.Type, args[0].first}), nil
}
