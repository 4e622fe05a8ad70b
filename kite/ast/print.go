package ast

import (
	"fmt"
	"strings"
)

// DebugVisitor prints the AST with one statement per line and expressions in
// postfix order inside brackets. Used for testing the parser (by comparing
// AST to string) and for debugging.
type DebugVisitor struct {
	sb          *strings.Builder
	indentLevel int
	tree        *Block
	indented    bool

	// Print the type of each expression node, eg. [5:I64].
	Types bool
}

func NewDebugVisitor(tree *Block) *DebugVisitor {
	return &DebugVisitor{
		sb:   &strings.Builder{},
		tree: tree,
	}
}

func (d *DebugVisitor) Print() {
	fmt.Println(d.String())
}

// String walks the tree and returns the printed AST.
func (d *DebugVisitor) String() string {
	d.sb.Reset()
	d.tree.Walk(d)
	return d.sb.String()
}

func (d *DebugVisitor) write(f string, args ...any) {
	if d.indentLevel != 0 && !d.indented {
		s := strings.Repeat("    ", d.indentLevel) + fmt.Sprintf(f, args...)
		d.sb.WriteString(s)
		d.indented = true
	} else {
		fmt.Fprintf(d.sb, f, args...)
	}
}

func (d *DebugVisitor) writeln(f string, args ...any) {
	d.write(f+"\n", args...)
	d.indented = false
}

func (d *DebugVisitor) expr(e *Expr) string {
	parts := make([]string, len(e.Nodes))
	for i, n := range e.Nodes {
		if d.Types {
			parts[i] = fmt.Sprintf("%s:%s", n, n.Type)
		} else {
			parts[i] = n.String()
		}
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Writes the braces and body of a block on the current line.
func (d *DebugVisitor) body(b *Block) {
	d.writeln("{")
	d.indentLevel++
	b.Walk(d)
	d.indentLevel--
	d.write("}")
}

func (d *DebugVisitor) VisitDecl(node *Decl) {
	d.write("%s:", node.Name.Val)
	if node.TypeName != nil {
		d.write(" %s", node.TypeName.Val)
	}
	if node.Value != nil {
		d.write(" = %s", d.expr(node.Value))
	}
	d.writeln("")
}

func (d *DebugVisitor) VisitAssign(node *Assign) {
	d.writeln("%s = %s", node.Name.Val, d.expr(node.Value))
}

func (d *DebugVisitor) VisitIf(node *If) {
	for i, cond := range node.Conds {
		if i > 0 {
			d.write(" else ")
		}
		d.write("if %s ", d.expr(cond))
		d.body(node.Blocks[i])
	}

	if node.Else != nil {
		d.write(" else ")
		d.body(node.Else)
	}
	d.writeln("")
}

func (d *DebugVisitor) VisitLoop(node *Loop) {
	d.write("loop ")
	d.body(node.Body)
	d.writeln("")
}

func (d *DebugVisitor) VisitBlock(node *Block) {
	d.body(node)
	d.writeln("")
}

func (d *DebugVisitor) VisitReturn(node *Return) {
	if node.Value == nil {
		d.writeln("return")
		return
	}
	d.writeln("return %s", d.expr(node.Value))
}

func (d *DebugVisitor) VisitPrint(node *Print) {
	d.writeln("@print %s", node.Name.Val)
}
