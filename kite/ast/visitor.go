package ast

type Visitor interface {
	VisitDecl(node *Decl)
	VisitAssign(node *Assign)
	VisitIf(node *If)
	VisitLoop(node *Loop)
	VisitBlock(node *Block)
	VisitReturn(node *Return)
	VisitPrint(node *Print)
}

func (n *Decl) Accept(v Visitor)   { v.VisitDecl(n) }
func (n *Assign) Accept(v Visitor) { v.VisitAssign(n) }
func (n *If) Accept(v Visitor)     { v.VisitIf(n) }
func (n *Loop) Accept(v Visitor)   { v.VisitLoop(n) }
func (n *Block) Accept(v Visitor)  { v.VisitBlock(n) }
func (n *Return) Accept(v Visitor) { v.VisitReturn(n) }
func (n *Print) Accept(v Visitor)  { v.VisitPrint(n) }
