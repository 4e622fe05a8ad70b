package parser

import (
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

type opEntry struct {
	op  ast.Op
	tok token.Token
}

func (p *Parser) parseExpr(term byte) (*ast.Expr, error) {
	expr := &ast.Expr{}
	if err := p.parseExprInto(expr, term); err != nil {
		return nil, err
	}
	return expr, nil
}

// Parses an infix expression and appends it to expr in postfix order. The
// expression ends before a separator or the symbol term, which is not
// consumed. Separators directly after a binary operator are skipped so
// expressions can span lines.
func (p *Parser) parseExprInto(expr *ast.Expr, term byte) error {
	var ops []opEntry
	prevWasOp := true // A minus or slash here is a prefix operator

	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}

		if tok.Type == token.COMMA || tok.Is(term) {
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.op == ast.Paren {
					return errExpected(tok, ")")
				}
				expr.Nodes = append(expr.Nodes, opNode(top.op, top.tok))
			}
			return nil
		}

		p.next()
		wasOp := prevWasOp
		prevWasOp = false

		switch tok.Type {
		case token.INT:
			expr.Nodes = append(expr.Nodes, ast.ExprNode{
				Kind: ast.IntLit,
				T:    tok,
				Int:  tok.Int,
				Type: types.Type{Kind: types.Num, Num: tok.Num},
			})

		case token.FLOAT:
			expr.Nodes = append(expr.Nodes, ast.ExprNode{
				Kind:  ast.FloatLit,
				T:     tok,
				Float: tok.Float,
				Type:  types.Type{Kind: types.Num, Num: tok.Num},
			})

		case token.TRUE, token.FALSE:
			expr.Nodes = append(expr.Nodes, ast.ExprNode{
				Kind: ast.BoolLit,
				T:    tok,
				Bool: tok.Type == token.TRUE,
				Type: types.BoolType,
			})

		case token.IDENT:
			expr.Nodes = append(expr.Nodes, identNode(tok))

		case token.STRING:
			return errUnsupported(tok, "string operands")

		case token.INVALID:
			return errKind(InvalidToken, tok)

		case token.SYMBOL:
			if tok.Is('(') {
				ops = append(ops, opEntry{ast.Paren, tok})
				prevWasOp = true
				break
			}

			if tok.Is(')') {
				for {
					if len(ops) == 0 {
						return errKind(MismatchedParen, tok)
					}
					top := ops[len(ops)-1]
					ops = ops[:len(ops)-1]
					if top.op == ast.Paren {
						break
					}
					expr.Nodes = append(expr.Nodes, opNode(top.op, top.tok))
				}
				break
			}

			op, err := p.operator(tok, wasOp)
			if err != nil {
				return err
			}

			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if !pops(op, top.op) {
					break
				}
				ops = ops[:len(ops)-1]
				expr.Nodes = append(expr.Nodes, opNode(top.op, top.tok))
			}

			ops = append(ops, opEntry{op, tok})
			prevWasOp = true
			p.trim()

		default:
			return errExpected(tok, "number", "identifier", "(", string(term))
		}
	}
}

// Reports if the operator top on the stack must be output before op is
// pushed. The open paren sentinel has the lowest precedence and is never
// popped here.
func pops(op, top ast.Op) bool {
	if op.LeftAssoc() {
		return op.Prec() <= top.Prec()
	}
	return op.Prec() < top.Prec()
}

// Maps a symbol token to an operator. Two character operators are formed by
// consuming a following '='. A minus or slash where an operand is expected
// is a prefix negation or inversion.
func (p *Parser) operator(tok token.Token, prefix bool) (ast.Op, error) {
	switch tok.Lexeme {
	case "+":
		return ast.Add, nil
	case "*":
		return ast.Mul, nil
	case "%":
		return ast.Mod, nil
	case "^":
		return ast.Pow, nil
	case "&":
		return ast.And, nil
	case "|":
		return ast.Or, nil

	case "-":
		if prefix {
			return ast.Neg, nil
		}
		return ast.Sub, nil

	case "/":
		if prefix {
			return ast.Inv, nil
		}
		return ast.Div, nil

	case "!":
		if p.matchEq() {
			return ast.Neq, nil
		}
		return ast.Not, nil

	case ">":
		if p.matchEq() {
			return ast.Geq, nil
		}
		return ast.Gt, nil

	case "<":
		if p.matchEq() {
			return ast.Leq, nil
		}
		return ast.Lt, nil

	case "=":
		if p.matchEq() {
			return ast.Eq, nil
		}
	}

	return 0, errKind(InvalidOp, tok)
}

// Consumes the next token if it is '='.
func (p *Parser) matchEq() bool {
	if tok, err := p.peek(); err == nil && tok.Is('=') {
		p.pos++
		return true
	}
	return false
}

func identNode(tok token.Token) ast.ExprNode {
	return ast.ExprNode{
		Kind: ast.Ident,
		T:    tok,
		Str:  tok.Lexeme,
		Type: types.UnknownType,
	}
}

func opNode(op ast.Op, tok token.Token) ast.ExprNode {
	return ast.ExprNode{
		Kind: ast.Operator,
		T:    tok,
		Op:   op,
		Type: op.ReturnType(),
	}
}
