package parser

import (
	"errors"
	"strings"

	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/token"
)

// Operators that can be combined with = for compound assignment.
var compoundOps = map[byte]ast.Op{
	'+': ast.Add,
	'-': ast.Sub,
	'*': ast.Mul,
	'/': ast.Div,
	'%': ast.Mod,
	'^': ast.Pow,
	'&': ast.And,
	'|': ast.Or,
}

// Parses statements until the closing brace of the block. lbrace is the
// opening brace, or the zero token for the top level block.
//
// On a syntax error the rest of the block is skipped and the block ends
// there. Errors in nested blocks are handled by the nested block, so parsing
// continues after it as normal.
func (p *Parser) parseBlock(lbrace token.Token) *ast.Block {
	block := &ast.Block{LBrace: lbrace}

	for {
		stmt, err := p.parseStmt()
		if err == nil {
			block.Stmts = append(block.Stmts, stmt)
			continue
		}

		if errors.Is(err, errDone) {
			break
		}

		p.report(err)
		var perr *Error
		if errors.As(err, &perr) && perr.Kind != UnclosedBlock {
			if err := p.closeBlock(perr.Tok); err != nil {
				p.report(err)
			}
		}
		break
	}

	return block
}

// Skips tokens up to and including the closing brace of the current block.
// at is the token the error was reported at. If it has already been
// consumed and is a brace, it is accounted for.
func (p *Parser) closeBlock(at token.Token) error {
	depth := 0
	if p.pos > 0 && p.toks[p.pos-1] == at {
		if at.Is('}') {
			return nil
		}
		if at.Is('{') {
			depth = 1
		}
	}

	for {
		tok, err := p.next()
		if err != nil {
			return err
		}

		if tok.Is('{') {
			depth++
		} else if tok.Is('}') {
			if depth == 0 {
				return nil
			}
			depth--
		}
	}
}

func (p *Parser) parseStmt() (ast.Stmt, error) {
	p.trim()
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case token.IDENT:
		return p.parseIdentStmt(tok)
	case token.IF:
		return p.parseIf(tok)
	case token.LOOP:
		return p.parseLoop(tok)
	case token.RETURN:
		return p.parseReturn(tok)
	case token.SPECIAL:
		return p.parseSpecial(tok)
	case token.INVALID:
		return nil, errKind(InvalidToken, tok)
	}

	if tok.Is('{') {
		return p.parseBlock(tok), nil
	}
	if tok.Is('}') {
		return nil, errDone
	}

	return nil, errExpected(tok, "identifier", "if", "loop", "return", "{", "}")
}

// Declarations and assignments, both start with an identifier.
func (p *Parser) parseIdentStmt(name token.Token) (ast.Stmt, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Is(':') {
		return p.parseDecl(name)
	}
	if tok.Is('=') {
		return p.parseAssign(name, tok, nil)
	}

	if tok.Type == token.SYMBOL && len(tok.Lexeme) == 1 {
		if op, ok := compoundOps[tok.Lexeme[0]]; ok {
			if _, err := p.expect('='); err != nil {
				return nil, err
			}
			return p.parseAssign(name, tok, &op)
		}
	}

	return nil, errExpected(tok, ":", "=")
}

// name: [type] [= expr]
func (p *Parser) parseDecl(name token.Token) (ast.Stmt, error) {
	decl := &ast.Decl{Name: ast.NewNode(name.Lexeme, name)}

	if p.atStmtEnd() {
		return decl, nil
	}

	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	if tok.Type == token.IDENT {
		decl.TypeName = &ast.Node[string]{Val: tok.Lexeme, Tok: tok}
		if p.atStmtEnd() {
			return decl, nil
		}

		if _, err := p.expect('='); err != nil {
			return nil, err
		}
	} else if !tok.Is('=') {
		return nil, errExpected(tok, "type name", "=")
	}

	p.trim()
	expr, err := p.parseExpr('}')
	if err != nil {
		return nil, err
	}

	decl.Value = expr
	return decl, nil
}

// Parses the right hand side of an assignment. For compound assignment op
// is set and the statement is rewritten as name = name <rhs> op, where
// opTok is the operator token.
func (p *Parser) parseAssign(name token.Token, opTok token.Token, op *ast.Op) (ast.Stmt, error) {
	expr := &ast.Expr{}
	if op != nil {
		expr.Nodes = append(expr.Nodes, identNode(name))
	}

	p.trim()
	if err := p.parseExprInto(expr, '}'); err != nil {
		return nil, err
	}

	if op != nil {
		expr.Nodes = append(expr.Nodes, opNode(*op, opTok))
	}

	return &ast.Assign{
		Name:  ast.NewNode(name.Lexeme, name),
		Value: expr,
	}, nil
}

// if cond { ... } else if cond { ... } else { ... }
func (p *Parser) parseIf(ifTok token.Token) (ast.Stmt, error) {
	stmt := &ast.If{If: ifTok}

	for {
		cond, err := p.parseExpr('{')
		if err != nil {
			return nil, err
		}

		p.trim()
		lbrace, err := p.expect('{')
		if err != nil {
			return nil, err
		}

		stmt.Conds = append(stmt.Conds, cond)
		stmt.Blocks = append(stmt.Blocks, p.parseBlock(lbrace))

		p.trim()
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type != token.ELSE {
			return stmt, nil
		}

		p.next()
		p.trim()
		if tok, err = p.next(); err != nil {
			return nil, err
		}

		if tok.Type == token.IF {
			continue
		}
		if tok.Is('{') {
			stmt.Else = p.parseBlock(tok)
			return stmt, nil
		}

		return nil, errExpected(tok, "if", "{")
	}
}

// loop { ... }
func (p *Parser) parseLoop(loopTok token.Token) (ast.Stmt, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Type == token.IF {
		p.next()
		return nil, errUnsupported(tok, "conditional loops")
	}

	p.trim()
	lbrace, err := p.expect('{')
	if err != nil {
		return nil, err
	}

	return &ast.Loop{Loop: loopTok, Body: p.parseBlock(lbrace)}, nil
}

// return [expr]
func (p *Parser) parseReturn(ret token.Token) (ast.Stmt, error) {
	stmt := &ast.Return{Ret: ret}
	if p.atStmtEnd() {
		return stmt, nil
	}

	expr, err := p.parseExpr('}')
	if err != nil {
		return nil, err
	}

	stmt.Value = expr
	return stmt, nil
}

// @name args. Only @print is valid.
func (p *Parser) parseSpecial(special token.Token) (ast.Stmt, error) {
	if strings.ToLower(special.Lexeme) != "print" {
		return nil, errKind(InvalidSpecial, special)
	}

	name, err := p.next()
	if err != nil {
		return nil, err
	}
	if name.Type != token.IDENT {
		return nil, errExpected(name, token.IDENT.String())
	}

	return &ast.Print{
		Special: special,
		Name:    ast.NewNode(name.Lexeme, name),
	}, nil
}
