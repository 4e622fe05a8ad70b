package parser

import (
	"errors"

	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/util"
)

type Parser struct {
	errors *util.ErrorHandler
	errs   []*Error
	file   *token.File
	toks   []token.Token
	pos    int

	NumErrors int
}

// New makes a parser for the token list toks, which must end with EOF as
// returned by the scanner. A closing brace is inserted before EOF so the top
// level block is parsed the same way as any other block. The file is only
// used to print source lines in errors and may be nil.
func New(file *token.File, toks []token.Token) *Parser {
	end := token.Token{Type: token.EOF, Eof: true}
	if n := len(toks); n > 0 && toks[n-1].Eof {
		end = toks[n-1]
		toks = toks[:n-1]
	}

	all := make([]token.Token, 0, len(toks)+2)
	all = append(all, toks...)
	all = append(all, token.Symbol('}', end.Pos), end)

	return &Parser{
		errors: util.NewErrorHandler(),
		file:   file,
		toks:   all,
	}
}

// Construct parses toks without a source file and returns the tree and all
// syntax errors in order.
func Construct(toks []token.Token) (*ast.Block, []*Error) {
	p := New(nil, toks)
	tree := p.Parse()
	return tree, p.Errors()
}

// Parse parses the token list and returns the top level block. The block is
// never nil, statements that failed to parse are left out and their errors
// are collected in the parser.
func (p *Parser) Parse() *ast.Block {
	tree := p.parseBlock(token.Token{})

	// The top level block was closed by a brace in the source.
	if !p.eof() && p.pos > 0 {
		p.report(errExpected(p.toks[p.pos-1], token.EOF.String()))
	}

	return tree
}

// Errors returns the syntax errors in the order they were found.
func (p *Parser) Errors() []*Error {
	return p.errs
}

// Error returns all syntax errors joined, each printed with its source line.
// Returns nil if there were none.
func (p *Parser) Error() error {
	return p.errors.Error()
}

func (p *Parser) report(err error) {
	var perr *Error
	if !errors.As(err, &perr) {
		p.errors.Add(err)
		p.NumErrors++
		return
	}

	length := len(perr.Tok.String())
	if perr.Tok.Eof {
		length = 1
	}

	p.errs = append(p.errs, perr)
	p.errors.Report(p.file, perr.Tok.Pos, length, perr)
	p.NumErrors++
}

func (p *Parser) eof() bool {
	return p.pos >= len(p.toks) || p.toks[p.pos].Eof
}

// Returns the current token without consuming it. Reaching the end of input
// inside a block is an error.
func (p *Parser) peek() (token.Token, error) {
	if p.eof() {
		return p.toks[len(p.toks)-1], errKind(UnclosedBlock, p.toks[len(p.toks)-1])
	}
	return p.toks[p.pos], nil
}

// Consumes and returns the current token.
func (p *Parser) next() (token.Token, error) {
	tok, err := p.peek()
	if err == nil {
		p.pos++
	}
	return tok, err
}

// Skips separators.
func (p *Parser) trim() {
	for !p.eof() && p.toks[p.pos].Type == token.COMMA {
		p.pos++
	}
}

// Consumes the next token and returns an error if it is not the symbol c.
func (p *Parser) expect(c byte) (token.Token, error) {
	tok, err := p.next()
	if err != nil {
		return tok, err
	}
	if !tok.Is(c) {
		return tok, errExpected(tok, string(c))
	}
	return tok, nil
}

// Reports if the token after the current statement ends it.
func (p *Parser) atStmtEnd() bool {
	if p.eof() {
		return true
	}
	tok := p.toks[p.pos]
	return tok.Type == token.COMMA || tok.Is('}')
}
