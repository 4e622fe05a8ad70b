package kite

import (
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/checker"
	"github.com/kite-lang/kite/kite/ir"
	"github.com/kite-lang/kite/kite/parser"
	"github.com/kite-lang/kite/kite/scanner"
	"github.com/kite-lang/kite/kite/token"
)

// A Program is a checked file, ready to be handed to a backend.
type Program struct {
	File  *token.File
	Tree  *ast.Block
	Table checker.TableReader
}

type IR struct {
	Program      *Program
	Instructions []ir.Instruction
}

// ParseFile reads the file if src is nil, otherwise src is used as the file
// content and must be a string or []byte.
func ParseFile(filename string, src any) (*ast.Block, error) {
	return Parse(token.NewFile(filename, src))
}

// Parse scans and parses file. Scanning errors stop the pipeline before
// parsing. On parse errors the partial tree is returned with the error.
func Parse(file *token.File) (*ast.Block, error) {
	if file.Err != nil {
		return nil, file.Err
	}

	s := scanner.New(file, file.Src)
	toks := s.ScanAll()

	if s.NumErrors > 0 {
		return nil, &Error{File: file.Name, Stage: ScanStage, Count: s.NumErrors, Err: s.Error()}
	}

	p := parser.New(file, toks)
	tree := p.Parse()

	if p.NumErrors > 0 {
		return tree, &Error{File: file.Name, Stage: ParseStage, Count: p.NumErrors, Err: p.Error()}
	}

	return tree, nil
}

// Check parses and type checks file. Every expression node in the returned
// program has a concrete type.
func Check(file *token.File) (*Program, error) {
	tree, err := Parse(file)
	if err != nil {
		return nil, err
	}

	c := checker.New(file, tree)
	if err := c.Check(); err != nil {
		return nil, &Error{File: file.Name, Stage: CheckStage, Count: c.NumErrors, Err: err}
	}

	return &Program{
		File:  file,
		Tree:  tree,
		Table: c.Table(),
	}, nil
}

// GenerateIR checks file and lowers it to stack instructions.
func GenerateIR(file *token.File) (*IR, error) {
	prog, err := Check(file)
	if err != nil {
		return nil, err
	}

	ins, err := ir.NewBuilder(prog.Tree, prog.Table).Build()
	if err != nil {
		return nil, &Error{File: file.Name, Stage: BuildStage, Count: 1, Err: err}
	}

	return &IR{Program: prog, Instructions: ins}, nil
}

// Incomplete reports if src only fails to parse because a block is not
// closed yet, eg. a line ending in '{'. Used to read multi-line input.
func Incomplete(src string) bool {
	s := scanner.New(nil, []byte(src))
	_, errs := parser.Construct(s.ScanAll())

	for _, err := range errs {
		if err.Kind == parser.UnclosedBlock {
			return true
		}
	}
	return false
}
