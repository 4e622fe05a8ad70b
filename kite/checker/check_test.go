package checker

import (
	"testing"

	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/parser"
	"github.com/kite-lang/kite/kite/scanner"
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

func tassert(t *testing.T, v bool, f string, args ...any) {
	if !v {
		t.Errorf(f, args...)
		t.FailNow()
	}
}

func checkerFrom(t *testing.T, src string) (*Checker, *ast.Block) {
	file := token.NewFile("", src)
	tassert(t, file.Err == nil, "new file error: %s", file.Err)
	s := scanner.New(file, file.Src)
	toks := s.ScanAll()
	tassert(t, s.NumErrors == 0, "scanAll error: %s", s.Error())
	p := parser.New(file, toks)
	tree := p.Parse()
	tassert(t, p.NumErrors == 0, "parse error: %s", p.Error())
	return New(file, tree), tree
}

func typedTree(tree *ast.Block) string {
	d := ast.NewDebugVisitor(tree)
	d.Types = true
	return d.String()
}

func TestLiteralTakesAnnotatedType(t *testing.T) {
	c, tree := checkerFrom(t, "x: I64 = 5")
	tassert(t, c.Check() == nil, "expected no errors, got %s", c.Error())

	decl := tree.Stmts[0].(*ast.Decl)
	lit := decl.Value.Nodes[0]
	tassert(t, lit.Type == types.I64, "expected literal type I64, got %s", lit.Type)
	tassert(t, c.Table().Get("x").Type == types.I64, "expected x to be I64")
}

func TestDefaultNumberType(t *testing.T) {
	c, _ := checkerFrom(t, "x := 5")
	tassert(t, c.Check() == nil, "expected no errors, got %s", c.Error())

	x := c.Table().Get("x")
	tassert(t, x.Type == types.I32, "expected x to be I32, got %s", x.Type)
}

func TestValidPrograms(t *testing.T) {
	cases := []string{
		"x := 1\ny := x + 2 * x",
		"a: U16\na = 3",
		"f := 1.5\ng := f / 2 - -f",
		"b := true\nc := !b | 1 < 2 & b",
		"n: I8 = 1\nif n > 0 { n = 0 } else if n == 0 { n = 1 } else { return n }",
		"i := 0\nloop { i += 1\nif i >= 10 { return } }",
		"x := 1\n{ x := 2.5\n y := x * 2 }",
		"x := 1\n@print x",
		"e := 1 == 2 != false",
		"r := /2.0",
	}

	for i, src := range cases {
		c, _ := checkerFrom(t, src)
		c.Check()
		tassert(t, c.NumErrors == 0, "case %d: expected no errors, got %s", i+1, c.Error())
	}
}

func TestCheckErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind ErrorKind
	}{
		{"x := x", Undeclared},
		{"y = 1", Undeclared},
		{"@print z", Undeclared},
		{"{ x := 1 }\ny := x", Undeclared},
		{"x := 1\nx := 2", AlreadyDeclared},
		{"x := 1 +", TooFewOperands},
		{"x := !", TooFewOperands},
		{"x := 1 + true", TypeMismatch},
		{"x: U8 = 1.5", TypeMismatch},
		{"x: Bool = 1", TypeMismatch},
		{"x := 1\nx = true", TypeMismatch},
		{"x := 1u8 + 1i", TypeMismatch},
		{"x := 1i32 + 1i64", TypeMismatch},
		{"x := 1 & true", TypeMismatch},
		{"x := true < 1", TypeMismatch},
		{"if 1 { }", TypeMismatch},
		{"x: U8 = 1\ny := -x", ExpectedSigned},
		{"y := -2u", ExpectedSigned},
		{"x :=", EmptyExpression},
		{"x:\ny := x == 1", TypeNotDetermined},
		{"x:", TypeNotDetermined},
		{"x: Foo = 1", UnknownType},
		{"x := 2 ^ 3", Unsupported},
		{"x := 1 2", MissingOperator},
		{"a := 1\nb := a + 2.5", TypeMismatch},
		{"a := 1\nb := 2.5 * a", TypeMismatch},
	}

	for _, cas := range cases {
		c, _ := checkerFrom(t, cas.src)
		err := c.Check()
		tassert(t, err != nil, "%q: expected error, got none", cas.src)

		errs := c.Errors()
		tassert(t, errs[0].Kind == cas.kind, "%q: expected error kind %d, got %d: %s",
			cas.src, cas.kind, errs[0].Kind, errs[0])
	}
}

func TestErrorMessage(t *testing.T) {
	c, _ := checkerFrom(t, "a := 1\nb := a + true")
	c.Check()

	tassert(t, c.NumErrors == 1, "expected one error, got %d", c.NumErrors)
	msg := c.Errors()[0].Error()
	tassert(t, msg == "2:8: type mismatch, expected Number, found Bool", "unexpected message %q", msg)
}

func TestFloatLiteralNextToInt(t *testing.T) {
	c, tree := checkerFrom(t, "a := 1\nb := a + 2.5")
	c.Check()

	tassert(t, c.NumErrors == 1, "expected one error, got %d", c.NumErrors)
	msg := c.Errors()[0].Error()
	tassert(t, msg == "2:10: type mismatch, expected I32, found Float", "unexpected message %q", msg)

	lit := tree.Stmts[1].(*ast.Decl).Value.Nodes[1]
	tassert(t, lit.Type.Kind == types.Invalid, "expected literal to be invalid, got %s", lit.Type)
}

func TestContinueAfterStatementError(t *testing.T) {
	c, _ := checkerFrom(t, "a := b\nc := d")
	c.Check()
	tassert(t, c.NumErrors == 2, "expected two errors, got %d", c.NumErrors)

	// A failed declaration still declares the name.
	c, _ = checkerFrom(t, "a := b\nc := a + 1")
	c.Check()
	tassert(t, c.NumErrors == 1, "expected one error, got %d: %s", c.NumErrors, c.Error())
}

func TestReverseInference(t *testing.T) {
	cases := []struct {
		src    string
		expect string
	}{
		{"x: I64 = 5", "x: I64 = [5:I64]\n"},
		{"x: U8 = 1 + 2", "x: U8 = [1:U8 2:U8 +:U8]\n"},
		{"x: I8 = -3", "x: I8 = [3:I8 -x:I8]\n"},
		{"x := 1.5 + 2", "x: = [1.5:F64 2:F64 +:F64]\n"},
		{"x := 1\nx = 2.5", "x: = [1:F64]\nx = [2.5:F64]\n"},
		{"a: I16 = 1\nb := a + 2", "a: I16 = [1:I16]\nb: = [a:I16 2:I16 +:I16]\n"},
		{"b := 1 < 2.5", "b: = [1:I32 2.5:F64 <:Bool]\n"},
		{"t := true & 1 < 2", "t: = [true:Bool 1:I32 2:I32 <:Bool &:Bool]\n"},
		{"return 1 + 2", "return [1:I32 2:I32 +:I32]\n"},
		{"x: U64\nif x > 1 { }", "x: U64\nif [x:U64 1:I32 >:Bool] {\n}\n"},
	}

	for _, cas := range cases {
		c, tree := checkerFrom(t, cas.src)
		tassert(t, c.Check() == nil, "%q: expected no errors, got %s", cas.src, c.Error())

		s := typedTree(tree)
		tassert(t, s == cas.expect, "%q: expected\n%s\ngot\n%s", cas.src, cas.expect, s)
	}
}

func TestAllNodesConcrete(t *testing.T) {
	src := `
	a := 1
	b: F32 = 2
	loop {
		a += 1
		if a > 5 & !(b <= 1.5) {
			return a * 2
		}
	}
	`

	c, tree := checkerFrom(t, src)
	tassert(t, c.Check() == nil, "expected no errors, got %s", c.Error())

	var walk func(b *ast.Block)
	check := func(e *ast.Expr) {
		for _, n := range e.Nodes {
			tassert(t, n.Type.IsKnown() && n.Type.Kind != types.Invalid,
				"node %s has unresolved type %s", n, n.Type)
		}
	}

	walk = func(b *ast.Block) {
		for _, stmt := range b.Stmts {
			switch s := stmt.(type) {
			case *ast.Decl:
				if s.Value != nil {
					check(s.Value)
				}
			case *ast.Assign:
				check(s.Value)
			case *ast.If:
				for _, cond := range s.Conds {
					check(cond)
				}
				for _, b := range s.Blocks {
					walk(b)
				}
			case *ast.Loop:
				walk(s.Body)
			case *ast.Return:
				check(s.Value)
			}
		}
	}

	walk(tree)
}

func TestTableReader(t *testing.T) {
	c, tree := checkerFrom(t, "x := 1\n{\n y := x\n x := 2.5\n}")
	tassert(t, c.Check() == nil, "expected no errors, got %s", c.Error())

	r := c.Table()
	outer := r.Get("x")
	tassert(t, outer.Type == types.I32, "expected outer x to be I32, got %s", outer.Type)

	inner := tree.Stmts[1].(*ast.Block)
	r.Push(inner)

	tassert(t, r.Get("x").Type == types.F64, "expected inner x to be F64")

	yDecl := inner.Stmts[0].(*ast.Decl)
	tassert(t, r.Resolve(yDecl.Value, 0) == outer, "expected y to be initialized from outer x")
	tassert(t, r.Target(yDecl).Type == types.I32, "expected y to be I32")

	r.Pop()
	tassert(t, r.Get("x") == outer, "expected outer x after pop")
}

func TestScopeArena(t *testing.T) {
	c, tree := checkerFrom(t, "a := 1\nloop { b := 2\n{ d := 3 } }")
	tassert(t, c.Check() == nil, "expected no errors, got %s", c.Error())

	table := c.table
	body := tree.Stmts[1].(*ast.Loop).Body
	nested := body.Stmts[1].(*ast.Block)

	bodyID, ok := table.ScopeOf(body)
	tassert(t, ok, "loop body has no scope")
	nestedID, ok := table.ScopeOf(nested)
	tassert(t, ok, "nested block has no scope")

	tassert(t, table.Scope(bodyID).Parent() == table.Root(), "expected loop scope to be child of root")
	tassert(t, table.Scope(nestedID).Parent() == bodyID, "expected nested scope to be child of loop scope")
	tassert(t, table.Scope(table.Root()).Parent() == NoScope, "expected root to have no parent")

	_, ok = table.Scope(nestedID).Vars()["d"]
	tassert(t, ok, "expected d in nested scope")
}
