package kite

import (
	"errors"
	"strings"
	"testing"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

func TestParseFile(t *testing.T) {
	tree, err := ParseFile("main.kite", "x := 1\ny := x + 2")
	if err != nil {
		t.Fatal(err)
	}
	if len(tree.Stmts) != 2 {
		t.Errorf("expected 2 statements, got %d", len(tree.Stmts))
	}
}

func TestStageErrors(t *testing.T) {
	cases := []struct {
		src   string
		stage Stage
		count int
	}{
		{"x := 3ix", ScanStage, 1},
		{"x = )\n", ParseStage, 1},
		{"x := y", CheckStage, 1},
		{"a := b\nc := d", CheckStage, 2},
	}

	for _, c := range cases {
		_, err := Check(token.NewFile("main.kite", c.src))

		var kerr *Error
		if !errors.As(err, &kerr) {
			t.Errorf("%q: expected pipeline error, got %v", c.src, err)
			continue
		}
		if kerr.Stage != c.stage || kerr.Count != c.count {
			t.Errorf("%q: expected %d %s errors, got %s", c.src, c.count, c.stage, kerr.Summary())
		}
	}
}

func TestPrettyError(t *testing.T) {
	_, err := Check(token.NewFile("main.kite", "a := 1\nb := a + true\n"))
	if err == nil {
		t.Fatal("expected error")
	}

	s := err.Error()
	if !strings.Contains(s, "error: 2:8: type mismatch") {
		t.Errorf("expected message with position, got %q", s)
	}
	if !strings.Contains(s, "  2 | b := a + true\n") {
		t.Errorf("expected source line, got %q", s)
	}
}

func TestErrorSummary(t *testing.T) {
	e := &Error{File: "a.kite", Stage: ParseStage, Count: 1}
	if s := e.Summary(); s != "a.kite: 1 parse error" {
		t.Errorf("unexpected summary %q", s)
	}

	e.Count = 3
	if s := e.Summary(); s != "a.kite: 3 parse errors" {
		t.Errorf("unexpected summary %q", s)
	}
}

func TestCheckedProgram(t *testing.T) {
	prog, err := Check(token.NewFile("main.kite", "x: U8 = 7\n@print x"))
	if err != nil {
		t.Fatal(err)
	}

	if x := prog.Table.Get("x"); x.Type != types.U8 {
		t.Errorf("expected x to be U8, got %s", x.Type)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := ParseFile("does/not/exist.kite", nil); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestIncomplete(t *testing.T) {
	cases := []struct {
		src        string
		incomplete bool
	}{
		{"x := 1", false},
		{"loop {", true},
		{"if x {\n y = 1", true},
		{"if x {\n y = 1\n}", false},
		{"x = )", false},
	}

	for _, c := range cases {
		if Incomplete(c.src) != c.incomplete {
			t.Errorf("%q: expected incomplete to be %v", c.src, c.incomplete)
		}
	}
}
