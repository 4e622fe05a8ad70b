package token

import "testing"

func TestLineOffsets(t *testing.T) {
	cases := map[string][]int{
		"":                 nil,
		"abc":              {0},
		"abc\n":            {0},
		"ab\n\ncd":         {0, 3, 4},
		"hello\nmy name\n": {0, 6},
	}

	for src, expect := range cases {
		lines := lineOffsets([]byte(src))
		if len(lines) != len(expect) {
			t.Errorf("%q: expected %v, got %v", src, expect, lines)
			continue
		}
		for i := range lines {
			if lines[i] != expect[i] {
				t.Errorf("%q: expected %v, got %v", src, expect, lines)
				break
			}
		}
	}
}

func TestFileCRLF(t *testing.T) {
	file := NewFile("", "a := 1\r\nb := 2")
	if s := file.Line(1); s != "a := 1" {
		t.Errorf("expected %q, got %q", "a := 1", s)
	}
	if s := file.Line(2); s != "b := 2" {
		t.Errorf("expected %q, got %q", "b := 2", s)
	}
}

func TestFileLine(t *testing.T) {
	file := NewFile("", "x := 1\n\ny = x + 2\n")

	cases := map[int]string{
		1: "x := 1",
		2: "",
		3: "y = x + 2",
		4: "",
		0: "",
	}

	for line, expect := range cases {
		if s := file.Line(line); s != expect {
			t.Errorf("line %d: expected %q, got %q", line, expect, s)
		}
	}
}

func TestTokenIs(t *testing.T) {
	tok := Symbol('}', Pos{Line: 1, Col: 1})
	if !tok.Is('}') {
		t.Errorf("expected symbol to be }")
	}
	if tok.Is('{') {
		t.Errorf("expected symbol not to be {")
	}
	if (Token{Type: IDENT, Lexeme: "}"}).Is('}') {
		t.Errorf("identifier must not match a symbol")
	}
}
