package scanner

import (
	"math"
	"testing"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

func TestParseNum(t *testing.T) {
	signed := types.NumType{Family: types.Signed}
	floatUnknown := types.NumType{Family: types.Float}

	cases := []struct {
		lexeme string
		typ    token.TokenType
		i      uint64
		f      float64
		num    types.NumType
	}{
		{"12", token.INT, 12, 0, types.NumType{}},
		{"32u8", token.INT, 32, 0, types.NumType{Family: types.Unsigned, Width: types.W8}},
		{"_3__i6_4", token.INT, 3, 0, types.NumType{Family: types.Signed, Width: types.W64}},
		{"0xbEeFi", token.INT, 48879, 0, signed},
		{"0b01010111", token.INT, 87, 0, types.NumType{}},
		{"0q33", token.INT, 15, 0, types.NumType{}},
		{"0o17u", token.INT, 15, 0, types.NumType{Family: types.Unsigned}},
		{"0d19", token.INT, 19, 0, types.NumType{}},
		{"51f32", token.FLOAT, 0, 51, types.NumType{Family: types.Float, Width: types.W32}},
		{"2.", token.FLOAT, 0, 2, floatUnknown},
		{".5f64", token.FLOAT, 0, 0.5, types.NumType{Family: types.Float, Width: types.W64}},
		{"12e-2", token.FLOAT, 0, 12e-2, floatUnknown},
		{"3f", token.FLOAT, 0, 3, floatUnknown},
		{"1E3", token.FLOAT, 0, 1000, floatUnknown},
		{"255u8", token.INT, 255, 0, types.NumType{Family: types.Unsigned, Width: types.W8}},
		{"128i8", token.INT, 128, 0, types.NumType{Family: types.Signed, Width: types.W8}},
		{"0xffff_ffffu32", token.INT, 0xffffffff, 0, types.NumType{Family: types.Unsigned, Width: types.W32}},
		{"1e-400", token.FLOAT, 0, 0, floatUnknown},
	}

	for _, c := range cases {
		tok, ok := ParseNum(c.lexeme)
		if !ok {
			t.Errorf("%s: expected ok", c.lexeme)
			continue
		}
		if tok.Type != c.typ || tok.Int != c.i || tok.Float != c.f || tok.Num != c.num {
			t.Errorf("%s: expected {%s %d %g %v}, got {%s %d %g %v}",
				c.lexeme, c.typ, c.i, c.f, c.num, tok.Type, tok.Int, tok.Float, tok.Num)
		}
		if tok.Lexeme != c.lexeme {
			t.Errorf("%s: expected lexeme to be kept, got %s", c.lexeme, tok.Lexeme)
		}
	}
}

func TestParseNumInvalid(t *testing.T) {
	cases := []string{
		"3ix",
		"1i7",
		"5u128",
		"2f16",
		"0x",
		"0b102",
		"1.2.3",
		"1e",
		"..",
		"12ab",
		"99999999999999999999",
		"256u8",
		"300u8",
		"129i8",
		"65536u16",
		"0x1_0000_0000u32",
	}

	for _, c := range cases {
		if tok, ok := ParseNum(c); ok {
			t.Errorf("%s: expected invalid, got %+v", c, tok)
		}
	}
}

func TestParseNumOverflowingFloat(t *testing.T) {
	tok, ok := ParseNum("1e400")
	if !ok || !math.IsInf(tok.Float, 1) {
		t.Errorf("expected +Inf, got %+v", tok)
	}
}

func TestParseNumDot(t *testing.T) {
	tok, ok := ParseNum(".")
	if !ok || !tok.Is('.') {
		t.Errorf("expected lone dot to be a symbol, got %+v", tok)
	}
}
