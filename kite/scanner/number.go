package scanner

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/types"
)

var radixes = map[byte]int{
	'b': 2,
	'q': 4,
	'o': 8,
	'x': 16,
	'd': 10,
}

var intSuffixes = map[string]types.NumType{
	"i":   {Family: types.Signed},
	"i8":  {Family: types.Signed, Width: types.W8},
	"i16": {Family: types.Signed, Width: types.W16},
	"i32": {Family: types.Signed, Width: types.W32},
	"i64": {Family: types.Signed, Width: types.W64},
	"u":   {Family: types.Unsigned},
	"u8":  {Family: types.Unsigned, Width: types.W8},
	"u16": {Family: types.Unsigned, Width: types.W16},
	"u32": {Family: types.Unsigned, Width: types.W32},
	"u64": {Family: types.Unsigned, Width: types.W64},
}

var floatSuffixes = map[string]types.NumType{
	"f":   {Family: types.Float},
	"f32": {Family: types.Float, Width: types.W32},
	"f64": {Family: types.Float, Width: types.W64},
}

// ParseNum parses a numeric lexeme into an INT or FLOAT token. A lone dot is
// returned as the symbol ".". Returns ok false if the lexeme is malformed.
//
// The lexeme is lower-cased and stripped of _ separators first. A radix
// prefix (0b, 0q, 0o, 0x, 0d) always makes an integer, otherwise an exponent
// or decimal point makes a float. Suffixes select the width, eg. 5u8, 2.5f32.
// Without a suffix the width is left unknown.
func ParseNum(lexeme string) (tok token.Token, ok bool) {
	if lexeme == "." {
		return token.Token{Type: token.SYMBOL, Lexeme: "."}, true
	}

	s, ok := reduceNum(lexeme)
	if !ok {
		return tok, false
	}

	if hasRadix(s) {
		tok, ok = parseInt(s)
	} else if strings.ContainsAny(s, "e.") {
		tok, ok = parseFloat(s)
	} else {
		tok, ok = parseInt(s)
	}

	tok.Lexeme = lexeme
	return tok, ok
}

func hasRadix(s string) bool {
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	_, ok := radixes[s[1]]
	return ok
}

func parseFloat(s string) (token.Token, bool) {
	body, num := s, types.NumType{Family: types.Float}
	if idx := strings.IndexByte(s, 'f'); idx >= 0 {
		n, ok := floatSuffixes[s[idx:]]
		if !ok {
			return token.Token{}, false
		}
		body, num = s[:idx], n
	}

	// Values too large for a float become infinity.
	v, err := strconv.ParseFloat(body, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return token.Token{}, false
	}

	return token.Token{Type: token.FLOAT, Float: v, Num: num}, true
}

func parseInt(s string) (token.Token, bool) {
	base, start := 10, 0
	if hasRadix(s) {
		base, start = radixes[s[1]], 2
	} else if strings.IndexByte(s, 'f') >= 0 {
		// Integer body with float suffix, eg. 51f32
		return parseFloat(s)
	}

	end, num := len(s), types.NumType{}
	if idx := strings.IndexAny(s, "iu"); idx >= 0 {
		n, ok := intSuffixes[s[idx:]]
		if !ok {
			return token.Token{}, false
		}
		end, num = idx, n
	}

	if start > end {
		return token.Token{}, false
	}

	v, err := strconv.ParseUint(s[start:end], base, 64)
	if err != nil || v > maxValue(num) {
		return token.Token{}, false
	}

	return token.Token{Type: token.INT, Int: v, Num: num}, true
}

var widthBits = map[types.Width]uint{
	types.W8:  8,
	types.W16: 16,
	types.W32: 32,
	types.W64: 64,
}

// Largest literal that fits an explicit width. Signed literals may reach the
// magnitude of the minimum value so that eg. -128i8 can be written.
func maxValue(num types.NumType) uint64 {
	bits, ok := widthBits[num.Width]
	if !ok {
		return math.MaxUint64
	}

	if num.Family == types.Signed {
		return 1 << (bits - 1)
	}
	if bits == 64 {
		return math.MaxUint64
	}
	return 1<<bits - 1
}

// Lower-cases and removes digit separators. Only ascii is accepted.
func reduceNum(s string) (string, bool) {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x80 {
			return "", false
		}
		if c == '_' {
			continue
		}
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		sb.WriteByte(c)
	}
	return sb.String(), true
}
