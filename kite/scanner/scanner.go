package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/kite/util"
)

// Raw lexeme classes produced by the first pass, before words and numbers
// are interpreted.
type rawKind int

const (
	rawComma rawKind = iota
	rawNumber
	rawWord
	rawString
	rawBadString // Unterminated string
	rawSymbol
)

type rawToken struct {
	kind rawKind
	text string
	pos  token.Pos
}

type Scanner struct {
	file   *token.File
	text   []rune
	offset int // Index of current rune in text
	pos    token.Pos
	raw    []rawToken
	errors *util.ErrorHandler

	NumErrors int
}

// New makes a new Scanner object for the given file. The text is the raw text
// input to scan.
func New(file *token.File, text []byte) *Scanner {
	return &Scanner{
		file:   file,
		errors: util.NewErrorHandler(),
		text:   []rune(string(text)),
		pos:    token.Pos{Line: 1, Col: 1},
	}
}

// ScanAll scans the whole input and returns the token list. The last token is
// always EOF. Scanning never fails, malformed lexemes are returned as INVALID
// tokens and counted in NumErrors.
func (s *Scanner) ScanAll() []token.Token {
	s.scanRaw()
	return s.interpret()
}

// Error returns all lexical errors joined, or nil.
func (s *Scanner) Error() error {
	return s.errors.Error()
}

func (s *Scanner) eof() bool {
	return s.offset >= len(s.text)
}

func (s *Scanner) cur() rune {
	if s.eof() {
		return 0
	}
	return s.text[s.offset]
}

func (s *Scanner) peek() rune {
	if s.offset+1 >= len(s.text) {
		return 0
	}
	return s.text[s.offset+1]
}

// Consume current rune and advance position.
func (s *Scanner) consume() rune {
	c := s.cur()
	s.offset++
	s.pos.Offset += utf8.RuneLen(c)
	if c == '\n' {
		s.pos.Line++
		s.pos.Col = 1
	} else {
		s.pos.Col++
	}
	return c
}

func (s *Scanner) add(kind rawKind, text string, pos token.Pos) {
	s.raw = append(s.raw, rawToken{kind: kind, text: text, pos: pos})
}

// Adds a statement separator. Consecutive separators are collapsed and no
// separator is added before the first token.
func (s *Scanner) addComma(pos token.Pos) {
	if len(s.raw) == 0 || s.raw[len(s.raw)-1].kind == rawComma {
		return
	}
	s.add(rawComma, ",", pos)
}

func (s *Scanner) scanRaw() {
	for !s.eof() {
		c := s.cur()
		switch {
		case c == '\n':
			s.addComma(s.pos)
			s.consume()

		case isWhitespace(c):
			s.consume()

		case isAlpha(c):
			s.scanWord()

		case isNum(c) || c == '.':
			s.scanNumber()

		default:
			s.scanSymbol()
		}
	}
}

func (s *Scanner) scanWord() {
	start := s.pos
	var sb strings.Builder
	for !s.eof() && isAlphaNum(s.cur()) {
		sb.WriteRune(s.consume())
	}
	s.add(rawWord, sb.String(), start)
}

// Numbers may contain letters for radix prefixes and width suffixes, but
// not right after a dot. A minus is only part of the number after an
// exponent.
func (s *Scanner) scanNumber() {
	start := s.pos
	var sb strings.Builder

	first := s.consume()
	sb.WriteRune(first)
	prevE, prevDot := false, first == '.'

	for !s.eof() {
		c := s.cur()
		if !(isNum(c) || (isAlphaNum(c) && !prevDot) || c == '.' || (prevE && c == '-')) {
			break
		}

		prevE = c == 'e' || c == 'E'
		prevDot = c == '.'
		sb.WriteRune(s.consume())
	}

	s.add(rawNumber, sb.String(), start)
}

func (s *Scanner) scanSymbol() {
	start := s.pos
	c := s.cur()

	switch {
	case c == '"':
		s.scanString()

	case c == '/' && s.peek() == '/':
		// Line comment. The newline is left for the main loop so it still
		// separates statements.
		for !s.eof() && s.cur() != '\n' {
			s.consume()
		}

	case c == '/' && s.peek() == '*':
		s.consume()
		s.consume()
		for !s.eof() {
			if s.cur() == '*' && s.peek() == '/' {
				s.consume()
				s.consume()
				break
			}
			s.consume()
		}

	case c == ',':
		s.consume()
		s.addComma(start)

	default:
		s.consume()
		s.add(rawSymbol, string(c), start)
	}
}

// Escapes are kept verbatim, a backslash only stops the next character from
// ending the string.
func (s *Scanner) scanString() {
	start := s.pos
	s.consume() // Opening quote

	var sb strings.Builder
	for !s.eof() {
		c := s.consume()
		switch c {
		case '\\':
			sb.WriteRune(c)
			if !s.eof() {
				sb.WriteRune(s.consume())
			}

		case '"':
			s.add(rawString, sb.String(), start)
			return

		default:
			sb.WriteRune(c)
		}
	}

	s.add(rawBadString, "\""+sb.String(), start)
}

// Second pass, turns raw lexemes into tokens.
func (s *Scanner) interpret() []token.Token {
	toks := make([]token.Token, 0, len(s.raw)+1)

	special := false // Previous raw token was @
	var at token.Pos

	for _, r := range s.raw {
		if special && r.kind != rawWord {
			toks = append(toks, s.invalid(token.CatSymbol, "@", at))
			special = false
		}

		switch r.kind {
		case rawComma:
			toks = append(toks, token.Token{Type: token.COMMA, Lexeme: ",", Pos: r.pos})

		case rawWord:
			toks = append(toks, wordToken(r, special))

		case rawNumber:
			tok, ok := ParseNum(r.text)
			if !ok {
				toks = append(toks, s.invalid(token.CatNumber, r.text, r.pos))
				break
			}
			tok.Pos = r.pos
			toks = append(toks, tok)

		case rawString:
			toks = append(toks, token.Token{Type: token.STRING, Lexeme: r.text, Pos: r.pos})

		case rawBadString:
			toks = append(toks, s.invalid(token.CatString, r.text, r.pos))

		case rawSymbol:
			if r.text == "@" {
				special = true
				at = r.pos
				continue
			}
			toks = append(toks, token.Token{Type: token.SYMBOL, Lexeme: r.text, Pos: r.pos})
		}

		special = false
	}

	if special {
		toks = append(toks, s.invalid(token.CatSymbol, "@", at))
	}

	return append(toks, token.Token{Type: token.EOF, Pos: s.pos, Eof: true})
}

func wordToken(r rawToken, special bool) token.Token {
	if special {
		return token.Token{Type: token.SPECIAL, Lexeme: r.text, Pos: r.pos}
	}
	if typ, ok := token.Keywords[r.text]; ok {
		return token.Token{Type: typ, Lexeme: r.text, Pos: r.pos}
	}
	return token.Token{Type: token.IDENT, Lexeme: r.text, Pos: r.pos}
}

func (s *Scanner) invalid(cat token.Category, text string, pos token.Pos) token.Token {
	s.NumErrors++
	s.errors.Report(s.file, pos, utf8.RuneCountInString(text), fmt.Errorf("%s: invalid %s '%s'", pos, cat, text))
	return token.Token{Type: token.INVALID, Cat: cat, Lexeme: text, Pos: pos}
}
