package scanner

import "unicode"

func isAlpha(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isNum(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNum(c rune) bool {
	return isAlpha(c) || unicode.IsDigit(c)
}

func isWhitespace(c rune) bool {
	return unicode.IsSpace(c)
}
