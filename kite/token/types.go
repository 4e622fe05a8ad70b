package token

type TokenType int

const (
	EOF TokenType = iota

	FLOAT
	INT
	STRING
	IDENT
	SYMBOL
	COMMA // Statement separator, explicit or synthesized from a newline

	IF
	ELSE
	LOOP
	RETURN
	TRUE
	FALSE

	SPECIAL // Word following an @, eg. @print
	INVALID
)

var Keywords = map[string]TokenType{
	"if":     IF,
	"else":   ELSE,
	"loop":   LOOP,
	"return": RETURN,
	"true":   TRUE,
	"false":  FALSE,
}

var typeNames = map[TokenType]string{
	EOF:     "end of input",
	FLOAT:   "float",
	INT:     "integer",
	STRING:  "string",
	IDENT:   "identifier",
	SYMBOL:  "symbol",
	COMMA:   ",",
	IF:      "if",
	ELSE:    "else",
	LOOP:    "loop",
	RETURN:  "return",
	TRUE:    "true",
	FALSE:   "false",
	SPECIAL: "special",
	INVALID: "invalid",
}

func (t TokenType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return "unknown"
}

// Category is the coarse class of raw lexeme an INVALID token was scanned as.
type Category int

const (
	CatNone Category = iota
	CatNumber
	CatWord
	CatString
	CatSymbol
)

func (c Category) String() string {
	switch c {
	case CatNumber:
		return "number"
	case CatWord:
		return "word"
	case CatString:
		return "string"
	case CatSymbol:
		return "symbol"
	}
	return "none"
}
