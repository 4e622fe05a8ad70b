package types

// Family is the numeric family of a number type. Numbers only ever merge
// within the same family.
type Family int

const (
	NumUnknown Family = iota // Any number, family not yet decided

	Signed
	Unsigned
	Float
)

// Width is the bit size of a number type. Floats only use W32 and W64.
type Width int

const (
	WidthUnknown Width = iota

	W8
	W16
	W32
	W64
)

// A NumType is the family and width of a number. The zero value is a number
// of unknown family.
type NumType struct {
	Family Family
	Width  Width
}

// Basic types.
var (
	InvalidType = Type{Kind: Invalid}
	UnknownType = Type{Kind: Unknown}
	BoolType    = Type{Kind: Bool}
	NumberType  = Type{Kind: Num}

	SignedType   = NumOf(Signed, WidthUnknown)
	UnsignedType = NumOf(Unsigned, WidthUnknown)
	FloatType    = NumOf(Float, WidthUnknown)

	I8  = NumOf(Signed, W8)
	I16 = NumOf(Signed, W16)
	I32 = NumOf(Signed, W32)
	I64 = NumOf(Signed, W64)

	U8  = NumOf(Unsigned, W8)
	U16 = NumOf(Unsigned, W16)
	U32 = NumOf(Unsigned, W32)
	U64 = NumOf(Unsigned, W64)

	F32 = NumOf(Float, W32)
	F64 = NumOf(Float, W64)
)

var typeNames = map[string]Type{
	"I8":    I8,
	"I16":   I16,
	"I32":   I32,
	"Int":   I32,
	"I64":   I64,
	"U8":    U8,
	"U16":   U16,
	"U32":   U32,
	"U64":   U64,
	"F32":   F32,
	"F64":   F64,
	"Float": F64,
	"Bool":  BoolType,
}

// FromName returns the type written as name in a declaration, eg. "I64".
// Returns ok false and InvalidType for unknown names.
func FromName(name string) (t Type, ok bool) {
	t, ok = typeNames[name]
	if !ok {
		return InvalidType, false
	}
	return t, true
}

// NumOf returns the number type of the given family and width.
func NumOf(f Family, w Width) Type {
	return Type{Kind: Num, Num: NumType{Family: f, Width: w}}
}
