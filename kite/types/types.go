package types

type Kind int

const (
	Invalid Kind = iota // Error type, bottom of the lattice
	Unknown             // Least informative, merges with anything

	Bool
	Num
)

// A Type is a value in the type lattice. Types are plain comparable values,
// two types are equal iff they are ==.
type Type struct {
	Kind Kind
	Num  NumType // Only set for Kind Num
}

// Merge returns the most specific type compatible with both a and b, or
// InvalidType if they cannot be the same type. Merge is commutative.
func Merge(a, b Type) Type {
	if t := mergeInto(a, b); t.Kind != Invalid {
		return t
	}
	return mergeInto(b, a)
}

// mergeInto tries to merge with dom as the dominant side. Dom only yields
// when it carries less or equal information than other.
func mergeInto(dom, other Type) Type {
	if dom.Kind == Unknown || dom == other {
		return other
	}

	if dom.Kind != Num || other.Kind != Num {
		return InvalidType
	}

	// A number of unknown family yields to any number. A family placeholder
	// only yields to its own family. Exact widths only match themselves,
	// which is covered above.
	if dom.Num.Family == NumUnknown {
		return other
	}
	if dom.Num.Width == WidthUnknown && dom.Num.Family == other.Num.Family {
		return other
	}

	return InvalidType
}

// Complete resolves remaining unknowns to their defaults. Numbers default to
// I32, signed to I32, unsigned to U32 and floats to F64. A fully unknown type
// has no default and completes to InvalidType. Complete is idempotent.
func Complete(t Type) Type {
	switch t.Kind {
	case Unknown:
		return InvalidType

	case Num:
		if t.Num.Width != WidthUnknown {
			return t
		}

		switch t.Num.Family {
		case NumUnknown, Signed:
			return I32
		case Unsigned:
			return U32
		case Float:
			return F64
		}
	}

	return t
}

// IsKnown reports whether no unknown placeholder remains in t.
func (t Type) IsKnown() bool {
	switch t.Kind {
	case Unknown:
		return false
	case Num:
		return t.Num.Width != WidthUnknown
	}
	return true
}

// IsNum reports whether t is a number of family f.
func (t Type) IsNum(f Family) bool {
	return t.Kind == Num && t.Num.Family == f
}

func (t Type) String() string {
	switch t.Kind {
	case Invalid:
		return "Invalid"
	case Unknown:
		return "Unknown"
	case Bool:
		return "Bool"
	}

	return t.Num.String()
}

var widthBits = [...]string{WidthUnknown: "", W8: "8", W16: "16", W32: "32", W64: "64"}

func (n NumType) String() string {
	var family, prefix string
	switch n.Family {
	case NumUnknown:
		return "Number"
	case Signed:
		family, prefix = "Signed", "I"
	case Unsigned:
		family, prefix = "Unsigned", "U"
	case Float:
		family, prefix = "Float", "F"
	}

	if n.Width == WidthUnknown {
		return family
	}
	return prefix + widthBits[n.Width]
}
