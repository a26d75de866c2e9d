package field

// Type describes a column type handled by an Adapter.
type Type struct {
	Abbr string
	Name string
	Size int
}

type types []Type

// Match returns the type with the given abbreviation.
func (ts types) Match(abbr string) (t Type, ok bool) {
	for _, t := range ts {
		if t.Abbr == abbr {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown    = Type{}
	Decimal64  = Type{"d64", "decimal64", 8}
	Decimal128 = Type{"d128", "decimal128", 16}
	Int128     = Type{"i128", "int128", 16}

	Types = types{
		Decimal64,
		Decimal128,
		Int128,
	}
)
