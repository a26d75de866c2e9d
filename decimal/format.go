package decimal

// Format describes a decimal interchange format. Formats are values and are
// never modified in place; use WithSeparator to derive a copy.
type Format struct {
	// Bits is the width of the encoded pattern (64 or 128).
	Bits int

	// Digits is the number of coefficient digits the format holds.
	Digits int

	// MinExp is the exponent bias, the smallest exponent is -MinExp.
	MinExp int

	// MaxExp is the largest exponent.
	MaxExp int

	// Separator is the decimal separator used by Parse and String. The zero
	// value means '.'.
	Separator byte
}

// Interchange formats.
var (
	Decimal64 = Format{
		Bits:   64,
		Digits: 16,
		MinExp: 398,
		MaxExp: 369,
	}

	Decimal128 = Format{
		Bits:   128,
		Digits: 34,
		MinExp: 6176,
		MaxExp: 6111,
	}
)

// WithSeparator returns a copy of the format using sep as the decimal
// separator.
func (f Format) WithSeparator(sep byte) Format {
	f.Separator = sep

	return f
}

// Validate checks that the format describes a supported layout.
func (f Format) Validate() (err error) {
	_, err = f.layout()
	if err != nil {
		return err
	}

	sep := f.separator()
	switch {
	case sep >= '0' && sep <= '9',
		sep == ' ', sep == 'e', sep == 'E', sep == '+', sep == '-',
		sep >= 0x80:
		return Error.New("invalid decimal separator: %q", sep)
	}

	return nil
}

func (f Format) separator() byte {
	if f.Separator == 0 {
		return '.'
	}

	return f.Separator
}

// layout holds the field offsets for a format.
type layout struct {
	sign         uint
	combination  uint
	continuation uint
	width        uint
	declets      int
}

func (f Format) layout() (l layout, err error) {
	switch f.Bits {
	case 64:
		l = layout{sign: 63, combination: 58, continuation: 50, width: 8, declets: 5}
	case 128:
		l = layout{sign: 127, combination: 122, continuation: 110, width: 12, declets: 11}
	default:
		return l, Error.New("unsupported format: bits=%d", f.Bits)
	}

	if f.Digits != 1+3*l.declets {
		return l, Error.New("unsupported format: bits=%d digits=%d", f.Bits, f.Digits)
	}

	limit := 3<<l.width - 1
	if f.MinExp < 0 || f.MaxExp < 0 || f.MinExp+f.MaxExp > limit {
		return l, Error.New(
			"unsupported format: bits=%d min=%d max=%d",
			f.Bits,
			f.MinExp,
			f.MaxExp,
		)
	}

	return l, nil
}
