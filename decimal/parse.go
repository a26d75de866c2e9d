package decimal

import "strings"

// maxExponentText bounds the magnitude of a parsed exponent so the
// arithmetic cannot overflow. Anything this large is out of range for every
// format.
const maxExponentText = 1 << 30

// Parse reads decimal text using the separator of f.
//
// The coefficient is returned as an unscaled integer: digits after the
// separator are moved into the exponent, so "3.14" is 314 with exponent -2.
func Parse(text string, f Format) (v Value, err error) {
	err = f.Validate()
	if err != nil {
		return Value{}, err
	}

	if text == "" {
		return Value{}, ParseError.New("empty input")
	}

	sep := f.separator()

	i := 0
	if text[0] == '+' || text[0] == '-' {
		v.Negative = text[0] == '-'
		i++
	}

	switch strings.ToLower(text[i:]) {
	case "nan":
		v.NaN = true

		return v, nil
	case "infinity":
		v.Infinity = true

		return v, nil
	}

	digits := make([]byte, 0, len(text))
	count := 0
	scale := 0
	fraction := false

loop:
	for ; i < len(text); i++ {
		c := text[i]

		switch {
		case c >= '0' && c <= '9':
			count++
			if fraction {
				scale++
			}

			if c == '0' && len(digits) == 0 {
				continue
			}

			digits = append(digits, c)
		case c == sep:
			if fraction {
				return Value{}, ParseError.New(
					"multiple decimal separators: %q at offset %d",
					c,
					i,
				)
			}

			fraction = true
		case c == ' ', c == 'e', c == 'E':
			break loop
		default:
			return Value{}, ParseError.New("invalid character: %q at offset %d", c, i)
		}
	}

	if count == 0 {
		return Value{}, ParseError.New("no digits at offset %d", i)
	}

	exponent := 0
	if i < len(text) {
		exponent, err = parseExponent(text, i)
		if err != nil {
			return Value{}, err
		}
	}

	if len(digits) == 0 {
		v.Digits = "0"
	} else {
		v.Digits = string(digits)
	}

	v.Exponent = exponent - scale

	return v, nil
}

// parseExponent reads the exponent suffix starting at text[i], which is a
// space or 'e'/'E'.
func parseExponent(text string, i int) (exponent int, err error) {
	for i < len(text) && text[i] == ' ' {
		i++
	}

	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
	}

	negative := false
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		negative = text[i] == '-'
		i++
	}

	if i == len(text) {
		return 0, ParseError.New("missing exponent at offset %d", i)
	}

	for ; i < len(text); i++ {
		c := text[i]
		if c < '0' || c > '9' {
			return 0, ParseError.New("invalid exponent character: %q at offset %d", c, i)
		}

		exponent = exponent*10 + int(c-'0')
		if exponent > maxExponentText {
			return 0, RangeError.New("exponent too large at offset %d", i)
		}
	}

	if negative {
		exponent = -exponent
	}

	return exponent, nil
}
