// Package field adapts stored column bytes to display text and back.
//
// Column layers hand over the raw bytes of a single field. The adapter
// reassembles the bit pattern using the schema byte order and runs it
// through the decimal or integer codec.
//
//  | Type | Size | Big Endian Layout              |
//  |------|------|--------------------------------|
//  | d64  |    8 | pattern                        |
//  | d128 |   16 | high 64 bits, low 64 bits      |
//  | i128 |   16 | high 64 bits, low 64 bits      |
//  |------|------|--------------------------------|
//
// Little endian columns store the same 8 or 16 bytes reversed.
package field

import (
	"encoding/binary"

	"github.com/zeebo/errs"

	"github.com/calebcase/dpd/decimal"
	"github.com/calebcase/dpd/integer"
)

// Error is the class of adapter errors.
var Error = errs.Class("field")

// Schema represents a configured column.
type Schema struct {
	Type Type

	// Order is the byte order of stored values. Nil means big endian.
	Order binary.ByteOrder

	// Separator is the decimal separator for decimal columns. Zero means
	// '.'.
	Separator byte

	// Thousands are ignored when parsing integer columns.
	Thousands []rune

	Nullable bool
}

// Adapter converts the values of one column.
type Adapter struct {
	schema Schema
	format decimal.Format
}

// New returns an adapter for the schema.
func New(schema Schema) (a *Adapter, err error) {
	a = &Adapter{
		schema: schema,
	}

	if a.schema.Order == nil {
		a.schema.Order = binary.BigEndian
	}

	switch schema.Type {
	case Decimal64:
		a.format = decimal.Decimal64.WithSeparator(schema.Separator)
	case Decimal128:
		a.format = decimal.Decimal128.WithSeparator(schema.Separator)
	case Int128:
		return a, nil
	default:
		return nil, Error.New("unsupported type: %q", schema.Type.Abbr)
	}

	err = a.format.Validate()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return a, nil
}

// Schema returns the schema of the adapter.
func (a *Adapter) Schema() Schema {
	return a.schema
}

// Display returns the text for the stored bytes raw.
func (a *Adapter) Display(raw []byte) (text string, err error) {
	defer Error.WrapP(&err)

	if raw == nil && a.schema.Nullable {
		return "", nil
	}

	if len(raw) != a.schema.Type.Size {
		return "", Error.New(
			"invalid %s size: got=%d want=%d",
			a.schema.Type.Name,
			len(raw),
			a.schema.Type.Size,
		)
	}

	switch a.schema.Type {
	case Decimal64:
		v := decimal.FromBits64(a.schema.Order.Uint64(raw))

		return v.Format(a.format), nil
	case Decimal128:
		hi, lo := a.unpack(raw)

		v := decimal.FromBits128(decimal.Bits128{Hi: hi, Lo: lo})

		return v.Format(a.format), nil
	default:
		hi, lo := a.unpack(raw)

		return integer.New(hi, lo).String(), nil
	}
}

// Store returns the stored bytes for text.
func (a *Adapter) Store(text string) (raw []byte, err error) {
	defer Error.WrapP(&err)

	if text == "" && a.schema.Nullable {
		return nil, nil
	}

	raw = make([]byte, a.schema.Type.Size)

	switch a.schema.Type {
	case Decimal64:
		v, err := decimal.Parse(text, a.format)
		if err != nil {
			return nil, err
		}

		bits, err := decimal.ToBits64(v)
		if err != nil {
			return nil, err
		}

		a.schema.Order.PutUint64(raw, bits)
	case Decimal128:
		v, err := decimal.Parse(text, a.format)
		if err != nil {
			return nil, err
		}

		bits, err := decimal.ToBits128(v)
		if err != nil {
			return nil, err
		}

		a.pack(raw, bits.Hi, bits.Lo)
	default:
		i, err := integer.Parse(text, a.schema.Thousands...)
		if err != nil {
			return nil, err
		}

		a.pack(raw, i.Hi, i.Lo)
	}

	return raw, nil
}

func (a *Adapter) littleEndian() bool {
	return a.schema.Order.Uint16([]byte{1, 0}) == 1
}

func (a *Adapter) unpack(raw []byte) (hi, lo uint64) {
	if a.littleEndian() {
		return a.schema.Order.Uint64(raw[8:]), a.schema.Order.Uint64(raw[:8])
	}

	return a.schema.Order.Uint64(raw[:8]), a.schema.Order.Uint64(raw[8:])
}

func (a *Adapter) pack(raw []byte, hi, lo uint64) {
	if a.littleEndian() {
		a.schema.Order.PutUint64(raw[:8], lo)
		a.schema.Order.PutUint64(raw[8:], hi)

		return
	}

	a.schema.Order.PutUint64(raw[:8], hi)
	a.schema.Order.PutUint64(raw[8:], lo)
}
