package decimal_test

import (
	"fmt"
	"math/rand"
	"reflect"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/dpd/decimal"
	"github.com/calebcase/oops"
)

func TestCodec64(t *testing.T) {
	type TC struct {
		Value decimal.Value
		Bits  uint64
		Mark  error
	}

	tcs := []TC{
		{
			Value: decimal.Value{Digits: "1"},
			Bits:  0x2238000000000001,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Negative: true, Digits: "1"},
			Bits:  0xA238000000000001,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "0"},
			Bits:  0x2238000000000000,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "8"},
			Bits:  0x2238000000000008,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "314", Exponent: -2},
			Bits:  0x2230000000000194,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1234567890123456"},
			Bits:  0x263934B9C1E28E56,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "9000000000000000"},
			Bits:  0x6E38000000000000,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "9999999999999999", Exponent: 369},
			Bits:  0x77FCFF3FCFF3FCFF,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1", Exponent: 369},
			Bits:  0x43FC000000000001,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1", Exponent: -398},
			Bits:  0x0000000000000001,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Infinity(false),
			Bits:  0x7800000000000000,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Infinity(true),
			Bits:  0xF800000000000000,
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.NaN(),
			Bits:  0x7C00000000000000,
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%016x", i, tc.Bits), func(t *testing.T) {
			bits, err := decimal.ToBits64(tc.Value)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Bits, bits, "%016x %v", bits, tc.Mark)

			v := decimal.FromBits64(tc.Bits)
			require.Equal(t, tc.Value, v, tc.Mark)
		})
	}
}

func TestCodec128(t *testing.T) {
	type TC struct {
		Value decimal.Value
		Bits  decimal.Bits128
		Mark  error
	}

	tcs := []TC{
		{
			Value: decimal.Value{Digits: "1"},
			Bits:  decimal.Bits128{Hi: 0x2208000000000000, Lo: 0x0000000000000001},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "0"},
			Bits:  decimal.Bits128{Hi: 0x2208000000000000},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "314", Exponent: -2},
			Bits:  decimal.Bits128{Hi: 0x2207800000000000, Lo: 0x0000000000000194},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1234567890123456789012345678901234"},
			Bits:  decimal.Bits128{Hi: 0x2608134B9C1E28E5, Lo: 0x6F3C127177823534},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "9999999999999999999999999999999999", Exponent: 6111},
			Bits:  decimal.Bits128{Hi: 0x77FFCFF3FCFF3FCF, Lo: 0xF3FCFF3FCFF3FCFF},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1", Exponent: 6111},
			Bits:  decimal.Bits128{Hi: 0x43FFC00000000000, Lo: 0x0000000000000001},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Value{Digits: "1", Exponent: -6176},
			Bits:  decimal.Bits128{Lo: 0x0000000000000001},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.Infinity(true),
			Bits:  decimal.Bits128{Hi: 0xF800000000000000},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: decimal.NaN(),
			Bits:  decimal.Bits128{Hi: 0x7C00000000000000},
			Mark:  oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, tc.Bits), func(t *testing.T) {
			bits, err := decimal.ToBits128(tc.Value)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Bits, bits, "%s %v", bits, tc.Mark)

			v := decimal.FromBits128(tc.Bits)
			require.Equal(t, tc.Value, v, tc.Mark)
		})
	}
}

func TestDecodeSpecial(t *testing.T) {
	t.Run("signaling", func(t *testing.T) {
		v := decimal.FromBits64(0xFE00000000000000)
		require.True(t, v.NaN)
		require.True(t, v.Signaling)
		require.True(t, v.Negative)
		require.Equal(t, "NaN", decimal.String(v, decimal.Decimal64))

		// Encoding never produces a signalling NaN.
		bits, err := decimal.ToBits64(v)
		require.NoError(t, err)
		require.Equal(t, uint64(0xFC00000000000000), bits)
	})

	t.Run("infinity ignores payload", func(t *testing.T) {
		v := decimal.FromBits128(decimal.Bits128{Hi: 0xF800_0000_0000_1234, Lo: 0xFFFF})
		require.Equal(t, decimal.Infinity(true), v)
	})

	t.Run("zero declets", func(t *testing.T) {
		v := decimal.FromBits128(decimal.Bits128{Hi: 0x2200000000000000})
		require.Equal(t, "0", v.Digits)
		require.Equal(t, -32, v.Exponent)
	})
}

func TestEncodeErrors(t *testing.T) {
	type TC struct {
		Value  decimal.Value
		Format decimal.Format
		Range  bool
		Mark   error
	}

	tcs := []TC{
		{
			Value:  decimal.Value{Digits: "1", Exponent: 370},
			Format: decimal.Decimal64,
			Range:  true,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "1", Exponent: -399},
			Format: decimal.Decimal64,
			Range:  true,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "1", Exponent: 6112},
			Format: decimal.Decimal128,
			Range:  true,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "1", Exponent: -6177},
			Format: decimal.Decimal128,
			Range:  true,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "12345678901234567"},
			Format: decimal.Decimal64,
			Range:  true,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: ""},
			Format: decimal.Decimal64,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "12a"},
			Format: decimal.Decimal128,
			Mark:   oops.New("unexpected"),
		},
		{
			Value:  decimal.Value{Digits: "1"},
			Format: decimal.Format{Bits: 32, Digits: 7, MinExp: 101, MaxExp: 90},
			Mark:   oops.New("unexpected"),
		},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("%02d/%s", i, valueName(tc.Value)), func(t *testing.T) {
			_, err := decimal.Encode(tc.Value, tc.Format)
			require.Error(t, err, tc.Mark)
			require.Equal(t, tc.Range, decimal.RangeError.Has(err), "%v %v", err, tc.Mark)

			if !tc.Range {
				require.True(t, decimal.Error.Has(err), "%v %v", err, tc.Mark)
			}
		})
	}
}

func TestEncodeLeadingZeros(t *testing.T) {
	bits, err := decimal.ToBits64(decimal.Value{Digits: "0000000000000000000123"})
	require.NoError(t, err)

	v := decimal.FromBits64(bits)
	require.Equal(t, decimal.Value{Digits: "123"}, v)
}

func TestRoundtripBits(t *testing.T) {
	for _, f := range []decimal.Format{decimal.Decimal64, decimal.Decimal128} {
		f := f

		t.Run(strconv.Itoa(f.Bits), func(t *testing.T) {
			cfg := &quick.Config{
				MaxCount: 2000,
				Values: func(args []reflect.Value, r *rand.Rand) {
					args[0] = reflect.ValueOf(randomValue(r, f))
				},
			}

			err := quick.Check(func(v decimal.Value) bool {
				b, err := decimal.Encode(v, f)
				if err != nil {
					t.Logf("encode: %v\n%s", err, spew.Sdump(v))

					return false
				}

				got, err := decimal.Decode(b, f)
				if err != nil {
					return false
				}

				if got != v {
					t.Logf("bits %s\nwant %s\ngot %s", b, spew.Sdump(v), spew.Sdump(got))

					return false
				}

				return true
			}, cfg)
			require.NoError(t, err)
		})
	}
}

func randomValue(r *rand.Rand, f decimal.Format) decimal.Value {
	switch r.Intn(20) {
	case 0:
		return decimal.NaN()
	case 1:
		return decimal.Infinity(r.Intn(2) == 0)
	}

	n := 1 + r.Intn(f.Digits)
	digits := make([]byte, n)
	digits[0] = byte('1' + r.Intn(9))
	for i := 1; i < n; i++ {
		digits[i] = byte('0' + r.Intn(10))
	}

	// Favor eights and nines so that every declet layout is exercised.
	if r.Intn(4) == 0 {
		for i := range digits {
			switch r.Intn(3) {
			case 0:
				digits[i] = '8'
			case 1:
				digits[i] = '9'
			}
		}
	}

	if r.Intn(10) == 0 {
		digits = []byte{'0'}
	}

	return decimal.Value{
		Negative: r.Intn(2) == 0,
		Digits:   string(digits),
		Exponent: r.Intn(f.MinExp+f.MaxExp+1) - f.MinExp,
	}
}

func valueName(v decimal.Value) string {
	return fmt.Sprintf("%s/%d", v.Digits, v.Exponent)
}
