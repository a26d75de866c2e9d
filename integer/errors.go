package integer

import "github.com/zeebo/errs"

var (
	// Error is the class of invalid arguments.
	Error = errs.Class("integer")

	// ParseError is the class of malformed integer text.
	ParseError = errs.Class("integer parse")

	// RangeError is the class of values outside the signed 128 bit range.
	RangeError = errs.Class("integer range")
)
