package decimal

import "github.com/zeebo/errs"

var (
	// Error is the class of invalid arguments (unsupported formats,
	// malformed values).
	Error = errs.Class("decimal")

	// ParseError is the class of malformed decimal text.
	ParseError = errs.Class("decimal parse")

	// RangeError is the class of values that do not fit a format.
	RangeError = errs.Class("decimal range")
)
