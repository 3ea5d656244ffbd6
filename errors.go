package bigint

import "github.com/zeebo/errs"

var (
	// Error is the class of all errors returned by this package.
	Error = errs.Class("bigint")

	// InvalidOperation is returned when an operation's precondition is
	// violated: shifting or bit testing a negative value, or dividing by
	// zero.
	InvalidOperation = errs.Class("invalid operation")

	// ParseError is returned when a string is not a valid integer.
	ParseError = errs.Class("parse")
)
