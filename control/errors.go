package control

import "github.com/zeebo/errs"

// Error is the class of all errors returned by this package.
var Error = errs.Class("control")

// ErrInvalidOperation is returned when a decoder accessor does not apply to
// the current block type.
var ErrInvalidOperation = Error.New("invalid operation")
