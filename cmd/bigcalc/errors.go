package main

import "github.com/zeebo/errs"

// Error is the class of errors raised by the command itself.
var Error = errs.Class("bigcalc")
