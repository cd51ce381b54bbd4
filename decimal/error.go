package decimal

import (
	"errors"

	"github.com/zeebo/errs"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/integer"
	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/translate"
)

var f = translate.From

// Error is the class of all errors returned from this package.
var Error = errs.Class("decimal")

var (
	// ErrUnsignedNegative is returned when an unsigned number would hold a
	// negative value.
	ErrUnsignedNegative = errors.New(f("negative value in unsigned number"))

	// ErrOutOfDomain is returned for values that have no decimal
	// representation (NaN, ±Inf).
	ErrOutOfDomain = errors.New(f("value out of domain"))

	// ErrOverflow is returned when a value leaves the native integer range.
	ErrOverflow = integer.ErrOverflow
)
