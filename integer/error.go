package integer

import (
	"errors"

	"github.com/zeebo/errs"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/translate"
)

var f = translate.From

// Error is the class of all errors returned from this package.
var Error = errs.Class("integer")

// ErrOverflow is returned when a result leaves the int64 range.
var ErrOverflow = errors.New(f("overflow"))
