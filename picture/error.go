package picture

import (
	"errors"
	"log"

	"github.com/zeebo/errs"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/translate"
)

var f = translate.From

// Error is the class of all errors returned from this package.
var Error = errs.Class("picture")

var (
	ErrLengthMismatch = errors.New(f("data and mask length differ"))
	ErrTooLong        = errors.New(f("picture longer than %d positions", MaxLen))
	ErrOutOfDomain    = errors.New(f("byte out of mask domain"))
	ErrMaskSyntax     = errors.New(f("mask syntax"))
)

// Warnf reports non-fatal conditions such as unrecognized mask symbols.
var Warnf = func(format string, args ...any) {
	log.Print(f(format, args...))
}

// DomainError reports a byte that is outside the domain of its mask.
type DomainError struct {
	Pos  int
	Byte byte
	Mask Mask
}

func (err DomainError) Error() string {
	return f("position %d: byte 0x%02x out of domain for mask %v", err.Pos, err.Byte, err.Mask)
}

func (err DomainError) Is(target error) bool {
	return target == ErrOutOfDomain
}

// SyntaxError reports a malformed PICTURE clause.
type SyntaxError struct {
	Clause string
	Offset int
}

func (err SyntaxError) Error() string {
	return f("clause %q offset %d: %v", err.Clause, err.Offset, ErrMaskSyntax)
}

func (err SyntaxError) Unwrap() error {
	return ErrMaskSyntax
}
