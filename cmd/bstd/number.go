package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/zeebo/errs"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/decimal"
)

var Error = errs.Class("bstd")

// parseNumber reads a number written as [s][-]DIGITS[.DIGITS][:LENGTH]. A
// leading s declares a signed number; the length defaults to the number of
// digits.
func parseNumber(text string) (n decimal.Number, err error) {
	defer Error.WrapP(&err)

	lit, length, hasLength := strings.Cut(text, ":")

	var signed, negative bool

	if rest, ok := strings.CutPrefix(lit, "s"); ok {
		signed = true
		lit = rest
	}

	if rest, ok := strings.CutPrefix(lit, "-"); ok {
		negative = true
		lit = rest
	}

	whole, frac, _ := strings.Cut(lit, ".")
	digits := whole + frac

	value, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return decimal.Number{}, Error.New("number %q: %v", text, err)
	}

	size := uint64(len(digits))
	if hasLength {
		size, err = strconv.ParseUint(length, 10, 8)
		if err != nil {
			return decimal.Number{}, Error.New("length %q: %v", length, err)
		}
	}

	// Leading zeros let a parsable literal run past 255 digits.
	if size > 255 {
		return decimal.Number{}, Error.New("number %q: more than 255 digits", text)
	}

	return decimal.New(value, uint64(len(frac)), uint8(size), signed, !negative)
}

func formatNumber(n decimal.Number) string {
	return fmt.Sprintf("%s (value=%d scale=%d length=%d signed=%t positive=%t)",
		n, n.Value, n.Scale, n.Length, n.Signed, n.Positive)
}

type addCmd struct {
	Checked bool   `help:"Fail instead of wrapping on overflow."`
	LHS     string `arg:"" name:"lhs" help:"Left operand, [s][-]DIGITS[.DIGITS][:LENGTH]."`
	RHS     string `arg:"" name:"rhs" help:"Right operand, [s][-]DIGITS[.DIGITS][:LENGTH]."`
}

func (c *addCmd) Run() error {
	lhs, err := parseNumber(c.LHS)
	if err != nil {
		return err
	}

	rhs, err := parseNumber(c.RHS)
	if err != nil {
		return err
	}

	result := decimal.Add(lhs, rhs)
	if c.Checked {
		result, err = decimal.AddChecked(lhs, rhs)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "lhs    %s\n", formatNumber(lhs))
	fmt.Fprintf(os.Stdout, "rhs    %s\n", formatNumber(rhs))
	fmt.Fprintf(os.Stdout, "result %s\n", formatNumber(result))

	return nil
}
