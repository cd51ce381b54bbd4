package decimal

import (
	"math"
	"strconv"
	"strings"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/integer"
)

// Number is a fixed point base 10 number.
type Number struct {
	// Value is the unscaled magnitude.
	Value uint64

	// Scale is the number of implied fractional digits.
	Scale uint64

	// Length is the declared maximum number of digits.
	Length uint8

	Signed   bool
	Positive bool
}

// New returns a validated number.
func New(value, scale uint64, length uint8, signed, positive bool) (n Number, err error) {
	defer Error.WrapP(&err)

	n = Number{
		Value:    value,
		Scale:    scale,
		Length:   length,
		Signed:   signed,
		Positive: positive,
	}

	err = n.Validate()
	if err != nil {
		return Number{}, err
	}

	return n, nil
}

// Validate checks that an unsigned number is not negative.
func (n Number) Validate() (err error) {
	if !n.Signed && !n.Positive {
		return Error.Wrap(ErrUnsignedNegative)
	}

	return nil
}

func (n Number) block() integer.Block {
	return integer.Block{
		Value:    n.Value,
		Negative: !n.Positive,
	}
}

func result(sum int64, scale uint64, rhs Number) Number {
	b := integer.FromInt64(sum)

	return Number{
		Value:    b.Value,
		Scale:    scale,
		Length:   rhs.Length,
		Signed:   rhs.Signed,
		Positive: !b.Negative,
	}
}

// Add returns lhs + rhs at the larger of the two scales. Signed and Length
// are copied from rhs. Results outside the int64 range wrap.
func Add(lhs, rhs Number) Number {
	scale := max(lhs.Scale, rhs.Scale)

	l := lhs.block().Int64() * integer.Pow(10, scale-lhs.Scale)
	r := rhs.block().Int64() * integer.Pow(10, scale-rhs.Scale)

	return result(l+r, scale, rhs)
}

// AddChecked is Add with overflow detection.
func AddChecked(lhs, rhs Number) (_ Number, err error) {
	defer Error.WrapP(&err)

	scale := max(lhs.Scale, rhs.Scale)

	l, err := rescale(lhs, scale)
	if err != nil {
		return Number{}, err
	}

	r, err := rescale(rhs, scale)
	if err != nil {
		return Number{}, err
	}

	sum, err := integer.AddChecked(l, r)
	if err != nil {
		return Number{}, err
	}

	return result(sum, scale, rhs), nil
}

func rescale(n Number, scale uint64) (int64, error) {
	v, err := n.block().Int64Checked()
	if err != nil {
		return 0, err
	}

	p, err := integer.PowChecked(10, scale-n.Scale)
	if err != nil {
		return 0, err
	}

	return integer.MulChecked(v, p)
}

// Float64 returns the nearest float64 to the number.
func (n Number) Float64() float64 {
	v := float64(n.Value) / math.Pow10(int(n.Scale))
	if !n.Positive {
		return -v
	}

	return v
}

// String returns the number in fixed point notation (e.g. -7.77). Scale must
// fit in an int.
func (n Number) String() string {
	digits := strconv.FormatUint(n.Value, 10)

	sb := &strings.Builder{}
	if !n.Positive && n.Value != 0 {
		sb.WriteByte('-')
	}

	if n.Scale == 0 {
		sb.WriteString(digits)

		return sb.String()
	}

	scale := int(n.Scale)
	if len(digits) <= scale {
		digits = strings.Repeat("0", scale-len(digits)+1) + digits
	}

	sb.WriteString(digits[:len(digits)-scale])
	sb.WriteByte('.')
	sb.WriteString(digits[len(digits)-scale:])

	return sb.String()
}

// SetInt64 assigns v, keeping the least significant Length digits of the
// scaled value. The number is unchanged on error.
func (n *Number) SetInt64(v int64) (err error) {
	defer Error.WrapP(&err)

	b := integer.FromInt64(v)
	if b.Negative && !n.Signed {
		return ErrUnsignedNegative
	}

	value := b.Value
	if n.Length < 20 {
		if n.Scale >= uint64(n.Length) {
			// Every declared digit is fractional.
			value = 0
		} else {
			value = integer.Crop(value, n.Length-uint8(n.Scale))
		}
	}

	for i := uint64(0); i < n.Scale && value != 0; i++ {
		if value > math.MaxUint64/10 {
			return ErrOverflow
		}
		value *= 10
	}

	n.Value = value
	n.Positive = !b.Negative

	return nil
}

// SetFloat64 assigns v rounded to Scale fractional digits, keeping the least
// significant Length digits. The number is unchanged on error.
func (n *Number) SetFloat64(v float64) (err error) {
	defer Error.WrapP(&err)

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrOutOfDomain
	}

	negative := math.Signbit(v) && v != 0
	if negative && !n.Signed {
		return ErrUnsignedNegative
	}

	s := strconv.FormatFloat(math.Abs(v), 'f', int(n.Scale), 64)
	s = strings.Replace(s, ".", "", 1)

	if int(n.Length) < len(s) && n.Length < 20 {
		s = s[len(s)-int(n.Length):]
	}

	var value uint64
	if len(s) > 0 {
		value, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return ErrOverflow
		}
	}

	n.Value = value
	n.Positive = !negative

	return nil
}
