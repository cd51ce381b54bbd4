package integer

import "math"

// Block is a signed integer number.
type Block struct {
	Value    uint64
	Negative bool
}

// FromInt64 splits i into magnitude and sign.
func FromInt64(i int64) Block {
	if i < 0 {
		// Also correct for math.MinInt64: the negation wraps back to
		// itself and the conversion yields 2^63.
		return Block{
			Value:    uint64(-i),
			Negative: true,
		}
	}

	return Block{
		Value: uint64(i),
	}
}

// Int64 returns the signed value. Magnitudes outside the int64 range wrap.
func (b Block) Int64() int64 {
	if b.Negative {
		return -int64(b.Value)
	}

	return int64(b.Value)
}

// Int64Checked returns the signed value or ErrOverflow if the magnitude does
// not fit.
func (b Block) Int64Checked() (_ int64, err error) {
	defer Error.WrapP(&err)

	switch {
	case b.Negative && b.Value > uint64(math.MaxInt64)+1:
		return 0, ErrOverflow
	case !b.Negative && b.Value > math.MaxInt64:
		return 0, ErrOverflow
	}

	return b.Int64(), nil
}

// Pow returns base^exp by repeated squaring. The result wraps on overflow.
func Pow(base int64, exp uint64) int64 {
	result := int64(1)

	for {
		if exp&1 == 1 {
			result *= base
		}

		exp >>= 1
		if exp == 0 {
			return result
		}

		base *= base
	}
}

// PowChecked returns base^exp by repeated squaring or ErrOverflow if any
// intermediate product leaves the int64 range.
func PowChecked(base int64, exp uint64) (result int64, err error) {
	defer Error.WrapP(&err)

	result = 1

	for {
		if exp&1 == 1 {
			result, err = MulChecked(result, base)
			if err != nil {
				return 0, err
			}
		}

		exp >>= 1
		if exp == 0 {
			return result, nil
		}

		base, err = MulChecked(base, base)
		if err != nil {
			return 0, err
		}
	}
}

// MulChecked returns a*b or ErrOverflow.
func MulChecked(a, b int64) (_ int64, err error) {
	defer Error.WrapP(&err)

	if a == 0 || b == 0 {
		return 0, nil
	}

	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}

	return r, nil
}

// AddChecked returns a+b or ErrOverflow.
func AddChecked(a, b int64) (_ int64, err error) {
	defer Error.WrapP(&err)

	r := a + b
	if (b > 0 && r < a) || (b < 0 && r > a) {
		return 0, ErrOverflow
	}

	return r, nil
}

// Crop keeps the least significant digits of value.
func Crop(value uint64, digits uint8) uint64 {
	if digits >= 20 {
		return value
	}

	m := uint64(1)
	for i := uint8(0); i < digits; i++ {
		m *= 10
	}

	return value - (value/m)*m
}
