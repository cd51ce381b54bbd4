// Package integer provides the exact integer arithmetic used by fixed point
// decimals.
//
// Integers are kept as a magnitude and a sign:
//
//  value = (Negative ? -1 : +1) * Value
//
// The magnitude of a block may exceed the int64 range by exactly one (the
// magnitude of math.MinInt64), so every int64 is representable.
//
// Powers are computed by repeated squaring. Pow wraps on overflow the same
// way native int64 multiplication does; PowChecked reports ErrOverflow
// instead.
//
// Cropping
//
// Crop keeps the least significant digits of a magnitude:
//
//  Crop(123456, 3) = 123456 - floor(123456 / 10^3) * 10^3 = 456
//
// A magnitude has at most 20 decimal digits, so cropping to 20 or more digits
// returns the value unchanged.
package integer
