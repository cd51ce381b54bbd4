// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//  number = (Positive ? +1 : -1) * Value * 10 ^ -Scale
//
// Where Value is the unscaled magnitude and Scale is the number of implied
// fractional digits. For example:
//
//  -7.77 = -1 * 777 * 10^-2
//
// Signed and Positive
//
// Signed describes the declared type of the number (can this slot ever hold
// a negative value) while Positive is the sign of the current value. An
// unsigned number is always positive; New and Validate reject the
// combination Signed=false, Positive=false with ErrUnsignedNegative.
//
//  | Signed | Positive | Meaning                      |
//  |--------|----------|------------------------------|
//  | false  | true     | unsigned slot, value >= 0    |
//  | false  | false    | invalid                      |
//  | true   | true     | signed slot, value >= 0      |
//  | true   | false    | signed slot, value < 0       |
//  |--------|----------|------------------------------|
//
// Length is the number of digits the storage of the number is declared to
// hold, fractional digits included. It is honored by SetInt64 and
// SetFloat64, which scale the assigned value by 10^Scale (SetFloat64 rounds
// to Scale fractional digits) and crop the resulting magnitude to its least
// significant Length digits. Add does not crop.
//
//  | Length | Scale | assigned | magnitude | number |
//  |--------|-------|----------|-----------|--------|
//  | 3      | 0     | 123456   | 456       | 456    |
//  | 3      | 2     | 123      | 300       | 3.00   |
//  | 4      | 1     | 2.76     | 28        | 2.8    |
//  |--------|-------|----------|-----------|--------|
//
// String and Float64 expect Scale to fit in an int; larger scales are
// outside the supported range, like operands that overflow Add.
//
// Addition
//
// Add aligns both operands to the larger scale, sums the signed values in
// int64 and splits the sum back into magnitude and sign:
//
//  7.77 + 0.33
//
//  | operand | Value | Scale | Signed | Length | rescaled |
//  |---------|-------|-------|--------|--------|----------|
//  | lhs     | 777   | 2     | false  | 3      | +777     |
//  | rhs     | 33    | 2     | true   | 3      | +33      |
//  | result  | 810   | 2     | true   | 3      | +810     |
//  |---------|-------|-------|--------|--------|----------|
//
// Signed and Length of the result are taken from the right hand operand, so
// Add is not commutative with respect to those two fields.
//
// The operands must be representable: a rescaled operand or the sum that
// leaves the int64 range wraps like native integer arithmetic. AddChecked
// computes the same result but returns ErrOverflow in that case.
package decimal
