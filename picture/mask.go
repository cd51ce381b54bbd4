package picture

import (
	"strconv"
	"strings"
)

// Mask is a PICTURE symbol.
type Mask byte

// Recognized mask symbols.
const (
	Digit        Mask = '9'
	Alpha        Mask = 'A'
	AlphaNumeric Mask = 'X'
)

// Kind classifies a mask symbol.
type Kind uint8

// Mask kinds.
const (
	KindUnknown Kind = iota
	KindDigit
	KindAlpha
	KindAlphaNumeric
)

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindDigit:        "digit",
	KindAlpha:        "alpha",
	KindAlphaNumeric: "alphanumeric",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Kind returns the kind of the symbol. Unrecognized symbols are
// KindUnknown and keep their original value in m.
func (m Mask) Kind() Kind {
	switch m {
	case Digit:
		return KindDigit
	case Alpha:
		return KindAlpha
	case AlphaNumeric:
		return KindAlphaNumeric
	}

	return KindUnknown
}

func (m Mask) String() string {
	return strconv.QuoteRune(rune(m))
}

// Contains reports whether b is inside the domain of the mask.
func (m Mask) Contains(b byte) bool {
	switch m.Kind() {
	case KindDigit:
		return b <= 9
	case KindAlpha:
		return b == 0 || b == ' ' || ('A' <= b && b <= 'Z') || ('a' <= b && b <= 'z')
	}

	return b <= 127
}

// DefaultValue returns the byte an unset position holds.
func DefaultValue(m Mask) byte {
	switch m.Kind() {
	case KindAlpha, KindAlphaNumeric:
		return ' '
	}

	return 0
}

// MaskChar renders the raw byte b as a character.
func MaskChar(b byte, m Mask) byte {
	if m.Kind() == KindDigit {
		return '0' + b%10
	}

	return b
}

// UnmaskChar converts the character c back to a raw byte. Characters
// outside '0'-'9' under a digit mask wrap like byte subtraction.
func UnmaskChar(c byte, m Mask) byte {
	if m.Kind() == KindDigit {
		return c - '0'
	}

	return c
}

// ParseMask expands a PICTURE clause such as "X(3)9(2)A" into mask symbols.
// Symbols are case insensitive.
func ParseMask(clause string) (masks []Mask, err error) {
	defer Error.WrapP(&err)

	masks = []Mask{}

	for i := 0; i < len(clause); i++ {
		c := clause[i]

		switch {
		case c == '(' || c == ')':
			return nil, SyntaxError{Clause: clause, Offset: i}
		case c == ' ':
			continue
		}

		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		m := Mask(c)

		if i+1 < len(clause) && clause[i+1] == '(' {
			end := strings.IndexByte(clause[i+2:], ')')
			if end < 0 {
				return nil, SyntaxError{Clause: clause, Offset: i + 1}
			}

			count, err := strconv.ParseUint(clause[i+2:i+2+end], 10, 8)
			if err != nil || count == 0 {
				return nil, SyntaxError{Clause: clause, Offset: i + 2}
			}

			for j := uint64(0); j < count; j++ {
				masks = append(masks, m)
			}

			i += 2 + end
		} else {
			masks = append(masks, m)
		}

		if len(masks) > MaxLen {
			return nil, ErrTooLong
		}
	}

	return masks, nil
}
