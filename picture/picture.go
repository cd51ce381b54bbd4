package picture

import (
	"bytes"
	"strings"

	"github.com/delaneyj/toolbelt/bytebufferpool"
)

// MaxLen is the maximum number of positions in a picture.
const MaxLen = 255

// Picture is a fixed width byte field with a mask symbol per position.
type Picture struct {
	data []byte
	mask []Mask
}

// New returns a picture holding copies of data and mask. Unrecognized mask
// symbols are reported through Warnf.
func New(data []byte, mask []Mask) (p *Picture, err error) {
	defer Error.WrapP(&err)

	if len(data) != len(mask) {
		return nil, ErrLengthMismatch
	}

	if len(mask) > MaxLen {
		return nil, ErrTooLong
	}

	for i, m := range mask {
		if m.Kind() == KindUnknown {
			Warnf("picture: position %d: unrecognized mask %v, treated as %v", i, m, AlphaNumeric)
		}
	}

	return &Picture{
		data: append([]byte{}, data...),
		mask: append([]Mask{}, mask...),
	}, nil
}

// MustNew is like New but panics on error.
func MustNew(data []byte, mask []Mask) *Picture {
	p, err := New(data, mask)
	if err != nil {
		panic(err)
	}

	return p
}

// Parse returns an initialized picture for a PICTURE clause.
func Parse(clause string) (p *Picture, err error) {
	masks, err := ParseMask(clause)
	if err != nil {
		return nil, err
	}

	p, err = New(make([]byte, len(masks)), masks)
	if err != nil {
		return nil, err
	}

	p.Initialize()

	return p, nil
}

// Len returns the number of positions.
func (p *Picture) Len() int {
	return len(p.data)
}

// Bytes returns a copy of the raw bytes.
func (p *Picture) Bytes() []byte {
	return append([]byte{}, p.data...)
}

// Mask returns a copy of the mask symbols.
func (p *Picture) Mask() []Mask {
	return append([]Mask{}, p.mask...)
}

// Clone returns a deep copy of the picture.
func (p *Picture) Clone() *Picture {
	return &Picture{
		data: p.Bytes(),
		mask: p.Mask(),
	}
}

// Initialize sets every position to the default value of its mask.
func (p *Picture) Initialize() {
	p.pad(0)
}

// pad sets positions from start to the end to their mask default.
func (p *Picture) pad(start int) {
	for i := start; i < len(p.data); i++ {
		p.data[i] = DefaultValue(p.mask[i])
	}
}

func (p *Picture) render(buf *bytebufferpool.ByteBuffer) {
	for i, b := range p.data {
		buf.WriteByte(MaskChar(b, p.mask[i]))
	}
}

// Text returns the rendered characters of every position. The result always
// has Len() bytes, including any NUL characters.
func (p *Picture) Text() []byte {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	p.render(buf)

	return append([]byte{}, buf.Bytes()...)
}

// String returns the rendered characters up to the first NUL.
func (p *Picture) String() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	p.render(buf)

	text := buf.Bytes()
	if i := bytes.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}

	return string(text)
}

// AssignBytes copies src right aligned. A longer src keeps its trailing
// bytes; a shorter src is preceded by zero bytes (not mask defaults).
func (p *Picture) AssignBytes(src []byte) {
	if len(src) > len(p.data) {
		copy(p.data, src[len(src)-len(p.data):])

		return
	}

	lead := len(p.data) - len(src)
	clear(p.data[:lead])
	copy(p.data[lead:], src)
}

// AssignString copies the characters of s left aligned, converting each to
// a raw byte for its mask. s ends at its first NUL. A longer s is truncated;
// a shorter s is followed by mask defaults.
func (p *Picture) AssignString(s string) {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}

	n := min(len(s), len(p.data))
	for i := 0; i < n; i++ {
		p.data[i] = UnmaskChar(s[i], p.mask[i])
	}

	p.pad(n)
}

// AssignPicture copies the raw bytes of v left aligned. A longer v is
// truncated; a shorter v is followed by mask defaults. The mask and length
// of p are unchanged.
func (p *Picture) AssignPicture(v *Picture) {
	n := copy(p.data, v.data)

	p.pad(n)
}

// Validate returns a DomainError for the first byte outside the domain of
// its mask.
func (p *Picture) Validate() (err error) {
	defer Error.WrapP(&err)

	for i, b := range p.data {
		if !p.mask[i].Contains(b) {
			return DomainError{
				Pos:  i,
				Byte: b,
				Mask: p.mask[i],
			}
		}
	}

	return nil
}
