// Package bits expands bytes into most-significant-bit-first bit streams and packs them back.
package bits

import "strings"

// Stream is an ordered sequence of binary digits, one digit (0 or 1) per element.
type Stream []byte

// FromBytes expands each byte into eight digits, most significant bit first.
func FromBytes(data []byte) Stream {
	s := make(Stream, 0, len(data)*8)
	for _, b := range data {
		s = AppendByte(s, b)
	}
	return s
}

// AppendByte appends the eight digits of b to s, most significant bit first.
func AppendByte(s Stream, b byte) Stream {
	for i := 7; i >= 0; i-- {
		s = append(s, (b>>uint(i))&1)
	}
	return s
}

// Bytes packs every complete group of eight digits into a byte.
// A trailing group shorter than eight digits is dropped, never padded.
func (s Stream) Bytes() []byte {
	out := make([]byte, 0, len(s)/8)
	for i := 0; i+8 <= len(s); i += 8 {
		var b byte
		for _, d := range s[i : i+8] {
			b = b<<1 | d&1
		}
		out = append(out, b)
	}
	return out
}

// Dangling returns the number of trailing digits that do not form a whole byte.
func (s Stream) Dangling() int {
	return len(s) % 8
}

// String renders the stream as '0' and '1' characters.
func (s Stream) String() string {
	var b strings.Builder
	b.Grow(len(s))
	for _, d := range s {
		b.WriteByte('0' + d&1)
	}
	return b.String()
}
