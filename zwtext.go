package zwtext

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// Glyph is one of the five reserved zero-width code points a carrier is made of.
type Glyph rune

const (
	Start     Glyph = '\uFEFF' // zero width no-break space
	End       Glyph = '\u2060' // word joiner
	Zero      Glyph = '\u200B' // zero width space
	One       Glyph = '\u200C' // zero width non-joiner
	Separator Glyph = '\u200D' // zero width joiner
)

// Role is the meaning a glyph carries inside a carrier.
type Role uint8

const (
	RoleNone Role = iota
	RoleStart
	RoleEnd
	RoleZero
	RoleOne
	RoleSeparator
)

var roleNames = [...]string{
	RoleNone:      "none",
	RoleStart:     "start",
	RoleEnd:       "end",
	RoleZero:      "zero",
	RoleOne:       "one",
	RoleSeparator: "separator",
}

func (r Role) String() string {
	if int(r) < len(roleNames) {
		return roleNames[r]
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

var all = [...]Glyph{Start, End, Zero, One, Separator}

// All returns the reserved glyphs in wire-format table order.
func All() []Glyph {
	out := make([]Glyph, len(all))
	copy(out, all[:])
	return out
}

// Lookup reports whether r is a reserved glyph.
func Lookup(r rune) (Glyph, bool) {
	switch g := Glyph(r); g {
	case Start, End, Zero, One, Separator:
		return g, true
	}
	return 0, false
}

// IsReserved reports whether r is one of the five carrier code points.
func IsReserved(r rune) bool {
	_, ok := Lookup(r)
	return ok
}

// Role returns the glyph's role, or RoleNone for a non-reserved rune.
func (g Glyph) Role() Role {
	switch g {
	case Start:
		return RoleStart
	case End:
		return RoleEnd
	case Zero:
		return RoleZero
	case One:
		return RoleOne
	case Separator:
		return RoleSeparator
	}
	return RoleNone
}

// Bit returns the binary digit carried by a bit glyph.
func (g Glyph) Bit() (byte, bool) {
	switch g {
	case Zero:
		return 0, true
	case One:
		return 1, true
	}
	return 0, false
}

// BitGlyph maps a binary digit to its glyph. Any non-zero value is a one.
func BitGlyph(bit byte) Glyph {
	if bit == 0 {
		return Zero
	}
	return One
}

// String returns the code point in U+XXXX form.
func (g Glyph) String() string {
	return fmt.Sprintf("U+%04X", rune(g))
}

// Name returns the Unicode character name, e.g. "ZERO WIDTH SPACE".
func (g Glyph) Name() string {
	return runenames.Name(rune(g))
}
