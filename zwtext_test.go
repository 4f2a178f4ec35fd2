package zwtext

import (
	"testing"
	"unicode"
)

func TestGlyphsDistinct(t *testing.T) {
	seen := make(map[Glyph]bool)
	for _, g := range All() {
		if seen[g] {
			t.Errorf("glyph %v listed twice", g)
		}
		seen[g] = true
	}
	if len(seen) != 5 {
		t.Errorf("len(All()) = %d, want 5", len(seen))
	}
}

func TestGlyphsNotWhitespace(t *testing.T) {
	for _, g := range All() {
		if unicode.IsSpace(rune(g)) {
			t.Errorf("%v is whitespace; trimming would eat carrier glyphs", g)
		}
		if unicode.IsPrint(rune(g)) {
			t.Errorf("%v is printable", g)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0] = 'x'
	if All()[0] != Start {
		t.Error("All() exposed internal array")
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		want bool
		role Role
	}{
		{'\uFEFF', true, RoleStart},
		{'\u2060', true, RoleEnd},
		{'\u200B', true, RoleZero},
		{'\u200C', true, RoleOne},
		{'\u200D', true, RoleSeparator},
		{'a', false, RoleNone},
		{'\u200E', false, RoleNone},
		{' ', false, RoleNone},
	}
	for _, tt := range tests {
		g, ok := Lookup(tt.r)
		if ok != tt.want {
			t.Errorf("Lookup(%U) ok = %v, want %v", tt.r, ok, tt.want)
		}
		if IsReserved(tt.r) != tt.want {
			t.Errorf("IsReserved(%U) = %v, want %v", tt.r, !tt.want, tt.want)
		}
		if g.Role() != tt.role {
			t.Errorf("Lookup(%U).Role() = %v, want %v", tt.r, g.Role(), tt.role)
		}
	}
}

func TestBitMapping(t *testing.T) {
	if BitGlyph(0) != Zero || BitGlyph(1) != One {
		t.Fatal("BitGlyph mapping broken")
	}
	for _, g := range All() {
		bit, ok := g.Bit()
		switch g {
		case Zero, One:
			if !ok || BitGlyph(bit) != g {
				t.Errorf("%v.Bit() = %d, %v; not symmetric with BitGlyph", g, bit, ok)
			}
		default:
			if ok {
				t.Errorf("%v.Bit() reported a bit", g)
			}
		}
	}
}

func TestRoleString(t *testing.T) {
	tests := map[Role]string{
		RoleStart:     "start",
		RoleEnd:       "end",
		RoleZero:      "zero",
		RoleOne:       "one",
		RoleSeparator: "separator",
		RoleNone:      "none",
		Role(42):      "role(42)",
	}
	for r, want := range tests {
		if got := r.String(); got != want {
			t.Errorf("Role(%d).String() = %q, want %q", uint8(r), got, want)
		}
	}
}

func TestGlyphNames(t *testing.T) {
	tests := []struct {
		g    Glyph
		code string
		name string
	}{
		{Start, "U+FEFF", "ZERO WIDTH NO-BREAK SPACE"},
		{End, "U+2060", "WORD JOINER"},
		{Zero, "U+200B", "ZERO WIDTH SPACE"},
		{One, "U+200C", "ZERO WIDTH NON-JOINER"},
		{Separator, "U+200D", "ZERO WIDTH JOINER"},
	}
	for _, tt := range tests {
		if got := tt.g.String(); got != tt.code {
			t.Errorf("String() = %q, want %q", got, tt.code)
		}
		if got := tt.g.Name(); got != tt.name {
			t.Errorf("%s Name() = %q, want %q", tt.code, got, tt.name)
		}
	}
}
