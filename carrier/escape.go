package carrier

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wippyai/zwtext"
)

// Escape replaces every reserved glyph in s with its \uXXXX form.
// All other runes, including backslashes, are left as they are.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if zwtext.IsReserved(r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape replaces \uXXXX sequences that name a reserved glyph with the
// glyph itself. Hex digits may be upper or lower case; sequences naming any
// other code point are kept verbatim.
func Unescape(s string) string {
	if !strings.Contains(s, `\u`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if i+6 <= len(s) && s[i] == '\\' && s[i+1] == 'u' {
			if v, err := strconv.ParseUint(s[i+2:i+6], 16, 32); err == nil && zwtext.IsReserved(rune(v)) {
				b.WriteRune(rune(v))
				i += 6
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// IsEscaped reports whether s holds escaped glyphs but no raw ones,
// which is what a carrier copied from Escape output looks like.
func IsEscaped(s string) bool {
	return !Contains(s) && Unescape(s) != s
}
