package carrier

import (
	"strings"
	"unicode/utf8"

	"github.com/wippyai/zwtext"
	"github.com/wippyai/zwtext/codec"
)

// Span is a run of reserved glyphs inside a larger text.
// Start and End are byte offsets; Text is the run itself.
type Span struct {
	Text  string `json:"-" yaml:"-"`
	Start int    `json:"start" yaml:"start"`
	End   int    `json:"end" yaml:"end"`
}

// Contains reports whether s holds any reserved glyph.
func Contains(s string) bool {
	return strings.IndexFunc(s, zwtext.IsReserved) >= 0
}

// Strip removes every reserved glyph from s.
func Strip(s string) string {
	return strings.Map(func(r rune) rune {
		if zwtext.IsReserved(r) {
			return -1
		}
		return r
	}, s)
}

// Scan returns the maximal runs of reserved glyphs in s that hold at least
// one bit glyph. An END marker closes a run and a START marker following
// bits opens a new one, so back-to-back carriers are reported separately.
func Scan(s string) []Span {
	var (
		spans  []Span
		start  = -1
		hasBit bool
	)

	closeAt := func(end int) {
		if start >= 0 && hasBit {
			spans = append(spans, Span{Start: start, End: end, Text: s[start:end]})
		}
		start = -1
		hasBit = false
	}

	for i, r := range s {
		g, ok := zwtext.Lookup(r)
		if !ok {
			closeAt(i)
			continue
		}

		switch g.Role() {
		case zwtext.RoleStart:
			if hasBit {
				closeAt(i)
			}
		case zwtext.RoleZero, zwtext.RoleOne:
			hasBit = true
		}
		if start < 0 {
			start = i
		}
		if g.Role() == zwtext.RoleEnd {
			closeAt(i + utf8.RuneLen(r))
		}
	}
	closeAt(len(s))
	return spans
}

// Extract decodes every carrier found in s and returns the payloads that
// decoded successfully, in order of appearance.
func Extract(s string) []string {
	var out []string
	for _, span := range Scan(s) {
		text, err := codec.DecodeStrict(span.Text)
		if err != nil || text == "" {
			continue
		}
		out = append(out, text)
	}
	return out
}
