package carrier

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/wippyai/zwtext"
	"github.com/wippyai/zwtext/codec"
)

// Report describes the zero-width content of a text.
type Report struct {
	Glyphs       map[string]int `json:"glyphs" yaml:"glyphs"`
	Payload      string         `json:"payload,omitempty" yaml:"payload,omitempty"`
	Error        string         `json:"error,omitempty" yaml:"error,omitempty"`
	Spans        []Span         `json:"spans,omitempty" yaml:"spans,omitempty"`
	Runes        int            `json:"runes" yaml:"runes"`
	Reserved     int            `json:"reserved" yaml:"reserved"`
	Bits         int            `json:"bits" yaml:"bits"`
	Bytes        int            `json:"bytes" yaml:"bytes"`
	DanglingBits int            `json:"dangling_bits" yaml:"dangling_bits"`
	VisibleWidth int            `json:"visible_width" yaml:"visible_width"`
}

// Decoded reports whether the text as a whole decoded to a payload.
func (r *Report) Decoded() bool {
	return r.Error == "" && r.Payload != ""
}

// Inspect counts the reserved glyphs in s, measures its bit stream the way
// the decoder sees it and records the strict decode result.
func Inspect(s string) *Report {
	r := &Report{
		Glyphs: make(map[string]int, 5),
		Runes:  utf8.RuneCountInString(s),
		Spans:  Scan(s),
	}
	for _, g := range zwtext.All() {
		r.Glyphs[g.Role().String()] = 0
	}
	for _, ch := range s {
		if g, ok := zwtext.Lookup(ch); ok {
			r.Glyphs[g.Role().String()]++
			r.Reserved++
		}
	}

	stream := codec.Bits(s)
	r.Bits = len(stream)
	r.Bytes = len(stream) / 8
	r.DanglingBits = stream.Dangling()
	r.VisibleWidth = runewidth.StringWidth(Strip(s))

	text, err := codec.DecodeStrict(s)
	if err != nil {
		r.Error = err.Error()
	} else {
		r.Payload = text
	}
	return r
}
