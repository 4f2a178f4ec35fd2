package codec

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add("Hi")
	f.Add("日本語")
	f.Add("emoji 🎉")
	f.Add(" leading and trailing ")
	f.Add("a\u200Bb\uFEFF")

	f.Fuzz(func(t *testing.T, text string) {
		if !utf8.ValidString(text) || strings.TrimSpace(text) == "" {
			t.Skip()
		}
		carrier := Encode(text)
		if got := Decode(carrier); got != text {
			t.Fatalf("Decode(Encode(%q)) = %q", text, got)
		}
		if got := Decode("x" + carrier + "y"); got != text {
			t.Fatalf("embedded round trip of %q = %q", text, got)
		}
	})
}

func FuzzDecode(f *testing.F) {
	f.Add(Encode("Hi"))
	f.Add("\uFEFF\u200B\u200C\u2060")
	f.Add("plain text")
	f.Add("")

	f.Fuzz(func(t *testing.T, input string) {
		// Decoding must never panic, and a reported failure must yield no text.
		text, err := DecodeStrict(input)
		if err != nil && text != "" {
			t.Fatalf("DecodeStrict returned %q with error %v", text, err)
		}
		if err == nil && !utf8.ValidString(text) {
			t.Fatalf("DecodeStrict returned invalid UTF-8 %q", text)
		}
		_ = Decode(input)
	})
}
