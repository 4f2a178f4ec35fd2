// Package codec converts text to zero-width carriers and back.
//
// # Encoding
//
// Encode turns text into its UTF-8 bytes, renders them as standard Base64,
// expands every Base64 character into eight bits (most significant first)
// and writes one glyph per bit:
//
//	START  g g g g g g g g  SEP  g g g g g g g g  SEP ... g g g g g g g g  END
//
// A separator follows every eighth bit except the last group. Blank input
// (empty or whitespace only) encodes to "".
//
// # Decoding
//
// Decode reverses the steps and is total: it never panics and reports every
// failure as "". Markers are optional, separators are ignored, and any
// non-bit rune is skipped, so a carrier pasted in the middle of visible text
// still decodes. A trailing group shorter than eight bits is dropped.
//
// DecodeStrict runs the same algorithm but returns a typed error:
//
//	text, err := codec.DecodeStrict(s)
//	switch {
//	case errors.Is(err, codec.ErrNoBitsFound):   // nothing hidden here
//	case errors.Is(err, codec.ErrInvalidBase64): // truncated or damaged carrier
//	case errors.Is(err, codec.ErrInvalidText):   // payload is not UTF-8
//	}
//
// # Options
//
// The package-level functions use the default wire format. New accepts
// options that drop markers or separators (decoders never need either),
// NFC-normalize payloads before encoding, or attach a logger.
package codec
