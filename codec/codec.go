package codec

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/wippyai/zwtext"
	"github.com/wippyai/zwtext/codec/internal/bits"
	"github.com/wippyai/zwtext/errors"
)

// Decode failure classes, matched with errors.Is against DecodeStrict results.
// They are comparison targets only; the errors actually returned are
// *errors.Error values carrying the offending input.
var (
	ErrNoBitsFound   = errors.Sentinel(errors.PhaseDecode, errors.KindNoBitsFound)
	ErrInvalidBase64 = errors.Sentinel(errors.PhaseDecode, errors.KindInvalidBase64)
	ErrInvalidText   = errors.Sentinel(errors.PhaseDecode, errors.KindInvalidUTF8)
)

var (
	startMarker = string(rune(zwtext.Start))
	endMarker   = string(rune(zwtext.End))
	separator   = string(rune(zwtext.Separator))
)

// glyphBytes is the UTF-8 length of every reserved glyph.
const glyphBytes = 3

// Codec encodes and decodes carriers. It holds only immutable settings
// and is safe for concurrent use.
type Codec struct {
	logger     *zap.Logger
	markers    bool
	separators bool
	nfc        bool
}

// New creates a codec. Without options it produces the default wire format.
func New(opts ...Option) *Codec {
	c := &Codec{
		markers:    true,
		separators: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = New()

// Encode hides text in a carrier using the default wire format.
func Encode(text string) string {
	return defaultCodec.Encode(text)
}

// Decode recovers text from a carrier, or returns "" if nothing can be recovered.
func Decode(carrier string) string {
	return defaultCodec.Decode(carrier)
}

// DecodeStrict recovers text from a carrier and reports why decoding failed.
func DecodeStrict(carrier string) (string, error) {
	return defaultCodec.DecodeStrict(carrier)
}

func (c *Codec) log() *zap.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// Encode hides text in a carrier. Empty or whitespace-only text yields "".
func (c *Codec) Encode(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	if c.nfc {
		text = norm.NFC.String(text)
	}
	return c.encode([]byte(text))
}

// EncodeBytes hides an arbitrary byte payload. An empty payload yields "".
func (c *Codec) EncodeBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return c.encode(data)
}

func (c *Codec) encode(data []byte) string {
	text := strings.TrimSpace(base64.StdEncoding.EncodeToString(data))
	stream := bits.FromBytes([]byte(text))

	var b strings.Builder
	b.Grow(c.EncodedLen(len(data)) * glyphBytes)

	if c.markers {
		b.WriteString(startMarker)
	}
	for i, bit := range stream {
		if c.separators && i > 0 && i%8 == 0 {
			b.WriteString(separator)
		}
		b.WriteRune(rune(zwtext.BitGlyph(bit)))
	}
	if c.markers {
		b.WriteString(endMarker)
	}

	c.log().Debug("encoded carrier",
		zap.Int("payload_bytes", len(data)),
		zap.Int("bits", len(stream)))
	return b.String()
}

// EncodedLen returns the number of runes in the carrier of an n-byte payload.
func (c *Codec) EncodedLen(n int) int {
	if n <= 0 {
		return 0
	}
	chars := base64.StdEncoding.EncodedLen(n)
	runes := chars * 8
	if c.separators {
		runes += chars - 1
	}
	if c.markers {
		runes += 2
	}
	return runes
}

// Decode recovers text from a carrier. Every failure is reported as "".
func (c *Codec) Decode(carrier string) string {
	text, err := c.DecodeStrict(carrier)
	if err != nil {
		c.log().Debug("reveal failed", zap.Error(err))
		return ""
	}
	return text
}

// DecodeStrict recovers text from a carrier. Failures are *errors.Error values
// matching ErrNoBitsFound, ErrInvalidBase64 or ErrInvalidText.
func (c *Codec) DecodeStrict(carrier string) (string, error) {
	data, err := c.DecodeBytes(carrier)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", errors.InvalidUTF8(errors.PhaseDecode, data)
	}
	return string(data), nil
}

// DecodeBytes recovers the raw payload bytes of a carrier without
// requiring them to be valid text.
func (c *Codec) DecodeBytes(carrier string) ([]byte, error) {
	stream := Bits(carrier)
	if len(stream) < 8 {
		return nil, errors.NoBitsFound(errors.PhaseDecode, len(stream))
	}
	if d := stream.Dangling(); d > 0 {
		c.log().Debug("dropping incomplete trailing byte", zap.Int("bits", d))
	}

	text := string(stream.Bytes())
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, errors.InvalidBase64(errors.PhaseDecode, text, err)
	}
	return data, nil
}

// Stream is the bit stream a carrier holds, one binary digit per element.
// Stream.Bytes packs complete groups of eight, most significant bit first,
// and Stream.Dangling counts the trailing digits that do not form a byte.
type Stream = bits.Stream

// Bits extracts the bit stream held by a carrier. Surrounding whitespace,
// one leading START, one trailing END and all separators are removed first;
// every rune that is not a bit glyph is skipped.
func Bits(carrier string) Stream {
	s := strings.TrimSpace(carrier)
	if s == "" {
		return nil
	}
	s = strings.TrimPrefix(s, startMarker)
	s = strings.TrimSuffix(s, endMarker)
	s = strings.ReplaceAll(s, separator, "")

	stream := make(Stream, 0, len(s)/glyphBytes)
	for _, r := range s {
		if bit, ok := zwtext.Glyph(r).Bit(); ok {
			stream = append(stream, bit)
		}
	}
	return stream
}
