package codec

import "go.uber.org/zap"

// Option configures a Codec.
type Option func(*Codec)

// WithoutMarkers omits the START and END markers from encoded carriers.
func WithoutMarkers() Option {
	return func(c *Codec) {
		c.markers = false
	}
}

// WithoutSeparators omits the byte separators from encoded carriers.
func WithoutSeparators() Option {
	return func(c *Codec) {
		c.separators = false
	}
}

// WithNFC normalizes payload text to Unicode NFC before encoding.
// Decoding then yields the normalized form rather than the original input.
func WithNFC() Option {
	return func(c *Codec) {
		c.nfc = true
	}
}

// WithLogger sets the logger used for this codec instead of the package logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Codec) {
		c.logger = l
	}
}
