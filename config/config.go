// Package config handles configuration loading and validation for the zw tool.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"

	"github.com/wippyai/zwtext/codec"
	"github.com/wippyai/zwtext/errors"
)

// Escape modes for printing carriers.
const (
	EscapeAuto   = "auto"   // escape only when writing to a terminal
	EscapeAlways = "always" // always print \uXXXX sequences
	EscapeNever  = "never"  // always print raw glyphs
)

// Config is the full configuration of the zw tool.
type Config struct {
	Output  OutputConfig  `toml:"output" yaml:"output" json:"output"`
	Codec   CodecConfig   `toml:"codec" yaml:"codec" json:"codec"`
	Logging LoggingConfig `toml:"logging" yaml:"logging" json:"logging"`
	Watch   WatchConfig   `toml:"watch" yaml:"watch" json:"watch"`
}

// OutputConfig controls how results are delivered.
type OutputConfig struct {
	Escape string `toml:"escape" yaml:"escape" json:"escape"`
	Copy   bool   `toml:"copy" yaml:"copy" json:"copy"`

	// InteractiveCopy copies every hide and reveal result in interactive
	// mode, where there is no stdout to pipe from.
	InteractiveCopy bool `toml:"interactive_copy" yaml:"interactive_copy" json:"interactive_copy"`
}

// CodecConfig selects codec options.
type CodecConfig struct {
	Compact bool `toml:"compact" yaml:"compact" json:"compact"`
	NFC     bool `toml:"nfc" yaml:"nfc" json:"nfc"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" json:"level"`
}

// WatchConfig lists files watched when no paths are given on the command line.
type WatchConfig struct {
	Paths []string `toml:"paths" yaml:"paths" json:"paths"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Escape:          EscapeAuto,
			InteractiveCopy: true,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "zwtext", "config.toml")
}

// Validate checks option values.
func (c *Config) Validate() error {
	switch c.Output.Escape {
	case EscapeAuto, EscapeAlways, EscapeNever:
	default:
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.Output.Escape).
			Detail("output.escape must be %q, %q or %q, got %q",
				EscapeAuto, EscapeAlways, EscapeNever, c.Output.Escape).
			Build()
	}

	if _, err := c.Level(); err != nil {
		return errors.New(errors.PhaseConfig, errors.KindInvalidInput).
			Value(c.Logging.Level).
			Cause(err).
			Detail("logging.level").
			Build()
	}
	return nil
}

// Level parses the configured log level.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.Logging.Level)
}

// ApplyEnvOverrides applies ZWTEXT_* variables from the process environment.
func (c *Config) ApplyEnvOverrides() {
	c.ApplyEnv(os.LookupEnv)
}

// ApplyEnv applies ZWTEXT_* overrides using lookup to read variables.
// Unparseable booleans are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup("ZWTEXT_ESCAPE"); ok && v != "" {
		c.Output.Escape = strings.ToLower(v)
	}
	if v, ok := lookupBool(lookup, "ZWTEXT_COPY"); ok {
		c.Output.Copy = v
	}
	if v, ok := lookupBool(lookup, "ZWTEXT_INTERACTIVE_COPY"); ok {
		c.Output.InteractiveCopy = v
	}
	if v, ok := lookupBool(lookup, "ZWTEXT_COMPACT"); ok {
		c.Codec.Compact = v
	}
	if v, ok := lookupBool(lookup, "ZWTEXT_NFC"); ok {
		c.Codec.NFC = v
	}
	if v, ok := lookup("ZWTEXT_LOG_LEVEL"); ok && v != "" {
		c.Logging.Level = v
	}
}

func lookupBool(lookup func(string) (string, bool), key string) (bool, bool) {
	v, ok := lookup(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// AutoCopy reports whether results are copied to the clipboard, given
// whether the tool runs interactively.
func (c *Config) AutoCopy(interactive bool) bool {
	if interactive {
		return c.Output.Copy || c.Output.InteractiveCopy
	}
	return c.Output.Copy
}

// CodecOptions translates the codec section into codec options.
func (c *Config) CodecOptions() []codec.Option {
	var opts []codec.Option
	if c.Codec.Compact {
		opts = append(opts, codec.WithoutMarkers(), codec.WithoutSeparators())
	}
	if c.Codec.NFC {
		opts = append(opts, codec.WithNFC())
	}
	return opts
}
