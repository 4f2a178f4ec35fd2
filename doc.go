// Package zwtext hides text inside carriers made only of zero-width Unicode characters.
//
// A carrier looks empty when rendered. It is built from five reserved code
// points, defined in this package as the Glyph set, and is produced and
// consumed by the codec package.
//
// # Architecture Overview
//
//	zwtext/              Root package with the reserved Glyph set
//	├── codec/           Encode and decode between text and carriers
//	├── carrier/         Scanning, stripping, escaping and inspecting text that holds carriers
//	├── config/          CLI configuration loading (TOML, YAML, JSON)
//	├── watch/           Reveal carriers in files as they change
//	├── errors/          Structured error types
//	└── cmd/zw/          Command-line tool with an interactive terminal UI
//
// # Quick Start
//
//	hidden := codec.Encode("meet at noon")
//	fmt.Println(len([]rune(hidden))) // 145 invisible runes
//
//	text := codec.Decode("see you " + hidden + " tomorrow")
//	fmt.Println(text) // "meet at noon"
//
// Decode never fails loudly: a carrier that cannot be decoded yields "".
// Use codec.DecodeStrict to learn why.
//
// # Wire Format
//
//	START           U+FEFF  optional carrier prefix
//	END             U+2060  optional carrier suffix
//	BIT-ZERO        U+200B  binary digit 0
//	BIT-ONE         U+200C  binary digit 1
//	BYTE-SEPARATOR  U+200D  boundary every 8 bits, never after the last group
//
// The payload travels as the standard Base64 text of its UTF-8 bytes, one
// 8-bit group per Base64 character, most significant bit first.
//
// # Thread Safety
//
// All codec and carrier functions are pure and safe for concurrent use.
package zwtext
