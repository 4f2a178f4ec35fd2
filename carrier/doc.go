// Package carrier finds, removes, escapes and describes zero-width carriers
// inside arbitrary text.
//
// The codec decodes a single carrier and skips whatever surrounds it. This
// package works on text that may hold any number of carriers, such as a
// pasted chat message or a file:
//
//	for _, span := range carrier.Scan(msg) {
//		fmt.Println(span.Start, span.End)
//	}
//	payloads := carrier.Extract(msg)
//	clean := carrier.Strip(msg)
//
// Escape renders reserved glyphs as \uXXXX sequences so a carrier can be
// shown on a terminal or pasted into source code, and Unescape reverses it.
package carrier
