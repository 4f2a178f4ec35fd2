// zw hides text in zero-width carriers and reveals it again.
//
// Usage:
//
//	zw hide [text]        Hide text, print the carrier
//	zw reveal [carrier]   Reveal the text hidden in a carrier
//	zw extract [text]     Reveal every carrier found in text, one per line
//	zw inspect [text]     Describe the zero-width content of text
//	zw strip [text]       Remove all carrier glyphs from text
//	zw watch [paths...]   Reveal carriers in files as they change
//	zw version            Print version info
//	zw -i                 Interactive mode
//
// If no text is given, input comes from the clipboard (-paste) or stdin.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/wippyai/zwtext/codec"
	"github.com/wippyai/zwtext/config"
	"github.com/wippyai/zwtext/watch"
)

const version = "0.3.0"

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "Path to config file")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		copyOut     = flag.Bool("copy", false, "Copy the result to the clipboard (interactive mode copies unless -copy=false)")
		paste       = flag.Bool("paste", false, "Read input from the clipboard")
		escape      = flag.String("escape", "", "Carrier output: auto, always or never escaped")
		compact     = flag.Bool("compact", false, "Hide without markers and separators")
		nfc         = flag.Bool("nfc", false, "Normalize text to NFC before hiding")
		format      = flag.String("format", "text", "Inspect output format: text, json or yaml")
		verbose     = flag.Bool("v", false, "Debug logging on stderr")
	)
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	cfg.ApplyEnvOverrides()

	// Flags given explicitly win over the file and the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "copy":
			cfg.Output.Copy = *copyOut
			cfg.Output.InteractiveCopy = *copyOut
		case "escape":
			cfg.Output.Escape = *escape
		case "compact":
			cfg.Codec.Compact = *compact
		case "nfc":
			cfg.Codec.NFC = *nfc
		}
	})
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}

	log, err := newLogger(cfg, *verbose)
	if err != nil {
		fatal(err)
	}
	defer log.Sync()
	codec.SetLogger(log)
	watch.SetLogger(log)

	a := &app{
		cfg:       cfg,
		codec:     codec.New(append(cfg.CodecOptions(), codec.WithLogger(log))...),
		log:       log,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: systemClipboard{},
		terminal:  term.IsTerminal(int(os.Stdout.Fd())),
	}

	if *interactive {
		if err := runInteractive(a); err != nil {
			fatal(err)
		}
		return
	}

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	if err := a.run(flag.Arg(0), flag.Args()[1:], *paste, *format); err != nil {
		fatal(err)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `zw - hide text in zero-width characters

Usage: zw [options] <command> [args]

Commands:
  hide [text]        Hide text, print the carrier
  reveal [carrier]   Reveal the text hidden in a carrier
  extract [text]     Reveal every carrier found in text, one per line
  inspect [text]     Describe the zero-width content of text
  strip [text]       Remove all carrier glyphs from text
  watch [paths...]   Reveal carriers in files as they change
  version            Print version info

Options:
  -i                 Interactive mode (ctrl+s hide, ctrl+r reveal, ctrl+y copy)
  -config <path>     Config file (TOML, YAML or JSON)
  -copy              Copy the result to the clipboard; -copy=false
                     also stops interactive mode from copying
  -paste             Read input from the clipboard
  -escape <mode>     auto (escape on terminals), always, never
  -compact           Hide without markers and separators
  -nfc               Normalize text to NFC before hiding
  -format <fmt>      inspect output: text, json, yaml
  -v                 Debug logging on stderr

If no text is given, input comes from the clipboard (-paste) or stdin.

Examples:
  zw hide "meet at noon" > note.txt
  zw -escape always hide hi
  cat note.txt | zw reveal
  zw -format json inspect < message.txt
`)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
