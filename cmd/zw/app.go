package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/wippyai/zwtext"
	"github.com/wippyai/zwtext/carrier"
	"github.com/wippyai/zwtext/codec"
	"github.com/wippyai/zwtext/config"
	"github.com/wippyai/zwtext/errors"
	"github.com/wippyai/zwtext/watch"
)

// app carries everything a command needs, so commands can run against
// in-memory streams.
type app struct {
	cfg       *config.Config
	codec     *codec.Codec
	log       *zap.Logger
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	clipboard clipboardAccess
	terminal  bool
}

func (a *app) run(cmd string, args []string, paste bool, format string) error {
	switch cmd {
	case "hide":
		return a.hide(args, paste)
	case "reveal":
		return a.reveal(args, paste)
	case "extract":
		return a.extract(args, paste)
	case "inspect":
		return a.inspect(args, paste, format)
	case "strip":
		return a.strip(args, paste)
	case "watch":
		return a.watch(args)
	case "version":
		fmt.Fprintf(a.stdout, "zw %s\n", version)
		return nil
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}
}

// input returns the command's text: the joined arguments, the clipboard
// or stdin, in that order of preference.
func (a *app) input(args []string, paste bool) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	if paste {
		return a.clipboard.ReadAll()
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", errors.IO(errors.PhaseEncode, "stdin", err)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// carrierInput is input with \uXXXX sequences turned back into glyphs.
func (a *app) carrierInput(args []string, paste bool) (string, error) {
	s, err := a.input(args, paste)
	if err != nil {
		return "", err
	}
	if carrier.IsEscaped(s) {
		a.log.Debug("unescaping input")
		s = carrier.Unescape(s)
	}
	return s, nil
}

func (a *app) escapeOutput() bool {
	switch a.cfg.Output.Escape {
	case config.EscapeAlways:
		return true
	case config.EscapeNever:
		return false
	}
	return a.terminal
}

func (a *app) deliver(result string) error {
	if a.cfg.AutoCopy(false) {
		if err := a.clipboard.WriteAll(result); err != nil {
			return err
		}
		a.log.Info("copied to clipboard", zap.Int("runes", len([]rune(result))))
	}
	return nil
}

func (a *app) hide(args []string, paste bool) error {
	text, err := a.input(args, paste)
	if err != nil {
		return err
	}
	hidden := a.codec.Encode(text)
	if hidden == "" {
		return errors.InvalidInput(errors.PhaseEncode, "nothing to hide: input is blank")
	}

	out := hidden
	if a.escapeOutput() {
		out = carrier.Escape(hidden)
	}
	fmt.Fprintln(a.stdout, out)
	return a.deliver(hidden)
}

func (a *app) reveal(args []string, paste bool) error {
	s, err := a.carrierInput(args, paste)
	if err != nil {
		return err
	}
	text, err := a.codec.DecodeStrict(s)
	if err != nil {
		return fmt.Errorf("reveal failed: %w", err)
	}
	fmt.Fprintln(a.stdout, text)
	return a.deliver(text)
}

func (a *app) extract(args []string, paste bool) error {
	s, err := a.carrierInput(args, paste)
	if err != nil {
		return err
	}
	payloads := carrier.Extract(s)
	if len(payloads) == 0 {
		return errors.NotFound(errors.PhaseScan, "carrier", "input")
	}
	for _, p := range payloads {
		fmt.Fprintln(a.stdout, p)
	}
	return a.deliver(strings.Join(payloads, "\n"))
}

func (a *app) strip(args []string, paste bool) error {
	s, err := a.input(args, paste)
	if err != nil {
		return err
	}
	clean := carrier.Strip(s)
	fmt.Fprintln(a.stdout, clean)
	return a.deliver(clean)
}

func (a *app) inspect(args []string, paste bool, format string) error {
	s, err := a.carrierInput(args, paste)
	if err != nil {
		return err
	}
	r := carrier.Inspect(s)

	switch format {
	case "json":
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(a.stdout)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		printReport(a.stdout, r)
		return nil
	default:
		return errors.Unsupported(errors.PhaseScan, "format "+format)
	}
}

func printReport(w io.Writer, r *carrier.Report) {
	fmt.Fprintf(w, "runes:         %d\n", r.Runes)
	fmt.Fprintf(w, "visible width: %d\n", r.VisibleWidth)
	fmt.Fprintf(w, "reserved:      %d\n", r.Reserved)
	for _, g := range zwtext.All() {
		role := g.Role().String()
		fmt.Fprintf(w, "  %-10s %s %-26s %d\n", role, g, g.Name(), r.Glyphs[role])
	}
	fmt.Fprintf(w, "bits:          %d (%d bytes, %d dangling)\n", r.Bits, r.Bytes, r.DanglingBits)
	fmt.Fprintf(w, "carriers:      %d\n", len(r.Spans))
	if r.Decoded() {
		fmt.Fprintf(w, "payload:       %q\n", r.Payload)
	} else {
		fmt.Fprintf(w, "error:         %s\n", r.Error)
	}
}

func (a *app) watch(args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = a.cfg.Watch.Paths
	}
	w, err := watch.New(paths)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.follow(ctx, w)
}

// follow prints events until the watcher stops.
func (a *app) follow(ctx context.Context, w *watch.Watcher) error {
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx)
	}()

	events, errs := w.Events(), w.Errors()
	for events != nil || errs != nil {
		select {
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			for _, p := range ev.Payloads {
				fmt.Fprintf(a.stdout, "%s: %s\n", ev.Path, p)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			fmt.Fprintf(a.stderr, "watch: %v\n", err)
		}
	}

	if err := <-done; err != nil && err != context.Canceled {
		return err
	}
	return nil
}
