package main

import (
	"github.com/atotto/clipboard"

	"github.com/wippyai/zwtext/errors"
)

type clipboardAccess interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard uses pbcopy, xclip, xsel, wl-clipboard or the Windows API,
// whichever the platform provides.
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.Unsupported(errors.PhaseClipboard, "no clipboard utility found")
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(errors.PhaseClipboard, errors.KindIO, err, "read clipboard")
	}
	return s, nil
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.Unsupported(errors.PhaseClipboard, "no clipboard utility found")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(errors.PhaseClipboard, errors.KindIO, err, "write clipboard")
	}
	return nil
}
