package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseConfig,
				Kind:   KindInvalidData,
				Source: "/etc/zwtext/config.toml",
				Detail: "parse TOML",
			},
			contains: []string{"[config]", "invalid_data", "/etc/zwtext/config.toml", "parse TOML"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindNoBitsFound,
			},
			contains: []string{"[decode]", "no_bits_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseDecode,
				Kind:   KindInvalidBase64,
				Detail: "bad padding",
				Cause:  errors.New("illegal base64 data at input byte 4"),
			},
			contains: []string{"[decode]", "invalid_base64", "bad padding", "caused by", "input byte 4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_NoSourceSeparator(t *testing.T) {
	err := &Error{Phase: PhaseDecode, Kind: KindNoBitsFound}
	if strings.Contains(err.Error(), " at ") {
		t.Errorf("error without source should not mention location: %q", err.Error())
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseWatch,
		Kind:  KindIO,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseDecode,
		Kind:   KindInvalidUTF8,
		Detail: "invalid UTF-8 sequence: ff",
	}

	// Same phase and kind
	if !err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidUTF8}) {
		t.Error("Is should match same phase and kind")
	}

	// Different phase
	if err.Is(&Error{Phase: PhaseEncode, Kind: KindInvalidUTF8}) {
		t.Error("Is should not match different phase")
	}

	// Different kind
	if err.Is(&Error{Phase: PhaseDecode, Kind: KindInvalidBase64}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDecode, Kind: KindInvalidUTF8}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var asErr *Error
	if !errors.As(error(err), &asErr) || asErr.Kind != KindInvalidUTF8 {
		t.Error("errors.As should extract *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseDecode, KindInvalidBase64).
		Source("notes.txt").
		Value("SGk").
		Cause(cause).
		Detail("expected %d chars, got %d", 4, 3).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseDecode)
	}
	if err.Kind != KindInvalidBase64 {
		t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidBase64)
	}
	if err.Source != "notes.txt" {
		t.Errorf("Source = %v, want notes.txt", err.Source)
	}
	if err.Value != "SGk" {
		t.Errorf("Value = %v, want SGk", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected 4 chars, got 3" {
		t.Errorf("Detail = %v, want 'expected 4 chars, got 3'", err.Detail)
	}
}

func TestBuilder_DetailWithoutArgs(t *testing.T) {
	err := New(PhaseScan, KindInvalidInput).Detail("carrier is empty").Build()
	if err.Detail != "carrier is empty" {
		t.Errorf("Detail = %q, want literal message", err.Detail)
	}
}

func TestBuilder_DetailPercentArgument(t *testing.T) {
	err := New(PhaseScan, KindInvalidInput).Detail("%s", "100% invisible").Build()
	if err.Detail != "100% invisible" {
		t.Errorf("Detail = %q, want %q", err.Detail, "100% invisible")
	}
}

func TestSentinel(t *testing.T) {
	target := Sentinel(PhaseDecode, KindInvalidBase64)
	if target.Error() != "[decode] invalid_base64" {
		t.Errorf("Error() = %q", target.Error())
	}

	err := InvalidBase64(PhaseDecode, "SGk", errors.New("illegal base64 data"))
	if !errors.Is(err, target) {
		t.Error("errors.Is should match sentinel with same phase and kind")
	}
	wrapped := fmt.Errorf("reveal failed: %w", err)
	if !errors.Is(wrapped, target) {
		t.Error("errors.Is should match sentinel through wrapping")
	}
	if errors.Is(err, Sentinel(PhaseEncode, KindInvalidBase64)) {
		t.Error("sentinel with different phase matched")
	}
	if errors.Is(err, Sentinel(PhaseDecode, KindInvalidUTF8)) {
		t.Error("sentinel with different kind matched")
	}

	var asErr *Error
	if errors.As(target, &asErr) {
		t.Error("sentinel should not expose a mutable *Error")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NoBitsFound", func(t *testing.T) {
		err := NoBitsFound(PhaseDecode, 5)
		if err.Kind != KindNoBitsFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNoBitsFound)
		}
		if err.Value != 5 {
			t.Errorf("Value = %v, want 5", err.Value)
		}
		if !strings.Contains(err.Detail, "5") {
			t.Errorf("Detail = %v, should contain bit count", err.Detail)
		}
	})

	t.Run("InvalidBase64", func(t *testing.T) {
		cause := errors.New("illegal")
		long := strings.Repeat("A", 40)
		err := InvalidBase64(PhaseDecode, long, cause)
		if err.Kind != KindInvalidBase64 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidBase64)
		}
		if !errors.Is(err, cause) {
			t.Error("InvalidBase64 should wrap its cause")
		}
		if strings.Contains(err.Detail, long) {
			t.Errorf("Detail = %v, should truncate long input", err.Detail)
		}
		if err.Value != long {
			t.Error("Value should keep the full input")
		}
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		data := []byte{0xff, 0xfe}
		err := InvalidUTF8(PhaseDecode, data)
		if err.Kind != KindInvalidUTF8 {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidUTF8)
		}
		if !strings.Contains(err.Detail, "fffe") {
			t.Errorf("Detail = %v, should contain hex preview", err.Detail)
		}
	})

	t.Run("InvalidInput", func(t *testing.T) {
		err := InvalidInput(PhaseConfig, "escape mode")
		if err.Kind != KindInvalidInput {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidInput)
		}
	})

	t.Run("InvalidData", func(t *testing.T) {
		err := InvalidData(PhaseConfig, "c.toml", "bad", nil)
		if err.Kind != KindInvalidData || err.Source != "c.toml" {
			t.Errorf("Kind=%v Source=%v", err.Kind, err.Source)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseWatch, "path", "/missing")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, "/missing") {
			t.Errorf("Detail = %v, should contain name", err.Detail)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseClipboard, "no clipboard utility")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("IO", func(t *testing.T) {
		cause := errors.New("permission denied")
		err := IO(PhaseWatch, "/tmp/x", cause)
		if err.Kind != KindIO {
			t.Errorf("Kind = %v, want %v", err.Kind, KindIO)
		}
		if !errors.Is(err, cause) {
			t.Error("IO should wrap its cause")
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseEncode, KindInvalidInput, cause, "context")
		if err.Phase != PhaseEncode || err.Detail != "context" {
			t.Errorf("Phase=%v Detail=%v", err.Phase, err.Detail)
		}
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep cause")
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed(PhaseConfig, "c.yaml", "YAML", errors.New("line 3"))
		if err.Kind != KindInvalidData {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidData)
		}
		if !strings.Contains(err.Error(), "parse YAML") {
			t.Errorf("Error() = %v, should name the format", err.Error())
		}
	})
}
