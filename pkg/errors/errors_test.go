package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNoReadings, "no readings parsed")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNoReadings {
		t.Errorf("expected code %s, got %s", ErrCodeNoReadings, err.Code)
	}
	if err.Message != "no readings parsed" {
		t.Errorf("expected message 'no readings parsed', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInternal, "operation failed", cause)

	if err.Code != ErrCodeInternal {
		t.Errorf("expected code %s, got %s", ErrCodeInternal, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("timeout")
	ctx := map[string]interface{}{
		"command": "digitemp_DS9097",
		"timeout": "10s",
	}

	err := WrapWithContext(ErrCodeTimeout, "sensor read failed", cause, ctx)

	if err.Code != ErrCodeTimeout {
		t.Errorf("expected code %s, got %s", ErrCodeTimeout, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["command"] != "digitemp_DS9097" {
		t.Errorf("expected command to be digitemp_DS9097")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeInvalidThreshold, "bad threshold"),
			expected: "[INVALID_THRESHOLD] bad threshold",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
		{
			name:     "formatted message",
			err:      Newf(ErrCodeMalformedReading, "unexpected token %q", "abc"),
			expected: `[MALFORMED_READING] unexpected token "abc"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorCode
	}{
		{
			name:     "structured error",
			err:      New(ErrCodeSensorUnavailable, "no digitemp binary"),
			expected: ErrCodeSensorUnavailable,
		},
		{
			name:     "wrapped structured error",
			err:      Wrap(ErrCodeSensorFailure, "read failed", New(ErrCodeTimeout, "deadline")),
			expected: ErrCodeSensorFailure,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeInvalidThreshold,
		ErrCodeMalformedReading,
		ErrCodeNoReadings,
		ErrCodeSensorUnavailable,
		ErrCodeSensorFailure,
		ErrCodeTimeout,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
