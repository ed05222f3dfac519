package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidResolution, "width must be positive, got %d", 0)

	if err.Code != ErrCodeInvalidResolution {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidResolution)
	}

	expected := "INVALID_RESOLUTION: width must be positive, got 0"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("toml: line 3: expected value")
	err := Wrap(ErrCodeInvalidConfig, cause, "decode %s", "mandel.toml")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_CONFIG: decode mandel.toml: toml: line 3: expected value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeIndexOutOfRange, "test"),
			code:     ErrCodeIndexOutOfRange,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeIndexOutOfRange, "test"),
			code:     ErrCodeInvalidViewport,
			expected: false,
		},
		{
			name:     "behind fmt.Errorf",
			err:      fmt.Errorf("point: %w", New(ErrCodeIndexOutOfRange, "inner")),
			code:     ErrCodeIndexOutOfRange,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeNotFound, "x")); got != ErrCodeNotFound {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeNotFound)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q, want empty", got)
	}
}
