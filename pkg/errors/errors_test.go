package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeUnsupportedType, "cannot encode %s", "chan int")

	if err.Code != ErrCodeUnsupportedType {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnsupportedType)
	}
	if err.Message != "cannot encode chan int" {
		t.Errorf("Message = %v, want %v", err.Message, "cannot encode chan int")
	}

	expected := "UNSUPPORTED_TYPE: cannot encode chan int"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := Wrap(ErrCodeInvalidConfig, cause, "decode deck.toml")

	if err.Code != ErrCodeInvalidConfig {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidConfig)
	}
	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}

	expected := "INVALID_CONFIG: decode deck.toml: unexpected EOF"
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
		{"matching code", New(ErrCodeEncoding, "test"), ErrCodeEncoding, true},
		{"non-matching code", New(ErrCodeEncoding, "test"), ErrCodeInvalidInput, false},
		{"wrapped error", Wrap(ErrCodeEncoding, New(ErrCodeDepthExceeded, "inner"), "outer"), ErrCodeEncoding, true},
		{"non-Error type", errors.New("plain error"), ErrCodeEncoding, false},
		{"nil error", nil, ErrCodeEncoding, false},
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
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"Error type", New(ErrCodeFileNotFound, "test"), ErrCodeFileNotFound},
		{"plain error", errors.New("plain"), ""},
		{"nil", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Error type", New(ErrCodeInvalidInput, "friendly message"), "friendly message"},
		{"wrapped plain", Wrap(ErrCodeInvalidConfig, errors.New("line 3"), "decode deck.toml"), "decode deck.toml: line 3"},
		{"plain error", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsEncoding(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(ErrCodeEncoding, "x"), true},
		{New(ErrCodeUnsupportedType, "x"), true},
		{New(ErrCodeDepthExceeded, "x"), true},
		{New(ErrCodeInvalidFormat, "x"), false},
		{errors.New("x"), false},
		{nil, false},
	}
	for _, tt := range tests {
		if got := IsEncoding(tt.err); got != tt.want {
			t.Errorf("IsEncoding(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeEncoding,
		ErrCodeUnsupportedType,
		ErrCodeDepthExceeded,
		ErrCodeInvalidInput,
		ErrCodeInvalidFormat,
		ErrCodeInvalidConfig,
		ErrCodeInvalidPath,
		ErrCodeFileNotFound,
		ErrCodeInternal,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
