package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    Code
		message string
	}{
		{"not_found", CodeNotFound, "job file not found"},
		{"malformed", CodeMalformed, "posting missing id"},
		{"invalid_pattern", CodeInvalidPattern, "bad location regexp"},
		{"duplicate_key", CodeDuplicateKey, "posting DS-101 already loaded"},
		{"io", CodeIO, "write failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message)
			if err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", err.Code(), tt.code)
			}
			if err.Error() != tt.message {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.message)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CodeNotFound, "job with id %q not found", "DS-101")
	want := `job with id "DS-101" not found`
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		code Code
	}{
		{"NotFound", NotFound("missing"), CodeNotFound},
		{"Malformed", Malformed("bad record"), CodeMalformed},
		{"InvalidPattern", InvalidPattern("bad regexp"), CodeInvalidPattern},
		{"DuplicateKey", DuplicateKey("dup"), CodeDuplicateKey},
		{"InvalidInput", InvalidInput("bad arg"), CodeInvalidInput},
		{"IO", IO("write failed"), CodeIO},
		{"Internal", Internal("bug"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %v, want %v", tt.err.Code(), tt.code)
			}
		})
	}
}

func TestWrapPreservesCode(t *testing.T) {
	inner := NotFound("job %q not found", "PM-301")
	wrapped := Wrap(inner, "resolving posting")

	if wrapped.Code() != CodeNotFound {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeNotFound)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should match inner via errors.Is")
	}
	want := `resolving posting: job "PM-301" not found`
	if wrapped.Error() != want {
		t.Errorf("Error() = %v, want %v", wrapped.Error(), want)
	}
}

func TestWrapNil(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if WrapWithCode(nil, CodeMalformed, "context") != nil {
		t.Error("WrapWithCode(nil) should return nil")
	}
}

func TestWrapPlainError(t *testing.T) {
	cause := fmt.Errorf("disk full")
	wrapped := Wrap(cause, "saving resume")

	if wrapped.Code() != CodeInternal {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeInternal)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("cause should survive in the chain")
	}
}

func TestWrapWithCode(t *testing.T) {
	cause := fmt.Errorf("unexpected end of JSON input")
	wrapped := WrapWithCode(cause, CodeMalformed, "decoding postings")

	if wrapped.Code() != CodeMalformed {
		t.Errorf("Code() = %v, want %v", wrapped.Code(), CodeMalformed)
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}
}

func TestIs(t *testing.T) {
	err := Malformed("posting missing title")

	if !Is(err, CodeMalformed) {
		t.Error("Is should match the error's own code")
	}
	if Is(err, CodeNotFound) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), CodeMalformed) {
		t.Error("Is should not match a plain error")
	}
	if Is(nil, CodeMalformed) {
		t.Error("Is should not match nil")
	}

	// Code checks work through wrapping layers.
	outer := fmt.Errorf("loading catalog: %w", err)
	if !Is(outer, CodeMalformed) {
		t.Error("Is should see through fmt.Errorf wrapping")
	}
}

func TestAsError(t *testing.T) {
	err := InvalidPattern("missing closing bracket")
	outer := fmt.Errorf("search: %w", err)

	got := AsError(outer)
	if got == nil {
		t.Fatal("AsError should find the structured error")
	}
	if got.Code() != CodeInvalidPattern {
		t.Errorf("Code() = %v, want %v", got.Code(), CodeInvalidPattern)
	}

	if AsError(fmt.Errorf("plain")) != nil {
		t.Error("AsError should return nil for plain errors")
	}
}

func TestMetadata(t *testing.T) {
	err := New(CodeDuplicateKey, "duplicate posting",
		WithMetadata("id", "DS-101"),
	)

	if err.Metadata()["id"] != "DS-101" {
		t.Error("expected metadata 'id' to be 'DS-101'")
	}

	// Returned map is a copy.
	m := err.Metadata()
	m["id"] = "changed"
	if err.Metadata()["id"] != "DS-101" {
		t.Error("mutating the returned map should not affect the error")
	}
}

func TestCodeDescription(t *testing.T) {
	if CodeNotFound.Description() != "resource not found" {
		t.Errorf("unexpected description: %s", CodeNotFound.Description())
	}
	if Code("BOGUS").Description() != "unknown error" {
		t.Errorf("unexpected description for unknown code")
	}
}
