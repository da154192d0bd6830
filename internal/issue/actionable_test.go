// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableErrorError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{"operation only", &ActionableError{Operation: "load garage file"}, "failed to load garage file"},
		{"with resource", &ActionableError{Operation: "load garage file", Resource: "garage.cue"}, "failed to load garage file: garage.cue"},
		{"with cause", &ActionableError{Operation: "load garage file", Resource: "garage.cue", Cause: cause}, "failed to load garage file: garage.cue: boom"},
		{"cause without resource", &ActionableError{Operation: "refuel", Cause: cause}, "failed to refuel: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableErrorUnwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := WrapWithContext(fmt.Errorf("inner: %w", sentinel), "change wheels", "x5")
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is should find the wrapped sentinel")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) {
		t.Fatal("errors.As should find *ActionableError")
	}
	if ae.Resource != "x5" {
		t.Errorf("Resource = %q, want x5", ae.Resource)
	}
}

func TestWrapWithContextNil(t *testing.T) {
	t.Parallel()

	if err := WrapWithContext(nil, "op", "res"); err != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", err)
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	inner := errors.New("root cause")
	err := NewErrorContext().
		WithOperation("load configuration").
		WithSuggestion("Check the syntax").
		WithSuggestions("Run 'garage config dump'", "Run 'garage config init'").
		Wrap(fmt.Errorf("decode: %w", inner)).
		Build()

	plain := err.Format(false)
	if strings.Contains(plain, "Error chain:") {
		t.Errorf("non-verbose output should not include the chain: %q", plain)
	}
	for _, s := range []string{"Check the syntax", "garage config dump", "garage config init"} {
		if !strings.Contains(plain, "• "+s) {
			t.Errorf("Format(false) missing suggestion %q: %q", s, plain)
		}
	}

	verbose := err.Format(true)
	if !strings.Contains(verbose, "1. decode: root cause") || !strings.Contains(verbose, "2. root cause") {
		t.Errorf("Format(true) chain incomplete: %q", verbose)
	}
}

func TestBuildRequiresOperation(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().WithResource("x").Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if err := NewErrorContext().BuildError(); err != nil {
		t.Errorf("BuildError() without operation = %v, want nil", err)
	}
	if !NewErrorContext().WithOperation("op").WithSuggestion("s").Build().HasSuggestions() {
		t.Error("HasSuggestions() = false, want true")
	}
}
