package orbyte

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for validation, resolution, and rendering.
// All use prefix "orbyte:" for identification. Callers should use errors.Is/errors.As.
var (
	ErrConfig          = errors.New("orbyte: invalid configuration")
	ErrNotFound        = errors.New("orbyte: template not found in search paths")
	ErrMissingVariable = errors.New("orbyte: required template variable not provided")
)

// LookupError reports a failed resolution. Candidates holds every path that
// was probed, in probe order, so callers can diagnose search-path and locale
// setup from the message alone.
type LookupError struct {
	Identifier string
	Candidates []string
}

// Error implements error.
func (e *LookupError) Error() string {
	return fmt.Sprintf("orbyte: template not found for %q, tried: %s",
		e.Identifier, strings.Join(e.Candidates, ", "))
}

// Unwrap returns ErrNotFound for errors.Is.
func (e *LookupError) Unwrap() error { return ErrNotFound }

// VariableError wraps ErrMissingVariable with variable and template context.
// Use errors.Is(err, ErrMissingVariable) and errors.As(err, &variableErr) to inspect.
type VariableError struct {
	Variable string
	Template string
	Err      error
}

// Error implements error.
func (e *VariableError) Error() string {
	return fmt.Sprintf("orbyte: variable %q in template %q: %v", e.Variable, e.Template, e.Err)
}

// Unwrap returns the wrapped error for errors.Is/errors.As.
func (e *VariableError) Unwrap() error { return e.Err }

// Compile-time checks that the wrapper types implement error.
var (
	_ error = (*LookupError)(nil)
	_ error = (*VariableError)(nil)
)
