package scaffold

import (
	"errors"
	"fmt"
	"os/exec"
)

var (
	// ErrIntrospection is returned when the schema source fails.
	ErrIntrospection = errors.New("schema introspection failed")

	// ErrExternalGenerator is returned when the model generator command fails.
	ErrExternalGenerator = errors.New("external model generator failed")

	// ErrNoModelGenerator is returned when model generation is requested without a generator.
	ErrNoModelGenerator = errors.New("no model generator configured")

	// ErrInvalidAttribute is returned for a malformed name:type attribute.
	ErrInvalidAttribute = errors.New("invalid attribute")
)

// IntrospectionError wraps a schema source failure.
type IntrospectionError struct {
	Table string // Empty when listing tables failed
	Err   error
}

// Error implements the error interface.
func (e *IntrospectionError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("%v: list tables: %v", ErrIntrospection, e.Err)
	}
	return fmt.Sprintf("%v: columns of %s: %v", ErrIntrospection, e.Table, e.Err)
}

// Unwrap returns the underlying error.
func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrIntrospection.
func (e *IntrospectionError) Is(target error) bool {
	return target == ErrIntrospection
}

// ExternalGeneratorError represents a failed model generator invocation.
type ExternalGeneratorError struct {
	Model   string
	Command string
	Err     error
}

// Error implements the error interface.
func (e *ExternalGeneratorError) Error() string {
	return fmt.Sprintf("%v for %s (%s): %v", ErrExternalGenerator, e.Model, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *ExternalGeneratorError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExternalGenerator.
func (e *ExternalGeneratorError) Is(target error) bool {
	return target == ErrExternalGenerator
}

// ExitCode returns the process exit status, or -1 if the command did not exit normally.
func (e *ExternalGeneratorError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
