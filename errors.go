package vector

import (
	"errors"
	"fmt"
)

// Common errors returned by vector operations
var (
	// ErrAllocation indicates a capacity request could not be satisfied
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrExec indicates the process image could not be replaced
	ErrExec = errors.New("vector: exec failed")

	// ErrInvalidName indicates an environment variable name that cannot be stored
	ErrInvalidName = errors.New("vector: invalid environment name")
)

// OpError represents an error from a vector operation
type OpError struct {
	// Op is the operation that failed
	Op Operation
	// Path is the file path involved in the operation, if any
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *OpError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("vector %s: %v", e.Op.String(), e.Err)
	}
	return fmt.Sprintf("vector %s %q: %v", e.Op.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *OpError) Unwrap() error {
	return e.Err
}

// ExecError is returned when Exec or ExecEnv fails to replace the process.
// It always matches ErrExec; the platform error is available through Unwrap.
type ExecError struct {
	// Path is the program that could not be executed
	Path string
	// Err is the underlying system error
	Err error
}

// Error returns a formatted error message
func (e *ExecError) Error() string {
	return fmt.Sprintf("vector exec %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying system error
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExec
func (e *ExecError) Is(target error) bool {
	return target == ErrExec
}

// MultiError aggregates multiple errors from directory operations
type MultiError struct {
	// Errors contains all accumulated errors
	Errors []error
}

// Error returns a summary of the accumulated errors
func (m *MultiError) Error() string {
	if len(m.Errors) == 0 {
		return "no errors"
	}
	if len(m.Errors) == 1 {
		return m.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors occurred", len(m.Errors))
}

// Add appends an error to the collection if it's not nil
func (m *MultiError) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Unwrap returns the accumulated errors for errors.Is and errors.As
func (m *MultiError) Unwrap() []error {
	return m.Errors
}

// Err returns nil if no errors occurred, otherwise returns the MultiError itself
func (m *MultiError) Err() error {
	if len(m.Errors) == 0 {
		return nil
	}
	return m
}

func allocError(op Operation, format string, args ...any) error {
	return &OpError{Op: op, Err: fmt.Errorf("%w: %s", ErrAllocation, fmt.Sprintf(format, args...))}
}
