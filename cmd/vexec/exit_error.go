package main

import "fmt"

// Exit codes follow the daemontools conventions
const (
	// exitUsage is returned for bad flags or arguments
	exitUsage = 100
	// exitExec is returned when the program could not be executed
	exitExec = 111
)

// ExitError signals a non-zero exit code without forcing os.Exit in RunE handlers.
type ExitError struct {
	Code int
	Err  error
}

// Error returns the error message for ExitError.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
