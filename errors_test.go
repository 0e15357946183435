package vector

import (
	"errors"
	"io/fs"
	"testing"
)

func TestMultiError(t *testing.T) {
	merr := &MultiError{}

	if err := merr.Err(); err != nil {
		t.Error("empty MultiError should return nil")
	}

	merr.Add(nil)
	if err := merr.Err(); err != nil {
		t.Error("MultiError with nil errors should return nil")
	}

	err1 := &OpError{Op: OpReadEnvDir, Path: "/env/A", Err: ErrInvalidName}
	merr.Add(err1)

	if err := merr.Err(); err == nil {
		t.Error("MultiError with errors should return non-nil")
	}

	if merr.Error() != err1.Error() {
		t.Errorf("single error message = %v, want %v", merr.Error(), err1.Error())
	}

	err2 := &OpError{Op: OpReadEnvDir, Path: "/env/B", Err: fs.ErrPermission}
	merr.Add(err2)

	if merr.Error() != "2 errors occurred" {
		t.Errorf("multiple errors message = %v, want '2 errors occurred'", merr.Error())
	}

	if !errors.Is(merr, fs.ErrPermission) {
		t.Error("errors.Is should see through MultiError")
	}
}

func TestOpErrorMessage(t *testing.T) {
	withPath := &OpError{Op: OpWriteFile, Path: "/tmp/argv", Err: fs.ErrExist}
	if got, want := withPath.Error(), `vector write-file "/tmp/argv": file already exists`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	noPath := &OpError{Op: OpAdd, Err: ErrAllocation}
	if got, want := noPath.Error(), "vector add: vector: allocation failed"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestExecErrorIs(t *testing.T) {
	err := error(&ExecError{Path: "/bin/false", Err: fs.ErrNotExist})

	if !errors.Is(err, ErrExec) {
		t.Error("ExecError should match ErrExec")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("ExecError should unwrap to the system error")
	}
	if errors.Is(err, ErrAllocation) {
		t.Error("ExecError should not match ErrAllocation")
	}
}
