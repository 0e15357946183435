package vector

import (
	"context"
	"os"
	"os/exec"

	"github.com/axondata/go-vector/internal/unix"
)

// Exec replaces the current process image with the program at path, passing
// the entries of v as its argument list and the current environment. Entry 0
// is conventionally the program name; an empty vector runs the program with
// no arguments at all.
//
// Exec does not return on success. If it returns, the replacement failed and
// the error is an *ExecError matching ErrExec; v is left untouched.
func Exec(path string, v *Vector) error {
	return execve(path, v, os.Environ())
}

// ExecEnv is like Exec but gives the new program env, a vector of NAME=value
// entries, as its entire environment. A nil env means an empty environment.
func ExecEnv(path string, v, env *Vector) error {
	envv := []string{}
	if env != nil {
		envv = env.Strings()
	}
	return execve(path, v, envv)
}

func execve(path string, v *Vector, envv []string) error {
	argv := []string{}
	if v != nil {
		argv = v.Strings()
	}

	if err := unix.Exec(path, argv, envv); err != nil {
		return &ExecError{Path: path, Err: err}
	}
	return nil
}

// Command returns an *exec.Cmd that runs path as a child process with the
// entries of v as its argument list, inheriting the current environment.
// The vector is copied; later changes to v do not affect the command.
func (v *Vector) Command(ctx context.Context, path string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, path)
	cmd.Args = v.Strings()
	return cmd
}

// CommandEnv is like Command but the child receives env as its entire
// environment. A nil env means an empty environment.
func (v *Vector) CommandEnv(ctx context.Context, path string, env *Vector) *exec.Cmd {
	cmd := v.Command(ctx, path)
	cmd.Env = []string{}
	if env != nil {
		cmd.Env = env.Strings()
	}
	return cmd
}
