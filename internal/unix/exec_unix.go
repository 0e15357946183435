//go:build linux || darwin

// Package unix provides platform-specific process primitives.
package unix

import (
	xunix "golang.org/x/sys/unix"
)

// Exec replaces the current process image with the program at path.
// It only returns on failure.
func Exec(path string, argv, envv []string) error {
	return xunix.Exec(path, argv, envv)
}
