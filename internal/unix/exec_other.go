//go:build !linux && !darwin

// Package unix provides platform-specific process primitives.
package unix

import "errors"

// Exec is not available on this platform.
func Exec(path string, argv, envv []string) error {
	return errors.ErrUnsupported
}
