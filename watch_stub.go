//go:build !linux && !darwin

package vector

import (
	"context"
	"errors"
)

// WatchEnvDir is not supported on this platform
func WatchEnvDir(ctx context.Context, dir string) (<-chan EnvEvent, WatchCleanupFunc, error) {
	return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: errors.ErrUnsupported}
}

// WaitEnvDir is not supported on this platform
func WaitEnvDir(ctx context.Context, dir string, names ...string) (*Vector, error) {
	return nil, &OpError{Op: OpWatch, Path: dir, Err: errors.ErrUnsupported}
}
