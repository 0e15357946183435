//go:build linux || darwin

package vector

import (
	"context"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"vawter.tech/stopper"
)

// watchState manages the state of a watch operation
type watchState struct {
	// readMu serializes reads so events are sent in the order they were read
	readMu sync.Mutex

	mu        sync.Mutex
	last      []string
	sent      bool
	debouncer *time.Timer

	// sendMu serializes sends with closing the channel
	sendMu sync.Mutex
	closed bool
}

// WatchEnvDir watches an environment directory and sends its contents every
// time they change. The first event carries the contents at the time of the
// call. Bursts of file events are debounced by DefaultWatchDebounce, and
// rewrites that leave the contents unchanged are not reported.
//
// The channel is closed after the returned cleanup function is called or ctx
// is cancelled.
func WatchEnvDir(ctx context.Context, dir string) (<-chan EnvEvent, WatchCleanupFunc, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: err}
	}

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, nil, &OpError{Op: OpWatch, Path: dir, Err: err}
	}

	ch := make(chan EnvEvent, 10)

	sctx := stopper.WithContext(ctx)

	state := &watchState{}

	sctx.Defer(func() {
		_ = watcher.Close()

		state.mu.Lock()
		if state.debouncer != nil {
			state.debouncer.Stop()
		}
		state.mu.Unlock()

		state.sendMu.Lock()
		state.closed = true
		close(ch)
		state.sendMu.Unlock()
	})

	cleanup := func() error {
		sctx.Stop(DefaultWatchGrace)
		return sctx.Wait()
	}

	send := func(ev EnvEvent) {
		state.sendMu.Lock()
		defer state.sendMu.Unlock()
		if state.closed {
			return
		}
		select {
		case ch <- ev:
		case <-sctx.Stopping():
		case <-ctx.Done():
		}
	}

	readAndSend := func() {
		state.readMu.Lock()
		defer state.readMu.Unlock()

		if sctx.IsStopping() {
			return
		}

		env, err := ReadEnvDir(dir, nil)
		if err != nil {
			send(EnvEvent{Err: err})
			return
		}

		state.mu.Lock()
		changed := !state.sent || !slices.Equal(state.last, env.strings)
		if changed {
			state.last = env.Strings()
			state.sent = true
		}
		state.mu.Unlock()

		if changed {
			send(EnvEvent{Env: env})
		}
	}

	readAndSend()

	sctx.Go(func(sctx *stopper.Context) error {
		for !sctx.IsStopping() {
			select {
			case <-sctx.Stopping():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}

				// renameio stages writes in dot files before renaming them into place
				if strings.HasPrefix(filepath.Base(event.Name), ".") {
					continue
				}

				state.mu.Lock()
				if state.debouncer != nil {
					state.debouncer.Stop()
				}
				state.debouncer = time.AfterFunc(DefaultWatchDebounce, readAndSend)
				state.mu.Unlock()

			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				if err != nil && !sctx.IsStopping() {
					send(EnvEvent{Err: &OpError{Op: OpWatch, Path: dir, Err: err}})
				}
			}
		}
		return nil
	})

	return ch, cleanup, nil
}

// WaitEnvDir blocks until every variable in names is set in the environment
// directory, then returns its contents. With no names it returns the current
// contents immediately.
func WaitEnvDir(ctx context.Context, dir string, names ...string) (*Vector, error) {
	events, cleanup, err := WatchEnvDir(ctx, dir)
	if err != nil {
		return nil, err
	}
	defer func() { _ = cleanup() }()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return nil, ctx.Err()
			}
			if event.Err != nil {
				return nil, event.Err
			}
			if hasAll(event.Env, names) {
				return event.Env, nil
			}
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func hasAll(env *Vector, names []string) bool {
	for _, name := range names {
		if _, ok := env.Lookup(name); !ok {
			return false
		}
	}
	return true
}
