package vector

// EnvEvent carries the contents of a watched environment directory after a change
type EnvEvent struct {
	// Env holds the NAME=value entries read from the directory. Each event
	// carries a fresh vector owned by the receiver.
	Env *Vector
	Err error
}

// WatchCleanupFunc stops a watcher and waits for its goroutine to exit
type WatchCleanupFunc func() error
