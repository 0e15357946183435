package vector

import (
	"time"
)

// Capacity limits
const (
	// MaxCapacity is the default upper bound on the number of slots a Vector
	// may reserve. Requests beyond the limit fail with ErrAllocation.
	MaxCapacity = 1 << 24
)

// Environment directory and file constants
const (
	// DefaultWatchDebounce is the default debounce time for env directory watching
	DefaultWatchDebounce = 25 * time.Millisecond

	// DefaultWatchGrace is how long a watcher is given to drain on cleanup
	DefaultWatchGrace = 100 * time.Millisecond

	// DirMode is the default mode for created directories
	DirMode = 0o755

	// FileMode is the default mode for created files
	FileMode = 0o644
)

// Operation identifies the vector operation that produced an error
type Operation int

const (
	// OpUnknown represents an unknown operation
	OpUnknown Operation = iota
	// OpAdd appends an entry
	OpAdd
	// OpResize changes the capacity
	OpResize
	// OpCopy duplicates a vector
	OpCopy
	// OpSplit tokenizes a string into a vector
	OpSplit
	// OpExec replaces the process image
	OpExec
	// OpReadEnvDir reads an environment directory
	OpReadEnvDir
	// OpWriteEnvDir writes an environment directory
	OpWriteEnvDir
	// OpReadFile reads a NUL-separated vector file
	OpReadFile
	// OpWriteFile writes a NUL-separated vector file
	OpWriteFile
	// OpWatch watches an environment directory
	OpWatch
)

// Operation string constants
const (
	opUnknownStr     = "unknown"
	opAddStr         = "add"
	opResizeStr      = "resize"
	opCopyStr        = "copy"
	opSplitStr       = "split"
	opExecStr        = "exec"
	opReadEnvDirStr  = "read-envdir"
	opWriteEnvDirStr = "write-envdir"
	opReadFileStr    = "read-file"
	opWriteFileStr   = "write-file"
	opWatchStr       = "watch"
)

// String returns the string representation of an Operation
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return opAddStr
	case OpResize:
		return opResizeStr
	case OpCopy:
		return opCopyStr
	case OpSplit:
		return opSplitStr
	case OpExec:
		return opExecStr
	case OpReadEnvDir:
		return opReadEnvDirStr
	case OpWriteEnvDir:
		return opWriteEnvDirStr
	case OpReadFile:
		return opReadFileStr
	case OpWriteFile:
		return opWriteFileStr
	case OpWatch:
		return opWatchStr
	default:
		return opUnknownStr
	}
}
