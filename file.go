package vector

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/google/renameio/v2"
)

// WriteFile atomically writes the entries of v to path, each followed by a
// NUL byte. This is the layout of /proc/<pid>/cmdline and /proc/<pid>/environ.
// Entries containing NUL bytes cannot be represented and are rejected.
func WriteFile(path string, v *Vector) error {
	var buf bytes.Buffer
	for i, s := range v.strings {
		if strings.IndexByte(s, 0) >= 0 {
			return &OpError{Op: OpWriteFile, Path: path, Err: fmt.Errorf("entry %d contains a NUL byte", i)}
		}
		buf.WriteString(s)
		buf.WriteByte(0)
	}

	if err := renameio.WriteFile(path, buf.Bytes(), FileMode); err != nil {
		return &OpError{Op: OpWriteFile, Path: path, Err: err}
	}
	return nil
}

// ReadFile reads a file of NUL-terminated entries written by WriteFile or
// exposed by the kernel under /proc. A final entry without its terminator
// is still returned. Reuse works as for SplitMulti.
func ReadFile(path string, reuse *Vector) (*Vector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OpError{Op: OpReadFile, Path: path, Err: err}
	}

	count := bytes.Count(data, []byte{0})
	if len(data) > 0 && data[len(data)-1] != 0 {
		count++
	}

	v := reuse
	if v == nil {
		v = New()
	}
	if err := v.reserve(OpReadFile, count); err != nil {
		return nil, err
	}

	for len(data) > 0 {
		entry, rest, _ := bytes.Cut(data, []byte{0})
		v.strings = append(v.strings, string(entry))
		data = rest
	}
	return v, nil
}
