package vector

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// envFile is one variable read from an environment directory
type envFile struct {
	name  string
	value string
	// unset is true for an empty file, which removes the variable
	unset bool
}

// Environ returns the current process environment as a vector
func Environ() (*Vector, error) {
	return FromStrings(os.Environ())
}

// Lookup returns the value of the first NAME=value entry for name
func (v *Vector) Lookup(name string) (string, bool) {
	prefix := name + "="
	for _, kv := range v.strings {
		if value, ok := strings.CutPrefix(kv, prefix); ok {
			return value, true
		}
	}
	return "", false
}

// Unset removes every NAME=value entry for name and returns how many were removed
func (v *Vector) Unset(name string) int {
	prefix := name + "="
	removed := 0
	for i := 0; i < len(v.strings); {
		if strings.HasPrefix(v.strings[i], prefix) {
			v.Remove(i)
			removed++
			continue
		}
		i++
	}
	return removed
}

// Setenv replaces any entries for name with a single NAME=value entry
func (v *Vector) Setenv(name, value string) error {
	if !validEnvName(name) {
		return &OpError{Op: OpAdd, Err: fmt.Errorf("%w: %q", ErrInvalidName, name)}
	}
	v.Unset(name)
	return v.Add(name + "=" + value)
}

// ReadEnvDir reads an envdir-style directory: every regular file whose name
// does not start with a dot names a variable, and the first line of the file
// is its value, with trailing spaces and tabs removed and NUL bytes turned
// into newlines. Empty files are skipped. Entries are ordered by file name.
//
// If reuse is non-nil it is cleared and refilled. Failures for individual
// files are collected in a *MultiError, in which case the returned vector is
// nil.
func ReadEnvDir(dir string, reuse *Vector) (*Vector, error) {
	files, err := readEnvDir(dir)
	if err != nil {
		return nil, err
	}

	count := 0
	for _, f := range files {
		if !f.unset {
			count++
		}
	}

	v := reuse
	if v == nil {
		v = New()
	}
	if err := v.reserve(OpReadEnvDir, count); err != nil {
		return nil, err
	}

	for _, f := range files {
		if f.unset {
			continue
		}
		v.strings = append(v.strings, f.name+"="+f.value)
	}
	return v, nil
}

// ApplyEnvDir merges an envdir-style directory into env the way the envdir
// tool does: each file replaces any existing entries for its variable, and
// an empty file removes the variable.
func ApplyEnvDir(env *Vector, dir string) error {
	files, err := readEnvDir(dir)
	if err != nil {
		return err
	}

	for _, f := range files {
		env.Unset(f.name)
		if f.unset {
			continue
		}
		if err := env.Add(f.name + "=" + f.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteEnvDir creates dir and writes every NAME=value entry of env to a file
// called NAME, atomically. Newlines in values are stored as NUL bytes and a
// trailing newline is always written, so an empty value survives a round
// trip through ReadEnvDir.
func WriteEnvDir(dir string, env *Vector) error {
	if err := os.MkdirAll(dir, DirMode); err != nil {
		return &OpError{Op: OpWriteEnvDir, Path: dir, Err: err}
	}

	merr := &MultiError{}
	for _, kv := range env.strings {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !validEnvName(name) {
			merr.Add(&OpError{Op: OpWriteEnvDir, Path: dir, Err: fmt.Errorf("%w: %q", ErrInvalidName, kv)})
			continue
		}

		envPath := filepath.Join(dir, name)
		data := []byte(strings.ReplaceAll(value, "\n", "\x00") + "\n")
		if err := renameio.WriteFile(envPath, data, FileMode); err != nil {
			merr.Add(&OpError{Op: OpWriteEnvDir, Path: envPath, Err: err})
		}
	}

	return merr.Err()
}

func readEnvDir(dir string) ([]envFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &OpError{Op: OpReadEnvDir, Path: dir, Err: err}
	}

	files := make([]envFile, 0, len(entries))
	merr := &MultiError{}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || entry.IsDir() {
			continue
		}

		envPath := filepath.Join(dir, name)
		if !validEnvName(name) {
			merr.Add(&OpError{Op: OpReadEnvDir, Path: envPath, Err: fmt.Errorf("%w: %q", ErrInvalidName, name)})
			continue
		}

		data, err := os.ReadFile(envPath)
		if err != nil {
			merr.Add(&OpError{Op: OpReadEnvDir, Path: envPath, Err: err})
			continue
		}

		files = append(files, parseEnvFile(name, data))
	}

	if err := merr.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

func parseEnvFile(name string, data []byte) envFile {
	if len(data) == 0 {
		return envFile{name: name, unset: true}
	}

	line, _, _ := bytes.Cut(data, []byte{'\n'})
	line = bytes.TrimRight(line, " \t")
	line = bytes.ReplaceAll(line, []byte{0}, []byte{'\n'})

	return envFile{name: name, value: string(line)}
}

func validEnvName(name string) bool {
	return name != "" && !strings.ContainsAny(name, "=/\x00")
}
