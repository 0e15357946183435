package vector

import (
	"slices"
	"strings"
)

// Vector is a growable list of owned strings, used to accumulate a program's
// argument list or a set of NAME=value environment assignments before they
// are handed to Exec or ExecEnv.
//
// Every entry is a private copy of the string passed in; the vector never
// aliases caller memory. Len reports the number of live entries and Cap the
// number of reserved slots, and Cap is never smaller than Len.
//
// A Vector is not safe for concurrent use.
type Vector struct {
	strings []string
	limit   int
}

// Option configures a Vector
type Option func(*Vector)

// WithMaxCapacity limits the number of slots the vector may reserve
func WithMaxCapacity(n int) Option {
	return func(v *Vector) {
		v.limit = n
	}
}

// New creates an empty vector with no reserved capacity
func New(opts ...Option) *Vector {
	v := &Vector{
		limit: MaxCapacity,
	}

	for _, opt := range opts {
		opt(v)
	}

	if v.limit < 0 {
		v.limit = 0
	}

	return v
}

// FromStrings creates a vector holding copies of ss, with capacity len(ss)
func FromStrings(ss []string, opts ...Option) (*Vector, error) {
	v := New(opts...)
	if err := v.Resize(len(ss)); err != nil {
		return nil, err
	}
	for _, s := range ss {
		v.strings = append(v.strings, strings.Clone(s))
	}
	return v, nil
}

// Len returns the number of entries
func (v *Vector) Len() int {
	return len(v.strings)
}

// Cap returns the number of reserved slots
func (v *Vector) Cap() int {
	return cap(v.strings)
}

// At returns the entry at index i. It panics if i is out of range.
func (v *Vector) At(i int) string {
	return v.strings[i]
}

// Strings returns the entries as a new slice. Modifying the slice does not
// affect the vector.
func (v *Vector) Strings() []string {
	return append(make([]string, 0, len(v.strings)), v.strings...)
}

// Join concatenates the entries separated by sep
func (v *Vector) Join(sep string) string {
	return strings.Join(v.strings, sep)
}

// Resize sets the capacity to exactly n. Entries at index n and above are
// released. If the request is negative or exceeds the vector's capacity
// limit, Resize returns an error wrapping ErrAllocation and leaves the vector
// unchanged.
func (v *Vector) Resize(n int) error {
	if n < 0 {
		return allocError(OpResize, "negative capacity %d", n)
	}
	if n > v.limit {
		return allocError(OpResize, "capacity %d exceeds limit %d", n, v.limit)
	}

	count := len(v.strings)
	if n < count {
		clear(v.strings[n:count])
		count = n
	}
	if n == cap(v.strings) {
		v.strings = v.strings[:count]
		return nil
	}

	resized := make([]string, count, n)
	copy(resized, v.strings[:count])
	v.strings = resized
	return nil
}

// Add appends a copy of s, doubling the capacity when the vector is full.
// If the capacity limit has been reached, Add returns an error wrapping
// ErrAllocation and leaves the vector unchanged.
func (v *Vector) Add(s string) error {
	if len(v.strings) == cap(v.strings) {
		n := min(max(2*cap(v.strings), 1), v.limit)
		if n <= cap(v.strings) {
			return allocError(OpAdd, "capacity limit %d reached", v.limit)
		}
		if err := v.Resize(n); err != nil {
			return err
		}
	}

	v.strings = append(v.strings, strings.Clone(s))
	return nil
}

// Copy returns an independent vector with the same entries and the same
// capacity. Options apply to the copy; by default it inherits the source's
// capacity limit. If the copy cannot reserve the source's capacity, Copy
// returns nil and an error wrapping ErrAllocation; nothing is duplicated in
// that case.
func (v *Vector) Copy(opts ...Option) (*Vector, error) {
	c := New(append([]Option{WithMaxCapacity(v.limit)}, opts...)...)
	if cap(v.strings) > c.limit {
		return nil, allocError(OpCopy, "capacity %d exceeds limit %d", cap(v.strings), c.limit)
	}
	c.strings = make([]string, 0, cap(v.strings))

	for _, s := range v.strings {
		c.strings = append(c.strings, strings.Clone(s))
	}
	return c, nil
}

// Clear releases every entry and sets the length to zero. The capacity is
// kept so the vector can be refilled without reallocating.
func (v *Vector) Clear() {
	clear(v.strings)
	v.strings = v.strings[:0]
}

// Free releases every entry and the backing storage. The vector must not be
// used afterwards.
func (v *Vector) Free() {
	clear(v.strings)
	v.strings = nil
}

// Remove deletes the entry at index i, shifting later entries down. The
// capacity is unchanged. It panics if i is out of range.
func (v *Vector) Remove(i int) {
	v.strings = slices.Delete(v.strings, i, i+1)
}

// reserve makes room for at least n entries after clearing the vector.
// The capacity only changes when it is too small.
func (v *Vector) reserve(op Operation, n int) error {
	v.Clear()
	if cap(v.strings) >= n {
		return nil
	}
	if n > v.limit {
		return allocError(op, "%d entries exceed capacity limit %d", n, v.limit)
	}
	return v.Resize(n)
}
