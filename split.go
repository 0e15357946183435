package vector

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// SplitMulti splits source into tokens separated by runs of any of the
// characters in seps. Leading, trailing, and repeated separators never
// produce empty tokens, so a source made only of separators yields an empty
// vector.
//
// If reuse is non-nil it is cleared, filled with the tokens, and returned,
// keeping its capacity unless more room is needed. This lets a loop split
// into one vector without reallocating. Otherwise a new vector sized to the
// token count is returned. On error the returned vector is nil and reuse is
// left empty.
func SplitMulti(source, seps string, reuse *Vector) (*Vector, error) {
	isSep := newSeparators(seps).match

	count := 0
	eachField(source, isSep, func(string) { count++ })

	v := reuse
	if v == nil {
		v = New()
	}
	if err := v.reserve(OpSplit, count); err != nil {
		return nil, err
	}

	eachField(source, isSep, func(token string) {
		v.strings = append(v.strings, strings.Clone(token))
	})
	return v, nil
}

// Split splits source at every occurrence of sep. Unlike SplitMulti, empty
// fields are kept: "a,,b" yields three tokens and ",a" yields two. An empty
// source yields an empty vector. Reuse works as for SplitMulti.
func Split(source string, sep byte, reuse *Vector) (*Vector, error) {
	count := 0
	if source != "" {
		count = strings.Count(source, string([]byte{sep})) + 1
	}

	v := reuse
	if v == nil {
		v = New()
	}
	if err := v.reserve(OpSplit, count); err != nil {
		return nil, err
	}

	if source == "" {
		return v, nil
	}
	for {
		i := strings.IndexByte(source, sep)
		if i < 0 {
			v.strings = append(v.strings, strings.Clone(source))
			return v, nil
		}
		v.strings = append(v.strings, strings.Clone(source[:i]))
		source = source[i+1:]
	}
}

// separators is a set of separator characters compared by their encoded
// bytes. Invalid UTF-8 bytes are single-byte members that match only
// themselves, never U+FFFD or another invalid byte.
type separators struct {
	bytes [256]bool
	runes []string
}

func newSeparators(seps string) *separators {
	s := &separators{}
	for i := 0; i < len(seps); {
		_, size := utf8.DecodeRuneInString(seps[i:])
		if size == 1 {
			s.bytes[seps[i]] = true
		} else {
			s.runes = append(s.runes, seps[i:i+size])
		}
		i += size
	}
	return s
}

// match reports whether unit, one decoded character of the source, is a
// separator
func (s *separators) match(unit string) bool {
	if len(unit) == 1 {
		return s.bytes[unit[0]]
	}
	return slices.Contains(s.runes, unit)
}

// eachField calls fn with every maximal run of non-separator characters in
// s, left to right. The tokens passed to fn alias s.
func eachField(s string, isSep func(unit string) bool, fn func(string)) {
	start := -1
	for i := 0; i < len(s); {
		_, size := utf8.DecodeRuneInString(s[i:])
		if isSep(s[i : i+size]) {
			if start >= 0 {
				fn(s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}
	if start >= 0 {
		fn(s[start:])
	}
}
