package morse

import (
	"fmt"
	"strings"
)

// Mark is one atomic Morse signal unit.
type Mark int8

// The two kinds of marks. Their string representation is the canonical
// dot/dash form.
const (
	Short Mark = iota // “dit”, '.'
	Long              // “dah”, '-'
)

func (m Mark) String() string {
	switch m {
	case Short:
		return "."
	case Long:
		return "-"
	}
	return fmt.Sprintf("Mark(%d)", int8(m))
}

// Code is an ordered sequence of marks, representing a single letter or digit.
// Codes carry no separators. Clients should treat codes as immutable values.
type Code []Mark

// ParseCode creates a code from its canonical dot/dash representation.
// Any character other than '.' or '-' results in ErrInvalidCode.
// An empty string yields an empty, non-nil code.
func ParseCode(s string) (Code, error) {
	code := make(Code, 0, len(s))
	for i, r := range s {
		switch r {
		case '.':
			code = append(code, Short)
		case '-':
			code = append(code, Long)
		default:
			return nil, fmt.Errorf("%w: %+q at position %d of %q", ErrInvalidCode, r, i, s)
		}
	}
	return code, nil
}

// MustParseCode is like ParseCode, but panics if s is not a valid code.
// It is intended for static code tables.
func MustParseCode(s string) Code {
	code, err := ParseCode(s)
	if err != nil {
		panic(err.Error())
	}
	return code
}

// String returns the canonical dot/dash representation of a code.
func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c))
	for _, m := range c {
		b.WriteString(m.String())
	}
	return b.String()
}

// Len returns the number of marks of a code.
func (c Code) Len() int {
	return len(c)
}

// Last returns the final mark of a code. If the code is empty, false is returned.
func (c Code) Last() (Mark, bool) {
	if len(c) == 0 {
		return Short, false
	}
	return c[len(c)-1], true
}

// Equal reports whether two codes consist of the same marks.
func (c Code) Equal(other Code) bool {
	if len(c) != len(other) {
		return false
	}
	for i := range c {
		if c[i] != other[i] {
			return false
		}
	}
	return true
}

// Table maps letters to their canonical codes. Keys are lower-case runes.
// A nil code stands for a letter which is known, but has no code assigned.
type Table map[rune]Code

// Clone returns a copy of a table. Codes are shared, as they are immutable.
func (t Table) Clone() Table {
	c := make(Table, len(t))
	for r, code := range t {
		c[r] = code
	}
	return c
}

// Strings renders a table in canonical dot/dash form. Letters with
// a nil code are omitted.
func (t Table) Strings() map[rune]string {
	m := make(map[rune]string, len(t))
	for r, code := range t {
		if code == nil {
			continue
		}
		m[r] = code.String()
	}
	return m
}
