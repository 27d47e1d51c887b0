package transform

import (
	"strings"

	"github.com/npillmayer/morse"
)

// Rule describes how to render a canonical code into a target alphabet.
// All fields are optional. Empty fields default to
//
//   ShortMark     = "."
//   LongMark      = "-"
//   MarkSeparator = ""
//   LastShortMark = ShortMark
//
// so the zero value of Rule reproduces the canonical dot/dash form.
type Rule struct {
	ShortMark     string // replaces '.'
	LastShortMark string // replaces a '.' in final position; falls back to ShortMark
	LongMark      string // replaces '-'
	MarkSeparator string // inserted between consecutive marks of one code
}

// Identity is a rule which renders codes in their canonical dot/dash form.
var Identity = Rule{ShortMark: ".", LongMark: "-"}

func (rule Rule) short() string {
	if rule.ShortMark == "" {
		return morse.Short.String()
	}
	return rule.ShortMark
}

func (rule Rule) lastShort() string {
	if rule.LastShortMark == "" {
		return rule.short()
	}
	return rule.LastShortMark
}

func (rule Rule) long() string {
	if rule.LongMark == "" {
		return morse.Long.String()
	}
	return rule.LongMark
}

// RenderCode renders a canonical code according to a rule.
//
// Long marks are replaced by rule.LongMark, short marks by rule.ShortMark.
// The last mark of the code, if it is short, is replaced by rule.LastShortMark
// instead. “Last” is positional: a code ending in a long mark is not affected
// by LastShortMark at all. Rendered marks are joined by rule.MarkSeparator.
//
// An empty code renders to the empty string.
func RenderCode(code morse.Code, rule Rule) string {
	if len(code) == 0 {
		return ""
	}
	var b strings.Builder
	last := len(code) - 1
	for i, m := range code {
		if i > 0 {
			b.WriteString(rule.MarkSeparator)
		}
		switch {
		case m == morse.Long:
			b.WriteString(rule.long())
		case i == last:
			b.WriteString(rule.lastShort())
		default:
			b.WriteString(rule.short())
		}
	}
	return b.String()
}

// RenderTable applies RenderCode to every code of a table, returning a new
// mapping with the same keys. Letters with a nil code are omitted from the
// result; an empty (non-nil) code renders to the empty string.
func RenderTable(table morse.Table, rule Rule) map[rune]string {
	rendered := make(map[rune]string, len(table))
	for r, code := range table {
		if code == nil {
			T().Debugf("letter %+q has no code, skipping", r)
			continue
		}
		rendered[r] = RenderCode(code, rule)
	}
	return rendered
}

// Scheme renders a table according to a rule and creates a scheme from the
// result. It is a shortcut for custom schemes built from canonical codes.
func Scheme(name string, table morse.Table, rule Rule, letterGap, wordGap string) (*morse.Scheme, error) {
	return morse.NewScheme(name, letterGap, wordGap, RenderTable(table, rule))
}
