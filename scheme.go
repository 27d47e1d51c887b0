package morse

import (
	"fmt"
	"sort"
	"unicode"
)

// Scheme is a complete rendering configuration for Morse code: rendered
// codes per letter, plus the separators between letters and between words.
//
// Codes of a scheme are plain strings in the scheme's own symbol alphabet,
// which need not be dots and dashes. A scheme is not required to cover every
// letter; letters without a code are unsupported under this scheme.
//
// Schemes are immutable after construction and safe for concurrent use.
type Scheme struct {
	name      string
	letterGap string
	wordGap   string
	codes     map[rune]string
}

// NewScheme creates a scheme from a name, two separators and a mapping from
// letters to rendered codes. The mapping is copied.
//
// The name is informational only. Gaps are taken as given; an empty letter
// gap concatenates the codes of a word. The mapping must not be nil, but may
// cover any subset of letters. All keys have to be lower-case runes, as
// the encoder looks up letters after lower-casing its input.
// Violations result in ErrConfiguration.
func NewScheme(name, letterGap, wordGap string, codes map[rune]string) (*Scheme, error) {
	if codes == nil {
		return nil, fmt.Errorf("%w: scheme %q has no codes", ErrConfiguration, name)
	}
	s := &Scheme{
		name:      name,
		letterGap: letterGap,
		wordGap:   wordGap,
		codes:     make(map[rune]string, len(codes)),
	}
	for r, code := range codes {
		if unicode.ToLower(r) != r {
			return nil, fmt.Errorf("%w: scheme %q has non-lower-case key %+q",
				ErrConfiguration, name, r)
		}
		s.codes[r] = code
	}
	return s, nil
}

// MustNewScheme is like NewScheme, but panics in case of an error.
func MustNewScheme(name, letterGap, wordGap string, codes map[rune]string) *Scheme {
	s, err := NewScheme(name, letterGap, wordGap, codes)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Validate checks that a scheme has been created by NewScheme or Derive.
// A zero Scheme has no mapping and results in ErrConfiguration.
func (s *Scheme) Validate() error {
	if s == nil || s.codes == nil {
		return fmt.Errorf("%w: scheme has no codes; create schemes with NewScheme",
			ErrConfiguration)
	}
	return nil
}

// Name returns the informational name of a scheme.
func (s *Scheme) Name() string {
	return s.name
}

// LetterGap returns the separator between consecutive letters of a word.
func (s *Scheme) LetterGap() string {
	return s.letterGap
}

// WordGap returns the separator between consecutive words.
func (s *Scheme) WordGap() string {
	return s.wordGap
}

// CodeFor returns the rendered code for letter r. If r is not supported by
// this scheme, false is returned. r is expected to be lower-case.
func (s *Scheme) CodeFor(r rune) (string, bool) {
	code, ok := s.codes[r]
	return code, ok
}

// Supports reports whether letter r has a code in this scheme.
func (s *Scheme) Supports(r rune) bool {
	_, ok := s.codes[r]
	return ok
}

// Len returns the number of supported letters.
func (s *Scheme) Len() int {
	return len(s.codes)
}

// Letters returns the supported letters in ascending order.
func (s *Scheme) Letters() []rune {
	letters := make([]rune, 0, len(s.codes))
	for r := range s.codes {
		letters = append(letters, r)
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

// Codes returns a copy of the letter-to-code mapping.
func (s *Scheme) Codes() map[rune]string {
	m := make(map[rune]string, len(s.codes))
	for r, code := range s.codes {
		m[r] = code
	}
	return m
}

func (s *Scheme) String() string {
	if s == nil {
		return "[nil scheme]"
	}
	return fmt.Sprintf("[scheme %q: %d letters, letter gap %q, word gap %q]",
		s.name, len(s.codes), s.letterGap, s.wordGap)
}

// --- Derivation ------------------------------------------------------------

// Override changes a single property of a scheme under construction.
// Overrides are applied by Derive.
type Override func(*Scheme)

// WithName overrides the name of a derived scheme.
func WithName(name string) Override {
	return func(s *Scheme) {
		s.name = name
	}
}

// WithLetterGap overrides the letter gap of a derived scheme.
func WithLetterGap(gap string) Override {
	return func(s *Scheme) {
		s.letterGap = gap
	}
}

// WithWordGap overrides the word gap of a derived scheme.
func WithWordGap(gap string) Override {
	return func(s *Scheme) {
		s.wordGap = gap
	}
}

// WithCodes replaces the letter-to-code mapping of a derived scheme.
func WithCodes(codes map[rune]string) Override {
	return func(s *Scheme) {
		s.codes = codes
	}
}

// Derive creates a new scheme from a base scheme and a set of overrides.
// The base scheme is left untouched. The result is subject to the same
// checks as a scheme created by NewScheme.
//
//   compact, err := morse.Derive(simple, morse.WithName("compact"), morse.WithWordGap(" / "))
//
func Derive(base *Scheme, overrides ...Override) (*Scheme, error) {
	if base == nil {
		return nil, fmt.Errorf("%w: cannot derive from nil scheme", ErrConfiguration)
	}
	draft := Scheme{
		name:      base.name,
		letterGap: base.letterGap,
		wordGap:   base.wordGap,
		codes:     base.codes,
	}
	for _, override := range overrides {
		override(&draft)
	}
	CT().Debugf("deriving scheme %q from %q", draft.name, base.name)
	// NewScheme copies the mapping, so draft may safely share base's codes.
	return NewScheme(draft.name, draft.letterGap, draft.wordGap, draft.codes)
}
