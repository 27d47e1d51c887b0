package encoder

import (
	"fmt"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/variants"
	"golang.org/x/text/language"
)

// Encoder applies a Morse scheme to text.
// An Encoder is immutable and safe for concurrent use.
type Encoder struct {
	scheme    *morse.Scheme
	separator string
	locale    language.Tag
}

// New creates an Encoder. Options are resolved once: an unknown variant name
// results in an error wrapping morse.ErrInvalidVariant, an empty input word
// separator or a custom scheme not created by morse.NewScheme in an error
// wrapping morse.ErrConfiguration.
func New(opts ...Option) (*Encoder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.separator == "" {
		return nil, fmt.Errorf("%w: input word separator must not be empty", morse.ErrConfiguration)
	}
	scheme := cfg.scheme
	if scheme != nil {
		if err := scheme.Validate(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if scheme, err = variants.Lookup(cfg.variant); err != nil {
			return nil, err
		}
	}
	CT().Debugf("new encoder for %v, input word separator %q, locale %v",
		scheme, cfg.separator, cfg.locale)
	return &Encoder{
		scheme:    scheme,
		separator: cfg.separator,
		locale:    cfg.locale,
	}, nil
}

// Scheme returns the scheme an encoder applies.
func (enc *Encoder) Scheme() *morse.Scheme {
	return enc.scheme
}

// Encode transcodes input into Morse code.
//
// Input is lower-cased and split into words at the encoder's input word
// separator. Characters not supported by the scheme are dropped. Codes
// within a word are joined by the scheme's letter gap, words are joined by
// its word gap. Input consisting of unsupported characters only results in
// an empty string.
func (enc *Encoder) Encode(input string) string {
	sc := borrowScratch(enc.locale)
	defer releaseScratch(sc)
	words := newWordScanner(sc.caser.String(input), enc.separator)
	for words.Next() {
		if words.Count() > 1 {
			sc.out.WriteString(enc.scheme.WordGap())
		}
		enc.encodeWord(words.Text(), sc)
	}
	return sc.out.String()
}

// encodeWord appends the codes of all supported letters of word to the
// output, separated by letter gaps.
func (enc *Encoder) encodeWord(word string, sc *scratch) {
	sc.codes = sc.codes[:0]
	for _, r := range word {
		code, ok := enc.scheme.CodeFor(r)
		if !ok {
			CT().Debugf("dropping unsupported character %+q", r)
			continue
		}
		sc.codes = append(sc.codes, code)
	}
	for i, code := range sc.codes {
		if i > 0 {
			sc.out.WriteString(enc.scheme.LetterGap())
		}
		sc.out.WriteString(code)
	}
}

// Encode transcodes input into Morse code, configured by a set of options.
// Without options, variant "simple" is used and words are expected to be
// separated by a single space.
//
// Encode returns an error if the options are invalid, e.g. if they name an
// unknown variant. Unsupported characters in input are not an error.
func Encode(input string, opts ...Option) (string, error) {
	enc, err := New(opts...)
	if err != nil {
		return "", err
	}
	return enc.Encode(input), nil
}
