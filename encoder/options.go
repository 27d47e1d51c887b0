package encoder

import (
	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/variants"
	"golang.org/x/text/language"
)

// DefaultWordSeparator separates words of input text, if not configured otherwise.
const DefaultWordSeparator = " "

// config collects the settings for an Encoder.
type config struct {
	variant   string        // name of a built-in scheme
	scheme    *morse.Scheme // custom scheme, takes precedence over variant
	separator string        // input word separator
	locale    language.Tag  // lower-casing rules
}

func defaultConfig() config {
	return config{
		variant:   variants.Default,
		separator: DefaultWordSeparator,
		locale:    language.Und,
	}
}

// Option configures an Encoder.
type Option func(*config)

// WithVariant selects a built-in scheme by name. Names are case-sensitive.
// See package variants for the available names.
func WithVariant(name string) Option {
	return func(c *config) {
		c.variant = name
	}
}

// WithScheme selects a custom scheme. A custom scheme takes precedence over
// a variant name, regardless of the order in which options are given.
// A nil scheme is ignored.
func WithScheme(s *morse.Scheme) Option {
	return func(c *config) {
		if s != nil {
			c.scheme = s
		}
	}
}

// WithInputWordSeparator sets the string which separates words of the
// input text. It is matched exactly and must not be empty.
func WithInputWordSeparator(sep string) Option {
	return func(c *config) {
		c.separator = sep
	}
}

// WithLocale sets the locale whose rules are used for lower-casing input text.
func WithLocale(tag language.Tag) Option {
	return func(c *config) {
		c.locale = tag
	}
}

// WithEnvironmentLocale uses the user's locale for lower-casing input text.
// See LocaleFromEnvironment.
func WithEnvironmentLocale() Option {
	return func(c *config) {
		c.locale = LocaleFromEnvironment()
	}
}
