package variants

import (
	"fmt"
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/npillmayer/morse"
	"github.com/npillmayer/morse/transform"
)

// Names of the built-in schemes.
const (
	Simple  = "simple"
	Compact = "compact"
	Fancy   = "fancy"
	Fancier = "fancier"
	Spoken  = "spoken"
	Emoji   = "emoji"
)

// Default is the name of the scheme to use if clients do not select one.
const Default = Simple

// Separators of the built-in schemes.
const (
	standardLetterGap = " "
	standardWordGap   = "       " // 7 units, as in International Morse timing
	compactWordGap    = " / "
	fancierLetterGap  = "   "
	fancierWordGap    = "   /   "
	spokenLetterGap   = " "
	spokenWordGap     = " / "
	emojiLetterGap    = " "
	emojiWordGap      = "   "
)

// Rules for rendering the built-in schemes from the canonical table.
var (
	fancyRule = transform.Rule{
		ShortMark: "·", // U+00B7 MIDDLE DOT
		LongMark:  "−", // U+2212 MINUS SIGN
	}
	fancierRule = transform.Rule{
		ShortMark:     "●", // U+25CF BLACK CIRCLE
		LongMark:      "▬", // U+25AC BLACK RECTANGLE
		MarkSeparator: " ",
	}
	spokenRule = transform.Rule{
		ShortMark:     "di",
		LastShortMark: "dit",
		LongMark:      "dah",
		MarkSeparator: "-",
	}
	emojiRule = transform.Rule{
		ShortMark: "🔵", // U+1F535 LARGE BLUE CIRCLE
		LongMark:  "➖", // U+2796 HEAVY MINUS SIGN
	}
)

// registry is the process-wide collection of built-in schemes. It is
// written exactly once, by setupVariants, and read-only afterwards.
type registry struct {
	canonical morse.Table
	schemes   *treemap.Map // name -> *morse.Scheme, ordered by name
}

var builtin registry

var setupOnce sync.Once

// SetupVariants creates the canonical table and the built-in schemes.
// Clients do not have to call it: all functions of this package will do the
// setup on first use. (Concurrency-safe).
func SetupVariants() {
	setupOnce.Do(setupVariants)
}

func setupVariants() {
	TC().Infof("setting up built-in Morse variants")
	builtin.canonical = makeCanonicalTable()
	builtin.schemes = treemap.NewWithStringComparator()
	canonical := builtin.canonical
	//
	simple := morse.MustNewScheme(Simple, standardLetterGap, standardWordGap, canonical.Strings())
	register(simple)
	register(mustDerive(simple, morse.WithName(Compact), morse.WithWordGap(compactWordGap)))
	register(mustRender(Fancy, canonical, fancyRule, standardLetterGap, standardWordGap))
	register(mustRender(Fancier, canonical, fancierRule, fancierLetterGap, fancierWordGap))
	register(mustRender(Spoken, canonical, spokenRule, spokenLetterGap, spokenWordGap))
	register(mustRender(Emoji, canonical, emojiRule, emojiLetterGap, emojiWordGap))
	TC().Debugf("%d built-in variants available: %v", builtin.schemes.Size(), builtin.schemes.Keys())
}

func register(s *morse.Scheme) {
	builtin.schemes.Put(s.Name(), s)
}

func mustDerive(base *morse.Scheme, overrides ...morse.Override) *morse.Scheme {
	s, err := morse.Derive(base, overrides...)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func mustRender(name string, table morse.Table, rule transform.Rule, letterGap, wordGap string) *morse.Scheme {
	s, err := transform.Scheme(name, table, rule, letterGap, wordGap)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Lookup returns the built-in scheme with the given name.
// If no such scheme exists, an error wrapping morse.ErrInvalidVariant is returned.
//
// Schemes returned by Lookup are shared, immutable values.
func Lookup(name string) (*morse.Scheme, error) {
	SetupVariants()
	s, found := builtin.schemes.Get(name)
	if !found {
		return nil, fmt.Errorf("%w: %q (available: %v)", morse.ErrInvalidVariant, name, Names())
	}
	return s.(*morse.Scheme), nil
}

// MustLookup is like Lookup, but panics if name does not denote a built-in scheme.
func MustLookup(name string) *morse.Scheme {
	s, err := Lookup(name)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// Names returns the names of all built-in schemes in ascending order.
func Names() []string {
	SetupVariants()
	keys := builtin.schemes.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}

// Canonical returns a copy of the canonical table, mapping the letters a–z
// and the digits 0–9 to their International Morse codes.
func Canonical() morse.Table {
	SetupVariants()
	return builtin.canonical.Clone()
}
