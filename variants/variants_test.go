package variants

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/npillmayer/morse"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestCanonicalTable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	table := Canonical()
	if len(table) != 36 {
		t.Fatalf("expected canonical table to have 36 entries, has %d", len(table))
	}
	for r := 'a'; r <= 'z'; r++ {
		if code, ok := table[r]; !ok || code.Len() == 0 {
			t.Errorf("letter %q missing from canonical table", r)
		}
	}
	for r := '0'; r <= '9'; r++ {
		if code, ok := table[r]; !ok || code.Len() != 5 {
			t.Errorf("digit %q missing from canonical table or not of length 5", r)
		}
	}
	if table['s'].String() != "..." || table['o'].String() != "---" {
		t.Errorf("unexpected codes for SOS: %v %v", table['s'], table['o'])
	}
	delete(table, 'e')
	if _, ok := Canonical()['e']; !ok {
		t.Errorf("modifying a copy must not modify the canonical table")
	}
}

func TestCanonicalCodesAreDistinct(t *testing.T) {
	seen := make(map[string]rune)
	for r, code := range Canonical() {
		if other, ok := seen[code.String()]; ok {
			t.Errorf("letters %q and %q share code %v", r, other, code)
		}
		seen[code.String()] = r
	}
}

func TestNames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	expected := []string{Compact, Emoji, Fancier, Fancy, Simple, Spoken}
	if names := Names(); !reflect.DeepEqual(names, expected) {
		t.Errorf("expected variant names to be %v, are %v", expected, names)
	}
}

func TestLookup(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatalf("cannot look up variant %q: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("variant %q carries name %q", name, s.Name())
		}
		if s.Len() != 36 {
			t.Errorf("variant %q should support 36 letters, supports %d", name, s.Len())
		}
		if s2 := MustLookup(name); s2 != s {
			t.Errorf("expected repeated lookups of %q to return the shared scheme", name)
		}
	}
	_, err := Lookup("morse")
	if !errors.Is(err, morse.ErrInvalidVariant) {
		t.Errorf("expected ErrInvalidVariant for unknown variant, got %v", err)
	}
}

func TestMustLookupPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected MustLookup to panic for unknown variant")
		}
	}()
	MustLookup("Simple")
}

func TestBuiltinCodes(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	for i, tc := range []struct {
		variant string
		letter  rune
		code    string
	}{
		{Simple, 'h', "...."},
		{Compact, '0', "-----"},
		{Fancy, 'l', "·−··"},
		{Fancier, 'k', "▬ ● ▬"},
		{Spoken, 's', "di-di-dit"},
		{Spoken, 'q', "dah-dah-di-dah"},
		{Spoken, 'e', "dit"},
		{Emoji, 'a', "🔵➖"},
	} {
		code, ok := MustLookup(tc.variant).CodeFor(tc.letter)
		if !ok || code != tc.code {
			t.Errorf("test #%d: expected %s code for %q to be %q, is %q", i, tc.variant,
				tc.letter, tc.code, code)
		}
	}
}

func TestCompactDiffersOnlyInWordGap(t *testing.T) {
	simple, compact := MustLookup(Simple), MustLookup(Compact)
	if simple.LetterGap() != compact.LetterGap() {
		t.Errorf("expected letter gaps of simple and compact to be equal")
	}
	if simple.WordGap() == compact.WordGap() {
		t.Errorf("expected word gaps of simple and compact to differ")
	}
	if !reflect.DeepEqual(simple.Codes(), compact.Codes()) {
		t.Errorf("expected codes of simple and compact to be equal")
	}
}

func TestFancierSeparators(t *testing.T) {
	simple, compact, fancier := MustLookup(Simple), MustLookup(Compact), MustLookup(Fancier)
	for _, s := range []*morse.Scheme{simple, compact} {
		if s.LetterGap() == fancier.LetterGap() && s.WordGap() == fancier.WordGap() {
			t.Errorf("expected fancier to use gaps different from %s", s.Name())
		}
	}
}

func TestConcurrentSetup(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := Lookup(Spoken); err != nil {
				t.Errorf("concurrent lookup failed: %v", err)
			}
		}()
	}
	wg.Wait()
}
