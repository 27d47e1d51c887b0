/*
Package encoder transcodes text into Morse code.

Typical Usage

Clients either call the package level function Encode, or create an Encoder
once and use it for many inputs.

  s, err := encoder.Encode("SOS SOS", encoder.WithVariant("compact"))
  // s == "... --- ... / ... --- ..."

  enc, err := encoder.New(encoder.WithVariant("spoken"))
  for _, line := range lines {
      fmt.Println(enc.Encode(line))
  }

Options select a built-in scheme by name (see package variants), or a custom
scheme. A custom scheme always takes precedence over a variant name.
If neither is given, variant "simple" is used.

How it works

Input text is lower-cased and split into words at an input word separator.
The separator is matched exactly: consecutive separators yield empty words.
Every word is broken into runes, and every rune is looked up in the scheme.
Runes without a code are dropped without a trace in the output, including
their letter gap. Codes of a word are joined by the scheme's letter gap,
words are joined by its word gap. Words which lose all their letters
still take part in joining, resulting in a run of word gaps.

Lower-casing is locale-sensitive. By default, language-independent rules
apply. Clients may select a locale explicitly or ask for the user's locale,
taken from the environment.

Encoders are read-only after creation and may be used by multiple
goroutines concurrently.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package encoder

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
