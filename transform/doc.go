/*
Package transform renders canonical Morse codes into arbitrary symbol alphabets.

A canonical code is a sequence of short and long marks, printed as dots and
dashes. Presentational schemes replace these by other symbols: middle dots
and minus signs, syllables (“di-dah”), emoji, etc. The substitution is
described by a Rule:

  rule := transform.Rule{
      ShortMark:     "di",
      LastShortMark: "dit",
      LongMark:      "dah",
      MarkSeparator: "-",
  }
  s := transform.RenderCode(morse.MustParseCode("..."), rule) // "di-di-dit"

A rule may treat a short mark at the very end of a code differently from
interior ones. This is how radio operators pronounce codes: interior dits
are clipped to “di”.

Rendering is a pure function and does not consult any registry state.

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package transform

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
