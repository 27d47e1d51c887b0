/*
Package variants holds the canonical Morse table and the built-in schemes.

The canonical table assigns International Morse codes to the letters a–z
and the digits 0–9. From it, six built-in schemes are derived:

  simple    dots and dashes
  compact   like simple, but words are separated by " / "
  fancy     middle dots and minus signs (·−)
  fancier   filled circles and bars, with spaced marks (● ▬)
  spoken    radio operator syllables (di-di-dit)
  emoji     emoji circles and minus signs

Built-in schemes are created once, on first use, and never change thereafter.
Clients may share them freely between goroutines.

  s, err := variants.Lookup("fancy")
  if err != nil {
      … // err wraps morse.ErrInvalidVariant
  }

____________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package variants

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// TC traces to the core-tracer.
func TC() tracing.Trace {
	return gtrace.CoreTracer
}
