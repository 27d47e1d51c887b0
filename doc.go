/*
Package morse is about transcoding text into Morse code.

Description

Morse code represents letters and digits as short sequences of two kinds
of signal units, a short one (“dit”, written as '.') and a long one
(“dah”, written as '-'). International Morse assigns a fixed sequence to
each of the 26 Latin letters and the ten decimal digits. Letters within a
word are separated by a short gap, words by a longer one.

This module is concerned with the presentation of Morse code as text.
A Morse code for a letter need not be rendered as dots and dashes: it may
as well be shown with middle dots and minus signs, with syllables spoken
by radio operators (“di-di-dit”) or with emoji. The unit of configuration
for rendering is a Scheme, which holds the rendered code for every
supported letter plus the separators between letters and words.

Contents

Base package morse provides the data model: marks, codes, code tables and
schemes. The transcoding machinery sits in sub-packages:

  transform   renders canonical dot/dash codes into an arbitrary alphabet
  variants    holds the canonical table and the built-in schemes
  encoder     applies a scheme to text

A typical client will just call the encoder:

  s, err := encoder.Encode("SOS", encoder.WithVariant("compact"))
  // s == "... --- ..."

Clients needing their own symbol set either construct a Scheme from
scratch with NewScheme, or derive one from a built-in scheme with Derive.
Schemes are read-only after construction and may be shared freely between
goroutines.

Unsupported Characters

Schemes do not have to cover every letter. Characters without a code in
the selected scheme (including punctuation and whitespace) are silently
dropped by the encoder. This is documented behaviour, not an error.

BSD License

Copyright (c) 2021, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package morse

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
