package encoder

import "strings"

// wordScanner steps through the words of an input text, similar to
// bufio.Scanner. Words are delimited by an exact separator string;
// whitespace is not collapsed.
//
//   words := newWordScanner(text, " ")
//   for words.Next() {
//       w := words.Text()
//       …
//   }
//
// Scanning an empty text yields a single empty word, as does every
// position between two consecutive separators.
type wordScanner struct {
	rest string // input not yet consumed
	sep  string // word separator, non-empty
	word string // current word
	done bool   // no more input
	pos  int    // number of words read so far
}

func newWordScanner(input, sep string) *wordScanner {
	if sep == "" {
		panic("word scanner needs a non-empty separator")
	}
	return &wordScanner{rest: input, sep: sep}
}

// Next advances the scanner to the next word. It returns false when the
// input is exhausted.
func (ws *wordScanner) Next() bool {
	if ws.done {
		ws.word = ""
		return false
	}
	if i := strings.Index(ws.rest, ws.sep); i >= 0 {
		ws.word = ws.rest[:i]
		ws.rest = ws.rest[i+len(ws.sep):]
	} else {
		ws.word = ws.rest
		ws.rest = ""
		ws.done = true
	}
	ws.pos++
	return true
}

// Text returns the current word.
func (ws *wordScanner) Text() string {
	return ws.word
}

// Count returns the number of words read so far.
func (ws *wordScanner) Count() int {
	return ws.pos
}
