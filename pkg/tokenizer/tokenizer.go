// Package tokenizer splits decoded text into words using Unicode (UAX #29)
// word boundaries. Segments made only of whitespace, punctuation or symbols
// are dropped; everything else is a word.
package tokenizer

import (
	"bytes"
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/wordstat/models"
	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	xunicode "golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// Scratch is per-worker buffer space that is reset, not freed, between files.
// It must not be shared between goroutines.
type Scratch struct {
	read  bytes.Buffer
	fold  []byte
	caser cases.Caser
}

// NewScratch returns an empty Scratch.
func NewScratch() *Scratch {
	return &Scratch{caser: cases.Lower(language.Und)}
}

// Buffer returns the reusable read buffer, emptied.
func (s *Scratch) Buffer() *bytes.Buffer {
	s.read.Reset()
	return &s.read
}

// Decode returns raw as UTF-8 text. A UTF-8 byte order mark is stripped and
// UTF-16 input with a byte order mark is transcoded. Anything that is still
// not valid UTF-8 fails with models.ErrEncoding.
func Decode(raw []byte) ([]byte, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		raw = raw[len(bomUTF8):]
	case bytes.HasPrefix(raw, bomUTF16BE), bytes.HasPrefix(raw, bomUTF16LE):
		decoded, err := xunicode.UTF16(xunicode.BigEndian, xunicode.ExpectBOM).NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: utf-16: %v", models.ErrEncoding, err)
		}
		raw = decoded
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid utf-8", models.ErrEncoding)
	}
	return raw, nil
}

// Tokens is a restartable word sequence over one document.
type Tokens struct {
	text      []byte
	lowercase bool
	scratch   *Scratch
}

// New returns the words of text. text must already be valid UTF-8 (see
// Decode). s may be nil, in which case a private Scratch is allocated.
func New(text []byte, lowercase bool, s *Scratch) *Tokens {
	if s == nil {
		s = NewScratch()
	}
	return &Tokens{text: text, lowercase: lowercase, scratch: s}
}

// All yields each word in document order. Every call starts over from the
// beginning of the text. The yielded slice is only valid until the next
// iteration step; callers that keep a word must copy it.
func (t *Tokens) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		rest := t.text
		state := -1
		var segment []byte
		for len(rest) > 0 {
			segment, rest, state = uniseg.FirstWord(rest, state)
			if !isWord(segment) {
				continue
			}
			if t.lowercase {
				segment = t.fold(segment)
			}
			if !yield(segment) {
				return
			}
		}
	}
}

// Strings yields copies of the words.
func (t *Tokens) Strings() iter.Seq[string] {
	return func(yield func(string) bool) {
		for w := range t.All() {
			if !yield(string(w)) {
				return
			}
		}
	}
}

// Words is a convenience for callers that want a slice.
func Words(text string, lowercase bool) []string {
	var words []string
	for w := range New([]byte(text), lowercase, nil).Strings() {
		words = append(words, w)
	}
	return words
}

// fold lowercases word into the scratch buffer. ASCII is handled inline;
// anything else goes through the Unicode lowercaser, which keeps spellings
// such as "straße" intact.
func (t *Tokens) fold(word []byte) []byte {
	buf := t.scratch.fold[:0]
	for _, b := range word {
		if b >= utf8.RuneSelf {
			t.scratch.caser.Reset()
			t.scratch.fold = append(buf[:0], t.scratch.caser.Bytes(word)...)
			return t.scratch.fold
		}
		if 'A' <= b && b <= 'Z' {
			b += 'a' - 'A'
		}
		buf = append(buf, b)
	}
	t.scratch.fold = buf
	return buf
}

// isWord reports whether segment contains at least one letter or number.
func isWord(segment []byte) bool {
	for len(segment) > 0 {
		r, size := utf8.DecodeRune(segment)
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
		segment = segment[size:]
	}
	return false
}
