// Package emoji attaches emoji glyphs to ranked words whose text matches an
// emoji shortcode name (":cat:" for "cat").
package emoji

import (
	"strings"
	"sync"

	kemoji "github.com/kyokomi/emoji/v2"

	"github.com/dtnitsch/wordstat/models"
)

// names maps a lowercase shortcode name without colons to its glyph.
var names = sync.OnceValue(func() map[string]string {
	codes := kemoji.CodeMap()
	table := make(map[string]string, len(codes))
	for code, glyph := range codes {
		name := strings.ToLower(strings.Trim(code, ":"))
		glyph = strings.TrimSpace(glyph)
		if name == "" || glyph == "" {
			continue
		}
		if existing, ok := table[name]; ok && existing <= glyph {
			continue
		}
		table[name] = glyph
	}
	return table
})

// Lookup returns the glyph whose name matches word, ignoring case.
func Lookup(word string) (string, bool) {
	glyph, ok := names()[strings.ToLower(word)]
	return glyph, ok
}

// Annotate returns a copy of list with Emoji set on every entry that has a
// matching glyph. Entries without a match are left blank.
func Annotate(list models.RankingList) models.RankingList {
	out := make(models.RankingList, len(list))
	for i, e := range list {
		if glyph, ok := Lookup(e.Word); ok {
			e.Emoji = glyph
		}
		out[i] = e
	}
	return out
}
