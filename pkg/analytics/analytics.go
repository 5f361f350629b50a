// Package analytics computes document statistics that sit alongside the
// word counts: characters, sentences, paragraphs and the shape of the
// per-word count distribution.
package analytics

import (
	"bytes"
	"math"
	"sort"
	"unicode"
	"unicode/utf8"

	"github.com/dtnitsch/wordstat/models"
	"github.com/rivo/uniseg"
)

// TextStats counts characters (grapheme clusters), sentences and paragraphs
// in text and summarizes the distribution of counts.
func TextStats(text []byte, counts models.FrequencyMap) models.TextStats {
	return models.TextStats{
		Characters:   uniseg.GraphemeClusterCount(string(text)),
		Sentences:    Sentences(text),
		Paragraphs:   Paragraphs(text),
		Distribution: Distribute(counts),
	}
}

// Sentences counts UAX #29 sentences that contain at least one letter or
// number.
func Sentences(text []byte) int {
	n := 0
	state := -1
	var sentence []byte
	for len(text) > 0 {
		sentence, text, state = uniseg.FirstSentence(text, state)
		if hasAlphanumeric(sentence) {
			n++
		}
	}
	return n
}

// Paragraphs counts blocks of text separated by at least one blank line.
func Paragraphs(text []byte) int {
	text = bytes.ReplaceAll(text, []byte("\r\n"), []byte("\n"))
	n := 0
	for _, block := range bytes.Split(text, []byte("\n\n")) {
		if len(bytes.TrimSpace(block)) > 0 {
			n++
		}
	}
	return n
}

// Distribute returns mean, population standard deviation, median and mode
// of the per-word counts. When several counts are equally common the mode is
// their average.
func Distribute(counts models.FrequencyMap) models.Distribution {
	if len(counts) == 0 {
		return models.Distribution{}
	}

	values := make([]uint64, 0, len(counts))
	var sum float64
	for _, c := range counts {
		values = append(values, c)
		sum += float64(c)
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	n := float64(len(values))
	d := models.Distribution{Mean: sum / n}

	var squares float64
	for _, v := range values {
		squares += (float64(v) - d.Mean) * (float64(v) - d.Mean)
	}
	d.StdDev = math.Sqrt(squares / n)

	mid := len(values) / 2
	if len(values)%2 == 0 {
		d.Median = float64(values[mid-1]+values[mid]) / 2
	} else {
		d.Median = float64(values[mid])
	}

	occurrences := make(map[uint64]int)
	maxOccurrences := 0
	for _, v := range values {
		occurrences[v]++
		if occurrences[v] > maxOccurrences {
			maxOccurrences = occurrences[v]
		}
	}
	var modeSum float64
	modes := 0
	for v, o := range occurrences {
		if o == maxOccurrences {
			modeSum += float64(v)
			modes++
		}
	}
	d.Mode = modeSum / float64(modes)

	return d
}

func hasAlphanumeric(b []byte) bool {
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
		b = b[size:]
	}
	return false
}
