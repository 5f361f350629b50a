package mapreduce

import (
	"iter"
	"sort"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/analytics"
)

// Map generates a word frequency map for a single document's words.
// It returns the map and the total number of words seen. A word's key is
// allocated only the first time it is seen, so words may be scratch slices.
func Map(words iter.Seq[[]byte]) (models.FrequencyMap, uint64) {
	counts := make(models.FrequencyMap)
	var total uint64

	for w := range words {
		total++
		if n, ok := counts[string(w)]; ok {
			counts[string(w)] = n + 1
			continue
		}
		counts[string(w)] = 1
	}

	return counts, total
}

// Merge adds every count in src to dst.
func Merge(dst, src models.FrequencyMap) {
	for word, count := range src {
		dst[word] += count
	}
}

// Reduce aggregates file results into a single combined result.
// The output does not depend on the order of results: counts are summed
// and the contributing file list is sorted.
func Reduce(results []*models.FileResult) *models.AggregateResult {
	agg := &models.AggregateResult{
		Frequencies: make(models.FrequencyMap),
		Files:       make([]string, 0, len(results)),
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		Merge(agg.Frequencies, r.Frequencies)
		agg.Files = append(agg.Files, r.Path)
		agg.TotalWords += r.TotalWords
		agg.Stats.Characters += r.Stats.Characters
		agg.Stats.Sentences += r.Stats.Sentences
		agg.Stats.Paragraphs += r.Stats.Paragraphs
	}
	sort.Strings(agg.Files)
	agg.DistinctWords = len(agg.Frequencies)
	agg.Stats.Distribution = analytics.Distribute(agg.Frequencies)

	return agg
}

// Combine merges partial aggregates, for example one per worker or per
// batch of files. Combine(Reduce(a), Reduce(b)) equals Reduce(a ∪ b).
func Combine(parts ...*models.AggregateResult) *models.AggregateResult {
	agg := &models.AggregateResult{Frequencies: make(models.FrequencyMap)}

	for _, p := range parts {
		if p == nil {
			continue
		}
		Merge(agg.Frequencies, p.Frequencies)
		agg.Files = append(agg.Files, p.Files...)
		agg.TotalWords += p.TotalWords
		agg.Stats.Characters += p.Stats.Characters
		agg.Stats.Sentences += p.Stats.Sentences
		agg.Stats.Paragraphs += p.Stats.Paragraphs
	}
	if agg.Files == nil {
		agg.Files = []string{}
	}
	sort.Strings(agg.Files)
	agg.DistinctWords = len(agg.Frequencies)
	agg.Stats.Distribution = analytics.Distribute(agg.Frequencies)

	return agg
}
