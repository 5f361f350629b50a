package mapreduce

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/dtnitsch/wordstat/models"
)

// Ranking is the result of ranking one frequency map.
type Ranking struct {
	Top      models.RankingList
	Bottom   models.RankingList
	Matching int // distinct words that passed the filter
}

// before reports whether a ranks ahead of b.
type before func(a, b models.RankedEntry) bool

// mostFrequent orders by count descending, then word ascending.
func mostFrequent(a, b models.RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Word < b.Word
}

// leastFrequent orders by count ascending, then word ascending.
func leastFrequent(a, b models.RankedEntry) bool {
	if a.Count != b.Count {
		return a.Count < b.Count
	}
	return a.Word < b.Word
}

// Rank selects the top and bottom entries of counts.
// top == 0 returns every word fully sorted; bottom is always a literal
// count, so bottom == 0 returns nothing. keep filters words before ranking;
// nil keeps everything.
func Rank(counts models.FrequencyMap, top, bottom int, keep func(word string) bool) Ranking {
	entries := make([]models.RankedEntry, 0, len(counts))
	for word, count := range counts {
		if keep != nil && !keep(word) {
			continue
		}
		entries = append(entries, models.RankedEntry{Word: word, Count: count})
	}

	r := Ranking{Matching: len(entries)}
	if top == 0 {
		r.Top = sortAll(entries, mostFrequent)
	} else {
		r.Top = selectK(entries, top, mostFrequent)
	}
	r.Bottom = selectK(entries, bottom, leastFrequent)
	return r
}

// Top returns the n most frequent words (all of them when n == 0).
func Top(counts models.FrequencyMap, n int) models.RankingList {
	return Rank(counts, n, 0, nil).Top
}

// Bottom returns the n least frequent words.
func Bottom(counts models.FrequencyMap, n int) models.RankingList {
	return Rank(counts, 1, n, nil).Bottom
}

// TopKeywords returns the top N words as "word:count" strings
// (e.g., "learning:1153").
func TopKeywords(counts models.FrequencyMap, n int) []string {
	list := Top(counts, n)
	keywords := make([]string, len(list))
	for i, e := range list {
		keywords[i] = fmt.Sprintf("%s:%d", e.Word, e.Count)
	}
	return keywords
}

// sortAll returns a sorted copy of entries.
func sortAll(entries []models.RankedEntry, less before) models.RankingList {
	out := make(models.RankingList, len(entries))
	copy(out, entries)
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// selectK returns the first k entries under less without sorting the whole
// slice. A bounded heap keeps the k best seen so far with the worst of them
// at the root, so each remaining entry costs O(log k).
func selectK(entries []models.RankedEntry, k int, less before) models.RankingList {
	if k <= 0 {
		return models.RankingList{}
	}
	if k >= len(entries) {
		return sortAll(entries, less)
	}

	h := &boundedHeap{less: less, items: make([]models.RankedEntry, 0, k)}
	for _, e := range entries {
		if h.Len() < k {
			heap.Push(h, e)
			continue
		}
		if less(e, h.items[0]) {
			h.items[0] = e
			heap.Fix(h, 0)
		}
	}

	out := models.RankingList(h.items)
	sort.Slice(out, func(i, j int) bool {
		return less(out[i], out[j])
	})
	return out
}

// boundedHeap is a heap whose root is the entry that ranks last.
type boundedHeap struct {
	items []models.RankedEntry
	less  before
}

func (h *boundedHeap) Len() int           { return len(h.items) }
func (h *boundedHeap) Less(i, j int) bool { return h.less(h.items[j], h.items[i]) }
func (h *boundedHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *boundedHeap) Push(x any)         { h.items = append(h.items, x.(models.RankedEntry)) }
func (h *boundedHeap) Pop() any {
	old := h.items
	n := len(old)
	x := old[n-1]
	h.items = old[:n-1]
	return x
}
