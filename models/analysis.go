package models

// FrequencyMap maps a word to the number of times it occurred.
type FrequencyMap map[string]uint64

// TextStats holds document-level statistics computed alongside word counts.
type TextStats struct {
	Characters   int          `json:"characters" yaml:"characters"` // grapheme clusters
	Sentences    int          `json:"sentences" yaml:"sentences"`
	Paragraphs   int          `json:"paragraphs" yaml:"paragraphs"`
	Distribution Distribution `json:"distribution" yaml:"distribution"`
}

// Distribution summarizes the per-word counts of a FrequencyMap.
type Distribution struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	StdDev float64 `json:"stddev" yaml:"stddev"`
	Median float64 `json:"median" yaml:"median"`
	Mode   float64 `json:"mode" yaml:"mode"`
}

// FileResult is the outcome of counting one file. It is built once, after
// the file has been read and tokenized completely, and never mutated.
type FileResult struct {
	Path          string
	Frequencies   FrequencyMap
	TotalWords    uint64
	DistinctWords int
	Stats         TextStats
	Language      string
	SizeBytes     int64
	ContentHash   string
}

// NewFileResult derives the distinct count from freq.
func NewFileResult(path string, freq FrequencyMap, total uint64) *FileResult {
	return &FileResult{
		Path:          path,
		Frequencies:   freq,
		TotalWords:    total,
		DistinctWords: len(freq),
	}
}

// AggregateResult is the merged view across every successfully counted file.
type AggregateResult struct {
	Frequencies   FrequencyMap
	Files         []string // sorted
	TotalWords    uint64
	DistinctWords int
	Stats         TextStats
}

// RankedEntry is one row of a ranking. Emoji is empty when no glyph matched.
type RankedEntry struct {
	Word  string `json:"word" yaml:"word"`
	Count uint64 `json:"count" yaml:"count"`
	Emoji string `json:"emoji,omitempty" yaml:"emoji,omitempty"`
}

// RankingList is ordered by count (descending for top, ascending for bottom),
// with equal counts ordered by ascending word.
type RankingList []RankedEntry

// FileReport pairs a FileResult with its rankings.
type FileReport struct {
	Result   *FileResult
	Top      RankingList
	Bottom   RankingList
	Matching int // distinct words passing the word filter
}

// AggregateReport pairs the AggregateResult with its rankings.
type AggregateReport struct {
	Result   *AggregateResult
	Top      RankingList
	Bottom   RankingList
	Matching int
}

// RunStats summarizes a pipeline run.
type RunStats struct {
	TotalFiles       int     `json:"total_files" yaml:"total_files"`
	Successful       int     `json:"successful" yaml:"successful"`
	Failed           int     `json:"failed" yaml:"failed"`
	Workers          int     `json:"workers" yaml:"workers"`
	TotalTimeSeconds float64 `json:"total_time_seconds" yaml:"total_time_seconds"`
}

// Report is everything the pipeline hands to its collaborators.
// Files keeps the input order of successfully processed files.
type Report struct {
	Files     []FileReport
	Aggregate *AggregateReport
	Errors    []FileError
	Stats     RunStats
}
