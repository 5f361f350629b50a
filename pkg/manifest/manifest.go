package manifest

import "github.com/dtnitsch/wordstat/models"

// SummaryManifest is the structured (JSON/YAML) form of a run report.
// It carries the rankings and statistics of every file without the full
// frequency maps, so it stays small for large corpora.
type SummaryManifest struct {
	GeneratedAt string          `json:"generated_at" yaml:"generated_at"`
	Stats       models.RunStats `json:"stats" yaml:"stats"`
	WordFilter  string          `json:"word_filter,omitempty" yaml:"word_filter,omitempty"`
	Results     []FileSummary   `json:"results" yaml:"results"`
	Aggregate   *FileSummary    `json:"aggregate,omitempty" yaml:"aggregate,omitempty"`
	Errors      []ErrorSummary  `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// FileSummary describes one counted file, or the aggregate when FileCount
// is set.
type FileSummary struct {
	Path          string             `json:"path,omitempty" yaml:"path,omitempty"`
	FileCount     int                `json:"file_count,omitempty" yaml:"file_count,omitempty"`
	Language      string             `json:"language,omitempty" yaml:"language,omitempty"`
	SizeBytes     int64              `json:"size_bytes,omitempty" yaml:"size_bytes,omitempty"`
	ContentHash   string             `json:"content_hash,omitempty" yaml:"content_hash,omitempty"`
	TotalWords    uint64             `json:"total_words" yaml:"total_words"`
	DistinctWords int                `json:"distinct_words" yaml:"distinct_words"`
	Stats         models.TextStats   `json:"stats" yaml:"stats"`
	Matching      int                `json:"matching_words" yaml:"matching_words"`
	TopWords      models.RankingList `json:"top_words" yaml:"top_words"`
	BottomWords   models.RankingList `json:"bottom_words,omitempty" yaml:"bottom_words,omitempty"`
}

// ErrorSummary is a file that could not be counted.
type ErrorSummary struct {
	Path         string `json:"path" yaml:"path"`
	ErrorType    string `json:"error_type" yaml:"error_type"`
	ErrorMessage string `json:"error_message" yaml:"error_message"`
}
