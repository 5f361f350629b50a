package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordstat/models"
)

// Options controls how a report is rendered.
type Options struct {
	Format     string // models.FormatText, FormatJSON or FormatYAML
	HideEmpty  bool   // skip files without words
	WordFilter string // shown in the output, the filtering itself happened in the pipeline
	TopWords   int    // configured top N, 0 = all
}

// Generate renders report in opts.Format.
func Generate(report *models.Report, opts Options) ([]byte, error) {
	switch opts.Format {
	case "", models.FormatText:
		return GenerateText(report, opts), nil
	case models.FormatJSON:
		data, err := json.MarshalIndent(Build(report, opts, time.Now()), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return append(data, '\n'), nil
	case models.FormatYAML:
		data, err := yaml.Marshal(Build(report, opts, time.Now()))
		if err != nil {
			return nil, fmt.Errorf("error marshalling manifest: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", opts.Format)
	}
}

// Build converts report into its structured manifest.
func Build(report *models.Report, opts Options, now time.Time) SummaryManifest {
	manifest := SummaryManifest{
		GeneratedAt: now.Format(time.RFC3339),
		Stats:       report.Stats,
		WordFilter:  opts.WordFilter,
		Results:     make([]FileSummary, 0, len(report.Files)),
	}

	for _, fr := range report.Files {
		if opts.HideEmpty && fr.Result.TotalWords == 0 {
			continue
		}
		summary := FileSummary{
			Path:          fr.Result.Path,
			Language:      fr.Result.Language,
			SizeBytes:     fr.Result.SizeBytes,
			ContentHash:   fr.Result.ContentHash,
			TotalWords:    fr.Result.TotalWords,
			DistinctWords: fr.Result.DistinctWords,
			Stats:         fr.Result.Stats,
			Matching:      fr.Matching,
			TopWords:      fr.Top,
		}
		if showBottom(fr.Top, fr.Bottom, fr.Matching, opts.TopWords) {
			summary.BottomWords = fr.Bottom
		}
		manifest.Results = append(manifest.Results, summary)
	}

	if agg := report.Aggregate; agg != nil {
		summary := &FileSummary{
			FileCount:     len(agg.Result.Files),
			TotalWords:    agg.Result.TotalWords,
			DistinctWords: agg.Result.DistinctWords,
			Stats:         agg.Result.Stats,
			Matching:      agg.Matching,
			TopWords:      agg.Top,
		}
		if showBottom(agg.Top, agg.Bottom, agg.Matching, opts.TopWords) {
			summary.BottomWords = agg.Bottom
		}
		manifest.Aggregate = summary
	}

	for _, fe := range report.Errors {
		manifest.Errors = append(manifest.Errors, ErrorSummary{
			Path:         fe.Path,
			ErrorType:    string(fe.Kind),
			ErrorMessage: fe.Err.Error(),
		})
	}
	return manifest
}

// showBottom reports whether the bottom list adds anything: it is omitted
// when every word is already listed under the top words.
func showBottom(top, bottom models.RankingList, matching, topWords int) bool {
	return len(bottom) > 0 && topWords != 0 && len(top) < matching
}

// GenerateText renders the human readable report.
func GenerateText(report *models.Report, opts Options) []byte {
	var b bytes.Buffer
	for _, fr := range report.Files {
		if opts.HideEmpty && fr.Result.TotalWords == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n📁 File: %s\n", fr.Result.Path)
		if fr.Result.Language != "" {
			fmt.Fprintf(&b, "🌐 Language: %s\n", fr.Result.Language)
		}
		writeAnalysis(&b, fr.Result.TotalWords, fr.Result.DistinctWords, fr.Result.Stats, fr.Matching, fr.Top, fr.Bottom, opts)
	}

	if agg := report.Aggregate; agg != nil {
		fmt.Fprintf(&b, "\n📢 Summary of %d files\n", len(agg.Result.Files))
		writeAnalysis(&b, agg.Result.TotalWords, agg.Result.DistinctWords, agg.Result.Stats, agg.Matching, agg.Top, agg.Bottom, opts)
	}

	if len(report.Errors) > 0 {
		fmt.Fprintf(&b, "\n⚠️ Errors:\n")
		for _, fe := range report.Errors {
			fmt.Fprintf(&b, "  %s [%s]: %v\n", fe.Path, fe.Kind, fe.Err)
		}
	}

	fmt.Fprintf(&b, "\n✅ %d/%d files counted in %.2fs with %d workers\n",
		report.Stats.Successful, report.Stats.TotalFiles, report.Stats.TotalTimeSeconds, report.Stats.Workers)
	return b.Bytes()
}

func writeAnalysis(b *bytes.Buffer, total uint64, distinct int, stats models.TextStats, matching int, top, bottom models.RankingList, opts Options) {
	if total == 0 {
		b.WriteString("⚠️ No words in file\n")
		return
	}
	fmt.Fprintf(b, "🔢 Word count: %d\n", total)
	fmt.Fprintf(b, "🔢 Sentence count: %d\n", stats.Sentences)
	fmt.Fprintf(b, "🔢 Character count: %d\n", stats.Characters)
	fmt.Fprintf(b, "🔢 Paragraph count: %d\n", stats.Paragraphs)
	fmt.Fprintf(b, "🔢 Unique words: %d\n", distinct)
	fmt.Fprintf(b, "📊 Word frequency mean: %.2f\n", stats.Distribution.Mean)
	fmt.Fprintf(b, "📊 Word frequency standard deviation: %.2f\n", stats.Distribution.StdDev)
	fmt.Fprintf(b, "📊 Word frequency median: %.1f\n", stats.Distribution.Median)
	fmt.Fprintf(b, "📊 Word frequency mode: %.1f\n", stats.Distribution.Mode)

	suffix := ":"
	if opts.WordFilter != "" {
		if matching == 0 {
			b.WriteString("⚠️ No words in file matching filter\n")
			return
		}
		fmt.Fprintf(b, "🔎 Words matching filter: %d\n", matching)
		suffix = " (filtered):"
	}

	fmt.Fprintf(b, "📈 Top words%s\n", suffix)
	writeList(b, top)
	if showBottom(top, bottom, matching, opts.TopWords) {
		fmt.Fprintf(b, "📉 Bottom words%s\n", suffix)
		writeList(b, bottom)
	}
}

// writeList prints one entry per line with counts right-aligned.
func writeList(b *bytes.Buffer, list models.RankingList) {
	width := 0
	for _, e := range list {
		width = max(width, len(strconv.FormatUint(e.Count, 10)))
	}
	for _, e := range list {
		fmt.Fprintf(b, "  %*d: %s", width, e.Count, e.Word)
		if e.Emoji != "" {
			fmt.Fprintf(b, " %s", e.Emoji)
		}
		b.WriteByte('\n')
	}
}
