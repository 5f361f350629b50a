package manifest

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/wordstat/models"
)

func sampleReport() *models.Report {
	cat := &models.FileResult{
		Path:          "docs/cat.txt",
		Frequencies:   models.FrequencyMap{"the": 3, "cat": 2, "sat": 1},
		TotalWords:    6,
		DistinctWords: 3,
		Stats:         models.TextStats{Characters: 23, Sentences: 1, Paragraphs: 1},
		Language:      "en",
	}
	empty := &models.FileResult{Path: "docs/empty.txt", Frequencies: models.FrequencyMap{}}
	agg := &models.AggregateResult{
		Frequencies:   cat.Frequencies,
		Files:         []string{"docs/cat.txt", "docs/empty.txt"},
		TotalWords:    6,
		DistinctWords: 3,
		Stats:         cat.Stats,
	}
	return &models.Report{
		Files: []models.FileReport{
			{
				Result:   cat,
				Top:      models.RankingList{{Word: "the", Count: 3}, {Word: "cat", Count: 2, Emoji: "🐱"}},
				Bottom:   models.RankingList{{Word: "sat", Count: 1}},
				Matching: 3,
			},
			{Result: empty},
		},
		Aggregate: &models.AggregateReport{
			Result:   agg,
			Top:      models.RankingList{{Word: "the", Count: 3}, {Word: "cat", Count: 2}, {Word: "sat", Count: 1}},
			Bottom:   models.RankingList{{Word: "sat", Count: 1}},
			Matching: 3,
		},
		Errors: []models.FileError{
			models.NewFileError("docs/gone.txt", fmt.Errorf("%w: no such file", models.ErrRead)),
		},
		Stats: models.RunStats{TotalFiles: 3, Successful: 2, Failed: 1, Workers: 2},
	}
}

func TestGenerateText(t *testing.T) {
	out, err := Generate(sampleReport(), Options{Format: models.FormatText, TopWords: 2})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"📁 File: docs/cat.txt",
		"🌐 Language: en",
		"🔢 Word count: 6",
		"🔢 Unique words: 3",
		"📈 Top words:\n  3: the\n  2: cat 🐱\n",
		"📉 Bottom words:\n  1: sat\n",
		"📁 File: docs/empty.txt\n⚠️ No words in file",
		"📢 Summary of 2 files",
		"docs/gone.txt [read_error]",
		"2/3 files counted",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("GenerateText() missing %q in:\n%s", want, text)
		}
	}

	// The aggregate top list already covers all three words.
	summary := text[strings.Index(text, "📢 Summary"):]
	if strings.Contains(summary, "Bottom words") {
		t.Errorf("aggregate shows bottom words although top covers every word:\n%s", summary)
	}
}

func TestGenerateTextHideEmptyAndFilter(t *testing.T) {
	report := sampleReport()
	report.Files[0].Matching = 0
	out := string(GenerateText(report, Options{HideEmpty: true, WordFilter: "dog", TopWords: 2}))

	if strings.Contains(out, "empty.txt") {
		t.Errorf("hide_empty still printed the empty file:\n%s", out)
	}
	if !strings.Contains(out, "No words in file matching filter") {
		t.Errorf("missing filter warning:\n%s", out)
	}
	if !strings.Contains(out, "Top words (filtered):") {
		t.Errorf("aggregate should be labelled as filtered:\n%s", out)
	}
}

func TestGenerateTextBottomHiddenWhenTopIsAll(t *testing.T) {
	report := sampleReport()
	out := string(GenerateText(report, Options{TopWords: 0}))
	if strings.Contains(out, "Bottom words") {
		t.Errorf("top=0 should never print bottom words:\n%s", out)
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := Generate(sampleReport(), Options{Format: models.FormatJSON, TopWords: 2, HideEmpty: true})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	var got SummaryManifest
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	if len(got.Results) != 1 || got.Results[0].Path != "docs/cat.txt" {
		t.Fatalf("Results = %+v, want only docs/cat.txt", got.Results)
	}
	if got.Results[0].TopWords[1].Emoji != "🐱" {
		t.Errorf("TopWords[1] = %+v, want emoji", got.Results[0].TopWords[1])
	}
	if len(got.Results[0].BottomWords) != 1 {
		t.Errorf("BottomWords = %v, want one entry", got.Results[0].BottomWords)
	}
	if got.Aggregate == nil || got.Aggregate.FileCount != 2 || got.Aggregate.BottomWords != nil {
		t.Errorf("Aggregate = %+v", got.Aggregate)
	}
	if len(got.Errors) != 1 || got.Errors[0].ErrorType != "read_error" {
		t.Errorf("Errors = %+v", got.Errors)
	}
}

func TestBuildYAML(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	m := Build(sampleReport(), Options{TopWords: 2}, now)
	if m.GeneratedAt != "2024-01-02T03:04:05Z" {
		t.Errorf("GeneratedAt = %s", m.GeneratedAt)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	for _, want := range []string{"total_words: 6", "word: cat", "error_type: read_error"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("yaml output missing %q:\n%s", want, data)
		}
	}
}

func TestGenerateUnknownFormat(t *testing.T) {
	if _, err := Generate(sampleReport(), Options{Format: "xml"}); err == nil {
		t.Error("Generate(xml) error = nil, want error")
	}
}
