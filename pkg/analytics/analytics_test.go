package analytics

import (
	"math"
	"testing"

	"github.com/dtnitsch/wordstat/models"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"One sentence.", 1},
		{"First one. Second one! Third?", 3},
	}
	for _, tt := range tests {
		if got := Sentences([]byte(tt.text)); got != tt.want {
			t.Errorf("Sentences(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestParagraphs(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"single line", 1},
		{"first\nstill first", 1},
		{"first\n\nsecond", 2},
		{"first\r\n\r\nsecond\n\n\n\nthird\n", 3},
	}
	for _, tt := range tests {
		if got := Paragraphs([]byte(tt.text)); got != tt.want {
			t.Errorf("Paragraphs(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestDistribute(t *testing.T) {
	got := Distribute(models.FrequencyMap{"a": 3, "b": 1, "c": 3, "d": 1, "e": 2})

	if got.Mean != 2 {
		t.Errorf("Mean = %v, want 2", got.Mean)
	}
	if want := math.Sqrt(0.8); math.Abs(got.StdDev-want) > 1e-9 {
		t.Errorf("StdDev = %v, want %v", got.StdDev, want)
	}
	if got.Median != 2 {
		t.Errorf("Median = %v, want 2", got.Median)
	}
	// 1 and 3 both occur twice.
	if got.Mode != 2 {
		t.Errorf("Mode = %v, want 2", got.Mode)
	}
}

func TestDistributeEvenMedian(t *testing.T) {
	got := Distribute(models.FrequencyMap{"a": 1, "b": 4})
	if got.Median != 2.5 {
		t.Errorf("Median = %v, want 2.5", got.Median)
	}
}

func TestDistributeEmpty(t *testing.T) {
	if got := Distribute(nil); got != (models.Distribution{}) {
		t.Errorf("Distribute(nil) = %+v, want zero value", got)
	}
}

func TestTextStatsCharacters(t *testing.T) {
	stats := TextStats([]byte("héllo 👍🏽"), nil)
	// h é l l o space 👍🏽 (one cluster)
	if stats.Characters != 7 {
		t.Errorf("Characters = %d, want 7", stats.Characters)
	}
}
