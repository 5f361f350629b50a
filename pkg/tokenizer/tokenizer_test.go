package tokenizer

import (
	"errors"
	"slices"
	"testing"

	"github.com/dtnitsch/wordstat/models"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		lowercase bool
		want      []string
	}{
		{
			name: "empty",
			text: "",
			want: nil,
		},
		{
			name: "whitespace and punctuation only",
			text: "  ,.;  -- !? \n\t",
			want: nil,
		},
		{
			name: "simple sentence",
			text: "the cat sat on the mat",
			want: []string{"the", "cat", "sat", "on", "the", "mat"},
		},
		{
			name: "punctuation dropped",
			text: "Hello, world! (Again.)",
			want: []string{"Hello", "world", "Again"},
		},
		{
			name: "apostrophe stays inside word",
			text: "can't stop",
			want: []string{"can't", "stop"},
		},
		{
			name:      "lowercase ascii",
			text:      "The CAT sat",
			lowercase: true,
			want:      []string{"the", "cat", "sat"},
		},
		{
			name:      "lowercase unicode",
			text:      "Naïve CAFÉ",
			lowercase: true,
			want:      []string{"naïve", "café"},
		},
		{
			name:      "lowercase keeps spelling",
			text:      "STRASSE Straße",
			lowercase: true,
			want:      []string{"strasse", "straße"},
		},
		{
			name: "case preserved without lowercase",
			text: "Naïve CAFÉ",
			want: []string{"Naïve", "CAFÉ"},
		},
		{
			name: "numbers are words",
			text: "route 66 and 2024",
			want: []string{"route", "66", "and", "2024"},
		},
		{
			name: "newlines separate words",
			text: "multiple\tspaces\n\n and\nlines",
			want: []string{"multiple", "spaces", "and", "lines"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Words(tt.text, tt.lowercase)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Words(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestTokensAllIsRestartable(t *testing.T) {
	tokens := New([]byte("one two three"), false, nil)

	var first, second []string
	for w := range tokens.All() {
		first = append(first, string(w))
	}
	for w := range tokens.All() {
		second = append(second, string(w))
	}

	if !slices.Equal(first, second) {
		t.Errorf("second pass = %q, want %q", second, first)
	}
	if len(first) != 3 {
		t.Errorf("len(first) = %d, want 3", len(first))
	}
}

func TestTokensAllStopsEarly(t *testing.T) {
	tokens := New([]byte("a b c d"), false, nil)
	n := 0
	for range tokens.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("n = %d, want 2", n)
	}
}

func TestScratchReusedAcrossDocuments(t *testing.T) {
	s := NewScratch()
	first := slices.Collect(New([]byte("ALPHA Beta"), true, s).Strings())
	second := slices.Collect(New([]byte("GAMMA"), true, s).Strings())

	if !slices.Equal(first, []string{"alpha", "beta"}) {
		t.Errorf("first = %q", first)
	}
	if !slices.Equal(second, []string{"gamma"}) {
		t.Errorf("second = %q", second)
	}
}

func TestDecode(t *testing.T) {
	t.Run("plain utf-8", func(t *testing.T) {
		got, err := Decode([]byte("héllo"))
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if string(got) != "héllo" {
			t.Errorf("Decode() = %q, want %q", got, "héllo")
		}
	})

	t.Run("utf-8 bom stripped", func(t *testing.T) {
		got, err := Decode([]byte("\xEF\xBB\xBFword"))
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if string(got) != "word" {
			t.Errorf("Decode() = %q, want %q", got, "word")
		}
	})

	t.Run("utf-16 little endian with bom", func(t *testing.T) {
		raw := []byte{0xFF, 0xFE, 'h', 0, 'i', 0}
		got, err := Decode(raw)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if string(got) != "hi" {
			t.Errorf("Decode() = %q, want %q", got, "hi")
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		_, err := Decode([]byte{'o', 'k', 0xC3, 0x28})
		if !errors.Is(err, models.ErrEncoding) {
			t.Errorf("Decode() error = %v, want ErrEncoding", err)
		}
	})
}
