package detector

import (
	"strings"
	"testing"

	"github.com/pemistahl/lingua-go"
)

func TestDetect(t *testing.T) {
	d := New(lingua.English, lingua.German, lingua.French)

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The quick brown fox jumps over the lazy dog while the children watch from the garden.",
			want: "en",
		},
		{
			name: "german",
			text: "Der schnelle braune Fuchs springt über den faulen Hund, während die Kinder im Garten spielen.",
			want: "de",
		},
		{
			name: "blank",
			text: "   \n\t ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.Detect([]byte(tt.text)); got != tt.want {
				t.Errorf("Detect() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDetectLongDocumentIsSampled(t *testing.T) {
	d := New(lingua.English, lingua.German)
	text := strings.Repeat("the house’s roof is on the hill and the sun is shining. ", 200)
	if got := d.Detect([]byte(text)); got != "en" {
		t.Errorf("Detect() = %q, want en", got)
	}
}

func TestParseLanguages(t *testing.T) {
	got := ParseLanguages("English, german,klingon,")
	if len(got) != 2 || got[0] != lingua.English || got[1] != lingua.German {
		t.Errorf("ParseLanguages() = %v, want [English German]", got)
	}
}
