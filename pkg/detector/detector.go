package detector

import (
	"strings"
	"unicode/utf8"

	"github.com/pemistahl/lingua-go"
)

// sampleBytes bounds how much of a document is fed to the language model.
const sampleBytes = 4096

// Detector guesses the natural language of a document.
// It is safe for concurrent use by multiple workers.
type Detector struct {
	detector lingua.LanguageDetector
}

// New builds a detector restricted to languages. Fewer than two languages
// means every language lingua knows.
func New(languages ...lingua.Language) *Detector {
	builder := lingua.NewLanguageDetectorBuilder()
	var detector lingua.LanguageDetector
	if len(languages) < 2 {
		detector = builder.FromAllLanguages().Build()
	} else {
		detector = builder.FromLanguages(languages...).Build()
	}
	return &Detector{detector: detector}
}

// ParseLanguages maps names like "english,German" to lingua languages,
// skipping unknown names.
func ParseLanguages(names string) []lingua.Language {
	var languages []lingua.Language
	for _, name := range strings.Split(names, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		for _, l := range lingua.AllLanguages() {
			if strings.ToLower(l.String()) == name {
				languages = append(languages, l)
				break
			}
		}
	}
	return languages
}

// Detect returns the ISO 639-1 code ("en", "de", ...) of the language of
// text, or "" when the detector cannot decide.
func (d *Detector) Detect(text []byte) string {
	sample := text
	if len(sample) > sampleBytes {
		sample = sample[:sampleBytes]
		for len(sample) > 0 && !utf8.Valid(sample) {
			sample = sample[:len(sample)-1]
		}
	}
	if len(strings.TrimSpace(string(sample))) == 0 {
		return ""
	}

	language, ok := d.detector.DetectLanguageOf(string(sample))
	if !ok {
		return ""
	}
	return strings.ToLower(language.IsoCode639_1().String())
}
