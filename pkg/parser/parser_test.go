package parser

import (
	"slices"
	"strings"
	"testing"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/tokenizer"
)

func TestHandles(t *testing.T) {
	tests := []struct {
		mode string
		path string
		want bool
	}{
		{models.HTMLModeText, "index.html", true},
		{models.HTMLModeText, "INDEX.HTM", true},
		{models.HTMLModeArticle, "a/b/page.xhtml", true},
		{models.HTMLModeText, "notes.txt", false},
		{models.HTMLModeOff, "index.html", false},
		{"", "index.html", false},
	}
	for _, tt := range tests {
		p := &Parser{Mode: tt.mode}
		if got := p.Handles(tt.path); got != tt.want {
			t.Errorf("Parser{Mode: %q}.Handles(%q) = %v, want %v", tt.mode, tt.path, got, tt.want)
		}
	}

	var nilParser *Parser
	if nilParser.Handles("index.html") {
		t.Error("nil Parser should not handle anything")
	}
}

func TestPlainText(t *testing.T) {
	doc := `<!DOCTYPE html>
<html>
<head><title>Ignored title</title><style>body { color: red }</style></head>
<body>
<h1>Cats</h1><p>The cat sat.</p><p>The <b>mat</b>ter of <i>fact</i>ly.</p>
<script>var notAWord = 1;</script>
<ul><li>one</li><li>two</li></ul>
</body>
</html>`

	p := &Parser{Mode: models.HTMLModeText}
	text, err := p.PlainText("page.html", []byte(doc))
	if err != nil {
		t.Fatalf("PlainText() error = %v", err)
	}

	got := tokenizer.Words(string(text), true)
	want := []string{"cats", "the", "cat", "sat", "the", "matter", "of", "factly", "one", "two"}
	if !slices.Equal(got, want) {
		t.Errorf("words = %q, want %q", got, want)
	}
}

func TestPlainTextEmptyDocument(t *testing.T) {
	p := &Parser{Mode: models.HTMLModeText}
	text, err := p.PlainText("empty.html", nil)
	if err != nil {
		t.Fatalf("PlainText() error = %v", err)
	}
	if words := tokenizer.Words(string(text), false); len(words) != 0 {
		t.Errorf("words = %q, want none", words)
	}
}

func TestNormalizeText(t *testing.T) {
	got := normalizeText("  first line \n\n   second   \n")
	if got != "first line second" {
		t.Errorf("normalizeText() = %q", got)
	}
}

func TestPlainTextArticle(t *testing.T) {
	body := strings.Repeat("<p>The quick brown fox jumps over the lazy dog near the quiet riverbank every single morning.</p>\n", 8)
	doc := `<html><head><title>Fox Report</title></head><body>
<nav><a href="/">Home</a><a href="/menu">Navigation</a></nav>
<article>` + body + `</article>
<footer>Copyright footer</footer>
</body></html>`

	p := &Parser{Mode: models.HTMLModeArticle}
	text, err := p.PlainText("pages/fox.html", []byte(doc))
	if err != nil {
		t.Fatalf("PlainText() error = %v", err)
	}

	words := tokenizer.Words(string(text), true)
	if !slices.Contains(words, "riverbank") {
		t.Errorf("article words = %q, want the article body", words)
	}
	if len(words) < 2 || words[0] != "fox" || words[1] != "report" {
		t.Errorf("article words = %q, want the title first", words)
	}
}
