package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dtnitsch/wordstat/models"
	"github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Parser turns HTML documents into plain text before they are tokenized.
// Mode is one of models.HTMLModeOff, HTMLModeText or HTMLModeArticle.
type Parser struct {
	Mode string
}

// skipTags never contribute words.
var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {}, "template": {}, "head": {},
}

var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "br": {}, "li": {}, "ul": {}, "ol": {}, "table": {},
	"tr": {}, "td": {}, "th": {}, "h1": {}, "h2": {}, "h3": {}, "h4": {},
	"h5": {}, "h6": {}, "pre": {}, "blockquote": {}, "section": {},
	"article": {}, "header": {}, "footer": {}, "nav": {}, "title": {},
}

// Handles reports whether path should go through the parser.
func (p *Parser) Handles(path string) bool {
	if p == nil || p.Mode == "" || p.Mode == models.HTMLModeOff {
		return false
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

// PlainText extracts the readable text of an HTML document. In article mode
// go-readability first isolates the main content and its title is kept as
// the first line. Failures wrap models.ErrEncoding.
func (p *Parser) PlainText(path string, doc []byte) ([]byte, error) {
	source := doc
	var title string

	if p.Mode == models.HTMLModeArticle {
		fileURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
		rp := readability.NewParser()
		article, err := rp.Parse(bytes.NewReader(doc), fileURL)
		if err != nil {
			return nil, fmt.Errorf("%w: readability: %v", models.ErrEncoding, err)
		}
		source = []byte(article.Content)
		title = normalizeText(article.Title)
	}

	d, err := goquery.NewDocumentFromReader(bytes.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("%w: html: %v", models.ErrEncoding, err)
	}

	var b bytes.Buffer
	if title != "" {
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	for _, n := range d.Nodes {
		writeText(&b, n)
	}
	return b.Bytes(), nil
}

// writeText appends the text under n. Block elements are surrounded by
// newlines so adjacent paragraphs never glue their words together, while
// inline markup inside a word leaves it intact.
func writeText(b *bytes.Buffer, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if _, skip := skipTags[n.Data]; skip {
			return
		}
	}

	_, block := blockTags[n.Data]
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c)
	}
	if block {
		b.WriteByte('\n')
	}
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
