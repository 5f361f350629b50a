package emoji

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteLookups(t *testing.T) {
	var buf bytes.Buffer
	writeLookups(&buf, []string{"Cat", "notaword"})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("writeLookups() = %q, want two lines", buf.String())
	}
	if !strings.HasPrefix(lines[0], "Cat: ") || lines[0] == "Cat: -" {
		t.Errorf("writeLookups() line 1 = %q, want a glyph for Cat", lines[0])
	}
	if lines[1] != "notaword: -" {
		t.Errorf("writeLookups() line 2 = %q, want %q", lines[1], "notaword: -")
	}
}
