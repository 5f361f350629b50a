package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()
	m.FilesTotal.WithLabelValues("ok").Inc()
	m.FilesTotal.WithLabelValues("ok").Inc()
	m.FilesTotal.WithLabelValues("read_error").Inc()
	m.WordsTotal.Add(42)

	if got := testutil.ToFloat64(m.FilesTotal.WithLabelValues("ok")); got != 2 {
		t.Errorf("files_total{status=ok} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.WordsTotal); got != 42 {
		t.Errorf("words_total = %v, want 42", got)
	}
}

func TestNewIsIndependent(t *testing.T) {
	a, b := New(), New()
	a.WordsTotal.Inc()
	if got := testutil.ToFloat64(b.WordsTotal); got != 0 {
		t.Errorf("second registry saw %v words, want 0", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	m := New()
	m.Workers.Set(4)
	m.WordsTotal.Add(9)

	path := filepath.Join(t.TempDir(), "wordstat.prom")
	if err := m.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"wordstat_workers 4", "wordstat_words_total 9"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q:\n%s", want, data)
		}
	}
}
