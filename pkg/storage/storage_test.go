package storage

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dtnitsch/wordstat/models"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello world"), 0644); err != nil {
		t.Fatal(err)
	}

	s := &Storage{}
	var buf bytes.Buffer
	buf.WriteString("leftover from a previous file")

	got, err := s.ReadFile(path, &buf)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(got) != "hello world" {
		t.Errorf("ReadFile() = %q, want %q", got, "hello world")
	}
}

func TestReadFileErrors(t *testing.T) {
	dir := t.TempDir()
	s := &Storage{}
	var buf bytes.Buffer

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.txt")},
		{"directory", dir},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.ReadFile(tt.path, &buf)
			if !errors.Is(err, models.ErrRead) {
				t.Errorf("ReadFile(%s) error = %v, want ErrRead", tt.path, err)
			}
		})
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	s := &Storage{}

	if err := s.SaveFile(path, []byte("report")); err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "report" {
		t.Errorf("file contents = %q, want %q", data, "report")
	}
}
