package storage

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dtnitsch/wordstat/models"
)

type Storage struct{}

// ReadFile reads filePath into buf, reusing its capacity, and returns the
// buffered bytes. The result aliases buf and is only valid until buf is
// reset. Failures wrap models.ErrRead.
func (s *Storage) ReadFile(filePath string, buf *bytes.Buffer) ([]byte, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRead, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRead, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", models.ErrRead, filePath)
	}

	buf.Reset()
	buf.Grow(int(info.Size()))
	if _, err := buf.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrRead, err)
	}
	return buf.Bytes(), nil
}

func (s *Storage) SaveFile(filePath string, content []byte) error {
	err := os.WriteFile(filePath, content, 0644)
	if err != nil {
		return fmt.Errorf("error saving file: %s", err)
	}

	return nil
}
