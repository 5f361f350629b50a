package models

import (
	"errors"
	"fmt"
)

var (
	ErrRead       = errors.New("file unreadable")
	ErrEncoding   = errors.New("content is not valid text")
	ErrAllocation = errors.New("memory limit exceeded")
	ErrCancelled  = errors.New("run cancelled before file was processed")
)

// ErrorKind classifies per-file failures.
type ErrorKind string

const (
	ErrorKindRead      ErrorKind = "read_error"
	ErrorKindEncoding  ErrorKind = "encoding_error"
	ErrorKindCancelled ErrorKind = "cancelled"
)

// FileError records a file that could not be processed.
type FileError struct {
	Path string
	Kind ErrorKind
	Err  error
}

// NewFileError classifies err by the sentinel it wraps.
func NewFileError(path string, err error) FileError {
	return FileError{Path: path, Kind: KindOf(err), Err: err}
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// KindOf maps an error to its ErrorKind. Anything that is not an encoding
// or cancellation failure is treated as a read failure.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrEncoding):
		return ErrorKindEncoding
	case errors.Is(err, ErrCancelled):
		return ErrorKindCancelled
	default:
		return ErrorKindRead
	}
}
