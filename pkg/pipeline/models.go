package pipeline

import (
	"github.com/dtnitsch/wordstat/models"
)

// Job is one file to count. Index is the file's position in the input list.
type Job struct {
	Index int
	Path  string
}

// Result holds the outcome of a processed job. Exactly one of File and
// Error is set once the job ran; a zero Result means it never started.
type Result struct {
	Path      string
	File      *models.FileResult
	Error     error
	ErrorType models.ErrorKind
	done      bool
}
