// Package walker expands command-line paths into the ordered list of files
// to count, applying the recursion and symlink policy.
package walker

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dtnitsch/wordstat/models"
)

// Options controls directory expansion.
type Options struct {
	Recursive      bool
	FollowSymlinks bool
}

type walker struct {
	opts    Options
	logger  *slog.Logger
	files   []string
	seen    map[string]struct{} // files already listed
	visited map[string]struct{} // resolved directories already walked
	errs    []models.FileError
}

// Collect expands paths in order. Files are kept as given; directories
// contribute their regular files sorted by name, descending into
// subdirectories only when Recursive is set. Symlinks below a directory are
// skipped unless FollowSymlinks is set. Paths that cannot be read are
// returned as read errors rather than aborting the walk.
func Collect(paths []string, opts Options, logger *slog.Logger) ([]string, []models.FileError) {
	if logger == nil {
		logger = slog.Default()
	}
	w := &walker{
		opts:    opts,
		logger:  logger.With("component", "walker"),
		seen:    make(map[string]struct{}),
		visited: make(map[string]struct{}),
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			w.fail(p, err)
			continue
		}
		if info.IsDir() {
			w.walkDir(p)
			continue
		}
		w.add(p)
	}
	return w.files, w.errs
}

func (w *walker) walkDir(dir string) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		w.fail(dir, err)
		return
	}
	if _, ok := w.visited[resolved]; ok {
		w.logger.Debug("Skipping directory already walked", "path", dir)
		return
	}
	w.visited[resolved] = struct{}{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		w.fail(dir, err)
		return
	}

	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		mode := e.Type()

		if mode&fs.ModeSymlink != 0 {
			if !w.opts.FollowSymlinks {
				continue
			}
			info, err := os.Stat(p)
			if err != nil {
				w.fail(p, err)
				continue
			}
			mode = info.Mode().Type()
		}

		switch {
		case mode.IsDir():
			if w.opts.Recursive {
				w.walkDir(p)
			}
		case mode.IsRegular():
			w.add(p)
		}
	}
}

func (w *walker) add(p string) {
	if _, ok := w.seen[p]; ok {
		return
	}
	w.seen[p] = struct{}{}
	w.files = append(w.files, p)
}

func (w *walker) fail(p string, err error) {
	w.logger.Warn("Skipping unreadable path", "path", p, "error", err)
	w.errs = append(w.errs, models.FileError{
		Path: p,
		Kind: models.ErrorKindRead,
		Err:  fmt.Errorf("%w: %s", models.ErrRead, err),
	})
}
