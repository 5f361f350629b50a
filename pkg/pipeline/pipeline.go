// Package pipeline fans word counting out over a bounded worker pool, joins
// the per-file results, and drives aggregation and ranking.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/detector"
	"github.com/dtnitsch/wordstat/pkg/emoji"
	"github.com/dtnitsch/wordstat/pkg/mapreduce"
	"github.com/dtnitsch/wordstat/pkg/metrics"
	"github.com/dtnitsch/wordstat/pkg/parser"
	"github.com/dtnitsch/wordstat/pkg/storage"
)

// Pipeline runs one configuration over any number of file lists.
type Pipeline struct {
	cfg      models.Config
	filter   *regexp.Regexp
	logger   *slog.Logger
	metrics  *metrics.Metrics
	detector *detector.Detector
	parser   *parser.Parser
	storage  *storage.Storage
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger; the default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger.With("component", "pipeline") }
}

// WithMetrics records per-file and per-run metrics into m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// WithLanguageDetector tags every FileResult with its detected language.
func WithLanguageDetector(d *detector.Detector) Option {
	return func(p *Pipeline) { p.detector = d }
}

// New validates cfg and builds a Pipeline. The word filter, if any, is
// compiled case-insensitively.
func New(cfg models.Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	p := &Pipeline{
		cfg:     cfg,
		logger:  slog.Default().With("component", "pipeline"),
		parser:  &parser.Parser{Mode: cfg.HTMLMode},
		storage: &storage.Storage{},
	}
	if cfg.WordFilter != "" {
		re, err := regexp.Compile("(?i)" + cfg.WordFilter)
		if err != nil {
			return nil, fmt.Errorf("invalid word filter %q: %w", cfg.WordFilter, err)
		}
		p.filter = re
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Run counts every file and returns the report.
//
// Per-file failures end up in Report.Errors and never stop the run. When ctx
// is cancelled no further files are started; files already being read finish,
// and files never started are reported as cancelled. The only error Run
// returns is models.ErrAllocation, in which case there is no report.
func (p *Pipeline) Run(ctx context.Context, files []string) (*models.Report, error) {
	startTime := time.Now()
	workers := min(p.cfg.Workers(), max(len(files), 1))
	if p.metrics != nil {
		p.metrics.Workers.Set(float64(workers))
	}

	p.logger.Info("Starting concurrent count phase", "file_count", len(files), "workers", workers)
	results := make([]Result, len(files))
	jobs := make(chan Job)

	g, gctx := errgroup.WithContext(ctx)
	for w := 1; w <= workers; w++ {
		g.Go(func() error {
			return p.worker(gctx, w, jobs, results)
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i, path := range files {
			select {
			case <-gctx.Done():
				return nil
			case jobs <- Job{Index: i, Path: path}:
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		p.logger.Error("Run aborted", "error", err)
		return nil, err
	}
	p.logger.Info("All count workers finished")

	report := &models.Report{
		Files: make([]models.FileReport, 0, len(files)),
		Stats: models.RunStats{TotalFiles: len(files), Workers: workers},
	}
	var completed []*models.FileResult
	for i, r := range results {
		switch {
		case !r.done:
			report.Errors = append(report.Errors, models.FileError{
				Path: files[i],
				Kind: models.ErrorKindCancelled,
				Err:  models.ErrCancelled,
			})
			if p.metrics != nil {
				p.metrics.FilesTotal.WithLabelValues(string(models.ErrorKindCancelled)).Inc()
			}
		case r.Error != nil:
			report.Errors = append(report.Errors, models.FileError{Path: r.Path, Kind: r.ErrorType, Err: r.Error})
		default:
			completed = append(completed, r.File)
			report.Files = append(report.Files, p.fileReport(r.File))
		}
	}
	report.Stats.Successful = len(completed)
	report.Stats.Failed = len(report.Errors)

	if p.cfg.CombineAll {
		p.logger.Info("Starting reduce phase", "files", len(completed))
		agg := mapreduce.Reduce(completed)
		if err := p.checkMemory(); err != nil {
			return nil, err
		}
		report.Aggregate = p.aggregateReport(agg)
		if p.metrics != nil {
			p.metrics.DistinctWords.Set(float64(agg.DistinctWords))
		}
	}
	if err := p.checkMemory(); err != nil {
		return nil, err
	}

	report.Stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	if p.metrics != nil {
		p.metrics.RunDurationSeconds.Set(report.Stats.TotalTimeSeconds)
	}
	p.logger.Info("Run complete", "successful", report.Stats.Successful, "failed", report.Stats.Failed, "seconds", report.Stats.TotalTimeSeconds)
	return report, nil
}

func (p *Pipeline) fileReport(file *models.FileResult) models.FileReport {
	r := p.rank(file.Frequencies)
	return models.FileReport{Result: file, Top: r.Top, Bottom: r.Bottom, Matching: r.Matching}
}

func (p *Pipeline) aggregateReport(agg *models.AggregateResult) *models.AggregateReport {
	r := p.rank(agg.Frequencies)
	return &models.AggregateReport{Result: agg, Top: r.Top, Bottom: r.Bottom, Matching: r.Matching}
}

// rank selects the configured top and bottom entries and, when enabled,
// decorates only those entries with emoji.
func (p *Pipeline) rank(counts models.FrequencyMap) mapreduce.Ranking {
	var keep func(string) bool
	if p.filter != nil {
		keep = p.filter.MatchString
	}
	r := mapreduce.Rank(counts, p.cfg.TopWords, p.cfg.BottomWords, keep)
	if p.cfg.ShowEmojis {
		r.Top = emoji.Annotate(r.Top)
		r.Bottom = emoji.Annotate(r.Bottom)
	}
	return r
}
