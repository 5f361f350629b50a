package count

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordstat/internal/common"
	"github.com/dtnitsch/wordstat/models"
	"github.com/dtnitsch/wordstat/pkg/db"
	"github.com/dtnitsch/wordstat/pkg/detector"
	"github.com/dtnitsch/wordstat/pkg/manifest"
	"github.com/dtnitsch/wordstat/pkg/metrics"
	"github.com/dtnitsch/wordstat/pkg/pipeline"
	"github.com/dtnitsch/wordstat/pkg/storage"
	"github.com/dtnitsch/wordstat/pkg/walker"
)

// CountAction counts the words of every file under the given paths and
// writes the report. Exit codes: 1 for usage errors, 2 for fatal errors.
func CountAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}
	applyFlags(c, &cfg)

	logger := common.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format, c.Bool("quiet"))
	slog.SetDefault(logger)

	if c.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: No paths provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  wordstat count notes.txt docs/")
		fmt.Fprintln(os.Stderr, "  wordstat count --recursive --combine --top 20 corpus/")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: wordstat count --help")
		return cli.Exit("", 1)
	}

	var opts []pipeline.Option
	opts = append(opts, pipeline.WithLogger(logger))

	var m *metrics.Metrics
	if cfg.Output.MetricsFile != "" {
		m = metrics.New()
		opts = append(opts, pipeline.WithMetrics(m))
	}
	if cfg.DetectLanguage {
		opts = append(opts, pipeline.WithLanguageDetector(detector.New(detector.ParseLanguages(cfg.Languages)...)))
	}

	p, err := pipeline.New(cfg, opts...)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
	}

	files, walkErrs := walker.Collect(c.Args().Slice(), walker.Options{
		Recursive:      cfg.Recursive,
		FollowSymlinks: cfg.FollowSymlinks,
	}, logger)
	logger.Info("Collected input files", "files", len(files), "skipped", len(walkErrs))

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := p.Run(ctx, files)
	if err != nil {
		if errors.Is(err, models.ErrAllocation) {
			logger.Error("Run exceeded memory limit", "max_memory", cfg.MaxMemory, "error", err)
		}
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}
	addDiscoveryErrors(report, walkErrs)

	if err := writeReport(report, cfg, logger); err != nil {
		logger.Error("failed to write report", "error", err)
		return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
	}

	if cfg.Output.Database != "" {
		if err := saveToDB(report, cfg, logger); err != nil {
			logger.Error("failed to store run", "db", cfg.Output.Database, "error", err)
			return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
		}
	}

	if m != nil {
		if err := m.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			logger.Error("failed to write metrics", "path", cfg.Output.MetricsFile, "error", err)
			return cli.Exit(fmt.Sprintf("Error: %v", err), 2)
		}
		logger.Info("Metrics written", "path", cfg.Output.MetricsFile)
	}

	return nil
}

// addDiscoveryErrors puts files that could not even be listed in front of
// the per-file errors, so the report accounts for every path given.
func addDiscoveryErrors(report *models.Report, errs []models.FileError) {
	if len(errs) == 0 {
		return
	}
	report.Errors = append(append([]models.FileError{}, errs...), report.Errors...)
	report.Stats.TotalFiles += len(errs)
	report.Stats.Failed += len(errs)
}

func writeReport(report *models.Report, cfg models.Config, logger *slog.Logger) error {
	data, err := manifest.Generate(report, manifest.Options{
		Format:     cfg.Output.Format,
		HideEmpty:  cfg.HideEmpty,
		WordFilter: cfg.WordFilter,
		TopWords:   cfg.TopWords,
	})
	if err != nil {
		return err
	}

	if cfg.Output.Outfile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	s := &storage.Storage{}
	if err := s.SaveFile(cfg.Output.Outfile, data); err != nil {
		return err
	}
	logger.Info("Report written", "path", cfg.Output.Outfile, "format", cfg.Output.Format)
	return nil
}

func saveToDB(report *models.Report, cfg models.Config, logger *slog.Logger) error {
	database, err := db.Open(cfg.Output.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	runID, err := database.SaveReport(report, cfg)
	if err != nil {
		return err
	}
	logger.Info("Run stored", "db", database.Path(), "run_id", runID)
	return nil
}
