package count

import (
	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/wordstat/models"
)

// Flags returns the flags of the count command. Every flag can also be set
// through a WORDSTAT_* environment variable or the YAML config file.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Usage: "YAML config file", EnvVars: []string{"WORDSTAT_CONFIG"}},
		&cli.BoolFlag{Name: "lowercase", Aliases: []string{"l"}, Usage: "Lowercase words before counting", EnvVars: []string{"WORDSTAT_LOWERCASE"}},
		&cli.IntFlag{Name: "top", Aliases: []string{"t"}, Value: 10, Usage: "Number of most frequent words to show (0 = all)", EnvVars: []string{"WORDSTAT_TOP"}},
		&cli.IntFlag{Name: "bottom", Aliases: []string{"b"}, Value: 3, Usage: "Number of least frequent words to show", EnvVars: []string{"WORDSTAT_BOTTOM"}},
		&cli.BoolFlag{Name: "emojis", Aliases: []string{"e"}, Usage: "Show matching emojis for ranked words", EnvVars: []string{"WORDSTAT_EMOJIS"}},
		&cli.BoolFlag{Name: "combine", Aliases: []string{"c"}, Usage: "Also report the combined counts of all files", EnvVars: []string{"WORDSTAT_COMBINE"}},
		&cli.StringFlag{Name: "word-filter", Aliases: []string{"w"}, Usage: "Only rank words matching this case-insensitive regex", EnvVars: []string{"WORDSTAT_WORD_FILTER"}},
		&cli.IntFlag{Name: "workers", Aliases: []string{"j"}, Usage: "Number of concurrent workers (0 = number of CPUs)", EnvVars: []string{"WORDSTAT_WORKERS"}},
		&cli.BoolFlag{Name: "recursive", Aliases: []string{"r"}, Usage: "Iterate through subdirectories", EnvVars: []string{"WORDSTAT_RECURSIVE"}},
		&cli.BoolFlag{Name: "follow-symlinks", Aliases: []string{"f"}, Usage: "Follow symlinks", EnvVars: []string{"WORDSTAT_FOLLOW_SYMLINKS"}},
		&cli.BoolFlag{Name: "hide-empty", Usage: "Do not report files without words", EnvVars: []string{"WORDSTAT_HIDE_EMPTY"}},
		&cli.StringFlag{Name: "html", Value: models.HTMLModeOff, Usage: "HTML handling for .html files: off, text or article", EnvVars: []string{"WORDSTAT_HTML"}},
		&cli.BoolFlag{Name: "detect-language", Usage: "Detect the language of every file", EnvVars: []string{"WORDSTAT_DETECT_LANGUAGE"}},
		&cli.StringFlag{Name: "languages", Usage: "Comma separated languages to detect between (default all)", EnvVars: []string{"WORDSTAT_LANGUAGES"}},
		&cli.StringFlag{Name: "max-memory", Usage: "Abort when the heap grows past this size (e.g. 512MiB or 2GB)", EnvVars: []string{"WORDSTAT_MAX_MEMORY"}},
		&cli.StringFlag{Name: "format", Value: models.FormatText, Usage: "Report format: text, json or yaml", EnvVars: []string{"WORDSTAT_FORMAT"}},
		&cli.StringFlag{Name: "outfile", Aliases: []string{"o"}, Usage: "Write the report to this file instead of stdout (overwrites)", EnvVars: []string{"WORDSTAT_OUTFILE"}},
		&cli.StringFlag{Name: "db", Usage: "Also store the run in this SQLite database", EnvVars: []string{"WORDSTAT_DB"}},
		&cli.StringFlag{Name: "metrics-file", Usage: "Write run metrics in Prometheus text format to this file", EnvVars: []string{"WORDSTAT_METRICS_FILE"}},
		&cli.StringFlag{Name: "log-level", Value: "info", Usage: "Log level: debug, info, warn or error", EnvVars: []string{"WORDSTAT_LOG_LEVEL"}},
		&cli.StringFlag{Name: "log-format", Value: "json", Usage: "Log format: json or text", EnvVars: []string{"WORDSTAT_LOG_FORMAT"}},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Only log errors", EnvVars: []string{"WORDSTAT_QUIET"}},
	}
}

// flagSource is the subset of *cli.Context that applyFlags reads.
type flagSource interface {
	IsSet(name string) bool
	Bool(name string) bool
	Int(name string) int
	String(name string) string
}

// applyFlags overlays explicitly set flags (or their environment variables)
// on cfg. Flags left at their defaults never override the config file.
func applyFlags(c flagSource, cfg *models.Config) {
	bools := map[string]*bool{
		"lowercase":       &cfg.Lowercase,
		"emojis":          &cfg.ShowEmojis,
		"combine":         &cfg.CombineAll,
		"recursive":       &cfg.Recursive,
		"follow-symlinks": &cfg.FollowSymlinks,
		"hide-empty":      &cfg.HideEmpty,
		"detect-language": &cfg.DetectLanguage,
	}
	for name, dst := range bools {
		if c.IsSet(name) {
			*dst = c.Bool(name)
		}
	}

	ints := map[string]*int{
		"top":     &cfg.TopWords,
		"bottom":  &cfg.BottomWords,
		"workers": &cfg.WorkerCount,
	}
	for name, dst := range ints {
		if c.IsSet(name) {
			*dst = c.Int(name)
		}
	}

	strs := map[string]*string{
		"word-filter":  &cfg.WordFilter,
		"html":         &cfg.HTMLMode,
		"languages":    &cfg.Languages,
		"max-memory":   &cfg.MaxMemory,
		"format":       &cfg.Output.Format,
		"outfile":      &cfg.Output.Outfile,
		"db":           &cfg.Output.Database,
		"metrics-file": &cfg.Output.MetricsFile,
		"log-level":    &cfg.Logging.Level,
		"log-format":   &cfg.Logging.Format,
	}
	for name, dst := range strs {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
}
