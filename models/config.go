// Package models defines data structures for configuration and analysis results.
package models

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// HTML handling modes for files with an .html/.htm extension.
const (
	HTMLModeOff     = "off"
	HTMLModeText    = "text"
	HTMLModeArticle = "article"
)

// Output formats understood by the report renderer.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds runtime configuration for a counting run.
// It is built once at startup (defaults, then YAML file, then CLI flags)
// and passed by value into the pipeline.
type Config struct {
	Lowercase      bool   `yaml:"lowercase"`
	TopWords       int    `yaml:"top_words"`    // 0 = all words
	BottomWords    int    `yaml:"bottom_words"` // always literal, 0 = none
	ShowEmojis     bool   `yaml:"emojis"`
	CombineAll     bool   `yaml:"combine"`
	WordFilter     string `yaml:"word_filter"`
	WorkerCount    int    `yaml:"workers"` // 0 = runtime.NumCPU()
	Recursive      bool   `yaml:"recursive"`
	FollowSymlinks bool   `yaml:"follow_symlinks"`
	HideEmpty      bool   `yaml:"hide_empty"`
	HTMLMode       string `yaml:"html"`
	DetectLanguage bool   `yaml:"detect_language"`
	Languages      string `yaml:"languages"`  // comma separated, empty = all
	MaxMemory      string `yaml:"max_memory"` // e.g. "512MB", empty = unlimited

	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls where and how the report is written.
type OutputConfig struct {
	Format      string `yaml:"format"`
	Outfile     string `yaml:"outfile"`
	Database    string `yaml:"database"`
	MetricsFile string `yaml:"metrics_file"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the configuration used when neither a config file
// nor flags override a value.
func DefaultConfig() Config {
	return Config{
		TopWords:    10,
		BottomWords: 3,
		HTMLMode:    HTMLModeOff,
		Output: OutputConfig{
			Format: FormatText,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadConfig reads a YAML config file over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid option.
func (c Config) Validate() error {
	if c.TopWords < 0 {
		return fmt.Errorf("top_words must be non-negative, got %d", c.TopWords)
	}
	if c.BottomWords < 0 {
		return fmt.Errorf("bottom_words must be non-negative, got %d", c.BottomWords)
	}
	if c.WorkerCount < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.WorkerCount)
	}
	switch c.HTMLMode {
	case "", HTMLModeOff, HTMLModeText, HTMLModeArticle:
	default:
		return fmt.Errorf("unknown html mode %q (want off, text or article)", c.HTMLMode)
	}
	switch c.Output.Format {
	case "", FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", c.Output.Format)
	}
	if _, err := ParseMemoryLimit(c.MaxMemory); err != nil {
		return err
	}
	return nil
}

// Workers returns the effective worker pool size.
func (c Config) Workers() int {
	if c.WorkerCount > 0 {
		return c.WorkerCount
	}
	return runtime.NumCPU()
}

// MemoryLimit returns MaxMemory in bytes, 0 when unset or invalid.
func (c Config) MemoryLimit() uint64 {
	limit, err := ParseMemoryLimit(c.MaxMemory)
	if err != nil {
		return 0
	}
	return limit
}

// ParseMemoryLimit converts a size such as "512MiB", "2GB" or "64k" to bytes.
// Decimal (KB, MB, GB) and binary (KiB, MiB, GiB) units follow go-humanize;
// a bare number is bytes. An empty string means no limit.
func ParseMemoryLimit(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid memory limit %q: %w", s, err)
	}
	return n, nil
}
