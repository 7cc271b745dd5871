package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/IvanShishkin/burrow/pkg/models"
	units "github.com/docker/go-units"
	"github.com/spf13/viper"
)

// Config represents the explorer configuration
type Config struct {
	// Scan settings
	Path       string `mapstructure:"path"`        // directory to scan
	Recursive  bool   `mapstructure:"recursive"`   // descend into subdirectories
	MaxDepth   int    `mapstructure:"max_depth"`   // 0 = unbounded
	ShowHidden bool   `mapstructure:"show_hidden"` // include dot entries
	MaxEntries int    `mapstructure:"max_entries"` // safety cap on visited entries

	// Filter settings
	Extension        string `mapstructure:"extension"`         // name suffix, e.g. .txt
	MinSize          string `mapstructure:"min_size"`          // minimum size, e.g. 100, 10K, 1M
	Keyword          string `mapstructure:"keyword"`           // name substring
	CaseInsensitive  bool   `mapstructure:"case_insensitive"`  // fold case for extension and keyword
	RespectGitignore bool   `mapstructure:"respect_gitignore"` // drop files ignored by <root>/.gitignore

	// Sort settings
	Sort     string `mapstructure:"sort"`      // name, size, modified
	SortDirs bool   `mapstructure:"sort_dirs"` // sort directories among siblings too

	// Output settings
	Format     string `mapstructure:"format"`      // table, tree, json, yaml, md
	Color      string `mapstructure:"color"`       // auto, always, never
	HumanSizes bool   `mapstructure:"human_sizes"` // 1.5KiB instead of 1536
	OutputFile string `mapstructure:"output_file"` // write report here instead of stdout
}

var (
	validFormats = []string{"table", "tree", "json", "yaml", "md", "markdown"}
	validColors  = []string{"auto", "always", "never"}
)

// LoadConfig loads configuration from defaults, an optional config file
// and BURROW_* environment variables. An empty path searches the default
// locations; a missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("path", ".")
	v.SetDefault("recursive", false)
	v.SetDefault("max_depth", 0)
	v.SetDefault("show_hidden", false)
	v.SetDefault("max_entries", models.DefaultMaxEntries)
	v.SetDefault("extension", "")
	v.SetDefault("min_size", "")
	v.SetDefault("keyword", "")
	v.SetDefault("case_insensitive", false)
	v.SetDefault("respect_gitignore", false)
	v.SetDefault("sort", "")
	v.SetDefault("sort_dirs", false)
	v.SetDefault("format", "table")
	v.SetDefault("color", "auto")
	v.SetDefault("human_sizes", false)
	v.SetDefault("output_file", "")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "burrow"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("burrow")
		v.SetConfigType("yaml")
	}

	// Read environment variables
	v.SetEnvPrefix("BURROW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration for values the engine cannot use
func (c *Config) Validate() error {
	if _, err := models.ParseSortKey(c.Sort); err != nil {
		return err
	}
	if !contains(validFormats, c.Format) {
		return fmt.Errorf("format must be one of: %s (got: %s)", strings.Join(validFormats, ", "), c.Format)
	}
	if !contains(validColors, c.Color) {
		return fmt.Errorf("color must be one of: %s (got: %s)", strings.Join(validColors, ", "), c.Color)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("depth must not be negative (got: %d)", c.MaxDepth)
	}
	if c.MaxEntries <= 0 {
		return fmt.Errorf("max entries must be positive (got: %d)", c.MaxEntries)
	}
	if _, err := ParseSize(c.MinSize); err != nil {
		return err
	}
	return nil
}

// Request builds the immutable scan request described by the configuration
func (c *Config) Request() (models.ScanRequest, error) {
	sortKey, err := models.ParseSortKey(c.Sort)
	if err != nil {
		return models.ScanRequest{}, err
	}

	minSize, err := ParseSize(c.MinSize)
	if err != nil {
		return models.ScanRequest{}, err
	}

	return models.ScanRequest{
		Root:       c.Path,
		Recursive:  c.Recursive,
		MaxDepth:   c.MaxDepth,
		ShowHidden: c.ShowHidden,
		MaxEntries: c.MaxEntries,
		Filters: models.FilterSpec{
			Extension:        c.Extension,
			MinSize:          minSize,
			Keyword:          c.Keyword,
			CaseInsensitive:  c.CaseInsensitive,
			RespectGitignore: c.RespectGitignore,
		},
		Sort:     sortKey,
		SortDirs: c.SortDirs,
	}, nil
}

// ParseSize parses sizes such as "100", "10K" or "1.5M" into bytes.
// Units are binary (1K = 1024). An empty string is zero.
func ParseSize(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	size, err := units.RAMInBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}
	if size < 0 {
		return 0, fmt.Errorf("invalid size %q: must not be negative", s)
	}
	return size, nil
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
