// Package config loads meetgraph settings.
//
// Settings are layered, later layers winning:
//
//  1. built-in defaults ([Default])
//  2. a meetgraph.toml or meetgraph.yaml file
//  3. environment variables, including those from a .env file
//  4. command-line flags (applied by the CLI)
//
// Environment variables:
//
//	MEETGRAPH_INPUT      dataset URL, path, s3:// URI or "-"
//	MEETGRAPH_OUTPUT     Markdown report path
//	MEETGRAPH_LIMIT_TOP  rows in top-N tables
//	MEETGRAPH_CACHE_URL  cache location (redis://... or file://...); enables the cache
//	GITHUB_TOKEN         token for review audits
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/SingularityNET-Archive/meetgraph/pkg/audit"
	"github.com/SingularityNET-Archive/meetgraph/pkg/cache"
	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// DefaultOutput is the default Markdown report path.
const DefaultOutput = "reports/unified_analysis_report.md"

// Files are the config file names searched in the working directory.
var Files = []string{"meetgraph.toml", "meetgraph.yaml", "meetgraph.yml"}

// ErrInvalid is wrapped by every [Config.Validate] failure.
var ErrInvalid = errors.New("invalid config")

// Config holds every setting.
type Config struct {
	Input    string `toml:"input" yaml:"input"`
	Output   string `toml:"output" yaml:"output"`
	LimitTop int    `toml:"limit_top" yaml:"limit_top"`
	HTML     bool   `toml:"html" yaml:"html"`

	Cache CacheConfig `toml:"cache" yaml:"cache"`
	Audit AuditConfig `toml:"audit" yaml:"audit"`

	// Path is the file the config was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

// CacheConfig controls the fetch cache.
type CacheConfig struct {
	Enabled bool          `toml:"enabled" yaml:"enabled"`
	URL     string        `toml:"url" yaml:"url"`
	Dir     string        `toml:"dir" yaml:"dir"`
	TTL     time.Duration `toml:"ttl" yaml:"ttl"`
}

// AuditConfig controls review audits.
type AuditConfig struct {
	Repo   string `toml:"repo" yaml:"repo"`
	Output string `toml:"output" yaml:"output"`
	// Token is only read from the environment.
	Token string `toml:"-" yaml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Input:    fetch.DefaultInput,
		Output:   DefaultOutput,
		LimitTop: report.DefaultLimitTop,
		Cache:    CacheConfig{TTL: cache.DefaultTTL},
		Audit:    AuditConfig{Repo: audit.DefaultRepo, Output: audit.DefaultOutput},
	}
}

// Load reads path over the defaults. An empty path searches [Files] in dir;
// finding none is not an error.
func Load(path, dir string) (*Config, error) {
	cfg := Default()
	if path == "" {
		for _, name := range Files {
			p := filepath.Join(dir, name)
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config format %q", ErrInvalid, ext)
	}
	cfg.Path = path
	return cfg, nil
}

// LoadDotEnv loads variables from .env files into the process environment.
// Variables already set are kept. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

// ApplyEnv overrides settings from environment variables looked up with
// lookup (os.LookupEnv in production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("MEETGRAPH_INPUT"); ok && v != "" {
		c.Input = v
	}
	if v, ok := lookup("MEETGRAPH_OUTPUT"); ok && v != "" {
		c.Output = v
	}
	if v, ok := lookup("MEETGRAPH_LIMIT_TOP"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MEETGRAPH_LIMIT_TOP=%q is not a number", ErrInvalid, v)
		}
		c.LimitTop = n
	}
	if v, ok := lookup("MEETGRAPH_CACHE_URL"); ok && v != "" {
		c.Cache.URL = v
		c.Cache.Enabled = true
	}
	if v, ok := lookup("GITHUB_TOKEN"); ok {
		c.Audit.Token = v
	}
	return nil
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input is empty", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output is empty", ErrInvalid)
	}
	if c.LimitTop < 1 {
		return fmt.Errorf("%w: limit_top must be at least 1, got %d", ErrInvalid, c.LimitTop)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("%w: cache ttl is negative", ErrInvalid)
	}
	if u := c.Cache.URL; u != "" && !strings.HasPrefix(u, "redis://") &&
		!strings.HasPrefix(u, "rediss://") && !strings.HasPrefix(u, "file://") {
		return fmt.Errorf("%w: cache url %q (want redis://, rediss:// or file://)", ErrInvalid, u)
	}
	return nil
}

// HTMLPath returns the HTML report path next to the Markdown output.
func (c *Config) HTMLPath() string {
	return strings.TrimSuffix(c.Output, filepath.Ext(c.Output)) + ".html"
}
