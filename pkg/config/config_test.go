package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.Input != fetch.DefaultInput || c.Output != DefaultOutput || c.LimitTop != 10 {
		t.Errorf("Default() = %+v", c)
	}
	if c.Cache.Enabled {
		t.Error("the cache should be off by default")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	src := `
input = "data/meetings.json"
limit_top = 5
html = true

[cache]
enabled = true
ttl = "30m"

[audit]
repo = "me/reviews"
`
	if err := os.WriteFile(filepath.Join(dir, "meetgraph.toml"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load("", dir)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Input = "data/meetings.json"
	want.LimitTop = 5
	want.HTML = true
	want.Cache.Enabled = true
	want.Cache.TTL = 30 * time.Minute
	want.Audit.Repo = "me/reviews"
	want.Path = filepath.Join(dir, "meetgraph.toml")
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Load (-want +got):\n%s", diff)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	src := "output: out/report.md\ncache:\n  url: redis://localhost:6379/0\n  ttl: 2h\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path, "")
	if err != nil {
		t.Fatal(err)
	}
	if c.Output != "out/report.md" || c.Cache.URL != "redis://localhost:6379/0" || c.Cache.TTL != 2*time.Hour {
		t.Errorf("Load = %+v", c)
	}
	if c.Input != fetch.DefaultInput {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadMissing(t *testing.T) {
	c, err := Load("", t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if c.Path != "" {
		t.Errorf("Path = %q, want empty", c.Path)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Error("an explicit missing file should fail")
	}
}

func TestLoadUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meetgraph.ini")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"MEETGRAPH_INPUT":     "-",
		"MEETGRAPH_LIMIT_TOP": "3",
		"MEETGRAPH_CACHE_URL": "redis://cache:6379/1",
		"GITHUB_TOKEN":        "ghp_x",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	c := Default()
	if err := c.ApplyEnv(lookup); err != nil {
		t.Fatal(err)
	}
	if c.Input != "-" || c.LimitTop != 3 || c.Audit.Token != "ghp_x" {
		t.Errorf("ApplyEnv = %+v", c)
	}
	if !c.Cache.Enabled || c.Cache.URL != "redis://cache:6379/1" {
		t.Errorf("a cache url should enable the cache: %+v", c.Cache)
	}

	env["MEETGRAPH_LIMIT_TOP"] = "ten"
	if err := Default().ApplyEnv(lookup); !errors.Is(err, ErrInvalid) {
		t.Errorf("error = %v, want ErrInvalid", err)
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("MEETGRAPH_TEST_DOTENV=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MEETGRAPH_TEST_DOTENV", "")
	os.Unsetenv("MEETGRAPH_TEST_DOTENV")

	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("MEETGRAPH_TEST_DOTENV"); got != "from-file" {
		t.Errorf("MEETGRAPH_TEST_DOTENV = %q", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty input", func(c *Config) { c.Input = "" }},
		{"empty output", func(c *Config) { c.Output = "" }},
		{"zero limit", func(c *Config) { c.LimitTop = 0 }},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }},
		{"bad cache url", func(c *Config) { c.Cache.URL = "memcached://x" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestHTMLPath(t *testing.T) {
	c := Default()
	if got := c.HTMLPath(); got != "reports/unified_analysis_report.html" {
		t.Errorf("HTMLPath() = %q", got)
	}
}
