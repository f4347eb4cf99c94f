// Package cli implements the meetgraph command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/SingularityNET-Archive/meetgraph/pkg/buildinfo"
	"github.com/SingularityNET-Archive/meetgraph/pkg/cache"
	"github.com/SingularityNET-Archive/meetgraph/pkg/config"
	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/fetch"
	"github.com/SingularityNET-Archive/meetgraph/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "meetgraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out  io.Writer
	errw io.Writer
	cfg  *config.Config

	// now stamps reports; tests pin it.
	now func() time.Time

	// stdin backs the "-" input.
	stdin io.Reader

	// githubURL overrides the GitHub API base URL.
	githubURL string

	configPath string
	verbose    bool
}

// New creates a CLI that logs to logw and prints results to out.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		errw:   logw,
		cfg:    config.Default(),
		now:    time.Now,
		stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Graph analysis of archived meeting summaries",
		Long: `meetgraph turns a JSON archive of meeting summaries into co-attendance,
field co-occurrence and path-structure graphs, computes network metrics over
them and writes Markdown and HTML reports.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: meetgraph.toml or meetgraph.yaml if present)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.workgroupsCommand())
	root.AddCommand(c.schemaCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.auditCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup runs before every command: it settles the log level, loads the
// configuration layers and attaches the logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.verbose {
		c.SetLogLevel(LogDebug)
	}

	if err := config.LoadDotEnv(); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidInput, err, "load .env")
	}
	cfg, err := config.Load(c.configPath, ".")
	if err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidInput, err, "load config")
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidInput, err, "read environment")
	}
	c.cfg = cfg
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. The returned close
// function releases the cache.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, func(), error) {
	cc, err := c.openCache(ctx)
	if err != nil {
		return nil, nil, err
	}
	f := fetch.New(
		fetch.WithCache(cc, c.cfg.Cache.TTL),
		fetch.WithStdin(c.stdin),
		fetch.WithLogger(c.Logger),
	)
	return pipeline.NewRunner(f, c.Logger), func() { cc.Close() }, nil
}

// openCache returns the configured fetch cache. The cache is opt-in; an
// unreachable backend degrades to no caching rather than failing the run.
func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if !c.cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	cc, err := cache.Open(ctx, c.cfg.Cache.URL, c.cfg.Cache.Dir)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.Logger.Warn("cache disabled", "err", err)
		return cache.NewNullCache(), nil
	}
	return cc, nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// override copies a flag value over the config when the user set it.
func override[T any](cmd *cobra.Command, name string, dst *T, v T) {
	if cmd.Flags().Changed(name) {
		*dst = v
	}
}

// addInputFlag registers --input on commands that read the dataset.
func addInputFlag(cmd *cobra.Command, input *string) {
	cmd.Flags().StringVarP(input, "input", "i", fetch.DefaultInput, `dataset URL, file path, s3:// URI or "-" for stdin`)
}

// addCacheFlags registers the fetch cache flags.
func addCacheFlags(cmd *cobra.Command, o *cacheOpts) {
	cmd.Flags().BoolVar(&o.enabled, "cache", false, "cache remote inputs")
	cmd.Flags().StringVar(&o.url, "cache-url", "", "cache location (redis://host:port/db or file://dir); implies --cache")
	cmd.Flags().DurationVar(&o.ttl, "cache-ttl", cache.DefaultTTL, "cache entry lifetime")
}

type cacheOpts struct {
	enabled bool
	url     string
	ttl     time.Duration
}

// apply merges the cache flags into the config.
func (o *cacheOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	override(cmd, "cache", &cfg.Cache.Enabled, o.enabled)
	override(cmd, "cache-ttl", &cfg.Cache.TTL, o.ttl)
	if cmd.Flags().Changed("cache-url") {
		cfg.Cache.URL = o.url
		cfg.Cache.Enabled = true
	}
}

// load runs the fetch and parse stages for commands that need no metrics.
func (c *CLI) load(ctx context.Context, input string) (*pipeline.Result, error) {
	if err := mgerrors.ValidateSource(input); err != nil {
		return nil, err
	}
	runner, closeCache, err := c.newRunner(ctx)
	if err != nil {
		return nil, err
	}
	defer closeCache()

	spinner := newSpinner(ctx, c.errw, "Loading "+displaySource(input)+"...")
	spinner.Start()
	res, err := runner.Load(ctx, input)
	if err != nil {
		spinner.StopWithError(c.out, "Load failed")
		return nil, err
	}
	spinner.Stop()
	return res, nil
}

// displaySource shortens the default dataset URL for status lines.
func displaySource(input string) string {
	if input == fetch.DefaultInput {
		return "published dataset"
	}
	if input == fetch.Stdin {
		return "stdin"
	}
	return input
}
