package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SingularityNET-Archive/meetgraph/pkg/config"
	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/pipeline"
)

// analyzeOpts holds the command-line flags for the analyze command.
type analyzeOpts struct {
	input    string
	output   string
	limitTop int
	html     bool
	cache    cacheOpts
}

// apply merges explicitly set flags over the loaded config.
func (o *analyzeOpts) apply(cmd *cobra.Command, cfg *config.Config) {
	override(cmd, "input", &cfg.Input, o.input)
	override(cmd, "output", &cfg.Output, o.output)
	override(cmd, "limit-top", &cfg.LimitTop, o.limitTop)
	override(cmd, "html", &cfg.HTML, o.html)
	o.cache.apply(cmd, cfg)
}

// analyzeCommand creates the unified analysis command.
func (c *CLI) analyzeCommand() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run every analysis and write the unified report",
		Long: `Run every analysis over the meeting summaries and write the unified report.

The report covers co-attendance degree, JSON field degree, path structure,
field centrality, clustering and connected components. With --html an
interactive page is written next to the Markdown file.

Examples:
  meetgraph analyze
  meetgraph analyze --input meetings.json --output out/report.md --html
  curl -s https://example.org/meetings.json | meetgraph analyze -i -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.apply(cmd, c.cfg)
			return c.runAnalyze(cmd)
		},
	}

	addInputFlag(cmd, &opts.input)
	cmd.Flags().StringVarP(&opts.output, "output", "o", config.DefaultOutput, "Markdown report path")
	cmd.Flags().IntVar(&opts.limitTop, "limit-top", pipeline.DefaultLimitTop, "rows in top-N tables")
	cmd.Flags().BoolVar(&opts.html, "html", false, "also write an interactive HTML report")
	addCacheFlags(cmd, &opts.cache)

	return cmd
}

func (c *CLI) runAnalyze(cmd *cobra.Command) error {
	ctx := cmd.Context()
	cfg := c.cfg
	if err := cfg.Validate(); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidInput, err, "invalid settings")
	}
	if err := mgerrors.ValidateSource(cfg.Input); err != nil {
		return err
	}
	if err := mgerrors.ValidateOutputPath(cfg.Output); err != nil {
		return err
	}

	runner, closeCache, err := c.newRunner(ctx)
	if err != nil {
		return err
	}
	defer closeCache()

	spinner := newSpinner(ctx, c.errw, "Analyzing "+displaySource(cfg.Input)+"...")
	spinner.Start()
	res, err := runner.Execute(ctx, pipeline.Options{
		Input:    cfg.Input,
		LimitTop: cfg.LimitTop,
		Now:      c.now,
	})
	if err != nil {
		spinner.StopWithError(c.out, "Analysis failed")
		return err
	}
	spinner.Stop()
	if ctx.Err() != nil {
		return ctx.Err()
	}

	prog := newProgress(c.Logger)
	files, err := pipeline.WriteReports(res.Data, cfg.Output, cfg.HTML)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Wrote %d reports", len(files)))

	printSuccess(c.out, "Analysis complete")
	for _, f := range files {
		printFile(c.out, f)
	}
	printStats(c.out, res.Stats.Bytes, len(res.Records), res.Stats.Cached)
	printNewline(c.out)

	var rows [][]string
	for _, item := range res.Data.Summary() {
		rows = append(rows, []string{item.Label, strconv.Itoa(item.Value)})
	}
	printTable(c.out, []string{"Graph", "Count"}, rows, 1)

	if !cfg.HTML {
		printNewline(c.out)
		printNextStep(c.out, "Interactive report", "meetgraph analyze --html")
	}
	return nil
}
