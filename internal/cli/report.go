package cli

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/pipeline"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// reportDir holds standalone reports unless --output says otherwise.
const reportDir = "reports"

// methodFiles names the default output file of each per-method report.
var methodFiles = map[string]string{
	report.MethodDegree:     "degree_analysis_by_field.md",
	report.MethodCentrality: "centrality_analysis_report.md",
	report.MethodClustering: "clustering_analysis_report.md",
	report.MethodComponents: "connected_components_report.md",
	report.MethodPaths:      "path_analysis_report.md",
}

// reportCommand creates the per-method report command.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		input, output string
		cache         cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "report <" + strings.Join(report.Methods, "|") + ">",
		Short: "Write a single-method report over the field co-occurrence graph",
		Long: `Write a standalone report for one analysis method.

Methods:
  degree       field degree with core and peripheral fields
  centrality   degree, betweenness, closeness and eigenvector centrality
  clustering   clustering coefficients and transitivity (weighted)
  components   connected components and their members
  paths        JSON path depth and parent prefixes

Examples:
  meetgraph report centrality
  meetgraph report paths --input meetings.json --output paths.md`,
		ValidArgs: report.Methods,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "input", &c.cfg.Input, input)
			cache.apply(cmd, c.cfg)
			method := args[0]
			if !cmd.Flags().Changed("output") {
				output = filepath.Join(reportDir, methodFiles[method])
			}
			return c.runReport(cmd, method, output)
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&output, "output", "o", "", "report path (default reports/<method report>.md)")
	addCacheFlags(cmd, &cache)

	return cmd
}

func (c *CLI) runReport(cmd *cobra.Command, method, output string) error {
	if err := mgerrors.ValidateOutputPath(output); err != nil {
		return err
	}
	res, err := c.load(cmd.Context(), c.cfg.Input)
	if err != nil {
		return err
	}
	pipeline.Build(res)

	doc, ok := report.ForMethod(method, res.Fields, res.Paths, c.now())
	if !ok {
		return mgerrors.New(mgerrors.ErrCodeInvalidInput, "unknown method %q", method)
	}
	if err := pipeline.WriteFile(output, doc); err != nil {
		return err
	}

	printSuccess(c.out, "Wrote %s report", method)
	printFile(c.out, output)
	printStats(c.out, res.Stats.Bytes, len(res.Records), res.Stats.Cached)
	return nil
}
