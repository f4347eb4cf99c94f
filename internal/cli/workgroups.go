package cli

import (
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/pipeline"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
)

// workgroupsCommand creates the workgroup tally command.
func (c *CLI) workgroupsCommand() *cobra.Command {
	var (
		input, output string
		nested        bool
		limit         int
		cache         cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "workgroups",
		Short: "Count meetings per workgroup",
		Long: `Count meetings per workgroup and list each workgroup's meetings.

By default each meeting contributes its record-level workgroup. With --nested
every value stored under a "workgroup" or "workgroups" key anywhere in the
document is counted instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "input", &c.cfg.Input, input)
			cache.apply(cmd, c.cfg)
			if err := mgerrors.ValidateOutputPath(output); err != nil {
				return err
			}

			res, err := c.load(cmd.Context(), c.cfg.Input)
			if err != nil {
				return err
			}
			tally := res.Tally(nested)
			if err := pipeline.WriteFile(output, report.Workgroups(tally, c.now())); err != nil {
				return err
			}

			var rows [][]string
			for i, wc := range tally.Sorted() {
				if limit > 0 && i >= limit {
					break
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), wc.Name, strconv.Itoa(wc.Count)})
			}
			printTable(c.out, []string{"Rank", "Workgroup", "Meetings"}, rows, 0, 2)
			printSuccess(c.out, "Counted %d workgroups", tally.Len())
			printFile(c.out, output)
			return nil
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&output, "output", "o", filepath.Join(reportDir, "workgroup_analysis_report.md"), "report path")
	cmd.Flags().BoolVar(&nested, "nested", false, "count workgroup keys at any depth")
	cmd.Flags().IntVar(&limit, "limit", 20, "rows shown in the terminal (0 for all)")
	addCacheFlags(cmd, &cache)

	return cmd
}
