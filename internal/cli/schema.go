package cli

import (
	"encoding/json"
	"path/filepath"

	"github.com/spf13/cobra"

	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/report"
	"github.com/SingularityNET-Archive/meetgraph/pkg/schema"
)

// Schema output formats.
const (
	schemaMarkdown = "md"
	schemaJSON     = "json"
)

var schemaFiles = map[string]string{
	schemaMarkdown: "json_schema_report.md",
	schemaJSON:     "json_schema.json",
}

// schemaCommand creates the schema inference command.
func (c *CLI) schemaCommand() *cobra.Command {
	var (
		input, output, format string
		cache                 cacheOpts
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Infer the structure of the dataset",
		Long: `Infer the structure of the dataset from its first items.

Arrays are described by their first element. The outline is written as a
nested Markdown list (--format md) or as a JSON Schema document (--format json).
Use --output - to print to stdout.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "input", &c.cfg.Input, input)
			cache.apply(cmd, c.cfg)
			if err := mgerrors.ValidateChoice(mgerrors.ErrCodeInvalidFormat, "schema format", format, []string{schemaMarkdown, schemaJSON}); err != nil {
				return err
			}
			if !cmd.Flags().Changed("output") {
				output = filepath.Join(reportDir, schemaFiles[format])
			}

			res, err := c.load(cmd.Context(), c.cfg.Input)
			if err != nil {
				return err
			}
			outline := schema.Infer(res.Doc)

			var data []byte
			if format == schemaJSON {
				data, err = json.MarshalIndent(schema.JSONSchema(outline, "Meeting summaries"), "", "  ")
				if err != nil {
					return mgerrors.Wrap(mgerrors.ErrCodeInternal, err, "encode schema")
				}
				data = append(data, '\n')
			} else {
				data = report.Schema(outline, c.now())
			}
			return c.writeOutput(output, data, "Inferred schema")
		},
	}

	addInputFlag(cmd, &input)
	cmd.Flags().StringVarP(&output, "output", "o", "", `output path, "-" for stdout (default reports/json_schema_report.md)`)
	cmd.Flags().StringVarP(&format, "format", "f", schemaMarkdown, "output format: md or json")
	addCacheFlags(cmd, &cache)

	return cmd
}
