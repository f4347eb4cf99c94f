package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SingularityNET-Archive/meetgraph/pkg/audit"
	mgerrors "github.com/SingularityNET-Archive/meetgraph/pkg/errors"
	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations/github"
)

// auditCommand creates the review audit command.
func (c *CLI) auditCommand() *cobra.Command {
	var repo, issues, output string

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Aggregate reviewer ratings from GitHub issues",
		Long: `Aggregate reviewer ratings of the analysis methods into reviews.json.

Review issues carry the "review" label and name an analysis method and a
rating (correct, incorrect or needs review) in their body. Set GITHUB_TOKEN
for higher API rate limits. With --issues a saved JSON array of issues is
read instead of calling the API.

Examples:
  meetgraph audit
  meetgraph audit --repo owner/name --output reviews.json
  meetgraph audit --issues issues.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			override(cmd, "repo", &c.cfg.Audit.Repo, repo)
			override(cmd, "output", &c.cfg.Audit.Output, output)
			return c.runAudit(cmd, issues)
		},
	}

	cmd.Flags().StringVar(&repo, "repo", audit.DefaultRepo, "repository holding review issues (owner/name)")
	cmd.Flags().StringVar(&issues, "issues", "", "read issues from a JSON file instead of the GitHub API")
	cmd.Flags().StringVarP(&output, "output", "o", audit.DefaultOutput, "reviews.json path")

	return cmd
}

func (c *CLI) runAudit(cmd *cobra.Command, issuesFile string) error {
	ctx := cmd.Context()
	cfg := c.cfg.Audit
	if err := mgerrors.ValidateOutputPath(cfg.Output); err != nil {
		return err
	}

	var (
		issues []github.Issue
		err    error
	)
	if issuesFile != "" {
		issues, err = readIssuesFile(issuesFile)
	} else {
		if err := mgerrors.ValidateRepo(cfg.Repo); err != nil {
			return err
		}
		if cfg.Token == "" {
			c.Logger.Warn("GITHUB_TOKEN not set, using unauthenticated requests")
		}
		client := github.NewClient(cfg.Token)
		if c.githubURL != "" {
			client = client.WithBaseURL(c.githubURL)
		}
		spinner := newSpinner(ctx, c.errw, "Fetching review issues from "+cfg.Repo+"...")
		spinner.Start()
		issues, err = audit.Collect(ctx, client, cfg.Repo)
		spinner.Stop()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return mgerrors.Wrap(mgerrors.ErrCodeNetwork, err, "fetch review issues")
		}
	}
	if err != nil {
		return err
	}

	rep := audit.Aggregate(issues, c.now())
	if err := audit.Write(cfg.Output, rep); err != nil {
		return mgerrors.Wrap(mgerrors.ErrCodeInvalidPath, err, "write %s", cfg.Output)
	}

	printSuccess(c.out, "Processed %d issues", rep.TotalIssuesProcessed)
	printFile(c.out, cfg.Output)
	printNewline(c.out)

	var rows [][]string
	for _, m := range audit.Methods {
		s := rep.Methods[m]
		rows = append(rows, []string{
			m,
			strconv.Itoa(s.TotalReviews),
			strconv.Itoa(s.Correct),
			strconv.Itoa(s.Incorrect),
			strconv.Itoa(s.NeedsReview),
			fmt.Sprintf("%.2f", s.TrustScore),
		})
	}
	printTable(c.out, []string{"Method", "Reviews", "Correct", "Incorrect", "Needs review", "Trust"}, rows, 1, 2, 3, 4, 5)
	if rep.Reviewed() == 0 {
		printWarning(c.out, "No reviews found")
	}
	return nil
}

func readIssuesFile(path string) ([]github.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, mgerrors.Wrap(mgerrors.ErrCodeFileNotFound, err, "cannot read issues")
		}
		return nil, mgerrors.Wrap(mgerrors.ErrCodeInvalidPath, err, "cannot read issues")
	}
	defer f.Close()
	issues, err := audit.ReadIssues(f)
	if err != nil {
		return nil, mgerrors.Wrap(mgerrors.ErrCodeInvalidJSON, err, "%s is not a JSON array of issues", path)
	}
	return issues, nil
}
