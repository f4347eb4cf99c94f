package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations/github"
)

const (
	// DefaultRepo is the repository whose review issues are audited.
	DefaultRepo = "SingularityNET-Archive/Graph-Python-scripts"
	// DefaultOutput is where the aggregated reviews are written.
	DefaultOutput = "docs/audit/reviews.json"
	// ReviewLabel selects review issues.
	ReviewLabel = "review"
)

// Review is one parsed review issue.
type Review struct {
	IssueNumber int    `json:"issue_number"`
	Rating      string `json:"rating"`
	Comment     string `json:"comment"`
	Author      string `json:"author"`
	CreatedAt   string `json:"created_at"`
	URL         string `json:"url"`

	created time.Time
}

// MethodSummary aggregates the reviews of one analysis method.
type MethodSummary struct {
	TotalReviews int      `json:"total_reviews"`
	Correct      int      `json:"correct"`
	Incorrect    int      `json:"incorrect"`
	NeedsReview  int      `json:"needs_review"`
	TrustScore   float64  `json:"trust_score"`
	Reviews      []Review `json:"reviews"`
}

// Report is the content of reviews.json.
type Report struct {
	LastUpdated          string                    `json:"last_updated"`
	TotalIssuesProcessed int                       `json:"total_issues_processed"`
	Methods              map[string]*MethodSummary `json:"methods"`
}

// Reviewed returns how many methods have at least one review.
func (r *Report) Reviewed() int {
	n := 0
	for _, m := range r.Methods {
		if m.TotalReviews > 0 {
			n++
		}
	}
	return n
}

// TrustScore maps the balance of correct over incorrect ratings to [0, 1]:
// 1 when every review is correct, 0 when every review is incorrect, 0.5 when
// they cancel out. No reviews scores 0.
func TrustScore(correct, incorrect, total int) float64 {
	if total == 0 {
		return 0
	}
	score := (float64(correct-incorrect)/float64(total) + 1) / 2
	return max(0, min(1, score))
}

// Aggregate parses issues into a report. Every issue counts towards
// TotalIssuesProcessed; pull requests and issues naming no known method
// contribute no review. Each method in [Methods] is present in the result.
func Aggregate(issues []github.Issue, now time.Time) *Report {
	r := &Report{
		LastUpdated:          now.UTC().Format(time.RFC3339),
		TotalIssuesProcessed: len(issues),
		Methods:              make(map[string]*MethodSummary, len(Methods)),
	}
	for _, m := range Methods {
		r.Methods[m] = &MethodSummary{Reviews: []Review{}}
	}

	for _, is := range issues {
		if is.IsPullRequest() {
			continue
		}
		method := ExtractMethod(is.Body)
		if method == "" {
			continue
		}
		rating := ExtractRating(is.Body)
		if rating == "" {
			rating = RatingFromLabels(labelNames(is.Labels))
		}
		if rating == "" {
			rating = RatingNeedsReview
		}

		s := r.Methods[method]
		s.TotalReviews++
		switch rating {
		case RatingCorrect:
			s.Correct++
		case RatingIncorrect:
			s.Incorrect++
		default:
			s.NeedsReview++
		}
		rev := Review{
			IssueNumber: is.Number,
			Rating:      rating,
			Comment:     ExtractComment(is.Body),
			Author:      is.Author(),
			URL:         is.HTMLURL,
			created:     is.CreatedAt,
		}
		if !is.CreatedAt.IsZero() {
			rev.CreatedAt = is.CreatedAt.UTC().Format(time.RFC3339)
		}
		s.Reviews = append(s.Reviews, rev)
	}

	for _, s := range r.Methods {
		s.TrustScore = TrustScore(s.Correct, s.Incorrect, s.TotalReviews)
		slices.SortStableFunc(s.Reviews, func(a, b Review) int {
			return b.created.Compare(a.created)
		})
	}
	return r
}

func labelNames(labels []github.Label) []string {
	names := make([]string, len(labels))
	for i, l := range labels {
		names[i] = l.Name
	}
	return names
}

// IssueLister lists the issues of a repository carrying a label.
// *github.Client implements it.
type IssueLister interface {
	ListIssues(ctx context.Context, owner, repo, label string) ([]github.Issue, error)
}

// Collect lists the review issues of repo ("owner/name").
func Collect(ctx context.Context, l IssueLister, repo string) ([]github.Issue, error) {
	owner, name, err := github.ParseRepo(repo)
	if err != nil {
		return nil, err
	}
	issues, err := l.ListIssues(ctx, owner, name, ReviewLabel)
	if err != nil {
		return nil, fmt.Errorf("list review issues: %w", err)
	}
	return issues, nil
}

// ReadIssues decodes a JSON array of GitHub issue objects.
func ReadIssues(r io.Reader) ([]github.Issue, error) {
	var issues []github.Issue
	if err := json.NewDecoder(r).Decode(&issues); err != nil {
		return nil, fmt.Errorf("decode issues: %w", err)
	}
	return issues, nil
}

// Encode writes the report as indented JSON.
func Encode(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(r)
}

// Write stores the report at path, creating parent directories. The report
// is encoded in full and renamed into place, so a failure leaves any
// previous file untouched.
func Write(path string, r *Report) error {
	var buf bytes.Buffer
	if err := Encode(&buf, r); err != nil {
		return fmt.Errorf("encode reviews: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
