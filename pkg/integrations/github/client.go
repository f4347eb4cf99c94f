package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations"
)

const (
	defaultBaseURL = "https://api.github.com"
	perPage        = 100
	// maxPages bounds pagination so a misbehaving server cannot loop forever.
	maxPages = 50
)

// ErrInvalidRepo is returned for a repository that is not "owner/name".
var ErrInvalidRepo = errors.New("invalid repository")

// Client provides access to the GitHub issues API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client. Pass an empty token for
// unauthenticated requests (lower rate limits).
func NewClient(token string) *Client {
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(headers),
		baseURL: defaultBaseURL,
	}
}

// WithBaseURL points the client at another API root (GitHub Enterprise or a
// test server) and returns c.
func (c *Client) WithBaseURL(base string) *Client {
	c.baseURL = strings.TrimSuffix(base, "/")
	return c
}

// WithHTTPClient replaces the underlying HTTP client and returns c.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.Client.WithHTTPClient(hc)
	return c
}

// ListIssues returns every issue of owner/repo (open and closed) carrying
// label, following pagination. Pull requests are included; callers filter
// them with [Issue.IsPullRequest].
func (c *Client) ListIssues(ctx context.Context, owner, repo, label string) ([]Issue, error) {
	var all []Issue
	for page := 1; page <= maxPages; page++ {
		q := url.Values{}
		q.Set("state", "all")
		q.Set("per_page", fmt.Sprint(perPage))
		q.Set("page", fmt.Sprint(page))
		if label != "" {
			q.Set("labels", label)
		}
		u := fmt.Sprintf("%s/repos/%s/%s/issues?%s", c.baseURL, owner, repo, q.Encode())

		var batch []Issue
		if err := c.Get(ctx, u, &batch); err != nil {
			if errors.Is(err, integrations.ErrNotFound) {
				return nil, fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
			}
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			break
		}
	}
	return all, nil
}

// ParseRepo splits "owner/name" (or a github.com URL) into its parts.
func ParseRepo(s string) (owner, repo string, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(strings.TrimSuffix(s, "/"), ".git")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %q (want owner/name)", ErrInvalidRepo, s)
	}
	return parts[0], parts[1], nil
}
