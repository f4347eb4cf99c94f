package github

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/SingularityNET-Archive/meetgraph/pkg/integrations"
)

func TestListIssuesPagination(t *testing.T) {
	var auth, label string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/owner/repo/issues" {
			http.NotFound(w, r)
			return
		}
		auth = r.Header.Get("Authorization")
		label = r.URL.Query().Get("labels")
		if r.URL.Query().Get("state") != "all" {
			t.Errorf("state = %q, want all", r.URL.Query().Get("state"))
		}

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		n := perPage
		if page == 2 {
			n = 3
		}
		issues := make([]Issue, n)
		for i := range issues {
			issues[i] = Issue{Number: (page-1)*perPage + i + 1}
		}
		json.NewEncoder(w).Encode(issues)
	}))
	defer server.Close()

	c := NewClient("secret").WithBaseURL(server.URL).WithHTTPClient(server.Client())
	issues, err := c.ListIssues(context.Background(), "owner", "repo", "review")
	if err != nil {
		t.Fatalf("ListIssues: %v", err)
	}
	if len(issues) != perPage+3 {
		t.Errorf("got %d issues, want %d", len(issues), perPage+3)
	}
	if issues[len(issues)-1].Number != perPage+3 {
		t.Errorf("last issue = %d", issues[len(issues)-1].Number)
	}
	if auth != "Bearer secret" {
		t.Errorf("Authorization = %q", auth)
	}
	if label != "review" {
		t.Errorf("labels = %q", label)
	}
}

func TestListIssuesNotFound(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	c := NewClient("").WithBaseURL(server.URL).WithHTTPClient(server.Client())
	_, err := c.ListIssues(context.Background(), "owner", "missing", "review")
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestIssueDecoding(t *testing.T) {
	raw := `{"number": 7, "body": "x", "html_url": "https://github.com/o/r/issues/7",
		"user": {"login": "ann"}, "labels": [{"name": "review"}],
		"created_at": "2025-02-01T10:00:00Z", "pull_request": {"url": "u"}}`
	var is Issue
	if err := json.Unmarshal([]byte(raw), &is); err != nil {
		t.Fatal(err)
	}
	if !is.IsPullRequest() {
		t.Error("pull_request should mark the issue as a pull request")
	}
	if is.Author() != "ann" {
		t.Errorf("Author() = %q", is.Author())
	}
	if (Issue{}).Author() != "unknown" {
		t.Error("missing user should be unknown")
	}
}

func TestParseRepo(t *testing.T) {
	tests := []struct {
		in          string
		owner, repo string
		wantErr     bool
	}{
		{in: "SingularityNET-Archive/Graph-Python-scripts", owner: "SingularityNET-Archive", repo: "Graph-Python-scripts"},
		{in: "https://github.com/foo/bar.git", owner: "foo", repo: "bar"},
		{in: "github.com/foo/bar/", owner: "foo", repo: "bar"},
		{in: "foo", wantErr: true},
		{in: "foo/bar/baz", wantErr: true},
		{in: "/bar", wantErr: true},
	}
	for _, tt := range tests {
		owner, repo, err := ParseRepo(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidRepo) {
				t.Errorf("ParseRepo(%q) error = %v, want ErrInvalidRepo", tt.in, err)
			}
			continue
		}
		if err != nil || owner != tt.owner || repo != tt.repo {
			t.Errorf("ParseRepo(%q) = %q, %q, %v", tt.in, owner, repo, err)
		}
	}
}
