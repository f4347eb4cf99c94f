package github

import "time"

// User represents a GitHub user.
type User struct {
	Login string `json:"login"`
}

// Label represents an issue label.
type Label struct {
	Name string `json:"name"`
}

// Issue represents a GitHub issue. The issues API also returns pull
// requests; those carry a non-nil PullRequest.
type Issue struct {
	Number      int          `json:"number"`
	Title       string       `json:"title"`
	Body        string       `json:"body"`
	State       string       `json:"state"`
	HTMLURL     string       `json:"html_url"`
	User        *User        `json:"user"`
	Labels      []Label      `json:"labels"`
	CreatedAt   time.Time    `json:"created_at"`
	PullRequest *PullRequest `json:"pull_request,omitempty"`
}

// PullRequest marks an issue that is a pull request.
type PullRequest struct {
	URL string `json:"url"`
}

// IsPullRequest reports whether the issue is a pull request.
func (i Issue) IsPullRequest() bool { return i.PullRequest != nil }

// Author returns the login of the issue author, or "unknown".
func (i Issue) Author() string {
	if i.User == nil || i.User.Login == "" {
		return "unknown"
	}
	return i.User.Login
}
