// Package github lists review issues from the GitHub REST API.
//
// # Usage
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"))
//	issues, err := client.ListIssues(ctx, "SingularityNET-Archive", "Graph-Python-scripts", "review")
//
// A token is optional. Without one the API allows 60 requests per hour,
// with one 5000.
//
// [ListIssues] requests open and closed issues 100 per page and stops at the
// first short page.
package github
