// Package audit aggregates peer reviews of the analysis reports.
//
// Reviewers file GitHub issues labelled "review" from an issue template. Each
// issue names the analysis method it reviews, a rating (correct, incorrect
// or needs-review) and an optional comment. [Aggregate] parses those issues
// into a per-method [Report] with a trust score, which [Write] stores as the
// reviews.json consumed by the published dashboard.
//
// Issues come either from the GitHub API ([Collect]) or, for offline runs,
// from a JSON file holding the same issue objects ([ReadIssues]).
package audit
