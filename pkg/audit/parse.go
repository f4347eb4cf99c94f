package audit

import (
	"regexp"
	"slices"
	"strings"
)

// Analysis methods that can be reviewed, in dashboard order.
var Methods = []string{
	"coattendance",
	"field-degree",
	"path-structure",
	"centrality",
	"clustering",
	"components",
}

// Ratings.
const (
	RatingCorrect     = "correct"
	RatingIncorrect   = "incorrect"
	RatingNeedsReview = "needs-review"
)

var (
	methodBoldRe     = regexp.MustCompile(`(?i)\*\*Method:\*\*\s*([^\n]+)`)
	methodHeadingRe  = regexp.MustCompile(`(?i)###\s*Analysis Method\s*\n\s*([^\n]+)`)
	methodQueryRe    = regexp.MustCompile(`method=([^\s&]+)`)
	checkedCorrect   = regexp.MustCompile(`(?i)-\s*\[x\]\s*Correct`)
	checkedIncorrect = regexp.MustCompile(`(?i)-\s*\[x\]\s*Incorrect`)
	checkedNeeds     = regexp.MustCompile(`(?i)-\s*\[x\]\s*Needs Review`)
	ratingHeadingRe  = regexp.MustCompile(`(?i)###\s*Rating\s*\n\s*([^\n]+)`)
	commentHeadingRe = regexp.MustCompile(`(?i)###\s*Comments?\s*\n`)
)

var methodCleaner = strings.NewReplacer("`", "", "<!--", "", "-->", "")

func normalizeMethod(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSpace(methodCleaner.Replace(s))
	return strings.NewReplacer(" ", "-", "_", "-").Replace(s)
}

// ExtractMethod returns the analysis method an issue body reviews, or "".
// It tries a "**Method:** x" line, then an "### Analysis Method" form field,
// then a method=x query parameter; the first known method wins.
func ExtractMethod(body string) string {
	for _, re := range []*regexp.Regexp{methodBoldRe, methodHeadingRe, methodQueryRe} {
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		if method := normalizeMethod(m[1]); slices.Contains(Methods, method) {
			return method
		}
	}
	return ""
}

// ExtractRating returns the rating ticked in an issue body, or "" if none.
func ExtractRating(body string) string {
	switch {
	case body == "":
		return ""
	case checkedCorrect.MatchString(body):
		return RatingCorrect
	case checkedIncorrect.MatchString(body):
		return RatingIncorrect
	case checkedNeeds.MatchString(body):
		return RatingNeedsReview
	}
	if m := ratingHeadingRe.FindStringSubmatch(body); m != nil {
		return NormalizeRating(m[1])
	}
	return ""
}

// NormalizeRating maps free-form rating text to a rating constant.
// Unrecognised text is needs-review.
func NormalizeRating(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case strings.Contains(s, "incorrect"):
		return RatingIncorrect
	case strings.Contains(s, "correct"):
		return RatingCorrect
	}
	return RatingNeedsReview
}

var ratingLabels = map[string]string{
	"correct":      RatingCorrect,
	"incorrect":    RatingIncorrect,
	"needs-review": RatingNeedsReview,
	"needs_review": RatingNeedsReview,
}

// RatingFromLabels returns the rating carried by the first rating label, or "".
func RatingFromLabels(labels []string) string {
	for _, l := range labels {
		if r, ok := ratingLabels[strings.ToLower(l)]; ok {
			return r
		}
	}
	return ""
}

// ExtractComment returns the text of the "### Comment" section, up to the
// next "###" heading or "---" rule.
func ExtractComment(body string) string {
	if body == "" {
		return ""
	}
	if loc := commentHeadingRe.FindStringIndex(body); loc != nil {
		rest := body[loc[1]:]
		end := len(rest)
		for _, stop := range []string{"\n###", "\n---"} {
			if i := strings.Index(rest, stop); i >= 0 && i < end {
				end = i
			}
		}
		return strings.TrimSpace(rest[:end])
	}

	// headings not followed by a newline: collect lines under the first
	// heading that mentions a comment
	var lines []string
	inComment := false
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if strings.HasPrefix(t, "###") || strings.HasPrefix(t, "---") {
			if inComment {
				break
			}
			if strings.Contains(strings.ToLower(line), "comment") {
				inComment = true
				continue
			}
		}
		if inComment && t != "" {
			lines = append(lines, t)
		}
	}
	return strings.Join(lines, " ")
}
