package errors

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
)

// ValidateChoice checks that value is one of allowed. what names the
// setting in the message ("export format", "graph").
func ValidateChoice(code Code, what, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return New(code, "unknown %s %q (want one of: %s)", what, value, strings.Join(allowed, ", "))
}

// ValidateSource validates a dataset source: a URL, an s3:// URI, "-" or a
// file path.
//
// Validation rules:
//   - Source cannot be empty
//   - No null bytes or control characters
//   - URLs must use http or https
func ValidateSource(src string) error {
	if src == "" {
		return New(ErrCodeInvalidInput, "input cannot be empty")
	}
	if hasControl(src) {
		return New(ErrCodeInvalidInput, "input contains invalid control characters")
	}
	if i := strings.Index(src, "://"); i > 0 {
		switch src[:i] {
		case "http", "https", "s3":
		default:
			return New(ErrCodeUnsupported, "unsupported input scheme %q (want http, https or s3)", src[:i])
		}
	}
	return nil
}

// ValidateOutputPath validates a report or export path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Must name a file, not a directory
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}
	if hasControl(path) {
		return New(ErrCodeInvalidPath, "output path contains invalid characters")
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}
	return nil
}

// repoRegex matches GitHub owner/name pairs.
var repoRegex = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?/[A-Za-z0-9._-]+$`)

// ValidateRepo validates a GitHub repository in owner/name form.
func ValidateRepo(repo string) error {
	if !repoRegex.MatchString(repo) {
		return New(ErrCodeInvalidInput, "invalid repository %q (want owner/name)", repo)
	}
	return nil
}

func hasControl(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
