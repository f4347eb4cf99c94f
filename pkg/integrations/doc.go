// Package integrations provides the shared HTTP client used to talk to
// remote services: the published meeting-summary dataset and the GitHub
// API used by review audits.
//
// # Client Pattern
//
// A [Client] carries default headers and a fixed timeout:
//
//	c := integrations.NewClient(map[string]string{"Accept": "application/json"})
//	body, err := c.GetBytes(ctx, url)
//
// Requests are made once. Any response other than 2xx is an error wrapping
// [ErrHTTPStatus] (or [ErrNotFound] for 404), and transport failures wrap
// [ErrNetwork]. There is no retry: a failed fetch is reported to the caller.
//
// # Subpackages
//
//   - [github]: review issues of a GitHub repository
package integrations
