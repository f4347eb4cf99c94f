package integrations

import (
	"errors"
	"net/http"
	"time"
)

const httpTimeout = 10 * time.Second

var (
	// ErrNotFound is returned for a 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures (timeouts, refused connections).
	ErrNetwork = errors.New("network error")

	// ErrHTTPStatus is returned for any other non-2xx response.
	ErrHTTPStatus = errors.New("unexpected http status")
)

// NewHTTPClient creates an HTTP client with the standard request timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
