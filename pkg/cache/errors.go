package cache

import "errors"

// ErrUnsupportedURL is returned by [Open] for a cache URL with an unknown
// scheme.
var ErrUnsupportedURL = errors.New("unsupported cache url")
