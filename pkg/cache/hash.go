package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key returns the cache key of a document source (URL, path or s3 URI).
func Key(source string) string {
	return "doc:" + Hash([]byte(source))
}
