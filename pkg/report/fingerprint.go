package report

import "github.com/google/uuid"

// datasetNamespace scopes dataset fingerprints.
var datasetNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/SingularityNET-Archive/meetgraph/dataset"))

// Fingerprint returns a name-based (version 5) UUID of the raw input bytes.
// Identical documents share a fingerprint, so reports generated from the same
// input can be matched up.
func Fingerprint(data []byte) string {
	return uuid.NewSHA1(datasetNamespace, data).String()
}
