// Package headers defines HTTP header constants used on requests to the
// Gatewise usage-control API.
package headers

const (
	// RequestID is the header for request correlation. The client
	// generates one per call when the caller has not supplied it.
	RequestID = "X-Gatewise-Request-Id"
)
