package sdk

import (
	"errors"
	"fmt"
	"strings"
)

// ClientError is the common surface of every error this SDK produces.
// Callers can match broadly with IsClientError or narrowly with the
// per-kind helpers / errors.As.
type ClientError interface {
	error
	clientError()
}

// ValidationError reports bad input caught before any network interaction:
// missing credentials, an empty transaction batch, or a malformed
// transaction field. Fields lists every problem at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "sdk: invalid input"
	}
	return "sdk: " + strings.Join(e.Fields, ": ")
}

func (e *ValidationError) clientError() {}

// ConnectionError reports that the service could not be reached: DNS
// failure, refused connection, timeout, or a cancelled context.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("sdk: connection error %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

func (e *ConnectionError) clientError() {}

// ServerError reports a non-2xx response (other than the 409 denial on
// authorize, which is a valid outcome, not an error). Body holds a snippet
// of the response payload for diagnostics.
type ServerError struct {
	Status int
	Body   string
}

func (e *ServerError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("sdk: server error: status %d", e.Status)
	}
	return fmt.Sprintf("sdk: server error: status %d: %s", e.Status, e.Body)
}

func (e *ServerError) clientError() {}

// ProtocolError reports a response body the decoder could not make sense
// of. It wraps the underlying parser diagnostic.
type ProtocolError struct {
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("sdk: protocol error: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

func (e *ProtocolError) clientError() {}

// IsClientError reports whether err (or anything it wraps) originated in
// this SDK.
func IsClientError(err error) bool {
	var ce ClientError
	return errors.As(err, &ce)
}

// IsValidationError reports whether err is a pre-flight input failure.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConnectionError reports whether err is a transport reachability failure.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	return errors.As(err, &ce)
}

// IsServerError reports whether err is a non-2xx service response.
func IsServerError(err error) bool {
	var se *ServerError
	return errors.As(err, &se)
}

// IsProtocolError reports whether err is a malformed-response failure.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}

const serverErrorBodyLimit = 512

func newServerError(status int, body []byte) *ServerError {
	snippet := strings.TrimSpace(string(body))
	if len(snippet) > serverErrorBodyLimit {
		snippet = snippet[:serverErrorBodyLimit]
	}
	return &ServerError{Status: status, Body: snippet}
}
