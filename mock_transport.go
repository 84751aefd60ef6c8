package sdk

import (
	"bytes"
	"io"
	"net/http"
	"sync"
)

// MockTransport is an in-memory http.RoundTripper for unit tests that
// must not hit the real service. Responses are served in FIFO order;
// Calls() reports how many requests actually reached the transport, so
// tests can assert that pre-flight validation failures never go on the
// wire.
type MockTransport struct {
	mu    sync.Mutex
	queue []mockRoundTrip
	calls int
}

// MockTransportError is returned when the mock is exercised without a
// queued response.
type MockTransportError struct {
	Reason string
}

func (e MockTransportError) Error() string { return "mock transport: " + e.Reason }

type mockRoundTrip struct {
	status int
	body   []byte
	err    error
}

// NewMockTransport creates an empty mock transport.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// WithResponse enqueues a response with the given status and body.
func (m *MockTransport) WithResponse(status int, body string) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockRoundTrip{status: status, body: []byte(body)})
	return m
}

// WithError enqueues a transport-level failure for the next request.
func (m *MockTransport) WithError(err error) *MockTransport {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, mockRoundTrip{err: err})
	return m
}

// Calls reports how many requests reached the transport.
func (m *MockTransport) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Client wraps the mock in an *http.Client for Config.HTTPClient.
func (m *MockTransport) Client() *http.Client {
	return &http.Client{Transport: m}
}

// RoundTrip implements http.RoundTripper.
func (m *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	m.mu.Lock()
	m.calls++
	if len(m.queue) == 0 {
		m.mu.Unlock()
		return nil, MockTransportError{Reason: "no queued response for " + req.URL.String()}
	}
	next := m.queue[0]
	m.queue = m.queue[1:]
	m.mu.Unlock()
	if next.err != nil {
		return nil, next.err
	}
	return &http.Response{
		StatusCode: next.status,
		Status:     http.StatusText(next.status),
		Body:       io.NopCloser(bytes.NewReader(next.body)),
		Header:     make(http.Header),
		Request:    req,
	}, nil
}
