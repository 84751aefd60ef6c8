package sdk

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gatewise/gatewise-go/headers"
)

const defaultBaseURL = "https://su1.gatewise.net"
const defaultUserAgent = "gatewise-sdk/" + Version

// Config wires credentials, the service endpoint, and telemetry for the
// usage-control client.
type Config struct {
	// BaseURL selects scheme and host; defaults to the production
	// endpoint.
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
	Telemetry   TelemetryHooks
	UserAgent   string
}

// Client talks the usage-control protocol: an authorization check and an
// asynchronous usage report. Clients are immutable and safe for
// concurrent use; each call is independent and stateless.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      Credentials
	telemetry  TelemetryHooks
	userAgent  string

	// Grouped service clients.
	Transactions *TransactionsClient
}

// NewClient validates the configuration and returns a ready-to-use Client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	client := &Client{
		baseURL:    normalized,
		httpClient: httpClient,
		creds:      cfg.Credentials,
		telemetry:  cfg.Telemetry,
		userAgent:  ua,
	}
	client.Transactions = &TransactionsClient{client: client}
	return client, nil
}

func normalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", errors.New("sdk: base URL required")
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("sdk: invalid base URL: %w", err)
	}
	if u.Scheme == "" {
		return "", errors.New("sdk: base URL missing scheme (http/https)")
	}
	if u.Host == "" {
		return "", errors.New("sdk: base URL missing host")
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return strings.TrimSuffix(u.String(), "/"), nil
}

func (c *Client) buildURL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

func (c *Client) prepare(req *http.Request) {
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if req.Header.Get(headers.RequestID) == "" {
		req.Header.Set(headers.RequestID, uuid.NewString())
	}
	injectTraceparent(req.Context(), req)
}

// send issues the request and reports the round trip to the telemetry
// hooks. A failure to reach the service (DNS, refused connection,
// timeout, cancelled context) comes back as *ConnectionError; HTTP status
// classification is left to the caller since authorize treats 409 as a
// valid outcome.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	c.prepare(req)
	if c.telemetry.OnHTTPRequest != nil {
		c.telemetry.OnHTTPRequest(req.Context(), req)
	}
	c.telemetry.log(req.Context(), LogLevelInfo, "http_request", map[string]any{
		"method": req.Method,
		"url":    req.URL.String(),
	})
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.telemetry.OnHTTPResponse != nil {
		c.telemetry.OnHTTPResponse(req.Context(), req, resp, err, time.Since(start))
	}
	c.telemetry.metric(req.Context(), "sdk_http_request_latency_ms", float64(time.Since(start).Milliseconds()), map[string]string{
		"path": req.URL.Path,
	})
	if err != nil {
		c.telemetry.log(req.Context(), LogLevelError, "http_request_failed", map[string]any{
			"url":   req.URL.String(),
			"error": err.Error(),
		})
		return nil, &ConnectionError{URL: req.URL.String(), Err: err}
	}
	return resp, nil
}

// readBody drains and closes the response body.
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProtocolError{Err: err}
	}
	return data, nil
}
