package sdk

import (
	"context"
	"net/http"
	"strings"

	"github.com/gatewise/gatewise-go/routes"
)

// TransactionsClient exposes the usage-control protocol: Authorize asks
// whether an app or user may consume the API right now, Report records
// consumed usage for later accounting.
type TransactionsClient struct {
	client *Client
}

// Authorize runs the authorization check for the configured credentials.
//
// A 409 from the service means "authenticated but not authorized" and is
// not an error: the returned result has Authorized=false and carries the
// server's denial reason alongside the usage reports. Any other non-2xx
// status is a *ServerError.
func (t *TransactionsClient) Authorize(ctx context.Context) (AuthorizationResult, error) {
	if err := t.client.creds.Validate(); err != nil {
		return AuthorizationResult{}, err
	}
	reqURL := t.client.buildURL(routes.TransactionsAuthorize) + "?" + t.client.creds.authorizeQuery()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return AuthorizationResult{}, &ProtocolError{Err: err}
	}
	resp, err := t.client.send(req)
	if err != nil {
		return AuthorizationResult{}, err
	}
	body, err := readBody(resp)
	if err != nil {
		return AuthorizationResult{}, err
	}
	switch {
	case resp.StatusCode == http.StatusConflict:
		return decodeAuthorization(body, true)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return decodeAuthorization(body, false)
	default:
		return AuthorizationResult{}, newServerError(resp.StatusCode, body)
	}
}

// Report submits a batch of usage transactions. The service accepts the
// batch asynchronously and returns no meaningful payload, so a nil error
// only means "accepted", not "accounted".
//
// The batch is validated and encoded before any network interaction; bad
// input comes back as *ValidationError naming each offending transaction.
func (t *TransactionsClient) Report(ctx context.Context, transactions []Transaction) error {
	if t.client.creds.ProviderKey == "" {
		return &ValidationError{Fields: []string{"provider key not defined"}}
	}
	body, err := encodeTransactions(t.client.creds.ProviderKey, transactions)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.client.buildURL(routes.Transactions), strings.NewReader(body))
	if err != nil {
		return &ProtocolError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := t.client.send(req)
	if err != nil {
		return err
	}
	respBody, err := readBody(resp)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newServerError(resp.StatusCode, respBody)
	}
	return nil
}
