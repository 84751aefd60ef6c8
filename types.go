package sdk

import (
	"strconv"
	"time"
)

// Usage maps metric names (e.g. "hits") to consumed hit counts for one
// transaction.
type Usage map[string]int64

// Transaction is one unit of reported usage, attributable to an app or an
// end user. Exactly one of AppID / UserKey should be set. A zero Timestamp
// means "now" from the service's point of view and is omitted from the
// wire encoding. Extra carries additional service-defined fields; the keys
// app_id, user_key, usage and timestamp are reserved.
type Transaction struct {
	AppID     string
	UserKey   string
	Usage     Usage
	Timestamp time.Time
	Extra     map[string]string
}

// UsageReport is the server-reported consumption of one metric against its
// plan limit for a billing period. All values keep the server's textual
// representation; use the numeric accessors when a parsed value is needed.
type UsageReport struct {
	Metric       string
	Period       string
	PeriodStart  string
	PeriodEnd    string
	MaxValue     string
	CurrentValue string
}

// MaxInt64 parses the plan limit, returning 0 when the server omitted it.
func (r UsageReport) MaxInt64() int64 {
	v, _ := strconv.ParseInt(r.MaxValue, 10, 64)
	return v
}

// CurrentInt64 parses the current consumption, returning 0 when the server
// omitted it.
func (r UsageReport) CurrentInt64() int64 {
	v, _ := strconv.ParseInt(r.CurrentValue, 10, 64)
	return v
}

// Exceeded reports whether current consumption has reached the plan limit.
// It is false when the server omitted either value.
func (r UsageReport) Exceeded() bool {
	if r.MaxValue == "" || r.CurrentValue == "" {
		return false
	}
	return r.CurrentInt64() >= r.MaxInt64()
}

// AuthorizationResult is the decoded outcome of an authorize call. Reason
// is set exactly when Authorized is false. UsageReports preserves the
// server's document order.
type AuthorizationResult struct {
	Authorized   bool
	Plan         string
	Reason       string
	UsageReports []UsageReport
}
