package sdk

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// timestampLayout is the wire format for transaction timestamps:
// 24-hour clock with a ±HHMM zone offset, e.g. "2021-03-04 10:20:30 +0000".
const timestampLayout = "2006-01-02 15:04:05 -0700"

// reservedExtraKeys are transaction fields with dedicated struct members;
// they must not be smuggled in via Extra.
var reservedExtraKeys = map[string]bool{
	"app_id":    true,
	"user_key":  true,
	"usage":     true,
	"timestamp": true,
}

// quote percent-escapes a form value the way the service expects: spaces
// become %20, not +.
func quote(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// encodeTransactions builds the full report POST body:
// provider_key=<key> followed by one bracketed block per transaction.
// The batch is validated before any encoding; the returned
// *ValidationError lists every problem across the batch at once.
func encodeTransactions(providerKey string, transactions []Transaction) (string, error) {
	if err := validateTransactions(transactions); err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("provider_key=")
	b.WriteString(quote(providerKey))
	for i, tx := range transactions {
		encodeTransaction(&b, fmt.Sprintf("transactions[%d]", i), tx)
	}
	return b.String(), nil
}

func validateTransactions(transactions []Transaction) error {
	if len(transactions) == 0 {
		return &ValidationError{Fields: []string{"no transactions to report"}}
	}
	var problems []string
	for i, tx := range transactions {
		if tx.AppID == "" && tx.UserKey == "" {
			problems = append(problems, fmt.Sprintf("transaction %d: app id or user key required", i))
		}
		for key := range tx.Extra {
			if reservedExtraKeys[key] {
				problems = append(problems, fmt.Sprintf("transaction %d: reserved field %q in extra", i, key))
			}
		}
	}
	if len(problems) > 0 {
		sort.Strings(problems)
		return &ValidationError{Fields: problems}
	}
	return nil
}

// encodeTransaction appends one transaction block under the given prefix.
// Field order is fixed (app_id, user_key, usage, timestamp, then extras
// sorted by key) so repeated encodes of the same input produce identical
// bodies.
func encodeTransaction(b *strings.Builder, prefix string, tx Transaction) {
	if tx.AppID != "" {
		writeField(b, prefix, "app_id", tx.AppID)
	}
	if tx.UserKey != "" {
		writeField(b, prefix, "user_key", tx.UserKey)
	}
	encodeUsage(b, prefix, tx.Usage)
	if !tx.Timestamp.IsZero() {
		writeField(b, prefix, "timestamp", tx.Timestamp.Format(timestampLayout))
	}
	for _, key := range sortedKeys(tx.Extra) {
		writeField(b, prefix, key, tx.Extra[key])
	}
}

// encodeUsage recurses one level: every metric becomes
// <prefix>[usage][<metric>]=<count>. Metric names are sorted so the body
// is deterministic.
func encodeUsage(b *strings.Builder, prefix string, usage Usage) {
	metrics := make([]string, 0, len(usage))
	for metric := range usage {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)
	usagePrefix := prefix + "[usage]"
	for _, metric := range metrics {
		writeField(b, usagePrefix, metric, strconv.FormatInt(usage[metric], 10))
	}
}

func writeField(b *strings.Builder, prefix, key, value string) {
	b.WriteByte('&')
	b.WriteString(prefix)
	b.WriteByte('[')
	b.WriteString(key)
	b.WriteByte(']')
	b.WriteByte('=')
	b.WriteString(quote(value))
}

func sortedKeys(m map[string]string) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
