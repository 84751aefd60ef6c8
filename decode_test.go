package sdk

import "testing"

const authorizedResponseXML = `<status>
  <plan>Pro</plan>
  <usage_reports>
    <usage_report metric="hits" period="day">
      <period_start>2021-03-04 00:00:00 +0000</period_start>
      <period_end>2021-03-05 00:00:00 +0000</period_end>
      <max_value>10000</max_value>
      <current_value>42</current_value>
    </usage_report>
    <usage_report metric="transfer" period="month">
      <period_start>2021-03-01 00:00:00 +0000</period_start>
      <period_end>2021-04-01 00:00:00 +0000</period_end>
      <max_value>1000000</max_value>
      <current_value>999999</current_value>
    </usage_report>
  </usage_reports>
</status>`

const deniedResponseXML = `<status>
  <plan>Free</plan>
  <reason>usage limits exceeded</reason>
  <usage_reports>
    <usage_report metric="hits" period="day">
      <current_value>100</current_value>
      <max_value>100</max_value>
    </usage_report>
  </usage_reports>
</status>`

func TestDecodeAuthorized(t *testing.T) {
	result, err := decodeAuthorization([]byte(authorizedResponseXML), false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Authorized {
		t.Fatal("expected authorized result")
	}
	if result.Plan != "Pro" {
		t.Fatalf("plan = %q", result.Plan)
	}
	if result.Reason != "" {
		t.Fatalf("reason must stay unset on success, got %q", result.Reason)
	}
	if len(result.UsageReports) != 2 {
		t.Fatalf("expected 2 usage reports, got %d", len(result.UsageReports))
	}
	first := result.UsageReports[0]
	if first.Metric != "hits" || first.Period != "day" {
		t.Fatalf("first report out of document order: %+v", first)
	}
	if first.PeriodStart != "2021-03-04 00:00:00 +0000" || first.PeriodEnd != "2021-03-05 00:00:00 +0000" {
		t.Fatalf("unexpected period bounds: %+v", first)
	}
	if first.MaxValue != "10000" || first.CurrentValue != "42" {
		t.Fatalf("unexpected values: %+v", first)
	}
	second := result.UsageReports[1]
	if second.Metric != "transfer" || second.Period != "month" {
		t.Fatalf("second report out of document order: %+v", second)
	}
}

func TestDecodeDenied(t *testing.T) {
	result, err := decodeAuthorization([]byte(deniedResponseXML), true)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.Authorized {
		t.Fatal("expected denied result")
	}
	if result.Reason != "usage limits exceeded" {
		t.Fatalf("reason = %q", result.Reason)
	}
	if result.Plan != "Free" {
		t.Fatalf("denial must still carry the plan, got %q", result.Plan)
	}
	if !result.UsageReports[0].Exceeded() {
		t.Fatal("expected the hits report to be exceeded")
	}
}

func TestDecodeIgnoresReasonWhenAuthorized(t *testing.T) {
	// The denial branch is selected by the HTTP status, not by the
	// presence of a reason element.
	result, err := decodeAuthorization([]byte(deniedResponseXML), false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !result.Authorized || result.Reason != "" {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestDecodeMissingChildrenAreEmpty(t *testing.T) {
	body := `<status><plan>Sparse</plan><usage_reports>
	  <usage_report metric="hits" period="day"/>
	</usage_reports></status>`
	result, err := decodeAuthorization([]byte(body), false)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	report := result.UsageReports[0]
	if report.PeriodStart != "" || report.PeriodEnd != "" || report.MaxValue != "" || report.CurrentValue != "" {
		t.Fatalf("omitted children must decode empty: %+v", report)
	}
	if report.Exceeded() {
		t.Fatal("omitted values must not report as exceeded")
	}
	if report.MaxInt64() != 0 || report.CurrentInt64() != 0 {
		t.Fatal("omitted values must parse to zero")
	}
}

func TestDecodeMalformedXML(t *testing.T) {
	for _, body := range []string{
		"not xml at all",
		"<status><plan>Pro</plan>",
		"",
	} {
		_, err := decodeAuthorization([]byte(body), false)
		if !IsProtocolError(err) {
			t.Fatalf("expected ProtocolError for %q, got %v", body, err)
		}
		if !IsClientError(err) {
			t.Fatalf("ProtocolError must satisfy the base error surface")
		}
	}
}
