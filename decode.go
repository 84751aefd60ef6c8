package sdk

import "encoding/xml"

// The decoder depends only on paths relative to the document root: the
// root element name varies across service versions.
type authorizationPayload struct {
	Plan         string               `xml:"plan"`
	Reason       string               `xml:"reason"`
	UsageReports []usageReportPayload `xml:"usage_reports>usage_report"`
}

type usageReportPayload struct {
	Metric       string `xml:"metric,attr"`
	Period       string `xml:"period,attr"`
	PeriodStart  string `xml:"period_start"`
	PeriodEnd    string `xml:"period_end"`
	MaxValue     string `xml:"max_value"`
	CurrentValue string `xml:"current_value"`
}

// decodeAuthorization parses an authorize response body. denied selects
// the 409 branch: the reason element is read and the result is marked
// unauthorized. Child elements the service omitted decode to empty
// strings; usage reports keep document order.
func decodeAuthorization(body []byte, denied bool) (AuthorizationResult, error) {
	var payload authorizationPayload
	if err := xml.Unmarshal(body, &payload); err != nil {
		return AuthorizationResult{}, &ProtocolError{Err: err}
	}
	result := AuthorizationResult{
		Authorized: !denied,
		Plan:       payload.Plan,
	}
	if denied {
		result.Reason = payload.Reason
	}
	if len(payload.UsageReports) > 0 {
		result.UsageReports = make([]UsageReport, len(payload.UsageReports))
		for i, r := range payload.UsageReports {
			result.UsageReports[i] = UsageReport{
				Metric:       r.Metric,
				Period:       r.Period,
				PeriodStart:  r.PeriodStart,
				PeriodEnd:    r.PeriodEnd,
				MaxValue:     r.MaxValue,
				CurrentValue: r.CurrentValue,
			}
		}
	}
	return result, nil
}
