package sdk

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// ZerologTelemetry returns TelemetryHooks that emit structured logs via
// the given logger, for callers who want SDK observability without
// writing their own hooks. Request/response round trips log at debug,
// SDK log entries at their own level, metrics at trace.
func ZerologTelemetry(logger zerolog.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnHTTPRequest: func(ctx context.Context, req *http.Request) {
			logger.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("sdk request")
		},
		OnHTTPResponse: func(ctx context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			if err != nil {
				logger.Error().
					Str("method", req.Method).
					Str("url", req.URL.String()).
					Dur("latency", latency).
					Err(err).
					Msg("sdk response")
				return
			}
			evt := logger.Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Dur("latency", latency)
			if resp != nil {
				evt = evt.Int("status", resp.StatusCode)
			}
			evt.Msg("sdk response")
		},
		OnLogEntry: func(ctx context.Context, entry LogEntry) {
			evt := logger.Info()
			if entry.Level == LogLevelError {
				evt = logger.Error()
			}
			evt.Fields(entry.Fields).Msg(entry.Message)
		},
		OnMetric: func(ctx context.Context, metric Metric) {
			logger.Trace().
				Str("metric", metric.Name).
				Float64("value", metric.Value).
				Fields(labelsToFields(metric.Labels)).
				Msg("sdk metric")
		},
	}
}

func labelsToFields(labels map[string]string) map[string]any {
	if len(labels) == 0 {
		return nil
	}
	fields := make(map[string]any, len(labels))
	for k, v := range labels {
		fields[k] = v
	}
	return fields
}
