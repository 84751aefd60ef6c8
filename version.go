package sdk

// Version is the published SDK version.
// 0.4.0: Breaking - Replace the two near-duplicate authorize clients with a
// single Authorize parameterized by AuthVariant (AppAuth / UserKeyAuth).
// 0.3.0: Add ZerologTelemetry adapter and per-request correlation IDs.
// 0.2.0: Add package-level error helpers: IsValidationError,
// IsConnectionError, IsServerError, IsProtocolError, IsClientError.
const Version = "0.4.0"
