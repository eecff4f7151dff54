package common

// RequestIDHeader is the HTTP header (and gRPC metadata key, lower-cased)
// carrying the caller's request id into logs.
const RequestIDHeader = "X-Request-ID"
