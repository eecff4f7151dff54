// Package common defines the sentinel errors shared by the catalog, the
// object-store gateways, the coordinators and the transports of imagevault.
// Callers should use errors.Is to match these values; producers wrap them
// with fmt.Errorf("...: %w", ...) to keep the cause.
package common

import "errors"

var (
	// Input errors, raised before any external call.
	ErrValidation = errors.New("validation error")

	// Lookup errors.
	ErrNotFound       = errors.New("not found")
	ErrUploadNotFound = errors.New("upload not found")

	// Ownership check failed.
	ErrUnauthorized = errors.New("unauthorized")

	// Pagination token is malformed, forged or belongs to another listing.
	ErrInvalidCursor = errors.New("invalid cursor")

	// Object or metadata store unreachable. Safe for the caller to retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// Delete removed the object but not the catalog record.
	ErrPartialFailure = errors.New("partial failure")
)

// Kind returns the stable name of the error class err belongs to, as used in
// transport error bodies. Unknown errors report "InternalError".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "ValidationError"
	case errors.Is(err, ErrInvalidCursor):
		return "InvalidCursor"
	case errors.Is(err, ErrUploadNotFound):
		return "UploadNotFound"
	case errors.Is(err, ErrNotFound):
		return "NotFound"
	case errors.Is(err, ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, ErrPartialFailure):
		return "PartialFailure"
	case errors.Is(err, ErrStoreUnavailable):
		return "StoreUnavailable"
	default:
		return "InternalError"
	}
}
