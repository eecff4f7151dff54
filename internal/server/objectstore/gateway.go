// Package objectstore issues time-limited transfer handles against the
// object store holding asset bytes, and checks or removes stored objects.
//
// Handles are the only way bytes move: clients PUT and GET directly against
// the store, never through this service.
package objectstore

import (
	"context"
	"fmt"
	"mime"
	"time"
)

// Handle is the exact request a client must issue against the object store.
type Handle struct {
	URL     string            `json:"url"`
	Method  string            `json:"method"`
	Headers map[string]string `json:"headers,omitempty"`
}

// ObjectInfo describes the bytes stored at a key.
type ObjectInfo struct {
	Size        int64
	ContentType string
}

// Gateway is implemented by every object-store backend.
type Gateway interface {
	// IssueUploadHandle authorizes a single PUT of exactly size bytes of
	// contentType to key, valid for ttl.
	IssueUploadHandle(ctx context.Context, key, contentType string, size int64, ttl time.Duration) (*Handle, error)
	// IssueDownloadHandle authorizes a GET of key for ttl. The response is
	// served as an attachment named filename.
	IssueDownloadHandle(ctx context.Context, key, filename string, ttl time.Duration) (*Handle, error)
	// Stat reports what is stored at key; ok is false when nothing is.
	Stat(ctx context.Context, key string) (info ObjectInfo, ok bool, err error)
	// Delete removes key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) error
}

func attachment(filename string) string {
	if filename == "" {
		return "attachment"
	}
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": filename}); v != "" {
		return v
	}
	return fmt.Sprintf("attachment; filename=%q", filename)
}
