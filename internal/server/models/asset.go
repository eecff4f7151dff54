// Package models defines the server-side records persisted by the catalog.
package models

import "time"

// Status tracks the upload state of an asset.
type Status string

const (
	// StatusPending marks a reserved asset whose bytes have not been confirmed.
	StatusPending Status = "pending"
	// StatusCompleted marks a confirmed asset. It never reverts to pending.
	StatusCompleted Status = "completed"
)

// Asset is the catalog record describing one stored image.
type Asset struct {
	// ID is the server-assigned UUID. Immutable.
	ID string `json:"asset_id" dynamodbav:"asset_id"`
	// OwnerID identifies the caller that reserved the asset. Immutable.
	OwnerID string `json:"owner_id" dynamodbav:"owner_id"`
	// StorageKey is the object-store key holding the bytes. Immutable.
	StorageKey string `json:"storage_key" dynamodbav:"storage_key"`

	DisplayName string   `json:"display_name" dynamodbav:"display_name"`
	ContentType string   `json:"content_type" dynamodbav:"content_type"`
	ByteSize    int64    `json:"byte_size" dynamodbav:"byte_size"`
	Tags        []string `json:"tags,omitempty" dynamodbav:"tags,omitempty"`
	Description string   `json:"description,omitempty" dynamodbav:"description,omitempty"`

	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated_at" dynamodbav:"updated_at"`
	Status    Status    `json:"status" dynamodbav:"status"`
}

// Completed reports whether the asset is visible to listing and download.
func (a *Asset) Completed() bool {
	return a.Status == StatusCompleted
}

// Clone returns a deep copy of a.
func (a *Asset) Clone() *Asset {
	c := *a
	if a.Tags != nil {
		c.Tags = append([]string(nil), a.Tags...)
	}
	return &c
}
