// Package api defines the request and response messages shared by the HTTP,
// gRPC and Lambda transports, and the Server that maps each message onto
// exactly one coordinator call.
package api

import (
	"time"

	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

type ReserveUploadRequest struct {
	OwnerID     string   `json:"owner_id"`
	DisplayName string   `json:"display_name"`
	ContentType string   `json:"content_type"`
	ByteSize    int64    `json:"byte_size"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

type ReserveUploadResponse struct {
	AssetID      string              `json:"asset_id"`
	StorageKey   string              `json:"storage_key"`
	UploadHandle *objectstore.Handle `json:"upload_handle"`
	// ExpiresIn is in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

type ConfirmUploadRequest struct {
	AssetID     string   `json:"asset_id"`
	OwnerID     string   `json:"owner_id"`
	DisplayName string   `json:"display_name"`
	ContentType string   `json:"content_type"`
	ByteSize    int64    `json:"byte_size"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

type ConfirmUploadResponse struct {
	AssetID string `json:"asset_id"`
	Status  string `json:"status"`
}

type ListAssetsRequest struct {
	OwnerID       string     `json:"owner_id,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         *int       `json:"limit,omitempty"`
	Cursor        string     `json:"cursor,omitempty"`
}

type ListAssetsResponse struct {
	Records []*models.Asset `json:"records"`
	Count   int             `json:"count"`
	Cursor  string          `json:"cursor,omitempty"`
	HasMore bool            `json:"has_more"`
}

type GetDownloadRequest struct {
	AssetID string `json:"asset_id"`
}

type GetDownloadResponse struct {
	AssetID        string              `json:"asset_id"`
	DownloadHandle *objectstore.Handle `json:"download_handle"`
	ExpiresIn      int64               `json:"expires_in"`
	DisplayName    string              `json:"display_name"`
	ContentType    string              `json:"content_type"`
}

type DeleteAssetRequest struct {
	AssetID string `json:"asset_id"`
	OwnerID string `json:"owner_id"`
}

type DeleteAssetResponse struct {
	AssetID string `json:"asset_id"`
	Status  string `json:"status"`
}

// ErrorResponse is the body of every failed HTTP request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// StatusDeleted is reported by DeleteAsset.
const StatusDeleted = "deleted"

func seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}
