package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

type Download struct {
	AssetID     string
	Handle      *objectstore.Handle
	ExpiresIn   time.Duration
	DisplayName string
	ContentType string
}

type DownloadService struct {
	catalog Catalog
	store   objectstore.Gateway
	limits  Limits
	logger  logging.Logger
}

func NewDownloadService(c Catalog, store objectstore.Gateway, limits Limits, logger logging.Logger) *DownloadService {
	return &DownloadService{catalog: c, store: store, limits: limits, logger: logger.With("module", "download")}
}

// GetDownload resolves a completed asset to a short-lived download handle.
// Pending assets are reported as not found.
func (s *DownloadService) GetDownload(ctx context.Context, assetID string) (*Download, error) {
	if assetID == "" {
		return nil, invalid("asset_id is required")
	}

	asset, err := s.catalog.Get(ctx, assetID)
	if err != nil {
		return nil, err
	}
	if !asset.Completed() {
		return nil, fmt.Errorf("%w: asset %s is not completed", common.ErrNotFound, assetID)
	}

	h, err := s.store.IssueDownloadHandle(ctx, asset.StorageKey, SanitizeFilename(asset.DisplayName), s.limits.DownloadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("issue download handle: %w", err)
	}

	s.logger.Debug(ctx, "download issued", "asset_id", assetID)
	return &Download{
		AssetID:     asset.ID,
		Handle:      h,
		ExpiresIn:   s.limits.DownloadURLTTL,
		DisplayName: asset.DisplayName,
		ContentType: asset.ContentType,
	}, nil
}
