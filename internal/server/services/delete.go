package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

type DeleteService struct {
	catalog Catalog
	store   objectstore.Gateway
	logger  logging.Logger
}

func NewDeleteService(c Catalog, store objectstore.Gateway, logger logging.Logger) *DeleteService {
	return &DeleteService{catalog: c, store: store, logger: logger.With("module", "delete")}
}

// Delete removes the asset's bytes and then its record. If the bytes cannot
// be removed the record is left in place. If the record cannot be removed
// afterwards the error wraps common.ErrPartialFailure; retrying is safe.
func (s *DeleteService) Delete(ctx context.Context, assetID, ownerID string) error {
	if assetID == "" {
		return invalid("asset_id is required")
	}
	if ownerID == "" {
		return invalid("owner_id is required")
	}

	asset, err := s.catalog.Get(ctx, assetID)
	if err != nil {
		return err
	}
	if asset.OwnerID != ownerID {
		return fmt.Errorf("%w: asset %s", common.ErrUnauthorized, assetID)
	}

	if err := s.store.Delete(ctx, asset.StorageKey); err != nil {
		return fmt.Errorf("delete object: %w", err)
	}

	if err := s.catalog.Delete(ctx, assetID); err != nil {
		s.logger.Error(ctx, "object deleted but record remains", "asset_id", assetID, "error", err)
		return fmt.Errorf("%w: object removed, record remains: %w", common.ErrPartialFailure, err)
	}

	s.logger.Info(ctx, "asset deleted", "asset_id", assetID, "owner_id", ownerID)
	return nil
}
