package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

type ReserveRequest struct {
	OwnerID     string
	DisplayName string
	ContentType string
	ByteSize    int64
	Tags        []string
	Description string
}

type Reservation struct {
	AssetID    string
	StorageKey string
	Upload     *objectstore.Handle
	ExpiresIn  time.Duration
}

type ConfirmRequest struct {
	AssetID     string
	OwnerID     string
	DisplayName string
	ContentType string
	ByteSize    int64
	Tags        []string
	Description string
}

type Confirmation struct {
	AssetID string
	Status  models.Status
}

// UploadService drives reserve, then the client's direct transfer, then
// confirm.
type UploadService struct {
	catalog Catalog
	store   objectstore.Gateway
	ids     idgen.Generator
	limits  Limits
	logger  logging.Logger
}

func NewUploadService(c Catalog, store objectstore.Gateway, ids idgen.Generator, limits Limits, logger logging.Logger) *UploadService {
	return &UploadService{
		catalog: c,
		store:   store,
		ids:     ids,
		limits:  limits,
		logger:  logger.With("module", "upload"),
	}
}

// Reserve registers a pending asset and returns a handle scoped to its
// storage key. Nothing external is called when validation fails.
func (s *UploadService) Reserve(ctx context.Context, req ReserveRequest) (*Reservation, error) {
	fields := assetFields{
		OwnerID:     req.OwnerID,
		DisplayName: req.DisplayName,
		ContentType: req.ContentType,
		ByteSize:    req.ByteSize,
		Tags:        req.Tags,
		Description: req.Description,
	}
	if err := fields.validate(s.limits.MaxUploadBytes); err != nil {
		return nil, err
	}

	id := s.ids.NewID()
	key := StorageKey(req.OwnerID, id, req.DisplayName)

	handle, err := s.store.IssueUploadHandle(ctx, key, req.ContentType, req.ByteSize, s.limits.UploadURLTTL)
	if err != nil {
		return nil, fmt.Errorf("issue upload handle: %w", err)
	}

	asset := &models.Asset{
		ID:          id,
		OwnerID:     req.OwnerID,
		StorageKey:  key,
		DisplayName: req.DisplayName,
		ContentType: req.ContentType,
		ByteSize:    req.ByteSize,
		Tags:        normalizeTags(req.Tags),
		Description: req.Description,
		Status:      models.StatusPending,
	}
	if err := s.catalog.Create(ctx, asset); err != nil {
		return nil, fmt.Errorf("create pending asset: %w", err)
	}

	s.logger.Info(ctx, "upload reserved", "asset_id", id, "owner_id", req.OwnerID, "byte_size", req.ByteSize)
	return &Reservation{
		AssetID:    id,
		StorageKey: key,
		Upload:     handle,
		ExpiresIn:  s.limits.UploadURLTTL,
	}, nil
}

// Confirm completes a reserved asset once its bytes, at the reserved size,
// are in the object store. It is idempotent. display_name, content_type and byte_size keep
// their reserved values; tags and description may be amended.
func (s *UploadService) Confirm(ctx context.Context, req ConfirmRequest) (*Confirmation, error) {
	if req.AssetID == "" {
		return nil, invalid("asset_id is required")
	}
	fields := assetFields{
		OwnerID:     req.OwnerID,
		DisplayName: req.DisplayName,
		ContentType: req.ContentType,
		ByteSize:    req.ByteSize,
		Tags:        req.Tags,
		Description: req.Description,
	}
	if err := fields.validate(s.limits.MaxUploadBytes); err != nil {
		return nil, err
	}

	asset, err := s.catalog.Get(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.OwnerID != req.OwnerID {
		return nil, fmt.Errorf("%w: asset %s", common.ErrUnauthorized, req.AssetID)
	}

	info, ok, err := s.store.Stat(ctx, asset.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("check object: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: nothing stored at %s", common.ErrUploadNotFound, asset.StorageKey)
	}
	if info.Size != asset.ByteSize {
		return nil, fmt.Errorf("%w: stored object is %d bytes, reserved %d", common.ErrUploadNotFound, info.Size, asset.ByteSize)
	}

	if asset.DisplayName != req.DisplayName || asset.ContentType != req.ContentType || asset.ByteSize != req.ByteSize {
		s.logger.Warn(ctx, "confirm re-asserted different fields; keeping reserved values",
			"asset_id", asset.ID, "display_name", req.DisplayName, "content_type", req.ContentType, "byte_size", req.ByteSize)
	}

	tags := normalizeTags(req.Tags)
	if asset.Completed() && slices.Equal(asset.Tags, tags) && asset.Description == req.Description {
		return &Confirmation{AssetID: asset.ID, Status: models.StatusCompleted}, nil
	}

	asset.Tags = tags
	asset.Description = req.Description
	asset.Status = models.StatusCompleted
	asset.UpdatedAt = s.catalog.Now()
	// Update, not Put: a delete that ran since Get must not be undone.
	if err := s.catalog.Update(ctx, asset); err != nil {
		return nil, fmt.Errorf("complete asset: %w", err)
	}

	s.logger.Info(ctx, "upload confirmed", "asset_id", asset.ID, "owner_id", asset.OwnerID)
	return &Confirmation{AssetID: asset.ID, Status: models.StatusCompleted}, nil
}
