package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

// ListRequest filters the listing. A nil Limit selects the default page
// size; an explicit non-positive one is rejected.
type ListRequest struct {
	OwnerID       string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         *int
	Cursor        string
}

type ListResult struct {
	Assets  []*models.Asset
	Cursor  string
	HasMore bool
}

type ListService struct {
	catalog Catalog
	limits  Limits
	logger  logging.Logger
}

func NewListService(c Catalog, limits Limits, logger logging.Logger) *ListService {
	return &ListService{catalog: c, limits: limits, logger: logger.With("module", "list")}
}

func (s *ListService) List(ctx context.Context, req ListRequest) (*ListResult, error) {
	limit := s.limits.DefaultPageSize
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit <= 0 {
		return nil, invalid("limit must be positive")
	}
	if s.limits.MaxPageSize > 0 && limit > s.limits.MaxPageSize {
		limit = s.limits.MaxPageSize
	}
	if req.CreatedAfter != nil && req.CreatedBefore != nil && req.CreatedAfter.After(*req.CreatedBefore) {
		return nil, invalid("created_after is later than created_before")
	}

	page, err := s.catalog.Query(ctx, catalog.Filter{
		OwnerID:       req.OwnerID,
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: req.CreatedBefore,
		Limit:         limit,
		Cursor:        req.Cursor,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug(ctx, "listed assets", "owner_id", req.OwnerID, "count", len(page.Assets), "has_more", page.HasMore)

	assets := page.Assets
	if assets == nil {
		assets = []*models.Asset{}
	}
	return &ListResult{Assets: assets, Cursor: page.Cursor, HasMore: page.HasMore}, nil
}
