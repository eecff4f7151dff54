package catalog

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

// Position is a point in the listing order (created_at, asset_id).
type Position struct {
	CreatedAt time.Time
	ID        string
}

// PositionOf returns the sort position of a.
func PositionOf(a *models.Asset) Position {
	return Position{CreatedAt: a.CreatedAt, ID: a.ID}
}

// Before reports whether p sorts strictly before q.
func (p Position) Before(q Position) bool {
	if !p.CreatedAt.Equal(q.CreatedAt) {
		return p.CreatedAt.Before(q.CreatedAt)
	}
	return p.ID < q.ID
}

// RangeQuery selects records of any status in listing order. Bounds are
// inclusive; After, when set, is exclusive and need not name a stored record.
type RangeQuery struct {
	OwnerID string
	From    *time.Time
	To      *time.Time
	After   *Position
	Limit   int
}

// RangePage is one chunk of a range read. Next is nil once the range is
// exhausted; otherwise it is the position to resume after.
type RangePage struct {
	Assets []*models.Asset
	Next   *Position
}

// Backend is the storage primitive the catalog is built on. Implementations
// report outages wrapped in common.ErrStoreUnavailable.
type Backend interface {
	// Put inserts or overwrites a. Writing pending over a completed record
	// fails with ErrStatusRegression and changes nothing.
	Put(ctx context.Context, a *models.Asset) error
	// Update overwrites an existing record. It returns common.ErrNotFound,
	// and writes nothing, when no record has a.ID.
	Update(ctx context.Context, a *models.Asset) error
	// Get returns common.ErrNotFound when no record has the id.
	Get(ctx context.Context, id string) (*models.Asset, error)
	// Delete succeeds when the record is already gone.
	Delete(ctx context.Context, id string) error
	Range(ctx context.Context, q RangeQuery) (*RangePage, error)
}

func inRange(a *models.Asset, q RangeQuery) bool {
	if q.OwnerID != "" && a.OwnerID != q.OwnerID {
		return false
	}
	if q.From != nil && a.CreatedAt.Before(*q.From) {
		return false
	}
	if q.To != nil && a.CreatedAt.After(*q.To) {
		return false
	}
	if q.After != nil && !q.After.Before(PositionOf(a)) {
		return false
	}
	return true
}
