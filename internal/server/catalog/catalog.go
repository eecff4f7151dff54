// Package catalog stores asset metadata and answers filtered, paginated
// listing queries over it.
//
// The Catalog sits on a Backend primitive (DynamoDB, PostgreSQL or memory)
// that only knows how to read records in (created_at, asset_id) order. The
// catalog adds status filtering, exact has-more detection and signed
// continuation cursors on top.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// Filter selects completed assets. Zero values mean "no constraint"; a zero
// Limit means the default page size.
type Filter struct {
	OwnerID       string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
	Limit         int
	Cursor        string
}

// Page is one page of results. Cursor is empty when HasMore is false.
type Page struct {
	Assets  []*models.Asset
	Cursor  string
	HasMore bool
}

type Catalog struct {
	backend      Backend
	now          func() time.Time
	defaultLimit int
	maxLimit     int
	secret       []byte
	cursor       *cursorCodec
	logger       logging.Logger
}

type Option func(*Catalog)

// WithClock overrides the clock used to stamp created_at and updated_at.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) { c.now = now }
}

func WithPageSizes(defaultLimit, maxLimit int) Option {
	return func(c *Catalog) {
		c.defaultLimit = defaultLimit
		c.maxLimit = maxLimit
	}
}

// WithCursorSecret sets the key material cursors are signed with. Cursors
// issued under one secret are rejected under another.
func WithCursorSecret(secret []byte) Option {
	return func(c *Catalog) { c.secret = secret }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Catalog) { c.logger = l }
}

func New(backend Backend, opts ...Option) (*Catalog, error) {
	c := &Catalog{
		backend:      backend,
		now:          time.Now,
		defaultLimit: DefaultPageSize,
		maxLimit:     MaxPageSize,
		logger:       logging.Nop{},
	}
	for _, o := range opts {
		o(c)
	}
	if c.defaultLimit <= 0 || c.defaultLimit > c.maxLimit {
		return nil, fmt.Errorf("%w: page sizes must satisfy 0 < default <= max", common.ErrValidation)
	}
	if len(c.secret) == 0 {
		return nil, fmt.Errorf("%w: cursor secret is required", common.ErrValidation)
	}

	codec, err := newCursorCodec(c.secret)
	if err != nil {
		return nil, err
	}
	c.cursor = codec
	c.logger = c.logger.With("module", "catalog")
	return c, nil
}

// Create stamps a new record with the catalog clock and stores it as
// pending unless a status is already set.
func (c *Catalog) Create(ctx context.Context, a *models.Asset) error {
	now := c.Now()
	a.CreatedAt = now
	a.UpdatedAt = now
	if a.Status == "" {
		a.Status = models.StatusPending
	}
	return c.Put(ctx, a)
}

// Put inserts or overwrites the record with a.ID.
func (c *Catalog) Put(ctx context.Context, a *models.Asset) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("%w: asset id is required", common.ErrValidation)
	}
	return c.backend.Put(ctx, a)
}

// Update overwrites the existing record with a.ID. It returns
// common.ErrNotFound, writing nothing, once the record has been deleted.
func (c *Catalog) Update(ctx context.Context, a *models.Asset) error {
	if a == nil || a.ID == "" {
		return fmt.Errorf("%w: asset id is required", common.ErrValidation)
	}
	return c.backend.Update(ctx, a)
}

// Get returns the record with id regardless of status.
func (c *Catalog) Get(ctx context.Context, id string) (*models.Asset, error) {
	if id == "" {
		return nil, common.ErrNotFound
	}
	return c.backend.Get(ctx, id)
}

// Delete removes the record with id. Deleting a missing record succeeds.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return c.backend.Delete(ctx, id)
}

// Now returns the catalog clock at storage precision.
func (c *Catalog) Now() time.Time {
	return c.now().UTC().Truncate(time.Microsecond)
}

func (c *Catalog) limit(requested int) (int, error) {
	switch {
	case requested < 0:
		return 0, fmt.Errorf("%w: limit must be positive", common.ErrValidation)
	case requested == 0:
		return c.defaultLimit, nil
	case requested > c.maxLimit:
		return c.maxLimit, nil
	default:
		return requested, nil
	}
}

// Query returns completed assets matching f in ascending (created_at,
// asset_id) order. A cursor resumes strictly after the position it was issued
// for, even if that record has since been deleted.
func (c *Catalog) Query(ctx context.Context, f Filter) (*Page, error) {
	limit, err := c.limit(f.Limit)
	if err != nil {
		return nil, err
	}
	if f.CreatedAfter != nil && f.CreatedBefore != nil && f.CreatedAfter.After(*f.CreatedBefore) {
		return nil, fmt.Errorf("%w: created_after is later than created_before", common.ErrValidation)
	}

	q := RangeQuery{
		OwnerID: f.OwnerID,
		From:    f.CreatedAfter,
		To:      f.CreatedBefore,
		Limit:   limit + 1,
	}
	if f.Cursor != "" {
		p, err := c.cursor.decode(f.Cursor, f.OwnerID)
		if err != nil {
			return nil, err
		}
		q.After = &p
	}

	// One record beyond the page tells whether more exist.
	matches := make([]*models.Asset, 0, limit+1)
	reads := 0
	for len(matches) <= limit {
		rp, err := c.backend.Range(ctx, q)
		if err != nil {
			return nil, err
		}
		reads++
		for _, a := range rp.Assets {
			if !a.Completed() {
				continue
			}
			matches = append(matches, a)
			if len(matches) > limit {
				break
			}
		}
		if rp.Next == nil {
			break
		}
		q.After = rp.Next
	}

	page := &Page{Assets: matches}
	if len(matches) > limit {
		page.Assets = matches[:limit]
		page.HasMore = true
		page.Cursor, err = c.cursor.encode(f.OwnerID, PositionOf(page.Assets[limit-1]))
		if err != nil {
			return nil, err
		}
	}

	c.logger.Debug(ctx, "catalog query",
		"owner_id", f.OwnerID, "limit", limit, "returned", len(page.Assets), "has_more", page.HasMore, "reads", reads)
	return page, nil
}
