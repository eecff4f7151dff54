package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
	"github.com/stretchr/testify/require"
)

// countingGateway wraps the in-memory store, counting calls and injecting
// failures.
type countingGateway struct {
	*objectstore.Memory

	calls     int
	deleteErr error
	statErr   error
	issueErr  error
	// afterStat runs once Stat has looked at the store, letting a test
	// interleave other calls before the caller acts on the result.
	afterStat func()
}

func (g *countingGateway) IssueUploadHandle(ctx context.Context, key, contentType string, size int64, ttl time.Duration) (*objectstore.Handle, error) {
	g.calls++
	if g.issueErr != nil {
		return nil, g.issueErr
	}
	return g.Memory.IssueUploadHandle(ctx, key, contentType, size, ttl)
}

func (g *countingGateway) IssueDownloadHandle(ctx context.Context, key, filename string, ttl time.Duration) (*objectstore.Handle, error) {
	g.calls++
	if g.issueErr != nil {
		return nil, g.issueErr
	}
	return g.Memory.IssueDownloadHandle(ctx, key, filename, ttl)
}

func (g *countingGateway) Stat(ctx context.Context, key string) (objectstore.ObjectInfo, bool, error) {
	g.calls++
	if g.statErr != nil {
		return objectstore.ObjectInfo{}, false, g.statErr
	}
	info, ok, err := g.Memory.Stat(ctx, key)
	if g.afterStat != nil {
		g.afterStat()
	}
	return info, ok, err
}

func (g *countingGateway) Delete(ctx context.Context, key string) error {
	g.calls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	return g.Memory.Delete(ctx, key)
}

// flakyCatalog wraps a real catalog and fails selected operations.
type flakyCatalog struct {
	Catalog

	calls     int
	deleteErr error
	putErr    error
}

func (c *flakyCatalog) Create(ctx context.Context, a *models.Asset) error {
	c.calls++
	if c.putErr != nil {
		return c.putErr
	}
	return c.Catalog.Create(ctx, a)
}

func (c *flakyCatalog) Update(ctx context.Context, a *models.Asset) error {
	c.calls++
	if c.putErr != nil {
		return c.putErr
	}
	return c.Catalog.Update(ctx, a)
}

func (c *flakyCatalog) Get(ctx context.Context, id string) (*models.Asset, error) {
	c.calls++
	return c.Catalog.Get(ctx, id)
}

func (c *flakyCatalog) Delete(ctx context.Context, id string) error {
	c.calls++
	if c.deleteErr != nil {
		return c.deleteErr
	}
	return c.Catalog.Delete(ctx, id)
}

func (c *flakyCatalog) Query(ctx context.Context, f catalog.Filter) (*catalog.Page, error) {
	c.calls++
	return c.Catalog.Query(ctx, f)
}

type fixture struct {
	catalog  *flakyCatalog
	store    *countingGateway
	upload   *UploadService
	download *DownloadService
	delete   *DeleteService
	list     *ListService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	tick := func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	cat, err := catalog.New(catalog.NewMemory(), catalog.WithClock(tick), catalog.WithCursorSecret([]byte("test")))
	require.NoError(t, err)

	n := 0
	ids := idgen.Func(func() string {
		n++
		return fmt.Sprintf("asset-%03d", n)
	})

	f := &fixture{
		catalog: &flakyCatalog{Catalog: cat},
		store:   &countingGateway{Memory: objectstore.NewMemory("")},
	}
	limits := DefaultLimits()
	log := logging.Nop{}
	cs := NewCoordinators(f.catalog, f.store, ids, limits, log)
	f.upload, f.download, f.delete, f.list = cs.Upload, cs.Download, cs.Delete, cs.List
	return f
}

func reserveReq(owner string, size int64) ReserveRequest {
	return ReserveRequest{
		OwnerID:     owner,
		DisplayName: "holiday photo.png",
		ContentType: "image/png",
		ByteSize:    size,
		Tags:        []string{"beach", "beach", "sun"},
		Description: "first day",
	}
}

func confirmReqFor(r ReserveRequest, assetID string) ConfirmRequest {
	return ConfirmRequest{
		AssetID:     assetID,
		OwnerID:     r.OwnerID,
		DisplayName: r.DisplayName,
		ContentType: r.ContentType,
		ByteSize:    r.ByteSize,
		Tags:        r.Tags,
		Description: r.Description,
	}
}

// uploadCompleted runs reserve, transfer and confirm for owner.
func (f *fixture) uploadCompleted(t *testing.T, owner string) string {
	t.Helper()
	ctx := context.Background()
	req := reserveReq(owner, 4)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)
	f.store.Put(res.StorageKey, []byte("abcd"), req.ContentType)

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	require.NoError(t, err)
	return res.AssetID
}

func intPtr(v int) *int { return &v }
