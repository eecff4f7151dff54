package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReserve_CreatesPendingRecord(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.upload.Reserve(ctx, reserveReq("u1", 100))
	require.NoError(t, err)

	assert.Equal(t, "asset-001", res.AssetID)
	assert.Equal(t, "images/u1/asset-001_holiday_photo.png", res.StorageKey)
	assert.Equal(t, time.Hour, res.ExpiresIn)
	require.NotNil(t, res.Upload)
	assert.Equal(t, http.MethodPut, res.Upload.Method)
	assert.Equal(t, "image/png", res.Upload.Headers["Content-Type"])
	assert.Equal(t, "100", res.Upload.Headers["Content-Length"])

	a, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, a.Status)
	assert.Equal(t, "u1", a.OwnerID)
	assert.Equal(t, []string{"beach", "sun"}, a.Tags)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestReserve_ValidationBeforeExternalCalls(t *testing.T) {
	f := newFixture(t)

	bad := []ReserveRequest{
		{OwnerID: "u1", DisplayName: "a.png", ContentType: "image/png", ByteSize: 0},
		{OwnerID: "u1", DisplayName: "a.png", ContentType: "", ByteSize: 1},
		{OwnerID: "u1", DisplayName: "a.png", ContentType: "text/plain", ByteSize: 1},
		{OwnerID: "u1", DisplayName: "a.png", ContentType: "image/png", ByteSize: 10<<20 + 1},
		{OwnerID: "", DisplayName: "a.png", ContentType: "image/png", ByteSize: 1},
	}
	for i, req := range bad {
		_, err := f.upload.Reserve(context.Background(), req)
		assert.ErrorIs(t, err, common.ErrValidation, "case %d", i)
	}

	assert.Zero(t, f.store.calls)
	assert.Zero(t, f.catalog.calls)
}

func TestReserve_GatewayFailure(t *testing.T) {
	f := newFixture(t)
	f.store.issueErr = fmt.Errorf("%w: s3 down", common.ErrStoreUnavailable)

	_, err := f.upload.Reserve(context.Background(), reserveReq("u1", 10))
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.Zero(t, f.catalog.calls, "no record without a handle")
}

func TestReserve_CatalogFailure(t *testing.T) {
	f := newFixture(t)
	f.catalog.putErr = fmt.Errorf("%w: dynamo down", common.ErrStoreUnavailable)

	_, err := f.upload.Reserve(context.Background(), reserveReq("u1", 10))
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}

func TestConfirm_FailsUntilObjectExists(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	assert.ErrorIs(t, err, common.ErrUploadNotFound)

	a, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, a.Status)

	f.store.Put(res.StorageKey, []byte("abc"), "image/png")

	out, err := f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	require.NoError(t, err)
	assert.Equal(t, &Confirmation{AssetID: res.AssetID, Status: models.StatusCompleted}, out)

	a, err = f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, a.Status)
	assert.True(t, a.UpdatedAt.After(a.CreatedAt))
}

func TestConfirm_Idempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)
	f.store.Put(res.StorageKey, []byte("abc"), "image/png")

	first, err := f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	require.NoError(t, err)
	before, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)

	second, err := f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	require.NoError(t, err)
	after, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, before, after)
}

func TestConfirm_AmendsTagsAndDescriptionOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)
	f.store.Put(res.StorageKey, []byte("abc"), "image/png")

	c := confirmReqFor(req, res.AssetID)
	c.Tags = []string{"edited"}
	c.Description = "amended"
	c.DisplayName = "renamed.png"
	_, err = f.upload.Confirm(ctx, c)
	require.NoError(t, err)

	a, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, []string{"edited"}, a.Tags)
	assert.Equal(t, "amended", a.Description)
	assert.Equal(t, "holiday photo.png", a.DisplayName)
	assert.Equal(t, res.StorageKey, a.StorageKey)
}

func TestConfirm_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, "unknown"))
	assert.ErrorIs(t, err, common.ErrNotFound)

	other := confirmReqFor(req, res.AssetID)
	other.OwnerID = "u2"
	_, err = f.upload.Confirm(ctx, other)
	assert.ErrorIs(t, err, common.ErrUnauthorized)

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, ""))
	assert.ErrorIs(t, err, common.ErrValidation)

	f.store.statErr = fmt.Errorf("%w: %w", common.ErrStoreUnavailable, context.DeadlineExceeded)
	_, err = f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
}

func TestConfirm_RejectsObjectOfOtherSize(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)
	f.store.Put(res.StorageKey, []byte("abcdef"), "image/png")

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	assert.ErrorIs(t, err, common.ErrUploadNotFound)

	a, err := f.catalog.Get(ctx, res.AssetID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, a.Status)
}

func TestConfirm_DeleteDuringConfirmStaysDeleted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	req := reserveReq("u1", 3)

	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)
	f.store.Put(res.StorageKey, []byte("abc"), "image/png")

	// The delete lands after confirm has seen both the record and the
	// object, before it writes the completed record.
	f.store.afterStat = func() {
		f.store.afterStat = nil
		require.NoError(t, f.delete.Delete(ctx, res.AssetID, "u1"))
	}

	_, err = f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = f.catalog.Get(ctx, res.AssetID)
	assert.ErrorIs(t, err, common.ErrNotFound, "confirm must not resurrect a deleted asset")

	list, err := f.list.List(ctx, ListRequest{OwnerID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, list.Assets)

	_, err = f.download.GetDownload(ctx, res.AssetID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
