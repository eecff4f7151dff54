package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_ReserveConfirmListDownloadDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := reserveReq("u1", 100)
	res, err := f.upload.Reserve(ctx, req)
	require.NoError(t, err)

	f.store.Put(res.StorageKey, make([]byte, 100), req.ContentType)

	conf, err := f.upload.Confirm(ctx, confirmReqFor(req, res.AssetID))
	require.NoError(t, err)
	assert.Equal(t, "completed", string(conf.Status))

	list, err := f.list.List(ctx, ListRequest{OwnerID: "u1"})
	require.NoError(t, err)
	require.Len(t, list.Assets, 1)
	assert.Equal(t, res.AssetID, list.Assets[0].ID)

	dl, err := f.download.GetDownload(ctx, res.AssetID)
	require.NoError(t, err)
	assert.NotEmpty(t, dl.Handle.URL)

	require.NoError(t, f.delete.Delete(ctx, res.AssetID, "u1"))

	list, err = f.list.List(ctx, ListRequest{OwnerID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, list.Assets)

	_, ok, err := f.store.Stat(ctx, res.StorageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}
