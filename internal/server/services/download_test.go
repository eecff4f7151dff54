package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDownload(t *testing.T) {
	f := newFixture(t)
	id := f.uploadCompleted(t, "u1")

	d, err := f.download.GetDownload(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, id, d.AssetID)
	assert.Equal(t, 15*time.Minute, d.ExpiresIn)
	assert.Equal(t, "holiday photo.png", d.DisplayName)
	assert.Equal(t, "image/png", d.ContentType)
	require.NotNil(t, d.Handle)
	assert.Equal(t, http.MethodGet, d.Handle.Method)
	assert.Contains(t, d.Handle.URL, "images/u1/"+id+"_holiday_photo.png")
}

func TestGetDownload_PendingIsNotFound(t *testing.T) {
	f := newFixture(t)
	res, err := f.upload.Reserve(context.Background(), reserveReq("u1", 1))
	require.NoError(t, err)
	f.store.calls = 0

	_, err = f.download.GetDownload(context.Background(), res.AssetID)
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Zero(t, f.store.calls)
}

func TestGetDownload_Errors(t *testing.T) {
	f := newFixture(t)

	_, err := f.download.GetDownload(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = f.download.GetDownload(context.Background(), "nope")
	assert.ErrorIs(t, err, common.ErrNotFound)

	id := f.uploadCompleted(t, "u1")
	f.store.issueErr = fmt.Errorf("%w: gcs", common.ErrStoreUnavailable)
	_, err = f.download.GetDownload(context.Background(), id)
	assert.ErrorIs(t, err, common.ErrStoreUnavailable)
}
