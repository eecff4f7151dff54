package objectstore

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Gateway = (*Memory)(nil)
var _ Gateway = (*S3)(nil)
var _ Gateway = (*GCS)(nil)

func TestMemory_PutStatDelete(t *testing.T) {
	m := NewMemory("")
	ctx := context.Background()

	_, ok, err := m.Stat(ctx, "images/u/a_x.png")
	require.NoError(t, err)
	assert.False(t, ok)

	m.Put("images/u/a_x.png", []byte("png"), "image/png")
	info, ok, err := m.Stat(ctx, "images/u/a_x.png")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, ObjectInfo{Size: 3, ContentType: "image/png"}, info)

	require.NoError(t, m.Delete(ctx, "images/u/a_x.png"))
	require.NoError(t, m.Delete(ctx, "images/u/a_x.png"))
	_, ok, _ = m.Stat(ctx, "images/u/a_x.png")
	assert.False(t, ok)
}

func TestMemory_HandlesOverHTTP(t *testing.T) {
	srv := httptest.NewUnstartedServer(nil)
	m := NewMemory("")
	mux := http.NewServeMux()
	mux.Handle("/objects/", http.StripPrefix("/objects", m))
	srv.Config.Handler = mux
	srv.Start()
	defer srv.Close()
	m.baseURL = srv.URL + "/objects"

	ctx := context.Background()
	key := "images/owner 1/a1_cat.png"
	data := []byte("0123456789")

	up, err := m.IssueUploadHandle(ctx, key, "image/png", int64(len(data)), time.Minute)
	require.NoError(t, err)

	// Wrong size is rejected.
	req, _ := http.NewRequest(up.Method, up.URL, bytes.NewReader(data[:4]))
	req.Header.Set("Content-Type", "image/png")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req, _ = http.NewRequest(up.Method, up.URL, bytes.NewReader(data))
	req.Header.Set("Content-Type", "image/png")
	resp, err = srv.Client().Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, ok, _ := m.Stat(ctx, key)
	assert.True(t, ok)

	down, err := m.IssueDownloadHandle(ctx, key, "cat.png", time.Minute)
	require.NoError(t, err)
	resp, err = srv.Client().Get(down.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, data, body)
	assert.Equal(t, "attachment; filename=cat.png", resp.Header.Get("Content-Disposition"))
}

func TestMemory_ExpiredHandle(t *testing.T) {
	m := NewMemory("http://local/objects")
	m.now = func() time.Time { return fixedNow }

	h, err := m.IssueDownloadHandle(context.Background(), "k", "", time.Minute)
	require.NoError(t, err)

	m.now = func() time.Time { return fixedNow.Add(2 * time.Minute) }
	req := httptest.NewRequest(http.MethodGet, h.URL, nil)
	req.URL.Path = "/k"
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMemory_TamperedHandleRejected(t *testing.T) {
	m := NewMemory("http://local/objects")
	ctx := context.Background()

	up, err := m.IssueUploadHandle(ctx, "images/u/a_x.png", "image/png", 4, time.Minute)
	require.NoError(t, err)

	serve := func(method, target, path string, body []byte) int {
		req := httptest.NewRequest(method, target, bytes.NewReader(body))
		req.URL.Path = path
		req.Header.Set("Content-Type", "image/png")
		rec := httptest.NewRecorder()
		m.ServeHTTP(rec, req)
		return rec.Code
	}

	u, err := url.Parse(up.URL)
	require.NoError(t, err)

	t.Run("larger size", func(t *testing.T) {
		q := u.Query()
		q.Set("size", "8")
		code := serve(http.MethodPut, "/?"+q.Encode(), "/images/u/a_x.png", []byte("12345678"))
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("other key", func(t *testing.T) {
		code := serve(http.MethodPut, "/?"+u.RawQuery, "/images/v/b_y.png", []byte("1234"))
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("upload handle used for download", func(t *testing.T) {
		m.Put("images/u/a_x.png", []byte("1234"), "image/png")
		code := serve(http.MethodGet, "/?"+u.RawQuery, "/images/u/a_x.png", nil)
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("unsigned", func(t *testing.T) {
		q := u.Query()
		q.Del("sig")
		code := serve(http.MethodPut, "/?"+q.Encode(), "/images/u/a_x.png", []byte("1234"))
		assert.Equal(t, http.StatusForbidden, code)
	})

	t.Run("untouched", func(t *testing.T) {
		code := serve(http.MethodPut, "/?"+u.RawQuery, "/images/u/a_x.png", []byte("1234"))
		assert.Equal(t, http.StatusOK, code)
	})

	_, ok, _ := m.Stat(ctx, "images/v/b_y.png")
	assert.False(t, ok)
}
