package ctl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
)

// localClient calls an in-process api.Server instead of dialing.
type localClient struct {
	s      *api.Server
	closed bool
}

func (l *localClient) ReserveUpload(ctx context.Context, req *api.ReserveUploadRequest, _ ...grpc.CallOption) (*api.ReserveUploadResponse, error) {
	return l.s.ReserveUpload(ctx, req)
}

func (l *localClient) ConfirmUpload(ctx context.Context, req *api.ConfirmUploadRequest, _ ...grpc.CallOption) (*api.ConfirmUploadResponse, error) {
	return l.s.ConfirmUpload(ctx, req)
}

func (l *localClient) ListAssets(ctx context.Context, req *api.ListAssetsRequest, _ ...grpc.CallOption) (*api.ListAssetsResponse, error) {
	return l.s.ListAssets(ctx, req)
}

func (l *localClient) GetDownload(ctx context.Context, req *api.GetDownloadRequest, _ ...grpc.CallOption) (*api.GetDownloadResponse, error) {
	return l.s.GetDownload(ctx, req)
}

func (l *localClient) DeleteAsset(ctx context.Context, req *api.DeleteAssetRequest, _ ...grpc.CallOption) (*api.DeleteAssetResponse, error) {
	return l.s.DeleteAsset(ctx, req)
}

func (l *localClient) Close() error {
	l.closed = true
	return nil
}

type testEnv struct {
	app    *App
	client *localClient
	store  *objectstore.Memory
	out    *bytes.Buffer
}

// newTestEnv serves an in-memory object store over HTTP so handles issued
// by the server are usable by the commands.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	var store *objectstore.Memory
	srv := httptest.NewServer(httpHandlerFunc(func() *objectstore.Memory { return store }))
	t.Cleanup(srv.Close)
	store = objectstore.NewMemory(srv.URL)

	n := 0
	ids := idgen.Func(func() string {
		n++
		return fmt.Sprintf("c%d", n)
	})
	s, err := api.NewInMemory(store, ids, nil)
	require.NoError(t, err)

	env := &testEnv{client: &localClient{s: s}, store: store, out: &bytes.Buffer{}}
	env.app = &App{
		Out:  env.out,
		HTTP: srv.Client(),
		Dial: func(string) (AssetClient, error) { return env.client, nil },
	}
	return env
}

func (e *testEnv) run(t *testing.T, args ...string) error {
	t.Helper()
	e.out.Reset()
	cmd := NewRootCmd(e.app)
	cmd.SetArgs(args)
	cmd.SetErr(&bytes.Buffer{})
	return cmd.ExecuteContext(context.Background())
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestUploadListDownloadDelete(t *testing.T) {
	e := newTestEnv(t)
	path := writeFile(t, "kitten.png", []byte("\x89PNG fake"))

	require.NoError(t, e.run(t, "upload", path, "--owner", "u1", "-t", "cats", "-t", "cute"))
	assert.Equal(t, "c1\n", e.out.String())
	assert.True(t, e.client.closed)

	obj, ok := e.store.Get("images/u1/c1_kitten.png")
	require.True(t, ok)
	assert.Equal(t, "image/png", obj.ContentType)

	require.NoError(t, e.run(t, "list", "--owner", "u1"))
	assert.Contains(t, e.out.String(), "ASSET_ID")
	assert.Contains(t, e.out.String(), "kitten.png")

	require.NoError(t, e.run(t, "download-url", "c1"))
	assert.Contains(t, e.out.String(), "GET ")
	assert.Contains(t, e.out.String(), `file "kitten.png" (image/png)`)

	dest := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, e.run(t, "download", "c1", "-O", dest))
	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG fake"), got)

	require.NoError(t, e.run(t, "delete", "c1", "--owner", "u1"))
	assert.Equal(t, "c1 deleted\n", e.out.String())
	_, ok = e.store.Get("images/u1/c1_kitten.png")
	assert.False(t, ok)
}

func TestList_PagesAndFollowsCursor(t *testing.T) {
	e := newTestEnv(t)
	for i := 0; i < 3; i++ {
		path := writeFile(t, fmt.Sprintf("p%d.gif", i), []byte("GIF89a"))
		require.NoError(t, e.run(t, "upload", path, "-o", "u1"))
	}

	require.NoError(t, e.run(t, "list", "-n", "2"))
	assert.Contains(t, e.out.String(), "more results: --cursor ")
	assert.NotContains(t, e.out.String(), "p2.gif")

	require.NoError(t, e.run(t, "list", "-n", "2", "--all"))
	for i := 0; i < 3; i++ {
		assert.Contains(t, e.out.String(), fmt.Sprintf("p%d.gif", i))
	}
	assert.NotContains(t, e.out.String(), "more results")
}

func TestList_BadTime(t *testing.T) {
	e := newTestEnv(t)
	err := e.run(t, "list", "--after", "yesterday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--after")
}

func TestUpload_RejectedByServer(t *testing.T) {
	e := newTestEnv(t)
	path := writeFile(t, "notes.txt", []byte("plain text"))

	err := e.run(t, "upload", path, "-o", "u1")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "reserve: "))
}

func TestDelete_RequiresOwner(t *testing.T) {
	e := newTestEnv(t)
	assert.Error(t, e.run(t, "delete", "c1"))
}

func TestMigrate(t *testing.T) {
	e := newTestEnv(t)
	var gotPath string
	e.app.Migrate = func(_ context.Context, path string) error {
		gotPath = path
		return nil
	}

	require.NoError(t, e.run(t, "migrate", "-c", "/etc/imagevault.yaml"))
	assert.Equal(t, "/etc/imagevault.yaml", gotPath)
	assert.Contains(t, e.out.String(), "up to date")

	e.app.Migrate = func(context.Context, string) error { return errors.New("no db") }
	assert.EqualError(t, e.run(t, "migrate"), "no db")
}

func TestDetectContentType(t *testing.T) {
	assert.Equal(t, "image/jpeg", detectContentType("a.jpg", nil))
	assert.Equal(t, "image/png", detectContentType("noext", []byte("\x89PNG\r\n\x1a\n0000")))
}

type httpHandlerFunc func() *objectstore.Memory

func (f httpHandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f().ServeHTTP(w, r)
}
