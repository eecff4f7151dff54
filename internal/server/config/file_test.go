package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTemp(t, "imagevault.yaml", `
http_addr: ":7000"
catalog_backend: postgres
database_dsn: postgres://db/imagevault
s3_use_path_style: false
upload_url_ttl: 30m
download_url_ttl: 60000000000
max_page_size: 70
cursor_secret: s3cr3t
`)

	var got Config
	got.LoadDefaults()
	require.NoError(t, parseFile(&got, []string{"-c", path}))

	var want Config
	want.LoadDefaults()
	want.HTTPAddr = ":7000"
	want.CatalogBackend = BackendPostgres
	want.DatabaseDSN = "postgres://db/imagevault"
	want.S3UsePathStyle = false
	want.UploadURLTTL = 30 * time.Minute
	want.DownloadURLTTL = time.Minute
	want.MaxPageSize = 70
	want.CursorSecret = "s3cr3t"

	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseFile_JSONWithComments(t *testing.T) {
	path := writeTemp(t, "imagevault.json", `{
  // local development against MinIO
  "object_store_backend": "s3",
  "s3_bucket": "images",
  "aws_endpoint": "http://127.0.0.1:9000",
  "dynamodb_table": "Assets", /* renamed table */
}`)

	var got Config
	got.LoadDefaults()
	require.NoError(t, parseFile(&got, []string{"--config=" + path}))

	assert.Equal(t, "images", got.S3Bucket)
	assert.Equal(t, "http://127.0.0.1:9000", got.AWSEndpoint)
	assert.Equal(t, "Assets", got.DynamoDBTable)
	assert.True(t, got.S3UsePathStyle, "absent key keeps the default")
}

func TestParseFile_NoFlag_NoChanges(t *testing.T) {
	var got Config
	got.LoadDefaults()
	require.NoError(t, parseFile(&got, []string{"-a", ":1"}))

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, got)
}

func TestParseFile_Errors(t *testing.T) {
	var c Config

	err := parseFile(&c, []string{"-c", filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)

	bad := writeTemp(t, "bad.json", `{ this is not valid json`)
	err = parseFile(&c, []string{"-c", bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}
