package config

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) { return "", false }

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, ":50051", c.GRPCAddr)
	assert.Equal(t, "us-east-1", c.AWSRegion)
	assert.Equal(t, BackendS3, c.ObjectStoreBackend)
	assert.Equal(t, BackendDynamoDB, c.CatalogBackend)
	assert.Equal(t, "ImageMetadata", c.DynamoDBTable)
	assert.Equal(t, "UserIdTimestampIndex", c.DynamoDBIndex)
	assert.Equal(t, time.Hour, c.UploadURLTTL)
	assert.Equal(t, 15*time.Minute, c.DownloadURLTTL)
	assert.Equal(t, int64(10<<20), c.MaxUploadBytes)
	assert.Equal(t, 50, c.DefaultPageSize)
	assert.Equal(t, 100, c.MaxPageSize)
	assert.Equal(t, DevCursorSecret, c.CursorSecret)
}

func TestValidate_DevCursorSecret(t *testing.T) {
	var c Config
	c.LoadDefaults()
	err := c.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Contains(t, err.Error(), "cursor secret")

	c.CatalogBackend = BackendPostgres
	assert.ErrorIs(t, c.Validate(), common.ErrValidation)

	c.CatalogBackend = BackendMemory
	require.NoError(t, c.Validate())

	c.CatalogBackend = BackendDynamoDB
	c.CursorSecret = "prod-secret"
	require.NoError(t, c.Validate())
}

func TestLoad_NoSources_RejectsDevSecret(t *testing.T) {
	_, err := load(nil, noEnv)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestLoad_SecretOnly_UsesDefaults(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "IMAGEVAULT_CURSOR_SECRET" {
			return "s3cr3t", true
		}
		return "", false
	}
	c, err := load(nil, lookup)
	require.NoError(t, err)

	var want Config
	want.LoadDefaults()
	want.CursorSecret = "s3cr3t"
	assert.Equal(t, want, *c)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	env := map[string]string{
		"IMAGEVAULT_CATALOG_BACKEND":   "postgres",
		"IMAGEVAULT_DATABASE_DSN":      "postgres://x",
		"IMAGEVAULT_UPLOAD_URL_TTL":    "5m",
		"IMAGEVAULT_MAX_PAGE_SIZE":     "80",
		"IMAGEVAULT_S3_USE_PATH_STYLE": "false",
		"IMAGEVAULT_MAX_UPLOAD_BYTES":  "2048",
		"IMAGEVAULT_LOG_LEVEL":         "",
		"IMAGEVAULT_CURSOR_SECRET":     "s3cr3t",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }

	c, err := load(nil, lookup)
	require.NoError(t, err)

	assert.Equal(t, BackendPostgres, c.CatalogBackend)
	assert.Equal(t, "postgres://x", c.DatabaseDSN)
	assert.Equal(t, 5*time.Minute, c.UploadURLTTL)
	assert.Equal(t, 80, c.MaxPageSize)
	assert.False(t, c.S3UsePathStyle)
	assert.Equal(t, int64(2048), c.MaxUploadBytes)
	assert.Equal(t, "info", c.LogLevel)
}

func TestLoad_BadEnvValue(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "IMAGEVAULT_DOWNLOAD_URL_TTL" {
			return "soon", true
		}
		return "", false
	}
	_, err := load(nil, lookup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMAGEVAULT_DOWNLOAD_URL_TTL")
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	lookup := func(k string) (string, bool) {
		if k == "IMAGEVAULT_HTTP_ADDR" {
			return ":9000", true
		}
		return "", false
	}

	c, err := load([]string{"-a", ":9090", "--catalog", "memory", "--object-store=memory", "--unknown", "x"}, lookup)
	require.NoError(t, err)

	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, BackendMemory, c.CatalogBackend)
	assert.Equal(t, BackendMemory, c.ObjectStoreBackend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"unknown object store", func(c *Config) { c.ObjectStoreBackend = "ftp" }},
		{"missing s3 bucket", func(c *Config) { c.S3Bucket = "" }},
		{"missing gcs bucket", func(c *Config) { c.ObjectStoreBackend = BackendGCS }},
		{"unknown catalog", func(c *Config) { c.CatalogBackend = "redis" }},
		{"missing table", func(c *Config) { c.DynamoDBTable = "" }},
		{"missing dsn", func(c *Config) { c.CatalogBackend = BackendPostgres; c.DatabaseDSN = "" }},
		{"zero ttl", func(c *Config) { c.UploadURLTTL = 0 }},
		{"zero max bytes", func(c *Config) { c.MaxUploadBytes = 0 }},
		{"default above max", func(c *Config) { c.DefaultPageSize = 200 }},
		{"no cursor secret", func(c *Config) { c.CursorSecret = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Config
			c.LoadDefaults()
			c.CursorSecret = "s3cr3t"
			require.NoError(t, c.Validate())
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, common.ErrValidation))
		})
	}
}
