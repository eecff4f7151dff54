package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()

	args := []string{
		"-c", "ignored.yaml",
		"-a", "127.0.0.1:9090",
		"-g", "",
		"-r", "eu-west-1",
		"-b", "bucket",
		"-t", "Assets",
		"--dynamodb-index=ByOwner",
		"--upload-url-ttl", "10m",
		"--max-upload-bytes", "1024",
		"--s3-path-style=false",
	}
	require.NoError(t, parseFlags(&c, args))

	assert.Equal(t, "127.0.0.1:9090", c.HTTPAddr)
	assert.Equal(t, "eu-west-1", c.AWSRegion)
	assert.Equal(t, "bucket", c.S3Bucket)
	assert.Equal(t, "Assets", c.DynamoDBTable)
	assert.Equal(t, "ByOwner", c.DynamoDBIndex)
	assert.Equal(t, 10*time.Minute, c.UploadURLTTL)
	assert.Equal(t, int64(1024), c.MaxUploadBytes)
	assert.False(t, c.S3UsePathStyle)
}

func TestParseFlags_InvalidValue(t *testing.T) {
	var c Config
	c.LoadDefaults()

	err := parseFlags(&c, []string{"--max-page-size", "many"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse flags")
}
