package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/imagevault/internal/flagx"
	"github.com/dmitrijs2005/imagevault/internal/timex"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the configuration. Zero values mean
// "not set" and leave the current setting alone; S3UsePathStyle is a
// pointer so that an explicit false can be expressed.
type fileConfig struct {
	HTTPAddr string `json:"http_addr" yaml:"http_addr"`
	GRPCAddr string `json:"grpc_addr" yaml:"grpc_addr"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	AWSRegion          string `json:"aws_region" yaml:"aws_region"`
	AWSEndpoint        string `json:"aws_endpoint" yaml:"aws_endpoint"`
	AWSAccessKeyID     string `json:"aws_access_key_id" yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `json:"aws_secret_access_key" yaml:"aws_secret_access_key"`

	ObjectStoreBackend   string `json:"object_store_backend" yaml:"object_store_backend"`
	S3Bucket             string `json:"s3_bucket" yaml:"s3_bucket"`
	S3UsePathStyle       *bool  `json:"s3_use_path_style" yaml:"s3_use_path_style"`
	GCSBucket            string `json:"gcs_bucket" yaml:"gcs_bucket"`
	GCSSigningEmail      string `json:"gcs_signing_email" yaml:"gcs_signing_email"`
	GCSSigningPrivateKey string `json:"gcs_signing_private_key" yaml:"gcs_signing_private_key"`
	GCSCredentialsFile   string `json:"gcs_credentials_file" yaml:"gcs_credentials_file"`

	CatalogBackend string `json:"catalog_backend" yaml:"catalog_backend"`
	DynamoDBTable  string `json:"dynamodb_table" yaml:"dynamodb_table"`
	DynamoDBIndex  string `json:"dynamodb_index" yaml:"dynamodb_index"`
	DatabaseDSN    string `json:"database_dsn" yaml:"database_dsn"`

	UploadURLTTL    timex.Duration `json:"upload_url_ttl" yaml:"upload_url_ttl"`
	DownloadURLTTL  timex.Duration `json:"download_url_ttl" yaml:"download_url_ttl"`
	MaxUploadBytes  int64          `json:"max_upload_bytes" yaml:"max_upload_bytes"`
	DefaultPageSize int            `json:"default_page_size" yaml:"default_page_size"`
	MaxPageSize     int            `json:"max_page_size" yaml:"max_page_size"`
	CursorSecret    string         `json:"cursor_secret" yaml:"cursor_secret"`
}

// parseFile overlays the file named by -c/--config, if any. Files ending
// in .yaml or .yml are read as YAML; anything else as JSON, where comments
// and trailing commas are tolerated.
func parseFile(config *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(jsonc.ToJSON(data), &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	fc.apply(config)
	return nil
}

func (fc *fileConfig) apply(c *Config) {
	setString(&c.HTTPAddr, fc.HTTPAddr)
	setString(&c.GRPCAddr, fc.GRPCAddr)
	setString(&c.LogLevel, fc.LogLevel)

	setString(&c.AWSRegion, fc.AWSRegion)
	setString(&c.AWSEndpoint, fc.AWSEndpoint)
	setString(&c.AWSAccessKeyID, fc.AWSAccessKeyID)
	setString(&c.AWSSecretAccessKey, fc.AWSSecretAccessKey)

	setString(&c.ObjectStoreBackend, fc.ObjectStoreBackend)
	setString(&c.S3Bucket, fc.S3Bucket)
	if fc.S3UsePathStyle != nil {
		c.S3UsePathStyle = *fc.S3UsePathStyle
	}
	setString(&c.GCSBucket, fc.GCSBucket)
	setString(&c.GCSSigningEmail, fc.GCSSigningEmail)
	setString(&c.GCSSigningPrivateKey, fc.GCSSigningPrivateKey)
	setString(&c.GCSCredentialsFile, fc.GCSCredentialsFile)

	setString(&c.CatalogBackend, fc.CatalogBackend)
	setString(&c.DynamoDBTable, fc.DynamoDBTable)
	setString(&c.DynamoDBIndex, fc.DynamoDBIndex)
	setString(&c.DatabaseDSN, fc.DatabaseDSN)

	if fc.UploadURLTTL.Duration > 0 {
		c.UploadURLTTL = fc.UploadURLTTL.Duration
	}
	if fc.DownloadURLTTL.Duration > 0 {
		c.DownloadURLTTL = fc.DownloadURLTTL.Duration
	}
	if fc.MaxUploadBytes > 0 {
		c.MaxUploadBytes = fc.MaxUploadBytes
	}
	if fc.DefaultPageSize > 0 {
		c.DefaultPageSize = fc.DefaultPageSize
	}
	if fc.MaxPageSize > 0 {
		c.MaxPageSize = fc.MaxPageSize
	}
	setString(&c.CursorSecret, fc.CursorSecret)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
