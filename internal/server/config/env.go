package config

import (
	"fmt"
	"strconv"
	"time"
)

// EnvPrefix prefixes every environment variable read by parseEnv.
const EnvPrefix = "IMAGEVAULT_"

type envSetter func(c *Config, v string) error

func envString(f func(c *Config) *string) envSetter {
	return func(c *Config, v string) error {
		*f(c) = v
		return nil
	}
}

func envDuration(f func(c *Config) *time.Duration) envSetter {
	return func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*f(c) = d
		return nil
	}
}

func envInt(f func(c *Config) *int) envSetter {
	return func(c *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		*f(c) = n
		return nil
	}
}

var envVars = map[string]envSetter{
	"HTTP_ADDR": envString(func(c *Config) *string { return &c.HTTPAddr }),
	"GRPC_ADDR": envString(func(c *Config) *string { return &c.GRPCAddr }),
	"LOG_LEVEL": envString(func(c *Config) *string { return &c.LogLevel }),

	"AWS_REGION":            envString(func(c *Config) *string { return &c.AWSRegion }),
	"AWS_ENDPOINT":          envString(func(c *Config) *string { return &c.AWSEndpoint }),
	"AWS_ACCESS_KEY_ID":     envString(func(c *Config) *string { return &c.AWSAccessKeyID }),
	"AWS_SECRET_ACCESS_KEY": envString(func(c *Config) *string { return &c.AWSSecretAccessKey }),

	"OBJECT_STORE_BACKEND": envString(func(c *Config) *string { return &c.ObjectStoreBackend }),
	"S3_BUCKET":            envString(func(c *Config) *string { return &c.S3Bucket }),
	"S3_USE_PATH_STYLE": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.S3UsePathStyle = b
		return nil
	},
	"GCS_BUCKET":              envString(func(c *Config) *string { return &c.GCSBucket }),
	"GCS_SIGNING_EMAIL":       envString(func(c *Config) *string { return &c.GCSSigningEmail }),
	"GCS_SIGNING_PRIVATE_KEY": envString(func(c *Config) *string { return &c.GCSSigningPrivateKey }),
	"GCS_CREDENTIALS_FILE":    envString(func(c *Config) *string { return &c.GCSCredentialsFile }),

	"CATALOG_BACKEND": envString(func(c *Config) *string { return &c.CatalogBackend }),
	"DYNAMODB_TABLE":  envString(func(c *Config) *string { return &c.DynamoDBTable }),
	"DYNAMODB_INDEX":  envString(func(c *Config) *string { return &c.DynamoDBIndex }),
	"DATABASE_DSN":    envString(func(c *Config) *string { return &c.DatabaseDSN }),

	"UPLOAD_URL_TTL":   envDuration(func(c *Config) *time.Duration { return &c.UploadURLTTL }),
	"DOWNLOAD_URL_TTL": envDuration(func(c *Config) *time.Duration { return &c.DownloadURLTTL }),
	"MAX_UPLOAD_BYTES": func(c *Config, v string) error {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		c.MaxUploadBytes = n
		return nil
	},
	"DEFAULT_PAGE_SIZE": envInt(func(c *Config) *int { return &c.DefaultPageSize }),
	"MAX_PAGE_SIZE":     envInt(func(c *Config) *int { return &c.MaxPageSize }),
	"CURSOR_SECRET":     envString(func(c *Config) *string { return &c.CursorSecret }),
}

// parseEnv overlays IMAGEVAULT_* variables. Empty values are ignored.
func parseEnv(config *Config, lookup func(string) (string, bool)) error {
	for name, set := range envVars {
		v, ok := lookup(EnvPrefix + name)
		if !ok || v == "" {
			continue
		}
		if err := set(config, v); err != nil {
			return fmt.Errorf("env %s%s: %w", EnvPrefix, name, err)
		}
	}
	return nil
}
