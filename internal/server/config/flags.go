package config

import (
	"fmt"

	"github.com/dmitrijs2005/imagevault/internal/flagx"
	"github.com/spf13/pflag"
)

// newFlagSet binds every overridable setting to a flag whose default is the
// value already present in config, so unset flags change nothing.
//
// Short forms:
//
//	-a  HTTP bind address        -g  gRPC bind address
//	-l  log level                -r  AWS region
//	-e  AWS endpoint             -b  S3 bucket
//	-d  PostgreSQL DSN           -t  DynamoDB table
func newFlagSet(config *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("imagevault", pflag.ContinueOnError)

	fs.StringVarP(&config.HTTPAddr, "http-addr", "a", config.HTTPAddr, "address and port for the HTTP API")
	fs.StringVarP(&config.GRPCAddr, "grpc-addr", "g", config.GRPCAddr, "address and port for the gRPC API (empty disables it)")
	fs.StringVarP(&config.LogLevel, "log-level", "l", config.LogLevel, "debug, info, warn or error")

	fs.StringVarP(&config.AWSRegion, "aws-region", "r", config.AWSRegion, "AWS region")
	fs.StringVarP(&config.AWSEndpoint, "aws-endpoint", "e", config.AWSEndpoint, "AWS endpoint override (LocalStack, MinIO)")
	fs.StringVar(&config.AWSAccessKeyID, "aws-access-key-id", config.AWSAccessKeyID, "static AWS access key id")
	fs.StringVar(&config.AWSSecretAccessKey, "aws-secret-access-key", config.AWSSecretAccessKey, "static AWS secret access key")

	fs.StringVar(&config.ObjectStoreBackend, "object-store", config.ObjectStoreBackend, "object store backend: s3, gcs or memory")
	fs.StringVarP(&config.S3Bucket, "s3-bucket", "b", config.S3Bucket, "S3 bucket for image bytes")
	fs.BoolVar(&config.S3UsePathStyle, "s3-path-style", config.S3UsePathStyle, "use path-style S3 addressing")
	fs.StringVar(&config.GCSBucket, "gcs-bucket", config.GCSBucket, "GCS bucket for image bytes")
	fs.StringVar(&config.GCSSigningEmail, "gcs-signing-email", config.GCSSigningEmail, "service account email used to sign GCS URLs")
	fs.StringVar(&config.GCSSigningPrivateKey, "gcs-signing-private-key", config.GCSSigningPrivateKey, "PEM private key used to sign GCS URLs")
	fs.StringVar(&config.GCSCredentialsFile, "gcs-credentials-file", config.GCSCredentialsFile, "GCS service account credentials file")

	fs.StringVar(&config.CatalogBackend, "catalog", config.CatalogBackend, "catalog backend: dynamodb, postgres or memory")
	fs.StringVarP(&config.DynamoDBTable, "dynamodb-table", "t", config.DynamoDBTable, "DynamoDB table name")
	fs.StringVar(&config.DynamoDBIndex, "dynamodb-index", config.DynamoDBIndex, "DynamoDB owner/created_at index name")
	fs.StringVarP(&config.DatabaseDSN, "database-dsn", "d", config.DatabaseDSN, "PostgreSQL DSN")

	fs.DurationVar(&config.UploadURLTTL, "upload-url-ttl", config.UploadURLTTL, "lifetime of upload handles")
	fs.DurationVar(&config.DownloadURLTTL, "download-url-ttl", config.DownloadURLTTL, "lifetime of download handles")
	fs.Int64Var(&config.MaxUploadBytes, "max-upload-bytes", config.MaxUploadBytes, "largest accepted image")
	fs.IntVar(&config.DefaultPageSize, "default-page-size", config.DefaultPageSize, "listing page size when none is given")
	fs.IntVar(&config.MaxPageSize, "max-page-size", config.MaxPageSize, "largest listing page; bigger requests are clamped")
	fs.StringVar(&config.CursorSecret, "cursor-secret", config.CursorSecret, "key authenticating pagination cursors")

	return fs
}

// parseFlags overlays command-line flags. Arguments that belong to other
// components (for example -c) are filtered out first.
func parseFlags(config *Config, args []string) error {
	fs := newFlagSet(config)

	var allowed []string
	fs.VisitAll(func(f *pflag.Flag) {
		allowed = append(allowed, "--"+f.Name)
		if f.Shorthand != "" {
			allowed = append(allowed, "-"+f.Shorthand)
		}
	})

	if err := fs.Parse(flagx.FilterArgs(args, allowed)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	return nil
}
