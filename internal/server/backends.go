package server

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/awsx"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/config"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

// ensureTableWait bounds how long Migrate waits for a new DynamoDB table.
const ensureTableWait = 2 * time.Minute

// backends holds the process-wide store clients. They are built once and
// passed explicitly to the catalog and the coordinators.
type backends struct {
	store   objectstore.Gateway
	memory  *objectstore.Memory
	catalog catalog.Backend
	dynamo  *catalog.Dynamo
	db      *sql.DB
	closers []func() error
}

func (b *backends) close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func needsAWS(cfg *config.Config) bool {
	return cfg.ObjectStoreBackend == config.BackendS3 || cfg.CatalogBackend == config.BackendDynamoDB
}

// memoryBaseURL is where the HTTP server exposes the in-memory store.
func memoryBaseURL(httpAddr string) string {
	host := httpAddr
	if strings.HasPrefix(host, ":") {
		host = "localhost" + host
	}
	return "http://" + host + "/objects"
}

func openBackends(ctx context.Context, cfg *config.Config, logger logging.Logger) (*backends, error) {
	b := &backends{}

	var awsCfg aws.Config
	if needsAWS(cfg) {
		var err error
		awsCfg, err = awsx.Load(ctx, awsx.Options{
			Region:          cfg.AWSRegion,
			Endpoint:        cfg.AWSEndpoint,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		})
		if err != nil {
			return nil, err
		}
	}

	switch cfg.ObjectStoreBackend {
	case config.BackendS3:
		b.store = objectstore.NewS3(awsCfg, cfg.S3Bucket, cfg.S3UsePathStyle)
	case config.BackendGCS:
		g, err := objectstore.NewGCS(ctx, objectstore.GCSOptions{
			Bucket:            cfg.GCSBucket,
			SigningEmail:      cfg.GCSSigningEmail,
			SigningPrivateKey: cfg.GCSSigningPrivateKey,
			CredentialsFile:   cfg.GCSCredentialsFile,
		})
		if err != nil {
			return nil, err
		}
		b.store = g
		b.closers = append(b.closers, g.Close)
	case config.BackendMemory:
		b.memory = objectstore.NewMemory(memoryBaseURL(cfg.HTTPAddr))
		b.store = b.memory
	default:
		return nil, fmt.Errorf("unknown object store backend %q", cfg.ObjectStoreBackend)
	}

	switch cfg.CatalogBackend {
	case config.BackendDynamoDB:
		b.dynamo = catalog.NewDynamo(awsCfg, cfg.DynamoDBTable, cfg.DynamoDBIndex)
		b.catalog = b.dynamo
	case config.BackendPostgres:
		db, err := catalog.OpenPostgres(ctx, cfg.DatabaseDSN)
		if err != nil {
			_ = b.close()
			return nil, err
		}
		b.db = db
		b.catalog = catalog.NewPostgres(db)
		b.closers = append(b.closers, db.Close)
	case config.BackendMemory:
		b.catalog = catalog.NewMemory()
	default:
		_ = b.close()
		return nil, fmt.Errorf("unknown catalog backend %q", cfg.CatalogBackend)
	}

	logger.Info(ctx, "backends ready", "object_store", cfg.ObjectStoreBackend, "catalog", cfg.CatalogBackend)
	return b, nil
}

// migrate prepares the catalog schema: goose migrations for PostgreSQL, the
// table and index for DynamoDB.
func (b *backends) migrate(ctx context.Context) error {
	switch {
	case b.db != nil:
		return catalog.RunMigrations(ctx, b.db)
	case b.dynamo != nil:
		return b.dynamo.EnsureTable(ctx, ensureTableWait)
	default:
		return nil
	}
}
