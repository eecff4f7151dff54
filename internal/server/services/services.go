// Package services holds the upload, download, delete and listing
// coordinators. Each operation is stateless: it reads the catalog, talks to
// the object store and writes the catalog, in that order, and leaves
// recovery from partial effects to a verbatim retry by the caller.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/config"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
)

// Catalog is the metadata store as seen by the coordinators.
type Catalog interface {
	Create(ctx context.Context, a *models.Asset) error
	Update(ctx context.Context, a *models.Asset) error
	Get(ctx context.Context, id string) (*models.Asset, error)
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, f catalog.Filter) (*catalog.Page, error)
	Now() time.Time
}

// Limits bounds requests and handle lifetimes.
type Limits struct {
	MaxUploadBytes  int64
	UploadURLTTL    time.Duration
	DownloadURLTTL  time.Duration
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultLimits mirrors the configuration defaults.
func DefaultLimits() Limits {
	return Limits{
		MaxUploadBytes:  10 << 20,
		UploadURLTTL:    time.Hour,
		DownloadURLTTL:  15 * time.Minute,
		DefaultPageSize: catalog.DefaultPageSize,
		MaxPageSize:     catalog.MaxPageSize,
	}
}

func LimitsFromConfig(cfg *config.Config) Limits {
	return Limits{
		MaxUploadBytes:  cfg.MaxUploadBytes,
		UploadURLTTL:    cfg.UploadURLTTL,
		DownloadURLTTL:  cfg.DownloadURLTTL,
		DefaultPageSize: cfg.DefaultPageSize,
		MaxPageSize:     cfg.MaxPageSize,
	}
}

// Coordinators bundles the operations exposed by the transports.
type Coordinators struct {
	Upload   *UploadService
	Download *DownloadService
	Delete   *DeleteService
	List     *ListService
}

func NewCoordinators(c Catalog, store objectstore.Gateway, ids idgen.Generator, limits Limits, logger logging.Logger) *Coordinators {
	return &Coordinators{
		Upload:   NewUploadService(c, store, ids, limits, logger),
		Download: NewDownloadService(c, store, limits, logger),
		Delete:   NewDeleteService(c, store, logger),
		List:     NewListService(c, limits, logger),
	}
}
