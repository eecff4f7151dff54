package api

import (
	"time"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/dmitrijs2005/imagevault/internal/server/catalog"
	"github.com/dmitrijs2005/imagevault/internal/server/idgen"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
	"github.com/dmitrijs2005/imagevault/internal/server/services"
)

// NewInMemory builds a Server over the in-memory catalog and object store,
// for local runs and transport tests. now may be nil.
func NewInMemory(store *objectstore.Memory, ids idgen.Generator, now func() time.Time) (*Server, error) {
	opts := []catalog.Option{catalog.WithCursorSecret([]byte("in-memory"))}
	if now != nil {
		opts = append(opts, catalog.WithClock(now))
	}
	cat, err := catalog.New(catalog.NewMemory(), opts...)
	if err != nil {
		return nil, err
	}
	return NewServer(services.NewCoordinators(cat, store, ids, services.DefaultLimits(), logging.Nop{})), nil
}
