package catalog

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
)

func storeUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", common.ErrStoreUnavailable, op, err)
}

// ErrStatusRegression reports a write that would move a completed record
// back to pending. Backends skip such writes.
var ErrStatusRegression = errors.New("completed asset cannot return to pending")

func regressed(a *models.Asset) error {
	return fmt.Errorf("%w: asset %s", ErrStatusRegression, a.ID)
}
