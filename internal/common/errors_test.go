package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"validation", fmt.Errorf("byte_size: %w", ErrValidation), "ValidationError"},
		{"not found", ErrNotFound, "NotFound"},
		{"upload not found", fmt.Errorf("key x: %w", ErrUploadNotFound), "UploadNotFound"},
		{"unauthorized", ErrUnauthorized, "Unauthorized"},
		{"cursor", ErrInvalidCursor, "InvalidCursor"},
		{"store", fmt.Errorf("dynamodb: %w", ErrStoreUnavailable), "StoreUnavailable"},
		{"partial wins over store", fmt.Errorf("%w: %w", ErrPartialFailure, ErrStoreUnavailable), "PartialFailure"},
		{"unknown", errors.New("boom"), "InternalError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Kind(tt.err))
		})
	}
}
