package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AssetService is implemented by *api.Server.
type AssetService interface {
	ReserveUpload(context.Context, *api.ReserveUploadRequest) (*api.ReserveUploadResponse, error)
	ConfirmUpload(context.Context, *api.ConfirmUploadRequest) (*api.ConfirmUploadResponse, error)
	ListAssets(context.Context, *api.ListAssetsRequest) (*api.ListAssetsResponse, error)
	GetDownload(context.Context, *api.GetDownloadRequest) (*api.GetDownloadResponse, error)
	DeleteAsset(context.Context, *api.DeleteAssetRequest) (*api.DeleteAssetResponse, error)
}

// Code maps an error to its gRPC status code.
func Code(err error) codes.Code {
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, common.ErrValidation), errors.Is(err, common.ErrInvalidCursor):
		return codes.InvalidArgument
	case errors.Is(err, common.ErrUploadNotFound):
		return codes.FailedPrecondition
	case errors.Is(err, common.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, common.ErrUnauthorized):
		return codes.PermissionDenied
	case errors.Is(err, common.ErrPartialFailure):
		return codes.Aborted
	case errors.Is(err, common.ErrStoreUnavailable):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

func toStatus(err error) error {
	code := Code(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}
