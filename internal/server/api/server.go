package api

import (
	"context"

	"github.com/dmitrijs2005/imagevault/internal/server/services"
)

// Server answers transport messages.
type Server struct {
	svc *services.Coordinators
}

func NewServer(svc *services.Coordinators) *Server {
	return &Server{svc: svc}
}

func (s *Server) ReserveUpload(ctx context.Context, req *ReserveUploadRequest) (*ReserveUploadResponse, error) {
	res, err := s.svc.Upload.Reserve(ctx, services.ReserveRequest{
		OwnerID:     req.OwnerID,
		DisplayName: req.DisplayName,
		ContentType: req.ContentType,
		ByteSize:    req.ByteSize,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	return &ReserveUploadResponse{
		AssetID:      res.AssetID,
		StorageKey:   res.StorageKey,
		UploadHandle: res.Upload,
		ExpiresIn:    seconds(res.ExpiresIn),
	}, nil
}

func (s *Server) ConfirmUpload(ctx context.Context, req *ConfirmUploadRequest) (*ConfirmUploadResponse, error) {
	res, err := s.svc.Upload.Confirm(ctx, services.ConfirmRequest{
		AssetID:     req.AssetID,
		OwnerID:     req.OwnerID,
		DisplayName: req.DisplayName,
		ContentType: req.ContentType,
		ByteSize:    req.ByteSize,
		Tags:        req.Tags,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}
	return &ConfirmUploadResponse{AssetID: res.AssetID, Status: string(res.Status)}, nil
}

func (s *Server) ListAssets(ctx context.Context, req *ListAssetsRequest) (*ListAssetsResponse, error) {
	res, err := s.svc.List.List(ctx, services.ListRequest{
		OwnerID:       req.OwnerID,
		CreatedAfter:  req.CreatedAfter,
		CreatedBefore: req.CreatedBefore,
		Limit:         req.Limit,
		Cursor:        req.Cursor,
	})
	if err != nil {
		return nil, err
	}
	return &ListAssetsResponse{
		Records: res.Assets,
		Count:   len(res.Assets),
		Cursor:  res.Cursor,
		HasMore: res.HasMore,
	}, nil
}

func (s *Server) GetDownload(ctx context.Context, req *GetDownloadRequest) (*GetDownloadResponse, error) {
	res, err := s.svc.Download.GetDownload(ctx, req.AssetID)
	if err != nil {
		return nil, err
	}
	return &GetDownloadResponse{
		AssetID:        res.AssetID,
		DownloadHandle: res.Handle,
		ExpiresIn:      seconds(res.ExpiresIn),
		DisplayName:    res.DisplayName,
		ContentType:    res.ContentType,
	}, nil
}

func (s *Server) DeleteAsset(ctx context.Context, req *DeleteAssetRequest) (*DeleteAssetResponse, error) {
	if err := s.svc.Delete.Delete(ctx, req.AssetID, req.OwnerID); err != nil {
		return nil, err
	}
	return &DeleteAssetResponse{AssetID: req.AssetID, Status: StatusDeleted}, nil
}
