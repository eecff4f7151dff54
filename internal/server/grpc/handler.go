package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/imagevault/internal/proto"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
)

func (s *GRPCServer) ReserveUpload(ctx context.Context, req *pb.ReserveUploadRequest) (*pb.ReserveUploadResponse, error) {
	res, err := s.service.ReserveUpload(ctx, reserveRequestFromPB(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return reserveResponseToPB(res), nil
}

func (s *GRPCServer) ConfirmUpload(ctx context.Context, req *pb.ConfirmUploadRequest) (*pb.ConfirmUploadResponse, error) {
	res, err := s.service.ConfirmUpload(ctx, confirmRequestFromPB(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.ConfirmUploadResponse{AssetId: res.AssetID, Status: res.Status}, nil
}

func (s *GRPCServer) ListAssets(ctx context.Context, req *pb.ListAssetsRequest) (*pb.ListAssetsResponse, error) {
	res, err := s.service.ListAssets(ctx, listRequestFromPB(req))
	if err != nil {
		return nil, toStatus(err)
	}
	return listResponseToPB(res), nil
}

func (s *GRPCServer) GetDownload(ctx context.Context, req *pb.GetDownloadRequest) (*pb.GetDownloadResponse, error) {
	res, err := s.service.GetDownload(ctx, &api.GetDownloadRequest{AssetID: req.GetAssetId()})
	if err != nil {
		return nil, toStatus(err)
	}
	return downloadResponseToPB(res), nil
}

func (s *GRPCServer) DeleteAsset(ctx context.Context, req *pb.DeleteAssetRequest) (*pb.DeleteAssetResponse, error) {
	res, err := s.service.DeleteAsset(ctx, &api.DeleteAssetRequest{AssetID: req.GetAssetId(), OwnerID: req.GetOwnerId()})
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.DeleteAssetResponse{AssetId: res.AssetID, Status: res.Status}, nil
}
