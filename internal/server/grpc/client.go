package grpc

import (
	"context"

	pb "github.com/dmitrijs2005/imagevault/internal/proto"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

// Client calls AssetService over a plaintext connection and speaks the api
// messages on both sides.
type Client struct {
	conn *grpc.ClientConn
	rpc  pb.AssetServiceClient
}

// NewClient connects to target. Extra options are appended to the defaults.
func NewClient(target string, opts ...grpc.DialOption) (*Client, error) {
	defaults := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	conn, err := grpc.NewClient(target, append(defaults, opts...)...)
	if err != nil {
		return nil, err
	}
	return &Client{conn: conn, rpc: pb.NewAssetServiceClient(conn)}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// WithRequestID attaches a request id to outgoing calls made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, requestIDKey, id)
}

func (c *Client) ReserveUpload(ctx context.Context, req *api.ReserveUploadRequest, opts ...grpc.CallOption) (*api.ReserveUploadResponse, error) {
	res, err := c.rpc.ReserveUpload(ctx, reserveRequestToPB(req), opts...)
	if err != nil {
		return nil, err
	}
	return reserveResponseFromPB(res), nil
}

func (c *Client) ConfirmUpload(ctx context.Context, req *api.ConfirmUploadRequest, opts ...grpc.CallOption) (*api.ConfirmUploadResponse, error) {
	res, err := c.rpc.ConfirmUpload(ctx, confirmRequestToPB(req), opts...)
	if err != nil {
		return nil, err
	}
	return &api.ConfirmUploadResponse{AssetID: res.GetAssetId(), Status: res.GetStatus()}, nil
}

func (c *Client) ListAssets(ctx context.Context, req *api.ListAssetsRequest, opts ...grpc.CallOption) (*api.ListAssetsResponse, error) {
	res, err := c.rpc.ListAssets(ctx, listRequestToPB(req), opts...)
	if err != nil {
		return nil, err
	}
	return listResponseFromPB(res), nil
}

func (c *Client) GetDownload(ctx context.Context, req *api.GetDownloadRequest, opts ...grpc.CallOption) (*api.GetDownloadResponse, error) {
	res, err := c.rpc.GetDownload(ctx, &pb.GetDownloadRequest{AssetId: req.AssetID}, opts...)
	if err != nil {
		return nil, err
	}
	return downloadResponseFromPB(res), nil
}

func (c *Client) DeleteAsset(ctx context.Context, req *api.DeleteAssetRequest, opts ...grpc.CallOption) (*api.DeleteAssetResponse, error) {
	res, err := c.rpc.DeleteAsset(ctx, &pb.DeleteAssetRequest{AssetId: req.AssetID, OwnerId: req.OwnerID}, opts...)
	if err != nil {
		return nil, err
	}
	return &api.DeleteAssetResponse{AssetID: res.GetAssetId(), Status: res.GetStatus()}, nil
}
