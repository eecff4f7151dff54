package grpc

import (
	"math"
	"sort"
	"time"

	pb "github.com/dmitrijs2005/imagevault/internal/proto"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/dmitrijs2005/imagevault/internal/server/models"
	"github.com/dmitrijs2005/imagevault/internal/server/objectstore"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func toTimestampPtr(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

func fromTimestampPtr(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}

func handleToPB(h *objectstore.Handle) *pb.Handle {
	if h == nil {
		return nil
	}
	names := make([]string, 0, len(h.Headers))
	for name := range h.Headers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := &pb.Handle{Url: h.URL, Method: h.Method}
	for _, name := range names {
		out.Headers = append(out.Headers, &pb.Header{Name: name, Value: h.Headers[name]})
	}
	return out
}

func handleFromPB(h *pb.Handle) *objectstore.Handle {
	if h == nil {
		return nil
	}
	out := &objectstore.Handle{URL: h.GetUrl(), Method: h.GetMethod()}
	if len(h.GetHeaders()) > 0 {
		out.Headers = make(map[string]string, len(h.GetHeaders()))
		for _, hdr := range h.GetHeaders() {
			out.Headers[hdr.GetName()] = hdr.GetValue()
		}
	}
	return out
}

func assetToPB(a *models.Asset) *pb.Asset {
	return &pb.Asset{
		AssetId:     a.ID,
		OwnerId:     a.OwnerID,
		StorageKey:  a.StorageKey,
		DisplayName: a.DisplayName,
		ContentType: a.ContentType,
		ByteSize:    a.ByteSize,
		Tags:        a.Tags,
		Description: a.Description,
		CreatedAt:   toTimestamp(a.CreatedAt),
		UpdatedAt:   toTimestamp(a.UpdatedAt),
		Status:      string(a.Status),
	}
}

func assetFromPB(a *pb.Asset) *models.Asset {
	return &models.Asset{
		ID:          a.GetAssetId(),
		OwnerID:     a.GetOwnerId(),
		StorageKey:  a.GetStorageKey(),
		DisplayName: a.GetDisplayName(),
		ContentType: a.GetContentType(),
		ByteSize:    a.GetByteSize(),
		Tags:        a.GetTags(),
		Description: a.GetDescription(),
		CreatedAt:   fromTimestamp(a.GetCreatedAt()),
		UpdatedAt:   fromTimestamp(a.GetUpdatedAt()),
		Status:      models.Status(a.GetStatus()),
	}
}

func reserveRequestToPB(r *api.ReserveUploadRequest) *pb.ReserveUploadRequest {
	return &pb.ReserveUploadRequest{
		OwnerId:     r.OwnerID,
		DisplayName: r.DisplayName,
		ContentType: r.ContentType,
		ByteSize:    r.ByteSize,
		Tags:        r.Tags,
		Description: r.Description,
	}
}

func reserveRequestFromPB(r *pb.ReserveUploadRequest) *api.ReserveUploadRequest {
	return &api.ReserveUploadRequest{
		OwnerID:     r.GetOwnerId(),
		DisplayName: r.GetDisplayName(),
		ContentType: r.GetContentType(),
		ByteSize:    r.GetByteSize(),
		Tags:        r.GetTags(),
		Description: r.GetDescription(),
	}
}

func reserveResponseToPB(r *api.ReserveUploadResponse) *pb.ReserveUploadResponse {
	return &pb.ReserveUploadResponse{
		AssetId:      r.AssetID,
		StorageKey:   r.StorageKey,
		UploadHandle: handleToPB(r.UploadHandle),
		ExpiresIn:    r.ExpiresIn,
	}
}

func reserveResponseFromPB(r *pb.ReserveUploadResponse) *api.ReserveUploadResponse {
	return &api.ReserveUploadResponse{
		AssetID:      r.GetAssetId(),
		StorageKey:   r.GetStorageKey(),
		UploadHandle: handleFromPB(r.GetUploadHandle()),
		ExpiresIn:    r.GetExpiresIn(),
	}
}

func confirmRequestToPB(r *api.ConfirmUploadRequest) *pb.ConfirmUploadRequest {
	return &pb.ConfirmUploadRequest{
		AssetId:     r.AssetID,
		OwnerId:     r.OwnerID,
		DisplayName: r.DisplayName,
		ContentType: r.ContentType,
		ByteSize:    r.ByteSize,
		Tags:        r.Tags,
		Description: r.Description,
	}
}

func confirmRequestFromPB(r *pb.ConfirmUploadRequest) *api.ConfirmUploadRequest {
	return &api.ConfirmUploadRequest{
		AssetID:     r.GetAssetId(),
		OwnerID:     r.GetOwnerId(),
		DisplayName: r.GetDisplayName(),
		ContentType: r.GetContentType(),
		ByteSize:    r.GetByteSize(),
		Tags:        r.GetTags(),
		Description: r.GetDescription(),
	}
}

// listRequestToPB keeps an explicit limit, zero included, distinct from an
// unset one. Limits beyond int32 are saturated; the server clamps them anyway.
func listRequestToPB(r *api.ListAssetsRequest) *pb.ListAssetsRequest {
	out := &pb.ListAssetsRequest{
		OwnerId:       r.OwnerID,
		CreatedAfter:  toTimestampPtr(r.CreatedAfter),
		CreatedBefore: toTimestampPtr(r.CreatedBefore),
		Cursor:        r.Cursor,
	}
	if r.Limit != nil {
		l := *r.Limit
		switch {
		case l > math.MaxInt32:
			l = math.MaxInt32
		case l < math.MinInt32:
			l = math.MinInt32
		}
		out.Limit = wrapperspb.Int32(int32(l))
	}
	return out
}

func listRequestFromPB(r *pb.ListAssetsRequest) *api.ListAssetsRequest {
	out := &api.ListAssetsRequest{
		OwnerID:       r.GetOwnerId(),
		CreatedAfter:  fromTimestampPtr(r.GetCreatedAfter()),
		CreatedBefore: fromTimestampPtr(r.GetCreatedBefore()),
		Cursor:        r.GetCursor(),
	}
	if r.GetLimit() != nil {
		l := int(r.GetLimit().GetValue())
		out.Limit = &l
	}
	return out
}

func listResponseToPB(r *api.ListAssetsResponse) *pb.ListAssetsResponse {
	out := &pb.ListAssetsResponse{
		Records: make([]*pb.Asset, 0, len(r.Records)),
		Count:   int32(r.Count),
		Cursor:  r.Cursor,
		HasMore: r.HasMore,
	}
	for _, a := range r.Records {
		out.Records = append(out.Records, assetToPB(a))
	}
	return out
}

func listResponseFromPB(r *pb.ListAssetsResponse) *api.ListAssetsResponse {
	out := &api.ListAssetsResponse{
		Records: make([]*models.Asset, 0, len(r.GetRecords())),
		Count:   int(r.GetCount()),
		Cursor:  r.GetCursor(),
		HasMore: r.GetHasMore(),
	}
	for _, a := range r.GetRecords() {
		out.Records = append(out.Records, assetFromPB(a))
	}
	return out
}

func downloadResponseToPB(r *api.GetDownloadResponse) *pb.GetDownloadResponse {
	return &pb.GetDownloadResponse{
		AssetId:        r.AssetID,
		DownloadHandle: handleToPB(r.DownloadHandle),
		ExpiresIn:      r.ExpiresIn,
		DisplayName:    r.DisplayName,
		ContentType:    r.ContentType,
	}
}

func downloadResponseFromPB(r *pb.GetDownloadResponse) *api.GetDownloadResponse {
	return &api.GetDownloadResponse{
		AssetID:        r.GetAssetId(),
		DownloadHandle: handleFromPB(r.GetDownloadHandle()),
		ExpiresIn:      r.GetExpiresIn(),
		DisplayName:    r.GetDisplayName(),
		ContentType:    r.GetContentType(),
	}
}
