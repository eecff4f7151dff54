package grpc

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/common"
	"github.com/dmitrijs2005/imagevault/internal/logging"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

var requestIDKey = strings.ToLower(common.RequestIDHeader)

func requestIDFromMetadata(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}

// loggingInterceptor tags the context with a request id, echoes it in the
// response header and logs the outcome of every call.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := requestIDFromMetadata(ctx)
	ctx = logging.WithRequestID(ctx, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	code := status.Code(err)
	switch {
	case err == nil:
		s.logger.Debug(ctx, "call served", "method", info.FullMethod, "duration", time.Since(start))
	case code == codes.Internal || code == codes.Unavailable || code == codes.Aborted:
		s.logger.Error(ctx, "call failed", "method", info.FullMethod, "code", code.String(), "error", err)
	default:
		s.logger.Info(ctx, "call rejected", "method", info.FullMethod, "code", code.String(), "error", err)
	}
	return resp, err
}
