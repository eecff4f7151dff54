// Package grpc exposes the asset operations as the gRPC service
// imagevault.v1.AssetService.
package grpc

import (
	"context"
	"errors"
	"net"

	"github.com/dmitrijs2005/imagevault/internal/logging"
	pb "github.com/dmitrijs2005/imagevault/internal/proto"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedAssetServiceServer
	address string
	service AssetService
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, svc AssetService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		service: svc,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))
	pb.RegisterAssetServiceServer(srv, s)
	return srv
}

// Run serves until ctx is cancelled, then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve is Run on an existing listener.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// Serve reports ErrServerStopped when ctx was cancelled before it started.
	if err := srv.Serve(listen); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}
