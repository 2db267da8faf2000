// Package grpc exposes the sync service over gRPC: document push/delete,
// per-collection change streams, and presigned audio URLs.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/avoganov/ancora/internal/logging"
	pb "github.com/avoganov/ancora/internal/proto"
	"github.com/avoganov/ancora/internal/server/hub"
	"github.com/avoganov/ancora/internal/server/services"
)

type GRPCServer struct {
	pb.UnimplementedAncoraSyncServiceServer
	address   string
	store     *services.StoreService
	audio     *services.AudioService
	hub       *hub.Hub
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(address string, l logging.Logger, store *services.StoreService, audio *services.AudioService, h *hub.Hub, secretKey string) *GRPCServer {
	return &GRPCServer{
		address:   address,
		logger:    l.With("module", "grpc_server"),
		store:     store,
		audio:     audio,
		hub:       h,
		jwtSecret: []byte(secretKey),
	}
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	pb.RegisterAncoraSyncServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
