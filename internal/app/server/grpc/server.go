// Package grpc exposes the second brain over gRPC as brain.v1.Brain.
package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/intercepters"
	"github.com/atinyakov/second-brain/internal/middleware"
	"github.com/atinyakov/second-brain/internal/models"
	"github.com/atinyakov/second-brain/internal/storage"
)

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	port       int
	logger     *zap.Logger
}

// New creates a gRPC server with the recovery, logging, trusted subnet and
// auth interceptors. ResolveShare is the only public method.
func New(impl *BrainServer, auth service.AuthIface, trustedSubnet string, logger *zap.Logger, port int) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			intercepters.WithRecovery(logger),
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
			intercepters.WithTrustedSubnet(trustedSubnet, GetStatsMethod),
			intercepters.WithJWT(auth, ResolveShareMethod, GetStatsMethod),
		),
	)

	s.RegisterService(&BrainServiceDesc, impl)

	return &Server{
		grpcServer: s,
		port:       port,
		logger:     logger,
	}
}

// Start listens on the configured port and serves until stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		s.logger.Error("gRPC server failed to listen:", zap.Error(err))
		return err
	}

	s.logger.Info("gRPC server listening on port", zap.Int("port", s.port))
	return s.Serve(lis)
}

// Serve serves on an existing listener.
func (s *Server) Serve(lis net.Listener) error {
	return s.grpcServer.Serve(lis)
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// BrainServer implements BrainServiceServer on top of the services.
type BrainServer struct {
	Contents service.ContentServiceIface
	Shares   service.ShareServiceIface
	Stats    service.StatsServiceIface
	Logger   *zap.Logger
}

func (s *BrainServer) ListContents(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user ID missing in context")
	}

	contents, err := s.Contents.ListOwn(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"contents": contentsToList(contents),
	})
}

func (s *BrainServer) EnableShare(ctx context.Context, _ *emptypb.Empty) (*wrapperspb.StringValue, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user ID missing in context")
	}

	hash, err := s.Shares.Enable(ctx, userID)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return wrapperspb.String(hash), nil
}

func (s *BrainServer) DisableShare(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "user ID missing in context")
	}

	if err := s.Shares.Disable(ctx, userID); err != nil {
		return nil, s.toStatus(err)
	}

	return &emptypb.Empty{}, nil
}

func (s *BrainServer) ResolveShare(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if req.GetValue() == "" {
		return nil, status.Error(codes.InvalidArgument, "share hash is required")
	}

	brain, err := s.Shares.Resolve(ctx, req.GetValue())
	if err != nil {
		return nil, s.toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"username": brain.Username,
		"contents": contentsToList(brain.Contents),
	})
}

func (s *BrainServer) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats, err := s.Stats.GetStats(ctx)
	if err != nil {
		return nil, s.toStatus(err)
	}

	return structpb.NewStruct(map[string]any{
		"users":       stats.Users,
		"contents":    stats.Contents,
		"share_links": stats.ShareLinks,
	})
}

// toStatus maps service errors to gRPC codes. Unexpected errors are logged
// and reported without details.
func (s *BrainServer) toStatus(err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, service.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "invalid token")
	case errors.Is(err, service.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, storage.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, storage.ErrConflict):
		return status.Error(codes.AlreadyExists, "already exists")
	default:
		s.Logger.Error("gRPC call failed", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}

func contentsToList(contents []models.Content) []any {
	list := make([]any, 0, len(contents))
	for _, c := range contents {
		tags := make([]any, 0, len(c.Tags))
		for _, t := range c.Tags {
			tags = append(tags, t)
		}

		list = append(list, map[string]any{
			"id":     c.ID,
			"title":  c.Title,
			"type":   c.Type,
			"link":   c.Link,
			"tags":   tags,
			"userId": c.UserID,
		})
	}
	return list
}
