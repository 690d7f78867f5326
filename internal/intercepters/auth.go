// Package intercepters holds the unary gRPC interceptors of the brain
// service: auth, trusted subnet, logging and panic recovery.
package intercepters

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/atinyakov/second-brain/internal/app/service"
	"github.com/atinyakov/second-brain/internal/middleware"
)

// WithJWT is the gRPC auth gate. The token comes from the "authorization"
// metadata, raw or with a "Bearer " prefix. Methods listed in public skip the
// check. A nil auth rejects every protected call.
func WithJWT(auth service.AuthIface, public ...string) grpc.UnaryServerInterceptor {
	skip := make(map[string]struct{}, len(public))
	for _, m := range public {
		skip[m] = struct{}{}
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if _, ok := skip[info.FullMethod]; ok {
			return handler(ctx, req)
		}

		md, ok := metadata.FromIncomingContext(ctx)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "missing metadata")
		}

		values := md.Get("authorization")
		if len(values) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		token := middleware.TokenFromHeader(values[0])
		if token == "" {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		if auth == nil {
			return nil, status.Error(codes.Unauthenticated, "authentication unavailable")
		}

		claims, err := auth.ParseRawJWT(token)
		if err != nil || claims == nil || claims.UserID == "" {
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, middleware.UserIDKey, claims.UserID)

		return handler(ctx, req)
	}
}
