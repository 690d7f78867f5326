package intercepters

import (
	"context"
	"net"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// WithTrustedSubnet restricts the guarded methods to callers whose
// "x-real-ip" metadata falls inside subnet. An empty or invalid subnet denies
// the guarded methods to everyone.
func WithTrustedSubnet(subnet string, guarded ...string) grpc.UnaryServerInterceptor {
	var trusted *net.IPNet
	if subnet != "" {
		if _, n, err := net.ParseCIDR(subnet); err == nil {
			trusted = n
		}
	}

	protect := make(map[string]struct{}, len(guarded))
	for _, m := range guarded {
		protect[m] = struct{}{}
	}

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if _, ok := protect[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		if trusted == nil || !trusted.Contains(realIP(ctx)) {
			return nil, status.Error(codes.PermissionDenied, "forbidden")
		}

		return handler(ctx, req)
	}
}

func realIP(ctx context.Context) net.IP {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil
	}

	ips := md.Get("x-real-ip")
	if len(ips) == 0 {
		return nil
	}

	return net.ParseIP(strings.TrimSpace(ips[0]))
}
