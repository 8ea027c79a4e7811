package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const claimsKey ctxKey = "claims"

var protectedMethods = map[string]bool{
	pb.PassKeeper_Verify_FullMethodName:      true,
	pb.PassKeeper_ListEntries_FullMethodName: true,
	pb.PassKeeper_AddEntry_FullMethodName:    true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			s.metrics.AuthFailure("invalid_token")
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		claims, err := s.auth.VerifySession(ctx, accessToken)
		if err != nil {
			s.metrics.AuthFailure("invalid_token")
			return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
		}

		ctx = context.WithValue(ctx, claimsKey, claims)

	}

	return handler(ctx, req)
}

func (s *GRPCServer) observeInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	s.metrics.ObserveGRPC(info.FullMethod, code.String(), elapsed)
	s.logger.Info(ctx, "rpc served", "method", info.FullMethod, "code", code.String(), "peer", peerHost(ctx), "duration", elapsed)

	return resp, err
}

// peerHost is the caller address without its port.
func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func claimsFrom(ctx context.Context) *auth.Claims {
	c, _ := ctx.Value(claimsKey).(*auth.Claims)
	return c
}
