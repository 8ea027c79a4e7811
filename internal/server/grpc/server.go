// Package grpc serves the account and vault operations over gRPC using the
// protobuf contract generated into internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/passkeeper/internal/logging"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
	VerifySession(ctx context.Context, token string) (*auth.Claims, error)
}

type VaultService interface {
	ListEntries(ctx context.Context, callerID string) ([]*models.Entry, error)
	AddEntry(ctx context.Context, callerID, title, secret string) (*models.Entry, error)
}

type GRPCServer struct {
	address string
	auth    AuthService
	vault   VaultService
	logger  logging.Logger
	metrics *metrics.Metrics
	health  *health.Server
}

type Option func(*GRPCServer)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *GRPCServer) { s.metrics = m }
}

func NewGRPCServer(a string, l logging.Logger, as AuthService, vs VaultService, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
		vault:   vs,
		health:  health.NewServer(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.observeInterceptor,
		s.accessTokenInterceptor,
	))

	pb.RegisterPassKeeperServer(srv, &handler{auth: s.auth, vault: s.vault, logger: s.logger, metrics: s.metrics})
	healthpb.RegisterHealthServer(srv, s.health)

	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully. The stop goroutine also exits when Serve fails on its own.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		s.health.Shutdown()
		srv.GracefulStop()
	}()

	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.PassKeeper_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
