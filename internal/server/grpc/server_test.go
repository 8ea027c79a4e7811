package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/entries"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
	"github.com/dmitrijs2005/passkeeper/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newServices(t *testing.T) (*services.AuthService, *services.VaultService) {
	t.Helper()
	as, err := services.NewAuthService(
		users.NewMemoryRepository(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		auth.NewTokenIssuer("test-secret", time.Hour),
	)
	require.NoError(t, err)
	return as, services.NewVaultService(entries.NewMemoryRepository())
}

// startBufconn serves s on an in-memory listener and returns a connected
// client. The server is stopped when the test ends.
func startBufconn(t *testing.T, s *GRPCServer) *grpc.ClientConn {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Error("server did not stop")
		}
	})
	return conn
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	as, vs := newServices(t)
	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, as, vs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	as, vs := newServices(t)
	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, as, vs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Run(ctx); err == nil {
		t.Fatal("expected error from Run on bad address, got nil")
	}
}

func TestServe_StopsWatcherWhenServeFails(t *testing.T) {
	t.Parallel()

	as, vs := newServices(t)
	srv := NewGRPCServer("", logging.Nop{}, as, vs)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, lis.Close())

	// the caller's context is never cancelled
	err = srv.Serve(context.Background(), lis)
	require.Error(t, err)

	// the stop goroutine shuts the health service down when it exits
	assert.Eventually(t, func() bool {
		resp, err := srv.health.Check(context.Background(), &healthpb.HealthCheckRequest{})
		return err == nil && resp.Status == healthpb.HealthCheckResponse_NOT_SERVING
	}, 2*time.Second, 10*time.Millisecond)
}

func TestEndToEnd_AliceAndBob(t *testing.T) {
	as, vs := newServices(t)
	conn := startBufconn(t, NewGRPCServer("", logging.Nop{}, as, vs))
	client := pb.NewPassKeeperClient(conn)
	ctx := context.Background()

	for _, name := range []string{"alice", "bob"} {
		resp, err := client.Register(ctx, &pb.RegisterRequest{Username: name, Password: name + "-pw"})
		require.NoError(t, err)
		assert.Equal(t, "User created successfully", resp.Message)
	}

	_, err := client.Register(ctx, &pb.RegisterRequest{Username: "alice", Password: "other"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	aliceLogin, err := client.Login(ctx, &pb.LoginRequest{Username: "alice", Password: "alice-pw"})
	require.NoError(t, err)
	bobLogin, err := client.Login(ctx, &pb.LoginRequest{Username: "bob", Password: "bob-pw"})
	require.NoError(t, err)

	aliceCtx := withToken(ctx, aliceLogin.Token)
	bobCtx := withToken(ctx, bobLogin.Token)

	v, err := client.Verify(aliceCtx, &pb.VerifyRequest{})
	require.NoError(t, err)
	assert.Equal(t, "alice", v.Username)
	assert.NotEmpty(t, v.UserId)

	added, err := client.AddEntry(aliceCtx, &pb.AddEntryRequest{Title: "gmail", Password: "p@ss"})
	require.NoError(t, err)
	assert.NotEmpty(t, added.Id)
	_, err = client.AddEntry(aliceCtx, &pb.AddEntryRequest{Title: "bank", Password: "1234"})
	require.NoError(t, err)

	list, err := client.ListEntries(aliceCtx, &pb.ListEntriesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Entries, 2)
	assert.Equal(t, "gmail", list.Entries[0].Title)
	assert.Equal(t, "p@ss", list.Entries[0].Password)
	assert.Equal(t, added.Id, list.Entries[0].Id)
	assert.WithinDuration(t, time.Now(), list.Entries[0].GetCreatedAt().AsTime(), time.Minute)
	assert.Equal(t, "bank", list.Entries[1].Title)

	bobList, err := client.ListEntries(bobCtx, &pb.ListEntriesRequest{})
	require.NoError(t, err)
	assert.Empty(t, bobList.Entries)
}

func TestErrorMapping(t *testing.T) {
	as, vs := newServices(t)
	conn := startBufconn(t, NewGRPCServer("", logging.Nop{}, as, vs))
	client := pb.NewPassKeeperClient(conn)
	ctx := context.Background()

	_, err := client.Register(ctx, &pb.RegisterRequest{Username: "", Password: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.Register(ctx, &pb.RegisterRequest{Username: "carol", Password: "right"})
	require.NoError(t, err)

	_, wrongPw := client.Login(ctx, &pb.LoginRequest{Username: "carol", Password: "wrong"})
	_, unknown := client.Login(ctx, &pb.LoginRequest{Username: "nobody", Password: "wrong"})
	assert.Equal(t, codes.Unauthenticated, status.Code(wrongPw))
	assert.Equal(t, status.Convert(wrongPw).Message(), status.Convert(unknown).Message())

	login, err := client.Login(ctx, &pb.LoginRequest{Username: "carol", Password: "right"})
	require.NoError(t, err)

	_, err = client.AddEntry(withToken(ctx, login.Token), &pb.AddEntryRequest{Title: "", Password: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestAccessToken_Rejections(t *testing.T) {
	as, vs := newServices(t)
	conn := startBufconn(t, NewGRPCServer("", logging.Nop{}, as, vs))
	client := pb.NewPassKeeperClient(conn)
	ctx := context.Background()

	_, err := client.ListEntries(ctx, &pb.ListEntriesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
	assert.Equal(t, "missing token", status.Convert(err).Message())

	_, err = client.AddEntry(withToken(ctx, "not-a-valid-jwt"), &pb.AddEntryRequest{Title: "t", Password: "p"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	expired := auth.NewTokenIssuer("test-secret", time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) })
	tok, err := expired.Issue(&models.User{ID: "u-1", UserName: "alice"})
	require.NoError(t, err)
	_, err = client.Verify(withToken(ctx, tok), &pb.VerifyRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestMetrics(t *testing.T) {
	as, vs := newServices(t)
	reg := prometheus.NewRegistry()
	conn := startBufconn(t, NewGRPCServer("", logging.Nop{}, as, vs, WithMetrics(metrics.New(reg))))
	client := pb.NewPassKeeperClient(conn)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := client.Login(ctx, &pb.LoginRequest{Username: "x", Password: "y"})
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}
	_, err := client.ListEntries(ctx, &pb.ListEntriesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	count, err := testutil.GatherAndCount(reg, "passkeeper_grpc_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count, "one series per (method, code)")

	failures, err := testutil.GatherAndCount(reg, "passkeeper_auth_failures_total")
	require.NoError(t, err)
	assert.Equal(t, 2, failures, "invalid_credentials and invalid_token")
}

func TestHealthService(t *testing.T) {
	as, vs := newServices(t)
	conn := startBufconn(t, NewGRPCServer("", logging.Nop{}, as, vs))

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(),
		&healthpb.HealthCheckRequest{Service: pb.PassKeeper_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
