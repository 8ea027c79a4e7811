package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.PassKeeperClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewPassKeeperClient connects to endpointURL without TLS. token may be
// empty for register and login.
func NewPassKeeperClient(endpointURL, token string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, accessToken: token}
	if err := c.InitGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewPassKeeperClient(conn)
	return nil
}

func (s *GRPCClient) Register(ctx context.Context, userName string, password []byte) error {

	req := &pb.RegisterRequest{Username: userName, Password: string(password)}

	_, err := s.client.Register(ctx, req)

	if err != nil {
		return s.mapError(err)
	}

	return nil

}

// Login returns the session token and also keeps it for subsequent calls
// on this client.
func (s *GRPCClient) Login(ctx context.Context, userName string, password []byte) (string, error) {

	req := &pb.LoginRequest{Username: userName, Password: string(password)}

	resp, err := s.client.Login(ctx, req)

	if err != nil {
		return "", s.mapError(err)
	}

	s.accessToken = resp.Token

	return resp.Token, nil

}

func (s *GRPCClient) Verify(ctx context.Context) (*Session, error) {
	resp, err := s.client.Verify(ctx, &pb.VerifyRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Session{UserID: resp.GetUserId(), Username: resp.Username}, nil
}

func (s *GRPCClient) ListEntries(ctx context.Context) ([]Entry, error) {
	resp, err := s.client.ListEntries(ctx, &pb.ListEntriesRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	list := make([]Entry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		var created time.Time
		if e.GetCreatedAt() != nil {
			created = e.GetCreatedAt().AsTime()
		}
		list = append(list, Entry{ID: e.GetId(), Title: e.GetTitle(), Password: e.GetPassword(), CreatedAt: created})
	}
	return list, nil
}

func (s *GRPCClient) AddEntry(ctx context.Context, title string, password []byte) (string, error) {
	resp, err := s.client.AddEntry(ctx, &pb.AddEntryRequest{Title: title, Password: string(password)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnavailable
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.InvalidArgument:
		return ErrInvalidInput
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
