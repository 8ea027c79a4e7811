package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/logging"
	pb "github.com/dmitrijs2005/passkeeper/internal/proto"
	"github.com/dmitrijs2005/passkeeper/internal/server/metrics"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type handler struct {
	pb.UnimplementedPassKeeperServer

	auth    AuthService
	vault   VaultService
	logger  logging.Logger
	metrics *metrics.Metrics
}

// mapError converts service errors to gRPC statuses. Unexpected failures are
// logged and reported without detail.
func (h *handler) mapError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		return status.Error(codes.AlreadyExists, "user already exists")
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, "invalid request")
	case errors.Is(err, common.ErrInvalidCredentials):
		h.metrics.AuthFailure("invalid_credentials")
		return status.Error(codes.Unauthenticated, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	default:
		h.logger.Error(ctx, "rpc failed", "op", op, "err", err)
		return status.Error(codes.Internal, "internal server error")
	}
}

func (h *handler) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if _, err := h.auth.Register(ctx, req.Username, req.Password); err != nil {
		return nil, h.mapError(ctx, "register", err)
	}
	return &pb.RegisterResponse{Message: "User created successfully"}, nil
}

func (h *handler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := h.auth.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, h.mapError(ctx, "login", err)
	}
	return &pb.LoginResponse{Token: token}, nil
}

func (h *handler) Verify(ctx context.Context, _ *pb.VerifyRequest) (*pb.VerifyResponse, error) {
	c := claimsFrom(ctx)
	if c == nil {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}
	return &pb.VerifyResponse{Message: "Token is valid", UserId: c.UserID(), Username: c.Name}, nil
}

func (h *handler) ListEntries(ctx context.Context, _ *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	var caller string
	if c := claimsFrom(ctx); c != nil {
		caller = c.UserID()
	}

	list, err := h.vault.ListEntries(ctx, caller)
	if err != nil {
		return nil, h.mapError(ctx, "list entries", err)
	}

	resp := &pb.ListEntriesResponse{Entries: make([]*pb.Entry, 0, len(list))}
	for _, e := range list {
		resp.Entries = append(resp.Entries, &pb.Entry{
			Id:        e.ID,
			Title:     e.Title,
			Password:  e.Secret,
			CreatedAt: timestamppb.New(e.CreatedAt),
		})
	}
	return resp, nil
}

func (h *handler) AddEntry(ctx context.Context, req *pb.AddEntryRequest) (*pb.AddEntryResponse, error) {
	var caller string
	if c := claimsFrom(ctx); c != nil {
		caller = c.UserID()
	}

	e, err := h.vault.AddEntry(ctx, caller, req.Title, req.Password)
	if err != nil {
		return nil, h.mapError(ctx, "add entry", err)
	}
	return &pb.AddEntryResponse{Id: e.ID, Message: "Password saved"}, nil
}
