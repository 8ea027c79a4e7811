// Package services contains server-side business logic: account
// registration and login (AuthService) and per-user vault access
// (VaultService). Transports call into these and translate the returned
// sentinel errors from internal/common.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/auth"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/dmitrijs2005/passkeeper/internal/server/repositories/users"
)

// TokenManager issues and verifies session tokens.
type TokenManager interface {
	Issue(user *models.User) (string, error)
	Verify(token string) (*auth.Claims, error)
}

// AuthService registers accounts, checks credentials and validates sessions.
type AuthService struct {
	users     users.Repository
	hasher    auth.PasswordHasher
	tokens    TokenManager
	dummyHash string
}

// NewAuthService wires the service. It precomputes a hash of a random value
// so logins for unknown usernames still perform one password comparison.
func NewAuthService(repo users.Repository, hasher auth.PasswordHasher, tokens TokenManager) (*AuthService, error) {
	filler, err := common.MakeRandHexString(16)
	if err != nil {
		return nil, fmt.Errorf("generate filler password: %w", err)
	}
	dummy, err := hasher.Hash(filler)
	if err != nil {
		return nil, fmt.Errorf("hash filler password: %w", err)
	}

	return &AuthService{
		users:     repo,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}, nil
}

// Register creates a new account. It does not sign the user in.
//
// Errors: common.ErrorValidation for an empty username or a password that is
// empty or longer than common.MaxPasswordLength bytes;
// common.ErrDuplicateUsername when the name is taken, including when a
// concurrent registration wins the race; common.ErrorInternal otherwise.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	_, err := s.users.GetUserByLogin(ctx, username)
	switch {
	case err == nil:
		return nil, common.ErrDuplicateUsername
	case !errors.Is(err, common.ErrorNotFound):
		return nil, fmt.Errorf("%w: lookup user: %v", common.ErrorInternal, err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("%w: hash password: %v", common.ErrorInternal, err)
	}

	user, err := s.users.Create(ctx, &models.User{UserName: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("%w: create user: %v", common.ErrorInternal, err)
	}
	return user, nil
}

// Login checks the credentials and returns a signed session token. Unknown
// usernames and wrong passwords both yield common.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.hasher.Verify(password, s.dummyHash)
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("%w: lookup user: %v", common.ErrorInternal, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) || len(password) > common.MaxPasswordLength {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("%w: issue token: %v", common.ErrorInternal, err)
	}
	return token, nil
}

// VerifySession returns the claims of a valid token or an error wrapping
// common.ErrInvalidToken.
func (s *AuthService) VerifySession(_ context.Context, token string) (*auth.Claims, error) {
	return s.tokens.Verify(token)
}

func validateCredentials(username, password string) error {
	switch {
	case username == "":
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	case password == "":
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	case len(password) > common.MaxPasswordLength:
		return fmt.Errorf("%w: password exceeds %d bytes", common.ErrorValidation, common.MaxPasswordLength)
	}
	return nil
}
