package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/passkeeper/internal/common"
	"github.com/dmitrijs2005/passkeeper/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of a session token: the standard registered claims
// (Subject = user ID, IssuedAt, ExpiresAt) plus the username.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name"`
}

// UserID returns the identity the token was issued for.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenIssuer mints and verifies HS256 session tokens with a single
// process-wide secret. It holds no mutable state and is safe for
// concurrent use.
type TokenIssuer struct {
	secret   []byte
	validity time.Duration
	now      func() time.Time
}

// NewTokenIssuer returns an issuer signing with secretKey; tokens stay valid
// for validity after issuance.
func NewTokenIssuer(secretKey string, validity time.Duration) *TokenIssuer {
	return &TokenIssuer{
		secret:   []byte(secretKey),
		validity: validity,
		now:      time.Now,
	}
}

// WithClock returns a copy of the issuer that reads time from now.
func (i *TokenIssuer) WithClock(now func() time.Time) *TokenIssuer {
	c := *i
	c.now = now
	return &c
}

// Validity returns the configured token lifetime.
func (i *TokenIssuer) Validity() time.Duration {
	return i.validity
}

// Issue returns a signed token for user.
func (i *TokenIssuer) Issue(user *models.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("cannot issue token without user id")
	}

	now := i.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.validity)),
		},
		Name: user.UserName,
	})

	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tokenString, nil
}

// Verify checks the signature, algorithm and expiry of tokenString. The
// token is valid only while now < exp. Every failure is reported as
// common.ErrInvalidToken; the underlying reason is wrapped for logging.
func (i *TokenIssuer) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", common.ErrInvalidToken)
	}

	return claims, nil
}
