// Package sessiontoken mints and verifies the HS256 session tokens issued on
// login/signup. Tokens carry the user ID as the subject and the account role
// as a custom claim; the HTTP adapter verifies them on protected routes.
package sessiontoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/clock"
)

const issuer = "triplinker-api"

var ErrUnauthorized = errors.New("unauthorized")

// Session is the verified content of a token.
type Session struct {
	UserID domain.UserID
	Role   domain.Role
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type Signer struct {
	key []byte
	ttl time.Duration
	clk clock.Clock
}

func New(key []byte, ttl time.Duration, clk clock.Clock) *Signer {
	return &Signer{key: key, ttl: ttl, clk: clk}
}

// Mint issues a signed token for the user.
func (s *Signer) Mint(user domain.User) (string, error) {
	now := s.clk.Now()
	c := claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   string(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.key)
}

// Verify checks the signature, issuer, and expiry, and returns the session.
// Any failure collapses to ErrUnauthorized; callers get no detail beyond that.
func (s *Signer) Verify(token string) (Session, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c,
		func(t *jwt.Token) (any, error) { return s.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clk.Now),
	)
	if err != nil || !parsed.Valid || c.Subject == "" {
		return Session{}, ErrUnauthorized
	}
	return Session{
		UserID: domain.UserID(c.Subject),
		Role:   domain.Role(c.Role),
	}, nil
}
