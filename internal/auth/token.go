// Package auth issues and verifies the signed identity tokens that
// back every protected route. Tokens are stateless: validity is
// decided by signature and expiry alone, and a token stays usable for
// its full lifetime even if the account behind it is changed or
// deleted afterwards.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// Claims carries the single identity claim alongside the registered
// set. The email is the caller's identity for the rest of the request.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// TokenService signs and verifies HS256 identity tokens.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// Issue produces a signed token embedding email, expiring after the
// configured lifetime.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		Email: email,
	})
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded email.
// Callers may treat ErrTokenExpired and ErrTokenInvalid as a single
// unauthenticated outcome.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if !token.Valid || claims.Email == "" {
		return "", ErrTokenInvalid
	}
	return claims.Email, nil
}

// Secret exposes the signing key for the route-level JWT middleware.
func (s *TokenService) Secret() []byte {
	return s.secret
}
