// Package jwtmw provides bearer token issuance, verification and the
// authentication middleware built on top of them.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by Verify for any token that fails
// verification: bad signature, wrong algorithm, malformed payload or
// expired. Callers must not distinguish between these cases.
var ErrInvalidToken = errors.New("invalid token")

// TokenService defines the interface for bearer token issuance and
// verification.
type TokenService interface {
	// Issue creates a signed token embedding the given user's identity.
	Issue(userID uint) (string, error)

	// Verify checks the token signature and expiry and returns the
	// embedded user ID, or ErrInvalidToken.
	Verify(token string) (uint, error)
}

// tokenService implements the TokenService interface.
type tokenService struct {
	secret     []byte
	expiration time.Duration
}

// NewTokenService creates a new token service with the provided signing
// secret and token lifetime. The secret comes from configuration loaded
// once at startup; it is never re-read per request.
func NewTokenService(secret string, expiration time.Duration) TokenService {
	return &tokenService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

// Issue creates a signed JWT with standard claims.
func (s *tokenService) Issue(userID uint) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID,
		"iat": now.Unix(),
		"exp": now.Add(s.expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token, checking the signing algorithm, signature and
// expiry. A valid token does not imply the referenced user still exists;
// callers must re-resolve the identity from the user store.
func (s *tokenService) Verify(tokenStr string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		// Check signing algorithm (only HMAC allowed)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // JWT numbers are decoded as float64
	if !ok {
		return 0, ErrInvalidToken
	}

	return uint(sub), nil
}
