// Package auth issues and verifies the bearer tokens that carry an
// account's identity and role between login and subsequent requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken reports a token that failed signature, expiry, or claim
// checks. Deliberately coarse: callers map it straight to an
// unauthenticated response.
var ErrInvalidToken = errors.New("invalid token")

// TokenService signs and verifies HS256 JWTs. The subject claim carries the
// account ID, a custom claim carries the role, and expiry is enforced on
// verification.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("token secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"token ttl",
			fmt.Errorf("%s is not greater than 0", ttl),
		)
	}

	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue signs a token for the actor.
func (s *TokenService) Issue(actor kernel.Actor) (string, error) {
	if err := actor.Validate(); err != nil {
		return "", err
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  actor.ID().String(),
		"role": actor.Role().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify parses the token and reconstructs the actor it was issued to.
// Any failure, from a bad signature to an expired or malformed claim,
// collapses into ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (kernel.Actor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return kernel.Actor{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return kernel.Actor{}, ErrInvalidToken
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}

	accountID, err := kernel.UUIDFromString(subject)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}

	roleClaim, ok := claims["role"].(string)
	if !ok {
		return kernel.Actor{}, ErrInvalidToken
	}

	role, err := kernel.RoleFromString(roleClaim)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}

	actor, err := kernel.NewActor(accountID, role)
	if err != nil {
		return kernel.Actor{}, ErrInvalidToken
	}

	return actor, nil
}
