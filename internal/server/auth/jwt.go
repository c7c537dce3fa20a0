// Package auth implements the credential primitives of the API: a stateless
// HS256 token service and a bcrypt password hasher. Tokens carry the user's
// login as subject; there is no server-side session or revocation list, so
// a token stays acceptable until its expiry elapses or the signing key
// changes.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/common"
)

// Claims is the token payload. Only registered claims are used; the user's
// login travels in Subject.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenService issues and validates signed bearer tokens. The signing key is
// injected at construction and never read from package state.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte, validity time.Duration) *TokenService {
	return &TokenService{secret: secret, validity: validity}
}

// Issue creates a signed token for the given subject, valid from now for the
// configured window.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.validity)),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return signed, nil
}

// ExtractSubject verifies the token's structure and signature and returns
// its subject. Faults are classified into the sentinel token errors in
// package common; an expired token is a fault here, matching the filter
// contract that any decode problem rejects the request.
func (s *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", err
	}
	if expired(claims, time.Now()) {
		return "", common.ErrTokenExpired
	}
	return claims.Subject, nil
}

// Validate reports whether the token is correctly signed, well formed,
// unexpired, and bound to expectedSubject. It fails closed: any fault yields
// false, never an error.
//
// The expiry comparison is strictly expiresAt.Before(now): a token expiring
// in the same instant as the check is still accepted.
func (s *TokenService) Validate(tokenString string, expectedSubject string) bool {
	claims, err := s.parse(tokenString)
	if err != nil {
		return false
	}
	if expired(claims, time.Now()) {
		return false
	}
	return claims.Subject == expectedSubject
}

// parse verifies structure and signature but not freshness; expiry is
// checked by the callers so the library's leeway handling cannot widen or
// narrow the boundary.
func (s *TokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, common.ErrTokenUnsupported
		}
		return s.secret, nil
	}, jwt.WithoutClaimsValidation())

	if err != nil {
		return nil, classify(err)
	}
	if claims.ExpiresAt == nil {
		return nil, common.ErrTokenMalformed
	}
	return claims, nil
}

func expired(claims *Claims, now time.Time) bool {
	return claims.ExpiresAt.Time.Before(now)
}

// classify maps golang-jwt parse failures onto the four fault classes the
// filter layer knows about.
func classify(err error) error {
	switch {
	case errors.Is(err, common.ErrTokenUnsupported):
		return common.ErrTokenUnsupported
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrTokenBadSignature
	case errors.Is(err, jwt.ErrTokenUnverifiable):
		return common.ErrTokenUnsupported
	default:
		return common.ErrTokenMalformed
	}
}
