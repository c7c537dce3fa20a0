// Package common defines shared constants and sentinel errors used across
// the application layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors.
	ErrorLoginAlreadyExists   = errors.New("login already exists")
	ErrorInvalidLoginPassword = errors.New("invalid login/password")

	// Domain errors.
	ErrorCategoryDoesNotExist = errors.New("category does not exist")

	// Token fault classes. The HTTP filter collapses all of them to a bare
	// 403 so the client cannot distinguish which check failed.
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenUnsupported  = errors.New("token unsupported")
	ErrTokenBadSignature = errors.New("token signature invalid")
)
