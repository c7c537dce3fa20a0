package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Projeto-Integrador-Grupo7/MandaPraMim-Delivery/internal/server/models"
)

const identityKey = "identity"

const bearerPrefix = "Bearer "

// Directory resolves token subjects to accounts.
type Directory interface {
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

// TokenVerifier is the token side of the authentication filter.
type TokenVerifier interface {
	ExtractSubject(token string) (string, error)
	Validate(token, expectedSubject string) bool
}

// CORS allows any origin and answers preflight requests directly.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// AuthFilter authenticates bearer tokens. It never rejects a request for
// *missing* credentials; that is the policy layer's call. Presented
// credentials that fail verification abort with a bare 403.
//
// Per request:
//  1. no "Authorization: Bearer ..." header: continue anonymous
//  2. token fault (expired, malformed, unsupported, bad signature): 403
//  3. subject unknown to the directory: 403
//  4. Validate against the account's login: on success attach the identity,
//     otherwise continue anonymous
func AuthFilter(tokens TokenVerifier, directory Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			c.Next()
			return
		}
		token := strings.TrimPrefix(header, bearerPrefix)

		subject, err := tokens.ExtractSubject(token)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		user, err := directory.FindByLogin(c.Request.Context(), subject)
		if err != nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		if tokens.Validate(token, user.Login) {
			c.Set(identityKey, user)
		}
		c.Next()
	}
}

// publicRoute reports whether the request may proceed without an identity.
func publicRoute(method, path string) bool {
	if method == http.MethodOptions {
		return true
	}
	if method == http.MethodPost && (path == "/users/login" || path == "/users/register") {
		return true
	}
	return strings.HasPrefix(path, "/error/")
}

// RequireIdentity is the authorization policy: a short allow-list of public
// routes, everything else needs an authenticated identity.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if publicRoute(c.Request.Method, c.Request.URL.Path) {
			c.Next()
			return
		}
		if _, ok := c.Get(identityKey); !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated account attached by AuthFilter.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
