package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/pkg/response"
)

// RoleAdmin is the only role allowed through AdminAuth.
const RoleAdmin = "admin"

const principalKey = "principal"

// Principal is the authenticated caller.
type Principal struct {
	Subject string
	Email   string
	Role    string
}

// TokenVerifier turns a bearer token into a Principal.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Principal, error)
}

// AdminAuth rejects any request whose bearer token does not verify to an admin.
func AdminAuth(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		fields := strings.Fields(authHeader)
		if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		principal, err := verifier.VerifyToken(c.Request.Context(), fields[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}
		if principal.Role != RoleAdmin {
			response.AuthorizationError(c, "Administrator access required")
			c.Abort()
			return
		}

		c.Set(principalKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the caller set by AdminAuth.
func PrincipalFrom(c *gin.Context) (*Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	p, ok := v.(*Principal)
	return p, ok
}
