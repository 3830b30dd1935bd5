package auth

import (
	"context"
	"fmt"

	"github.com/xyz-asif/dropwatch/internal/middleware"
	session "github.com/xyz-asif/dropwatch/internal/pkg/jwt"
)

// JWTVerifier accepts the session tokens issued by the passcode login.
type JWTVerifier struct {
	cfg *session.Config
}

func NewJWTVerifier(cfg *session.Config) *JWTVerifier {
	return &JWTVerifier{cfg: cfg}
}

func (v *JWTVerifier) VerifyToken(ctx context.Context, token string) (*middleware.Principal, error) {
	claims, err := session.ValidateTokenWithRole(token, v.cfg, middleware.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", err)
	}
	return &middleware.Principal{Subject: claims.Subject, Role: claims.Role}, nil
}
