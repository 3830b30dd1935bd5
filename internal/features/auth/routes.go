package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/dropwatch/internal/config"
	"github.com/xyz-asif/dropwatch/internal/middleware"
	session "github.com/xyz-asif/dropwatch/internal/pkg/jwt"
	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
)

// Setup builds the token verifier for cfg.AdminAuthMode and, in passcode mode,
// mounts POST /login on admin. loginLimit may be nil.
func Setup(ctx context.Context, admin *gin.RouterGroup, cfg *config.Config, log *logger.Logger, loginLimit gin.HandlerFunc) (middleware.TokenVerifier, error) {
	switch cfg.AdminAuthMode {
	case ModeFirebase:
		client, err := InitFirebase(ctx, cfg.FirebaseServiceAccountPath)
		if err != nil {
			return nil, err
		}
		return NewFirebaseVerifier(client), nil

	case ModePasscode, "":
		jwtCfg := session.DefaultConfig(cfg.JWTSecret, time.Duration(cfg.JWTExpireHours)*time.Hour)
		passcode := NewPasscode(cfg.AdminCode)
		if !passcode.Enabled() {
			log.Warn("ADMIN_CODE is not set, admin login is disabled")
		}

		handler := NewHandler(passcode, jwtCfg, log)
		if loginLimit != nil {
			admin.POST("/login", loginLimit, handler.Login)
		} else {
			admin.POST("/login", handler.Login)
		}
		return NewJWTVerifier(jwtCfg), nil

	default:
		return nil, fmt.Errorf("unknown ADMIN_AUTH_MODE %q", cfg.AdminAuthMode)
	}
}
