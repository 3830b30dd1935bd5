package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims
type Claims struct {
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Config represents JWT configuration
type Config struct {
	Secret        string
	AccessExpiry  time.Duration
	Issuer        string
	Audience      string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns default JWT configuration
func DefaultConfig(secret string, expiry time.Duration) *Config {
	if expiry <= 0 {
		expiry = 12 * time.Hour
	}
	return &Config{
		Secret:        secret,
		AccessExpiry:  expiry,
		Issuer:        "dropwatch-api",
		Audience:      "dropwatch-dashboard",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// GenerateTokenWithRole generates a signed token for subject carrying role,
// and returns it with its expiry.
func GenerateTokenWithRole(subject, role string, cfg *Config) (string, time.Time, error) {
	if cfg == nil || cfg.Secret == "" {
		return "", time.Time{}, errors.New("JWT config is required")
	}

	now := time.Now()
	expires := now.Add(cfg.AccessExpiry)
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
			Audience:  []string{cfg.Audience},
			Subject:   subject,
		},
	}

	token := jwt.NewWithClaims(cfg.SigningMethod, claims)
	signed, err := token.SignedString([]byte(cfg.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// ValidateToken validates and parses a JWT token issued with cfg
func ValidateToken(tokenString string, cfg *Config) (*Claims, error) {
	if cfg == nil || cfg.Secret == "" {
		return nil, errors.New("JWT config is required")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateTokenWithRole validates token and checks if the holder has requiredRole
func ValidateTokenWithRole(tokenString string, cfg *Config, requiredRole string) (*Claims, error) {
	claims, err := ValidateToken(tokenString, cfg)
	if err != nil {
		return nil, err
	}

	if requiredRole != "" && claims.Role != requiredRole {
		return nil, errors.New("insufficient permissions")
	}

	return claims, nil
}
