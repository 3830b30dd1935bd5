package auth

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Passcode checks the shared administrator code. The configured value may be
// the code itself or a bcrypt hash of it.
type Passcode struct {
	secret []byte
	hashed bool
}

func NewPasscode(configured string) *Passcode {
	configured = strings.TrimSpace(configured)
	return &Passcode{
		secret: []byte(configured),
		hashed: isBcryptHash(configured),
	}
}

// Enabled is false when no code is configured; every login then fails.
func (p *Passcode) Enabled() bool {
	return len(p.secret) > 0
}

func (p *Passcode) Matches(code string) bool {
	if !p.Enabled() || code == "" {
		return false
	}
	if p.hashed {
		return bcrypt.CompareHashAndPassword(p.secret, []byte(code)) == nil
	}
	return subtle.ConstantTimeCompare(p.secret, []byte(code)) == 1
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
