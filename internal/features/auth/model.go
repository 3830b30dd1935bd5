package auth

import "time"

// LoginRequest carries the shared administrator passcode
type LoginRequest struct {
	Code string `json:"code" binding:"required" example:"s3cret-code"`
}

// LoginResponse is the dashboard session token
type LoginResponse struct {
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt time.Time `json:"expiresAt" example:"2025-03-01T22:00:00Z"`
}

const (
	ModePasscode = "passcode"
	ModeFirebase = "firebase"
)
