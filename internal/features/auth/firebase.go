package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"github.com/xyz-asif/dropwatch/internal/middleware"
)

// AdminClaim is the Firebase custom claim that marks an administrator.
const AdminClaim = "admin"

// InitFirebase initializes the Firebase Admin SDK and returns the Auth client
func InitFirebase(ctx context.Context, serviceAccountPath string) (*fbauth.Client, error) {
	var opts []option.ClientOption
	if serviceAccountPath != "" {
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}
	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	return client, nil
}

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*fbauth.Token, error)
}

// FirebaseVerifier accepts Firebase ID tokens. Only users carrying the admin
// custom claim get the admin role.
type FirebaseVerifier struct {
	client idTokenVerifier
}

func NewFirebaseVerifier(client *fbauth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) VerifyToken(ctx context.Context, token string) (*middleware.Principal, error) {
	tok, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("invalid firebase token: %w", err)
	}

	p := &middleware.Principal{Subject: tok.UID}
	if email, ok := tok.Claims["email"].(string); ok {
		p.Email = email
	}
	if isAdmin, ok := tok.Claims[AdminClaim].(bool); ok && isAdmin {
		p.Role = middleware.RoleAdmin
	}
	return p, nil
}
