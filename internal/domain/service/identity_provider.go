// Package service defines interfaces for external collaborators and stateless domain logic.
// Concrete implementations live under internal/infra.
package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidCredential is returned for missing, malformed, expired or revoked tokens.
var ErrInvalidCredential = errors.New("invalid credential")

// Identity is what the identity provider knows about a verified credential.
type Identity struct {
	UID   string
	Email string
}

// IdentityProvider exchanges and verifies credentials issued by the managed identity service.
type IdentityProvider interface {
	// VerifyIDToken checks a short-lived identity token issued to the browser.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)

	// CreateSessionCookie exchanges a verified identity token for a long-lived session credential.
	CreateSessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error)

	// VerifySessionCookie decodes a session credential into the identity it was issued for.
	VerifySessionCookie(ctx context.Context, cookie string) (*Identity, error)

	// RevokeSessions invalidates every session of the uid.
	RevokeSessions(ctx context.Context, uid string) error
}
