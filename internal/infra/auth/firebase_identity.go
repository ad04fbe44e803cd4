package auth

import (
	"context"
	"time"

	"landmarket/internal/domain/service"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
)

// firebaseIdentity delegates credential handling to Firebase Authentication.
type firebaseIdentity struct {
	client *auth.Client
}

// NewFirebaseIdentity is the constructor for firebaseIdentity.
func NewFirebaseIdentity(client *auth.Client) service.IdentityProvider {
	return &firebaseIdentity{client: client}
}

func (s *firebaseIdentity) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	if idToken == "" {
		return nil, service.ErrInvalidCredential
	}

	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}

	return toIdentity(token), nil
}

func (s *firebaseIdentity) CreateSessionCookie(ctx context.Context, idToken string, ttl time.Duration) (string, error) {
	if _, err := s.VerifyIDToken(ctx, idToken); err != nil {
		return "", err
	}

	cookie, err := s.client.SessionCookie(ctx, idToken, ttl)
	if err != nil {
		return "", errors.Wrap(err, "failed to create session cookie")
	}

	return cookie, nil
}

// VerifySessionCookie also rejects cookies whose refresh tokens were revoked.
func (s *firebaseIdentity) VerifySessionCookie(ctx context.Context, cookie string) (*service.Identity, error) {
	if cookie == "" {
		return nil, service.ErrInvalidCredential
	}

	token, err := s.client.VerifySessionCookieAndCheckRevoked(ctx, cookie)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidCredential, err.Error())
	}

	return toIdentity(token), nil
}

func (s *firebaseIdentity) RevokeSessions(ctx context.Context, uid string) error {
	if err := s.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func toIdentity(token *auth.Token) *service.Identity {
	email, _ := token.Claims["email"].(string)

	return &service.Identity{UID: token.UID, Email: email}
}
