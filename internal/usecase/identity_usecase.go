// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"landmarket/internal/domain/entity"
)

// IdentityUsecase resolves callers and manages session credentials.
type IdentityUsecase interface {
	// ResolveCaller decodes a session credential into the caller's id and role.
	// A missing or invalid credential, or a missing profile, yields nil.
	ResolveCaller(ctx context.Context, sessionToken string) *entity.Caller

	// CreateSession exchanges a short-lived identity token for a session credential.
	CreateSession(ctx context.Context, idToken string) (cookie string, ttl time.Duration, err error)

	// RevokeSession revokes the sessions behind the credential. Best effort.
	RevokeSession(ctx context.Context, sessionToken string)
}
