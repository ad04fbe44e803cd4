package repository

import (
	"context"

	"landmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for a uid.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileExists is returned when creating a profile that already exists.
	ErrProfileExists = errors.New("profile already exists")
)

// ProfilePatch carries user-editable profile fields; nil fields are left untouched.
type ProfilePatch struct {
	DisplayName *string
	PhotoURL    *string
	Phone       *string
	Bio         *string
}

// UserRepository defines profile document operations.
type UserRepository interface {
	// Create writes a new profile, failing with ErrProfileExists when one exists.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// FindByUID retrieves a profile by identity-provider uid.
	FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Update applies user-editable changes.
	Update(ctx context.Context, uid string, patch ProfilePatch) error

	// SetRole changes the role. Only reachable through admin workflows.
	SetRole(ctx context.Context, uid string, role entity.Role) error

	// SetVerified marks the profile as verified by an admin.
	SetVerified(ctx context.Context, uid string, verified bool) error

	// List returns profiles ordered by creation time, newest first.
	List(ctx context.Context, limit int) ([]*entity.UserProfile, error)
}
