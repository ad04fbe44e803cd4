package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
)

// CreateProfileInput holds signup details. Role must be BUYER or SELLER.
type CreateProfileInput struct {
	DisplayName string      `json:"displayName"`
	Role        entity.Role `json:"role"`
	Phone       string      `json:"phone"`
	PhotoURL    string      `json:"photoURL"`
}

// UpdateProfileInput holds user-editable fields; nil leaves a field unchanged.
type UpdateProfileInput struct {
	DisplayName *string `json:"displayName"`
	PhotoURL    *string `json:"photoURL"`
	Phone       *string `json:"phone"`
	Bio         *string `json:"bio"`
}

// ProfileUsecase manages marketplace profiles.
type ProfileUsecase interface {
	// CreateProfile creates the profile for the identity behind a session credential.
	CreateProfile(ctx context.Context, sessionToken string, input *CreateProfileInput) (*entity.UserProfile, error)

	GetProfile(ctx context.Context, caller *entity.Caller) (*entity.UserProfile, error)

	UpdateProfile(ctx context.Context, caller *entity.Caller, input *UpdateProfileInput) (*entity.UserProfile, error)

	// ListProfiles is admin only.
	ListProfiles(ctx context.Context, caller *entity.Caller, limit int) ([]*entity.UserProfile, error)

	// SetRole is admin only.
	SetRole(ctx context.Context, caller *entity.Caller, uid string, role entity.Role) error

	// SetVerified is admin only.
	SetVerified(ctx context.Context, caller *entity.Caller, uid string, verified bool) error
}
