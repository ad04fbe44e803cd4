package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
)

const defaultProfileListLimit = 100

type profileService struct {
	identity service.IdentityProvider
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(identity service.IdentityProvider, userRepo repository.UserRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		identity: identity,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProfile creates the profile for the identity behind a session credential.
func (srv *profileService) CreateProfile(ctx context.Context, sessionToken string, input *usecase.CreateProfileInput) (*entity.UserProfile, error) {
	ident, err := srv.identity.VerifySessionCookie(ctx, sessionToken)
	if err != nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if !input.Role.IsSelfAssignable() {
		return nil, domainerrors.ErrInvalidRole.WithDetails("role must be BUYER or SELLER")
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("displayName is required")
	}

	profile := &entity.UserProfile{
		UID:         ident.UID,
		Email:       ident.Email,
		DisplayName: displayName,
		PhotoURL:    strings.TrimSpace(input.PhotoURL),
		Role:        input.Role,
		Phone:       strings.TrimSpace(input.Phone),
		CreatedAt:   time.Now().UTC(),
	}

	if err := srv.userRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileExists) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile created", slog.String("uid", profile.UID), slog.String("role", profile.Role.String()))

	return profile, nil
}

// GetProfile returns the caller's own profile.
func (srv *profileService) GetProfile(ctx context.Context, caller *entity.Caller) (*entity.UserProfile, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	profile, err := srv.userRepo.FindByUID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile applies user-editable changes. The role is not editable here.
func (srv *profileService) UpdateProfile(ctx context.Context, caller *entity.Caller, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	if input.DisplayName != nil && strings.TrimSpace(*input.DisplayName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("displayName cannot be empty")
	}

	patch := repository.ProfilePatch{
		DisplayName: trimmed(input.DisplayName),
		PhotoURL:    trimmed(input.PhotoURL),
		Phone:       trimmed(input.Phone),
		Bio:         trimmed(input.Bio),
	}

	if err := srv.userRepo.Update(ctx, caller.ID, patch); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return srv.GetProfile(ctx, caller)
}

// ListProfiles returns the newest profiles to an admin.
func (srv *profileService) ListProfiles(ctx context.Context, caller *entity.Caller, limit int) ([]*entity.UserProfile, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > defaultProfileListLimit {
		limit = defaultProfileListLimit
	}

	profiles, err := srv.userRepo.List(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// SetRole changes another user's role.
func (srv *profileService) SetRole(ctx context.Context, caller *entity.Caller, uid string, role entity.Role) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if !role.IsValid() {
		return domainerrors.ErrInvalidRole
	}
	if uid == caller.ID {
		return domainerrors.ErrInvalidRole.WithDetails("admins cannot change their own role")
	}

	if err := srv.userRepo.SetRole(ctx, uid, role); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to set role")
	}

	srv.log(ctx).Info("Role changed", slog.String("uid", uid), slog.String("role", role.String()), slog.String("by", caller.ID))

	return nil
}

// SetVerified flags a profile as verified.
func (srv *profileService) SetVerified(ctx context.Context, caller *entity.Caller, uid string, verified bool) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}

	if err := srv.userRepo.SetVerified(ctx, uid, verified); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to set verified")
	}

	return nil
}
