package docstore

import (
	"context"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// userRepository implements repository.UserRepository on the 'users' collection.
// Documents are keyed by the identity provider uid.
type userRepository struct {
	client *firestore.Client
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (repo *userRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionUsers)
}

// Create writes the profile, failing with repository.ErrProfileExists when the uid is taken.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	m := &model.UserModel{
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		PhotoURL:    profile.PhotoURL,
		Role:        profile.Role.String(),
		Phone:       profile.Phone,
		Bio:         profile.Bio,
		Verified:    profile.Verified,
		CreatedAt:   profile.CreatedAt,
	}

	if _, err := repo.col().Doc(profile.UID).Create(ctx, m); err != nil {
		if isAlreadyExists(err) {
			return repository.ErrProfileExists
		}

		return errors.Wrap(err, "failed to create profile")
	}

	return nil
}

func (repo *userRepository) FindByUID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.col().Doc(uid).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, wrapRead(err, "failed to find profile by uid")
	}

	return toUserDomain(snap)
}

func (repo *userRepository) Update(ctx context.Context, uid string, patch repository.ProfilePatch) error {
	var updates []firestore.Update
	if patch.DisplayName != nil {
		updates = append(updates, firestore.Update{Path: "displayName", Value: *patch.DisplayName})
	}
	if patch.PhotoURL != nil {
		updates = append(updates, firestore.Update{Path: "photoURL", Value: *patch.PhotoURL})
	}
	if patch.Phone != nil {
		updates = append(updates, firestore.Update{Path: "phone", Value: *patch.Phone})
	}
	if patch.Bio != nil {
		updates = append(updates, firestore.Update{Path: "bio", Value: *patch.Bio})
	}
	if len(updates) == 0 {
		return nil
	}

	return repo.update(ctx, uid, updates)
}

func (repo *userRepository) SetRole(ctx context.Context, uid string, role entity.Role) error {
	return repo.update(ctx, uid, []firestore.Update{{Path: "role", Value: role.String()}})
}

func (repo *userRepository) SetVerified(ctx context.Context, uid string, verified bool) error {
	return repo.update(ctx, uid, []firestore.Update{{Path: "verified", Value: verified}})
}

func (repo *userRepository) List(ctx context.Context, limit int) ([]*entity.UserProfile, error) {
	query := repo.col().OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to list profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(snaps))
	for _, snap := range snaps {
		profile, err := toUserDomain(snap)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, profile)
	}

	return profiles, nil
}

func (repo *userRepository) update(ctx context.Context, uid string, updates []firestore.Update) error {
	if _, err := repo.col().Doc(uid).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

func toUserDomain(snap *firestore.DocumentSnapshot) (*entity.UserProfile, error) {
	var m model.UserModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode profile %s", snap.Ref.ID)
	}

	return &entity.UserProfile{
		UID:         snap.Ref.ID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		PhotoURL:    m.PhotoURL,
		Role:        entity.Role(m.Role),
		Phone:       m.Phone,
		Bio:         m.Bio,
		Verified:    m.Verified,
		CreatedAt:   m.CreatedAt,
	}, nil
}
