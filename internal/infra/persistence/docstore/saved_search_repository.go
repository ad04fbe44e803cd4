package docstore

import (
	"context"
	"slices"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// savedSearchRepository implements repository.SavedSearchRepository.
type savedSearchRepository struct {
	client *firestore.Client
}

// NewSavedSearchRepository is the constructor for savedSearchRepository.
func NewSavedSearchRepository(client *firestore.Client) repository.SavedSearchRepository {
	return &savedSearchRepository{client: client}
}

func (repo *savedSearchRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionSavedSearches)
}

func (repo *savedSearchRepository) Create(ctx context.Context, search *entity.SavedSearch) error {
	if search.ID == "" {
		search.ID = repo.col().NewDoc().ID
	}

	if _, err := repo.col().Doc(search.ID).Create(ctx, fromSavedSearchDomain(search)); err != nil {
		return errors.Wrap(err, "failed to create saved search")
	}

	return nil
}

func (repo *savedSearchRepository) FindByID(ctx context.Context, id string) (*entity.SavedSearch, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrSavedSearchNotFound
		}

		return nil, wrapRead(err, "failed to find saved search")
	}

	return toSavedSearchDomain(snap)
}

// ListByOwner returns the owner's searches, newest first.
func (repo *savedSearchRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entity.SavedSearch, error) {
	snaps, err := repo.col().Where("ownerId", "==", ownerID).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to list saved searches")
	}

	searches := make([]*entity.SavedSearch, 0, len(snaps))
	for _, snap := range snaps {
		search, err := toSavedSearchDomain(snap)
		if err != nil {
			return nil, err
		}
		searches = append(searches, search)
	}

	slices.SortStableFunc(searches, func(a, b *entity.SavedSearch) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return searches, nil
}

func (repo *savedSearchRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.col().Doc(id).Delete(ctx, firestore.Exists); err != nil {
		if isNotFound(err) {
			return repository.ErrSavedSearchNotFound
		}

		return errors.Wrap(err, "failed to delete saved search")
	}

	return nil
}

func toSavedSearchDomain(snap *firestore.DocumentSnapshot) (*entity.SavedSearch, error) {
	var m model.SavedSearchModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode saved search %s", snap.Ref.ID)
	}

	filters := entity.SearchFilter{
		Query:     m.Filters.Query,
		County:    m.Filters.County,
		LandType:  m.Filters.LandType,
		MinPrice:  m.Filters.MinPrice,
		MaxPrice:  m.Filters.MaxPrice,
		MinArea:   m.Filters.MinArea,
		MaxArea:   m.Filters.MaxArea,
		Amenities: m.Filters.Amenities,
		SortBy:    m.Filters.SortBy,
		Status:    m.Filters.Status,
	}
	for _, b := range m.Filters.Badges {
		filters.Badges = append(filters.Badges, entity.Badge(b))
	}

	return &entity.SavedSearch{
		ID:        snap.Ref.ID,
		OwnerID:   m.OwnerID,
		Name:      m.Name,
		URL:       m.URL,
		Filters:   filters,
		CreatedAt: m.CreatedAt,
	}, nil
}

func fromSavedSearchDomain(search *entity.SavedSearch) *model.SavedSearchModel {
	f := search.Filters
	filters := model.SearchFilterModel{
		Query:     f.Query,
		County:    f.County,
		LandType:  f.LandType,
		MinPrice:  f.MinPrice,
		MaxPrice:  f.MaxPrice,
		MinArea:   f.MinArea,
		MaxArea:   f.MaxArea,
		Amenities: f.Amenities,
		SortBy:    f.SortBy,
		Status:    f.Status,
	}
	for _, b := range f.Badges {
		filters.Badges = append(filters.Badges, string(b))
	}

	return &model.SavedSearchModel{
		OwnerID:   search.OwnerID,
		Name:      search.Name,
		URL:       search.URL,
		Filters:   filters,
		CreatedAt: search.CreatedAt,
	}
}
