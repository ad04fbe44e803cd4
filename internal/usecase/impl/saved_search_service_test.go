package impl

import (
	"context"
	"testing"

	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	mockRepo "landmarket/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSavedSearchService_SaveSearch(t *testing.T) {
	repo := mockRepo.NewMockSavedSearchRepository(t)
	svc := NewSavedSearchService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().ListByOwner(ctx, buyerCaller.ID).Return([]*entity.SavedSearch{}, nil)
	repo.EXPECT().Create(ctx, mock.MatchedBy(func(s *entity.SavedSearch) bool {
		return s.OwnerID == buyerCaller.ID && s.Name == "Kajiado plots" && s.Filters.County == "Kajiado" && s.Filters.StartAfter == ""
	})).Return(nil)

	saved, err := svc.SaveSearch(ctx, buyerCaller, " Kajiado plots ", "/listings?county=Kajiado", entity.SearchFilter{
		County:     "Kajiado",
		StartAfter: "cursor-1",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, saved.ID)
}

func TestSavedSearchService_SaveSearch_Limit(t *testing.T) {
	repo := mockRepo.NewMockSavedSearchRepository(t)
	svc := NewSavedSearchService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().ListByOwner(ctx, buyerCaller.ID).Return(make([]*entity.SavedSearch, maxSavedSearches), nil)

	_, err := svc.SaveSearch(ctx, buyerCaller, "one more", "", entity.SearchFilter{})

	require.Error(t, err)
}

func TestSavedSearchService_DeleteSavedSearch_OwnerOnly(t *testing.T) {
	repo := mockRepo.NewMockSavedSearchRepository(t)
	svc := NewSavedSearchService(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().FindByID(ctx, "s1").Return(&entity.SavedSearch{ID: "s1", OwnerID: buyerCaller.ID}, nil)
	repo.EXPECT().FindByID(ctx, "s2").Return(nil, repository.ErrSavedSearchNotFound)
	repo.EXPECT().Delete(ctx, "s1").Return(nil)

	assert.ErrorIs(t, svc.DeleteSavedSearch(ctx, sellerCaller, "s1"), domainerrors.ErrSavedSearchNotFound)
	assert.ErrorIs(t, svc.DeleteSavedSearch(ctx, buyerCaller, "s2"), domainerrors.ErrSavedSearchNotFound)
	require.NoError(t, svc.DeleteSavedSearch(ctx, buyerCaller, "s1"))
}
