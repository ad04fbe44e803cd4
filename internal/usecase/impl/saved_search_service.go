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
	"landmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxSavedSearches = 50

type savedSearchService struct {
	savedSearchRepo repository.SavedSearchRepository
	logger          *slog.Logger
}

// NewSavedSearchService creates a new saved search service instance
func NewSavedSearchService(savedSearchRepo repository.SavedSearchRepository, logger *slog.Logger) usecase.SavedSearchUsecase {
	return &savedSearchService{
		savedSearchRepo: savedSearchRepo,
		logger:          logger,
	}
}

func (srv *savedSearchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *savedSearchService) SaveSearch(ctx context.Context, caller *entity.Caller, name, url string, filters entity.SearchFilter) (*entity.SavedSearch, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	existing, err := srv.savedSearchRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved searches")
	}
	if len(existing) >= maxSavedSearches {
		return nil, domainerrors.ErrValidationFailed.WithDetails("saved search limit reached")
	}

	// Cursors are page-specific and never saved.
	filters.StartAfter = ""

	search := &entity.SavedSearch{
		ID:        uuid.NewString(),
		OwnerID:   caller.ID,
		Name:      name,
		URL:       strings.TrimSpace(url),
		Filters:   filters,
		CreatedAt: time.Now().UTC(),
	}

	if err := srv.savedSearchRepo.Create(ctx, search); err != nil {
		return nil, errors.Wrap(err, "failed to save search")
	}

	srv.log(ctx).Debug("Search saved", slog.String("saved_search_id", search.ID))

	return search, nil
}

func (srv *savedSearchService) ListSavedSearches(ctx context.Context, caller *entity.Caller) ([]*entity.SavedSearch, error) {
	if err := requireCaller(caller); err != nil {
		return nil, err
	}

	searches, err := srv.savedSearchRepo.ListByOwner(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saved searches")
	}

	return searches, nil
}

func (srv *savedSearchService) DeleteSavedSearch(ctx context.Context, caller *entity.Caller, id string) error {
	if err := requireCaller(caller); err != nil {
		return err
	}

	search, err := srv.savedSearchRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSavedSearchNotFound) {
			return domainerrors.ErrSavedSearchNotFound
		}

		return errors.Wrap(err, "failed to find saved search")
	}

	if search.OwnerID != caller.ID {
		return domainerrors.ErrSavedSearchNotFound
	}

	if err := srv.savedSearchRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete saved search")
	}

	return nil
}
