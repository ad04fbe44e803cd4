package docstore

import (
	"context"
	"os"
	"testing"
	"time"

	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWrapRead(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{name: "unavailable", err: status.Error(codes.Unavailable, "dns"), wantTransient: true},
		{name: "deadline", err: status.Error(codes.DeadlineExceeded, "slow"), wantTransient: true},
		{name: "context deadline", err: context.DeadlineExceeded, wantTransient: true},
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "rules"), wantTransient: false},
		{name: "plain error", err: errors.New("boom"), wantTransient: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := wrapRead(tt.err, "failed to read")
			require.Error(t, err)
			assert.Equal(t, tt.wantTransient, errors.Is(err, repository.ErrStoreUnavailable))
			assert.Contains(t, err.Error(), "failed to read")
		})
	}
}

func TestFromListingDomain_NormalisesEmptyCollections(t *testing.T) {
	m := fromListingDomain(&entity.Listing{Title: "Plot", Status: entity.ListingStatusPending, Badge: entity.BadgeNone})

	assert.NotNil(t, m.Amenities)
	assert.NotNil(t, m.Images)
	assert.Nil(t, m.BadgeSuggestion)
	assert.Nil(t, m.RejectionReason)
}

func TestListingPatchUpdates(t *testing.T) {
	now := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	title := "New title"

	byPath := func(updates []firestore.Update) map[string]any {
		out := map[string]any{}
		for _, u := range updates {
			out[u.Path] = u.Value
		}

		return out
	}

	owner := byPath(listingPatchUpdates(repository.ListingPatch{Title: &title, ResetToPending: true, UpdatedAt: now}))
	assert.Equal(t, "New title", owner["title"])
	assert.Equal(t, string(entity.ListingStatusPending), owner["status"])
	require.Contains(t, owner, "rejectionReason")
	assert.Nil(t, owner["rejectionReason"])
	assert.Equal(t, now, owner["updatedAt"])

	admin := byPath(listingPatchUpdates(repository.ListingPatch{Title: &title, UpdatedAt: now}))
	assert.NotContains(t, admin, "status")
	assert.NotContains(t, admin, "rejectionReason")
}

// newEmulatorClient connects to the Firestore emulator, skipping when it is not running.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	client, err := firestore.NewClient(context.Background(), "landmarket-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestListingRepository_QueryPagesWithoutOverlap(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewListingRepository(client)
	ctx := context.Background()

	owner := "owner-" + time.Now().Format("150405.000000")
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range 5 {
		require.NoError(t, repo.Create(ctx, &entity.Listing{
			ID:        repo.NewID(),
			OwnerID:   owner,
			Title:     "Plot",
			Status:    entity.ListingStatusApproved,
			Badge:     entity.BadgeNone,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	first, err := repo.Query(ctx, repository.ListingQuery{OwnerID: owner, Limit: 3})
	require.NoError(t, err)
	require.Len(t, first, 3)

	second, err := repo.Query(ctx, repository.ListingQuery{OwnerID: owner, Limit: 3, StartAfter: first[2].ID})
	require.NoError(t, err)
	require.Len(t, second, 2)

	seen := map[string]bool{}
	for _, l := range append(first, second...) {
		assert.False(t, seen[l.ID], "listing %s returned twice", l.ID)
		seen[l.ID] = true
	}

	_, err = repo.Query(ctx, repository.ListingQuery{OwnerID: owner, StartAfter: "missing-cursor"})
	assert.ErrorIs(t, err, repository.ErrCursorNotFound)
}

func TestListingRepository_BulkSetStatusIsAllOrNothing(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewListingRepository(client)
	ctx := context.Background()

	id := repo.NewID()
	require.NoError(t, repo.Create(ctx, &entity.Listing{
		ID:        id,
		OwnerID:   "owner-bulk",
		Status:    entity.ListingStatusPending,
		Badge:     entity.BadgeNone,
		CreatedAt: time.Now().UTC(),
	}))

	err := repo.BulkSetStatus(ctx, []string{id, "does-not-exist"}, entity.ListingStatusApproved, time.Now().UTC())
	require.ErrorIs(t, err, repository.ErrListingNotFound)

	listing, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPending, listing.Status)
}

func TestListingRepository_OwnerEditClearsRejectionReason(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewListingRepository(client)
	ctx := context.Background()

	reason := "Blurry title deed"
	id := repo.NewID()
	require.NoError(t, repo.Create(ctx, &entity.Listing{
		ID:              id,
		OwnerID:         "owner-edit",
		Title:           "Plot",
		Status:          entity.ListingStatusRejected,
		Badge:           entity.BadgeNone,
		RejectionReason: &reason,
		CreatedAt:       time.Now().UTC(),
	}))

	title := "Plot with clear deed"
	require.NoError(t, repo.Update(ctx, id, repository.ListingPatch{Title: &title, ResetToPending: true, UpdatedAt: time.Now().UTC()}))

	listing, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPending, listing.Status)
	assert.Nil(t, listing.RejectionReason)
}
