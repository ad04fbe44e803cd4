package impl

import (
	"context"
	"testing"

	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/service"
	mockRepo "landmarket/internal/mocks/repository"
	mockSvc "landmarket/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepService_SweepOrphanedEvidence(t *testing.T) {
	listingRepo := mockRepo.NewMockListingRepository(t)
	evidenceRepo := mockRepo.NewMockEvidenceRepository(t)
	blobs := mockSvc.NewMockBlobStore(t)
	svc := NewSweepService(listingRepo, evidenceRepo, blobs, newDiscardLogger())
	ctx := context.Background()

	evidenceRepo.EXPECT().ListingIDs(ctx).Return([]string{"live", "orphan", "flaky"}, nil)
	listingRepo.EXPECT().Exists(ctx, "live").Return(true, nil)
	listingRepo.EXPECT().Exists(ctx, "orphan").Return(false, nil)
	listingRepo.EXPECT().Exists(ctx, "flaky").Return(false, errors.New("deadline exceeded"))
	evidenceRepo.EXPECT().FindByListing(ctx, "orphan").Return([]*entity.Evidence{
		{ID: "e1", StoragePath: "evidence/u/orphan/a.png"},
		{ID: "e2", StoragePath: "evidence/u/orphan/b.pdf"},
	}, nil)
	blobs.EXPECT().Delete(ctx, "evidence/u/orphan/a.png").Return(nil)
	blobs.EXPECT().Delete(ctx, "evidence/u/orphan/b.pdf").Return(service.ErrBlobNotFound)
	evidenceRepo.EXPECT().DeleteByListing(ctx, "orphan").Return(2, nil)

	removed, err := svc.SweepOrphanedEvidence(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, removed)
}

func TestSweepService_SweepOrphanedEvidence_ListFailure(t *testing.T) {
	evidenceRepo := mockRepo.NewMockEvidenceRepository(t)
	svc := NewSweepService(mockRepo.NewMockListingRepository(t), evidenceRepo, mockSvc.NewMockBlobStore(t), newDiscardLogger())
	ctx := context.Background()

	evidenceRepo.EXPECT().ListingIDs(ctx).Return(nil, errors.New("unavailable"))

	_, err := svc.SweepOrphanedEvidence(ctx)

	require.Error(t, err)
}
