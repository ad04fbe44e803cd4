package impl

import (
	"context"
	"testing"
	"time"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	mockRepo "landmarket/internal/mocks/repository"
	mockSvc "landmarket/internal/mocks/service"
	"landmarket/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewServiceFixtures struct {
	service      usecase.ReviewUsecase
	listingRepo  *mockRepo.MockListingRepository
	evidenceRepo *mockRepo.MockEvidenceRepository
	blobs        *mockSvc.MockBlobStore
	enricher     *mockSvc.MockEnrichmentService
	cache        *mockSvc.MockViewCache
	publisher    *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		listingRepo:  mockRepo.NewMockListingRepository(t),
		evidenceRepo: mockRepo.NewMockEvidenceRepository(t),
		blobs:        mockSvc.NewMockBlobStore(t),
		enricher:     mockSvc.NewMockEnrichmentService(t),
		cache:        mockSvc.NewMockViewCache(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	svc := NewReviewService(ReviewServiceParams{
		ListingRepo:  fx.listingRepo,
		EvidenceRepo: fx.evidenceRepo,
		Blobs:        fx.blobs,
		Enricher:     fx.enricher,
		Cache:        fx.cache,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})
	svc.(*reviewService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func TestReviewService_ReviewListing_Approve(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	listing := newTestListing("listing-1", sellerCaller.ID, entity.ListingStatusPending)
	gold := entity.BadgeGold

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-1").Return(listing, nil)
	fx.listingRepo.EXPECT().Review(ctx, "listing-1", repository.ListingReview{
		Status:     entity.ListingStatusApproved,
		Badge:      &gold,
		ReviewedAt: testNow,
	}).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "home", "admin:listings", "listing:listing-1").Return(nil)
	fx.publisher.EXPECT().PublishReviewEvent(ctx, &service.ReviewEvent{
		Type:      constants.EventListingReviewed,
		ListingID: "listing-1",
		OwnerID:   sellerCaller.ID,
		Title:     listing.Title,
		Status:    "approved",
		Badge:     "Gold",
	}).Return(nil)

	err := fx.service.ReviewListing(ctx, adminCaller, "listing-1", &usecase.ReviewInput{
		Status:          entity.ListingStatusApproved,
		Badge:           &gold,
		RejectionReason: "ignored when approving",
	})

	require.NoError(t, err)
}

func TestReviewService_ReviewListing_RejectWithReason(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()
	listing := newTestListing("listing-2", sellerCaller.ID, entity.ListingStatusPending)

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-2").Return(listing, nil)
	fx.listingRepo.EXPECT().Review(ctx, "listing-2", mock.MatchedBy(func(r repository.ListingReview) bool {
		return r.Status == entity.ListingStatusRejected && r.RejectionReason != nil && *r.RejectionReason == "Blurry deed"
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("redis down"))
	fx.publisher.EXPECT().PublishReviewEvent(ctx, mock.MatchedBy(func(e *service.ReviewEvent) bool {
		return e.Reason == "Blurry deed" && e.Status == "rejected"
	})).Return(errors.New("pubsub down"))

	err := fx.service.ReviewListing(ctx, adminCaller, "listing-2", &usecase.ReviewInput{
		Status:          entity.ListingStatusRejected,
		RejectionReason: "  Blurry deed  ",
	})

	require.NoError(t, err, "cache and publish failures never fail a review")
}

func TestReviewService_ReviewListing_RejectWithoutReason(t *testing.T) {
	for _, reason := range []string{"", "   ", "\n\t"} {
		fx := createTestReviewService(t)

		err := fx.service.ReviewListing(context.Background(), adminCaller, "listing-3", &usecase.ReviewInput{
			Status:          entity.ListingStatusRejected,
			RejectionReason: reason,
		})

		assert.ErrorIs(t, err, domainerrors.ErrRejectionReasonRequired)
	}
}

func TestReviewService_ReviewListing_Authorization(t *testing.T) {
	input := &usecase.ReviewInput{Status: entity.ListingStatusApproved}

	t.Run("anonymous", func(t *testing.T) {
		fx := createTestReviewService(t)
		err := fx.service.ReviewListing(context.Background(), nil, "listing-4", input)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("seller", func(t *testing.T) {
		fx := createTestReviewService(t)
		err := fx.service.ReviewListing(context.Background(), sellerCaller, "listing-4", input)
		assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
	})
}

func TestReviewService_ReviewListing_InvalidInput(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	err := fx.service.ReviewListing(ctx, adminCaller, "l", &usecase.ReviewInput{Status: "archived"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatus)

	platinum := entity.Badge("Platinum")
	err = fx.service.ReviewListing(ctx, adminCaller, "l", &usecase.ReviewInput{Status: entity.ListingStatusApproved, Badge: &platinum})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidBadge)
}

func TestReviewService_ReviewListing_NotFound(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "gone").Return(nil, repository.ErrListingNotFound)

	err := fx.service.ReviewListing(ctx, adminCaller, "gone", &usecase.ReviewInput{Status: entity.ListingStatusApproved})

	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestReviewService_BulkUpdateStatus_NonAdminChangesNothing(t *testing.T) {
	for _, caller := range []*entity.Caller{nil, buyerCaller, sellerCaller} {
		fx := createTestReviewService(t)

		err := fx.service.BulkUpdateStatus(context.Background(), caller, []string{"a", "b"}, entity.ListingStatusApproved)

		require.Error(t, err)
		fx.listingRepo.AssertNotCalled(t, "BulkSetStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestReviewService_BulkUpdateStatus_Success(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().BulkSetStatus(ctx, []string{"a", "b"}, entity.ListingStatusApproved, testNow).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "home", "admin:listings", "listing:a", "listing:b").Return(nil)

	err := fx.service.BulkUpdateStatus(ctx, adminCaller, []string{"a", " b", "a", ""}, entity.ListingStatusApproved)

	require.NoError(t, err)
}

func TestReviewService_BulkUpdateStatus_Validation(t *testing.T) {
	tooMany := make([]string, constants.MaxBatchWrites+1)
	for i := range tooMany {
		tooMany[i] = "id-" + string(rune('a'+i%26)) + string(rune('a'+i/26%26))
	}

	tests := []struct {
		name   string
		ids    []string
		status entity.ListingStatus
		want   error
	}{
		{name: "empty", ids: nil, status: entity.ListingStatusApproved, want: domainerrors.ErrValidationFailed},
		{name: "rejected", ids: []string{"a"}, status: entity.ListingStatusRejected, want: domainerrors.ErrInvalidStatus},
		{name: "unknown status", ids: []string{"a"}, status: "sold", want: domainerrors.ErrInvalidStatus},
		{name: "too many", ids: tooMany, status: entity.ListingStatusPending, want: domainerrors.ErrBulkLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			err := fx.service.BulkUpdateStatus(context.Background(), adminCaller, tt.ids, tt.status)

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, tt.want.(domainerrors.AppError).ErrorCode(), appErr.ErrorCode())
		})
	}
}

func TestReviewService_BulkUpdateStatus_WriteFailure(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().BulkSetStatus(ctx, []string{"a"}, entity.ListingStatusPending, testNow).
		Return(errors.New("batch aborted"))

	err := fx.service.BulkUpdateStatus(ctx, adminCaller, []string{"a"}, entity.ListingStatusPending)

	require.Error(t, err)
}

func TestReviewService_DeleteListing_RemovesEverything(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	listing := newTestListing("listing-5", sellerCaller.ID, entity.ListingStatusApproved)
	listing.ImagePath = "listings/seller-1/1-plot.jpg"
	evidence := []*entity.Evidence{{ID: "ev-1"}, {ID: "ev-2"}, {ID: "ev-3"}}

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-5").Return(listing, nil)
	fx.evidenceRepo.EXPECT().FindByListing(ctx, "listing-5").Return(evidence, nil)
	fx.blobs.EXPECT().Delete(ctx, "listings/seller-1/1-plot.jpg").Return(nil)
	fx.blobs.EXPECT().DeletePrefix(ctx, "evidence/seller-1/listing-5/").Return(3, nil)
	fx.listingRepo.EXPECT().DeleteWithEvidence(ctx, "listing-5", []string{"ev-1", "ev-2", "ev-3"}).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "home", "admin:listings", "listing:listing-5").Return(nil)
	fx.publisher.EXPECT().PublishReviewEvent(ctx, mock.MatchedBy(func(e *service.ReviewEvent) bool {
		return e.Type == constants.EventListingDeleted && e.ListingID == "listing-5"
	})).Return(nil)

	result, err := fx.service.DeleteListing(ctx, sellerCaller, "listing-5")

	require.NoError(t, err)
	assert.Equal(t, 3, result.EvidenceDeleted)
	assert.Equal(t, 4, result.BlobsDeleted)
	assert.Empty(t, result.Warnings)
}

func TestReviewService_DeleteListing_BlobFailuresAreWarnings(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	listing := newTestListing("listing-6", sellerCaller.ID, entity.ListingStatusPending)
	listing.ImagePath = "listings/seller-1/2-plot.jpg"

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-6").Return(listing, nil)
	fx.evidenceRepo.EXPECT().FindByListing(ctx, "listing-6").Return([]*entity.Evidence{{ID: "ev-9"}}, nil)
	fx.blobs.EXPECT().Delete(ctx, listing.ImagePath).Return(errors.New("permission denied"))
	fx.blobs.EXPECT().DeletePrefix(ctx, "evidence/seller-1/listing-6/").Return(0, service.ErrBlobNotFound)
	fx.listingRepo.EXPECT().DeleteWithEvidence(ctx, "listing-6", []string{"ev-9"}).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishReviewEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.DeleteListing(ctx, adminCaller, "listing-6")

	require.NoError(t, err)
	assert.Equal(t, 1, result.EvidenceDeleted)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, StepImageDelete, result.Warnings[0].Step)
}

func TestReviewService_DeleteListing_ForbiddenForOthers(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-7").
		Return(newTestListing("listing-7", "someone-else", entity.ListingStatusApproved), nil)

	_, err := fx.service.DeleteListing(ctx, sellerCaller, "listing-7")

	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
}

func TestReviewService_DeleteListing_BatchFailureIsFatal(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-8").
		Return(newTestListing("listing-8", sellerCaller.ID, entity.ListingStatusApproved), nil)
	fx.evidenceRepo.EXPECT().FindByListing(ctx, "listing-8").Return(nil, nil)
	fx.blobs.EXPECT().DeletePrefix(ctx, "evidence/seller-1/listing-8/").Return(0, nil)
	fx.listingRepo.EXPECT().DeleteWithEvidence(ctx, "listing-8", []string{}).Return(errors.New("aborted"))

	result, err := fx.service.DeleteListing(ctx, sellerCaller, "listing-8")

	assert.Nil(t, result)
	require.Error(t, err)
}

func TestReviewService_ListEvidence(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-9").
		Return(newTestListing("listing-9", sellerCaller.ID, entity.ListingStatusPending), nil).Twice()
	fx.evidenceRepo.EXPECT().FindByListing(ctx, "listing-9").Return([]*entity.Evidence{{ID: "ev-1"}}, nil)

	evidence, err := fx.service.ListEvidence(ctx, sellerCaller, "listing-9")
	require.NoError(t, err)
	assert.Len(t, evidence, 1)

	_, err = fx.service.ListEvidence(ctx, buyerCaller, "listing-9")
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
}

func TestReviewService_SummarizeEvidence(t *testing.T) {
	t.Run("stores analysis", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()
		ev := &entity.Evidence{ID: "ev-1", Name: "deed.png", Content: "Title No. KJD/123"}

		fx.evidenceRepo.EXPECT().FindByID(ctx, "ev-1").Return(ev, nil)
		fx.enricher.EXPECT().AnalyzeEvidence(ctx, "deed.png", "Title No. KJD/123").
			Return(&service.EvidenceAnalysis{Summary: "Title deed", Suspicious: []string{"mismatched seal"}}, nil)
		fx.evidenceRepo.EXPECT().UpdateAnalysis(ctx, "ev-1", "Title deed", []string{"mismatched seal"}).Return(nil)

		got, err := fx.service.SummarizeEvidence(ctx, adminCaller, "ev-1")

		require.NoError(t, err)
		assert.Equal(t, "Title deed", got.Summary)
		assert.Equal(t, []string{"mismatched seal"}, got.Suspicious)
	})

	t.Run("ai unavailable", func(t *testing.T) {
		fx := createTestReviewService(t)
		ctx := context.Background()

		fx.evidenceRepo.EXPECT().FindByID(ctx, "ev-2").Return(&entity.Evidence{ID: "ev-2"}, nil)
		fx.enricher.EXPECT().AnalyzeEvidence(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("quota"))

		_, err := fx.service.SummarizeEvidence(ctx, adminCaller, "ev-2")

		assert.ErrorIs(t, err, domainerrors.ErrAIUnavailable)
	})

	t.Run("seller denied", func(t *testing.T) {
		fx := createTestReviewService(t)

		_, err := fx.service.SummarizeEvidence(context.Background(), sellerCaller, "ev-3")

		assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
	})
}

func TestReviewService_VerifyEvidence(t *testing.T) {
	fx := createTestReviewService(t)
	ctx := context.Background()

	fx.evidenceRepo.EXPECT().SetVerified(ctx, "ev-1", true).Return(nil)
	fx.evidenceRepo.EXPECT().SetVerified(ctx, "missing", true).Return(repository.ErrEvidenceNotFound)

	require.NoError(t, fx.service.VerifyEvidence(ctx, adminCaller, "ev-1", true))
	assert.ErrorIs(t, fx.service.VerifyEvidence(ctx, adminCaller, "missing", true), domainerrors.ErrEvidenceNotFound)
}
