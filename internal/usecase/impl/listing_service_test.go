package impl

import (
	"context"
	"io"
	"math"
	"strings"
	"sync"
	"testing"
	"time"

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

// listingServiceFixtures holds all test dependencies for listing service tests.
type listingServiceFixtures struct {
	service      usecase.ListingUsecase
	listingRepo  *mockRepo.MockListingRepository
	evidenceRepo *mockRepo.MockEvidenceRepository
	userRepo     *mockRepo.MockUserRepository
	blobs        *mockSvc.MockBlobStore
	enricher     *mockSvc.MockEnrichmentService
	cache        *mockSvc.MockViewCache
	qrCode       *mockSvc.MockQRCodeService
	parcel       *mockSvc.MockParcelService
}

func createTestListingService(t *testing.T) listingServiceFixtures {
	fx := listingServiceFixtures{
		listingRepo:  mockRepo.NewMockListingRepository(t),
		evidenceRepo: mockRepo.NewMockEvidenceRepository(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		blobs:        mockSvc.NewMockBlobStore(t),
		enricher:     mockSvc.NewMockEnrichmentService(t),
		cache:        mockSvc.NewMockViewCache(t),
		qrCode:       mockSvc.NewMockQRCodeService(t),
		parcel:       mockSvc.NewMockParcelService(t),
	}

	svc := NewListingService(ListingServiceParams{
		ListingRepo:  fx.listingRepo,
		EvidenceRepo: fx.evidenceRepo,
		UserRepo:     fx.userRepo,
		Blobs:        fx.blobs,
		Enricher:     fx.enricher,
		Cache:        fx.cache,
		QRCode:       fx.qrCode,
		Parcel:       fx.parcel,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	svc.(*listingService).now = func() time.Time { return testNow }
	fx.service = svc

	return fx
}

func (fx listingServiceFixtures) expectSellerSnapshot(ctx context.Context) {
	fx.userRepo.EXPECT().FindByUID(ctx, sellerCaller.ID).Return(&entity.UserProfile{
		UID:         sellerCaller.ID,
		Email:       sellerCaller.Email,
		DisplayName: "Wanjiru Estates",
		PhotoURL:    "https://cdn.example.com/w.png",
		Role:        entity.RoleSeller,
	}, nil)
}

func TestListingService_CreateListing_Unauthenticated(t *testing.T) {
	fx := createTestListingService(t)

	result, err := fx.service.CreateListing(context.Background(), nil, &usecase.CreateListingInput{
		Title: "Plot",
		Image: &usecase.FileUpload{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte{1}},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestListingService_CreateListing_BuyerIsDenied(t *testing.T) {
	fx := createTestListingService(t)

	result, err := fx.service.CreateListing(context.Background(), buyerCaller, &usecase.CreateListingInput{Title: "Plot"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
}

func TestListingService_CreateListing_ValidationErrors(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateListingInput
	}{
		{name: "missing title", input: &usecase.CreateListingInput{Title: "  "}},
		{name: "negative price", input: &usecase.CreateListingInput{Title: "Plot", Price: -1}},
		{name: "negative area", input: &usecase.CreateListingInput{Title: "Plot", Area: -0.5}},
		{name: "NaN price", input: &usecase.CreateListingInput{Title: "Plot", Price: math.NaN()}},
		{name: "infinite area", input: &usecase.CreateListingInput{Title: "Plot", Area: math.Inf(1)}},
		{name: "too many evidence files", input: &usecase.CreateListingInput{
			Title:    "Plot",
			Evidence: make([]usecase.FileUpload, 4),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)

			result, err := fx.service.CreateListing(context.Background(), sellerCaller, tt.input)

			assert.Nil(t, result)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
		})
	}
}

func TestListingService_CreateListing_OCRFailureUsesPlaceholder(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.listingRepo.EXPECT().NewID().Return("listing-1")
	fx.evidenceRepo.EXPECT().NewID().Return("ev-1")
	fx.blobs.EXPECT().
		Upload(mock.Anything, "evidence/seller-1/listing-1/ev-1-title.png", "image/png", mock.Anything).
		Return("https://blobs.example.com/evidence/seller-1/listing-1/ev-1-title.png", nil)
	fx.enricher.EXPECT().
		ExtractText(mock.Anything, []byte("png-bytes"), "image/png").
		Return("", errors.New("model overloaded"))

	placeholder := "AI text extraction failed for 'title.png'."
	fx.enricher.EXPECT().
		SuggestBadge(ctx, "Quarter acre, Kitengela", []string{placeholder}).
		Return(&service.BadgeSuggestion{Badge: entity.BadgeBronze, Reason: "limited documents"}, nil)

	var created *entity.Listing
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, l *entity.Listing) { created = l }).
		Return(nil)

	var stored []*entity.Evidence
	fx.evidenceRepo.EXPECT().CreateBatch(ctx, mock.Anything).
		Run(func(_ context.Context, ev []*entity.Evidence) { stored = ev }).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	result, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title:    "Quarter acre, Kitengela",
		Location: "Kitengela",
		County:   "Kajiado",
		Price:    1_200_000,
		Area:     0.25,
		Evidence: []usecase.FileUpload{{Name: "title.png", ContentType: "image/png", Data: []byte("png-bytes")}},
	})

	require.NoError(t, err)
	assert.Equal(t, "listing-1", result.ListingID)
	assert.True(t, result.Degraded())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, StepEvidenceOCR, result.Warnings[0].Step)
	assert.Equal(t, "title.png", result.Warnings[0].Subject)
	require.NotNil(t, result.BadgeSuggestion)
	assert.Equal(t, entity.BadgeBronze, *result.BadgeSuggestion)

	require.NotNil(t, created)
	assert.Equal(t, entity.ListingStatusPending, created.Status)
	assert.Equal(t, entity.BadgeNone, created.Badge)
	assert.Nil(t, created.RejectionReason)
	assert.Equal(t, "Wanjiru Estates", created.Seller.Name)
	assert.Equal(t, testNow, created.CreatedAt)

	require.Len(t, stored, 1)
	assert.Equal(t, placeholder, stored[0].Content)
	assert.Equal(t, "listing-1", stored[0].ListingID)
	assert.Equal(t, "evidence/seller-1/listing-1/ev-1-title.png", stored[0].StoragePath)
}

func TestListingService_CreateListing_NonImageEvidenceGetsPlaceholder(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.listingRepo.EXPECT().NewID().Return("listing-2")
	fx.evidenceRepo.EXPECT().NewID().Return("ev-2")
	fx.blobs.EXPECT().
		Upload(mock.Anything, "evidence/seller-1/listing-2/ev-2-deed.pdf", "application/pdf", mock.Anything).
		Return("https://blobs.example.com/deed.pdf", nil)

	placeholder := "File 'deed.pdf' is not an image and cannot be summarized automatically."
	fx.enricher.EXPECT().
		SuggestBadge(ctx, "Ranch land", []string{placeholder}).
		Return(&service.BadgeSuggestion{Badge: entity.BadgeNone}, nil)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)
	fx.evidenceRepo.EXPECT().CreateBatch(ctx, mock.MatchedBy(func(ev []*entity.Evidence) bool {
		return len(ev) == 1 && ev[0].Content == placeholder && ev[0].Type == "application/pdf"
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	result, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title:    "Ranch land",
		Evidence: []usecase.FileUpload{{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}},
	})

	require.NoError(t, err)
	assert.False(t, result.Degraded())
}

func TestListingService_CreateListing_SameNamedEvidenceKeepsBothBlobs(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.listingRepo.EXPECT().NewID().Return("listing-8")
	fx.evidenceRepo.EXPECT().NewID().Return("ev-a").Once()
	fx.evidenceRepo.EXPECT().NewID().Return("ev-b").Once()

	uploaded := map[string]string{}
	var mu sync.Mutex
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, "application/pdf", mock.Anything).
		RunAndReturn(func(_ context.Context, key, _ string, r io.Reader) (string, error) {
			data, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			mu.Lock()
			defer mu.Unlock()
			uploaded[key] = string(data)

			return "https://blobs.example.com/" + key, nil
		}).Twice()
	fx.enricher.EXPECT().SuggestBadge(ctx, "Twin deeds", mock.Anything).Return(&service.BadgeSuggestion{Badge: entity.BadgeNone}, nil)
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).Return(nil)

	var stored []*entity.Evidence
	fx.evidenceRepo.EXPECT().CreateBatch(ctx, mock.Anything).
		Run(func(_ context.Context, ev []*entity.Evidence) { stored = ev }).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	_, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title: "Twin deeds",
		Evidence: []usecase.FileUpload{
			{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("first deed")},
			{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("second deed")},
		},
	})

	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.NotEqual(t, stored[0].StoragePath, stored[1].StoragePath)
	assert.Len(t, uploaded, 2)
	for _, ev := range stored {
		assert.True(t, strings.HasPrefix(ev.StoragePath, "evidence/seller-1/listing-8/"+ev.ID+"-"), ev.StoragePath)
		assert.True(t, strings.HasSuffix(ev.StoragePath, "deed.pdf"))
	}
	assert.ElementsMatch(t, []string{"first deed", "second deed"}, []string{uploaded[stored[0].StoragePath], uploaded[stored[1].StoragePath]})
}

func TestListingService_CreateListing_MainImageAndAuthenticityFailure(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	key := "listings/seller-1/1741944600000-plot.jpg"

	fx.expectSellerSnapshot(ctx)
	fx.blobs.EXPECT().Upload(ctx, key, "image/jpeg", mock.Anything).Return("https://blobs.example.com/"+key, nil)
	fx.enricher.EXPECT().
		CheckImageAuthenticity(ctx, []byte("jpeg"), "image/jpeg").
		Return(nil, errors.New("quota exceeded"))
	fx.listingRepo.EXPECT().NewID().Return("listing-3")

	var created *entity.Listing
	fx.listingRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Listing")).
		Run(func(_ context.Context, l *entity.Listing) { created = l }).
		Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	result, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title:     "Plot",
		ImageHint: "aerial view",
		Image:     &usecase.FileUpload{Name: "../../plot.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
	})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, StepImageAuthenticity, result.Warnings[0].Step)
	assert.Nil(t, result.BadgeSuggestion)

	require.NotNil(t, created)
	assert.Equal(t, "https://blobs.example.com/"+key, created.Image)
	assert.Equal(t, key, created.ImagePath)
	assert.Nil(t, created.ImageAnalysis)
	require.Len(t, created.Images, 1)
	assert.Equal(t, "aerial view", created.Images[0].Hint)
}

func TestListingService_CreateListing_EvidenceUploadFailureIsFatal(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.listingRepo.EXPECT().NewID().Return("listing-4")
	fx.evidenceRepo.EXPECT().NewID().Return("ev-4")
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("bucket unavailable"))

	result, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title:    "Plot",
		Evidence: []usecase.FileUpload{{Name: "deed.pdf", ContentType: "application/pdf", Data: []byte("x")}},
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrBlobWriteFailed)
}

func TestListingService_CreateListing_BadgeSuggestionFailureIsWarning(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.listingRepo.EXPECT().NewID().Return("listing-5")
	fx.evidenceRepo.EXPECT().NewID().Return("ev-5")
	fx.blobs.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("u", nil)
	fx.enricher.EXPECT().ExtractText(mock.Anything, mock.Anything, "image/jpeg").Return("Title deed No. 123", nil)
	fx.enricher.EXPECT().SuggestBadge(ctx, "Plot", []string{"Title deed No. 123"}).Return(nil, errors.New("timeout"))
	fx.listingRepo.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.BadgeSuggestion == nil && l.Badge == entity.BadgeNone
	})).Return(nil)
	fx.evidenceRepo.EXPECT().CreateBatch(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	result, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{
		Title:    "Plot",
		Evidence: []usecase.FileUpload{{Name: "deed.jpg", ContentType: "image/jpeg", Data: []byte("x")}},
	})

	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, StepBadgeSuggestion, result.Warnings[0].Step)
}

func TestListingService_CreateListing_AreaFromBoundary(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	boundary := `{"type":"Polygon","coordinates":[[[36.8,-1.3],[36.801,-1.3],[36.801,-1.301],[36.8,-1.301],[36.8,-1.3]]]}`

	fx.expectSellerSnapshot(ctx)
	fx.parcel.EXPECT().AreaAcres(boundary).Return(3.05, nil)
	fx.listingRepo.EXPECT().NewID().Return("listing-6")
	fx.listingRepo.EXPECT().Create(ctx, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.Area == 3.05 && l.Boundary == boundary
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "admin:listings").Return(nil)

	_, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{Title: "Plot", Boundary: boundary})

	require.NoError(t, err)
}

func TestListingService_CreateListing_InvalidBoundary(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.expectSellerSnapshot(ctx)
	fx.parcel.EXPECT().AreaAcres("not-geojson").Return(0, errors.New("invalid geojson"))

	_, err := fx.service.CreateListing(ctx, sellerCaller, &usecase.CreateListingInput{Title: "Plot", Boundary: "not-geojson"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidBoundary)
}

func TestListingService_UpdateListing_OwnerEditResetsToPending(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	rejected := newTestListing("listing-7", sellerCaller.ID, entity.ListingStatusRejected)
	rejected.RejectionReason = ptr("Blurry title deed")
	updated := newTestListing("listing-7", sellerCaller.ID, entity.ListingStatusPending)

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-7").Return(rejected, nil).Once()
	fx.listingRepo.EXPECT().Update(ctx, "listing-7", mock.MatchedBy(func(p repository.ListingPatch) bool {
		return p.ResetToPending && p.Title != nil && *p.Title == "New title" && p.UpdatedAt.Equal(testNow)
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "home", "admin:listings", "listing:listing-7").Return(nil)
	fx.listingRepo.EXPECT().FindByID(ctx, "listing-7").Return(updated, nil).Once()

	listing, err := fx.service.UpdateListing(ctx, sellerCaller, "listing-7", &usecase.UpdateListingInput{Title: ptr(" New title ")})

	require.NoError(t, err)
	assert.Equal(t, entity.ListingStatusPending, listing.Status)
	assert.Nil(t, listing.RejectionReason)
}

func TestListingService_UpdateListing_OwnerCannotEditApproved(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-8").
		Return(newTestListing("listing-8", sellerCaller.ID, entity.ListingStatusApproved), nil)

	_, err := fx.service.UpdateListing(ctx, sellerCaller, "listing-8", &usecase.UpdateListingInput{Title: ptr("x")})

	assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
}

func TestListingService_UpdateListing_AdminKeepsStatus(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()
	approved := newTestListing("listing-9", sellerCaller.ID, entity.ListingStatusApproved)

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-9").Return(approved, nil)
	fx.listingRepo.EXPECT().Update(ctx, "listing-9", mock.MatchedBy(func(p repository.ListingPatch) bool {
		return !p.ResetToPending && p.Price != nil && *p.Price == 900_000
	})).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx, "home", "admin:listings", "listing:listing-9").Return(nil)

	_, err := fx.service.UpdateListing(ctx, adminCaller, "listing-9", &usecase.UpdateListingInput{Price: ptr(900_000.0)})

	require.NoError(t, err)
}

func TestListingService_GetListing_Visibility(t *testing.T) {
	tests := []struct {
		name    string
		caller  *entity.Caller
		status  entity.ListingStatus
		wantErr error
		views   bool
	}{
		{name: "anonymous sees approved", caller: nil, status: entity.ListingStatusApproved, views: true},
		{name: "anonymous cannot see pending", caller: nil, status: entity.ListingStatusPending, wantErr: domainerrors.ErrListingNotAvailable},
		{name: "buyer cannot see rejected", caller: buyerCaller, status: entity.ListingStatusRejected, wantErr: domainerrors.ErrListingNotAvailable},
		{name: "owner sees pending", caller: sellerCaller, status: entity.ListingStatusPending},
		{name: "admin sees pending", caller: adminCaller, status: entity.ListingStatusPending, views: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestListingService(t)
			ctx := context.Background()
			listing := newTestListing("listing-10", sellerCaller.ID, tt.status)

			fx.cache.EXPECT().Get(ctx, "listing:listing-10").Return(nil, service.ErrCacheMiss)
			fx.listingRepo.EXPECT().FindByID(ctx, "listing-10").Return(listing, nil)
			if tt.status == entity.ListingStatusApproved {
				fx.cache.EXPECT().Set(ctx, "listing:listing-10", mock.Anything, time.Minute).Return(nil)
			}
			if tt.views {
				fx.listingRepo.EXPECT().IncrementViews(ctx, "listing-10").Return(nil)
			}

			got, err := fx.service.GetListing(ctx, tt.caller, "listing-10")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, "listing-10", got.ID)
		})
	}
}

func TestListingService_GetListing_ServedFromCache(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	cached := []byte(`{"id":"listing-11","ownerId":"seller-1","title":"Cached","status":"approved","badge":"Gold"}`)
	fx.cache.EXPECT().Get(ctx, "listing:listing-11").Return(cached, nil)
	fx.listingRepo.EXPECT().IncrementViews(ctx, "listing-11").Return(errors.New("contention"))

	got, err := fx.service.GetListing(ctx, buyerCaller, "listing-11")

	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Title)
	assert.Equal(t, entity.BadgeGold, got.Badge)
}

func TestListingService_GetListing_NotFound(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "listing:missing").Return(nil, errors.New("redis down"))
	fx.listingRepo.EXPECT().FindByID(ctx, "missing").Return(nil, repository.ErrListingNotFound)

	_, err := fx.service.GetListing(ctx, nil, "missing")

	assert.ErrorIs(t, err, domainerrors.ErrListingNotFound)
}

func TestListingService_ListingQR(t *testing.T) {
	fx := createTestListingService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().FindByID(ctx, "listing-12").
		Return(newTestListing("listing-12", sellerCaller.ID, entity.ListingStatusApproved), nil)
	fx.qrCode.EXPECT().GenerateListingQR("https://land.example.com/listings/listing-12").Return([]byte("png"), nil)

	png, err := fx.service.ListingQR(ctx, nil, "listing-12")

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestListingService_GenerateDescription(t *testing.T) {
	t.Run("buyer denied", func(t *testing.T) {
		fx := createTestListingService(t)

		_, err := fx.service.GenerateDescription(context.Background(), buyerCaller, service.DescriptionFacts{Title: "Plot"})

		assert.ErrorIs(t, err, domainerrors.ErrAuthorizationRequired)
	})

	t.Run("ai failure is unavailable", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		facts := service.DescriptionFacts{Title: "Plot", County: "Nakuru"}

		fx.enricher.EXPECT().GenerateDescription(ctx, facts).Return("", errors.New("503"))

		_, err := fx.service.GenerateDescription(ctx, sellerCaller, facts)

		assert.ErrorIs(t, err, domainerrors.ErrAIUnavailable)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestListingService(t)
		ctx := context.Background()
		facts := service.DescriptionFacts{Title: "Plot"}

		fx.enricher.EXPECT().GenerateDescription(ctx, facts).Return("A serene plot.", nil)

		got, err := fx.service.GenerateDescription(ctx, sellerCaller, facts)

		require.NoError(t, err)
		assert.Equal(t, "A serene plot.", got)
	})
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "plot.jpg", safeName("../../plot.jpg"))
	assert.Equal(t, "deed.pdf", safeName(`C:\Users\me\deed.pdf`))
	assert.Equal(t, "file", safeName(""))
}
