package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"landmarket/internal/domain/entity"
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

type searchServiceFixtures struct {
	service     usecase.SearchUsecase
	listingRepo *mockRepo.MockListingRepository
	cache       *mockSvc.MockViewCache
}

// createTestSearchService returns a service whose view cache always misses.
func createTestSearchService(t *testing.T) searchServiceFixtures {
	fx := createTestSearchServiceWithCache(t)
	fx.cache.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, service.ErrCacheMiss).Maybe()
	fx.cache.EXPECT().Set(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	return fx
}

func createTestSearchServiceWithCache(t *testing.T) searchServiceFixtures {
	listingRepo := mockRepo.NewMockListingRepository(t)
	cache := mockSvc.NewMockViewCache(t)

	return searchServiceFixtures{
		service: NewSearchService(SearchServiceParams{
			ListingRepo: listingRepo,
			Cache:       cache,
			Config:      newTestConfig(),
			Logger:      newDiscardLogger(),
		}),
		listingRepo: listingRepo,
		cache:       cache,
	}
}

// fakeQuery evaluates a ListingQuery against an in-memory slice ordered by createdAt desc.
func fakeQuery(all []*entity.Listing) func(context.Context, repository.ListingQuery) ([]*entity.Listing, error) {
	return func(_ context.Context, q repository.ListingQuery) ([]*entity.Listing, error) {
		start := 0
		if q.StartAfter != "" {
			idx := slices.IndexFunc(all, func(l *entity.Listing) bool { return l.ID == q.StartAfter })
			if idx < 0 {
				return nil, repository.ErrCursorNotFound
			}
			start = idx + 1
		}

		var out []*entity.Listing
		for _, l := range all[start:] {
			if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, l.Status) {
				continue
			}
			if q.County != "" && l.County != q.County {
				continue
			}
			if q.LandType != "" && l.LandType != q.LandType {
				continue
			}
			if len(q.Badges) > 0 && !slices.Contains(q.Badges, l.Badge) {
				continue
			}
			if q.OwnerID != "" && l.OwnerID != q.OwnerID {
				continue
			}
			out = append(out, l)
			if len(out) == q.Limit {
				break
			}
		}

		return out, nil
	}
}

func seedListings(n int) []*entity.Listing {
	counties := []string{"Kajiado", "Kiambu", "Nakuru"}
	badges := []entity.Badge{entity.BadgeGold, entity.BadgeSilver, entity.BadgeBronze, entity.BadgeNone}
	statuses := []entity.ListingStatus{entity.ListingStatusApproved, entity.ListingStatusApproved, entity.ListingStatusPending, entity.ListingStatusRejected}

	out := make([]*entity.Listing, 0, n)
	for i := range n {
		l := newTestListing(fmt.Sprintf("l-%03d", i), fmt.Sprintf("seller-%d", i%4), statuses[i%len(statuses)])
		l.County = counties[i%len(counties)]
		l.Badge = badges[i%len(badges)]
		l.Price = float64(500_000 + (i*7919)%5_000_000)
		l.Area = float64(i%10) / 2
		l.Views = int64((i * 31) % 97)
		l.CreatedAt = testNow.Add(-time.Duration(i) * time.Hour)
		if i%5 == 0 {
			l.Amenities = []string{"Water", "Electricity"}
		}
		out = append(out, l)
	}

	return out
}

func TestSearchService_Search_NonAdminOnlySeesApproved(t *testing.T) {
	for _, caller := range []*entity.Caller{nil, buyerCaller, sellerCaller} {
		fx := createTestSearchService(t)
		ctx := context.Background()

		fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool {
			return slices.Equal(q.Statuses, []entity.ListingStatus{entity.ListingStatusApproved})
		})).RunAndReturn(fakeQuery(seedListings(40)))

		page := fx.service.Search(ctx, caller, entity.SearchFilter{Status: "all", Limit: 50})

		require.NotEmpty(t, page.Listings)
		for _, l := range page.Listings {
			assert.Equal(t, entity.ListingStatusApproved, l.Status)
		}
	}
}

func TestSearchService_Search_AdminStatusFilter(t *testing.T) {
	tests := []struct {
		status string
		want   []entity.ListingStatus
	}{
		{status: "all", want: nil},
		{status: "pending", want: []entity.ListingStatus{entity.ListingStatusPending}},
		{status: "", want: []entity.ListingStatus{entity.ListingStatusApproved}},
		{status: "bogus", want: []entity.ListingStatus{entity.ListingStatusApproved}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			fx := createTestSearchService(t)
			ctx := context.Background()

			fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool {
				return slices.Equal(q.Statuses, tt.want)
			})).Return([]*entity.Listing{}, nil)

			fx.service.Search(ctx, adminCaller, entity.SearchFilter{Status: tt.status})
		})
	}
}

func TestSearchService_Search_EveryResultSatisfiesFilter(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	filter := entity.SearchFilter{
		Query:     "KITENGELA",
		County:    "Kajiado",
		MinPrice:  ptr(1_000_000.0),
		MaxPrice:  ptr(4_000_000.0),
		MinArea:   ptr(0.5),
		Badges:    []entity.Badge{entity.BadgeGold, entity.BadgeSilver, "Platinum"},
		Amenities: []string{"water"},
		Limit:     50,
	}

	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool {
		return q.County == "Kajiado" && q.Limit == 50 &&
			slices.Equal(q.Badges, []entity.Badge{entity.BadgeGold, entity.BadgeSilver})
	})).RunAndReturn(fakeQuery(seedListings(200)))

	page := fx.service.Search(ctx, buyerCaller, filter)

	require.NotEmpty(t, page.Listings)
	for _, l := range page.Listings {
		assert.Equal(t, entity.ListingStatusApproved, l.Status)
		assert.Equal(t, "Kajiado", l.County)
		assert.GreaterOrEqual(t, l.Price, 1_000_000.0)
		assert.LessOrEqual(t, l.Price, 4_000_000.0)
		assert.GreaterOrEqual(t, l.Area, 0.5)
		assert.Contains(t, []entity.Badge{entity.BadgeGold, entity.BadgeSilver}, l.Badge)
		assert.True(t, strings.Contains(strings.ToLower(l.Location), "kitengela"))
		assert.Contains(t, l.Amenities, "Water")
	}
}

func TestSearchService_Search_PagesNeverOverlap(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().Query(ctx, mock.Anything).RunAndReturn(fakeQuery(seedListings(95)))

	seen := map[string]bool{}
	filter := entity.SearchFilter{Limit: 7, MinPrice: ptr(1_000_000.0)}

	for pages := 0; pages < 100; pages++ {
		page := fx.service.Search(ctx, buyerCaller, filter)
		for _, l := range page.Listings {
			require.False(t, seen[l.ID], "listing %s returned twice", l.ID)
			seen[l.ID] = true
		}
		if page.LastVisibleID == nil {
			break
		}
		filter.StartAfter = *page.LastVisibleID
	}

	approvedMatching := 0
	for _, l := range seedListings(95) {
		if l.Status == entity.ListingStatusApproved && l.Price >= 1_000_000 {
			approvedMatching++
		}
	}
	assert.Len(t, seen, approvedMatching)
}

func TestSearchService_Search_LastVisibleIDOnlyOnFullPage(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	full := seedListings(3)
	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool { return q.Limit == 3 })).
		Return(full, nil)
	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool { return q.Limit == 4 })).
		Return(full, nil)

	page := fx.service.Search(ctx, buyerCaller, entity.SearchFilter{Limit: 3, Query: "no such place"})
	require.NotNil(t, page.LastVisibleID)
	assert.Equal(t, "l-002", *page.LastVisibleID)
	assert.Empty(t, page.Listings)

	page = fx.service.Search(ctx, buyerCaller, entity.SearchFilter{Limit: 4})
	assert.Nil(t, page.LastVisibleID)
}

func TestSearchService_Search_ReadErrorYieldsEmptyPage(t *testing.T) {
	for _, readErr := range []error{repository.ErrStoreUnavailable, repository.ErrCursorNotFound, errors.New("boom")} {
		fx := createTestSearchService(t)
		ctx := context.Background()

		fx.listingRepo.EXPECT().Query(ctx, mock.Anything).Return(nil, readErr)

		page := fx.service.Search(ctx, buyerCaller, entity.SearchFilter{StartAfter: "gone"})

		require.NotNil(t, page)
		assert.NotNil(t, page.Listings)
		assert.Empty(t, page.Listings)
		assert.Nil(t, page.LastVisibleID)
	}
}

func TestSearchService_Search_LimitClamped(t *testing.T) {
	fx := createTestSearchService(t)
	ctx := context.Background()

	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool { return q.Limit == 12 })).
		Return(nil, nil).Once()
	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool { return q.Limit == 50 })).
		Return(nil, nil).Once()

	fx.service.Search(ctx, nil, entity.SearchFilter{})
	fx.service.Search(ctx, nil, entity.SearchFilter{Limit: 5000})
}

func TestSortListings(t *testing.T) {
	mk := func(id string, price float64, badge entity.Badge, views int64) *entity.Listing {
		return &entity.Listing{ID: id, Price: price, Badge: badge, Views: views}
	}
	ids := func(ls []*entity.Listing) []string {
		out := make([]string, 0, len(ls))
		for _, l := range ls {
			out = append(out, l.ID)
		}

		return out
	}

	base := func() []*entity.Listing {
		return []*entity.Listing{
			mk("a", 300, entity.BadgeNone, 5),
			mk("b", 100, entity.BadgeGold, 9),
			mk("c", 200, entity.BadgeBronze, 1),
			mk("d", 100, entity.BadgeSilver, 9),
		}
	}

	tests := []struct {
		sortBy string
		want   []string
	}{
		{sortBy: "price:asc", want: []string{"b", "d", "c", "a"}},
		{sortBy: "price:desc", want: []string{"a", "c", "b", "d"}},
		{sortBy: "badge:desc", want: []string{"b", "d", "c", "a"}},
		{sortBy: "views", want: []string{"b", "d", "a", "c"}},
		{sortBy: "unknown:asc", want: []string{"a", "b", "c", "d"}},
		{sortBy: "", want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.sortBy, func(t *testing.T) {
			ls := base()
			sortListings(ls, tt.sortBy)
			assert.Equal(t, tt.want, ids(ls))
		})
	}
}

func TestSearchService_ListMine(t *testing.T) {
	t.Run("anonymous gets empty page", func(t *testing.T) {
		fx := createTestSearchService(t)

		page := fx.service.ListMine(context.Background(), nil)

		assert.Empty(t, page.Listings)
	})

	t.Run("all statuses for owner", func(t *testing.T) {
		fx := createTestSearchService(t)
		ctx := context.Background()

		fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool {
			return q.OwnerID == sellerCaller.ID && len(q.Statuses) == 0
		})).Return([]*entity.Listing{
			newTestListing("l-1", sellerCaller.ID, entity.ListingStatusPending),
			newTestListing("l-2", sellerCaller.ID, entity.ListingStatusRejected),
		}, nil)

		page := fx.service.ListMine(ctx, sellerCaller)

		assert.Len(t, page.Listings, 2)
	})

	t.Run("read error degrades to empty", func(t *testing.T) {
		fx := createTestSearchService(t)
		ctx := context.Background()

		fx.listingRepo.EXPECT().Query(ctx, mock.Anything).Return(nil, repository.ErrStoreUnavailable)

		page := fx.service.ListMine(ctx, sellerCaller)

		assert.NotNil(t, page.Listings)
		assert.Empty(t, page.Listings)
	})
}

func TestSearchService_Search_HomeFeedCacheMissStoresPage(t *testing.T) {
	fx := createTestSearchServiceWithCache(t)
	ctx := context.Background()

	var stored []byte
	fx.cache.EXPECT().Get(ctx, "home").Return(nil, service.ErrCacheMiss)
	fx.listingRepo.EXPECT().Query(ctx, mock.Anything).RunAndReturn(fakeQuery(seedListings(40)))
	fx.cache.EXPECT().Set(ctx, "home", mock.Anything, time.Minute).
		Run(func(_ context.Context, _ string, value []byte, _ time.Duration) { stored = value }).
		Return(nil)

	page := fx.service.Search(ctx, nil, entity.SearchFilter{})

	require.NotEmpty(t, page.Listings)
	var cached usecase.ListingPage
	require.NoError(t, json.Unmarshal(stored, &cached))
	assert.Len(t, cached.Listings, len(page.Listings))
	assert.Equal(t, page.LastVisibleID, cached.LastVisibleID)
}

func TestSearchService_Search_HomeFeedCacheHitSkipsStore(t *testing.T) {
	fx := createTestSearchServiceWithCache(t)
	ctx := context.Background()

	last := "l-011"
	encoded, err := json.Marshal(usecase.ListingPage{
		Listings:      []*entity.Listing{newTestListing("l-000", "seller-0", entity.ListingStatusApproved)},
		LastVisibleID: &last,
	})
	require.NoError(t, err)
	fx.cache.EXPECT().Get(ctx, "home").Return(encoded, nil)

	page := fx.service.Search(ctx, buyerCaller, entity.SearchFilter{Status: "all"})

	require.Len(t, page.Listings, 1)
	assert.Equal(t, "l-000", page.Listings[0].ID)
	require.NotNil(t, page.LastVisibleID)
	assert.Equal(t, "l-011", *page.LastVisibleID)
	fx.listingRepo.AssertNotCalled(t, "Query", mock.Anything, mock.Anything)
}

func TestSearchService_Search_AdminAllViewCached(t *testing.T) {
	fx := createTestSearchServiceWithCache(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "admin:listings").Return(nil, service.ErrCacheMiss)
	fx.listingRepo.EXPECT().Query(ctx, mock.MatchedBy(func(q repository.ListingQuery) bool {
		return q.Statuses == nil
	})).Return([]*entity.Listing{}, nil)
	fx.cache.EXPECT().Set(ctx, "admin:listings", mock.Anything, mock.Anything).Return(nil)

	page := fx.service.Search(ctx, adminCaller, entity.SearchFilter{Status: "all"})

	assert.Empty(t, page.Listings)
}

func TestSearchService_Search_NarrowedViewsBypassCache(t *testing.T) {
	minPrice := 1_000_000.0
	filters := map[string]entity.SearchFilter{
		"query":   {Query: "kitengela"},
		"county":  {County: "Kajiado"},
		"cursor":  {StartAfter: "l-003"},
		"price":   {MinPrice: &minPrice},
		"sort":    {SortBy: "price:asc"},
		"limit":   {Limit: 30},
		"amenity": {Amenities: []string{"Water"}},
		"badge":   {Badges: []entity.Badge{entity.BadgeGold}},
		"status":  {Status: "pending"},
	}

	for name, filter := range filters {
		t.Run(name, func(t *testing.T) {
			fx := createTestSearchServiceWithCache(t)
			ctx := context.Background()

			caller := buyerCaller
			if filter.Status != "" {
				caller = adminCaller
			}
			fx.listingRepo.EXPECT().Query(ctx, mock.Anything).RunAndReturn(fakeQuery(seedListings(40)))

			fx.service.Search(ctx, caller, filter)
		})
	}
}

func TestSearchService_Search_CacheFailureFallsBackToStore(t *testing.T) {
	fx := createTestSearchServiceWithCache(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "home").Return(nil, errors.New("redis down"))
	fx.listingRepo.EXPECT().Query(ctx, mock.Anything).RunAndReturn(fakeQuery(seedListings(20)))
	fx.cache.EXPECT().Set(ctx, "home", mock.Anything, mock.Anything).Return(errors.New("redis down"))

	page := fx.service.Search(ctx, nil, entity.SearchFilter{})

	assert.NotEmpty(t, page.Listings)
}

func TestSearchService_Search_DegradedPageIsNotCached(t *testing.T) {
	fx := createTestSearchServiceWithCache(t)
	ctx := context.Background()

	fx.cache.EXPECT().Get(ctx, "home").Return(nil, service.ErrCacheMiss)
	fx.listingRepo.EXPECT().Query(ctx, mock.Anything).Return(nil, repository.ErrStoreUnavailable)

	page := fx.service.Search(ctx, nil, entity.SearchFilter{})

	assert.Empty(t, page.Listings)
	fx.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
