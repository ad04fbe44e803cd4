package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"time"

	"landmarket/config"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/domain/service"
	"landmarket/internal/errors"
	"landmarket/internal/usecase"

	"go.uber.org/fx"
)

const (
	defaultSearchLimit = 12
	maxSearchLimit     = 50
	dashboardLimit     = 200

	statusFilterAll = "all"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	listingRepo  repository.ListingRepository
	cache        service.ViewCache
	cacheTTL     time.Duration
	defaultLimit int
	maxLimit     int
	logger       *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ListingRepo repository.ListingRepository
	Cache       service.ViewCache
	Config      *config.Config
	Logger      *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	srv := &searchService{
		listingRepo:  params.ListingRepo,
		cache:        params.Cache,
		cacheTTL:     defaultViewCacheTTL,
		defaultLimit: defaultSearchLimit,
		maxLimit:     maxSearchLimit,
		logger:       params.Logger,
	}

	if cfg := params.Config; cfg != nil && cfg.Search != nil {
		if cfg.Search.DefaultLimit > 0 {
			srv.defaultLimit = cfg.Search.DefaultLimit
		}
		if cfg.Search.MaxLimit > 0 {
			srv.maxLimit = cfg.Search.MaxLimit
		}
	}
	if cfg := params.Config; cfg != nil && cfg.Cache != nil && cfg.Cache.TTL > 0 {
		srv.cacheTTL = cfg.Cache.TTL
	}

	return srv
}

func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search returns one page of listings matching the filter. Read failures
// yield an empty page rather than an error. The unfiltered first page of the
// public feed and of the admin "all" view are served through the view cache.
func (srv *searchService) Search(ctx context.Context, caller *entity.Caller, filter entity.SearchFilter) *usecase.ListingPage {
	query := repository.ListingQuery{
		Statuses:   srv.statusesFor(caller, filter.Status),
		County:     strings.TrimSpace(filter.County),
		LandType:   strings.TrimSpace(filter.LandType),
		Badges:     validBadges(filter.Badges),
		StartAfter: strings.TrimSpace(filter.StartAfter),
		Limit:      srv.clampLimit(filter.Limit),
	}

	key := srv.viewKey(filter, query)
	if key != "" {
		if page, ok := srv.cachedPage(ctx, key); ok {
			return page
		}
	}

	listings, err := srv.listingRepo.Query(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Listing search failed, returning empty page",
			slog.String("start_after", query.StartAfter),
			slog.Any("error", err),
		)

		return usecase.EmptyPage()
	}

	page := buildPage(listings, query.Limit, filter)
	if key != "" {
		srv.storePage(ctx, key, page)
	}

	return page
}

// viewKey names the cached view for a default first page, or "" when the
// request narrows the feed in any way.
func (srv *searchService) viewKey(filter entity.SearchFilter, query repository.ListingQuery) string {
	if strings.TrimSpace(filter.Query) != "" || query.County != "" || query.LandType != "" ||
		len(query.Badges) > 0 || len(filter.Amenities) > 0 || query.StartAfter != "" ||
		filter.MinPrice != nil || filter.MaxPrice != nil || filter.MinArea != nil || filter.MaxArea != nil ||
		strings.TrimSpace(filter.SortBy) != "" || query.Limit != srv.defaultLimit {
		return ""
	}

	switch {
	case query.Statuses == nil:
		return constants.CacheKeyAdminListings
	case len(query.Statuses) == 1 && query.Statuses[0] == entity.ListingStatusApproved:
		return constants.CacheKeyHome
	default:
		return ""
	}
}

func (srv *searchService) cachedPage(ctx context.Context, key string) (*usecase.ListingPage, bool) {
	raw, err := srv.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, service.ErrCacheMiss) {
			srv.log(ctx).Warn("View cache read failed", slog.String("key", key), slog.Any("error", err))
		}

		return nil, false
	}

	var page usecase.ListingPage
	if err := json.Unmarshal(raw, &page); err != nil {
		srv.log(ctx).Warn("Discarding undecodable cached page", slog.String("key", key), slog.Any("error", err))

		return nil, false
	}
	page.Listings = nonNil(page.Listings)

	return &page, true
}

func (srv *searchService) storePage(ctx context.Context, key string, page *usecase.ListingPage) {
	encoded, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := srv.cache.Set(ctx, key, encoded, srv.cacheTTL); err != nil {
		srv.log(ctx).Warn("View cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// ListMine returns every listing owned by the caller, in any status.
func (srv *searchService) ListMine(ctx context.Context, caller *entity.Caller) *usecase.ListingPage {
	if caller == nil {
		return usecase.EmptyPage()
	}

	listings, err := srv.listingRepo.Query(ctx, repository.ListingQuery{
		OwnerID: caller.ID,
		Limit:   dashboardLimit,
	})
	if err != nil {
		srv.log(ctx).Warn("Seller dashboard read failed, returning empty page",
			slog.String("owner_id", caller.ID),
			slog.Any("error", err),
		)

		return usecase.EmptyPage()
	}

	return &usecase.ListingPage{Listings: nonNil(listings)}
}

// statusesFor returns the status predicate. Non-admins only ever see approved listings.
func (srv *searchService) statusesFor(caller *entity.Caller, requested string) []entity.ListingStatus {
	if !caller.IsAdmin() {
		return []entity.ListingStatus{entity.ListingStatusApproved}
	}

	requested = strings.ToLower(strings.TrimSpace(requested))
	if requested == statusFilterAll {
		return nil
	}
	if status := entity.ListingStatus(requested); status.IsValid() {
		return []entity.ListingStatus{status}
	}

	return []entity.ListingStatus{entity.ListingStatusApproved}
}

func (srv *searchService) clampLimit(limit int) int {
	if limit <= 0 {
		return srv.defaultLimit
	}

	return min(limit, srv.maxLimit)
}

// buildPage applies the in-memory predicates and ordering. The cursor is the
// last fetched document, so pages never overlap even when filtering drops rows.
func buildPage(fetched []*entity.Listing, limit int, filter entity.SearchFilter) *usecase.ListingPage {
	page := &usecase.ListingPage{Listings: make([]*entity.Listing, 0, len(fetched))}

	if len(fetched) == limit && limit > 0 {
		last := fetched[len(fetched)-1].ID
		page.LastVisibleID = &last
	}

	for _, listing := range fetched {
		if matchesFilter(listing, filter) {
			page.Listings = append(page.Listings, listing)
		}
	}

	sortListings(page.Listings, filter.SortBy)

	return page
}

func matchesFilter(listing *entity.Listing, filter entity.SearchFilter) bool {
	if filter.MinPrice != nil && listing.Price < *filter.MinPrice {
		return false
	}
	if filter.MaxPrice != nil && listing.Price > *filter.MaxPrice {
		return false
	}
	if filter.MinArea != nil && listing.Area < *filter.MinArea {
		return false
	}
	if filter.MaxArea != nil && listing.Area > *filter.MaxArea {
		return false
	}

	if q := strings.ToLower(strings.TrimSpace(filter.Query)); q != "" {
		haystack := []string{listing.Title, listing.Location, listing.County, listing.Seller.Name}
		if !slices.ContainsFunc(haystack, func(s string) bool {
			return strings.Contains(strings.ToLower(s), q)
		}) {
			return false
		}
	}

	for _, want := range filter.Amenities {
		want = strings.TrimSpace(want)
		if want == "" {
			continue
		}
		if !slices.ContainsFunc(listing.Amenities, func(have string) bool {
			return strings.EqualFold(have, want)
		}) {
			return false
		}
	}

	return true
}

// sortListings orders listings by "field:direction". Unknown fields keep the
// store order (createdAt desc).
func sortListings(listings []*entity.Listing, sortBy string) {
	field, direction, _ := strings.Cut(strings.TrimSpace(sortBy), ":")
	desc := !strings.EqualFold(direction, "asc")

	var cmp func(a, b *entity.Listing) int
	switch field {
	case "price":
		cmp = func(a, b *entity.Listing) int { return compareFloat(a.Price, b.Price) }
	case "area":
		cmp = func(a, b *entity.Listing) int { return compareFloat(a.Area, b.Area) }
	case "badge":
		cmp = func(a, b *entity.Listing) int { return a.Badge.Rank() - b.Badge.Rank() }
	case "views":
		cmp = func(a, b *entity.Listing) int { return compareFloat(float64(a.Views), float64(b.Views)) }
	case "createdAt":
		cmp = func(a, b *entity.Listing) int { return a.CreatedAt.Compare(b.CreatedAt) }
	default:
		return
	}

	slices.SortStableFunc(listings, func(a, b *entity.Listing) int {
		if desc {
			return cmp(b, a)
		}

		return cmp(a, b)
	})
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func validBadges(badges []entity.Badge) []entity.Badge {
	out := make([]entity.Badge, 0, len(badges))
	for _, b := range badges {
		if b.IsValid() && !slices.Contains(out, b) {
			out = append(out, b)
		}
	}
	if len(out) > constants.MaxInValues {
		out = out[:constants.MaxInValues]
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

func nonNil(listings []*entity.Listing) []*entity.Listing {
	if listings == nil {
		return []*entity.Listing{}
	}

	return listings
}
