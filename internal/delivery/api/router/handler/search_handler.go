package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
}

// SearchHandler serves the paginated listing feeds. Read failures surface as empty pages.
type SearchHandler struct {
	searchUC usecase.SearchUsecase
}

// NewSearchHandler is the constructor for SearchHandler.
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{searchUC: params.SearchUC}
}

// Search returns a page of listings matching the query string filters.
func (h *SearchHandler) Search(c echo.Context) error {
	filter := FilterFromQuery(c.QueryParams())

	return response.Success(c, http.StatusOK, h.searchUC.Search(c.Request().Context(), deliverycontext.GetCaller(c), filter))
}

// AdminListings is Search with every status visible unless narrowed.
func (h *SearchHandler) AdminListings(c echo.Context) error {
	filter := FilterFromQuery(c.QueryParams())
	if filter.Status == "" {
		filter.Status = "all"
	}

	return response.Success(c, http.StatusOK, h.searchUC.Search(c.Request().Context(), deliverycontext.GetCaller(c), filter))
}

// ListMine returns the caller's own listings.
func (h *SearchHandler) ListMine(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.searchUC.ListMine(c.Request().Context(), deliverycontext.GetCaller(c)))
}

// FilterFromQuery reads a SearchFilter from query parameters. Malformed
// numbers are dropped so a bad link still yields a page.
func FilterFromQuery(q url.Values) entity.SearchFilter {
	filter := entity.SearchFilter{
		Query:      q.Get("query"),
		County:     q.Get("county"),
		LandType:   q.Get("landType"),
		Amenities:  listValues(q["amenities"]),
		SortBy:     q.Get("sortBy"),
		StartAfter: q.Get("startAfter"),
		Status:     q.Get("status"),
	}
	if filter.Query == "" {
		filter.Query = q.Get("q")
	}

	filter.MinPrice, _ = optionalFloat(q.Get("minPrice"))
	filter.MaxPrice, _ = optionalFloat(q.Get("maxPrice"))
	filter.MinArea, _ = optionalFloat(q.Get("minArea"))
	filter.MaxArea, _ = optionalFloat(q.Get("maxArea"))

	for _, b := range listValues(q["badges"]) {
		filter.Badges = append(filter.Badges, entity.Badge(b))
	}

	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}

	return filter
}
