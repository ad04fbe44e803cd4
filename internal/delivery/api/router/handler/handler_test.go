package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"landmarket/config"
	apimiddleware "landmarket/internal/delivery/api/middleware"
	"landmarket/internal/delivery/api/response"
	"landmarket/internal/delivery/api/validator"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	mockUC "landmarket/internal/mocks/usecase"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	testAdmin  = &entity.Caller{ID: "admin-1", Role: entity.RoleAdmin}
	testSeller = &entity.Caller{ID: "seller-1", Role: entity.RoleSeller}
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func testConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{SessionCookieName: "__session"}}
	cfg.Env.Env = "production"

	return cfg
}

// serve runs a single handler behind an optional caller injection.
func serve(t *testing.T, caller *entity.Caller, method, path, route string, body io.Reader, contentType string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	e.Add(method, route, h, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if caller != nil {
				deliverycontext.SetCaller(c, caller)
			}

			return next(c)
		}
	})

	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func jsonBody(t *testing.T, v any) io.Reader {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)

	return bytes.NewReader(b)
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) *response.ErrorInfo {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error
}

func TestSessionHandler_CreateSession(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{IdentityUC: identityUC, Config: testConfig(), Logger: discardLogger()})

	identityUC.EXPECT().CreateSession(mock.Anything, "id-token").Return("cookie-value", 5*24*time.Hour, nil).Once()

	rec := serve(t, nil, http.MethodPost, "/api/auth/session", "/api/auth/session",
		jsonBody(t, map[string]string{"idToken": "id-token"}), echo.MIMEApplicationJSON, h.CreateSession)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "__session", cookies[0].Name)
	assert.Equal(t, "cookie-value", cookies[0].Value)
	assert.Equal(t, 432000, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
}

func TestSessionHandler_CreateSession_InvalidToken(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{IdentityUC: identityUC, Config: testConfig(), Logger: discardLogger()})

	identityUC.EXPECT().CreateSession(mock.Anything, "bad").Return("", time.Duration(0), domainerrors.ErrInvalidIDToken).Once()

	rec := serve(t, nil, http.MethodPost, "/api/auth/session", "/api/auth/session",
		jsonBody(t, map[string]string{"idToken": "bad"}), echo.MIMEApplicationJSON, h.CreateSession)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_ID_TOKEN", decodeError(t, rec).Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestSessionHandler_CreateSession_MissingToken(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{IdentityUC: identityUC, Config: testConfig(), Logger: discardLogger()})

	rec := serve(t, nil, http.MethodPost, "/api/auth/session", "/api/auth/session",
		jsonBody(t, map[string]string{}), echo.MIMEApplicationJSON, h.CreateSession)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestSessionHandler_DeleteSession_ClearsCookie(t *testing.T) {
	identityUC := mockUC.NewMockIdentityUsecase(t)
	h := NewSessionHandler(SessionHandlerParams{IdentityUC: identityUC, Config: testConfig(), Logger: discardLogger()})
	session := apimiddleware.NewSessionMiddleware(identityUC, testConfig())

	identityUC.EXPECT().ResolveCaller(mock.Anything, "cookie-value").Return(nil).Once()
	identityUC.EXPECT().RevokeSession(mock.Anything, "cookie-value").Return().Once()

	e := newTestEcho()
	e.DELETE("/api/auth/session", h.DeleteSession, session.Resolve)

	req := httptest.NewRequest(http.MethodDelete, "/api/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: "__session", Value: "cookie-value"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("query", "kitengela")
	q.Set("county", "Kajiado")
	q.Set("minPrice", "1000")
	q.Set("maxPrice", "not-a-number")
	q.Set("minArea", "0.5")
	q.Add("badges", "Gold,Silver")
	q.Add("badges", "Bronze")
	q.Add("amenities", "Water")
	q.Set("sortBy", "price:asc")
	q.Set("limit", "20")
	q.Set("startAfter", "abc")

	filter := FilterFromQuery(q)

	assert.Equal(t, "kitengela", filter.Query)
	assert.Equal(t, "Kajiado", filter.County)
	require.NotNil(t, filter.MinPrice)
	assert.InDelta(t, 1000, *filter.MinPrice, 0.001)
	assert.Nil(t, filter.MaxPrice)
	require.NotNil(t, filter.MinArea)
	assert.Equal(t, []entity.Badge{entity.BadgeGold, entity.BadgeSilver, entity.BadgeBronze}, filter.Badges)
	assert.Equal(t, []string{"Water"}, filter.Amenities)
	assert.Equal(t, "price:asc", filter.SortBy)
	assert.Equal(t, 20, filter.Limit)
	assert.Equal(t, "abc", filter.StartAfter)
}

func TestFilterFromQuery_DropsNonFiniteBounds(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "NaN")
	q.Set("maxPrice", "Inf")
	q.Set("minArea", "-Inf")
	q.Set("maxArea", "2.5")

	filter := FilterFromQuery(q)

	assert.Nil(t, filter.MinPrice)
	assert.Nil(t, filter.MaxPrice)
	assert.Nil(t, filter.MinArea)
	require.NotNil(t, filter.MaxArea)
	assert.InDelta(t, 2.5, *filter.MaxArea, 0.001)
}

func TestSearchHandler_Search_EmptyPageShape(t *testing.T) {
	searchUC := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

	searchUC.EXPECT().Search(mock.Anything, (*entity.Caller)(nil), mock.Anything).Return(usecase.EmptyPage()).Once()

	rec := serve(t, nil, http.MethodGet, "/api/v1/listings?county=Nairobi", "/api/v1/listings", nil, "", h.Search)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"listings":[],"lastVisibleId":null}`, extractData(t, rec))
}

func TestSearchHandler_AdminListings_DefaultsToAllStatuses(t *testing.T) {
	searchUC := mockUC.NewMockSearchUsecase(t)
	h := NewSearchHandler(SearchHandlerParams{SearchUC: searchUC})

	searchUC.EXPECT().Search(mock.Anything, testAdmin, mock.MatchedBy(func(f entity.SearchFilter) bool {
		return f.Status == "all"
	})).Return(usecase.EmptyPage()).Once()

	rec := serve(t, testAdmin, http.MethodGet, "/api/v1/admin/listings", "/api/v1/admin/listings", nil, "", h.AdminListings)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func extractData(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return string(body.Data)
}

func multipartListing(t *testing.T, fields map[string]string, files map[string][]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("content of " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func TestListingHandler_CreateListing(t *testing.T) {
	listingUC := mockUC.NewMockListingUsecase(t)
	h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: discardLogger()})

	body, contentType := multipartListing(t,
		map[string]string{"title": "Plot in Ruiru", "price": "2500000", "area": "0.25", "county": "Kiambu", "amenities": "Water, Electricity"},
		map[string][]string{"image": {"front.jpg"}, "evidence": {"deed.pdf", "survey.png"}},
	)

	listingUC.EXPECT().CreateListing(mock.Anything, testSeller, mock.Anything).
		Return(&usecase.CreateListingResult{ListingID: "listing-1", Warnings: []usecase.Warning{{Step: "badge", Message: "skipped"}}}, nil).Once()

	rec := serve(t, testSeller, http.MethodPost, "/api/v1/listings", "/api/v1/listings", body, contentType, h.CreateListing)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, extractData(t, rec), `"id":"listing-1"`)

	input := listingUC.Calls[0].Arguments.Get(2).(*usecase.CreateListingInput)
	assert.Equal(t, "Plot in Ruiru", input.Title)
	assert.InDelta(t, 2500000, input.Price, 0.001)
	assert.InDelta(t, 0.25, input.Area, 0.0001)
	assert.Equal(t, []string{"Water", "Electricity"}, input.Amenities)
	require.NotNil(t, input.Image)
	assert.Equal(t, "front.jpg", input.Image.Name)
	require.Len(t, input.Evidence, 2)
	assert.Equal(t, "deed.pdf", input.Evidence[0].Name)
	assert.Equal(t, []byte("content of survey.png"), input.Evidence[1].Data)
}

func TestListingHandler_CreateListing_BadPrice(t *testing.T) {
	listingUC := mockUC.NewMockListingUsecase(t)
	h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: discardLogger()})

	body, contentType := multipartListing(t, map[string]string{"title": "Plot", "price": "cheap"}, nil)

	rec := serve(t, testSeller, http.MethodPost, "/api/v1/listings", "/api/v1/listings", body, contentType, h.CreateListing)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestListingHandler_CreateListing_NonFinitePrice(t *testing.T) {
	for _, price := range []string{"NaN", "Inf", "-Inf", "+Infinity"} {
		t.Run(price, func(t *testing.T) {
			listingUC := mockUC.NewMockListingUsecase(t)
			h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: discardLogger()})

			body, contentType := multipartListing(t, map[string]string{"title": "Plot", "price": price}, nil)

			rec := serve(t, testSeller, http.MethodPost, "/api/v1/listings", "/api/v1/listings", body, contentType, h.CreateListing)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			listingUC.AssertNotCalled(t, "CreateListing", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestListingHandler_GetListing_NotAvailable(t *testing.T) {
	listingUC := mockUC.NewMockListingUsecase(t)
	h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: discardLogger()})

	listingUC.EXPECT().GetListing(mock.Anything, (*entity.Caller)(nil), "l-1").Return(nil, domainerrors.ErrListingNotAvailable).Once()

	rec := serve(t, nil, http.MethodGet, "/api/v1/listings/l-1", "/api/v1/listings/:id", nil, "", h.GetListing)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LISTING_NOT_AVAILABLE", decodeError(t, rec).Code)
}

func TestListingHandler_ListingQR(t *testing.T) {
	listingUC := mockUC.NewMockListingUsecase(t)
	h := NewListingHandler(ListingHandlerParams{ListingUC: listingUC, ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: discardLogger()})

	png := []byte{0x89, 'P', 'N', 'G'}
	listingUC.EXPECT().ListingQR(mock.Anything, (*entity.Caller)(nil), "l-1").Return(png, nil).Once()

	rec := serve(t, nil, http.MethodGet, "/api/v1/listings/l-1/qr", "/api/v1/listings/:id/qr", nil, "", h.ListingQR)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestReviewHandler_ReviewListing_ValidatesStatus(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger()})

	rec := serve(t, testAdmin, http.MethodPatch, "/api/v1/admin/listings/l-1/review", "/api/v1/admin/listings/:id/review",
		jsonBody(t, map[string]string{"status": "archived"}), echo.MIMEApplicationJSON, h.ReviewListing)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	info := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", info.Code)
	assert.Contains(t, info.Details, "status")
}

func TestReviewHandler_ReviewListing_RejectionReasonRequired(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger()})

	reviewUC.EXPECT().ReviewListing(mock.Anything, testAdmin, "l-1", &usecase.ReviewInput{Status: entity.ListingStatusRejected}).
		Return(domainerrors.ErrRejectionReasonRequired).Once()

	rec := serve(t, testAdmin, http.MethodPatch, "/api/v1/admin/listings/l-1/review", "/api/v1/admin/listings/:id/review",
		jsonBody(t, map[string]string{"status": "rejected"}), echo.MIMEApplicationJSON, h.ReviewListing)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "REJECTION_REASON_REQUIRED", decodeError(t, rec).Code)
}

func TestReviewHandler_BulkUpdateStatus(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger()})

	reviewUC.EXPECT().BulkUpdateStatus(mock.Anything, testAdmin, []string{"a", "b"}, entity.ListingStatusApproved).Return(nil).Once()

	rec := serve(t, testAdmin, http.MethodPost, "/api/v1/admin/listings/bulk-status", "/api/v1/admin/listings/bulk-status",
		jsonBody(t, map[string]any{"listingIds": []string{"a", "b"}, "status": "approved"}), echo.MIMEApplicationJSON, h.BulkUpdateStatus)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, extractData(t, rec))
}

func TestReviewHandler_BulkUpdateStatus_EmptyIDs(t *testing.T) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	h := NewReviewHandler(ReviewHandlerParams{ReviewUC: reviewUC, Logger: discardLogger()})

	rec := serve(t, testAdmin, http.MethodPost, "/api/v1/admin/listings/bulk-status", "/api/v1/admin/listings/bulk-status",
		jsonBody(t, map[string]any{"listingIds": []string{}, "status": "approved"}), echo.MIMEApplicationJSON, h.BulkUpdateStatus)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModerationHandler_SubmitContact_InvalidEmail(t *testing.T) {
	moderationUC := mockUC.NewMockModerationUsecase(t)
	h := NewModerationHandler(ModerationHandlerParams{ModerationUC: moderationUC, Logger: discardLogger()})

	rec := serve(t, nil, http.MethodPost, "/api/contact", "/api/contact",
		jsonBody(t, map[string]string{"name": "Wanjiku", "email": "not-an-email", "message": "Hello"}), echo.MIMEApplicationJSON, h.SubmitContact)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	moderationUC.AssertNotCalled(t, "SubmitContact", mock.Anything, mock.Anything)
}

func TestModerationHandler_SubmitContact(t *testing.T) {
	moderationUC := mockUC.NewMockModerationUsecase(t)
	h := NewModerationHandler(ModerationHandlerParams{ModerationUC: moderationUC, Logger: discardLogger()})

	moderationUC.EXPECT().SubmitContact(mock.Anything, &usecase.ContactInput{Name: "Wanjiku", Email: "w@example.co.ke", Message: "Hello"}).
		Return(&entity.ContactMessage{ID: "m-1", Email: "w@example.co.ke", Name: "Wanjiku", Status: entity.TicketStatusNew}, nil).Once()

	rec := serve(t, nil, http.MethodPost, "/api/contact", "/api/contact",
		jsonBody(t, map[string]string{"name": "Wanjiku", "email": "w@example.co.ke", "message": "Hello"}), echo.MIMEApplicationJSON, h.SubmitContact)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, extractData(t, rec))
	assert.NotContains(t, rec.Body.String(), "w@example.co.ke")
}

func TestProfileHandler_CreateProfile_RequiresSessionToken(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: discardLogger()})

	rec := serve(t, nil, http.MethodPost, "/api/auth/profile", "/api/auth/profile",
		jsonBody(t, map[string]string{"displayName": "Otieno", "role": "SELLER"}), echo.MIMEApplicationJSON, h.CreateProfile)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProfileHandler_CreateProfile_RejectsAdminRole(t *testing.T) {
	profileUC := mockUC.NewMockProfileUsecase(t)
	h := NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/auth/profile", h.CreateProfile, func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetSessionToken(c, "token")

			return next(c)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/profile", strings.NewReader(`{"displayName":"Otieno","role":"ADMIN"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationHandler_StartConversation(t *testing.T) {
	conversationUC := mockUC.NewMockConversationUsecase(t)
	h := NewConversationHandler(ConversationHandlerParams{ConversationUC: conversationUC, SavedSearchUC: mockUC.NewMockSavedSearchUsecase(t)})

	buyer := &entity.Caller{ID: "buyer-1", Role: entity.RoleBuyer}
	conversationUC.EXPECT().StartConversation(mock.Anything, buyer, "l-1", "Is the title clean?").
		Return(&entity.Conversation{ID: "c-1", BuyerID: "buyer-1", SellerID: "seller-1", ListingID: "l-1"}, nil).Once()

	rec := serve(t, buyer, http.MethodPost, "/api/v1/listings/l-1/conversations", "/api/v1/listings/:id/conversations",
		jsonBody(t, map[string]string{"text": "Is the title clean?"}), echo.MIMEApplicationJSON, h.StartConversation)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, extractData(t, rec), `"id":"c-1"`)
}

func TestConversationHandler_DeleteSavedSearch_NotFound(t *testing.T) {
	savedSearchUC := mockUC.NewMockSavedSearchUsecase(t)
	h := NewConversationHandler(ConversationHandlerParams{ConversationUC: mockUC.NewMockConversationUsecase(t), SavedSearchUC: savedSearchUC})

	buyer := &entity.Caller{ID: "buyer-1", Role: entity.RoleBuyer}
	savedSearchUC.EXPECT().DeleteSavedSearch(mock.Anything, buyer, "s-1").Return(domainerrors.ErrSavedSearchNotFound).Once()

	rec := serve(t, buyer, http.MethodDelete, "/api/v1/saved-searches/s-1", "/api/v1/saved-searches/:id", nil, "", h.DeleteSavedSearch)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
