package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile and the admin user list.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// CreateProfileRequest is the signup form submitted right after the first sign-in.
type CreateProfileRequest struct {
	DisplayName string      `json:"displayName" validate:"required,max=120"`
	Role        entity.Role `json:"role" validate:"required,oneof=BUYER SELLER"`
	Phone       string      `json:"phone" validate:"omitempty,max=32"`
	PhotoURL    string      `json:"photoURL" validate:"omitempty,url"`
}

// UpdateProfileRequest holds the user-editable profile fields.
type UpdateProfileRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,min=1,max=120"`
	PhotoURL    *string `json:"photoURL" validate:"omitempty,url"`
	Phone       *string `json:"phone" validate:"omitempty,max=32"`
	Bio         *string `json:"bio" validate:"omitempty,max=2000"`
}

// SetRoleRequest is an admin role change.
type SetRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=BUYER SELLER ADMIN"`
}

// SetVerifiedRequest toggles a verification flag.
type SetVerifiedRequest struct {
	Verified bool `json:"verified"`
}

// CreateProfile creates the profile of a freshly signed-in identity.
// The session must be valid but no profile exists yet, so there is no caller.
func (h *ProfileHandler) CreateProfile(c echo.Context) error {
	token := deliverycontext.GetSessionToken(c)
	if token == "" {
		return response.Unauthorized(c)
	}

	var req CreateProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	profile, err := h.profileUC.CreateProfile(c.Request().Context(), token, &usecase.CreateProfileInput{
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Phone:       req.Phone,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetProfile returns the caller's profile.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileUC.GetProfile(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateProfile edits the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var req UpdateProfileRequest
	if ok, err := bindAndValidate(c, &req, "Invalid profile input"); !ok {
		return err
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), deliverycontext.GetCaller(c), &usecase.UpdateProfileInput{
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
		Phone:       req.Phone,
		Bio:         req.Bio,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// ListUsers returns the newest profiles.
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	profiles, err := h.profileUC.ListProfiles(c.Request().Context(), deliverycontext.GetCaller(c), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profiles)
}

// SetUserRole changes a user's role.
func (h *ProfileHandler) SetUserRole(c echo.Context) error {
	var req SetRoleRequest
	if ok, err := bindAndValidate(c, &req, "Invalid role input"); !ok {
		return err
	}

	if err := h.profileUC.SetRole(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("uid"), req.Role); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// SetUserVerified marks a seller as verified or not.
func (h *ProfileHandler) SetUserVerified(c echo.Context) error {
	var req SetVerifiedRequest
	if ok, err := bindAndValidate(c, &req, "Invalid verification input"); !ok {
		return err
	}

	if err := h.profileUC.SetVerified(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("uid"), req.Verified); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
