package handler

import (
	"log/slog"
	"net/http"

	"landmarket/internal/delivery/api/response"
	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	"landmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves the admin review console.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ReviewRequest is an admin decision on one listing.
type ReviewRequest struct {
	Status          entity.ListingStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	Badge           *entity.Badge        `json:"badge" validate:"omitempty,oneof=Gold Silver Bronze None"`
	RejectionReason string               `json:"rejectionReason" validate:"max=2000"`
}

// BulkStatusRequest sets one status on many listings.
type BulkStatusRequest struct {
	ListingIDs []string             `json:"listingIds" validate:"required,min=1"`
	Status     entity.ListingStatus `json:"status" validate:"required"`
}

// VerifyEvidenceRequest marks a document as checked.
type VerifyEvidenceRequest struct {
	Verified bool `json:"verified"`
}

// ReviewListing approves, rejects or re-badges a listing.
func (h *ReviewHandler) ReviewListing(c echo.Context) error {
	var req ReviewRequest
	if ok, err := bindAndValidate(c, &req, "Invalid review input"); !ok {
		return err
	}

	err := h.reviewUC.ReviewListing(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), &usecase.ReviewInput{
		Status:          req.Status,
		Badge:           req.Badge,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// BulkUpdateStatus applies one status to every listed id, all or nothing.
func (h *ReviewHandler) BulkUpdateStatus(c echo.Context) error {
	var req BulkStatusRequest
	if ok, err := bindAndValidate(c, &req, "Invalid bulk status input"); !ok {
		return err
	}

	if err := h.reviewUC.BulkUpdateStatus(c.Request().Context(), deliverycontext.GetCaller(c), req.ListingIDs, req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// SummarizeEvidence runs the AI summary over one document.
func (h *ReviewHandler) SummarizeEvidence(c echo.Context) error {
	evidence, err := h.reviewUC.SummarizeEvidence(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, evidence)
}

// VerifyEvidence sets the verified flag of one document.
func (h *ReviewHandler) VerifyEvidence(c echo.Context) error {
	var req VerifyEvidenceRequest
	if ok, err := bindAndValidate(c, &req, "Invalid verification input"); !ok {
		return err
	}

	if err := h.reviewUC.VerifyEvidence(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), req.Verified); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
