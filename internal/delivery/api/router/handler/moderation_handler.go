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

// ModerationHandlerParams holds dependencies for ModerationHandler, injected by Fx.
type ModerationHandlerParams struct {
	fx.In

	ModerationUC usecase.ModerationUsecase
	Logger       *slog.Logger
}

// ModerationHandler serves the contact form, listing reports and their admin inboxes.
type ModerationHandler struct {
	moderationUC usecase.ModerationUsecase
	logger       *slog.Logger
}

// NewModerationHandler is the constructor for ModerationHandler.
func NewModerationHandler(params ModerationHandlerParams) *ModerationHandler {
	return &ModerationHandler{
		moderationUC: params.ModerationUC,
		logger:       params.Logger,
	}
}

// ContactRequest is the public contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Topic   string `json:"topic" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

// ReportRequest is a complaint about a listing.
type ReportRequest struct {
	Reason  string `json:"reason" validate:"required,max=200"`
	Details string `json:"details" validate:"max=5000"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// TicketStatusRequest moves a message or report between new and handled.
type TicketStatusRequest struct {
	Status entity.TicketStatus `json:"status" validate:"required,oneof=new handled"`
}

// SubmitContact stores a contact form submission and queues its confirmation mail.
func (h *ModerationHandler) SubmitContact(c echo.Context) error {
	var req ContactRequest
	if ok, err := bindAndValidate(c, &req, "Invalid contact input"); !ok {
		return err
	}

	// The stored message is not echoed back; the submitter only learns it was accepted.
	if _, err := h.moderationUC.SubmitContact(c.Request().Context(), &usecase.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Topic:   req.Topic,
		Message: req.Message,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// ReportListing files a report. Anonymous reporters are allowed.
func (h *ModerationHandler) ReportListing(c echo.Context) error {
	var req ReportRequest
	if ok, err := bindAndValidate(c, &req, "Invalid report input"); !ok {
		return err
	}

	report, err := h.moderationUC.ReportListing(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), &usecase.ReportInput{
		Reason:  req.Reason,
		Details: req.Details,
		Email:   req.Email,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, report)
}

// ListMessages returns the contact inbox.
func (h *ModerationHandler) ListMessages(c echo.Context) error {
	msgs, err := h.moderationUC.ListContactMessages(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, msgs)
}

// SetMessageStatus updates a contact message status.
func (h *ModerationHandler) SetMessageStatus(c echo.Context) error {
	var req TicketStatusRequest
	if ok, err := bindAndValidate(c, &req, "Invalid status input"); !ok {
		return err
	}

	if err := h.moderationUC.SetContactStatus(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}

// ListReports returns the report inbox.
func (h *ModerationHandler) ListReports(c echo.Context) error {
	reports, err := h.moderationUC.ListReports(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

// SetReportStatus updates a report status.
func (h *ModerationHandler) SetReportStatus(c echo.Context) error {
	var req TicketStatusRequest
	if ok, err := bindAndValidate(c, &req, "Invalid status input"); !ok {
		return err
	}

	if err := h.moderationUC.SetReportStatus(c.Request().Context(), deliverycontext.GetCaller(c), c.Param("id"), req.Status); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c)
}
