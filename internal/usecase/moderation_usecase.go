package usecase

import (
	"context"

	"landmarket/internal/domain/entity"
)

// ContactInput is the public contact form payload.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// ReportInput is a complaint about a listing.
type ReportInput struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
	Email   string `json:"email"`
}

// ModerationUsecase covers public submissions and their admin handling.
type ModerationUsecase interface {
	SubmitContact(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error)
	ReportListing(ctx context.Context, caller *entity.Caller, listingID string, input *ReportInput) (*entity.ListingReport, error)

	ListContactMessages(ctx context.Context, caller *entity.Caller) ([]*entity.ContactMessage, error)
	SetContactStatus(ctx context.Context, caller *entity.Caller, id string, status entity.TicketStatus) error

	ListReports(ctx context.Context, caller *entity.Caller) ([]*entity.ListingReport, error)
	SetReportStatus(ctx context.Context, caller *entity.Caller, id string, status entity.TicketStatus) error
}
