package repository

import (
	"context"

	"landmarket/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrTicketNotFound is returned when a contact message or report does not exist.
var ErrTicketNotFound = errors.New("ticket not found")

// ContactRepository defines contact-form persistence.
type ContactRepository interface {
	// CreateWithMail persists the message and its confirmation-email job in one batch.
	CreateWithMail(ctx context.Context, msg *entity.ContactMessage, mail *entity.MailJob) error

	// List returns messages newest first.
	List(ctx context.Context, limit int) ([]*entity.ContactMessage, error)

	// SetStatus toggles the handled state.
	SetStatus(ctx context.Context, id string, status entity.TicketStatus) error
}

// ReportRepository defines listing report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *entity.ListingReport) error
	List(ctx context.Context, limit int) ([]*entity.ListingReport, error)
	SetStatus(ctx context.Context, id string, status entity.TicketStatus) error
}
