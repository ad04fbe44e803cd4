package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	deliverycontext "landmarket/internal/delivery/context"
	"landmarket/internal/domain/entity"
	domainerrors "landmarket/internal/domain/errors"
	"landmarket/internal/domain/repository"
	"landmarket/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const moderationListLimit = 200

type moderationService struct {
	contactRepo repository.ContactRepository
	reportRepo  repository.ReportRepository
	listingRepo repository.ListingRepository
	logger      *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(
	contactRepo repository.ContactRepository,
	reportRepo repository.ReportRepository,
	listingRepo repository.ListingRepository,
	logger *slog.Logger,
) usecase.ModerationUsecase {
	return &moderationService{
		contactRepo: contactRepo,
		reportRepo:  reportRepo,
		listingRepo: listingRepo,
		logger:      logger,
	}
}

func (srv *moderationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitContact stores a contact-form message and queues a confirmation email.
func (srv *moderationService) SubmitContact(ctx context.Context, input *usecase.ContactInput) (*entity.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name, email and message are required")
	}
	if !IsPlausibleEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}

	topic := strings.TrimSpace(input.Topic)
	if topic == "" {
		topic = "general"
	}

	msg := &entity.ContactMessage{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Topic:     topic,
		Message:   message,
		Status:    entity.TicketStatusNew,
		CreatedAt: time.Now().UTC(),
	}

	mail := &entity.MailJob{
		To:      email,
		Subject: "We received your message",
		Text:    fmt.Sprintf("Hi %s,\n\nThanks for contacting us about %q. Our team will get back to you shortly.", name, topic),
	}

	if err := srv.contactRepo.CreateWithMail(ctx, msg, mail); err != nil {
		return nil, errors.Wrap(err, "failed to store contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.String("message_id", msg.ID), slog.String("topic", topic))

	return msg, nil
}

// ReportListing files a report against an existing listing. The caller is optional.
func (srv *moderationService) ReportListing(ctx context.Context, caller *entity.Caller, listingID string, input *usecase.ReportInput) (*entity.ListingReport, error) {
	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("reason is required")
	}

	email := strings.TrimSpace(input.Email)
	if email != "" && !IsPlausibleEmail(email) {
		return nil, domainerrors.ErrInvalidEmail
	}

	exists, err := srv.listingRepo.Exists(ctx, listingID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check listing")
	}
	if !exists {
		return nil, domainerrors.ErrListingNotFound
	}

	report := &entity.ListingReport{
		ID:            uuid.NewString(),
		ListingID:     listingID,
		ReporterEmail: email,
		Reason:        reason,
		Details:       strings.TrimSpace(input.Details),
		Status:        entity.TicketStatusNew,
		CreatedAt:     time.Now().UTC(),
	}
	if caller != nil {
		report.ReporterID = caller.ID
		if report.ReporterEmail == "" {
			report.ReporterEmail = caller.Email
		}
	}

	if err := srv.reportRepo.Create(ctx, report); err != nil {
		return nil, errors.Wrap(err, "failed to store listing report")
	}

	srv.log(ctx).Info("Listing reported", slog.String("listing_id", listingID), slog.String("report_id", report.ID))

	return report, nil
}

func (srv *moderationService) ListContactMessages(ctx context.Context, caller *entity.Caller) ([]*entity.ContactMessage, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	messages, err := srv.contactRepo.List(ctx, moderationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contact messages")
	}

	return messages, nil
}

func (srv *moderationService) SetContactStatus(ctx context.Context, caller *entity.Caller, id string, status entity.TicketStatus) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if !status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := srv.contactRepo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrTicketNotFound
		}

		return errors.Wrap(err, "failed to update contact message")
	}

	return nil
}

func (srv *moderationService) ListReports(ctx context.Context, caller *entity.Caller) ([]*entity.ListingReport, error) {
	if err := requireAdmin(caller); err != nil {
		return nil, err
	}

	reports, err := srv.reportRepo.List(ctx, moderationListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	return reports, nil
}

func (srv *moderationService) SetReportStatus(ctx context.Context, caller *entity.Caller, id string, status entity.TicketStatus) error {
	if err := requireAdmin(caller); err != nil {
		return err
	}
	if !status.IsValid() {
		return domainerrors.ErrInvalidStatus
	}

	if err := srv.reportRepo.SetStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return domainerrors.ErrTicketNotFound
		}

		return errors.Wrap(err, "failed to update report")
	}

	return nil
}

// IsPlausibleEmail reports whether s has a non-empty local part, an "@", and a
// domain containing a dot with text on both sides.
func IsPlausibleEmail(s string) bool {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(s, " \t\r\n") {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}

	dot := strings.LastIndex(domain, ".")

	return dot > 0 && dot < len(domain)-1
}
