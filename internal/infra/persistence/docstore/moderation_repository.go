package docstore

import (
	"context"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

// contactRepository implements repository.ContactRepository.
type contactRepository struct {
	client *firestore.Client
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(client *firestore.Client) repository.ContactRepository {
	return &contactRepository{client: client}
}

// CreateWithMail writes the contact message and the mail job in one transaction.
func (repo *contactRepository) CreateWithMail(ctx context.Context, msg *entity.ContactMessage, mail *entity.MailJob) error {
	messages := repo.client.Collection(constants.CollectionContactMessages)
	if msg.ID == "" {
		msg.ID = messages.NewDoc().ID
	}

	m := &model.ContactMessageModel{
		Name:      msg.Name,
		Email:     msg.Email,
		Topic:     msg.Topic,
		Message:   msg.Message,
		Status:    string(msg.Status),
		CreatedAt: msg.CreatedAt,
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		if err := tx.Create(messages.Doc(msg.ID), m); err != nil {
			return err
		}
		if mail == nil {
			return nil
		}

		return tx.Create(repo.client.Collection(constants.CollectionMail).NewDoc(), &model.MailModel{
			To:      mail.To,
			Message: model.MailMessageModel{Subject: mail.Subject, Text: mail.Text},
		})
	})
	if err != nil {
		return errors.Wrap(err, "failed to create contact message")
	}

	return nil
}

func (repo *contactRepository) List(ctx context.Context, limit int) ([]*entity.ContactMessage, error) {
	snaps, err := newestFirst(repo.client.Collection(constants.CollectionContactMessages), limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(snaps))
	for _, snap := range snaps {
		var m model.ContactMessageModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode contact message %s", snap.Ref.ID)
		}
		messages = append(messages, &entity.ContactMessage{
			ID:        snap.Ref.ID,
			Name:      m.Name,
			Email:     m.Email,
			Topic:     m.Topic,
			Message:   m.Message,
			Status:    entity.TicketStatus(m.Status),
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, nil
}

func (repo *contactRepository) SetStatus(ctx context.Context, id string, status entity.TicketStatus) error {
	return setTicketStatus(ctx, repo.client.Collection(constants.CollectionContactMessages).Doc(id), status)
}

// reportRepository implements repository.ReportRepository.
type reportRepository struct {
	client *firestore.Client
}

// NewReportRepository is the constructor for reportRepository.
func NewReportRepository(client *firestore.Client) repository.ReportRepository {
	return &reportRepository{client: client}
}

func (repo *reportRepository) Create(ctx context.Context, report *entity.ListingReport) error {
	col := repo.client.Collection(constants.CollectionListingReports)
	if report.ID == "" {
		report.ID = col.NewDoc().ID
	}

	_, err := col.Doc(report.ID).Create(ctx, &model.ListingReportModel{
		ListingID:     report.ListingID,
		ReporterID:    report.ReporterID,
		ReporterEmail: report.ReporterEmail,
		Reason:        report.Reason,
		Details:       report.Details,
		Status:        string(report.Status),
		CreatedAt:     report.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create listing report")
	}

	return nil
}

func (repo *reportRepository) List(ctx context.Context, limit int) ([]*entity.ListingReport, error) {
	snaps, err := newestFirst(repo.client.Collection(constants.CollectionListingReports), limit).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to list listing reports")
	}

	reports := make([]*entity.ListingReport, 0, len(snaps))
	for _, snap := range snaps {
		var m model.ListingReportModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode listing report %s", snap.Ref.ID)
		}
		reports = append(reports, &entity.ListingReport{
			ID:            snap.Ref.ID,
			ListingID:     m.ListingID,
			ReporterID:    m.ReporterID,
			ReporterEmail: m.ReporterEmail,
			Reason:        m.Reason,
			Details:       m.Details,
			Status:        entity.TicketStatus(m.Status),
			CreatedAt:     m.CreatedAt,
		})
	}

	return reports, nil
}

func (repo *reportRepository) SetStatus(ctx context.Context, id string, status entity.TicketStatus) error {
	return setTicketStatus(ctx, repo.client.Collection(constants.CollectionListingReports).Doc(id), status)
}

func newestFirst(col *firestore.CollectionRef, limit int) firestore.Query {
	query := col.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	return query
}

func setTicketStatus(ctx context.Context, doc *firestore.DocumentRef, status entity.TicketStatus) error {
	if _, err := doc.Update(ctx, []firestore.Update{{Path: "status", Value: string(status)}}); err != nil {
		if isNotFound(err) {
			return repository.ErrTicketNotFound
		}

		return errors.Wrap(err, "failed to update ticket status")
	}

	return nil
}
