// Package docstore implements the persistence layer on Cloud Firestore.
package docstore

import (
	"context"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/repository"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Module provides every repository backed by the Firestore client.
var Module = fx.Options(
	fx.Provide(
		NewListingRepository,
		NewEvidenceRepository,
		NewUserRepository,
		NewContactRepository,
		NewReportRepository,
		NewConversationRepository,
		NewSavedSearchRepository,
	),
)

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func isAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

func isTransient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded, codes.ResourceExhausted, codes.Aborted:
		return true
	default:
		return false
	}
}

// wrapRead tags transient failures with repository.ErrStoreUnavailable.
func wrapRead(err error, message string) error {
	if isTransient(err) {
		return errors.Wrapf(repository.ErrStoreUnavailable, "%s: %v", message, err)
	}

	return errors.Wrap(err, message)
}

// deleteRefs removes documents in transactional chunks of constants.MaxBatchWrites.
func deleteRefs(ctx context.Context, client *firestore.Client, refs []*firestore.DocumentRef) error {
	for start := 0; start < len(refs); start += constants.MaxBatchWrites {
		end := min(start+constants.MaxBatchWrites, len(refs))
		chunk := refs[start:end]

		err := client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
			for _, ref := range chunk {
				if err := tx.Delete(ref); err != nil {
					return err
				}
			}

			return nil
		})
		if err != nil {
			return errors.Wrap(err, "failed to delete documents")
		}
	}

	return nil
}
