package docstore

import (
	"context"
	"slices"

	"landmarket/internal/domain/constants"
	"landmarket/internal/domain/entity"
	"landmarket/internal/domain/repository"
	"landmarket/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
)

// evidenceRepository implements repository.EvidenceRepository on the 'evidence' collection.
type evidenceRepository struct {
	client *firestore.Client
}

// NewEvidenceRepository is the constructor for evidenceRepository.
func NewEvidenceRepository(client *firestore.Client) repository.EvidenceRepository {
	return &evidenceRepository{client: client}
}

func (repo *evidenceRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(constants.CollectionEvidence)
}

func (repo *evidenceRepository) NewID() string {
	return repo.col().NewDoc().ID
}

// CreateBatch writes every evidence document in one transaction.
func (repo *evidenceRepository) CreateBatch(ctx context.Context, evidence []*entity.Evidence) error {
	if len(evidence) == 0 {
		return nil
	}
	if len(evidence) > constants.MaxBatchWrites {
		return errors.Errorf("%d evidence documents exceed the batch limit of %d", len(evidence), constants.MaxBatchWrites)
	}

	for _, ev := range evidence {
		if ev.ID == "" {
			ev.ID = repo.NewID()
		}
	}

	err := repo.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		for _, ev := range evidence {
			if err := tx.Create(repo.col().Doc(ev.ID), fromEvidenceDomain(ev)); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create evidence batch")
	}

	return nil
}

func (repo *evidenceRepository) FindByID(ctx context.Context, id string) (*entity.Evidence, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEvidenceNotFound
		}

		return nil, wrapRead(err, "failed to find evidence by id")
	}

	return toEvidenceDomain(snap)
}

// FindByListing returns the listing's evidence in upload order.
func (repo *evidenceRepository) FindByListing(ctx context.Context, listingID string) ([]*entity.Evidence, error) {
	snaps, err := repo.col().Where("listingId", "==", listingID).Documents(ctx).GetAll()
	if err != nil {
		return nil, wrapRead(err, "failed to find evidence by listing")
	}

	evidence := make([]*entity.Evidence, 0, len(snaps))
	for _, snap := range snaps {
		ev, err := toEvidenceDomain(snap)
		if err != nil {
			return nil, err
		}
		evidence = append(evidence, ev)
	}

	slices.SortStableFunc(evidence, func(a, b *entity.Evidence) int {
		return a.UploadedAt.Compare(b.UploadedAt)
	})

	return evidence, nil
}

func (repo *evidenceRepository) UpdateAnalysis(ctx context.Context, id, summary string, suspicious []string) error {
	if suspicious == nil {
		suspicious = []string{}
	}

	return repo.update(ctx, id, []firestore.Update{
		{Path: "summary", Value: summary},
		{Path: "suspicious", Value: suspicious},
	})
}

func (repo *evidenceRepository) SetVerified(ctx context.Context, id string, verified bool) error {
	return repo.update(ctx, id, []firestore.Update{{Path: "verified", Value: verified}})
}

// ListingIDs scans the collection projecting only listingId.
func (repo *evidenceRepository) ListingIDs(ctx context.Context) ([]string, error) {
	iter := repo.col().Select("listingId").Documents(ctx)
	defer iter.Stop()

	seen := make(map[string]struct{})
	var ids []string
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, wrapRead(err, "failed to scan evidence listing ids")
		}

		id, err := snap.DataAt("listingId")
		if err != nil {
			continue
		}
		listingID, ok := id.(string)
		if !ok || listingID == "" {
			continue
		}
		if _, dup := seen[listingID]; dup {
			continue
		}
		seen[listingID] = struct{}{}
		ids = append(ids, listingID)
	}

	return ids, nil
}

func (repo *evidenceRepository) DeleteByListing(ctx context.Context, listingID string) (int, error) {
	snaps, err := repo.col().Where("listingId", "==", listingID).Select().Documents(ctx).GetAll()
	if err != nil {
		return 0, wrapRead(err, "failed to find evidence to delete")
	}

	refs := make([]*firestore.DocumentRef, 0, len(snaps))
	for _, snap := range snaps {
		refs = append(refs, snap.Ref)
	}
	if err := deleteRefs(ctx, repo.client, refs); err != nil {
		return 0, err
	}

	return len(refs), nil
}

func (repo *evidenceRepository) update(ctx context.Context, id string, updates []firestore.Update) error {
	if _, err := repo.col().Doc(id).Update(ctx, updates); err != nil {
		if isNotFound(err) {
			return repository.ErrEvidenceNotFound
		}

		return errors.Wrap(err, "failed to update evidence")
	}

	return nil
}

func toEvidenceDomain(snap *firestore.DocumentSnapshot) (*entity.Evidence, error) {
	var m model.EvidenceModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode evidence %s", snap.Ref.ID)
	}

	return &entity.Evidence{
		ID:          snap.Ref.ID,
		ListingID:   m.ListingID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		Type:        m.Type,
		StoragePath: m.StoragePath,
		Content:     m.Content,
		Summary:     m.Summary,
		Suspicious:  m.Suspicious,
		Verified:    m.Verified,
		UploadedAt:  m.UploadedAt,
	}, nil
}

func fromEvidenceDomain(ev *entity.Evidence) *model.EvidenceModel {
	suspicious := ev.Suspicious
	if suspicious == nil {
		suspicious = []string{}
	}

	return &model.EvidenceModel{
		ListingID:   ev.ListingID,
		OwnerID:     ev.OwnerID,
		Name:        ev.Name,
		Type:        ev.Type,
		StoragePath: ev.StoragePath,
		Content:     ev.Content,
		Summary:     ev.Summary,
		Suspicious:  suspicious,
		Verified:    ev.Verified,
		UploadedAt:  ev.UploadedAt,
	}
}
