package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/custodia-labs/ycard/internal/core/domain"
	"github.com/custodia-labs/ycard/internal/core/ports/driven"
	"github.com/custodia-labs/ycard/internal/core/ports/driving"
	"github.com/custodia-labs/ycard/internal/logger"
)

// Ensure PersistenceService implements the interface.
var _ driving.RecordService = (*PersistenceService)(nil)

// PersistenceService commits validated documents under the fixed record key.
type PersistenceService struct {
	store    driven.RecordStore
	verifier driven.RecordVerifier
}

// NewPersistenceService creates a persistence service. verifier may be nil.
func NewPersistenceService(store driven.RecordStore, verifier driven.RecordVerifier) *PersistenceService {
	return &PersistenceService{
		store:    store,
		verifier: verifier,
	}
}

// Save re-runs the structural rules and, only if they pass, overwrites the
// stored record with the canonical JSON form of doc.
func (s *PersistenceService) Save(ctx context.Context, doc *domain.Document) domain.SaveResult {
	result := CheckDocument(doc)
	if !result.Valid() {
		logger.Debug("save rejected: %s", result.Violation.Message())
		return domain.SaveRejectedBy(*result.Violation)
	}

	data, err := Canonicalize(doc)
	if err != nil {
		return domain.SaveFailedWith(err.Error())
	}

	if err := s.store.Put(ctx, domain.RecordKey, data); err != nil {
		logger.Debug("store put %s failed: %v", domain.RecordKey, err)
		return domain.SaveFailedWith(storageReason(err))
	}

	logger.Debug("stored %d bytes under %s", len(data), domain.RecordKey)
	return domain.Saved(result.Count)
}

// Load reads the stored record and verifies its shape.
func (s *PersistenceService) Load(ctx context.Context) (*domain.PersistedRecord, error) {
	stored, err := s.store.Get(ctx, domain.RecordKey)
	if err != nil {
		return nil, err
	}

	if s.verifier != nil {
		if err := s.verifier.Verify(stored.Value); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
		}
	}

	var payload any
	if err := json.Unmarshal(stored.Value, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptRecord, err)
	}
	doc := domain.NewDocument(domain.FromValue(payload))

	return &domain.PersistedRecord{
		Key:       domain.RecordKey,
		Revision:  stored.Revision,
		UpdatedAt: stored.UpdatedAt,
		Data:      json.RawMessage(stored.Value),
		People:    doc.Records(),
	}, nil
}

// Canonicalize serialises a document as 2-space indented JSON.
func Canonicalize(doc *domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc.Interface(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("canonicalising document: %w", err)
	}
	return data, nil
}

func storageReason(err error) string {
	var se *domain.StorageError
	if errors.As(err, &se) {
		return se.Reason
	}
	return err.Error()
}
