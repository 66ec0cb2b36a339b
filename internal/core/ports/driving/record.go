package driving

import (
	"context"

	"github.com/custodia-labs/ycard/internal/core/domain"
)

// RecordService reads the persisted yCard record.
type RecordService interface {
	// Load returns the stored record, domain.ErrNotFound when nothing was saved,
	// or domain.ErrCorruptRecord when the stored value fails verification.
	Load(ctx context.Context) (*domain.PersistedRecord, error)
}
