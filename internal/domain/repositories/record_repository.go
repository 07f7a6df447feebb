package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// RecordRepository persists processed meeting records.
// Implementations return entities.ErrRecordNotFound for unknown or expired IDs.
type RecordRepository interface {
	Save(ctx context.Context, record *entities.StoredRecord) error
	Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
