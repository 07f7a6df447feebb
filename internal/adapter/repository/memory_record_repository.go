package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/cache"
)

// MemoryRecordRepository keeps meeting records in process memory. Records
// are evicted once they reach their ExpiresAt.
type MemoryRecordRepository struct {
	store *cache.MemoryStore
}

// NewMemoryRecordRepository creates a new in-memory record repository
func NewMemoryRecordRepository(store *cache.MemoryStore) *MemoryRecordRepository {
	return &MemoryRecordRepository{store: store}
}

// Save stores the record until its expiry
func (r *MemoryRecordRepository) Save(ctx context.Context, record *entities.StoredRecord) error {
	if record == nil {
		return fmt.Errorf("record cannot be nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	r.store.Set(record.ID.String(), data, ttlUntil(record.ExpiresAt))
	return nil
}

// Get returns the record or entities.ErrRecordNotFound
func (r *MemoryRecordRepository) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, ok := r.store.Get(id.String())
	if !ok {
		return nil, entities.ErrRecordNotFound
	}

	var record entities.StoredRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &record, nil
}

// Delete removes the record or returns entities.ErrRecordNotFound
func (r *MemoryRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !r.store.Delete(id.String()) {
		return entities.ErrRecordNotFound
	}
	return nil
}

// ttlUntil converts an absolute expiry into a store TTL. A zero expiry
// never expires; a past one keeps the record for a minimal instant.
func ttlUntil(expiresAt time.Time) time.Duration {
	if expiresAt.IsZero() {
		return 0
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return time.Nanosecond
	}
	return ttl
}
