package entities

import (
	"time"

	"github.com/google/uuid"
)

// StoredRecord is a processed meeting kept by the result store
type StoredRecord struct {
	ID         uuid.UUID        `json:"id"`
	Record     MeetingRecord    `json:"record"`
	Format     TranscriptFormat `json:"format"`
	SourceName string           `json:"source_name,omitempty"`
	ArchiveKey string           `json:"archive_key,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	ExpiresAt  time.Time        `json:"expires_at"`
}

// NewStoredRecord wraps record with a fresh ID and lifetime
func NewStoredRecord(record MeetingRecord, format TranscriptFormat, ttl time.Duration) *StoredRecord {
	now := time.Now().UTC()
	return &StoredRecord{
		ID:        uuid.New(),
		Record:    record,
		Format:    format,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// Expired reports whether the record outlived its TTL at t
func (s *StoredRecord) Expired(t time.Time) bool {
	return !s.ExpiresAt.IsZero() && t.After(s.ExpiresAt)
}
