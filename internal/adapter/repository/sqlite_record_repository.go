package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// SQLiteRecordRepository keeps meeting records in a local sqlite file.
// Expiry is stored as unix nanoseconds; a zero expiry never expires.
type SQLiteRecordRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteRecordRepository creates a repository on an opened database
func NewSQLiteRecordRepository(db *sql.DB) *SQLiteRecordRepository {
	return &SQLiteRecordRepository{db: db, now: time.Now}
}

// Save inserts or replaces the record
func (r *SQLiteRecordRepository) Save(ctx context.Context, record *entities.StoredRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO meeting_records (id, format, source_name, payload, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.ID.String(),
		string(record.Format),
		record.SourceName,
		string(payload),
		record.CreatedAt.UnixNano(),
		unixNano(record.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Get returns a live record or entities.ErrRecordNotFound
func (r *SQLiteRecordRepository) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	var payload string
	err := r.db.QueryRowContext(ctx,
		`SELECT payload FROM meeting_records WHERE id = ? AND (expires_at = 0 OR expires_at > ?)`,
		id.String(), r.now().UnixNano(),
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}

	var record entities.StoredRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &record, nil
}

// Delete removes the record or returns entities.ErrRecordNotFound
func (r *SQLiteRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meeting_records WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if n == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// PurgeExpired deletes records past their expiry and returns the count
func (r *SQLiteRecordRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM meeting_records WHERE expires_at <> 0 AND expires_at <= ?`,
		r.now().UnixNano(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to purge expired records: %w", err)
	}
	return result.RowsAffected()
}

func unixNano(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}
