package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// MeetingRecordModel is the meeting_records row
type MeetingRecordModel struct {
	ID          uuid.UUID                                  `gorm:"type:uuid;primaryKey"`
	Title       string                                     `gorm:"not null"`
	MeetingDate string                                     `gorm:"column:meeting_date;not null"`
	Format      string                                     `gorm:"type:varchar(8);not null;default:''"`
	SourceName  string                                     `gorm:"not null;default:''"`
	ArchiveKey  string                                     `gorm:"not null;default:''"`
	Record      datatypes.JSONType[entities.MeetingRecord] `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time                                  `gorm:"not null"`
	ExpiresAt   time.Time                                  `gorm:"not null;index"`
}

// TableName specifies the table name
func (MeetingRecordModel) TableName() string {
	return "meeting_records"
}

func toModel(s *entities.StoredRecord) *MeetingRecordModel {
	return &MeetingRecordModel{
		ID:          s.ID,
		Title:       s.Record.Title,
		MeetingDate: s.Record.Date,
		Format:      string(s.Format),
		SourceName:  s.SourceName,
		ArchiveKey:  s.ArchiveKey,
		Record:      datatypes.NewJSONType(s.Record),
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
}

func (m *MeetingRecordModel) toEntity() *entities.StoredRecord {
	return &entities.StoredRecord{
		ID:         m.ID,
		Record:     m.Record.Data(),
		Format:     entities.TranscriptFormat(m.Format),
		SourceName: m.SourceName,
		ArchiveKey: m.ArchiveKey,
		CreatedAt:  m.CreatedAt,
		ExpiresAt:  m.ExpiresAt,
	}
}

// PostgresRecordRepository persists meeting records with GORM
type PostgresRecordRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostgresRecordRepository creates a new postgres record repository
func NewPostgresRecordRepository(db *gorm.DB) *PostgresRecordRepository {
	return &PostgresRecordRepository{db: db, now: time.Now}
}

// Save inserts or replaces the record
func (r *PostgresRecordRepository) Save(ctx context.Context, record *entities.StoredRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}
	if err := r.db.WithContext(ctx).Save(toModel(record)).Error; err != nil {
		return fmt.Errorf("failed to save record: %w", err)
	}
	return nil
}

// Get returns a live record or entities.ErrRecordNotFound
func (r *PostgresRecordRepository) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	var model MeetingRecordModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND expires_at > ?", id, r.now().UTC()).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return model.toEntity(), nil
}

// Delete removes the record or returns entities.ErrRecordNotFound
func (r *PostgresRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MeetingRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}

// PurgeExpired deletes records past their expiry and returns the count
func (r *PostgresRecordRepository) PurgeExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("expires_at <= ?", r.now().UTC()).
		Delete(&MeetingRecordModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge expired records: %w", result.Error)
	}
	return result.RowsAffected, nil
}
