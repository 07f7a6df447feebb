package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-recap/internal/domain/repositories"
)

// StoreObserver receives one callback per store operation
type StoreObserver interface {
	ObserveStore(backend, op string, err error)
}

// InstrumentedRecordRepository reports every call of the wrapped repository
// to an observer. A missing record is not counted as an error.
type InstrumentedRecordRepository struct {
	next     domainrepo.RecordRepository
	backend  string
	observer StoreObserver
}

// NewInstrumentedRecordRepository wraps next
func NewInstrumentedRecordRepository(next domainrepo.RecordRepository, backend string, observer StoreObserver) *InstrumentedRecordRepository {
	return &InstrumentedRecordRepository{next: next, backend: backend, observer: observer}
}

func (r *InstrumentedRecordRepository) Save(ctx context.Context, record *entities.StoredRecord) error {
	err := r.next.Save(ctx, record)
	r.observe("save", err)
	return err
}

func (r *InstrumentedRecordRepository) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	record, err := r.next.Get(ctx, id)
	r.observe("get", err)
	return record, err
}

func (r *InstrumentedRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.next.Delete(ctx, id)
	r.observe("delete", err)
	return err
}

func (r *InstrumentedRecordRepository) observe(op string, err error) {
	if errors.Is(err, entities.ErrRecordNotFound) {
		err = nil
	}
	r.observer.ObserveStore(r.backend, op, err)
}
