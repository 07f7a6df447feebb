package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/database"
)

func newSQLiteRepo(t *testing.T) *SQLiteRecordRepository {
	t.Helper()
	db, err := database.NewSQLiteDB(filepath.Join(t.TempDir(), "records.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRecordRepository(db)
}

func TestSQLiteRecordRepository_RoundTrip(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	stored := sampleStoredRecord(time.Hour)

	require.NoError(t, repo.Save(ctx, stored))

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, stored.Record, got.Record)
	assert.Equal(t, stored.SourceName, got.SourceName)
	assert.Equal(t, stored.Format, got.Format)
	assert.True(t, stored.ExpiresAt.Equal(got.ExpiresAt))

	stored.Record.Title = "Roadmap v2"
	require.NoError(t, repo.Save(ctx, stored))
	got, err = repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap v2", got.Record.Title)
}

func TestSQLiteRecordRepository_Delete(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()
	stored := sampleStoredRecord(time.Hour)

	require.NoError(t, repo.Save(ctx, stored))
	require.NoError(t, repo.Delete(ctx, stored.ID))

	_, err := repo.Get(ctx, stored.ID)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, stored.ID), entities.ErrRecordNotFound)
}

func TestSQLiteRecordRepository_Expiry(t *testing.T) {
	repo := newSQLiteRepo(t)
	ctx := context.Background()

	live := sampleStoredRecord(time.Hour)
	expiring := sampleStoredRecord(time.Minute)
	forever := sampleStoredRecord(0)
	forever.ExpiresAt = time.Time{}
	for _, s := range []*entities.StoredRecord{live, expiring, forever} {
		require.NoError(t, repo.Save(ctx, s))
	}

	repo.now = func() time.Time { return time.Now().Add(10 * time.Minute) }

	_, err := repo.Get(ctx, expiring.ID)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
	_, err = repo.Get(ctx, live.ID)
	assert.NoError(t, err)
	_, err = repo.Get(ctx, forever.ID)
	assert.NoError(t, err)

	n, err := repo.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
