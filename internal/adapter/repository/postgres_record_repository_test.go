package repository

import (
	"context"
	"os"
	"testing"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
	"github.com/johnquangdev/meeting-recap/internal/infrastructure/database"
)

// startPostgres runs a throwaway postgres container with the schema applied.
// Needs docker; enabled with RECAP_TESTCONTAINERS=1.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("RECAP_TESTCONTAINERS") == "" {
		t.Skip("RECAP_TESTCONTAINERS not set")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("meeting_recap"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err, "error starting postgres container")
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.CloseDB(db) })

	n, err := database.Migrate(db, migrate.Up, 0)
	require.NoError(t, err)
	require.Positive(t, n)
	return db
}

func TestPostgresRecordRepository_Integration(t *testing.T) {
	db := startPostgres(t)
	repo := NewPostgresRecordRepository(db)
	ctx := context.Background()

	stored := sampleStoredRecord(time.Hour)
	require.NoError(t, repo.Save(ctx, stored))

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Record, got.Record)
	assert.Equal(t, stored.SourceName, got.SourceName)
	assert.Equal(t, stored.Format, got.Format)

	// saving again replaces the row
	stored.Record.Title = "Roadmap v2"
	require.NoError(t, repo.Save(ctx, stored))
	got, err = repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Roadmap v2", got.Record.Title)

	require.NoError(t, repo.Delete(ctx, stored.ID))
	_, err = repo.Get(ctx, stored.ID)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, stored.ID), entities.ErrRecordNotFound)
}

func TestPostgresRecordRepository_Expiry(t *testing.T) {
	db := startPostgres(t)
	repo := NewPostgresRecordRepository(db)
	ctx := context.Background()

	stored := sampleStoredRecord(time.Minute)
	require.NoError(t, repo.Save(ctx, stored))

	repo.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

	_, err := repo.Get(ctx, stored.ID)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)

	n, err := repo.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
