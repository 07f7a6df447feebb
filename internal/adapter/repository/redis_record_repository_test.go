package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// Runs against a real server when REDIS_TEST_ADDR is set, e.g. localhost:6379
func TestRedisRecordRepository_Integration(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	repo := NewRedisRecordRepository(client, "meeting-recap-test:")
	ctx := context.Background()
	stored := sampleStoredRecord(time.Minute)

	require.NoError(t, repo.Save(ctx, stored))

	ttl, err := client.TTL(ctx, repo.key(stored.ID)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)

	got, err := repo.Get(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, stored.Record, got.Record)

	require.NoError(t, repo.Delete(ctx, stored.ID))
	assert.ErrorIs(t, repo.Delete(ctx, stored.ID), entities.ErrRecordNotFound)
}

func TestRedisRecordRepository_KeyPrefix(t *testing.T) {
	repo := NewRedisRecordRepository(nil, "")
	stored := sampleStoredRecord(time.Minute)

	assert.Equal(t, DefaultRedisKeyPrefix+stored.ID.String(), repo.key(stored.ID))
}
