package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/johnquangdev/meeting-recap/internal/domain/entities"
)

// DefaultRedisKeyPrefix namespaces record keys
const DefaultRedisKeyPrefix = "meeting-recap:record:"

// RedisRecordRepository stores meeting records as JSON values with a TTL
type RedisRecordRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRecordRepository creates a new Redis backed record repository
func NewRedisRecordRepository(client *redis.Client, prefix string) *RedisRecordRepository {
	if prefix == "" {
		prefix = DefaultRedisKeyPrefix
	}
	return &RedisRecordRepository{client: client, prefix: prefix}
}

func (r *RedisRecordRepository) key(id uuid.UUID) string {
	return r.prefix + id.String()
}

// Save writes the record with a TTL matching its expiry
func (r *RedisRecordRepository) Save(ctx context.Context, record *entities.StoredRecord) error {
	if record == nil {
		return errors.New("record cannot be nil")
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := r.client.Set(ctx, r.key(record.ID), data, ttlUntil(record.ExpiresAt)).Err(); err != nil {
		return fmt.Errorf("failed to save record to redis: %w", err)
	}
	return nil
}

// Get returns the record or entities.ErrRecordNotFound
func (r *RedisRecordRepository) Get(ctx context.Context, id uuid.UUID) (*entities.StoredRecord, error) {
	data, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, entities.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get record from redis: %w", err)
	}

	var record entities.StoredRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}
	return &record, nil
}

// Delete removes the record or returns entities.ErrRecordNotFound
func (r *RedisRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Del(ctx, r.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete record from redis: %w", err)
	}
	if n == 0 {
		return entities.ErrRecordNotFound
	}
	return nil
}
