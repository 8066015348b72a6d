package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/models"
)

const redisDefaultKey = "daylist:tasks"

// RedisStore persists the collection as a JSON blob under a single key.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL, key string, logger *zap.Logger) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if key == "" {
		key = redisDefaultKey
	}
	return &RedisStore{client: client, key: key, logger: logger}, nil
}

// Load reads the snapshot blob. An absent key or unparseable blob yields
// an empty collection.
func (s *RedisStore) Load(ctx context.Context) ([]models.Task, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Task{}, nil
		}
		return nil, fmt.Errorf("failed to read snapshot from Redis: %w", err)
	}

	var records []taskRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("snapshot_invalid_starting_empty",
			zap.String("key", s.key),
			zap.Error(err),
		)
		return []models.Task{}, nil
	}
	return decodeRecords(records), nil
}

// Save replaces the snapshot blob. No TTL: the snapshot lives until the
// next save.
func (s *RedisStore) Save(ctx context.Context, tasks []models.Task) error {
	data, err := json.Marshal(encodeRecords(tasks))
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot to Redis: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
