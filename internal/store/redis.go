package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hireboard/internal/config"
	"hireboard/internal/logging"
	"hireboard/pkg/models"
)

// RedisStore persists the posting collection as one JSON array under a single
// key, mirroring the collection on every change
type RedisStore struct {
	client *redis.Client
	key    string
	logger logging.Logger
}

// NewRedisStore creates a Redis-backed store from configuration
func NewRedisStore(cfg *config.Config) *RedisStore {
	opts, err := redis.ParseURL(cfg.Storage.Redis.URL)
	if err != nil {
		// Fallback to default configuration
		opts = &redis.Options{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
		}
	}

	opts.DialTimeout = cfg.Storage.Redis.Timeout
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	return &RedisStore{
		client: redis.NewClient(opts),
		key:    cfg.Storage.Key,
		logger: logging.GetGlobalLogger(),
	}
}

// Ping tests the Redis connection
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Load reads the stored collection. A missing key is an empty collection; a
// malformed payload fails soft to an empty collection for the session.
func (r *RedisStore) Load(ctx context.Context) ([]models.JobPosting, error) {
	raw, err := r.client.Get(ctx, r.key).Result()
	if err != nil {
		if err == redis.Nil {
			return []models.JobPosting{}, nil
		}
		return nil, fmt.Errorf("failed to load posting collection: %w", err)
	}

	var postings []models.JobPosting
	if err := json.Unmarshal([]byte(raw), &postings); err != nil {
		r.logger.Warn("Stored posting collection is malformed, starting empty", map[string]interface{}{
			"key":   r.key,
			"error": err.Error(),
		})
		return []models.JobPosting{}, nil
	}

	return postings, nil
}

// Save overwrites the stored collection with the given one
func (r *RedisStore) Save(ctx context.Context, postings []models.JobPosting) error {
	payload, err := json.Marshal(postings)
	if err != nil {
		return fmt.Errorf("failed to marshal posting collection: %w", err)
	}

	if err := r.client.Set(ctx, r.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to save posting collection: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
