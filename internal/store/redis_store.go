package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/lojatricolor/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisClient(cfg *config.Config) (*redis.Client, error) {

	redisURL := cfg.Redis.GetDSN()
	slog.Info("Connecting to Redis", slog.String("addr", fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port)))

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Get(ctx context.Context, path string, value any) (bool, error) {

	data, err := s.client.Get(ctx, path).Bytes()
	if err != nil {

		if err == redis.Nil {
			return false, nil
		}

		return false, fmt.Errorf("failed to get path %s: %w", path, err)
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal document at %s: %w", path, err)
	}

	return true, nil
}

func (s *redisStore) Set(ctx context.Context, path string, value any) error {

	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal document for %s: %w", path, err)
	}

	// Documents never expire; the store is the system of record.
	if err := s.client.Set(ctx, path, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to set path %s: %w", path, err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, path string) error {

	if err := s.client.Del(ctx, path).Err(); err != nil {
		return fmt.Errorf("failed to delete path %s: %w", path, err)
	}

	return nil
}

func (s *redisStore) Exists(ctx context.Context, path string) (bool, error) {

	n, err := s.client.Exists(ctx, path).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check path %s: %w", path, err)
	}

	return n > 0, nil
}

func (s *redisStore) List(ctx context.Context, prefix string) (map[string]json.RawMessage, error) {

	pattern := prefix + "/*"
	result := make(map[string]json.RawMessage)

	var keys []string

	var cursor uint64

	for {
		batch, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan prefix %s: %w", prefix, err)
		}

		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if len(keys) == 0 {
		return result, nil
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read documents under %s: %w", prefix, err)
	}

	for i, key := range keys {

		// A key may vanish between SCAN and MGET.
		if values[i] == nil {
			continue
		}

		str, ok := values[i].(string)
		if !ok {
			continue
		}

		id := key[strings.LastIndex(key, "/")+1:]
		result[id] = json.RawMessage(str)
	}

	return result, nil
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
