package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/finsim/loan-recast/internal/config"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "loan-recast:plan:"

// RedisStore is a Redis-backed implementation of Store. Plans are stored as
// JSON documents under a key prefix.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a plan store backed by the Redis server at addr.
func NewRedisStore(addr string) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Save stores the plan under the given name, replacing any existing plan.
func (s *RedisStore) Save(ctx context.Context, name string, plan config.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to encode plan %q: %w", name, err)
	}
	return s.client.Set(ctx, redisKeyPrefix+name, data, 0).Err()
}

// Load retrieves the plan stored under the given name.
func (s *RedisStore) Load(ctx context.Context, name string) (config.Plan, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+name).Result()
	if errors.Is(err, redis.Nil) {
		return config.Plan{}, ErrNotFound
	}
	if err != nil {
		return config.Plan{}, fmt.Errorf("failed to load plan %q: %w", name, err)
	}
	var plan config.Plan
	if err := json.Unmarshal([]byte(data), &plan); err != nil {
		return config.Plan{}, fmt.Errorf("failed to decode plan %q: %w", name, err)
	}
	return plan, nil
}

// List returns stored plan names in ascending order.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), redisKeyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the plan stored under the given name.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	deleted, err := s.client.Del(ctx, redisKeyPrefix+name).Result()
	if err != nil {
		return fmt.Errorf("failed to delete plan %q: %w", name, err)
	}
	if deleted == 0 {
		return ErrNotFound
	}
	return nil
}
