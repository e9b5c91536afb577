package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/snapdock/pkg/boardfile"
	"github.com/matzehuels/snapdock/pkg/observability"
)

// keyPrefix namespaces snapdock snapshots inside a shared redis instance.
const keyPrefix = "snapdock:snapshot:"

// RedisConfig configures a RedisStore.
type RedisConfig struct {
	Addr     string // host:port, e.g. "localhost:6379"
	Password string // optional
	DB       int    // redis database number
}

// RedisStore stores snapshots as JSON values in Redis.
// Snapshots have no TTL; they live until deleted.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection with a ping.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Save stores the document under the prefixed key.
func (s *RedisStore) Save(ctx context.Context, name string, doc boardfile.Document) error {
	start := time.Now()
	err := s.save(ctx, name, doc)
	observability.Store().OnSave(ctx, "redis", name, time.Since(start), err)
	return err
}

func (s *RedisStore) save(ctx context.Context, name string, doc boardfile.Document) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+name, data, 0).Err()
}

// Load retrieves the document stored under name.
func (s *RedisStore) Load(ctx context.Context, name string) (boardfile.Document, error) {
	start := time.Now()
	doc, err := s.load(ctx, name)
	observability.Store().OnLoad(ctx, "redis", name, time.Since(start), err)
	return doc, err
}

func (s *RedisStore) load(ctx context.Context, name string) (boardfile.Document, error) {
	if err := ValidateName(name); err != nil {
		return boardfile.Document{}, err
	}
	data, err := s.client.Get(ctx, keyPrefix+name).Bytes()
	if err == redis.Nil {
		return boardfile.Document{}, ErrNotFound
	}
	if err != nil {
		return boardfile.Document{}, err
	}
	var doc boardfile.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return boardfile.Document{}, err
	}
	return doc, nil
}

// List scans for all snapshot keys and strips the prefix.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var names []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		names = append(names, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

// Delete removes the snapshot key.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	n, err := s.client.Del(ctx, keyPrefix+name).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the underlying client.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
