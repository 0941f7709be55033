// Package cache keeps a short-lived copy of the student list in Redis.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/samber/mo"

	"escolaapi/internal/config"
	"escolaapi/internal/model"
)

const (
	alunosVersionKey = "alunos:ver"
	defaultListTTL   = time.Hour
)

func alunosListKey(version int64) string {
	return fmt.Sprintf("alunos:list:%d", version)
}

// AlunoListCache stores list-all results per list version. Every write bumps
// the version, so a list read before a write can only be stored under the old
// version and is never served afterwards.
type AlunoListCache interface {
	// Version returns the current list version.
	Version(ctx context.Context) (int64, error)
	// Get returns the list cached for version, or mo.None when nothing is cached.
	Get(ctx context.Context, version int64) (mo.Option[[]model.Aluno], error)
	// Set stores the list for version unless one is already stored.
	Set(ctx context.Context, version int64, alunos []model.Aluno) error
	// Invalidate bumps the version and drops the list cached for the previous one.
	Invalidate(ctx context.Context) error
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

type redisAlunoCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisAlunoCache returns an AlunoListCache backed by client. A non-positive
// ttl falls back to one hour so lists stored under old versions expire.
func NewRedisAlunoCache(client redis.Cmdable, ttl time.Duration) AlunoListCache {
	if ttl <= 0 {
		ttl = defaultListTTL
	}
	return &redisAlunoCache{client: client, ttl: ttl}
}

func (c *redisAlunoCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, alunosVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *redisAlunoCache) Get(ctx context.Context, version int64) (mo.Option[[]model.Aluno], error) {
	b, err := c.client.Get(ctx, alunosListKey(version)).Bytes()
	if errors.Is(err, redis.Nil) {
		return mo.None[[]model.Aluno](), nil
	}
	if err != nil {
		return mo.None[[]model.Aluno](), err
	}

	var alunos []model.Aluno
	if err := json.Unmarshal(b, &alunos); err != nil {
		return mo.None[[]model.Aluno](), fmt.Errorf("decode cached list: %w", err)
	}
	return mo.Some(alunos), nil
}

func (c *redisAlunoCache) Set(ctx context.Context, version int64, alunos []model.Aluno) error {
	b, err := json.Marshal(alunos)
	if err != nil {
		return fmt.Errorf("encode list: %w", err)
	}
	return c.client.SetNX(ctx, alunosListKey(version), b, c.ttl).Err()
}

func (c *redisAlunoCache) Invalidate(ctx context.Context) error {
	v, err := c.client.Incr(ctx, alunosVersionKey).Result()
	if err != nil {
		return err
	}
	return c.client.Del(ctx, alunosListKey(v-1)).Err()
}
