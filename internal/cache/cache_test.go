package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"escolaapi/internal/cache/mocks"
	"escolaapi/internal/config"
	"escolaapi/internal/model"
)

func TestNewRedisClient_RequiresAddr(t *testing.T) {
	client, err := NewRedisClient(config.RedisConfig{})
	assert.Nil(t, client)
	assert.EqualError(t, err, "redis address is required")
}

func TestNewRedisAlunoCache_TTLFallback(t *testing.T) {
	for _, ttl := range []time.Duration{0, -5} {
		c := NewRedisAlunoCache(nil, ttl).(*redisAlunoCache)
		assert.Equal(t, defaultListTTL, c.ttl)
	}
}

func TestRedisAlunoCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	rdb := mocks.NewFakeRedis()
	c := NewRedisAlunoCache(rdb, time.Minute)

	ver, err := c.Version(ctx)
	require.NoError(t, err)
	assert.Zero(t, ver)

	got, err := c.Get(ctx, ver)
	require.NoError(t, err)
	assert.True(t, got.IsAbsent())

	want := []model.Aluno{{ID: 2, Nome: "Bia"}, {ID: 1, Nome: "Ana"}}
	require.NoError(t, c.Set(ctx, ver, want))
	raw, ok := rdb.Value("alunos:list:0")
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":2,"nome":"Bia"},{"id":1,"nome":"Ana"}]`, raw)
	assert.Equal(t, time.Minute, rdb.StoredTTL("alunos:list:0"))

	got, err = c.Get(ctx, ver)
	require.NoError(t, err)
	assert.Equal(t, want, got.MustGet())

	require.NoError(t, c.Invalidate(ctx))
	_, ok = rdb.Value("alunos:list:0")
	assert.False(t, ok)

	ver, err = c.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)

	got, err = c.Get(ctx, ver)
	require.NoError(t, err)
	assert.True(t, got.IsAbsent())
}

func TestRedisAlunoCache_LateSetAfterInvalidate(t *testing.T) {
	ctx := context.Background()
	rdb := mocks.NewFakeRedis()
	c := NewRedisAlunoCache(rdb, time.Minute)

	// a reader takes the version, a write lands, then the reader stores its snapshot
	before, err := c.Version(ctx)
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx))
	require.NoError(t, c.Set(ctx, before, []model.Aluno{}))

	now, err := c.Version(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before, now)

	got, err := c.Get(ctx, now)
	require.NoError(t, err)
	assert.True(t, got.IsAbsent())
}

func TestRedisAlunoCache_SetKeepsFirstValue(t *testing.T) {
	ctx := context.Background()
	c := NewRedisAlunoCache(mocks.NewFakeRedis(), time.Minute)

	require.NoError(t, c.Set(ctx, 3, []model.Aluno{{ID: 1, Nome: "Ana"}}))
	require.NoError(t, c.Set(ctx, 3, []model.Aluno{}))

	got, err := c.Get(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, got.MustGet(), 1)
}

func TestRedisAlunoCache_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("backend failure", func(t *testing.T) {
		rdb := mocks.NewFakeRedis()
		rdb.Err = errors.New("connection refused")
		c := NewRedisAlunoCache(rdb, 0)

		_, err := c.Version(ctx)
		assert.EqualError(t, err, "connection refused")
		got, err := c.Get(ctx, 0)
		assert.EqualError(t, err, "connection refused")
		assert.True(t, got.IsAbsent())
		assert.Error(t, c.Set(ctx, 0, nil))
		assert.Error(t, c.Invalidate(ctx))
	})

	t.Run("corrupt entry", func(t *testing.T) {
		rdb := mocks.NewFakeRedis()
		rdb.Put("alunos:list:0", "{not json")
		c := NewRedisAlunoCache(rdb, 0)

		got, err := c.Get(ctx, 0)
		assert.ErrorContains(t, err, "decode cached list")
		assert.True(t, got.IsAbsent())
	})

	t.Run("corrupt version", func(t *testing.T) {
		rdb := mocks.NewFakeRedis()
		rdb.Put("alunos:ver", "abc")

		_, err := NewRedisAlunoCache(rdb, 0).Version(ctx)
		assert.Error(t, err)
	})
}
