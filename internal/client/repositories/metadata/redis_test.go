package metadata

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Set BREWKEEPER_TEST_REDIS=host:port to run these against a real server.
func setupRedis(t *testing.T) *RedisRepository {
	t.Helper()
	addr := os.Getenv("BREWKEEPER_TEST_REDIS")
	if addr == "" {
		t.Skip("BREWKEEPER_TEST_REDIS not set")
	}

	ctx := context.Background()
	rdb, err := NewRedisClient(ctx, addr, os.Getenv("BREWKEEPER_TEST_REDIS_PASSWORD"))
	require.NoError(t, err)

	r := NewRedisRepository(rdb, "brewkeeper:test:"+uuid.NewString())
	t.Cleanup(func() {
		_ = r.Clear(context.Background())
		_ = rdb.Close()
	})
	return r
}

func TestRedis_SetGetDelete(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	v, err := r.Get(ctx, "username")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, r.Set(ctx, "username", []byte("alice")))
	v, err = r.Get(ctx, "username")
	require.NoError(t, err)
	require.Equal(t, []byte("alice"), v)

	require.NoError(t, r.Delete(ctx, "username"))
	require.NoError(t, r.Delete(ctx, "username"))
	v, err = r.Get(ctx, "username")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestRedis_SetManyListClear(t *testing.T) {
	r := setupRedis(t)
	ctx := context.Background()

	require.NoError(t, r.SetMany(ctx, nil))
	require.NoError(t, r.SetMany(ctx, map[string][]byte{
		"username": []byte("alice"),
		"token":    []byte("tok"),
	}))

	m, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"username": []byte("alice"), "token": []byte("tok")}, m)

	require.NoError(t, r.Clear(ctx))
	m, err = r.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	_, err := NewRedisClient(context.Background(), "127.0.0.1:1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis ping 127.0.0.1:1")
}
