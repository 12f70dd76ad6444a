package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis backs a Client with an in-process miniredis server.
func setupTestRedis(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := &Client{
		Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return client, mr
}

func TestClient_SetGet(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "crm:stages:1:hubspot", `[{"id":"closedwon"}]`, 5*time.Minute))

	val, err := client.Get(ctx, "crm:stages:1:hubspot")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"closedwon"}]`, val)

	_, err = client.Get(ctx, "crm:stages:1:zoho")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestClient_Delete(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "auth:verify:tok-1", "1", 1*time.Hour))
	require.NoError(t, client.Set(ctx, "auth:verify:tok-2", "2", 1*time.Hour))

	require.NoError(t, client.Delete(ctx, "auth:verify:tok-1"))

	_, err := client.Get(ctx, "auth:verify:tok-1")
	assert.ErrorIs(t, err, redis.Nil)

	val, err := client.Get(ctx, "auth:verify:tok-2")
	require.NoError(t, err)
	assert.Equal(t, "2", val)
}

func TestClient_Exists(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	exists, err := client.Exists(ctx, "auth:reset:missing")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, client.Set(ctx, "auth:reset:present", "value", 1*time.Hour))

	exists, err = client.Exists(ctx, "auth:reset:present")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClient_TTL(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	ctx := context.Background()

	require.NoError(t, client.Set(ctx, "crm:stages:1:pipedrive", "[]", 5*time.Minute))

	ttl, err := client.TTL(ctx, "crm:stages:1:pipedrive")
	require.NoError(t, err)
	assert.Greater(t, ttl, 4*time.Minute)
	assert.LessOrEqual(t, ttl, 5*time.Minute)
}
