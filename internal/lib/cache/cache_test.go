package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "backoffice:party_role:user_2abc", Key("party_role", "user_2abc"))
}

func TestCache_WithoutClientIsAMiss(t *testing.T) {
	c := New(nil)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, Key("x"), 1, time.Minute))

	var v int
	hit, err := c.GetJSON(ctx, Key("x"), &v)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_ZeroTTLSkipsRedis(t *testing.T) {
	// Nothing listens here, so any round trip would fail.
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	assert.NoError(t, New(client).SetJSON(context.Background(), Key("x"), 1, 0))
}

func TestCache_ReportsRedisErrors(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	var v int
	hit, err := New(client).GetJSON(context.Background(), Key("x"), &v)

	assert.Error(t, err)
	assert.False(t, hit)
}
