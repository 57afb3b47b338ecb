package notifier

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/armazem/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	s := miniredis.RunT(t)

	client, err := Connect(context.Background(), RedisConfig{Addr: s.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return s, client
}

func TestRedisInvalidator_PublishesPaths(t *testing.T) {
	_, client := setupRedis(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, "armazem:invalidate")
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := NewRedisInvalidator(client, "armazem:invalidate", logger.NewNop())
	inv.now = func() time.Time { return fixed }

	inv.Invalidate(ctx, "/dashboard/enderecamento", "/dashboard")

	select {
	case m := <-sub.Channel():
		var msg Message
		require.NoError(t, json.Unmarshal([]byte(m.Payload), &msg))
		assert.Equal(t, []string{"/dashboard/enderecamento", "/dashboard"}, msg.Paths)
		assert.True(t, msg.At.Equal(fixed))
	case <-time.After(2 * time.Second):
		t.Fatal("mensagem de invalidação não recebida")
	}
}

func TestRedisInvalidator_RecordsLastInvalidation(t *testing.T) {
	s, client := setupRedis(t)
	ctx := context.Background()

	fixed := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	inv := NewRedisInvalidator(client, "armazem:invalidate", logger.NewNop())
	inv.now = func() time.Time { return fixed }

	_, ok, err := inv.LastInvalidated(ctx, "/dashboard")
	require.NoError(t, err)
	assert.False(t, ok)

	inv.Invalidate(ctx, "/dashboard")

	assert.Equal(t, fixed.Format(time.RFC3339Nano), s.HGet("armazem:invalidate:paths", "/dashboard"))

	at, ok, err := inv.LastInvalidated(ctx, "/dashboard")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, at.Equal(fixed))
}

func TestRedisInvalidator_ToleratesRedisFailure(t *testing.T) {
	s, client := setupRedis(t)
	inv := NewRedisInvalidator(client, "armazem:invalidate", logger.NewNop())

	require.NoError(t, inv.Ping(context.Background()))
	s.Close()
	assert.Error(t, inv.Ping(context.Background()))

	assert.NotPanics(t, func() {
		inv.Invalidate(context.Background(), "/dashboard")
	})
}

func TestConnect_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, err := Connect(ctx, RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}

func TestLogInvalidator(t *testing.T) {
	var inv Invalidator = NewLogInvalidator(logger.NewNop())
	assert.NotPanics(t, func() {
		inv.Invalidate(context.Background())
		inv.Invalidate(context.Background(), "/dashboard")
	})
}
