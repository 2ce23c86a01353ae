package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kisanmitra/backend/internal/domain"
)

func newTestCache(t *testing.T) (*ReplyCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestReplyCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)

	_, ok, err := c.Get(ctx, "chat:reply:en:missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "chat:reply:en:k", "Irrigate tomorrow."))

	got, ok, err := c.Get(ctx, "chat:reply:en:k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Irrigate tomorrow.", got)
	assert.Equal(t, time.Minute, mr.TTL("chat:reply:en:k"))

	mr.FastForward(2 * time.Minute)
	_, ok, err = c.Get(ctx, "chat:reply:en:k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReplyCacheErrors(t *testing.T) {
	ctx := context.Background()
	c, mr := newTestCache(t)
	mr.Close()

	_, _, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, c.Set(ctx, "k", "v"))
	assert.Error(t, c.Ping(ctx))
}

func TestNewConnectsByURL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := New("redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	defer c.Close()

	assert.NoError(t, c.Ping(context.Background()))

	_, err = New("not a url", time.Minute)
	assert.Error(t, err)
}

func TestNewFailsWhenRedisIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	c, err := New("redis://"+addr+"/0", time.Minute)
	assert.Nil(t, c)
	assert.ErrorContains(t, err, "cache: ping failed")
}

func TestKey(t *testing.T) {
	base := domain.ChatRequest{Message: "when to sell?"}
	k := Key(base)

	assert.True(t, strings.HasPrefix(k, "chat:reply:en:"))
	assert.Equal(t, k, Key(domain.ChatRequest{Message: "when to sell?", Language: domain.English}))

	hindi := base
	hindi.Language = domain.Hindi
	assert.True(t, strings.HasPrefix(Key(hindi), "chat:reply:hi:"))

	withCtx := base
	withCtx.Context = &domain.ContextSnapshot{Market: &domain.MarketTiming{Action: domain.SellNow, CurrentPrice: 2450}}
	assert.NotEqual(t, k, Key(withCtx))

	other := base
	other.Message = "when to sell"
	assert.NotEqual(t, k, Key(other))
}
