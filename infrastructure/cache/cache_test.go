package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, client
}

func TestDashboardCache_Redis(t *testing.T) {
	mr, client := newRedis(t)
	ctx := context.Background()
	c := NewDashboardCache(client, time.Minute)

	_, ok := c.Get(ctx, "org-1")
	assert.False(t, ok)

	c.Set(ctx, "org-1", &domain.DashboardMetrics{
		TotalDeals:     4,
		TotalValue:     decimal.RequireFromString("1500.50"),
		WonDeals:       1,
		ConversionRate: 50,
	})

	got, ok := c.Get(ctx, "org-1")
	require.True(t, ok)
	assert.Equal(t, int64(4), got.TotalDeals)
	assert.True(t, decimal.RequireFromString("1500.50").Equal(got.TotalValue))
	assert.Equal(t, 50.0, got.ConversionRate)

	_, ok = c.Get(ctx, "org-2")
	assert.False(t, ok, "cache é isolado por organização")

	mr.FastForward(2 * time.Minute)
	_, ok = c.Get(ctx, "org-1")
	assert.False(t, ok, "entrada expira com o TTL")
}

func TestDashboardCache_Invalidate(t *testing.T) {
	_, client := newRedis(t)
	ctx := context.Background()
	c := NewDashboardCache(client, time.Minute)

	c.Set(ctx, "org-1", &domain.DashboardMetrics{TotalDeals: 1})
	c.Invalidate(ctx, "org-1")

	_, ok := c.Get(ctx, "org-1")
	assert.False(t, ok)
}

func TestDashboardCache_DisabledWithoutClient(t *testing.T) {
	ctx := context.Background()
	c := NewDashboardCache(nil, time.Minute)

	c.Set(ctx, "org-1", &domain.DashboardMetrics{TotalDeals: 1})
	_, ok := c.Get(ctx, "org-1")
	assert.False(t, ok)
}

func TestTokenRevoker_Redis(t *testing.T) {
	mr, client := newRedis(t)
	ctx := context.Background()
	r := NewTokenRevoker(client)

	revoked, err := r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))

	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = r.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestTokenRevoker_Memory(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	r := &memoryTokenRevoker{revoked: map[string]time.Time{}, now: func() time.Time { return now }}

	require.NoError(t, r.Revoke(ctx, "jti-1", time.Hour))
	require.NoError(t, r.Revoke(ctx, "jti-expirado", 0))

	revoked, _ := r.IsRevoked(ctx, "jti-1")
	assert.True(t, revoked)
	revoked, _ = r.IsRevoked(ctx, "jti-expirado")
	assert.False(t, revoked, "token já expirado não precisa ser guardado")

	now = now.Add(61 * time.Minute)
	revoked, _ = r.IsRevoked(ctx, "jti-1")
	assert.False(t, revoked)
}

func TestTokenRevoker_Restore(t *testing.T) {
	_, client := newRedis(t)
	ctx := context.Background()

	revokers := map[string]TokenRevoker{
		"redis":   NewTokenRevoker(client),
		"memória": NewTokenRevoker(nil),
	}

	for name, r := range revokers {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, r.Revoke(ctx, "user:u-1", time.Hour))
			revoked, err := r.IsRevoked(ctx, "user:u-1")
			require.NoError(t, err)
			assert.True(t, revoked)

			require.NoError(t, r.Restore(ctx, "user:u-1"))
			revoked, err = r.IsRevoked(ctx, "user:u-1")
			require.NoError(t, err)
			assert.False(t, revoked)

			assert.NoError(t, r.Restore(ctx, "inexistente"))
		})
	}
}
