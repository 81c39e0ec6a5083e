package adapters

import (
	"context"
	"testing"
	"time"

	"zctraders-api/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T) (*RedisOrderLedger, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisOrderLedger(adapter), mr
}

// TestRedisOrderLedger_RecordAndExists verifies the round trip.
func TestRedisOrderLedger_RecordAndExists(t *testing.T) {
	ledger, _ := newTestLedger(t)
	ctx := context.Background()

	ok, err := ledger.Exists(ctx, "ZC-2026-123")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, ledger.Record(ctx, "ZC-2026-123"))

	ok, err = ledger.Exists(ctx, "ZC-2026-123")
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestRedisOrderLedger_EntriesExpire verifies the TTL bound.
func TestRedisOrderLedger_EntriesExpire(t *testing.T) {
	ledger, mr := newTestLedger(t)
	ctx := context.Background()

	require.NoError(t, ledger.Record(ctx, "ZC-2026-900"))

	mr.FastForward(ledgerTTL + time.Hour)

	ok, err := ledger.Exists(ctx, "ZC-2026-900")
	require.NoError(t, err)
	assert.False(t, ok)
}
