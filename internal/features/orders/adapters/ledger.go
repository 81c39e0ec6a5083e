package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"zctraders-api/internal/core/cache"
)

const (
	ledgerKeyPrefix = "order_number:"
	// ledgerTTL bounds how long an issued number stays verifiable.
	ledgerTTL = 30 * 24 * time.Hour
)

// RedisOrderLedger implements ports.OrderLedger on the cache port.
type RedisOrderLedger struct {
	cache cache.Cache
}

// NewRedisOrderLedger creates a Redis-backed order-number ledger.
func NewRedisOrderLedger(c cache.Cache) *RedisOrderLedger {
	return &RedisOrderLedger{cache: c}
}

// Record remembers an issued order number for the ledger TTL.
func (l *RedisOrderLedger) Record(ctx context.Context, orderNumber string) error {
	issuedAt := []byte(time.Now().UTC().Format(time.RFC3339))
	if err := l.cache.Set(ctx, ledgerKeyPrefix+orderNumber, issuedAt, ledgerTTL); err != nil {
		return fmt.Errorf("failed to record order number %s: %w", orderNumber, err)
	}
	return nil
}

// Exists reports whether the order number is still on the ledger.
func (l *RedisOrderLedger) Exists(ctx context.Context, orderNumber string) (bool, error) {
	ok, err := l.cache.Exists(ctx, ledgerKeyPrefix+orderNumber)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to look up order number %s: %w", orderNumber, err)
	}
	return ok, nil
}
