package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// ReportCache is the optional read-through cache in front of heavy reports.
// Implementations must degrade to misses rather than fail the request.
type ReportCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

func reportCacheKey(report string, params ...any) string {
	h := sha256.Sum256([]byte(fmt.Sprint(params...)))
	return "dashboard:" + report + ":" + hex.EncodeToString(h[:8])
}

// cachedReport wraps compute with the read-through pattern. A nil cache or a
// non-positive TTL means straight recomputation.
func cachedReport[T any](ctx context.Context, cache ReportCache, ttl time.Duration, key string, compute func() (T, error)) (T, error) {
	var zero T
	if cache == nil || ttl <= 0 {
		return compute()
	}

	var cached T
	if ok, err := cache.GetJSON(ctx, key, &cached); err == nil && ok {
		return cached, nil
	}

	out, err := compute()
	if err != nil {
		return zero, err
	}
	_ = cache.SetJSON(ctx, key, out, ttl)
	return out, nil
}
