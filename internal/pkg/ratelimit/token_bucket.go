package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"
)

type bucket struct {
	tokens     float64
	lastRefill time.Time
}

// TokenBucket 單機版, 每個 key 一個 bucket
// 讀取時才補充 token, 不需要背景 goroutine
type TokenBucket struct {
	cfg     LimiterConfig
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time

	lastSweep time.Time
}

var _ ILimiter = (*TokenBucket)(nil)

func NewTokenBucket(cfg LimiterConfig) *TokenBucket {
	return &TokenBucket{
		cfg:     cfg.normalize(),
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

func (t *TokenBucket) Allow(_ context.Context, key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	b, ok := t.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(t.cfg.Capacity), lastRefill: now}
		t.buckets[key] = b
		t.maybeEvictIdle(now)
	}

	elapsed := now.Sub(b.lastRefill).Seconds()
	if elapsed > 0 {
		b.tokens = math.Min(float64(t.cfg.Capacity), b.tokens+elapsed*float64(t.cfg.RatePS))
		b.lastRefill = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// maybeEvictIdle 每個 TTL 最多掃描一次
func (t *TokenBucket) maybeEvictIdle(now time.Time) {
	if now.Sub(t.lastSweep) < t.cfg.TTL {
		return
	}
	t.lastSweep = now
	t.evictIdle(now)
}

// evictIdle 清除超過 TTL 未使用的 bucket, 閒置夠久的 bucket 必然已補滿
func (t *TokenBucket) evictIdle(now time.Time) {
	for k, b := range t.buckets {
		if now.Sub(b.lastRefill) > t.cfg.TTL {
			delete(t.buckets, k)
		}
	}
}
