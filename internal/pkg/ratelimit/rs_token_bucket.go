package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local capacity = tonumber(ARGV[1])
	local rate = tonumber(ARGV[2])
	local now = tonumber(ARGV[3])
	local ttl = tonumber(ARGV[4])

	local bucket = redis.call('HMGET', key, 'tokens', 'last_refill')
	local tokens = tonumber(bucket[1])
	local lastRefill = tonumber(bucket[2])

	if tokens == nil then
		tokens = capacity
		lastRefill = now
	end

	-- now 單位為毫秒
	local elapsed = math.max(0, now - lastRefill) / 1000
	tokens = math.min(capacity, tokens + elapsed * rate)

	local allowed = 0
	if tokens >= 1 then
		tokens = tokens - 1
		allowed = 1
	end

	redis.call('HMSET', key, 'tokens', tostring(tokens), 'last_refill', tostring(now))
	redis.call('EXPIRE', key, ttl)
	return allowed
`)

// RsTokenBucket 多個 instance 共用 redis 上的 bucket
type RsTokenBucket struct {
	cfg    LimiterConfig
	client redis.Scripter
	prefix string
	now    func() time.Time
}

var _ ILimiter = (*RsTokenBucket)(nil)

func NewRsTokenBucket(client redis.Scripter, cfg LimiterConfig) *RsTokenBucket {
	if client == nil {
		panic("NewRsTokenBucket: redis client cannot be nil")
	}
	return &RsTokenBucket{
		cfg:    cfg.normalize(),
		client: client,
		prefix: "rate_limit",
		now:    time.Now,
	}
}

// Allow redis 失敗時放行, 只記錄錯誤
func (r *RsTokenBucket) Allow(ctx context.Context, key string) bool {
	result, err := tokenBucketScript.Run(
		ctx,
		r.client,
		[]string{fmt.Sprintf("%s:%s", r.prefix, key)},
		r.cfg.Capacity,
		r.cfg.RatePS,
		r.now().UnixMilli(),
		int(r.cfg.TTL.Seconds()),
	).Int64()
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("redis rate limiter unavailable, request allowed")
		return true
	}
	return result == 1
}
