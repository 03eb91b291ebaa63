package ratelimit

import (
	"context"
	"time"
)

type LimiterConfig struct {
	Capacity int // bucket 最大 token 數
	RatePS   int // tokens/秒
	TTL      time.Duration
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity: 100,
		RatePS:   20,
		TTL:      time.Minute,
	}
}

// normalize 補上不合法的欄位
func (c LimiterConfig) normalize() LimiterConfig {
	def := GetDefaultLimiterConfig()
	if c.Capacity <= 0 {
		c.Capacity = def.Capacity
	}
	if c.RatePS <= 0 {
		c.RatePS = def.RatePS
	}
	if c.TTL <= 0 {
		c.TTL = def.TTL
	}
	return c
}

// ILimiter key 通常為 client ip 或 user id
type ILimiter interface {
	Allow(ctx context.Context, key string) bool
}
