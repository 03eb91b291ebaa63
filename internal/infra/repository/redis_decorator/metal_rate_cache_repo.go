package redis_decorator

import (
	"context"
	"errors"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_repo"
	"github.com/rs/zerolog/log"
)

/*
牌價讀多寫少, 讀取走 cache aside
redis 失敗時直接讀 db, 不影響前台
讀取回填只在 key 不存在時寫入, 寫入端交易提交後以 Refresh 覆寫,
讀到舊值的回填不會蓋掉新牌價
*/
type CacheAsideMetalRateRepo struct {
	dbRepo db.IMetalRateRepository
	redis  redis_repo.IMetalRateRedisRepository
	ttl    time.Duration
}

// NewCacheAsideMetalRateRepo redis 為 nil 時只讀 db
func NewCacheAsideMetalRateRepo(dbRepo db.IMetalRateRepository, redis redis_repo.IMetalRateRedisRepository, ttl time.Duration) *CacheAsideMetalRateRepo {
	if dbRepo == nil {
		panic("NewCacheAsideMetalRateRepo: db repository cannot be nil")
	}
	return &CacheAsideMetalRateRepo{dbRepo: dbRepo, redis: redis, ttl: ttl}
}

func (c *CacheAsideMetalRateRepo) GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	if c.redis != nil {
		rate, err := c.redis.GetMetalRate(ctx, metal)
		if err == nil {
			return rate, nil
		}
		if !errors.Is(err, redis_repo.ErrCacheMiss) {
			log.Warn().Err(err).Str("metal_type", string(metal)).Msg("metal rate cache read failed")
		}
	}

	rate, err := c.dbRepo.GetMetalRate(ctx, metal)
	if err != nil {
		return nil, err
	}

	if c.redis != nil {
		if _, err := c.redis.SetMetalRateIfAbsent(ctx, rate, c.ttl); err != nil {
			log.Warn().Err(err).Str("metal_type", string(metal)).Msg("metal rate cache fill failed")
		}
	}
	return rate, nil
}

// ListMetalRates 尚未設定的金屬不會出現在結果中
func (c *CacheAsideMetalRateRepo) ListMetalRates(ctx context.Context) ([]model.MetalRate, error) {
	rates := make([]model.MetalRate, 0, len(model.AllMetalTypes))
	for _, metal := range model.AllMetalTypes {
		rate, err := c.GetMetalRate(ctx, metal)
		if err != nil {
			if db.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		rates = append(rates, *rate)
	}
	return rates, nil
}

// Refresh 交易提交後寫入新牌價, 寫入失敗時改為刪除
func (c *CacheAsideMetalRateRepo) Refresh(ctx context.Context, rate *model.MetalRate) {
	if c.redis == nil {
		return
	}
	err := c.redis.SetMetalRate(ctx, rate, c.ttl)
	if err == nil {
		return
	}
	log.Warn().Err(err).Str("metal_type", string(rate.MetalType)).Msg("metal rate cache refresh failed")
	if err := c.redis.DeleteMetalRate(ctx, rate.MetalType); err != nil {
		log.Error().Err(err).Str("metal_type", string(rate.MetalType)).Msg("metal rate cache evict failed")
	}
}
