package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// IMetalRateRedisRepository 金屬牌價快取
type IMetalRateRedisRepository interface {
	// GetMetalRate 快取不存在時回傳 ErrCacheMiss
	GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error)

	// SetMetalRate 寫入快取並設定過期時間, 已存在時覆寫
	SetMetalRate(ctx context.Context, rate *model.MetalRate, ttl time.Duration) error

	// SetMetalRateIfAbsent 只在快取不存在時寫入, 回傳是否有寫入
	SetMetalRateIfAbsent(ctx context.Context, rate *model.MetalRate, ttl time.Duration) (bool, error)

	// DeleteMetalRate 牌價異動後移除快取
	DeleteMetalRate(ctx context.Context, metal model.MetalType) error
}

var ErrCacheMiss = errors.New("metal rate cache miss")

var setIfAbsentScript = redis.NewScript(`
	if redis.call('EXISTS', KEYS[1]) == 1 then
		return 0
	end
	redis.call('HMSET', KEYS[1], 'rate_per_gram', ARGV[1], 'updated_at', ARGV[2], 'updated_by', ARGV[3])
	redis.call('PEXPIRE', KEYS[1], ARGV[4])
	return 1
`)

/*
結構:

	metal_rate:gold: {
		rate_per_gram: "6000.00",
		updated_at: "2025-01-01T00:00:00Z",
		updated_by: "uuid" 或 "",
	}
*/
type MetalRateRedisRepo struct {
	client *redis.Client
	prefix string
}

func NewMetalRateRedisRepo(client *redis.Client) *MetalRateRedisRepo {
	return &MetalRateRedisRepo{client: client, prefix: "metal_rate"}
}

func (r *MetalRateRedisRepo) key(metal model.MetalType) string {
	return fmt.Sprintf("%s:%s", r.prefix, metal)
}

func (r *MetalRateRedisRepo) GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	fields, err := r.client.HGetAll(ctx, r.key(metal)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrCacheMiss
	}
	return convertRedisMapToMetalRate(metal, fields)
}

func (r *MetalRateRedisRepo) SetMetalRate(ctx context.Context, rate *model.MetalRate, ttl time.Duration) error {
	key := r.key(rate.MetalType)
	rateStr, updatedAt, updatedBy := metalRateFields(rate)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		"rate_per_gram", rateStr,
		"updated_at", updatedAt,
		"updated_by", updatedBy,
	)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *MetalRateRedisRepo) SetMetalRateIfAbsent(ctx context.Context, rate *model.MetalRate, ttl time.Duration) (bool, error) {
	rateStr, updatedAt, updatedBy := metalRateFields(rate)
	written, err := setIfAbsentScript.Run(ctx, r.client,
		[]string{r.key(rate.MetalType)},
		rateStr, updatedAt, updatedBy, ttl.Milliseconds(),
	).Int()
	if err != nil {
		return false, err
	}
	return written == 1, nil
}

func metalRateFields(rate *model.MetalRate) (string, string, string) {
	updatedBy := ""
	if rate.UpdatedBy != nil {
		updatedBy = rate.UpdatedBy.String()
	}
	return rate.RatePerGram.String(), rate.UpdatedAt.UTC().Format(time.RFC3339Nano), updatedBy
}

func (r *MetalRateRedisRepo) DeleteMetalRate(ctx context.Context, metal model.MetalType) error {
	return r.client.Del(ctx, r.key(metal)).Err()
}

// convertRedisMapToMetalRate 將 Redis 的 map[string]string 轉換為 model.MetalRate
func convertRedisMapToMetalRate(metal model.MetalType, fields map[string]string) (*model.MetalRate, error) {
	rate, err := decimal.NewFromString(fields["rate_per_gram"])
	if err != nil {
		return nil, fmt.Errorf("invalid cached rate for %s: %w", metal, err)
	}

	result := &model.MetalRate{
		MetalType:   metal,
		RatePerGram: rate,
	}

	if v := fields["updated_at"]; v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			return nil, fmt.Errorf("invalid cached updated_at for %s: %w", metal, err)
		}
		result.UpdatedAt = t
	}

	if v := fields["updated_by"]; v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid cached updated_by for %s: %w", metal, err)
		}
		result.UpdatedBy = &id
	}
	return result, nil
}
