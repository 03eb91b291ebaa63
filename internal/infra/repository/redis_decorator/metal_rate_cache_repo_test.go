package redis_decorator

import (
	"context"
	"testing"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_repo"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func setupCacheRepo(t *testing.T) (*CacheAsideMetalRateRepo, *db.Store, *miniredis.Miniredis) {
	conn, err := db.GetSqliteConn(db.InMemorySqliteDSN(uuid.NewString()))
	require.NoError(t, err)
	store := db.NewStore(db.NewDbDao(conn))
	require.NoError(t, store.InitMigrate())
	t.Cleanup(func() { store.Close() })

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })

	repo := NewCacheAsideMetalRateRepo(store, redis_repo.NewMetalRateRedisRepo(client), time.Minute)
	return repo, store, mr
}

func setRate(t *testing.T, store *db.Store, metal model.MetalType, rate int64) {
	err := store.UpsertMetalRate(context.Background(), &model.MetalRate{
		MetalType:   metal,
		RatePerGram: decimal.NewFromInt(rate),
		UpdatedAt:   time.Now(),
	})
	require.NoError(t, err)
}

func TestCacheAsideFillsAndServesFromCache(t *testing.T) {
	repo, store, mr := setupCacheRepo(t)
	ctx := context.Background()
	setRate(t, store, model.MetalGold, 6000)

	rate, err := repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(rate.RatePerGram))
	require.True(t, mr.Exists("metal_rate:gold"))

	// db 直接被改, 快取未更新前仍回傳舊值
	setRate(t, store, model.MetalGold, 7000)
	rate, err = repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(rate.RatePerGram))

	fresh, err := store.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	repo.Refresh(ctx, fresh)
	rate, err = repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(7000).Equal(rate.RatePerGram))
	require.Equal(t, time.Minute, mr.TTL("metal_rate:gold"))
}

// hookedRateRepo 讀完 db 之後執行 afterRead, 模擬讀取與寫入交錯
type hookedRateRepo struct {
	db.IMetalRateRepository
	afterRead func()
}

func (h *hookedRateRepo) GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	rate, err := h.IMetalRateRepository.GetMetalRate(ctx, metal)
	if h.afterRead != nil {
		h.afterRead()
		h.afterRead = nil
	}
	return rate, err
}

// 讀者拿到舊牌價後, 寫入端提交並更新快取, 讀者的回填不能蓋掉新值
func TestCacheAsideStaleFillDoesNotOverwriteRefresh(t *testing.T) {
	_, store, mr := setupCacheRepo(t)
	ctx := context.Background()
	setRate(t, store, model.MetalGold, 6000)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	cacheRepo := redis_repo.NewMetalRateRedisRepo(client)

	hooked := &hookedRateRepo{IMetalRateRepository: store}
	repo := NewCacheAsideMetalRateRepo(hooked, cacheRepo, time.Minute)
	hooked.afterRead = func() {
		setRate(t, store, model.MetalGold, 7000)
		fresh, err := store.GetMetalRate(ctx, model.MetalGold)
		require.NoError(t, err)
		repo.Refresh(ctx, fresh)
	}

	// 這次讀取本身回傳讀到的舊值
	rate, err := repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(rate.RatePerGram))

	rate, err = repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(7000).Equal(rate.RatePerGram))
}

func TestCacheAsideRefreshFallsBackToDelete(t *testing.T) {
	repo, store, mr := setupCacheRepo(t)
	ctx := context.Background()
	setRate(t, store, model.MetalGold, 6000)

	_, err := repo.GetMetalRate(ctx, model.MetalGold)
	require.NoError(t, err)
	require.True(t, mr.Exists("metal_rate:gold"))

	// key 型別錯誤時 HSET 失敗, 改為刪除
	mr.Del("metal_rate:gold")
	require.NoError(t, mr.Set("metal_rate:gold", "corrupted"))
	repo.Refresh(ctx, &model.MetalRate{MetalType: model.MetalGold, RatePerGram: decimal.NewFromInt(7000)})
	require.False(t, mr.Exists("metal_rate:gold"))
}

func TestCacheAsideFallsBackWhenRedisDown(t *testing.T) {
	repo, store, mr := setupCacheRepo(t)
	ctx := context.Background()
	setRate(t, store, model.MetalSilver, 85)

	mr.Close()

	rate, err := repo.GetMetalRate(ctx, model.MetalSilver)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(85).Equal(rate.RatePerGram))
}

func TestCacheAsideListSkipsUnconfigured(t *testing.T) {
	repo, store, _ := setupCacheRepo(t)
	ctx := context.Background()
	setRate(t, store, model.MetalGold, 6000)

	rates, err := repo.ListMetalRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	require.Equal(t, model.MetalGold, rates[0].MetalType)

	_, err = repo.GetMetalRate(ctx, model.MetalSilver)
	require.True(t, db.IsNotFound(err))
}

func TestCacheAsideWithoutRedis(t *testing.T) {
	conn, err := db.GetSqliteConn(db.InMemorySqliteDSN(uuid.NewString()))
	require.NoError(t, err)
	store := db.NewStore(db.NewDbDao(conn))
	require.NoError(t, store.InitMigrate())
	defer store.Close()

	repo := NewCacheAsideMetalRateRepo(store, nil, time.Minute)
	setRate(t, store, model.MetalGold, 6000)

	rate, err := repo.GetMetalRate(context.Background(), model.MetalGold)
	require.NoError(t, err)
	require.True(t, decimal.NewFromInt(6000).Equal(rate.RatePerGram))
	repo.Refresh(context.Background(), rate)
}
