package service

import (
	"context"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IMetalRateCache 讀取走快取, 交易提交後由 service 呼叫 Refresh
type IMetalRateCache interface {
	GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error)
	ListMetalRates(ctx context.Context) ([]model.MetalRate, error)
	Refresh(ctx context.Context, rate *model.MetalRate)
}

// RateUpdate 後台一次更新金銀牌價, nil 表示不更新
type RateUpdate struct {
	Gold   *decimal.Decimal
	Silver *decimal.Decimal
}

func (u RateUpdate) entries() map[model.MetalType]decimal.Decimal {
	out := make(map[model.MetalType]decimal.Decimal, 2)
	if u.Gold != nil {
		out[model.MetalGold] = *u.Gold
	}
	if u.Silver != nil {
		out[model.MetalSilver] = *u.Silver
	}
	return out
}

type IMetalRateService interface {
	// GetRates 不需登入, 未設定的金屬不在結果中
	// 錯誤:
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	GetRates(ctx context.Context) (map[model.MetalType]model.MetalRate, error)

	// GetRate 取得單一金屬牌價
	// 錯誤:
	//   - er.BadRequestCode 400: 無效的金屬類型
	//   - er.NotFoundCode: 牌價尚未設定
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	GetRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error)

	// SetRate 覆寫單一金屬牌價, 並寫入歷史紀錄
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.BadRequestCode 400: 無效的金屬類型或牌價
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	SetRate(ctx context.Context, actor uuid.UUID, metal model.MetalType, rate decimal.Decimal) (*model.MetalRate, error)

	// SetRates 同一個交易內更新多個牌價
	// 錯誤: 同 SetRate, 沒有任何牌價時回傳 er.BadRequestCode
	SetRates(ctx context.Context, actor uuid.UUID, update RateUpdate) ([]model.MetalRate, error)

	// ListRateHistory 牌價異動紀錄, 新的在前
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.BadRequestCode 400: 無效的金屬類型
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListRateHistory(ctx context.Context, actor uuid.UUID, metal model.MetalType, limit int) ([]model.MetalRateHistory, error)
}

type MetalRateService struct {
	store     db.IStore
	cache     IMetalRateCache
	publisher eventPublisher
}

var _ IMetalRateService = (*MetalRateService)(nil)

func NewMetalRateService(store db.IStore, cache IMetalRateCache, publisher producer.IEventPublisher) IMetalRateService {
	if store == nil {
		panic("metal rate service missing required dependency store")
	}
	if cache == nil {
		panic("metal rate service missing required dependency cache")
	}
	return &MetalRateService{
		store:     store,
		cache:     cache,
		publisher: newEventPublisher(publisher),
	}
}

func (s *MetalRateService) GetRates(ctx context.Context) (map[model.MetalType]model.MetalRate, error) {
	rates, err := s.cache.ListMetalRates(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	out := make(map[model.MetalType]model.MetalRate, len(rates))
	for _, rate := range rates {
		out[rate.MetalType] = rate
	}
	return out, nil
}

func (s *MetalRateService) GetRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	if !metal.IsValid() {
		return nil, er.New(er.BadRequestCode, "invalid metal type")
	}

	rate, err := s.cache.GetMetalRate(ctx, metal)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.NotFoundCode, ErrMsgRateNotConfigured)
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return rate, nil
}

func (s *MetalRateService) SetRate(ctx context.Context, actor uuid.UUID, metal model.MetalType, rate decimal.Decimal) (*model.MetalRate, error) {
	rates, err := s.setRates(ctx, actor, map[model.MetalType]decimal.Decimal{metal: rate})
	if err != nil {
		return nil, err
	}
	return &rates[0], nil
}

func (s *MetalRateService) SetRates(ctx context.Context, actor uuid.UUID, update RateUpdate) ([]model.MetalRate, error) {
	entries := update.entries()
	if len(entries) == 0 {
		return nil, er.New(er.BadRequestCode, "no rate provided")
	}
	return s.setRates(ctx, actor, entries)
}

func (s *MetalRateService) setRates(ctx context.Context, actor uuid.UUID, entries map[model.MetalType]decimal.Decimal) ([]model.MetalRate, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}

	normalized := make(map[model.MetalType]decimal.Decimal, len(entries))
	for metal, rate := range entries {
		if !metal.IsValid() {
			return nil, er.New(er.BadRequestCode, "invalid metal type")
		}
		rate = model.NormalizeRate(rate)
		if !rate.IsPositive() {
			return nil, er.New(er.BadRequestCode, "rate per gram must be at least 0.01")
		}
		if rate.GreaterThan(model.MaxRatePerGram) {
			return nil, er.New(er.BadRequestCode, "rate per gram is too large")
		}
		normalized[metal] = rate
	}
	entries = normalized

	var (
		saved  []model.MetalRate
		events []model.Event
	)
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		saved = saved[:0]
		events = events[:0]

		// 固定順序上鎖
		for _, metal := range model.AllMetalTypes {
			rate, ok := entries[metal]
			if !ok {
				continue
			}

			previous := decimal.NullDecimal{}
			current, err := tx.GetMetalRateForUpdate(ctx, metal)
			if err != nil && !db.IsNotFound(err) {
				return err
			}
			if current != nil {
				previous = decimal.NewNullDecimal(current.RatePerGram)
			}

			row := model.MetalRate{
				MetalType:   metal,
				RatePerGram: rate,
				UpdatedAt:   timeNow(),
				UpdatedBy:   &actor,
			}
			if err := tx.UpsertMetalRate(ctx, &row); err != nil {
				return err
			}
			if err := tx.CreateRateHistory(ctx, &model.MetalRateHistory{
				MetalType:    metal,
				RatePerGram:  row.RatePerGram,
				PreviousRate: previous,
				ChangedBy:    &actor,
				CreatedAt:    row.UpdatedAt,
			}); err != nil {
				return err
			}

			saved = append(saved, row)
			events = append(events, model.MetalRateUpdatedEvent{
				BaseEvent:    model.NewBaseEvent(model.MetalRateUpdatedEventName, string(metal)),
				MetalType:    metal,
				RatePerGram:  row.RatePerGram,
				PreviousRate: previous,
				UpdatedBy:    actor,
			})
		}
		return nil
	})
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	for i := range saved {
		s.cache.Refresh(ctx, &saved[i])
		s.publisher.publish(events[i])
	}
	return saved, nil
}

func (s *MetalRateService) ListRateHistory(ctx context.Context, actor uuid.UUID, metal model.MetalType, limit int) ([]model.MetalRateHistory, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	if !metal.IsValid() {
		return nil, er.New(er.BadRequestCode, "invalid metal type")
	}
	if limit <= 0 || limit > constants.MaxPagingSize {
		limit = constants.DefaultRateHistoryLimit
	}

	history, err := s.store.ListRateHistory(ctx, metal, limit)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return history, nil
}
