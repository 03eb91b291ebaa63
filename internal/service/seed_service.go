package service

import (
	"context"
	"fmt"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/config"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/shopspring/decimal"
)

type SeedResult struct {
	RatesCreated    int
	ProductsCreated int
}

// ProductFieldsFromSeed 將 yaml 商品轉成表單欄位
// 錯誤:
//   - er.BadRequestCode 400: 重量格式錯誤
func ProductFieldsFromSeed(items []config.SeedProduct) ([]ProductFields, error) {
	fields := make([]ProductFields, 0, len(items))
	for i, item := range items {
		weight, err := decimal.NewFromString(item.WeightGrams)
		if err != nil {
			return nil, er.New(er.BadRequestCode, fmt.Sprintf("seed product %d: invalid weight_grams %q", i, item.WeightGrams))
		}
		fields = append(fields, ProductFields{
			Name:        item.Name,
			Description: item.Description,
			Category:    model.Category(item.Category),
			MetalType:   model.MetalType(item.MetalType),
			WeightGrams: weight,
			IsFeatured:  item.IsFeatured,
			ImageURL:    item.ImageURL,
		})
	}
	return fields, nil
}

// SeedCatalog cli 初始化資料用
// 牌價已存在時不覆寫, 已有商品時不再新增
func SeedCatalog(ctx context.Context, store db.IStore, seed *config.SeedConfig) (*SeedResult, error) {
	result := &SeedResult{}

	for _, r := range seed.Rates {
		metal := model.MetalType(r.MetalType)
		if !metal.IsValid() {
			return nil, er.New(er.BadRequestCode, "invalid seed metal type "+r.MetalType)
		}
		rate, err := decimal.NewFromString(r.RatePerGram)
		rate = model.NormalizeRate(rate)
		if err != nil || !rate.IsPositive() || rate.GreaterThan(model.MaxRatePerGram) {
			return nil, er.New(er.BadRequestCode, "invalid seed rate for "+r.MetalType)
		}

		if _, err := store.GetMetalRate(ctx, metal); err == nil {
			continue
		} else if !db.IsNotFound(err) {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}

		if err := store.CreateMetalRateIfNotExists(ctx, &model.MetalRate{
			MetalType:   metal,
			RatePerGram: rate,
			UpdatedAt:   timeNow(),
		}); err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
		result.RatesCreated++
	}

	existing, err := store.ListAllProducts(ctx)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if len(existing) > 0 || len(seed.Products) == 0 {
		return result, nil
	}

	fields, err := ProductFieldsFromSeed(seed.Products)
	if err != nil {
		return nil, err
	}
	products, err := seedProducts(ctx, store, fields, nil)
	if err != nil {
		return nil, err
	}
	result.ProductsCreated = len(products)
	return result, nil
}
