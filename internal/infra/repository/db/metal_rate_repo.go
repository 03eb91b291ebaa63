package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"gorm.io/gorm/clause"
)

type MetalRateRepo struct {
	dbDao *DbDao
}

func NewMetalRateRepo(dbDao *DbDao) *MetalRateRepo {
	return &MetalRateRepo{dbDao: dbDao}
}

func (r *MetalRateRepo) GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	var rate model.MetalRate
	err := r.dbDao.withCtx(ctx).Where("metal_type = ?", metal).First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// GetMetalRateForUpdate 在交易內鎖住該列, sqlite 會忽略 FOR UPDATE
func (r *MetalRateRepo) GetMetalRateForUpdate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error) {
	var rate model.MetalRate
	err := r.dbDao.withCtx(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("metal_type = ?", metal).
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func (r *MetalRateRepo) ListMetalRates(ctx context.Context) ([]model.MetalRate, error) {
	var rates []model.MetalRate
	err := r.dbDao.withCtx(ctx).Order("metal_type").Find(&rates).Error
	return rates, err
}

// UpsertMetalRate 覆寫該金屬唯一的一筆
func (r *MetalRateRepo) UpsertMetalRate(ctx context.Context, rate *model.MetalRate) error {
	return r.dbDao.withCtx(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "metal_type"}},
		DoUpdates: clause.AssignmentColumns([]string{"rate_per_gram", "updated_at", "updated_by"}),
	}).Create(rate).Error
}

// CreateMetalRateIfNotExists seed 用, 已存在不覆寫
func (r *MetalRateRepo) CreateMetalRateIfNotExists(ctx context.Context, rate *model.MetalRate) error {
	return r.dbDao.withCtx(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(rate).Error
}

func (r *MetalRateRepo) CreateRateHistory(ctx context.Context, history *model.MetalRateHistory) error {
	return r.dbDao.withCtx(ctx).Create(history).Error
}

func (r *MetalRateRepo) ListRateHistory(ctx context.Context, metal model.MetalType, limit int) ([]model.MetalRateHistory, error) {
	var histories []model.MetalRateHistory
	err := r.dbDao.withCtx(ctx).
		Where("metal_type = ?", metal).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&histories).Error
	return histories, err
}
