package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type LikeRepo struct {
	dbDao *DbDao
}

func NewLikeRepo(dbDao *DbDao) *LikeRepo {
	return &LikeRepo{dbDao: dbDao}
}

// CreateLikeIfNotExists 重複按讚不報錯
func (r *LikeRepo) CreateLikeIfNotExists(ctx context.Context, userID, productID uuid.UUID) error {
	return r.dbDao.withCtx(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.Like{UserID: userID, ProductID: productID}).Error
}

func (r *LikeRepo) DeleteLike(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	res := r.dbDao.withCtx(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.Like{})
	return res.RowsAffected, res.Error
}

func (r *LikeRepo) ListLikedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.dbDao.withCtx(ctx).
		Model(&model.Like{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Pluck("product_id", &ids).Error
	return ids, err
}

// ListLikedProducts 個人頁的收藏清單
func (r *LikeRepo) ListLikedProducts(ctx context.Context, userID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.dbDao.withCtx(ctx).
		Model(&model.Product{}).
		Joins("JOIN likes ON likes.product_id = products.id").
		Where("likes.user_id = ?", userID).
		Order("likes.created_at DESC").
		Find(&products).Error
	return products, err
}
