package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
)

type ReviewRepo struct {
	dbDao *DbDao
}

func NewReviewRepo(dbDao *DbDao) *ReviewRepo {
	return &ReviewRepo{dbDao: dbDao}
}

func (r *ReviewRepo) CreateReview(ctx context.Context, review *model.Review) error {
	return r.dbDao.withCtx(ctx).Create(review).Error
}

func (r *ReviewRepo) GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	err := r.dbDao.withCtx(ctx).Where("id = ?", id).First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview 只刪除屬於該使用者的評論
func (r *ReviewRepo) DeleteReview(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	res := r.dbDao.withCtx(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Review{})
	return res.RowsAffected, res.Error
}

func (r *ReviewRepo) ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.dbDao.withCtx(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepo) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.dbDao.withCtx(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepo) ListRecentReviews(ctx context.Context, limit int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.dbDao.withCtx(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error
	return reviews, err
}
