package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type DesignRequestRepo struct {
	dbDao *DbDao
}

func NewDesignRequestRepo(dbDao *DbDao) *DesignRequestRepo {
	return &DesignRequestRepo{dbDao: dbDao}
}

func (r *DesignRequestRepo) CreateDesignRequest(ctx context.Context, req *model.CustomDesignRequest) error {
	return r.dbDao.withCtx(ctx).Create(req).Error
}

// GetDesignRequestForUpdate 狀態轉換前鎖住該筆需求
func (r *DesignRequestRepo) GetDesignRequestForUpdate(ctx context.Context, id uuid.UUID) (*model.CustomDesignRequest, error) {
	var req model.CustomDesignRequest
	err := r.dbDao.withCtx(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *DesignRequestRepo) UpdateDesignRequest(ctx context.Context, req *model.CustomDesignRequest) error {
	return r.dbDao.withCtx(ctx).Save(req).Error
}

func (r *DesignRequestRepo) ListDesignRequestsByUser(ctx context.Context, userID uuid.UUID) ([]model.CustomDesignRequest, error) {
	var reqs []model.CustomDesignRequest
	err := r.dbDao.withCtx(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

// ListDesignRequests status 為 nil 時列出全部
func (r *DesignRequestRepo) ListDesignRequests(ctx context.Context, status *model.DesignStatus) ([]model.CustomDesignRequest, error) {
	var reqs []model.CustomDesignRequest
	query := r.dbDao.withCtx(ctx)
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.Order("created_at DESC").Find(&reqs).Error
	return reqs, err
}
