package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm/clause"
)

type UserRoleRepo struct {
	dbDao *DbDao
}

func NewUserRoleRepo(dbDao *DbDao) *UserRoleRepo {
	return &UserRoleRepo{dbDao: dbDao}
}

// AssignRoleIfNotExists (user_id, role) 已存在時不做事
func (r *UserRoleRepo) AssignRoleIfNotExists(ctx context.Context, userRole *model.UserRole) error {
	return r.dbDao.withCtx(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(userRole).Error
}

func (r *UserRoleRepo) RemoveRole(ctx context.Context, userID uuid.UUID, role model.RoleName) (int64, error) {
	res := r.dbDao.withCtx(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&model.UserRole{})
	return res.RowsAffected, res.Error
}

func (r *UserRoleRepo) HasRole(ctx context.Context, userID uuid.UUID, role model.RoleName) (bool, error) {
	var count int64
	err := r.dbDao.withCtx(ctx).
		Model(&model.UserRole{}).
		Where("user_id = ? AND role = ?", userID, role).
		Count(&count).Error
	return count > 0, err
}

// LockRoleHolders 在交易內鎖住某角色所有持有者, 用於最後一位管理者檢查
func (r *UserRoleRepo) LockRoleHolders(ctx context.Context, role model.RoleName) ([]model.UserRole, error) {
	var roles []model.UserRole
	err := r.dbDao.withCtx(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("role = ?", role).
		Find(&roles).Error
	return roles, err
}

func (r *UserRoleRepo) ListRolesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]model.UserRole, error) {
	var roles []model.UserRole
	if len(userIDs) == 0 {
		return roles, nil
	}
	err := r.dbDao.withCtx(ctx).Where("user_id IN ?", userIDs).Find(&roles).Error
	return roles, err
}
