package db

import (
	"context"
	"strings"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
)

type UserRepo struct {
	dbDao *DbDao
}

func NewUserRepo(dbDao *DbDao) *UserRepo {
	return &UserRepo{dbDao: dbDao}
}

// Create - 創建用戶
func (s *UserRepo) CreateUser(ctx context.Context, user *model.User) error {
	return s.dbDao.withCtx(ctx).Create(user).Error
}

func (s *UserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := s.dbDao.withCtx(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Read - 根據Email查詢用戶, email 一律小寫儲存
func (s *UserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := s.dbDao.withCtx(ctx).Where("email = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserRepo) CreateProfile(ctx context.Context, profile *model.Profile) error {
	return s.dbDao.withCtx(ctx).Create(profile).Error
}

func (s *UserRepo) GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	err := s.dbDao.withCtx(ctx).Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update - 部分更新個人資料
func (s *UserRepo) UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error {
	return s.dbDao.withCtx(ctx).
		Model(&model.Profile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}

func (s *UserRepo) ListProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]model.Profile, error) {
	var profiles []model.Profile
	if len(userIDs) == 0 {
		return profiles, nil
	}
	err := s.dbDao.withCtx(ctx).Where("user_id IN ?", userIDs).Find(&profiles).Error
	return profiles, err
}

func (s *UserRepo) ListProfiles(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	err := s.dbDao.withCtx(ctx).Order("created_at DESC").Find(&profiles).Error
	return profiles, err
}
