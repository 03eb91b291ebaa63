package db

import (
	"context"
	"errors"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"gorm.io/gorm"
)

type DbDao struct {
	*gorm.DB
}

func NewDbDao(conn *gorm.DB) *DbDao {
	return &DbDao{
		DB: conn,
	}
}

// 初始化db schema
// 冪等性
func (d *DbDao) InitMigrate() error {
	return d.AutoMigrate(
		&model.User{},
		&model.Profile{},
		&model.MetalRate{},
		&model.MetalRateHistory{},
		&model.Product{},
		&model.CartItem{},
		&model.Like{},
		&model.Review{},
		&model.UserRole{},
		&model.CustomDesignRequest{},
	)
}

func (d *DbDao) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func (d *DbDao) withCtx(ctx context.Context) *gorm.DB {
	return d.WithContext(ctx)
}
