package db

import (
	"context"
	"errors"
	"time"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/*
購物車每個 (user_id, product_id) 只有一筆
新增使用單一 upsert, 不做先查後寫
*/
type CartRepo struct {
	dbDao *DbDao
}

func NewCartRepo(dbDao *DbDao) *CartRepo {
	return &CartRepo{dbDao: dbDao}
}

// ErrCartQuantityLimit 累加後超過 model.MaxCartQuantity, 原數量不變
var ErrCartQuantityLimit = errors.New("cart quantity limit exceeded")

var cartConflictColumns = []clause.Column{{Name: "user_id"}, {Name: "product_id"}}

// AddCartItem 已存在則累加數量
// INSERT ... ON CONFLICT (user_id, product_id) DO UPDATE SET quantity = cart_items.quantity + excluded.quantity
// WHERE cart_items.quantity + excluded.quantity <= MaxCartQuantity
// 上限在同一句 SQL 內判斷, 併發累加也不會超過
func (r *CartRepo) AddCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	if quantity > model.MaxCartQuantity {
		return ErrCartQuantityLimit
	}
	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	res := r.dbDao.withCtx(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: cartConflictColumns,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + excluded.quantity"),
				"updated_at": time.Now(),
			}),
			Where: clause.Where{Exprs: []clause.Expression{
				gorm.Expr("cart_items.quantity + excluded.quantity <= ?", model.MaxCartQuantity),
			}},
		}).
		Create(item)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrCartQuantityLimit
	}
	return nil
}

// SetCartItemQuantity 直接寫入絕對數量, 後寫者為準
func (r *CartRepo) SetCartItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error {
	item := &model.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	return r.dbDao.withCtx(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   cartConflictColumns,
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(item).Error
}

func (r *CartRepo) DeleteCartItem(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	res := r.dbDao.withCtx(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItem{})
	return res.RowsAffected, res.Error
}

func (r *CartRepo) ClearCart(ctx context.Context, userID uuid.UUID) error {
	return r.dbDao.withCtx(ctx).Where("user_id = ?", userID).Delete(&model.CartItem{}).Error
}

func (r *CartRepo) GetCartItem(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error) {
	var item model.CartItem
	err := r.dbDao.withCtx(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListCartItems 最新加入的在前, 帶出商品資料計算金額
func (r *CartRepo) ListCartItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.dbDao.withCtx(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&items).Error
	return items, err
}
