package service

import (
	"context"
	"errors"
	"fmt"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
)

type ICartService interface {
	// AddItem 已在購物車內則累加數量, qty <= 0 視為 1
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.BadRequestCode 400: 累加後超過 model.MaxCartQuantity
	//   - er.NotFoundCode: 商品不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*model.CartItem, error)

	// SetQuantity qty <= 0 時移除該商品, 超過 model.MaxCartQuantity 回 er.BadRequestCode
	// 錯誤: 同 AddItem
	SetQuantity(ctx context.Context, userID, productID uuid.UUID, qty int) error

	// RemoveItem 商品不在購物車內也視為成功
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	RemoveItem(ctx context.Context, userID, productID uuid.UUID) error

	// Clear 清空自己的購物車
	// 錯誤: 同 RemoveItem
	Clear(ctx context.Context, userID uuid.UUID) error

	// GetCart 新加入的在前
	// 錯誤: 同 RemoveItem
	GetCart(ctx context.Context, userID uuid.UUID) (*model.Cart, error)

	// Summary 結帳頁金額
	// 錯誤: 同 RemoveItem
	Summary(ctx context.Context, userID uuid.UUID) (*model.CheckoutSummary, error)
}

func quantityLimitErr() error {
	return er.New(er.BadRequestCode, fmt.Sprintf("quantity per item cannot exceed %d", model.MaxCartQuantity))
}

type CartService struct {
	store db.IStore
}

var _ ICartService = (*CartService)(nil)

func NewCartService(store db.IStore) ICartService {
	if store == nil {
		panic("cart service missing required dependency store")
	}
	return &CartService{store: store}
}

func (s *CartService) AddItem(ctx context.Context, userID, productID uuid.UUID, qty int) (*model.CartItem, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if qty <= 0 {
		qty = 1
	}
	if qty > model.MaxCartQuantity {
		return nil, quantityLimitErr()
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return nil, err
	}

	if err := s.store.AddCartItem(ctx, userID, productID, qty); err != nil {
		if errors.Is(err, db.ErrCartQuantityLimit) {
			return nil, quantityLimitErr()
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	item, err := s.store.GetCartItem(ctx, userID, productID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return item, nil
}

func (s *CartService) SetQuantity(ctx context.Context, userID, productID uuid.UUID, qty int) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if qty <= 0 {
		return s.RemoveItem(ctx, userID, productID)
	}
	if qty > model.MaxCartQuantity {
		return quantityLimitErr()
	}
	if err := s.ensureProduct(ctx, productID); err != nil {
		return err
	}

	if err := s.store.SetCartItemQuantity(ctx, userID, productID, qty); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if _, err := s.store.DeleteCartItem(ctx, userID, productID); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}
	if err := s.store.ClearCart(ctx, userID); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *CartService) GetCart(ctx context.Context, userID uuid.UUID) (*model.Cart, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	items, err := s.store.ListCartItems(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	return &model.Cart{
		UserID:   userID,
		Items:    items,
		Count:    model.ItemCount(items),
		Subtotal: model.Subtotal(items),
	}, nil
}

func (s *CartService) Summary(ctx context.Context, userID uuid.UUID) (*model.CheckoutSummary, error) {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := model.NewCheckoutSummary(cart.Items)
	return &summary, nil
}

func (s *CartService) ensureProduct(ctx context.Context, productID uuid.UUID) error {
	ok, err := s.store.ExistsProduct(ctx, productID)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	if !ok {
		return er.New(er.NotFoundCode, "product not found")
	}
	return nil
}
