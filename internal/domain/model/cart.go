package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 單一商品在購物車內的數量上限
const MaxCartQuantity = 99

// CartItem 每個 (user, product) 只有一筆, 1 <= quantity <= MaxCartQuantity
type CartItem struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Product   Product   `gorm:"foreignKey:ProductID" json:"product"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *CartItem) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&c.ID)
	return nil
}

// UnitPrice 商品快照單價 × 重量
func (c *CartItem) UnitPrice() decimal.Decimal {
	return c.Product.DisplayPrice()
}

func (c *CartItem) LineTotal() decimal.Decimal {
	return c.UnitPrice().Mul(decimal.NewFromInt(int64(c.Quantity)))
}

type Cart struct {
	UserID   uuid.UUID
	Items    []CartItem
	Count    int
	Subtotal decimal.Decimal
}

// Subtotal Σ(price_per_gram × weight_grams × quantity), 不含稅與運費
func Subtotal(items []CartItem) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}

// ItemCount 購物車內商品總件數
func ItemCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// CheckoutSummary 結帳頁顯示, 運費固定免費
type CheckoutSummary struct {
	ItemCount int
	Subtotal  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

func NewCheckoutSummary(items []CartItem) CheckoutSummary {
	subtotal := Subtotal(items)
	return CheckoutSummary{
		ItemCount: ItemCount(items),
		Subtotal:  subtotal,
		Shipping:  decimal.Zero,
		Total:     subtotal,
	}
}
