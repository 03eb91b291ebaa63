package dto

import "github.com/shopspring/decimal"

type CartItemDTO struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url"`
	MetalType string          `json:"metal_type"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type CartDTO struct {
	Items    []CartItemDTO   `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type AddCartItemDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"` //未帶或 <= 0 視為 1
}

type SetQuantityDTO struct {
	Quantity int `json:"quantity"` //<= 0 移除
}

type CheckoutSummaryDTO struct {
	ItemCount int             `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}
