package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
)

type CartHandler struct {
	cartService service.ICartService
}

func NewCartHandler(cartService service.ICartService) *CartHandler {
	if cartService == nil {
		panic("cartService cannot be nil")
	}
	return &CartHandler{cartService: cartService}
}

func (h *CartHandler) writeCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cart, err := h.cartService.GetCart(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertCartToDTO(cart), nil)
}

// @Summary get cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Router /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, r)
}

// @Summary add item
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.AddCartItemDTO true "product and quantity"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	productID, ok := parseUUID(w, req.ProductID, "product_id")
	if !ok {
		return
	}

	ctx := r.Context()
	if _, err := h.cartService.AddItem(ctx, util.GetUserIDFromContext(ctx), productID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w, r)
}

// @Summary set quantity
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param productID path string true "product id"
// @Param body body dto.SetQuantityDTO true "quantity, <= 0 removes the item"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart/items/{productID} [put]
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productID")
	if !ok {
		return
	}
	var req dto.SetQuantityDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	if err := h.cartService.SetQuantity(ctx, util.GetUserIDFromContext(ctx), productID, req.Quantity); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w, r)
}

// @Summary remove item
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param productID path string true "product id"
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart/items/{productID} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productID")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.cartService.RemoveItem(ctx, util.GetUserIDFromContext(ctx), productID); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w, r)
}

// @Summary clear cart
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=dto.CartDTO} "success"
// @Router /cart [delete]
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := h.cartService.Clear(ctx, util.GetUserIDFromContext(ctx)); err != nil {
		writeError(w, err)
		return
	}
	h.writeCart(w, r)
}

// @Summary checkout summary
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=dto.CheckoutSummaryDTO} "success"
// @Router /cart/summary [get]
func (h *CartHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	summary, err := h.cartService.Summary(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.CheckoutSummaryDTO{
		ItemCount: summary.ItemCount,
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
	}, nil)
}
