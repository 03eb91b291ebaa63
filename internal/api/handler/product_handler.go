package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/export"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
	"github.com/rs/zerolog/log"
)

type ProductHandler struct {
	productService service.IProductService
	reviewService  service.IReviewService
}

func NewProductHandler(productService service.IProductService, reviewService service.IReviewService) *ProductHandler {
	if productService == nil || reviewService == nil {
		panic("product handler missing required service")
	}
	return &ProductHandler{
		productService: productService,
		reviewService:  reviewService,
	}
}

// parseProductFilter 解析商品列表查詢條件
func parseProductFilter(r *http.Request) (model.ProductFilter, error) {
	q := r.URL.Query()
	filter := model.ProductFilter{
		Search: q.Get("search"),
	}
	if v := q.Get("category"); v != "" {
		c := model.Category(v)
		filter.Category = &c
	}
	if v := q.Get("metal_type"); v != "" {
		m := model.MetalType(v)
		filter.MetalType = &m
	}
	if v := q.Get("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			return filter, fmt.Errorf("invalid featured: %w", err)
		}
		filter.FeaturedOnly = featured
	}

	var err error
	if filter.Page, err = queryInt(r, "page"); err != nil {
		return filter, fmt.Errorf("invalid page: %w", err)
	}
	if filter.PageSize, err = queryInt(r, "page_size"); err != nil {
		return filter, fmt.Errorf("invalid page_size: %w", err)
	}
	return filter, nil
}

// @Summary list products
// @Tags products
// @Produce json
// @Param category query string false "rings, necklaces, earrings"
// @Param metal_type query string false "gold or silver"
// @Param featured query bool false "featured only"
// @Param search query string false "name contains"
// @Param page query int false "page"
// @Param page_size query int false "page size"
// @Success 200 {object} api.Response{data=dto.ProductListDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Router /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		badRequest(w, err.Error())
		return
	}

	products, total, err := h.productService.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}

	page, pageSize := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	api.SuccessJSON(w, dto.ProductListDTO{
		Items:    convertProductViewsToDTO(products),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil)
}

// @Summary get product
// @Tags products
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProductViewToDTO(*product), nil)
}

// @Summary product reviews
// @Tags reviews
// @Produce json
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=dto.ProductReviewsDTO} "success"
// @Router /products/{id}/reviews [get]
func (h *ProductHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListProductReviews(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ProductReviewsDTO{
		Reviews:       convertReviewViewsToDTO(reviews.Reviews),
		AverageRating: reviews.Summary.Average,
		Count:         reviews.Summary.Count,
	}, nil)
}

// @Summary create product
// @Description price_per_gram is taken from the current metal rate
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ProductFieldsDTO true "product fields"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 405 {object} api.ResponseError{data=string} "InvalidOperationCode, rate not configured"
// @Router /admin/products [post]
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req dto.ProductFieldsDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	product, err := h.productService.CreateProduct(ctx, util.GetUserIDFromContext(ctx), convertProductFields(req))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProductViewToDTO(*product), nil)
}

// @Summary update product
// @Description re-saving refreshes the price snapshot
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Param body body dto.ProductFieldsDTO true "product fields"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/products/{id} [put]
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}
	var req dto.ProductFieldsDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	ctx := r.Context()
	product, err := h.productService.UpdateProduct(ctx, util.GetUserIDFromContext(ctx), id, convertProductFields(req))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProductViewToDTO(*product), nil)
}

// @Summary reprice product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=dto.ProductDTO} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/products/{id}/reprice [post]
func (h *ProductHandler) RepriceProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	product, err := h.productService.RepriceProduct(ctx, util.GetUserIDFromContext(ctx), id)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProductViewToDTO(*product), nil)
}

// @Summary delete product
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "product id"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.productService.DeleteProduct(ctx, util.GetUserIDFromContext(ctx), id); err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, "deleted", nil)
}

// @Summary seed collection
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.SeedProductsDTO true "products"
// @Success 200 {object} api.Response{data=dto.SeedProductsResponse} "success"
// @Failure 405 {object} api.ResponseError{data=string} "InvalidOperationCode, rate not configured"
// @Router /admin/products/seed [post]
func (h *ProductHandler) SeedCollection(w http.ResponseWriter, r *http.Request) {
	var req dto.SeedProductsDTO
	if !decodeJSON(w, r, &req) {
		return
	}

	items := make([]service.ProductFields, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, convertProductFields(p))
	}

	ctx := r.Context()
	created, err := h.productService.SeedCollection(ctx, util.GetUserIDFromContext(ctx), items)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.SeedProductsResponse{Created: len(created)}, nil)
}

// @Summary export products
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file "products.xlsx"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Router /admin/products/export [get]
func (h *ProductHandler) ExportProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var buf bytes.Buffer
	if err := h.productService.ExportProducts(ctx, util.GetUserIDFromContext(ctx), &buf); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", export.XLSXContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="products.xlsx"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Str("request_id", util.GetRequestIDFromContext(ctx)).Msg("write product export failed")
	}
}
