package handler

import (
	"net/http"

	"github.com/RoyceAzure/rj/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/dto"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/Sathish182603/Gleam-Heaven/internal/util"
)

type ReviewHandler struct {
	reviewService service.IReviewService
	likeService   service.ILikeService
}

func NewReviewHandler(reviewService service.IReviewService, likeService service.ILikeService) *ReviewHandler {
	if reviewService == nil || likeService == nil {
		panic("review handler missing required service")
	}
	return &ReviewHandler{
		reviewService: reviewService,
		likeService:   likeService,
	}
}

// @Summary create review
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateReviewDTO true "rating 1-5 and comment"
// @Success 200 {object} api.Response{data=dto.ReviewDTO} "success"
// @Failure 400 {object} api.ResponseError{data=string} "BadRequestCode"
// @Failure 401 {object} api.ResponseError{data=string} "UnauthenticatedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateReviewDTO
	if !decodeJSON(w, r, &req) {
		return
	}
	productID, ok := parseUUID(w, req.ProductID, "product_id")
	if !ok {
		return
	}

	ctx := r.Context()
	review, err := h.reviewService.CreateReview(ctx, util.GetUserIDFromContext(ctx), productID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ReviewDTO{
		ID:        review.ID.String(),
		ProductID: review.ProductID.String(),
		UserID:    review.UserID.String(),
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}, nil)
}

// @Summary delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "review id"
// @Success 200 {object} api.Response{data=string} "success"
// @Failure 403 {object} api.ResponseError{data=string} "UnauthorizedCode"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	ctx := r.Context()
	if err := h.reviewService.DeleteReview(ctx, util.GetUserIDFromContext(ctx), id); err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, "deleted", nil)
}

// @Summary my reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]dto.ReviewDTO} "success"
// @Router /reviews/mine [get]
func (h *ReviewHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reviews, err := h.reviewService.ListUserReviews(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertReviewViewsToDTO(reviews), nil)
}

// @Summary recent reviews
// @Tags reviews
// @Produce json
// @Param limit query int false "max rows"
// @Success 200 {object} api.Response{data=[]dto.ReviewDTO} "success"
// @Router /reviews/recent [get]
func (h *ReviewHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		badRequest(w, "invalid limit")
		return
	}

	reviews, err := h.reviewService.ListRecentReviews(r.Context(), limit)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertReviewViewsToDTO(reviews), nil)
}

// @Summary toggle like
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param productID path string true "product id"
// @Success 200 {object} api.Response{data=dto.ToggleLikeResponse} "success"
// @Failure 404 {object} api.ResponseError{data=string} "NotFoundCode"
// @Router /likes/{productID}/toggle [post]
func (h *ReviewHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	productID, ok := uuidParam(w, r, "productID")
	if !ok {
		return
	}

	ctx := r.Context()
	liked, err := h.likeService.ToggleLike(ctx, util.GetUserIDFromContext(ctx), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, dto.ToggleLikeResponse{Liked: liked}, nil)
}

// @Summary liked products
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} api.Response{data=[]dto.ProductDTO} "success"
// @Router /likes [get]
func (h *ReviewHandler) ListLikes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	products, err := h.likeService.ListLikedProducts(ctx, util.GetUserIDFromContext(ctx))
	if err != nil {
		writeError(w, err)
		return
	}
	api.SuccessJSON(w, convertProductViewsToDTO(products), nil)
}
