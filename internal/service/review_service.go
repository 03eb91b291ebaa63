package service

import (
	"context"
	"strings"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
)

const maxCommentLength = 2000

// ProductReviews 商品頁評論區
type ProductReviews struct {
	Reviews []model.ReviewView
	Summary model.RatingSummary
}

type IReviewService interface {
	// CreateReview rating 必須介於 1 到 5
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.BadRequestCode 400: 評分超出範圍或留言過長
	//   - er.NotFoundCode: 商品不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	CreateReview(ctx context.Context, userID, productID uuid.UUID, rating int, comment string) (*model.Review, error)

	// DeleteReview 只能刪除自己的評論
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.NotFoundCode: 評論不存在
	//   - er.UnauthorizedCode 403: 不是評論作者
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error

	// ListProductReviews 新的在前, 附上評分彙總
	// 錯誤:
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviews, error)

	// ListUserReviews 個人頁, 附上商品名稱
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListUserReviews(ctx context.Context, userID uuid.UUID) ([]model.ReviewView, error)

	// ListRecentReviews 首頁顧客評價
	// 錯誤:
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListRecentReviews(ctx context.Context, limit int) ([]model.ReviewView, error)
}

type ReviewService struct {
	store db.IStore
}

var _ IReviewService = (*ReviewService)(nil)

func NewReviewService(store db.IStore) IReviewService {
	if store == nil {
		panic("review service missing required dependency store")
	}
	return &ReviewService{store: store}
}

func (s *ReviewService) CreateReview(ctx context.Context, userID, productID uuid.UUID, rating int, comment string) (*model.Review, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}
	if !model.IsValidRating(rating) {
		return nil, er.New(er.BadRequestCode, "rating must be between 1 and 5")
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, er.New(er.BadRequestCode, "comment is too long")
	}

	ok, err := s.store.ExistsProduct(ctx, productID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	if !ok {
		return nil, er.New(er.NotFoundCode, "product not found")
	}

	review := &model.Review{
		UserID:    userID,
		ProductID: productID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: timeNow(),
	}
	if err := s.store.CreateReview(ctx, review); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return review, nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, userID, reviewID uuid.UUID) error {
	if err := requireUser(userID); err != nil {
		return err
	}

	review, err := s.store.GetReviewByID(ctx, reviewID)
	if err != nil {
		if db.IsNotFound(err) {
			return er.New(er.NotFoundCode, "review not found")
		}
		return er.New(er.InternalErrorCode, err.Error())
	}
	if review.UserID != userID {
		return er.New(er.UnauthorizedCode, "only the author can delete this review")
	}

	if _, err := s.store.DeleteReview(ctx, reviewID, userID); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ReviewService) ListProductReviews(ctx context.Context, productID uuid.UUID) (*ProductReviews, error) {
	reviews, err := s.store.ListReviewsByProduct(ctx, productID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	views, err := s.toViews(ctx, reviews, false)
	if err != nil {
		return nil, err
	}
	return &ProductReviews{
		Reviews: views,
		Summary: model.SummarizeRatings(reviews),
	}, nil
}

func (s *ReviewService) ListUserReviews(ctx context.Context, userID uuid.UUID) ([]model.ReviewView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	reviews, err := s.store.ListReviewsByUser(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return s.toViews(ctx, reviews, true)
}

func (s *ReviewService) ListRecentReviews(ctx context.Context, limit int) ([]model.ReviewView, error) {
	if limit <= 0 || limit > constants.MaxPagingSize {
		limit = constants.DefaultRecentReviewLimit
	}

	reviews, err := s.store.ListRecentReviews(ctx, limit)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return s.toViews(ctx, reviews, true)
}

// toViews 一次查出評論者資料, 沒有 profile 的顯示為匿名
func (s *ReviewService) toViews(ctx context.Context, reviews []model.Review, withProduct bool) ([]model.ReviewView, error) {
	views := make([]model.ReviewView, 0, len(reviews))
	if len(reviews) == 0 {
		return views, nil
	}

	userIDs := make([]uuid.UUID, 0, len(reviews))
	productIDs := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		userIDs = append(userIDs, r.UserID)
		productIDs = append(productIDs, r.ProductID)
	}

	profiles, err := s.store.ListProfilesByUserIDs(ctx, uniqueIDs(userIDs))
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	profileMap := make(map[uuid.UUID]*model.Profile, len(profiles))
	for i := range profiles {
		profileMap[profiles[i].UserID] = &profiles[i]
	}

	productNames := make(map[uuid.UUID]string)
	if withProduct {
		products, err := s.store.ListProductsByIDs(ctx, uniqueIDs(productIDs))
		if err != nil {
			return nil, er.New(er.InternalErrorCode, err.Error())
		}
		for _, p := range products {
			productNames[p.ID] = p.Name
		}
	}

	for _, r := range reviews {
		views = append(views, model.ReviewView{
			Review:      r,
			Reviewer:    model.ResolveReviewer(r.UserID, profileMap[r.UserID]),
			ProductName: productNames[r.ProductID],
		})
	}
	return views, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
