package service

import (
	"context"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
)

type ILikeService interface {
	// ToggleLike 回傳切換後是否為收藏狀態
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.NotFoundCode: 商品不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ToggleLike(ctx context.Context, userID, productID uuid.UUID) (bool, error)

	// ListLikedProducts 個人頁收藏清單
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListLikedProducts(ctx context.Context, userID uuid.UUID) ([]model.ProductView, error)

	// LikedProductIDs 商品列表標示愛心用
	// 錯誤: 同 ListLikedProducts
	LikedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type LikeService struct {
	store db.IStore
}

var _ ILikeService = (*LikeService)(nil)

func NewLikeService(store db.IStore) ILikeService {
	if store == nil {
		panic("like service missing required dependency store")
	}
	return &LikeService{store: store}
}

// ToggleLike 先刪除, 沒有刪到才新增
func (s *LikeService) ToggleLike(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	if err := requireUser(userID); err != nil {
		return false, err
	}

	ok, err := s.store.ExistsProduct(ctx, productID)
	if err != nil {
		return false, er.New(er.InternalErrorCode, err.Error())
	}
	if !ok {
		return false, er.New(er.NotFoundCode, "product not found")
	}

	rows, err := s.store.DeleteLike(ctx, userID, productID)
	if err != nil {
		return false, er.New(er.InternalErrorCode, err.Error())
	}
	if rows > 0 {
		return false, nil
	}

	if err := s.store.CreateLikeIfNotExists(ctx, userID, productID); err != nil {
		return false, er.New(er.InternalErrorCode, err.Error())
	}
	return true, nil
}

func (s *LikeService) ListLikedProducts(ctx context.Context, userID uuid.UUID) ([]model.ProductView, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	products, err := s.store.ListLikedProducts(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return enrichProducts(ctx, s.store, products)
}

func (s *LikeService) LikedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if err := requireUser(userID); err != nil {
		return nil, err
	}

	ids, err := s.store.ListLikedProductIDs(ctx, userID)
	if err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return ids, nil
}
