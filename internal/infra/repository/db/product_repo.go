package db

import (
	"context"
	"strings"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo struct {
	dbDao *DbDao
}

func NewProductRepo(dbDao *DbDao) *ProductRepo {
	return &ProductRepo{dbDao: dbDao}
}

func (s *ProductRepo) CreateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.withCtx(ctx).Create(product).Error
}

// 批量創建商品
func (s *ProductRepo) CreateProductsBatch(ctx context.Context, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	return s.dbDao.withCtx(ctx).Create(&products).Error
}

func (s *ProductRepo) GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var product model.Product
	err := s.dbDao.withCtx(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductRepo) ExistsProduct(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := s.dbDao.withCtx(ctx).Model(&model.Product{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// Update - 更新商品, 重量與快照單價一起寫入
func (s *ProductRepo) UpdateProduct(ctx context.Context, product *model.Product) error {
	return s.dbDao.withCtx(ctx).Save(product).Error
}

// DeleteProduct 一併刪除購物車, 收藏與評論, 呼叫端負責包在交易內
func (s *ProductRepo) DeleteProduct(ctx context.Context, id uuid.UUID) (int64, error) {
	db := s.dbDao.withCtx(ctx)
	if err := db.Where("product_id = ?", id).Delete(&model.CartItem{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("product_id = ?", id).Delete(&model.Like{}).Error; err != nil {
		return 0, err
	}
	if err := db.Where("product_id = ?", id).Delete(&model.Review{}).Error; err != nil {
		return 0, err
	}
	res := db.Where("id = ?", id).Delete(&model.Product{})
	return res.RowsAffected, res.Error
}

// 根據條件分頁查詢, 精選優先再依名稱排序
func (s *ProductRepo) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	query := s.dbDao.withCtx(ctx).Model(&model.Product{})
	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.MetalType != nil {
		query = query.Where("metal_type = ?", *filter.MetalType)
	}
	if filter.FeaturedOnly {
		query = query.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.PageSize
	err := query.
		Order("is_featured DESC").
		Order("name ASC").
		Offset(offset).
		Limit(filter.PageSize).
		Find(&products).Error
	return products, total, err
}

func (s *ProductRepo) ListProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	if len(ids) == 0 {
		return products, nil
	}
	err := s.dbDao.withCtx(ctx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (s *ProductRepo) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.dbDao.withCtx(ctx).Order("category").Order("name").Find(&products).Error
	return products, err
}

// RatingStat 單一商品的評分彙總
type RatingStat struct {
	ProductID uuid.UUID
	Average   float64
	Count     int64
}

// GetRatingStats 依商品彙總平均評分與評論數
func (s *ProductRepo) GetRatingStats(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]RatingStat, error) {
	stats := make(map[uuid.UUID]RatingStat, len(productIDs))
	if len(productIDs) == 0 {
		return stats, nil
	}

	var rows []RatingStat
	err := s.dbDao.withCtx(ctx).
		Model(&model.Review{}).
		Select("product_id, AVG(rating) AS average, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats[row.ProductID] = row
	}
	return stats, nil
}

type likeCountRow struct {
	ProductID uuid.UUID
	Count     int64
}

func (s *ProductRepo) GetLikeCounts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(productIDs))
	if len(productIDs) == 0 {
		return counts, nil
	}

	var rows []likeCountRow
	err := s.dbDao.withCtx(ctx).
		Model(&model.Like{}).
		Select("product_id, COUNT(*) AS count").
		Where("product_id IN ?", productIDs).
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		counts[row.ProductID] = row.Count
	}
	return counts, nil
}
