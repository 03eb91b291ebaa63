package service

import (
	"context"
	"io"
	"strings"

	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/export"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// ProductFields 後台新增/編輯商品表單, 單價不由前端提供
type ProductFields struct {
	Name        string
	Description string
	Category    model.Category
	MetalType   model.MetalType
	WeightGrams decimal.Decimal
	IsFeatured  bool
	ImageURL    string
}

func (f *ProductFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)
	f.ImageURL = strings.TrimSpace(f.ImageURL)
	f.WeightGrams = f.WeightGrams.Round(model.WeightScale)
}

func (f ProductFields) validate() error {
	if f.Name == "" {
		return er.New(er.BadRequestCode, "product name is required")
	}
	if f.Description == "" {
		return er.New(er.BadRequestCode, "product description is required")
	}
	if !f.Category.IsValid() {
		return er.New(er.BadRequestCode, "invalid category")
	}
	if !f.MetalType.IsValid() {
		return er.New(er.BadRequestCode, "invalid metal type")
	}
	if !f.WeightGrams.IsPositive() {
		return er.New(er.BadRequestCode, "weight must be at least 0.001 g")
	}
	if f.WeightGrams.GreaterThan(model.MaxWeightGrams) {
		return er.New(er.BadRequestCode, "weight is too large")
	}
	return nil
}

type IProductService interface {
	// CreateProduct 以目前牌價作為快照單價
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.BadRequestCode 400: 欄位錯誤
	//   - er.InvalidOperationCode: 該金屬尚未設定牌價 (RateNotConfigured)
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	CreateProduct(ctx context.Context, actor uuid.UUID, fields ProductFields) (*model.ProductView, error)

	// UpdateProduct 重新存檔時一併刷新快照單價
	// 錯誤: 同 CreateProduct, 另外商品不存在回傳 er.NotFoundCode
	UpdateProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID, fields ProductFields) (*model.ProductView, error)

	// RepriceProduct 不改其他欄位, 只以目前牌價刷新快照
	// 錯誤: 同 UpdateProduct
	RepriceProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*model.ProductView, error)

	// DeleteProduct 連同購物車, 收藏, 評論一起刪除
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.NotFoundCode: 商品不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	DeleteProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID) error

	// ListProducts 精選優先, 再依名稱排序
	// 錯誤:
	//   - er.BadRequestCode 400: 無效的分類或金屬
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.ProductView, int64, error)

	// GetProduct
	// 錯誤:
	//   - er.NotFoundCode: 商品不存在
	//   - er.InternalErrorCode 500: 資料庫操作錯誤
	GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductView, error)

	// SeedCollection 批次新增商品, 需要金銀牌價都已設定
	// 錯誤: 同 CreateProduct
	SeedCollection(ctx context.Context, actor uuid.UUID, items []ProductFields) ([]model.Product, error)

	// ExportProducts 匯出 xlsx
	// 錯誤:
	//   - er.UnauthenticatedCode 401: 未登入
	//   - er.UnauthorizedCode 403: 非管理者
	//   - er.InternalErrorCode 500: 資料庫操作或寫檔錯誤
	ExportProducts(ctx context.Context, actor uuid.UUID, w io.Writer) error
}

type ProductService struct {
	store     db.IStore
	publisher eventPublisher
}

var _ IProductService = (*ProductService)(nil)

func NewProductService(store db.IStore, publisher producer.IEventPublisher) IProductService {
	if store == nil {
		panic("product service missing required dependency store")
	}
	return &ProductService{
		store:     store,
		publisher: newEventPublisher(publisher),
	}
}

// currentRate 交易內直接讀 db, 不使用快取
func currentRate(ctx context.Context, tx db.IStore, metal model.MetalType) (decimal.Decimal, error) {
	rate, err := tx.GetMetalRate(ctx, metal)
	if err != nil {
		if db.IsNotFound(err) {
			return decimal.Zero, er.New(er.InvalidOperationCode, ErrMsgRateNotConfigured)
		}
		return decimal.Zero, err
	}
	return rate.RatePerGram, nil
}

func applyFields(p *model.Product, f ProductFields) {
	p.Name = f.Name
	p.Slug = slug.Make(f.Name)
	p.Description = f.Description
	p.Category = f.Category
	p.MetalType = f.MetalType
	p.WeightGrams = f.WeightGrams
	p.IsFeatured = f.IsFeatured
	p.ImageURL = f.ImageURL
}

func (s *ProductService) CreateProduct(ctx context.Context, actor uuid.UUID, fields ProductFields) (*model.ProductView, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	var product model.Product
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		rate, err := currentRate(ctx, tx, fields.MetalType)
		if err != nil {
			return err
		}
		applyFields(&product, fields)
		product.PricePerGram = rate
		return tx.CreateProduct(ctx, &product)
	})
	if err != nil {
		return nil, asAnaError(err)
	}

	s.publishSaved(&product, true)
	return newProductView(product, nil, nil), nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID, fields ProductFields) (*model.ProductView, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	fields.normalize()
	if err := fields.validate(); err != nil {
		return nil, err
	}

	return s.resave(ctx, id, func(p *model.Product) { applyFields(p, fields) })
}

func (s *ProductService) RepriceProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*model.ProductView, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	return s.resave(ctx, id, func(p *model.Product) {})
}

// resave 套用修改後以目前牌價刷新快照
func (s *ProductService) resave(ctx context.Context, id uuid.UUID, mutate func(p *model.Product)) (*model.ProductView, error) {
	var product *model.Product
	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		var err error
		product, err = tx.GetProductByID(ctx, id)
		if err != nil {
			if db.IsNotFound(err) {
				return er.New(er.NotFoundCode, "product not found")
			}
			return err
		}

		mutate(product)
		rate, err := currentRate(ctx, tx, product.MetalType)
		if err != nil {
			return err
		}
		product.PricePerGram = rate
		return tx.UpdateProduct(ctx, product)
	})
	if err != nil {
		return nil, asAnaError(err)
	}

	s.publishSaved(product, false)
	return s.enrichOne(ctx, *product)
}

func (s *ProductService) DeleteProduct(ctx context.Context, actor uuid.UUID, id uuid.UUID) error {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return err
	}

	err := s.store.ExecTx(ctx, func(tx db.IStore) error {
		rows, err := tx.DeleteProduct(ctx, id)
		if err != nil {
			return err
		}
		if rows == 0 {
			return er.New(er.NotFoundCode, "product not found")
		}
		return nil
	})
	if err != nil {
		return asAnaError(err)
	}

	s.publisher.publish(model.ProductDeletedEvent{
		BaseEvent: model.NewBaseEvent(model.ProductDeletedEventName, id.String()),
		ProductID: id,
	})
	return nil
}

func (s *ProductService) ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.ProductView, int64, error) {
	if filter.Category != nil && !filter.Category.IsValid() {
		return nil, 0, er.New(er.BadRequestCode, "invalid category")
	}
	if filter.MetalType != nil && !filter.MetalType.IsValid() {
		return nil, 0, er.New(er.BadRequestCode, "invalid metal type")
	}
	filter.Page, filter.PageSize = normalizePaging(filter.Page, filter.PageSize)

	products, total, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, er.New(er.InternalErrorCode, err.Error())
	}

	views, err := s.enrich(ctx, products)
	if err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*model.ProductView, error) {
	product, err := s.store.GetProductByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, er.New(er.NotFoundCode, "product not found")
		}
		return nil, er.New(er.InternalErrorCode, err.Error())
	}
	return s.enrichOne(ctx, *product)
}

func (s *ProductService) SeedCollection(ctx context.Context, actor uuid.UUID, items []ProductFields) ([]model.Product, error) {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return nil, err
	}
	return seedProducts(ctx, s.store, items, s.publishSaved)
}

// seedProducts 也供 cli seed 使用, 不檢查管理者
func seedProducts(ctx context.Context, store db.IStore, items []ProductFields, onSaved func(*model.Product, bool)) ([]model.Product, error) {
	if len(items) == 0 {
		return nil, er.New(er.BadRequestCode, "no products to seed")
	}
	for i := range items {
		items[i].normalize()
		if err := items[i].validate(); err != nil {
			return nil, err
		}
	}

	products := make([]model.Product, 0, len(items))
	err := store.ExecTx(ctx, func(tx db.IStore) error {
		products = products[:0]
		rates := make(map[model.MetalType]decimal.Decimal, len(model.AllMetalTypes))
		for _, metal := range model.AllMetalTypes {
			rate, err := currentRate(ctx, tx, metal)
			if err != nil {
				return err
			}
			rates[metal] = rate
		}

		for _, item := range items {
			var p model.Product
			applyFields(&p, item)
			p.PricePerGram = rates[item.MetalType]
			products = append(products, p)
		}
		return tx.CreateProductsBatch(ctx, products)
	})
	if err != nil {
		return nil, asAnaError(err)
	}

	if onSaved != nil {
		for i := range products {
			onSaved(&products[i], true)
		}
	}
	return products, nil
}

func (s *ProductService) ExportProducts(ctx context.Context, actor uuid.UUID, w io.Writer) error {
	if err := requireAdmin(ctx, s.store, actor); err != nil {
		return err
	}

	products, err := s.store.ListAllProducts(ctx)
	if err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	views, err := s.enrich(ctx, products)
	if err != nil {
		return err
	}

	if err := export.WriteProductsXLSX(w, views); err != nil {
		return er.New(er.InternalErrorCode, err.Error())
	}
	return nil
}

func (s *ProductService) publishSaved(p *model.Product, created bool) {
	s.publisher.publish(model.ProductSavedEvent{
		BaseEvent:    model.NewBaseEvent(model.ProductSavedEventName, p.ID.String()),
		ProductID:    p.ID,
		Name:         p.Name,
		MetalType:    p.MetalType,
		PricePerGram: p.PricePerGram,
		Price:        p.DisplayPrice(),
		Created:      created,
	})
}

func (s *ProductService) enrichOne(ctx context.Context, product model.Product) (*model.ProductView, error) {
	views, err := s.enrich(ctx, []model.Product{product})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// enrich 評分與收藏數平行查詢
func (s *ProductService) enrich(ctx context.Context, products []model.Product) ([]model.ProductView, error) {
	return enrichProducts(ctx, s.store, products)
}

func enrichProducts(ctx context.Context, store db.IProductRepository, products []model.Product) ([]model.ProductView, error) {
	views := make([]model.ProductView, 0, len(products))
	if len(products) == 0 {
		return views, nil
	}

	ids := make([]uuid.UUID, len(products))
	for i := range products {
		ids[i] = products[i].ID
	}

	var (
		ratings map[uuid.UUID]db.RatingStat
		likes   map[uuid.UUID]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ratings, err = store.GetRatingStats(gctx, ids)
		return err
	})
	g.Go(func() error {
		var err error
		likes, err = store.GetLikeCounts(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, er.New(er.InternalErrorCode, err.Error())
	}

	for _, p := range products {
		views = append(views, *newProductView(p, ratings, likes))
	}
	return views, nil
}

func newProductView(p model.Product, ratings map[uuid.UUID]db.RatingStat, likes map[uuid.UUID]int64) *model.ProductView {
	view := &model.ProductView{
		Product: p,
		Price:   p.DisplayPrice(),
		ProductStats: model.ProductStats{
			AverageRating: decimal.Zero,
		},
	}
	if stat, ok := ratings[p.ID]; ok {
		view.AverageRating = decimal.NewFromFloat(stat.Average).Round(1)
		view.ReviewCount = stat.Count
	}
	view.LikeCount = likes[p.ID]
	return view
}
