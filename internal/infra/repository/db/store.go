package db

import (
	"context"

	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IStore 統一的資料庫介面
type IStore interface {
	IMetalRateRepository
	IProductRepository
	ICartRepository
	ILikeRepository
	IReviewRepository
	IUserRepository
	IUserRoleRepository
	IDesignRequestRepository

	// ExecTx 在同一個交易內執行, fn 只能使用傳入的 store
	ExecTx(ctx context.Context, fn func(IStore) error) error
	InitMigrate() error
}

type IMetalRateRepository interface {
	GetMetalRate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error)
	GetMetalRateForUpdate(ctx context.Context, metal model.MetalType) (*model.MetalRate, error)
	ListMetalRates(ctx context.Context) ([]model.MetalRate, error)
	UpsertMetalRate(ctx context.Context, rate *model.MetalRate) error
	CreateMetalRateIfNotExists(ctx context.Context, rate *model.MetalRate) error
	CreateRateHistory(ctx context.Context, history *model.MetalRateHistory) error
	ListRateHistory(ctx context.Context, metal model.MetalType, limit int) ([]model.MetalRateHistory, error)
}

type IProductRepository interface {
	CreateProduct(ctx context.Context, product *model.Product) error
	CreateProductsBatch(ctx context.Context, products []model.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ExistsProduct(ctx context.Context, id uuid.UUID) (bool, error)
	UpdateProduct(ctx context.Context, product *model.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) (int64, error)
	ListProducts(ctx context.Context, filter model.ProductFilter) ([]model.Product, int64, error)
	ListProductsByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Product, error)
	ListAllProducts(ctx context.Context) ([]model.Product, error)
	GetRatingStats(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]RatingStat, error)
	GetLikeCounts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type ICartRepository interface {
	AddCartItem(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	SetCartItemQuantity(ctx context.Context, userID, productID uuid.UUID, quantity int) error
	DeleteCartItem(ctx context.Context, userID, productID uuid.UUID) (int64, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
	GetCartItem(ctx context.Context, userID, productID uuid.UUID) (*model.CartItem, error)
	ListCartItems(ctx context.Context, userID uuid.UUID) ([]model.CartItem, error)
}

type ILikeRepository interface {
	CreateLikeIfNotExists(ctx context.Context, userID, productID uuid.UUID) error
	DeleteLike(ctx context.Context, userID, productID uuid.UUID) (int64, error)
	ListLikedProductIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	ListLikedProducts(ctx context.Context, userID uuid.UUID) ([]model.Product, error)
}

type IReviewRepository interface {
	CreateReview(ctx context.Context, review *model.Review) error
	GetReviewByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	DeleteReview(ctx context.Context, id, userID uuid.UUID) (int64, error)
	ListReviewsByProduct(ctx context.Context, productID uuid.UUID) ([]model.Review, error)
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
	ListRecentReviews(ctx context.Context, limit int) ([]model.Review, error)
}

type IUserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	CreateProfile(ctx context.Context, profile *model.Profile) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, updates map[string]interface{}) error
	ListProfilesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]model.Profile, error)
	ListProfiles(ctx context.Context) ([]model.Profile, error)
}

type IUserRoleRepository interface {
	AssignRoleIfNotExists(ctx context.Context, userRole *model.UserRole) error
	RemoveRole(ctx context.Context, userID uuid.UUID, role model.RoleName) (int64, error)
	HasRole(ctx context.Context, userID uuid.UUID, role model.RoleName) (bool, error)
	LockRoleHolders(ctx context.Context, role model.RoleName) ([]model.UserRole, error)
	ListRolesByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]model.UserRole, error)
}

type IDesignRequestRepository interface {
	CreateDesignRequest(ctx context.Context, req *model.CustomDesignRequest) error
	GetDesignRequestForUpdate(ctx context.Context, id uuid.UUID) (*model.CustomDesignRequest, error)
	UpdateDesignRequest(ctx context.Context, req *model.CustomDesignRequest) error
	ListDesignRequestsByUser(ctx context.Context, userID uuid.UUID) ([]model.CustomDesignRequest, error)
	ListDesignRequests(ctx context.Context, status *model.DesignStatus) ([]model.CustomDesignRequest, error)
}

// Store 統一資料庫實現
type Store struct {
	dbDao *DbDao
	*MetalRateRepo
	*ProductRepo
	*CartRepo
	*LikeRepo
	*ReviewRepo
	*UserRepo
	*UserRoleRepo
	*DesignRequestRepo
}

var _ IStore = (*Store)(nil)

func NewStore(dbDao *DbDao) *Store {
	return &Store{
		dbDao:             dbDao,
		MetalRateRepo:     NewMetalRateRepo(dbDao),
		ProductRepo:       NewProductRepo(dbDao),
		CartRepo:          NewCartRepo(dbDao),
		LikeRepo:          NewLikeRepo(dbDao),
		ReviewRepo:        NewReviewRepo(dbDao),
		UserRepo:          NewUserRepo(dbDao),
		UserRoleRepo:      NewUserRoleRepo(dbDao),
		DesignRequestRepo: NewDesignRequestRepo(dbDao),
	}
}

// ExecTx 執行一個交易, fn 回傳錯誤時回滾
func (s *Store) ExecTx(ctx context.Context, fn func(IStore) error) error {
	return s.dbDao.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(NewDbDao(tx)))
	})
}

func (s *Store) InitMigrate() error {
	return s.dbDao.InitMigrate()
}

func (s *Store) Close() error {
	return s.dbDao.Close()
}
