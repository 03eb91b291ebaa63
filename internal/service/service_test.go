package service

import (
	"context"
	"testing"
	"time"

	"github.com/RoyceAzure/rj/api/token"
	er "github.com/RoyceAzure/rj/util/rj_error"
	"github.com/Sathish182603/Gleam-Heaven/internal/domain/model"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_decorator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const testTokenKey = "12345678901234567890123456789012"

// ServiceTestSuite 每個測試一個獨立的 in-memory sqlite
type ServiceTestSuite struct {
	suite.Suite
	ctx   context.Context
	conn  *gorm.DB
	store *db.Store

	rateService    IMetalRateService
	productService IProductService
	cartService    ICartService
	likeService    ILikeService
	reviewService  IReviewService
	roleService    IRoleService
	userService    IUserService
	designService  IDesignRequestService

	admin    uuid.UUID
	customer uuid.UUID
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	conn, err := db.GetSqliteConn(db.InMemorySqliteDSN(uuid.NewString()))
	require.NoError(s.T(), err)
	s.conn = conn
	s.store = db.NewStore(db.NewDbDao(conn))
	require.NoError(s.T(), s.store.InitMigrate())

	maker, err := token.NewPasetoMaker[uuid.UUID](testTokenKey)
	require.NoError(s.T(), err)

	publisher := producer.NoopPublisher{}
	cache := redis_decorator.NewCacheAsideMetalRateRepo(s.store, nil, time.Minute)
	s.rateService = NewMetalRateService(s.store, cache, publisher)
	s.productService = NewProductService(s.store, publisher)
	s.cartService = NewCartService(s.store)
	s.likeService = NewLikeService(s.store)
	s.reviewService = NewReviewService(s.store)
	s.roleService = NewRoleService(s.store)
	s.userService = NewUserService(s.store, maker)
	s.designService = NewDesignRequestService(s.store, publisher)

	adminUser, err := s.roleService.BootstrapAdmin(s.ctx, "admin@gleam.test", "secret123", "Admin")
	require.NoError(s.T(), err)
	s.admin = adminUser.ID

	customer, err := s.userService.SignUp(s.ctx, "priya@gleam.test", "secret123", "Priya")
	require.NoError(s.T(), err)
	s.customer = customer.ID
}

func (s *ServiceTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *ServiceTestSuite) setRate(metal model.MetalType, rate int64) {
	_, err := s.rateService.SetRate(s.ctx, s.admin, metal, decimal.NewFromInt(rate))
	require.NoError(s.T(), err)
}

func (s *ServiceTestSuite) createProduct(name string, metal model.MetalType, weight string) *model.ProductView {
	view, err := s.productService.CreateProduct(s.ctx, s.admin, ProductFields{
		Name:        name,
		Description: name + " description",
		Category:    model.CategoryRings,
		MetalType:   metal,
		WeightGrams: decimal.RequireFromString(weight),
	})
	require.NoError(s.T(), err)
	return view
}

// countRows 直接查表計數
func (s *ServiceTestSuite) countRows(m interface{}, query string, args ...interface{}) int64 {
	var count int64
	require.NoError(s.T(), s.conn.WithContext(s.ctx).Model(m).Where(query, args...).Count(&count).Error)
	return count
}

// requireCode 檢查回傳的錯誤代碼
func requireCode(t *testing.T, err error, code int) {
	t.Helper()
	require.Error(t, err)
	anaErr, ok := err.(*er.AnaError)
	require.True(t, ok, "expected *er.AnaError, got %T: %v", err, err)
	require.Equal(t, code, int(anaErr.Code))
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}
