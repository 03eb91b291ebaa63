package appcontext

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/RoyceAzure/rj/api/token"
	"github.com/Sathish182603/Gleam-Heaven/internal/api"
	"github.com/Sathish182603/Gleam-Heaven/internal/api/handler"
	"github.com/Sathish182603/Gleam-Heaven/internal/config"
	"github.com/Sathish182603/Gleam-Heaven/internal/constants"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/producer"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/redis_client"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/db"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_decorator"
	"github.com/Sathish182603/Gleam-Heaven/internal/infra/repository/redis_repo"
	"github.com/Sathish182603/Gleam-Heaven/internal/pkg/ratelimit"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ApplicationContext struct {
	Cf          *config.Config
	Logger      *zerolog.Logger
	Store       *db.Store
	RedisClient *redis.Client
	Publisher   producer.IEventPublisher
	TokenMaker  token.Maker[uuid.UUID]
	Limiter     ratelimit.ILimiter

	MetalRateService     service.IMetalRateService
	ProductService       service.IProductService
	CartService          service.ICartService
	LikeService          service.ILikeService
	ReviewService        service.IReviewService
	RoleService          service.IRoleService
	UserService          service.IUserService
	DesignRequestService service.IDesignRequestService
}

// NewApplicationContext 只建立 db 與服務, 不做 migration
func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	app.setUpLogger()
	app.Logger.Debug().Interface("config", redactConfig(*cf)).Msg("loaded config")

	if err := app.Init(); err != nil {
		// 已建立的連線要釋放
		app.closeResources()
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	steps := []func() error{
		app.setUpDbConn,
		app.setUpRedis,
		app.setUpPublisher,
		app.setUpTokenMaker,
		app.setUpServices,
		app.setUpLimiter,
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func (app *ApplicationContext) setUpLogger() {
	level := zerolog.InfoLevel
	if constants.ENV(app.Cf.Env) == constants.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stdout).Level(level).With().Timestamp().Str("service", "gleam-heaven").Logger()
	log.Logger = logger
	app.Logger = &logger
}

func (app *ApplicationContext) setUpDbConn() error {
	app.Logger.Info().Msg("Start setup database connection")
	var (
		conn *gorm.DB
		err  error
	)
	if app.Cf.UseSqlite() {
		conn, err = db.GetSqliteConn(app.Cf.SqlitePath)
	} else {
		conn, err = db.GetDbConn(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
	}
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	app.Store = db.NewStore(db.NewDbDao(conn))
	app.Logger.Info().Bool("sqlite", app.Cf.UseSqlite()).Msg("Finish setup database connection")
	return nil
}

// setUpRedis 未設定 REDIS_ADDR 時不使用快取
func (app *ApplicationContext) setUpRedis() error {
	if app.Cf.RedisAddr == "" {
		app.Logger.Info().Msg("Skip setup redis, REDIS_ADDR is empty")
		return nil
	}
	app.Logger.Info().Msg("Start setup redis")
	client := redis_client.GetRedisClient(app.Cf.RedisAddr,
		redis_client.WithPassword(app.Cf.RedisPassword),
		redis_client.WithDB(app.Cf.RedisDB),
	)
	if err := redis_client.Ping(context.Background(), client); err != nil {
		return fmt.Errorf("connect redis %s: %w", app.Cf.RedisAddr, err)
	}
	app.RedisClient = client
	app.Logger.Info().Msg("Finish setup redis")
	return nil
}

// setUpPublisher 未設定 broker 時事件直接丟棄
func (app *ApplicationContext) setUpPublisher() error {
	brokers := app.Cf.KafkaBrokerList()
	if len(brokers) == 0 {
		app.Logger.Info().Msg("Skip setup kafka publisher, KAFKA_BROKERS is empty")
		app.Publisher = producer.NoopPublisher{}
		return nil
	}
	app.Logger.Info().Msg("Start setup kafka publisher")
	publisher, err := producer.NewKafkaEventPublisher(producer.DefaultConfig(brokers, app.Cf.KafkaTopic))
	if err != nil {
		return fmt.Errorf("create kafka publisher: %w", err)
	}
	app.Publisher = publisher
	app.Logger.Info().Strs("brokers", brokers).Str("topic", app.Cf.KafkaTopic).Msg("Finish setup kafka publisher")
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	app.Logger.Info().Msg("Start setup token maker")
	tokenMaker, err := token.NewPasetoMaker[uuid.UUID](app.Cf.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("create token maker: %w", err)
	}
	app.TokenMaker = tokenMaker
	app.Logger.Info().Msg("Finish setup token maker")
	return nil
}

func (app *ApplicationContext) setUpServices() error {
	app.Logger.Info().Msg("Start setup services")
	var cacheRepo redis_repo.IMetalRateRedisRepository
	if app.RedisClient != nil {
		cacheRepo = redis_repo.NewMetalRateRedisRepo(app.RedisClient)
	}
	cache := redis_decorator.NewCacheAsideMetalRateRepo(app.Store, cacheRepo, constants.MetalRateCacheTTL)

	app.MetalRateService = service.NewMetalRateService(app.Store, cache, app.Publisher)
	app.ProductService = service.NewProductService(app.Store, app.Publisher)
	app.CartService = service.NewCartService(app.Store)
	app.LikeService = service.NewLikeService(app.Store)
	app.ReviewService = service.NewReviewService(app.Store)
	app.RoleService = service.NewRoleService(app.Store)
	app.UserService = service.NewUserService(app.Store, app.TokenMaker)
	app.DesignRequestService = service.NewDesignRequestService(app.Store, app.Publisher)
	app.Logger.Info().Msg("Finish setup services")
	return nil
}

// setUpLimiter 多台 server 時改用 redis 共用 bucket
func (app *ApplicationContext) setUpLimiter() error {
	app.Logger.Info().Msg("Start setup rate limiter")
	cfg := ratelimit.GetDefaultLimiterConfig()
	cfg.Capacity = app.Cf.RateLimitCapacity
	cfg.RatePS = app.Cf.RateLimitPerSecond

	if app.Cf.RateLimitUseRedis {
		if app.RedisClient == nil {
			return fmt.Errorf("RATE_LIMIT_USE_REDIS requires REDIS_ADDR")
		}
		app.Limiter = ratelimit.NewRsTokenBucket(app.RedisClient, cfg)
	} else {
		app.Limiter = ratelimit.NewTokenBucket(cfg)
	}
	app.Logger.Info().Bool("redis", app.Cf.RateLimitUseRedis).Msg("Finish setup rate limiter")
	return nil
}

// Migrate postgres 走 migrations 目錄, sqlite 用 gorm auto migrate
func (app *ApplicationContext) Migrate() error {
	app.Logger.Info().Msg("Start db migration")
	var err error
	if app.Cf.UseSqlite() {
		err = app.Store.InitMigrate()
	} else {
		err = db.RunDBMigration(app.Cf.MigrationURL, app.migrateURL())
	}
	if err != nil {
		return fmt.Errorf("db migration: %w", err)
	}
	app.Logger.Info().Msg("Finish db migration")
	return nil
}

// Rollback sqlite 模式不支援
func (app *ApplicationContext) Rollback() error {
	if app.Cf.UseSqlite() {
		return fmt.Errorf("rollback is not supported with DB_DRIVER=%s", config.DriverSqlite)
	}
	return db.RollbackDBMigration(app.Cf.MigrationURL, app.migrateURL())
}

func (app *ApplicationContext) migrateURL() string {
	return db.GetMigrateURL(app.Cf.DbName, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbUser, app.Cf.DbPas)
}

// NewServer 組合所有 handler
func (app *ApplicationContext) NewServer() *api.Server {
	return api.NewServer(
		handler.NewAuthHandler(app.UserService),
		handler.NewMetalRateHandler(app.MetalRateService),
		handler.NewProductHandler(app.ProductService, app.ReviewService),
		handler.NewCartHandler(app.CartService),
		handler.NewReviewHandler(app.ReviewService, app.LikeService),
		handler.NewAdminUserHandler(app.RoleService),
		handler.NewDesignRequestHandler(app.DesignRequestService),
	)
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("Start application shutdown")

	done := make(chan struct{})
	go func() {
		defer close(done)
		app.closeResources()
	}()

	select {
	case <-done:
		app.Logger.Info().Msg("Application shutdown complete")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}

// closeResources 依建立的反向順序關閉, 錯誤只記錄
func (app *ApplicationContext) closeResources() {
	if app.Publisher != nil {
		app.Logger.Info().Msg("Closing event publisher...")
		if err := app.Publisher.Close(); err != nil {
			app.Logger.Error().Err(err).Msg("event publisher close error")
		}
	}

	if app.RedisClient != nil {
		app.Logger.Info().Msg("Closing redis client...")
		redis_client.CloseAll()
	}

	if app.Store != nil {
		app.Logger.Info().Msg("Closing database connection...")
		if err := app.Store.Close(); err != nil {
			app.Logger.Error().Err(err).Msg("database close error")
		}
	}
}

// redactConfig 密碼與金鑰不寫進 log
func redactConfig(cf config.Config) config.Config {
	if cf.DbPas != "" {
		cf.DbPas = "***"
	}
	if cf.RedisPassword != "" {
		cf.RedisPassword = "***"
	}
	if cf.AuthTokenKey != "" {
		cf.AuthTokenKey = "***"
	}
	return cf
}
