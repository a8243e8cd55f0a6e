package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/cache"
	"github.com/yigit/coursehub/internal/pkg/helpers"
	"github.com/yigit/coursehub/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Database         *db.PostgresDB // nil with the memory driver
	Cache            cache.Store    // nil when caching is disabled
	Repos            *appRepos.Repositories
	Services         *appServices.Services
	JWTService       *pkgAuth.JWTService // nil when auth is disabled
	AuthMiddleware   *appMiddleware.AuthMiddleware
	CourseController *appControllers.CourseController
	UnitController   *appControllers.UnitController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL and applies pending migrations. It
// returns nil when the memory driver is configured.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	if cfg.Database.Driver == config.DatabaseDriverMemory {
		lgr.Info().Msg("Using in-memory store; data is lost on restart")
		return nil, nil
	}

	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool).Migrate(ctx); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return database, nil
}

// SetupCache builds the configured read cache. It returns nil for the none driver.
func SetupCache(cfg *config.Config, lgr zerolog.Logger) (cache.Store, error) {
	ttl := helpers.ParseDuration(cfg.Cache.TTL, 10*time.Minute)

	switch cfg.Cache.Driver {
	case config.CacheDriverRedis:
		store, err := cache.NewRedisStore(cache.RedisOptions{
			Addr:       cfg.Cache.Redis.Addr,
			Password:   cfg.Cache.Redis.Password,
			DB:         cfg.Cache.Redis.DB,
			Prefix:     cfg.Cache.KeyPrefix,
			DefaultTTL: ttl,
		})
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to redis cache")
			return nil, err
		}
		lgr.Info().Str("addr", cfg.Cache.Redis.Addr).Dur("ttl", ttl).Msg("Redis cache enabled")
		return store, nil
	case config.CacheDriverMemory:
		lgr.Info().Dur("ttl", ttl).Msg("In-process cache enabled")
		return cache.NewMemoryStore(ttl, 2*ttl), nil
	default:
		lgr.Info().Msg("Read cache disabled")
		return nil, nil
	}
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, store cache.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Database: database,
		Cache:    store,
		Logger:   lgr,
	}

	if database != nil {
		deps.Repos = appRepos.NewRepositories(database)
	} else {
		deps.Repos = appRepos.NewMemoryRepositories()
	}

	deps.Services = appServices.NewServices(deps.Repos, store, helpers.ParseDuration(cfg.Cache.TTL, 10*time.Minute))

	if cfg.AuthEnabled() {
		deps.JWTService = NewJWTService(cfg)
		lgr.Info().Msg("Admin token required for write routes")
	} else {
		lgr.Warn().Msg("JWT secret not set; write routes are open")
	}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CourseController = appControllers.NewCourseController(deps.Services.CourseService)
	deps.UnitController = appControllers.NewUnitController(deps.Services.UnitService)

	return deps
}

// NewJWTService builds the token service from the JWT config section
func NewJWTService(cfg *config.Config) *pkgAuth.JWTService {
	return pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(
		appMiddleware.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.AllowedOrigins()),
	)

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.UnitController,
		deps.AuthMiddleware,
	)

	return router
}

// Close releases the cache and database connections
func (d *Dependencies) Close() {
	if d.Cache != nil {
		if err := d.Cache.Close(); err != nil {
			d.Logger.Error().Err(err).Msg("Cache close error")
		}
	}
	if d.Database != nil {
		d.Logger.Info().Msg("Closing database connection pool...")
		d.Database.Close()
	}
}
