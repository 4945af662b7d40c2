package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/sicproject/backend/internal/app/controllers"
	appMigrations "github.com/sicproject/backend/internal/app/migrations"
	appRepos "github.com/sicproject/backend/internal/app/repositories"
	appRoutes "github.com/sicproject/backend/internal/app/routes"
	appServices "github.com/sicproject/backend/internal/app/services"
	"github.com/sicproject/backend/internal/config"
	"github.com/sicproject/backend/internal/db"
	appMiddleware "github.com/sicproject/backend/internal/middleware"
	pkgAuth "github.com/sicproject/backend/internal/pkg/auth"
	"github.com/sicproject/backend/internal/pkg/external"
	"github.com/sicproject/backend/internal/pkg/filestorage"
	"github.com/sicproject/backend/internal/pkg/logger"
	"github.com/sicproject/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuditService           appServices.AuditService
	AuthService            appServices.AuthService
	StudentService         appServices.StudentService
	AcademicService        appServices.AcademicService
	LibraryService         appServices.LibraryService
	AdminService           appServices.AdminService
	FeedbackService        appServices.FeedbackService
	AnnouncementService    appServices.AnnouncementService
	UploadService          appServices.UploadService
	GatewayService         appServices.GatewayService
	AuthController         *appControllers.AuthController
	StudentController      *appControllers.StudentController
	LibraryController      *appControllers.LibraryController
	AdminController        *appControllers.AdminController
	FeedbackController     *appControllers.FeedbackController
	AnnouncementController *appControllers.AnnouncementController
	MiscController         *appControllers.MiscController
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	FileStorage            *filestorage.LocalStorage
	Logger                 zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the demo data set.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	tokenExp, err := time.ParseDuration(cfg.JWT.TokenExpiration)
	if err != nil {
		tokenExp = 12 * time.Hour
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    tokenExp,
		TokenIssuer: cfg.JWT.Issuer,
	})

	notifier := external.NewSMTPNotifier(external.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)
	fetcher := external.NewHTTPFetcher()
	normalizer := external.NewCommandNormalizer()

	deps.AuditService = appServices.NewAuditService(deps.Repos.AuditRepository, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.JWTService,
		deps.AuditService,
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.AuditService)
	deps.AcademicService = appServices.NewAcademicService(deps.Repos.AcademicRepository)
	deps.LibraryService = appServices.NewLibraryService(deps.Repos.LibraryRepository, deps.AuditService)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.StudentRepository,
		deps.Repos.AcademicRepository,
		deps.Repos.UserRepository,
		deps.Repos.AuditRepository,
		deps.AuditService,
		lgr,
	)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, deps.AuditService)
	deps.AnnouncementService = appServices.NewAnnouncementService(deps.Repos.AnnouncementRepository, deps.AuditService)
	deps.UploadService = appServices.NewUploadService(deps.FileStorage, deps.Repos.UploadRepository, normalizer, deps.AuditService, lgr)
	deps.GatewayService = appServices.NewGatewayService(notifier, fetcher, deps.AuditService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.AcademicService, deps.UploadService, lgr)
	deps.LibraryController = appControllers.NewLibraryController(deps.LibraryService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService, deps.UploadService, deps.GatewayService, lgr)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService, lgr)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService, lgr)
	deps.MiscController = appControllers.NewMiscController(deps.StudentService, deps.GatewayService, deps.FileStorage, lgr)

	return deps, nil
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.LibraryController,
		deps.AdminController,
		deps.FeedbackController,
		deps.AnnouncementController,
		deps.MiscController,
	)

	return router
}
