package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/edunova/backend/docs" // generated swagger docs
	appControllers "github.com/edunova/backend/internal/app/controllers"
	appMigrations "github.com/edunova/backend/internal/app/migrations"
	appRepos "github.com/edunova/backend/internal/app/repositories"
	appRoutes "github.com/edunova/backend/internal/app/routes"
	appServices "github.com/edunova/backend/internal/app/services"
	"github.com/edunova/backend/internal/config"
	"github.com/edunova/backend/internal/db"
	appMiddleware "github.com/edunova/backend/internal/middleware"
	pkgAuth "github.com/edunova/backend/internal/pkg/auth"
	"github.com/edunova/backend/internal/pkg/logger"
	"github.com/edunova/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService             appServices.AuthService
	StudentService          appServices.StudentService
	CourseService           appServices.CourseService
	TeacherService          appServices.TeacherService
	TimetableService        appServices.TimetableService
	FeedbackService         appServices.FeedbackService
	RegistrationLinkService appServices.RegistrationLinkService
	CourseResourceService   appServices.CourseResourceService
	SettingsService         appServices.SettingsService
	DashboardService        appServices.DashboardService

	AuthController             *appControllers.AuthController
	StudentController          *appControllers.StudentController
	CourseController           *appControllers.CourseController
	TeacherController          *appControllers.TeacherController
	TimetableController        *appControllers.TimetableController
	FeedbackController         *appControllers.FeedbackController
	RegistrationLinkController *appControllers.RegistrationLinkController
	CourseResourceController   *appControllers.CourseResourceController
	SettingsController         *appControllers.SettingsController
	DashboardController        *appControllers.DashboardController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"
	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
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
	lgr.Info().Msg("Database connection established")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seeding failure should not take the service down
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AdminRepository, deps.JWTService, cfg.Admin.SecurityKey, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, lgr)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository, lgr)
	deps.TimetableService = appServices.NewTimetableService(deps.Repos.TimetableRepository, lgr)
	deps.FeedbackService = appServices.NewFeedbackService(deps.Repos.FeedbackRepository, lgr)
	deps.RegistrationLinkService = appServices.NewRegistrationLinkService(deps.Repos.RegistrationLinkRepository, lgr)
	deps.CourseResourceService = appServices.NewCourseResourceService(deps.Repos.CourseResourceRepository, lgr)
	deps.SettingsService = appServices.NewSettingsService(deps.Repos.SettingsRepository, lgr)
	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.FeedbackRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.AdminRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.FeedbackController = appControllers.NewFeedbackController(deps.FeedbackService)
	deps.RegistrationLinkController = appControllers.NewRegistrationLinkController(deps.RegistrationLinkService)
	deps.CourseResourceController = appControllers.NewCourseResourceController(deps.CourseResourceService)
	deps.SettingsController = appControllers.NewSettingsController(deps.SettingsService)
	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)

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
	router.Use(appMiddleware.RequestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.Origins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.TeacherController,
		deps.TimetableController,
		deps.FeedbackController,
		deps.RegistrationLinkController,
		deps.CourseResourceController,
		deps.SettingsController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	return router
}
