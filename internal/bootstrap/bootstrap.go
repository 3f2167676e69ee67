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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "classfinder/internal/app/controllers"
	appMigrations "classfinder/internal/app/migrations"
	"classfinder/internal/app/models"
	appRepos "classfinder/internal/app/repositories"
	appRoutes "classfinder/internal/app/routes"
	appServices "classfinder/internal/app/services"
	"classfinder/internal/config"
	"classfinder/internal/db"
	appMiddleware "classfinder/internal/middleware"
	"classfinder/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	BuildingService    appServices.BuildingService
	RoomService        appServices.RoomService
	ClassService       appServices.ClassService
	BuildingController *appControllers.BuildingController
	RoomController     *appControllers.RoomController
	ClassController    *appControllers.ClassController
	Repos              *appRepos.Repositories
	TermRegistry       *models.TermRegistry
	Logger             zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations, and
// ensures the table set for every allow-listed term exists.
func SetupDatabase(cfg *config.Config, registry *models.TermRegistry, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := appMigrations.EnsureAllTermSchemas(ctx, database.Pool, registry); err != nil {
		database.Close()
		lgr.Error().Err(err).Msg("Failed to ensure term schemas")
		return nil, fmt.Errorf("term schema setup failed: %w", err)
	}

	lgr.Info().Int("terms", len(registry.Terms())).Msg("Database schema ready.")
	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, registry *models.TermRegistry, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		TermRegistry: registry,
		Logger:       lgr,
	}

	deps.Repos = appRepos.NewRepositories(database.Pool, registry)

	deps.BuildingService = appServices.NewBuildingService(deps.Repos.BuildingRepository)
	deps.RoomService = appServices.NewRoomService(deps.Repos.RoomRepository)
	deps.ClassService = appServices.NewClassService(deps.Repos.ClassRepository, registry)

	deps.BuildingController = appControllers.NewBuildingController(deps.BuildingService)
	deps.RoomController = appControllers.NewRoomController(deps.RoomService)
	deps.ClassController = appControllers.NewClassController(deps.ClassService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// All origins; the API is read-only public data
	router.Use(cors.Default())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestTimeout(cfg.RequestTimeout()))

	pingDB := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return database.Pool.Ping(ctx)
	}

	appRoutes.SetupRouter(router,
		deps.BuildingController,
		deps.RoomController,
		deps.ClassController,
		pingDB,
	)

	return router
}
