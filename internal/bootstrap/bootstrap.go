// Package bootstrap wires configuration, database, repositories, services
// and controllers together for the API binary.
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

	appControllers "github.com/openlms/backend/internal/app/controllers"
	appMigrations "github.com/openlms/backend/internal/app/migrations"
	appRepos "github.com/openlms/backend/internal/app/repositories"
	appRoutes "github.com/openlms/backend/internal/app/routes"
	appServices "github.com/openlms/backend/internal/app/services"
	"github.com/openlms/backend/internal/config"
	"github.com/openlms/backend/internal/db"
	appMiddleware "github.com/openlms/backend/internal/middleware"
	"github.com/openlms/backend/internal/pkg/dberrors"
	"github.com/openlms/backend/internal/pkg/logger"
	"github.com/openlms/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	StudentService      appServices.StudentService
	TeacherService      appServices.TeacherService
	CourseService       appServices.CourseService
	EnrolmentService    appServices.EnrolmentService
	StudentController   *appControllers.StudentController
	TeacherController   *appControllers.TeacherController
	CourseController    *appControllers.CourseController
	EnrolmentController *appControllers.EnrolmentController
	Repos               *appRepos.Repositories
	Logger              zerolog.Logger
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
// optionally seeds the development data set.
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

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Database.SeedOnStart {
		if err := seed.Run(context.Background(), dbPool); err != nil {
			if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
				lgr.Info().Msg("Seed data already present, skipping")
			} else {
				lgr.Warn().Err(err).Msg("Failed to seed database, proceeding anyway...")
			}
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(dbPool *pgxpool.Pool, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.StudentService = appServices.NewStudentService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrolmentRepository,
	)
	deps.TeacherService = appServices.NewTeacherService(
		deps.Repos.TeacherRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrolmentRepository,
		deps.Repos.StudentRepository,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EnrolmentRepository,
	)
	deps.EnrolmentService = appServices.NewEnrolmentService(
		deps.Repos.EnrolmentRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
	)

	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrolmentController = appControllers.NewEnrolmentController(deps.EnrolmentService)

	return deps
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
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.StudentController,
		deps.TeacherController,
		deps.CourseController,
		deps.EnrolmentController,
	)

	return router
}
