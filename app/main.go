package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"fibertrack/internal/controllers"
	"fibertrack/internal/listeners"
	"fibertrack/internal/repositories"
	"fibertrack/internal/routes"
	"fibertrack/internal/services"
	"fibertrack/migrations"
	"fibertrack/pkg/config"
	"fibertrack/pkg/eventbus"
	"fibertrack/pkg/filestorage"
	"fibertrack/pkg/logger"
	"fibertrack/pkg/mailer"
	"fibertrack/pkg/middleware"
	"fibertrack/pkg/service"
	"fibertrack/pkg/validation"
	"fibertrack/seeders"
)

func main() {
	cfg := config.New()

	log := logger.NewLogger()
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatal("connecting to postgres failed", zap.Error(err))
	}
	defer pool.Close()

	if err := runMigrations(pool); err != nil {
		log.Fatal("applying migrations failed", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
	})
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Fatal("connecting to redis failed", zap.Error(err))
	}

	storage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		log.Fatal("initializing file storage failed", zap.Error(err))
	}

	bus := eventbus.New(log)
	smtpMailer := mailer.NewSMTPMailer(cfg.SMTP, log)
	jwtService := service.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL, cfg.JWT.RefreshTokenTTL)

	// Repositories.
	txManager := repositories.NewTxManager(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	historyRepo := repositories.NewStageHistoryRepository(pool)
	teamRepo := repositories.NewTeamMemberRepository(pool)
	taskRepo := repositories.NewTaskRepository(pool)
	documentRepo := repositories.NewDocumentRepository(pool)
	badgeRepo := repositories.NewBadgeRepository(pool)
	performanceRepo := repositories.NewPerformanceRepository(pool)
	userRepo := repositories.NewUserRepository(pool)
	dashboardRepo := repositories.NewDashboardRepository(pool)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	if err := seeders.SeedTeamMembers(ctx, teamRepo, log); err != nil {
		log.Fatal("seeding default data failed", zap.Error(err))
	}

	// Services.
	projectService := services.NewProjectService(projectRepo, historyRepo, txManager, bus, log)
	teamService := services.NewTeamMemberService(teamRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo)
	documentService := services.NewDocumentService(documentRepo, projectRepo, storage, bus, log)
	badgeService := services.NewBadgeService(badgeRepo, teamRepo, projectRepo)
	performanceService := services.NewPerformanceService(performanceRepo, teamRepo)
	reportService := services.NewReportService(performanceRepo)
	dashboardService := services.NewDashboardService(dashboardRepo)
	authService := services.NewAuthService(userRepo, cacheRepo, jwtService, cfg.Auth, log)

	notificationListener := listeners.NewNotificationListener(teamRepo, smtpMailer, cfg.Server.BaseURL, log)
	notificationListener.Register(bus)

	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.New()
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestLogger(log))
	e.Static("/uploads", cfg.Uploads.Dir)

	ctrls := routes.Controllers{
		Auth:        controllers.NewAuthController(authService, log),
		Project:     controllers.NewProjectController(projectService, log),
		TeamMember:  controllers.NewTeamMemberController(teamService, log),
		Task:        controllers.NewTaskController(taskService, log),
		Document:    controllers.NewDocumentController(documentService, log),
		Badge:       controllers.NewBadgeController(badgeService, log),
		Performance: controllers.NewPerformanceController(performanceService, log),
		Dashboard:   controllers.NewDashboardController(dashboardService, log),
		Report:      controllers.NewReportController(reportService, log),
	}
	routes.InitRoutes(e, ctrls, jwtService, authService, log)

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()
	log.Info("server started", zap.String("port", cfg.Server.Port))

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}
	bus.Wait()
}

func runMigrations(pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
