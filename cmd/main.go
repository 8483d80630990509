package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/murefu/geo_status_engine/internal/config"
	v1 "github.com/murefu/geo_status_engine/internal/handler/http/v1"
	"github.com/murefu/geo_status_engine/internal/refresh"
	"github.com/murefu/geo_status_engine/internal/repository"
	"github.com/murefu/geo_status_engine/internal/service"
	"github.com/murefu/geo_status_engine/pkg/logger"
	"github.com/murefu/geo_status_engine/pkg/postgres"
	redisclient "github.com/murefu/geo_status_engine/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/murefu/geo_status_engine/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Geospatial Service-Status Engine API
// @version 1.0
// @description Zone resolution, per-zone service status and heatmap layers for the civic portal.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий пересчета
	refreshPublisher := refresh.NewRedisRefreshPublisher(redisClient)

	// Инициализация репозиториев
	zoneRepo := repository.NewZoneRepository(dbpool, redisClient, cfg.ZoneCacheTTL)
	observationRepo := repository.NewObservationRepository(dbpool, redisClient, cfg.StatusCacheTTL)
	civicRepo := repository.NewCivicRepository(dbpool)

	// Инициализация сервисов
	zoneService := service.NewZoneService(zoneRepo, log, cfg)
	observationService := service.NewObservationService(observationRepo, log, refreshPublisher)
	statusService := service.NewStatusService(observationRepo, zoneRepo, log, cfg)
	pulseService := service.NewPulseService(observationRepo, log, cfg)
	heatmapService := service.NewHeatmapService(civicRepo, log, cfg)

	// Инициализация и запуск воркера пересчета статусов
	refreshWorker := refresh.NewRefreshWorker(redisClient, log, statusService, cfg.RefreshCronSpec)
	refreshWorker.Start(ctx)
	if err := refreshWorker.StartCron(ctx); err != nil {
		log.Fatalf("Failed to start scheduled status refresh: %v", err)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(zoneService, observationService, statusService, pulseService, heatmapService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
