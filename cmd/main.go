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

	"github.com/shenikar/parade_tracking_system/internal/config"
	v1 "github.com/shenikar/parade_tracking_system/internal/handler/http/v1"
	"github.com/shenikar/parade_tracking_system/internal/ingest"
	"github.com/shenikar/parade_tracking_system/internal/policy"
	"github.com/shenikar/parade_tracking_system/internal/repository"
	"github.com/shenikar/parade_tracking_system/internal/route"
	"github.com/shenikar/parade_tracking_system/internal/scheduler"
	"github.com/shenikar/parade_tracking_system/internal/service"
	"github.com/shenikar/parade_tracking_system/internal/store"
	"github.com/shenikar/parade_tracking_system/internal/webhook"
	"github.com/shenikar/parade_tracking_system/pkg/logger"
	"github.com/shenikar/parade_tracking_system/pkg/postgres"
	redisclient "github.com/shenikar/parade_tracking_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/parade_tracking_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Parade Tracking System API
// @version 1.0
// @description GPS tracking of parade boats along a fixed route with corridor and incident monitoring.
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

// loadRoute читает файл маршрута. Некорректный маршрут - фатальная ошибка старта.
func loadRoute(cfg *config.Config) (*route.Route, *config.RouteFile, error) {
	rf, err := config.LoadRouteFile(cfg.RouteFile)
	if err != nil {
		return nil, nil, err
	}

	points := make([]route.Point, len(rf.Points))
	for i, p := range rf.Points {
		points[i] = route.Point{Latitude: p.Latitude, Longitude: p.Longitude}
	}

	r, err := route.Load(points, rf.ToleranceMeters)
	if err != nil {
		return nil, nil, err
	}
	return r, rf, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Маршрут загружается до подключения к хранилищам
	paradeRoute, routeFile, err := loadRoute(cfg)
	if err != nil {
		log.Fatalf("Failed to load parade route: %v", err)
	}
	log.WithFields(logrus.Fields{
		"route":            routeFile.Name,
		"waypoints":        len(routeFile.Points),
		"distance_meters":  paradeRoute.TotalDistanceMeters(),
		"tolerance_meters": paradeRoute.ToleranceMeters(),
	}).Info("Parade route loaded")

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
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.ConnectTimeout)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий
	eventPublisher := webhook.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера вебхуков
	webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация репозиториев
	boatRepo := repository.NewBoatRepository(dbpool, redisClient)

	// Ядро отслеживания
	boatStore := store.New(store.Options{
		HistorySize:   cfg.HistorySize,
		IncidentLimit: cfg.IncidentLimit,
	})
	trackingPolicy := policy.New(policy.Config{
		SoftRatio:              cfg.CorridorSoftRatio,
		MaxSpeedMetersPerSec:   cfg.MaxSpeedMetersPerSec(),
		StopGracePeriod:        cfg.StopGracePeriod,
		StaleAfter:             cfg.StaleAfter,
		FinishThresholdPercent: cfg.FinishThresholdPercent,
	}, paradeRoute.ToleranceMeters())

	// Инициализация сервисов
	trackingService := service.NewTrackingService(paradeRoute, boatStore, trackingPolicy, boatRepo, eventPublisher, log, cfg)

	// Сначала снимки из бд, затем реестр из файла маршрута: реестр только дополняет их
	if _, err := trackingService.Restore(ctx); err != nil {
		log.WithError(err).Warn("Starting without restored boat states")
	}
	for _, boat := range routeFile.Boats {
		if _, err := trackingService.RegisterBoat(ctx, boat.ID, boat.Name); err != nil {
			log.WithError(err).WithField("boat_id", boat.ID).Error("Failed to register boat from route file")
		}
	}

	// Периодическая проверка молчащих трекеров
	sweeper := scheduler.NewSweeper(trackingService, cfg.SweepInterval, log)
	sweeper.Start(ctx)

	// Прием точек из Kafka, если брокеры заданы
	if len(cfg.KafkaBrokers) > 0 {
		kafkaConsumer := ingest.NewKafkaConsumer(ingest.KafkaConsumerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
			GroupID: cfg.KafkaGroupID,
		}, trackingService, log)
		defer kafkaConsumer.Close()
		go kafkaConsumer.Run(ctx)
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(trackingService, log, cfg)

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
	cancel()

	log.Info("Server gracefully stopped")
}
