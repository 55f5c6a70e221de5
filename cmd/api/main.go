package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"mood-filter/internal/catalog"
	"mood-filter/internal/config"
	"mood-filter/internal/db"
	apihttp "mood-filter/internal/http"
	"mood-filter/internal/notify"
	"mood-filter/internal/repository"
	"mood-filter/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cat := catalog.Default()
	if cfg.CatalogFile != "" {
		cat, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			logger.Fatal("load catalog", zap.String("path", cfg.CatalogFile), zap.Error(err))
		}
	}

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = db.NewPool(ctx, cfg)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		if err := db.RunMigrations(ctx, pool); err != nil {
			logger.Fatal("db migrations", zap.Error(err))
		}
	}

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed", zap.Error(err))
		}
		cancel()
	}

	var prefRepo repository.PreferenceRepository
	switch cfg.PreferenceStore {
	case config.PreferenceStorePostgres:
		prefRepo = repository.NewPgPreferenceRepository(pool)
	case config.PreferenceStoreRedis:
		prefRepo = repository.NewRedisPreferenceRepository(redisClient)
	default:
		prefRepo = repository.NewMemoryPreferenceRepository()
	}

	moodRepo := repository.NewMemoryMoodRepository()
	if pool != nil {
		moodRepo = repository.NewPgMoodRepository(pool)
	}

	limiter := service.NewSubmissionRateLimiter(time.Hour, cfg.MoodRateLimitHourly)
	broadcaster := notify.NewLogBroadcaster(logger)
	if redisClient != nil {
		limiter = service.NewRedisSubmissionRateLimiter(redisClient, time.Hour, cfg.MoodRateLimitHourly)
		broadcaster = notify.NewRedisBroadcaster(redisClient, cfg.NotifyChannelPrefix)
	}

	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute)
	moodSvc := service.NewMoodService(service.DefaultMoodScorer, moodRepo, limiter, logger)
	prefSvc := service.NewPreferenceService(prefRepo, service.NewPreferenceReconciler(cat), broadcaster, logger)

	router := apihttp.NewRouter(
		logger,
		tokens,
		apihttp.NewCatalogHandler(cat),
		apihttp.NewMoodHandler(logger, moodSvc),
		apihttp.NewPreferenceHandler(logger, prefSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Warn("server shutdown", zap.Error(err))
		}
	}()

	logger.Info("starting server",
		zap.String("port", cfg.HTTPPort),
		zap.String("preference_store", cfg.PreferenceStore),
		zap.Int("catalog_size", len(cat.Entries())),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server error", zap.Error(err))
	}
}
