package main

import (
	"log"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"fno_analyzer/internal/app/router"
	analysisadapters "fno_analyzer/internal/feature/analysis/adapters"
	analysishandler "fno_analyzer/internal/feature/analysis/transport/handler"
	analysisusecase "fno_analyzer/internal/feature/analysis/usecase"
	catalogusecase "fno_analyzer/internal/feature/catalog/usecase"
	"fno_analyzer/internal/platform/cache"
	"fno_analyzer/internal/platform/config"
	"fno_analyzer/internal/platform/db"
	"fno_analyzer/internal/platform/externalapi/upstox"
	platformhttp "fno_analyzer/internal/platform/http"
	platformredis "fno_analyzer/internal/platform/redis"
	"fno_analyzer/internal/shared/ratelimiter"
)

func main() {
	// Local development convenience; in deployment the environment is set
	// by the platform and no .env exists.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "reason", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.UpstoxAccessToken == "" {
		slog.Warn("UPSTOX_ACCESS_TOKEN is not set; market data fetches will fail with 401")
	}

	// db
	gormDB := db.OpenDB(cfg)

	// Redis (optional)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg); err != nil {
		slog.Warn("Redis unavailable, running without instrument cache")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	// Upstox clients share one tuned HTTP client
	upstoxCfg := upstox.Config{
		AccessToken:    cfg.UpstoxAccessToken,
		BaseURL:        cfg.UpstoxBaseURL,
		InstrumentsURL: cfg.UpstoxInstrumentsURL,
		Timeout:        cfg.HTTPTimeout,
	}
	httpClient := platformhttp.NewHTTPClient(upstoxCfg.Timeout)

	// Repositories
	instrumentSource := cache.NewCachingInstrumentSource(rdb, 0, upstox.NewInstrumentClient(upstoxCfg, httpClient), "")
	catalog := catalogusecase.NewCatalog(instrumentSource)
	market := upstox.NewUpstoxMarket(upstoxCfg, httpClient)
	results := analysisadapters.NewResultRepository(gormDB)

	// Usecase
	limiter := ratelimiter.NewRateLimiter(cfg.APIRateLimit, time.Minute)
	analysisUC := analysisusecase.NewAnalysisUsecase(catalog, market, results, limiter)

	// Handler
	analysisH := analysishandler.NewAnalysisHandler(analysisUC)

	r := router.NewRouter(analysisH)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
