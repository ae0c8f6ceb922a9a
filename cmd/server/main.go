package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/config"
	"github.com/gamechanger/nba-stats-api/internal/handlers"
	"github.com/gamechanger/nba-stats-api/internal/logic"
	"github.com/gamechanger/nba-stats-api/internal/mlmodel"
	"github.com/gamechanger/nba-stats-api/internal/provider"
	"github.com/gamechanger/nba-stats-api/internal/worker"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *zap.Logger
	var err error
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Model artifacts. A load failure disables predictions but never the
	// service; standings and games keep working on the fallback split.
	artifacts, err := mlmodel.Load(cfg.ModelDir)
	if err != nil {
		sugar.Errorw("Model artifacts failed to load, predictions disabled",
			"dir", cfg.ModelDir, "error", err)
		artifacts = nil
	}

	snapshot, err := provider.LoadSnapshot(cfg.TeamDataCSV, cfg.PlayerDataCSV)
	if err != nil {
		sugar.Warnw("Data snapshot failed to load, continuing without it", "error", err)
		snapshot = nil
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			sugar.Fatalw("Invalid REDIS_URL", "error", err)
		}
		redisClient = redis.NewClient(opts)
	}

	var statsClient *provider.StatsClient
	if cfg.StatsAPIBaseURL != "" {
		statsClient = provider.NewStatsClient(provider.StatsClientConfig{
			BaseURL:    cfg.StatsAPIBaseURL,
			Timeout:    cfg.StatsAPITimeout,
			MaxRetries: cfg.StatsAPIRetries,
			RateLimit:  cfg.StatsAPIRate,
			Logger:     logger,
		})
	}

	prov := provider.New(provider.Config{
		Client:   statsClient,
		Snapshot: snapshot,
		Redis:    redisClient,
		CacheTTL: cfg.CacheTTL,
		Logger:   logger,
	})

	ctx := context.Background()

	var pgPool *pgxpool.Pool
	var auditPool *worker.Pool
	var audit logic.AuditSink
	var auditQueue handlers.AuditQueue
	if cfg.PostgresURL != "" {
		pgPool, err = pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			sugar.Fatalw("Failed to create Postgres pool", "error", err)
		}
		auditPool = worker.NewPool(worker.PoolConfig{
			WorkerCount:   cfg.WorkerCount,
			QueueSize:     cfg.QueueSize,
			BatchSize:     cfg.BatchSize,
			FlushInterval: cfg.FlushInterval,
			Postgres:      pgPool,
			Logger:        logger,
		})
		auditPool.Start(ctx)
		audit = auditPool
		auditQueue = auditPool
	}

	prediction := logic.NewPredictionService(artifacts, prov, audit, logger)
	teamStats := logic.NewTeamStatsService(prov, logger)
	playerStats := logic.NewPlayerStatsService(prov, logger)
	games := logic.NewGameService(prov, prediction, logger)
	analysis := logic.NewAnalysisService(prov, games, prediction, logger)

	h := handlers.New(handlers.Config{
		AuditPool:   auditQueue,
		Postgres:    pgPool,
		Redis:       redisClient,
		Logger:      logger,
		Prediction:  prediction,
		TeamStats:   teamStats,
		PlayerStats: playerStats,
		Games:       games,
		Analysis:    analysis,
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.Index)
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/predict", h.PredictTeams)
	r.Post("/predict-with-performance-factors", h.PredictWithFactors)

	r.Route("/api", func(r chi.Router) {
		r.Post("/predict-winner", h.PredictWinner)
		r.Post("/simulation", h.Simulate)
		r.Get("/games", h.GetGames)
		r.Get("/teams", h.GetTeams)
		r.Get("/team-standings", h.GetTeamStandings)
		r.Get("/player-standings", h.GetPlayerStandings)
		r.Get("/player/{playerID}", h.GetPlayer)
		r.Get("/predictions/{gameID}", h.GetGamePrediction)
		r.Get("/team-offensive-stats", h.GetTeamOffensiveStats)
		r.Get("/team-defensive-stats", h.GetTeamDefensiveStats)
		r.Get("/game-analysis/{gameID}", h.GetGameAnalysis)
		r.Get("/prediction-factors/{gameID}", h.GetPredictionFactors)
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		sugar.Infow("Server listening",
			"port", cfg.Port,
			"env", cfg.Env,
			"model_available", artifacts != nil,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sugar.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	sugar.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sugar.Errorw("Server shutdown error", "error", err)
	}
	if auditPool != nil {
		auditPool.Stop()
	}
	if pgPool != nil {
		pgPool.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}
	sugar.Info("Shutdown complete")
}
