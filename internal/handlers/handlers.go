package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

// AuditQueue is the audit worker surface the handlers report on.
type AuditQueue interface {
	QueueDepth() int
}

type Config struct {
	AuditPool AuditQueue
	Postgres  *pgxpool.Pool
	Redis     *redis.Client
	Logger    *zap.Logger
	// Services
	Prediction  logic.PredictionService
	TeamStats   logic.TeamStatsService
	PlayerStats logic.PlayerStatsService
	Games       logic.GameService
	Analysis    logic.AnalysisService
}

type Handler struct {
	audit       AuditQueue
	pg          *pgxpool.Pool
	redis       *redis.Client
	logger      *zap.SugaredLogger
	validator   *validator.Validate
	prediction  logic.PredictionService
	teamStats   logic.TeamStatsService
	playerStats logic.PlayerStatsService
	games       logic.GameService
	analysis    logic.AnalysisService
}

func New(cfg Config) *Handler {
	return &Handler{
		audit:       cfg.AuditPool,
		pg:          cfg.Postgres,
		redis:       cfg.Redis,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
		prediction:  cfg.Prediction,
		teamStats:   cfg.TeamStats,
		playerStats: cfg.PlayerStats,
		games:       cfg.Games,
		analysis:    cfg.Analysis,
	}
}
