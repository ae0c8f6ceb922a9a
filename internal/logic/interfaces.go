package logic

import (
	"context"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// DataProvider is the data-access surface the services build on. The
// concrete implementation layers live API, cache, snapshot, and defaults;
// services never see which tier answered.
type DataProvider interface {
	Teams() []models.TeamInfo
	TeamStats(ctx context.Context, name string) (*models.TeamStatRecord, error)
	TeamSituation(ctx context.Context, name string) *models.TeamSituation
	PlayerStats(ctx context.Context, name string) *models.PlayerStatRecord
	TeamStandings(ctx context.Context) ([]models.TeamStanding, error)
	PlayerStandings(ctx context.Context, statCategory string) ([]models.PlayerStanding, error)
	Games(ctx context.Context) []models.Game
	SnapshotDate() string
}

// AuditSink receives served predictions for asynchronous persistence. A nil
// sink disables auditing; Record must never block the request path.
type AuditSink interface {
	Record(rec models.PredictionRecord)
}

// PredictionService runs the win-probability pipeline.
type PredictionService interface {
	ModelAvailable() bool
	PredictFromStats(team1, team2 *models.TeamStatRecord) (*models.PredictionResult, error)
	PredictTeams(ctx context.Context, team1, team2 string) (*models.PredictionResult, error)
	PredictWithFactors(ctx context.Context, req *models.PredictWithFactorsRequest) (*models.PredictionResult, error)
	Simulate(ctx context.Context, req *models.SimulationRequest) (*models.PredictionResult, error)
	PredictionForGame(ctx context.Context, homeTeam, awayTeam string) *models.GamePrediction
}

// TeamStatsService serves standings and team stat tables.
type TeamStatsService interface {
	Teams() []models.TeamInfo
	Standings(ctx context.Context, conference, sortBy string) (*models.TeamStandingsResponse, error)
	OffensiveStats(ctx context.Context, conference string) (*models.TeamOffensiveStatsResponse, error)
	DefensiveStats(ctx context.Context, conference string) (*models.TeamDefensiveStatsResponse, error)
}

// PlayerStatsService serves the player leaderboard and single-player cards.
type PlayerStatsService interface {
	Standings(ctx context.Context, conference, sortBy string, limit int) (*models.PlayerStandingsResponse, error)
	Player(ctx context.Context, playerID string) (*models.PlayerProfileResponse, error)
}

// GameService serves the scoreboard with embedded predictions.
type GameService interface {
	Games(ctx context.Context) *models.CategorizedGamesResponse
	GamesByCategory(ctx context.Context, category string) (*models.GamesResponse, error)
	GameByID(ctx context.Context, gameID string) (*models.Game, error)
}

// AnalysisService serves per-game matchup breakdowns.
type AnalysisService interface {
	GameAnalysis(ctx context.Context, gameID string) (*models.GameAnalysis, error)
	PredictionFactors(ctx context.Context, gameID string) (*models.PredictionFactorsResponse, error)
}
