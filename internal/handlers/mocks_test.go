package handlers

import (
	"context"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// Func-field mocks for the service interfaces; unset fields answer with a
// small sensible default.

type mockPrediction struct {
	ModelAvailableFunc     func() bool
	PredictFromStatsFunc   func(t1, t2 *models.TeamStatRecord) (*models.PredictionResult, error)
	PredictTeamsFunc       func(ctx context.Context, team1, team2 string) (*models.PredictionResult, error)
	PredictWithFactorsFunc func(ctx context.Context, req *models.PredictWithFactorsRequest) (*models.PredictionResult, error)
	SimulateFunc           func(ctx context.Context, req *models.SimulationRequest) (*models.PredictionResult, error)
	PredictionForGameFunc  func(ctx context.Context, home, away string) *models.GamePrediction
}

func defaultResult() *models.PredictionResult {
	return &models.PredictionResult{
		Winner:         "LAL",
		Team1WinProb:   0.62,
		Team2WinProb:   0.38,
		ModelAvailable: true,
	}
}

func (m *mockPrediction) ModelAvailable() bool {
	if m.ModelAvailableFunc != nil {
		return m.ModelAvailableFunc()
	}
	return true
}

func (m *mockPrediction) PredictFromStats(t1, t2 *models.TeamStatRecord) (*models.PredictionResult, error) {
	if m.PredictFromStatsFunc != nil {
		return m.PredictFromStatsFunc(t1, t2)
	}
	return defaultResult(), nil
}

func (m *mockPrediction) PredictTeams(ctx context.Context, team1, team2 string) (*models.PredictionResult, error) {
	if m.PredictTeamsFunc != nil {
		return m.PredictTeamsFunc(ctx, team1, team2)
	}
	return defaultResult(), nil
}

func (m *mockPrediction) PredictWithFactors(ctx context.Context, req *models.PredictWithFactorsRequest) (*models.PredictionResult, error) {
	if m.PredictWithFactorsFunc != nil {
		return m.PredictWithFactorsFunc(ctx, req)
	}
	return defaultResult(), nil
}

func (m *mockPrediction) Simulate(ctx context.Context, req *models.SimulationRequest) (*models.PredictionResult, error) {
	if m.SimulateFunc != nil {
		return m.SimulateFunc(ctx, req)
	}
	return defaultResult(), nil
}

func (m *mockPrediction) PredictionForGame(ctx context.Context, home, away string) *models.GamePrediction {
	if m.PredictionForGameFunc != nil {
		return m.PredictionForGameFunc(ctx, home, away)
	}
	return &models.GamePrediction{HomeWinProbability: 0.5, AwayWinProbability: 0.5}
}

type mockTeamStats struct {
	TeamsFunc          func() []models.TeamInfo
	StandingsFunc      func(ctx context.Context, conference, sortBy string) (*models.TeamStandingsResponse, error)
	OffensiveStatsFunc func(ctx context.Context, conference string) (*models.TeamOffensiveStatsResponse, error)
	DefensiveStatsFunc func(ctx context.Context, conference string) (*models.TeamDefensiveStatsResponse, error)
}

func (m *mockTeamStats) Teams() []models.TeamInfo {
	if m.TeamsFunc != nil {
		return m.TeamsFunc()
	}
	return []models.TeamInfo{{Name: "Los Angeles Lakers", Abbreviation: "LAL"}}
}

func (m *mockTeamStats) Standings(ctx context.Context, conference, sortBy string) (*models.TeamStandingsResponse, error) {
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx, conference, sortBy)
	}
	return &models.TeamStandingsResponse{Season: "2025-26"}, nil
}

func (m *mockTeamStats) OffensiveStats(ctx context.Context, conference string) (*models.TeamOffensiveStatsResponse, error) {
	if m.OffensiveStatsFunc != nil {
		return m.OffensiveStatsFunc(ctx, conference)
	}
	return &models.TeamOffensiveStatsResponse{Season: "2025-26"}, nil
}

func (m *mockTeamStats) DefensiveStats(ctx context.Context, conference string) (*models.TeamDefensiveStatsResponse, error) {
	if m.DefensiveStatsFunc != nil {
		return m.DefensiveStatsFunc(ctx, conference)
	}
	return &models.TeamDefensiveStatsResponse{Season: "2025-26"}, nil
}

type mockPlayerStats struct {
	StandingsFunc func(ctx context.Context, conference, sortBy string, limit int) (*models.PlayerStandingsResponse, error)
	PlayerFunc    func(ctx context.Context, playerID string) (*models.PlayerProfileResponse, error)
}

func (m *mockPlayerStats) Standings(ctx context.Context, conference, sortBy string, limit int) (*models.PlayerStandingsResponse, error) {
	if m.StandingsFunc != nil {
		return m.StandingsFunc(ctx, conference, sortBy, limit)
	}
	return &models.PlayerStandingsResponse{StatCategory: "points"}, nil
}

func (m *mockPlayerStats) Player(ctx context.Context, playerID string) (*models.PlayerProfileResponse, error) {
	if m.PlayerFunc != nil {
		return m.PlayerFunc(ctx, playerID)
	}
	return &models.PlayerProfileResponse{
		Player: models.PlayerStanding{PlayerID: playerID, PlayerName: "Scorer One"},
		Season: "2025-26",
	}, nil
}

type mockGames struct {
	GamesFunc           func(ctx context.Context) *models.CategorizedGamesResponse
	GamesByCategoryFunc func(ctx context.Context, category string) (*models.GamesResponse, error)
	GameByIDFunc        func(ctx context.Context, gameID string) (*models.Game, error)
}

func (m *mockGames) Games(ctx context.Context) *models.CategorizedGamesResponse {
	if m.GamesFunc != nil {
		return m.GamesFunc(ctx)
	}
	return &models.CategorizedGamesResponse{Today: []models.Game{}, Upcoming: []models.Game{}, Live: []models.Game{}}
}

func (m *mockGames) GamesByCategory(ctx context.Context, category string) (*models.GamesResponse, error) {
	if m.GamesByCategoryFunc != nil {
		return m.GamesByCategoryFunc(ctx, category)
	}
	return &models.GamesResponse{Games: []models.Game{}}, nil
}

func (m *mockGames) GameByID(ctx context.Context, gameID string) (*models.Game, error) {
	if m.GameByIDFunc != nil {
		return m.GameByIDFunc(ctx, gameID)
	}
	return &models.Game{ID: gameID}, nil
}

type mockAnalysis struct {
	GameAnalysisFunc      func(ctx context.Context, gameID string) (*models.GameAnalysis, error)
	PredictionFactorsFunc func(ctx context.Context, gameID string) (*models.PredictionFactorsResponse, error)
}

func (m *mockAnalysis) GameAnalysis(ctx context.Context, gameID string) (*models.GameAnalysis, error) {
	if m.GameAnalysisFunc != nil {
		return m.GameAnalysisFunc(ctx, gameID)
	}
	return &models.GameAnalysis{GameID: gameID}, nil
}

func (m *mockAnalysis) PredictionFactors(ctx context.Context, gameID string) (*models.PredictionFactorsResponse, error) {
	if m.PredictionFactorsFunc != nil {
		return m.PredictionFactorsFunc(ctx, gameID)
	}
	return &models.PredictionFactorsResponse{GameID: gameID}, nil
}

type mockAuditQueue struct {
	depth int
}

func (m *mockAuditQueue) QueueDepth() int { return m.depth }
