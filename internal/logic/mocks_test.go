package logic

import (
	"context"
	"sync"

	"github.com/gamechanger/nba-stats-api/internal/mlmodel"
	"github.com/gamechanger/nba-stats-api/internal/models"
)

// mockProvider implements DataProvider with overridable func fields.
type mockProvider struct {
	TeamsFunc           func() []models.TeamInfo
	TeamStatsFunc       func(ctx context.Context, name string) (*models.TeamStatRecord, error)
	TeamSituationFunc   func(ctx context.Context, name string) *models.TeamSituation
	PlayerStatsFunc     func(ctx context.Context, name string) *models.PlayerStatRecord
	TeamStandingsFunc   func(ctx context.Context) ([]models.TeamStanding, error)
	PlayerStandingsFunc func(ctx context.Context, statCategory string) ([]models.PlayerStanding, error)
	GamesFunc           func(ctx context.Context) []models.Game
}

func (m *mockProvider) Teams() []models.TeamInfo {
	if m.TeamsFunc != nil {
		return m.TeamsFunc()
	}
	return nil
}

func (m *mockProvider) TeamStats(ctx context.Context, name string) (*models.TeamStatRecord, error) {
	if m.TeamStatsFunc != nil {
		return m.TeamStatsFunc(ctx, name)
	}
	return &models.TeamStatRecord{
		TeamAbbr: name,
		Stats:    map[string]float64{"W_PCT": 0.5, "PTS": 110, "W": 41, "L": 41},
	}, nil
}

func (m *mockProvider) TeamSituation(ctx context.Context, name string) *models.TeamSituation {
	if m.TeamSituationFunc != nil {
		return m.TeamSituationFunc(ctx, name)
	}
	return &models.TeamSituation{RestDays: 1, RecentWins: 5, RecentLosses: 5}
}

func (m *mockProvider) PlayerStats(ctx context.Context, name string) *models.PlayerStatRecord {
	if m.PlayerStatsFunc != nil {
		return m.PlayerStatsFunc(ctx, name)
	}
	return &models.PlayerStatRecord{PlayerName: name}
}

func (m *mockProvider) TeamStandings(ctx context.Context) ([]models.TeamStanding, error) {
	if m.TeamStandingsFunc != nil {
		return m.TeamStandingsFunc(ctx)
	}
	return nil, nil
}

func (m *mockProvider) PlayerStandings(ctx context.Context, statCategory string) ([]models.PlayerStanding, error) {
	if m.PlayerStandingsFunc != nil {
		return m.PlayerStandingsFunc(ctx, statCategory)
	}
	return nil, nil
}

func (m *mockProvider) Games(ctx context.Context) []models.Game {
	if m.GamesFunc != nil {
		return m.GamesFunc(ctx)
	}
	return nil
}

func (m *mockProvider) SnapshotDate() string { return "2026-01-15" }

// mockAudit captures audit records.
type mockAudit struct {
	mu      sync.Mutex
	records []models.PredictionRecord
}

func (m *mockAudit) Record(rec models.PredictionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
}

func (m *mockAudit) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}

// stubPrediction serves a fixed game-card prediction.
type stubPrediction struct {
	PredictionService
	forGame *models.GamePrediction
}

func (s *stubPrediction) PredictionForGame(ctx context.Context, home, away string) *models.GamePrediction {
	if s.forGame != nil {
		return s.forGame
	}
	return &models.GamePrediction{HomeWinProbability: 0.5, AwayWinProbability: 0.5}
}

// testArtifacts is a tiny trained feature space where win percentage decides
// everything: a single stump on standardized W_PCT.
func testArtifacts() *mlmodel.Artifacts {
	return &mlmodel.Artifacts{
		Columns: []string{"W_PCT", "PTS", "TEAM_ABBR_LAL", "TEAM_ABBR_BOS"},
		Imputer: mlmodel.Imputer{Means: map[string]float64{"W_PCT": 0.5, "PTS": 110}},
		Scaler: mlmodel.Scaler{
			Mean: []float64{0.5, 110, 0, 0},
			Std:  []float64{0.15, 5, 1, 1},
		},
		Classifier: &mlmodel.Classifier{Trees: []mlmodel.Tree{{Nodes: []mlmodel.Node{
			{Feature: 0, Threshold: 0, Left: 1, Right: 2, DefaultLeft: true},
			{Feature: -1, Left: -1, Right: -1, Value: -0.8},
			{Feature: -1, Left: -1, Right: -1, Value: 0.8},
		}}}},
	}
}

func statRecord(abbr string, winPct, pts float64) *models.TeamStatRecord {
	return &models.TeamStatRecord{
		TeamAbbr: abbr,
		Stats:    map[string]float64{"W_PCT": winPct, "PTS": pts},
	}
}
