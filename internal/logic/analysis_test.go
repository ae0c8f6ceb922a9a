package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

func newTestAnalysis(t *testing.T) AnalysisService {
	t.Helper()
	provider := &mockProvider{
		GamesFunc: func(ctx context.Context) []models.Game { return testGames() },
		TeamStatsFunc: func(ctx context.Context, name string) (*models.TeamStatRecord, error) {
			return &models.TeamStatRecord{
				TeamAbbr: name,
				Stats: map[string]float64{
					"W_PCT": 0.6, "PTS": 114, "W": 30, "L": 20,
					"FG_PCT": 0.47, "AST": 25, "BLK": 5, "STL": 8,
				},
			}, nil
		},
	}
	predictions := NewPredictionService(testArtifacts(), provider, nil, zap.NewNop())
	games := &gameService{
		provider:    provider,
		predictions: predictions,
		logger:      zap.NewNop().Sugar(),
		now:         fixedNow,
	}
	return NewAnalysisService(provider, games, predictions, zap.NewNop())
}

func TestGameAnalysis(t *testing.T) {
	svc := newTestAnalysis(t)

	got, err := svc.GameAnalysis(context.Background(), "2026-01-15-LAL-BOS")
	if err != nil {
		t.Fatalf("GameAnalysis() error = %v", err)
	}

	if got.HomeTeam.Abbreviation != "LAL" || got.AwayTeam.Abbreviation != "BOS" {
		t.Errorf("matchup sides = %s vs %s", got.HomeTeam.Abbreviation, got.AwayTeam.Abbreviation)
	}
	if got.HomeTeam.Record != "30-20" {
		t.Errorf("Record = %q, want 30-20", got.HomeTeam.Record)
	}
	if got.HomeTeam.OffensiveStats.PointsPerGame != 114 {
		t.Errorf("PointsPerGame = %v", got.HomeTeam.OffensiveStats.PointsPerGame)
	}
	if got.Prediction == nil {
		t.Error("analysis is missing the game prediction")
	}

	// Default weights with the hosting side set always yield a home court line.
	found := false
	for _, f := range got.KeyFactors {
		if f.Name == "home_court_advantage" {
			found = true
		}
	}
	if !found {
		t.Errorf("KeyFactors = %+v, want a home_court_advantage line", got.KeyFactors)
	}
}

func TestGameAnalysisUnknownGame(t *testing.T) {
	svc := newTestAnalysis(t)

	_, err := svc.GameAnalysis(context.Background(), "bogus")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("error = %v, want ErrDataUnavailable", err)
	}
}

func TestPredictionFactors(t *testing.T) {
	svc := newTestAnalysis(t)

	got, err := svc.PredictionFactors(context.Background(), "2026-01-17-HOU-SAS")
	if err != nil {
		t.Fatalf("PredictionFactors() error = %v", err)
	}
	if got.GameID != "2026-01-17-HOU-SAS" || got.Prediction == nil {
		t.Errorf("PredictionFactors() = %+v", got)
	}
	if len(got.Factors) == 0 {
		t.Error("expected at least one factor line")
	}
}
