package logic

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

func testGames() []models.Game {
	return []models.Game{
		{
			ID:        "2026-01-15-LAL-BOS",
			HomeTeam:  models.GameTeam{Abbreviation: "LAL", Name: "Los Angeles Lakers", Score: 78},
			AwayTeam:  models.GameTeam{Abbreviation: "BOS", Name: "Boston Celtics", Score: 72},
			Status:    models.GameStatusLive,
			Period:    3,
			GameClock: "5:42",
			StartTime: "2026-01-15T19:30:00Z",
		},
		{
			ID:        "2026-01-15-GSW-BKN",
			HomeTeam:  models.GameTeam{Abbreviation: "GSW", Name: "Golden State Warriors"},
			AwayTeam:  models.GameTeam{Abbreviation: "BKN", Name: "Brooklyn Nets"},
			Status:    models.GameStatusScheduled,
			StartTime: "2026-01-15T22:30:00Z",
		},
		{
			ID:        "2026-01-17-HOU-SAS",
			HomeTeam:  models.GameTeam{Abbreviation: "HOU", Name: "Houston Rockets"},
			AwayTeam:  models.GameTeam{Abbreviation: "SAS", Name: "San Antonio Spurs"},
			Status:    models.GameStatusScheduled,
			StartTime: "2026-01-17T20:00:00Z",
		},
		{
			ID:        "2026-01-14-MIA-NYK",
			HomeTeam:  models.GameTeam{Abbreviation: "MIA", Name: "Miami Heat", Score: 101},
			AwayTeam:  models.GameTeam{Abbreviation: "NYK", Name: "New York Knicks", Score: 99},
			Status:    models.GameStatusFinal,
			StartTime: "2026-01-14T20:00:00Z",
		},
	}
}

func newTestGameService() *gameService {
	return &gameService{
		provider: &mockProvider{
			GamesFunc: func(ctx context.Context) []models.Game { return testGames() },
		},
		predictions: &stubPrediction{
			forGame: &models.GamePrediction{HomeWinProbability: 0.61, AwayWinProbability: 0.39, ModelAvailable: true},
		},
		logger: zap.NewNop().Sugar(),
		now:    fixedNow,
	}
}

func TestGamesCategorized(t *testing.T) {
	svc := newTestGameService()

	got := svc.Games(context.Background())

	if len(got.Live) != 1 || got.Live[0].ID != "2026-01-15-LAL-BOS" {
		t.Errorf("Live = %+v, want the in-progress Lakers game", got.Live)
	}
	if len(got.Upcoming) != 1 || got.Upcoming[0].ID != "2026-01-17-HOU-SAS" {
		t.Errorf("Upcoming = %+v, want the Rockets game", got.Upcoming)
	}
	// Today holds today's scheduled slate plus yesterday's final.
	if len(got.Today) != 2 {
		t.Fatalf("Today has %d games, want 2", len(got.Today))
	}
	ids := map[string]bool{}
	for _, g := range got.Today {
		ids[g.ID] = true
	}
	if !ids["2026-01-15-GSW-BKN"] || !ids["2026-01-14-MIA-NYK"] {
		t.Errorf("Today = %v", ids)
	}
}

func TestGamesEmbedPredictions(t *testing.T) {
	svc := newTestGameService()

	got := svc.Games(context.Background())
	for _, bucket := range [][]models.Game{got.Live, got.Today, got.Upcoming} {
		for _, g := range bucket {
			if g.Prediction == nil {
				t.Fatalf("game %s is missing its prediction", g.ID)
			}
			if g.Prediction.HomeWinProbability != 0.61 {
				t.Errorf("game %s prediction = %+v", g.ID, g.Prediction)
			}
		}
	}
}

func TestGamesPreservesExistingPrediction(t *testing.T) {
	existing := &models.GamePrediction{HomeWinProbability: 0.9, AwayWinProbability: 0.1, ModelAvailable: true}
	svc := newTestGameService()
	svc.provider = &mockProvider{
		GamesFunc: func(ctx context.Context) []models.Game {
			games := testGames()[:1]
			games[0].Prediction = existing
			return games
		},
	}

	got := svc.Games(context.Background())
	if got.Live[0].Prediction != existing {
		t.Error("a prediction already on the card should not be recomputed")
	}
}

func TestGamesDoesNotAnnotateProviderSlice(t *testing.T) {
	// Same backing slice on every call, as the cache tier serves it.
	shared := testGames()
	svc := newTestGameService()
	svc.provider = &mockProvider{
		GamesFunc: func(ctx context.Context) []models.Game { return shared },
	}

	svc.Games(context.Background())

	for i, g := range shared {
		if g.Prediction != nil {
			t.Errorf("provider card %d gained a prediction", i)
		}
	}
}

func TestGamesByCategory(t *testing.T) {
	svc := newTestGameService()

	tests := []struct {
		category string
		wantLen  int
		wantErr  bool
	}{
		{category: "live", wantLen: 1},
		{category: "today", wantLen: 2},
		{category: "upcoming", wantLen: 1},
		{category: "LIVE", wantLen: 1},
		{category: "yesterday", wantErr: true},
		{category: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := svc.GamesByCategory(context.Background(), tt.category)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidParam) {
				t.Errorf("GamesByCategory(%q) error = %v, want ErrInvalidParam", tt.category, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("GamesByCategory(%q) error = %v", tt.category, err)
		}
		if len(got.Games) != tt.wantLen {
			t.Errorf("GamesByCategory(%q) returned %d games, want %d", tt.category, len(got.Games), tt.wantLen)
		}
	}
}

func TestGameByID(t *testing.T) {
	svc := newTestGameService()

	got, err := svc.GameByID(context.Background(), "2026-01-17-HOU-SAS")
	if err != nil {
		t.Fatalf("GameByID() error = %v", err)
	}
	if got.HomeTeam.Abbreviation != "HOU" || got.Prediction == nil {
		t.Errorf("GameByID() = %+v", got)
	}

	_, err = svc.GameByID(context.Background(), "no-such-game")
	if !errors.Is(err, ErrDataUnavailable) {
		t.Errorf("missing game error = %v, want ErrDataUnavailable", err)
	}
}
