package logic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

type analysisService struct {
	provider    DataProvider
	games       GameService
	predictions PredictionService
	logger      *zap.SugaredLogger
}

// NewAnalysisService builds per-game matchup breakdowns on top of the game
// and prediction services.
func NewAnalysisService(provider DataProvider, games GameService, predictions PredictionService, logger *zap.Logger) AnalysisService {
	return &analysisService{
		provider:    provider,
		games:       games,
		predictions: predictions,
		logger:      logger.Sugar(),
	}
}

// GameAnalysis assembles both sides' stat profiles, schedule context, the
// model prediction, and the situational factors that shaped it.
func (s *analysisService) GameAnalysis(ctx context.Context, gameID string) (*models.GameAnalysis, error) {
	game, err := s.games.GameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	home, err := s.matchupTeam(ctx, game.HomeTeam)
	if err != nil {
		return nil, err
	}
	away, err := s.matchupTeam(ctx, game.AwayTeam)
	if err != nil {
		return nil, err
	}

	factors, err := s.factorsFor(ctx, game)
	if err != nil {
		return nil, err
	}

	return &models.GameAnalysis{
		GameID:     gameID,
		HomeTeam:   *home,
		AwayTeam:   *away,
		Prediction: game.Prediction,
		KeyFactors: factors,
	}, nil
}

// PredictionFactors explains a game-card prediction: the factor lines the
// full pipeline would apply with the default weights.
func (s *analysisService) PredictionFactors(ctx context.Context, gameID string) (*models.PredictionFactorsResponse, error) {
	game, err := s.games.GameByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	factors, err := s.factorsFor(ctx, game)
	if err != nil {
		return nil, err
	}

	return &models.PredictionFactorsResponse{
		GameID:     gameID,
		Prediction: game.Prediction,
		Factors:    factors,
	}, nil
}

// factorsFor reruns the factor-aware pipeline for the matchup with neutral
// weights and home advantage to the hosting side, and returns its
// explanation lines.
func (s *analysisService) factorsFor(ctx context.Context, game *models.Game) ([]models.FactorContribution, error) {
	factors := models.DefaultPerformanceFactors()
	factors.HomeTeam = 1
	sitHome := s.provider.TeamSituation(ctx, game.HomeTeam.Abbreviation)
	sitAway := s.provider.TeamSituation(ctx, game.AwayTeam.Abbreviation)
	factors.Team1RestDays = sitHome.RestDays
	factors.Team1RecentWins = sitHome.RecentWins
	factors.Team1RecentLosses = sitHome.RecentLosses
	factors.Team2RestDays = sitAway.RestDays
	factors.Team2RecentWins = sitAway.RecentWins
	factors.Team2RecentLosses = sitAway.RecentLosses

	res, err := s.predictions.PredictWithFactors(ctx, &models.PredictWithFactorsRequest{
		Team1:              game.HomeTeam.Abbreviation,
		Team2:              game.AwayTeam.Abbreviation,
		PerformanceFactors: &factors,
	})
	if err != nil {
		return nil, fmt.Errorf("analysis for %s: %w", game.ID, err)
	}
	return res.Explanation, nil
}

func (s *analysisService) matchupTeam(ctx context.Context, gt models.GameTeam) (*models.MatchupTeam, error) {
	rec, err := s.provider.TeamStats(ctx, gt.Abbreviation)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, gt.Abbreviation)
	}

	record := ""
	if w, ok := rec.Get("W"); ok {
		if l, ok := rec.Get("L"); ok {
			record = fmt.Sprintf("%d-%d", int(w), int(l))
		}
	}

	sit := s.provider.TeamSituation(ctx, gt.Abbreviation)
	return &models.MatchupTeam{
		TeamID:         gt.ID,
		Name:           gt.Name,
		Abbreviation:   gt.Abbreviation,
		LogoURL:        gt.LogoURL,
		Record:         record,
		OffensiveStats: offensiveStats(rec),
		DefensiveStats: defensiveStats(rec),
		Situation:      *sit,
	}, nil
}
