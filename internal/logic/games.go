package logic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

type gameService struct {
	provider    DataProvider
	predictions PredictionService
	logger      *zap.SugaredLogger
	now         func() time.Time
}

// NewGameService serves the scoreboard. Every returned game card carries an
// embedded win-probability prediction.
func NewGameService(provider DataProvider, predictions PredictionService, logger *zap.Logger) GameService {
	return &gameService{
		provider:    provider,
		predictions: predictions,
		logger:      logger.Sugar(),
		now:         time.Now,
	}
}

// Games returns the full categorized scoreboard: live games, the rest of
// today's slate, and upcoming games.
func (s *gameService) Games(ctx context.Context) *models.CategorizedGamesResponse {
	games := s.withPredictions(ctx, s.provider.Games(ctx))

	out := &models.CategorizedGamesResponse{
		Today:    []models.Game{},
		Upcoming: []models.Game{},
		Live:     []models.Game{},
	}
	today := s.now().Format("2006-01-02")
	for _, g := range games {
		switch {
		case g.Status == models.GameStatusLive:
			out.Live = append(out.Live, g)
		case gameDate(g) == today:
			out.Today = append(out.Today, g)
		case gameDate(g) > today:
			out.Upcoming = append(out.Upcoming, g)
		default:
			// Finished games from earlier dates still count as today's
			// news cycle only when final.
			if g.Status == models.GameStatusFinal {
				out.Today = append(out.Today, g)
			}
		}
	}
	return out
}

// GamesByCategory returns one slice of the categorized scoreboard.
func (s *gameService) GamesByCategory(ctx context.Context, category string) (*models.GamesResponse, error) {
	all := s.Games(ctx)
	switch strings.ToLower(category) {
	case "today":
		return &models.GamesResponse{Games: all.Today}, nil
	case "upcoming":
		return &models.GamesResponse{Games: all.Upcoming}, nil
	case "live":
		return &models.GamesResponse{Games: all.Live}, nil
	default:
		return nil, fmt.Errorf("%w: unknown game category %q", ErrInvalidParam, category)
	}
}

// GameByID finds a single game on the current scoreboard.
func (s *gameService) GameByID(ctx context.Context, gameID string) (*models.Game, error) {
	for _, g := range s.withPredictions(ctx, s.provider.Games(ctx)) {
		if g.ID == gameID {
			return &g, nil
		}
	}
	return nil, fmt.Errorf("game %s: %w", gameID, ErrDataUnavailable)
}

// withPredictions attaches a prediction to every card that lacks one. The
// provider serves cards out of its cache, so they are copied before being
// annotated.
func (s *gameService) withPredictions(ctx context.Context, games []models.Game) []models.Game {
	out := make([]models.Game, len(games))
	copy(out, games)
	for i := range out {
		if out[i].Prediction != nil {
			continue
		}
		out[i].Prediction = s.predictions.PredictionForGame(ctx,
			out[i].HomeTeam.Abbreviation, out[i].AwayTeam.Abbreviation)
	}
	return out
}

func gameDate(g models.Game) string {
	if len(g.StartTime) >= 10 {
		return g.StartTime[:10]
	}
	return ""
}
