package logic

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

const defaultLeaderboardSize = 50

type playerStatsService struct {
	provider DataProvider
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// NewPlayerStatsService serves the player leaderboard.
func NewPlayerStatsService(provider DataProvider, logger *zap.Logger) PlayerStatsService {
	return &playerStatsService{
		provider: provider,
		logger:   logger.Sugar(),
		now:      time.Now,
	}
}

// Standings returns the player leaderboard sorted by the requested stat
// category, optionally filtered by conference.
func (s *playerStatsService) Standings(ctx context.Context, conference, sortBy string, limit int) (*models.PlayerStandingsResponse, error) {
	category := strings.ToLower(sortBy)
	if category == "" {
		category = "points"
	}
	key, ok := leaderboardKey(category)
	if !ok {
		return nil, fmt.Errorf("%w: unknown stat category %q", ErrInvalidParam, sortBy)
	}

	standings, err := s.provider.PlayerStandings(ctx, category)
	if err != nil {
		return nil, err
	}

	// Copy before sorting; the provider serves these rows from its cache.
	filtered := make([]models.PlayerStanding, 0, len(standings))
	for _, st := range standings {
		if conference == "" || strings.EqualFold(st.Conference, conference) {
			filtered = append(filtered, st)
		}
	}
	standings = filtered

	sort.SliceStable(standings, func(i, j int) bool {
		return key(standings[i]) > key(standings[j])
	})

	if limit <= 0 {
		limit = defaultLeaderboardSize
	}
	if len(standings) > limit {
		standings = standings[:limit]
	}
	for i := range standings {
		standings[i].Rank = i + 1
	}

	return &models.PlayerStandingsResponse{
		Standings:    standings,
		StatCategory: category,
		Season:       seasonString(s.now()),
	}, nil
}

// Player returns one player's season card, looked up by id or name. The
// leaderboard rows carry the richer presentation fields, so they are
// preferred over the raw stat record.
func (s *playerStatsService) Player(ctx context.Context, playerID string) (*models.PlayerProfileResponse, error) {
	standings, err := s.provider.PlayerStandings(ctx, "points")
	if err == nil {
		for _, st := range standings {
			if st.PlayerID == playerID || strings.EqualFold(st.PlayerName, playerID) {
				st.Rank = 0
				return &models.PlayerProfileResponse{
					Player: st,
					Season: seasonString(s.now()),
				}, nil
			}
		}
	}

	rec := s.provider.PlayerStats(ctx, playerID)
	if rec.TeamAbbr == "" {
		return nil, fmt.Errorf("player %s: %w", playerID, ErrDataUnavailable)
	}
	return &models.PlayerProfileResponse{
		Player: models.PlayerStanding{
			PlayerID:         rec.PlayerID,
			PlayerName:       rec.PlayerName,
			TeamAbbreviation: rec.TeamAbbr,
			PointsPerGame:    rec.Points,
			ReboundsPerGame:  rec.Rebounds,
			AssistsPerGame:   rec.Assists,
			StealsPerGame:    rec.Steals,
			BlocksPerGame:    rec.Blocks,
		},
		Season: seasonString(s.now()),
	}, nil
}

// leaderboardKey maps a stat category name to its sort column.
func leaderboardKey(category string) (func(models.PlayerStanding) float64, bool) {
	switch category {
	case "points", "pts":
		return func(p models.PlayerStanding) float64 { return p.PointsPerGame }, true
	case "rebounds", "reb":
		return func(p models.PlayerStanding) float64 { return p.ReboundsPerGame }, true
	case "assists", "ast":
		return func(p models.PlayerStanding) float64 { return p.AssistsPerGame }, true
	case "steals", "stl":
		return func(p models.PlayerStanding) float64 { return p.StealsPerGame }, true
	case "blocks", "blk":
		return func(p models.PlayerStanding) float64 { return p.BlocksPerGame }, true
	default:
		return nil, false
	}
}
