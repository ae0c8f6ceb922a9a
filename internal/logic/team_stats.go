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

type teamStatsService struct {
	provider DataProvider
	logger   *zap.SugaredLogger
	now      func() time.Time
}

// NewTeamStatsService serves the standings and per-team stat tables.
func NewTeamStatsService(provider DataProvider, logger *zap.Logger) TeamStatsService {
	return &teamStatsService{
		provider: provider,
		logger:   logger.Sugar(),
		now:      time.Now,
	}
}

func (s *teamStatsService) Teams() []models.TeamInfo {
	return s.provider.Teams()
}

// Standings filters by conference, sorts by the requested column, and
// re-ranks the remaining rows.
func (s *teamStatsService) Standings(ctx context.Context, conference, sortBy string) (*models.TeamStandingsResponse, error) {
	standings, err := s.provider.TeamStandings(ctx)
	if err != nil {
		return nil, err
	}

	standings = filterConference(standings, conference)

	switch strings.ToLower(sortBy) {
	case "", "win_pct":
		sort.SliceStable(standings, func(i, j int) bool { return standings[i].WinPct > standings[j].WinPct })
	case "wins":
		sort.SliceStable(standings, func(i, j int) bool { return standings[i].Wins > standings[j].Wins })
	case "losses":
		sort.SliceStable(standings, func(i, j int) bool { return standings[i].Losses < standings[j].Losses })
	case "team_name":
		sort.SliceStable(standings, func(i, j int) bool { return standings[i].TeamName < standings[j].TeamName })
	default:
		return nil, fmt.Errorf("%w: unknown sort column %q", ErrInvalidParam, sortBy)
	}

	for i := range standings {
		standings[i].Rank = i + 1
	}

	return &models.TeamStandingsResponse{
		Standings:     standings,
		Season:        seasonString(s.now()),
		StandingsDate: s.provider.SnapshotDate(),
	}, nil
}

// OffensiveStats joins the standings table with each team's offensive
// aggregates, optionally filtered by conference, ranked by scoring.
func (s *teamStatsService) OffensiveStats(ctx context.Context, conference string) (*models.TeamOffensiveStatsResponse, error) {
	standings, err := s.provider.TeamStandings(ctx)
	if err != nil {
		return nil, err
	}
	standings = filterConference(standings, conference)

	rows := make([]models.TeamOffensiveRow, 0, len(standings))
	for _, st := range standings {
		rec, err := s.provider.TeamStats(ctx, st.TeamAbbreviation)
		if err != nil {
			s.logger.Warnw("Skipping team without stats", "team", st.TeamAbbreviation, "error", err)
			continue
		}
		rows = append(rows, models.TeamOffensiveRow{
			TeamStanding:   st,
			OffensiveStats: offensiveStats(rec),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].OffensiveStats.PointsPerGame > rows[j].OffensiveStats.PointsPerGame
	})
	for i := range rows {
		rows[i].OffensiveRank = i + 1
	}

	return &models.TeamOffensiveStatsResponse{
		OffensiveStats: rows,
		Season:         seasonString(s.now()),
		StatsDate:      s.provider.SnapshotDate(),
	}, nil
}

// DefensiveStats joins the standings table with each team's defensive
// aggregates, optionally filtered by conference, ranked by blocks plus steals.
func (s *teamStatsService) DefensiveStats(ctx context.Context, conference string) (*models.TeamDefensiveStatsResponse, error) {
	standings, err := s.provider.TeamStandings(ctx)
	if err != nil {
		return nil, err
	}
	standings = filterConference(standings, conference)

	rows := make([]models.TeamDefensiveRow, 0, len(standings))
	for _, st := range standings {
		rec, err := s.provider.TeamStats(ctx, st.TeamAbbreviation)
		if err != nil {
			s.logger.Warnw("Skipping team without stats", "team", st.TeamAbbreviation, "error", err)
			continue
		}
		rows = append(rows, models.TeamDefensiveRow{
			TeamStanding:   st,
			DefensiveStats: defensiveStats(rec),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		di := rows[i].DefensiveStats
		dj := rows[j].DefensiveStats
		return di.BlocksPerGame+di.StealsPerGame > dj.BlocksPerGame+dj.StealsPerGame
	})
	for i := range rows {
		rows[i].DefensiveRank = i + 1
	}

	return &models.TeamDefensiveStatsResponse{
		DefensiveStats: rows,
		Season:         seasonString(s.now()),
		StatsDate:      s.provider.SnapshotDate(),
	}, nil
}

// filterConference always returns a fresh slice. The provider hands out rows
// backed by its cache, so sorting and re-ranking must happen on a copy.
func filterConference(standings []models.TeamStanding, conference string) []models.TeamStanding {
	filtered := make([]models.TeamStanding, 0, len(standings))
	for _, st := range standings {
		if conference == "" || strings.EqualFold(st.Conference, conference) {
			filtered = append(filtered, st)
		}
	}
	return filtered
}

func offensiveStats(rec *models.TeamStatRecord) models.OffensiveStats {
	get := func(field string) float64 { v, _ := rec.Get(field); return v }
	return models.OffensiveStats{
		PointsPerGame:     get("PTS"),
		FieldGoalPct:      get("FG_PCT"),
		ThreePointPct:     get("FG3_PCT"),
		FreeThrowPct:      get("FT_PCT"),
		AssistsPerGame:    get("AST"),
		OffensiveRebounds: get("OREB"),
	}
}

func defensiveStats(rec *models.TeamStatRecord) models.DefensiveStats {
	get := func(field string) float64 { v, _ := rec.Get(field); return v }
	return models.DefensiveStats{
		BlocksPerGame:     get("BLK"),
		StealsPerGame:     get("STL"),
		DefensiveRebounds: get("DREB"),
		TurnoversForced:   get("STL"),
		FoulsPerGame:      get("PF"),
	}
}

// seasonString renders the NBA season label for a date: the season that
// starts in October belongs to that calendar year.
func seasonString(t time.Time) string {
	year := t.Year()
	if t.Month() < time.October {
		year--
	}
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
