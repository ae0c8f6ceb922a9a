package provider

import (
	"fmt"
	"time"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// fixtureGames is the deterministic stand-in slate served when the live
// scoreboard is unreachable. Dates are anchored to now so the cards always
// categorize the same way: one live game, one scheduled today, two upcoming.
func fixtureGames(now time.Time) []models.Game {
	today := now.Format("2006-01-02")
	plusDays := func(n int) string {
		return now.AddDate(0, 0, n).Format("2006-01-02")
	}

	return []models.Game{
		{
			ID:        fmt.Sprintf("fixture-%s-LAL-BOS", today),
			HomeTeam:  fixtureTeam("LAL", 78),
			AwayTeam:  fixtureTeam("BOS", 72),
			Status:    models.GameStatusLive,
			GameClock: "5:42",
			Period:    3,
			StartTime: today + "T19:00:00Z",
		},
		{
			ID:        fmt.Sprintf("fixture-%s-GSW-BKN", today),
			HomeTeam:  fixtureTeam("GSW", 0),
			AwayTeam:  fixtureTeam("BKN", 0),
			Status:    models.GameStatusScheduled,
			StartTime: today + "T22:30:00Z",
		},
		{
			ID:        fmt.Sprintf("fixture-%s-HOU-SAS", plusDays(2)),
			HomeTeam:  fixtureTeam("HOU", 0),
			AwayTeam:  fixtureTeam("SAS", 0),
			Status:    models.GameStatusScheduled,
			StartTime: plusDays(2) + "T20:00:00Z",
		},
		{
			ID:        fmt.Sprintf("fixture-%s-MIA-NYK", plusDays(4)),
			HomeTeam:  fixtureTeam("MIA", 0),
			AwayTeam:  fixtureTeam("NYK", 0),
			Status:    models.GameStatusScheduled,
			StartTime: plusDays(4) + "T19:30:00Z",
		},
	}
}

func fixtureTeam(abbr string, score int) models.GameTeam {
	info, _ := ResolveTeam(abbr)
	return models.GameTeam{
		ID:           info.ID,
		Name:         info.Name,
		Abbreviation: info.Abbreviation,
		LogoURL:      info.LogoURL,
		Score:        score,
	}
}
