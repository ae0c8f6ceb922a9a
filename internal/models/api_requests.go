package models

// PredictWinnerRequest is the raw-stats prediction payload.
type PredictWinnerRequest struct {
	Team1Stats *TeamStatRecord `json:"team1_stats" validate:"required"`
	Team2Stats *TeamStatRecord `json:"team2_stats" validate:"required"`
}

// PredictTeamsRequest predicts by team name; stats are resolved by the
// data provider.
type PredictTeamsRequest struct {
	Team1 string `json:"team1" validate:"required"`
	Team2 string `json:"team2" validate:"required"`
}

// PredictWithFactorsRequest is the full pipeline payload: names, unavailable
// players per side, and the situational factor configuration.
type PredictWithFactorsRequest struct {
	Team1              string              `json:"team1" validate:"required"`
	Team2              string              `json:"team2" validate:"required"`
	InactivePlayers    InactivePlayers     `json:"inactive_players"`
	PerformanceFactors *PerformanceFactors `json:"performance_factors"`
}

// InactivePlayers lists the players ruled out for each side, by name.
type InactivePlayers struct {
	Team1 []string `json:"team1"`
	Team2 []string `json:"team2"`
}

// SimulationRequest is the custom matchup simulation payload. Player
// adjustments map player name to an availability flag (false = out).
type SimulationRequest struct {
	HomeTeam          string          `json:"home_team" validate:"required"`
	AwayTeam          string          `json:"away_team" validate:"required"`
	PlayerAdjustments map[string]bool `json:"player_adjustments"`
}
