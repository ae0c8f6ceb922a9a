package models

import "time"

// PerformanceFactors are the user-configurable situational weights, each on a
// 0-10 scale (5 = neutral), plus the schedule context they act on.
// HomeTeam: 0 = neutral site, 1 = team1 home, 2 = team2 home.
type PerformanceFactors struct {
	HomeCourtAdvantage float64 `json:"home_court_advantage" validate:"gte=0,lte=10"`
	RestDaysImpact     float64 `json:"rest_days_impact" validate:"gte=0,lte=10"`
	RecentFormWeight   float64 `json:"recent_form_weight" validate:"gte=0,lte=10"`
	HomeTeam           int     `json:"home_team" validate:"gte=0,lte=2"`
	Team1RestDays      int     `json:"team1_rest_days"`
	Team2RestDays      int     `json:"team2_rest_days"`
	Team1RecentWins    int     `json:"team1_recent_wins"`
	Team1RecentLosses  int     `json:"team1_recent_losses"`
	Team2RecentWins    int     `json:"team2_recent_wins"`
	Team2RecentLosses  int     `json:"team2_recent_losses"`
}

// DefaultPerformanceFactors returns the neutral configuration.
func DefaultPerformanceFactors() PerformanceFactors {
	return PerformanceFactors{
		HomeCourtAdvantage: 5,
		RestDaysImpact:     5,
		RecentFormWeight:   5,
		Team1RestDays:      1,
		Team2RestDays:      1,
		Team1RecentWins:    5,
		Team1RecentLosses:  5,
		Team2RecentWins:    5,
		Team2RecentLosses:  5,
	}
}

// PlayerImpact reports one unavailable player's estimated contribution.
type PlayerImpact struct {
	PlayerName string  `json:"player_name"`
	Team       string  `json:"team"`
	Impact     float64 `json:"impact"`
}

// FactorContribution is one line of the prediction explanation.
type FactorContribution struct {
	Name   string  `json:"name"`
	Impact float64 `json:"impact"`
	Side   int     `json:"side"` // 1 or 2; 0 when the factor nets out neutral
}

// PredictionResult is the externally visible prediction artifact. It is
// rebuilt on every request and never cached.
type PredictionResult struct {
	Winner             string               `json:"winner"`
	Team1WinProb       float64              `json:"team1_win_prob"`
	Team2WinProb       float64              `json:"team2_win_prob"`
	ModelAvailable     bool                 `json:"model_available"`
	Fallback           bool                 `json:"fallback,omitempty"`
	Error              string               `json:"error,omitempty"`
	PlayerImpacts      []PlayerImpact       `json:"player_impacts,omitempty"`
	PerformanceFactors *PerformanceFactors  `json:"performance_factors,omitempty"`
	Explanation        []FactorContribution `json:"explanation,omitempty"`
}

// PredictionRecord is the audit row written asynchronously for every served
// prediction. Purely observational; never read back on the request path.
type PredictionRecord struct {
	ID           string    `json:"id"`
	Team1        string    `json:"team1"`
	Team2        string    `json:"team2"`
	Team1WinProb float64   `json:"team1_win_prob"`
	Team2WinProb float64   `json:"team2_win_prob"`
	Winner       string    `json:"winner"`
	Fallback     bool      `json:"fallback"`
	Endpoint     string    `json:"endpoint"`
	CreatedAt    time.Time `json:"created_at"`
}
