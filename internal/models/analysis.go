package models

// MatchupTeam is one side of a game analysis: identity plus the offensive
// and defensive aggregates the comparison is built from.
type MatchupTeam struct {
	TeamID         string         `json:"team_id"`
	Name           string         `json:"name"`
	Abbreviation   string         `json:"abbreviation"`
	LogoURL        string         `json:"logo_url"`
	Record         string         `json:"record"`
	OffensiveStats OffensiveStats `json:"offensive_stats"`
	DefensiveStats DefensiveStats `json:"defensive_stats"`
	Situation      TeamSituation  `json:"situation"`
}

// GameAnalysis is the /api/game-analysis payload: both sides' profiles,
// the model's prediction, and the situational factors behind it.
type GameAnalysis struct {
	GameID     string               `json:"game_id"`
	HomeTeam   MatchupTeam          `json:"home_team"`
	AwayTeam   MatchupTeam          `json:"away_team"`
	Prediction *GamePrediction      `json:"prediction"`
	KeyFactors []FactorContribution `json:"key_factors"`
}

// PredictionFactorsResponse is the /api/prediction-factors payload.
type PredictionFactorsResponse struct {
	GameID     string               `json:"game_id"`
	Prediction *GamePrediction      `json:"prediction"`
	Factors    []FactorContribution `json:"factors"`
}
