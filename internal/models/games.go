package models

// Game statuses as rendered to clients.
const (
	GameStatusScheduled = "SCHEDULED"
	GameStatusLive      = "LIVE"
	GameStatusFinal     = "FINAL"
)

// GameTeam is one side of a game card.
type GameTeam struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url"`
	Score        int    `json:"score"`
}

// GamePrediction is the embedded win-probability pair on a game card.
type GamePrediction struct {
	HomeWinProbability float64 `json:"home_win_probability"`
	AwayWinProbability float64 `json:"away_win_probability"`
	ModelAvailable     bool    `json:"model_available"`
}

// Game is a single scheduled, live, or finished game with its prediction.
type Game struct {
	ID         string          `json:"id"`
	HomeTeam   GameTeam        `json:"home_team"`
	AwayTeam   GameTeam        `json:"away_team"`
	Status     string          `json:"status"`
	GameClock  string          `json:"game_clock"`
	Period     int             `json:"period"`
	StartTime  string          `json:"start_time"`
	Prediction *GamePrediction `json:"prediction,omitempty"`
}

// GamePredictionResponse is the standalone per-game prediction payload.
type GamePredictionResponse struct {
	GameID     string          `json:"game_id"`
	HomeTeam   string          `json:"home_team"`
	AwayTeam   string          `json:"away_team"`
	Prediction *GamePrediction `json:"prediction"`
}

// GamesResponse is the single-category /api/games payload.
type GamesResponse struct {
	Games []Game `json:"games"`
}

// CategorizedGamesResponse is the uncategorized /api/games payload.
type CategorizedGamesResponse struct {
	Today    []Game `json:"today"`
	Upcoming []Game `json:"upcoming"`
	Live     []Game `json:"live"`
}
