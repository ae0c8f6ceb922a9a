package models

// PlayerStatRecord holds a player's per-game season averages. Only the five
// box-score columns feed the impact formula; the rest are presentation data.
type PlayerStatRecord struct {
	PlayerID   string  `json:"player_id"`
	PlayerName string  `json:"player_name"`
	TeamAbbr   string  `json:"team_abbreviation"`
	Points     float64 `json:"points_per_game"`
	Rebounds   float64 `json:"rebounds_per_game"`
	Assists    float64 `json:"assists_per_game"`
	Steals     float64 `json:"steals_per_game"`
	Blocks     float64 `json:"blocks_per_game"`
}

// PlayerStanding is one row of the player leaderboard.
type PlayerStanding struct {
	Rank             int     `json:"rank"`
	PlayerID         string  `json:"player_id"`
	PlayerName       string  `json:"player_name"`
	TeamID           string  `json:"team_id"`
	TeamAbbreviation string  `json:"team_abbreviation"`
	Conference       string  `json:"conference"`
	GamesPlayed      int     `json:"games_played"`
	MinutesPerGame   float64 `json:"minutes_per_game"`
	PointsPerGame    float64 `json:"points_per_game"`
	ReboundsPerGame  float64 `json:"rebounds_per_game"`
	AssistsPerGame   float64 `json:"assists_per_game"`
	StealsPerGame    float64 `json:"steals_per_game"`
	BlocksPerGame    float64 `json:"blocks_per_game"`
	FieldGoalPct     float64 `json:"field_goal_pct"`
	ThreePointPct    float64 `json:"three_point_pct"`
	FreeThrowPct     float64 `json:"free_throw_pct"`
	PlayerImageURL   string  `json:"player_image_url"`
}

// PlayerProfileResponse is the single-player season card.
type PlayerProfileResponse struct {
	Player PlayerStanding `json:"player"`
	Season string         `json:"season"`
}

// PlayerStandingsResponse wraps the player leaderboard.
type PlayerStandingsResponse struct {
	Standings    []PlayerStanding `json:"standings"`
	StatCategory string           `json:"stat_category"`
	Season       string           `json:"season"`
}
