package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// StatFields is the canonical set of numeric season-stat fields the classifier
// was trained on. Order here is presentation order only; the trained column
// list owned by the model artifacts is authoritative for feature ordering.
var StatFields = []string{
	"W", "L", "W_PCT", "MIN", "FGM", "FGA", "FG_PCT",
	"FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
	"OREB", "DREB", "REB", "AST", "STL", "BLK", "TOV", "PF", "PTS",
}

// TeamStatRecord holds one team's season stat snapshot: named numeric fields
// plus the team abbreviation. Fields the classifier was not trained on are
// simply carried in the map and dropped during preprocessing.
type TeamStatRecord struct {
	TeamAbbr string
	Stats    map[string]float64
}

// Get returns the named stat and whether it was present in the source data.
func (r *TeamStatRecord) Get(field string) (float64, bool) {
	v, ok := r.Stats[field]
	return v, ok
}

// UnmarshalJSON accepts the raw stat dictionaries clients post: numeric fields
// may arrive as JSON numbers or quoted strings ("0.47"), and TEAM_ABBR rides
// alongside them. Unknown keys with non-numeric values are ignored.
func (r *TeamStatRecord) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("team stat record: %w", err)
	}

	r.Stats = make(map[string]float64, len(raw))
	for key, rawVal := range raw {
		if key == "TEAM_ABBR" || key == "TEAM_ABBREVIATION" {
			var s string
			if err := json.Unmarshal(rawVal, &s); err == nil {
				r.TeamAbbr = s
			}
			continue
		}

		var n float64
		if err := json.Unmarshal(rawVal, &n); err == nil {
			r.Stats[key] = n
			continue
		}

		// Quoted number, e.g. "0.47"
		var s string
		if err := json.Unmarshal(rawVal, &s); err == nil {
			if n, err := strconv.ParseFloat(s, 64); err == nil {
				r.Stats[key] = n
			}
		}
	}

	return nil
}

// MarshalJSON renders the record back as the flat dictionary shape.
func (r TeamStatRecord) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(r.Stats)+1)
	for k, v := range r.Stats {
		out[k] = v
	}
	out["TEAM_ABBR"] = r.TeamAbbr
	return json.Marshal(out)
}

// TeamInfo identifies an NBA franchise.
type TeamInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	LogoURL      string `json:"logo_url"`
}

// TeamStanding is one row of the standings table.
type TeamStanding struct {
	Rank             int     `json:"rank"`
	TeamID           string  `json:"team_id"`
	TeamName         string  `json:"team_name"`
	TeamAbbreviation string  `json:"team_abbreviation"`
	Conference       string  `json:"conference"`
	Division         string  `json:"division"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	WinPct           float64 `json:"win_pct"`
	Streak           int     `json:"streak"`
	StreakType       string  `json:"streak_type"`
	HomeRecord       string  `json:"home_record"`
	RoadRecord       string  `json:"road_record"`
	LastTen          string  `json:"last_ten"`
	LogoURL          string  `json:"logo_url"`
}

// TeamStandingsResponse wraps the standings table with snapshot metadata.
type TeamStandingsResponse struct {
	Standings     []TeamStanding `json:"standings"`
	Season        string         `json:"season"`
	StandingsDate string         `json:"standings_date"`
}

// OffensiveStats are the per-team offensive aggregates derived from the
// season stat record.
type OffensiveStats struct {
	PointsPerGame     float64 `json:"points_per_game"`
	FieldGoalPct      float64 `json:"field_goal_pct"`
	ThreePointPct     float64 `json:"three_point_pct"`
	FreeThrowPct      float64 `json:"free_throw_pct"`
	AssistsPerGame    float64 `json:"assists_per_game"`
	OffensiveRebounds float64 `json:"offensive_rebounds"`
}

// DefensiveStats are the per-team defensive aggregates.
type DefensiveStats struct {
	BlocksPerGame     float64 `json:"blocks_per_game"`
	StealsPerGame     float64 `json:"steals_per_game"`
	DefensiveRebounds float64 `json:"defensive_rebounds"`
	TurnoversForced   float64 `json:"turnovers_forced"`
	FoulsPerGame      float64 `json:"fouls_per_game"`
}

// TeamOffensiveRow pairs a standing with its offensive aggregates.
type TeamOffensiveRow struct {
	TeamStanding
	OffensiveRank  int            `json:"offensive_rank"`
	OffensiveStats OffensiveStats `json:"offensive_stats"`
}

// TeamDefensiveRow pairs a standing with its defensive aggregates.
type TeamDefensiveRow struct {
	TeamStanding
	DefensiveRank  int            `json:"defensive_rank"`
	DefensiveStats DefensiveStats `json:"defensive_stats"`
}

// TeamOffensiveStatsResponse is the /api/team-offensive-stats payload.
type TeamOffensiveStatsResponse struct {
	OffensiveStats []TeamOffensiveRow `json:"offensive_stats"`
	Season         string             `json:"season"`
	StatsDate      string             `json:"stats_date"`
}

// TeamDefensiveStatsResponse is the /api/team-defensive-stats payload.
type TeamDefensiveStatsResponse struct {
	DefensiveStats []TeamDefensiveRow `json:"defensive_stats"`
	Season         string             `json:"season"`
	StatsDate      string             `json:"stats_date"`
}

// TeamSituation carries the schedule-derived context used by the
// performance-factor adjustment: rest and recent form.
type TeamSituation struct {
	RestDays     int  `json:"rest_days"`
	RecentWins   int  `json:"recent_wins"`
	RecentLosses int  `json:"recent_losses"`
	IsHome       bool `json:"is_home"`
}
