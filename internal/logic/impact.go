package logic

import (
	"github.com/gamechanger/nba-stats-api/internal/models"
)

// Canonical impact weighting. Every impact computation in the service goes
// through this one set of weights; no per-player or per-team overrides.
var impactWeights = map[string]float64{
	"PTS": 0.4,
	"REB": 0.2,
	"AST": 0.2,
	"STL": 0.1,
	"BLK": 0.1,
}

const (
	playerImpactFloor   = 0.01
	playerImpactCeiling = 0.20
	// A roster subset can never discount its team by more than this,
	// keeping the adjusted probability comfortably positive.
	teamImpactCap = 0.9
)

// PlayerImpactScore converts a player's per-game averages into the
// fractional win-probability discount their absence costs the team.
// Always within [playerImpactFloor, playerImpactCeiling], even for zeroed
// or absurd stat lines.
func PlayerImpactScore(rec *models.PlayerStatRecord) float64 {
	raw := impactWeights["PTS"]*rec.Points +
		impactWeights["REB"]*rec.Rebounds +
		impactWeights["AST"]*rec.Assists +
		impactWeights["STL"]*rec.Steals +
		impactWeights["BLK"]*rec.Blocks
	return clamp(raw/100.0, playerImpactFloor, playerImpactCeiling)
}

// teamImpact sums individual impacts and caps the aggregate discount.
func teamImpact(impacts []models.PlayerImpact) float64 {
	var sum float64
	for _, pi := range impacts {
		sum += pi.Impact
	}
	if sum > teamImpactCap {
		sum = teamImpactCap
	}
	return sum
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
