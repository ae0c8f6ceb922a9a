package logic

import (
	"math"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// Per-factor maximum swings. Each configured weight is on a 0-10 scale and
// scales these ceilings linearly.
const (
	homeCourtMaxSwing  = 0.10
	restDayStep        = 0.02 // per day of rest advantage
	recentFormMaxSwing = 0.15
)

// adjusted is the output of the situational adjustment: a probability pair
// summing to 1, each side within [0.01, 0.99], plus the explanation lines.
type adjusted struct {
	P1, P2        float64
	Contributions []models.FactorContribution
}

// adjustForFactors layers player availability and situational factors onto
// the baseline pair. Order matters: the availability discount is applied and
// renormalized first, then the home-court, rest, and recent-form terms
// accumulate per-side relative multipliers which are applied in one step.
// Deterministic: identical inputs always produce identical outputs.
func adjustForFactors(p1, p2 float64, f models.PerformanceFactors, impact1, impact2 float64) adjusted {
	// Player availability discount, renormalized.
	p1 = math.Max(0.01, p1*(1-impact1))
	p2 = math.Max(0.01, p2*(1-impact2))
	p1, p2 = normalize(p1, p2)

	var a1, a2 float64
	var contributions []models.FactorContribution

	// Home court. Both-home or neither-home means no adjustment.
	if f.HomeTeam == 1 || f.HomeTeam == 2 {
		term := (f.HomeCourtAdvantage / 10.0) * homeCourtMaxSwing
		if term > 0 {
			side := f.HomeTeam
			if side == 1 {
				a1 += term
			} else {
				a2 += term
			}
			contributions = append(contributions, models.FactorContribution{
				Name: "home_court_advantage", Impact: term, Side: side,
			})
		}
	}

	// Rest advantage. Positive differences favor side 1, negative side 2.
	restDiff := float64(f.Team1RestDays - f.Team2RestDays)
	if restTerm := restDiff * (f.RestDaysImpact / 10.0) * restDayStep; restTerm != 0 {
		if restTerm > 0 {
			a1 += restTerm
		} else {
			a2 += -restTerm
		}
		contributions = append(contributions, models.FactorContribution{
			Name: "rest_days", Impact: math.Abs(restTerm), Side: sideOf(restTerm),
		})
	}

	// Recent form, measured against the pair as it stands after the home
	// and rest terms, so a team already favored gains less from a hot streak.
	cur1, cur2 := normalize(p1*(1+a1), p2*(1+a2))
	formScale := (f.RecentFormWeight / 10.0) * recentFormMaxSwing
	form1 := winFraction(f.Team1RecentWins, f.Team1RecentLosses)
	form2 := winFraction(f.Team2RecentWins, f.Team2RecentLosses)
	if term := (form1 - cur1) * formScale; term != 0 {
		a1 += term
	}
	if term := (form2 - cur2) * formScale; term != 0 {
		a2 += term
	}
	if net := (form1-cur1)*formScale - (form2-cur2)*formScale; net != 0 {
		contributions = append(contributions, models.FactorContribution{
			Name: "recent_form", Impact: math.Abs(net), Side: sideOf(net),
		})
	}

	// Apply the accumulated relative multipliers, renormalize, clamp, and
	// renormalize once more so the clamp cannot break the sum invariant.
	p1, p2 = normalize(p1*(1+a1), p2*(1+a2))
	p1 = clamp(p1, 0.01, 0.99)
	p2 = clamp(p2, 0.01, 0.99)
	p1, p2 = normalize(p1, p2)

	return adjusted{P1: p1, P2: p2, Contributions: contributions}
}

// winFraction is the last-N win rate, neutral when no games are known.
func winFraction(wins, losses int) float64 {
	if wins+losses == 0 {
		return 0.5
	}
	return float64(wins) / float64(wins+losses)
}

// normalize scales a nonnegative pair to sum to 1. A zero-sum pair comes
// back as the uniform split.
func normalize(p1, p2 float64) (float64, float64) {
	sum := p1 + p2
	if sum == 0 || math.IsNaN(sum) {
		return 0.5, 0.5
	}
	return p1 / sum, p2 / sum
}

func sideOf(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return 2
	}
	return 0
}
