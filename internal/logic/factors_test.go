package logic

import (
	"math"
	"testing"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

func neutralFactors() models.PerformanceFactors {
	return models.PerformanceFactors{
		HomeCourtAdvantage: 5,
		RestDaysImpact:     5,
		RecentFormWeight:   0,
		Team1RestDays:      1,
		Team2RestDays:      1,
	}
}

func TestAdjustForFactorsSumInvariant(t *testing.T) {
	baselines := [][2]float64{{0.5, 0.5}, {0.3, 0.7}, {0.05, 0.95}, {0.99, 0.01}}
	weights := []float64{0, 5, 10}
	impacts := []float64{0, 0.142, 0.9}

	for _, base := range baselines {
		for _, hca := range weights {
			for _, rdi := range weights {
				for _, rfw := range weights {
					for homeTeam := 0; homeTeam <= 2; homeTeam++ {
						for _, imp := range impacts {
							f := models.PerformanceFactors{
								HomeCourtAdvantage: hca,
								RestDaysImpact:     rdi,
								RecentFormWeight:   rfw,
								HomeTeam:           homeTeam,
								Team1RestDays:      3,
								Team2RestDays:      1,
								Team1RecentWins:    8,
								Team1RecentLosses:  2,
								Team2RecentWins:    2,
								Team2RecentLosses:  8,
							}
							got := adjustForFactors(base[0], base[1], f, imp, 0)
							sum := got.P1 + got.P2
							if math.Abs(sum-1.0) > 1e-9 {
								t.Fatalf("sum = %v for base=%v factors=%+v impact=%v", sum, base, f, imp)
							}
							if got.P1 < 0.01 || got.P1 > 0.99 || got.P2 < 0.01 || got.P2 > 0.99 {
								t.Fatalf("out of bounds: %v/%v for base=%v factors=%+v", got.P1, got.P2, base, f)
							}
						}
					}
				}
			}
		}
	}
}

func TestAdjustForFactorsHomeCourtExactSwing(t *testing.T) {
	f := neutralFactors()
	f.HomeCourtAdvantage = 10
	f.HomeTeam = 1

	got := adjustForFactors(0.6, 0.4, f, 0, 0)

	// Full home weight is a 10% relative boost before renormalization.
	want1 := (0.6 * 1.10) / (0.6*1.10 + 0.4)
	if math.Abs(got.P1-want1) > 1e-9 {
		t.Errorf("P1 = %v, want %v", got.P1, want1)
	}
	if math.Abs(got.P1+got.P2-1.0) > 1e-9 {
		t.Errorf("pair does not sum to 1: %v", got.P1+got.P2)
	}

	found := false
	for _, c := range got.Contributions {
		if c.Name == "home_court_advantage" {
			found = true
			if c.Side != 1 || math.Abs(c.Impact-0.10) > 1e-9 {
				t.Errorf("home court contribution = %+v, want impact 0.10 side 1", c)
			}
		}
	}
	if !found {
		t.Error("missing home_court_advantage contribution")
	}
}

func TestAdjustForFactorsNeutralSiteNoHomeTerm(t *testing.T) {
	f := neutralFactors()
	f.HomeCourtAdvantage = 10
	f.HomeTeam = 0

	got := adjustForFactors(0.6, 0.4, f, 0, 0)
	if math.Abs(got.P1-0.6) > 1e-9 {
		t.Errorf("neutral site must not shift probabilities, got %v", got.P1)
	}
	for _, c := range got.Contributions {
		if c.Name == "home_court_advantage" {
			t.Errorf("unexpected home court contribution: %+v", c)
		}
	}
}

func TestAdjustForFactorsPlayerImpactDiscount(t *testing.T) {
	f := neutralFactors()

	impact := 0.142
	got := adjustForFactors(0.6, 0.4, f, impact, 0)

	want1 := (0.6 * (1 - impact)) / (0.6*(1-impact) + 0.4)
	if math.Abs(got.P1-want1) > 1e-9 {
		t.Errorf("P1 = %v, want %v", got.P1, want1)
	}
	if got.P1 >= 0.6 {
		t.Errorf("losing a player must reduce the team's probability, got %v", got.P1)
	}
}

func TestAdjustForFactorsRestAdvantage(t *testing.T) {
	f := neutralFactors()
	f.RestDaysImpact = 10
	f.Team1RestDays = 3
	f.Team2RestDays = 1

	got := adjustForFactors(0.5, 0.5, f, 0, 0)

	// Two extra rest days at full weight: +4% relative to side 1.
	want1 := (0.5 * 1.04) / (0.5*1.04 + 0.5)
	if math.Abs(got.P1-want1) > 1e-9 {
		t.Errorf("P1 = %v, want %v", got.P1, want1)
	}

	// Symmetric: rest disadvantage feeds side 2.
	f.Team1RestDays, f.Team2RestDays = 1, 3
	got = adjustForFactors(0.5, 0.5, f, 0, 0)
	if got.P1 >= 0.5 {
		t.Errorf("rest disadvantage should reduce side 1, got %v", got.P1)
	}
}

func TestAdjustForFactorsRecentFormDirection(t *testing.T) {
	f := neutralFactors()
	f.RecentFormWeight = 10
	f.Team1RecentWins, f.Team1RecentLosses = 9, 1
	f.Team2RecentWins, f.Team2RecentLosses = 1, 9

	got := adjustForFactors(0.5, 0.5, f, 0, 0)
	if got.P1 <= 0.5 {
		t.Errorf("hot team should gain probability, got %v", got.P1)
	}

	// The reported contribution is the net of the two applied form terms:
	// (0.9-0.5)*0.15 - (0.1-0.5)*0.15 = 0.12 in favor of side 1.
	var form *models.FactorContribution
	for i := range got.Contributions {
		if got.Contributions[i].Name == "recent_form" {
			form = &got.Contributions[i]
		}
	}
	if form == nil {
		t.Fatal("no recent_form contribution reported")
	}
	if math.Abs(form.Impact-0.12) > 1e-9 || form.Side != 1 {
		t.Errorf("recent_form contribution = %v side %d, want 0.12 side 1", form.Impact, form.Side)
	}
}

func TestAdjustForFactorsDeterministic(t *testing.T) {
	f := models.DefaultPerformanceFactors()
	f.HomeTeam = 2
	f.Team1RecentWins = 7

	a := adjustForFactors(0.45, 0.55, f, 0.05, 0.1)
	b := adjustForFactors(0.45, 0.55, f, 0.05, 0.1)
	if a.P1 != b.P1 || a.P2 != b.P2 {
		t.Errorf("not deterministic: %v/%v vs %v/%v", a.P1, a.P2, b.P1, b.P2)
	}
}

func TestWinFraction(t *testing.T) {
	if got := winFraction(0, 0); got != 0.5 {
		t.Errorf("no games should be neutral, got %v", got)
	}
	if got := winFraction(7, 3); got != 0.7 {
		t.Errorf("winFraction(7,3) = %v", got)
	}
}

func TestNormalizeDegeneratePair(t *testing.T) {
	p1, p2 := normalize(0, 0)
	if p1 != 0.5 || p2 != 0.5 {
		t.Errorf("zero-sum pair should normalize to uniform, got %v/%v", p1, p2)
	}
}
