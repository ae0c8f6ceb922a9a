package logic

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gamechanger/nba-stats-api/internal/mlmodel"
	"github.com/gamechanger/nba-stats-api/internal/models"
)

type predictionService struct {
	artifacts *mlmodel.Artifacts // nil when model loading failed at startup
	provider  DataProvider
	audit     AuditSink
	logger    *zap.SugaredLogger
}

// NewPredictionService wires the win-probability pipeline. A nil artifacts
// bundle puts the service in its disabled state: every call returns the
// flagged 50/50 fallback instead of erroring, so game listings keep working.
func NewPredictionService(artifacts *mlmodel.Artifacts, provider DataProvider, audit AuditSink, logger *zap.Logger) PredictionService {
	return &predictionService{
		artifacts: artifacts,
		provider:  provider,
		audit:     audit,
		logger:    logger.Sugar(),
	}
}

func (s *predictionService) ModelAvailable() bool {
	return s.artifacts != nil
}

// baseline scores each team independently and renormalizes the pair. The
// classifier was trained on single-team-outcome rows, so the two sides are
// never scored jointly.
func (s *predictionService) baseline(team1, team2 *models.TeamStatRecord) (float64, float64, error) {
	if s.artifacts == nil {
		return 0, 0, ErrModelUnavailable
	}

	v1, err := s.artifacts.Preprocess(team1)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: team1: %v", ErrPreprocessing, err)
	}
	v2, err := s.artifacts.Preprocess(team2)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: team2: %v", ErrPreprocessing, err)
	}

	prob1 := s.artifacts.Classifier.PredictProbability(v1)
	prob2 := s.artifacts.Classifier.PredictProbability(v2)
	sum := prob1 + prob2
	if sum == 0 || math.IsNaN(sum) {
		return 0, 0, ErrDegeneratePrediction
	}

	return prob1 / sum, prob2 / sum, nil
}

func (s *predictionService) PredictFromStats(team1, team2 *models.TeamStatRecord) (*models.PredictionResult, error) {
	name1 := team1.TeamAbbr
	if name1 == "" {
		name1 = "team1"
	}
	name2 := team2.TeamAbbr
	if name2 == "" {
		name2 = "team2"
	}

	p1, p2, err := s.baseline(team1, team2)
	if err != nil {
		if errors.Is(err, ErrPreprocessing) {
			return nil, err
		}
		return s.fallbackResult(name1, name2, err, "predict-winner"), nil
	}

	res := s.buildResult(name1, name2, p1, p2)
	s.recordAudit(res, name1, name2, "predict-winner")
	return res, nil
}

func (s *predictionService) PredictTeams(ctx context.Context, team1, team2 string) (*models.PredictionResult, error) {
	rec1, err := s.provider.TeamStats(ctx, team1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, team1)
	}
	rec2, err := s.provider.TeamStats(ctx, team2)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, team2)
	}

	p1, p2, err := s.baseline(rec1, rec2)
	if err != nil {
		if errors.Is(err, ErrPreprocessing) {
			return nil, err
		}
		return s.fallbackResult(team1, team2, err, "predict"), nil
	}

	res := s.buildResult(team1, team2, p1, p2)
	s.recordAudit(res, team1, team2, "predict")
	return res, nil
}

func (s *predictionService) PredictWithFactors(ctx context.Context, req *models.PredictWithFactorsRequest) (*models.PredictionResult, error) {
	rec1, err := s.provider.TeamStats(ctx, req.Team1)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, req.Team1)
	}
	rec2, err := s.provider.TeamStats(ctx, req.Team2)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, req.Team2)
	}

	p1, p2, err := s.baseline(rec1, rec2)
	if err != nil {
		if errors.Is(err, ErrPreprocessing) {
			return nil, err
		}
		return s.fallbackResult(req.Team1, req.Team2, err, "predict-with-performance-factors"), nil
	}

	factors := s.resolveFactors(ctx, req.PerformanceFactors, req.Team1, req.Team2)
	impacts1 := s.playerImpacts(ctx, req.Team1, req.InactivePlayers.Team1)
	impacts2 := s.playerImpacts(ctx, req.Team2, req.InactivePlayers.Team2)

	adj := adjustForFactors(p1, p2, factors, teamImpact(impacts1), teamImpact(impacts2))

	res := s.buildResult(req.Team1, req.Team2, adj.P1, adj.P2)
	res.PlayerImpacts = append(impacts1, impacts2...)
	res.PerformanceFactors = &factors
	res.Explanation = adj.Contributions
	s.recordAudit(res, req.Team1, req.Team2, "predict-with-performance-factors")
	return res, nil
}

func (s *predictionService) Simulate(ctx context.Context, req *models.SimulationRequest) (*models.PredictionResult, error) {
	homeRec, err := s.provider.TeamStats(ctx, req.HomeTeam)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, req.HomeTeam)
	}
	awayRec, err := s.provider.TeamStats(ctx, req.AwayTeam)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDataUnavailable, req.AwayTeam)
	}

	p1, p2, err := s.baseline(homeRec, awayRec)
	if err != nil {
		if errors.Is(err, ErrPreprocessing) {
			return nil, err
		}
		return s.fallbackResult(req.HomeTeam, req.AwayTeam, err, "simulation"), nil
	}

	// Ruled-out players attach to a side by their record's team affiliation.
	var impactsHome, impactsAway []models.PlayerImpact
	for name, active := range req.PlayerAdjustments {
		if active {
			continue
		}
		rec := s.provider.PlayerStats(ctx, name)
		impact := models.PlayerImpact{PlayerName: name, Team: rec.TeamAbbr, Impact: PlayerImpactScore(rec)}
		switch rec.TeamAbbr {
		case homeRec.TeamAbbr:
			impactsHome = append(impactsHome, impact)
		case awayRec.TeamAbbr:
			impactsAway = append(impactsAway, impact)
		default:
			s.logger.Warnw("Simulation player matches neither side, ignoring",
				"player", name, "team", rec.TeamAbbr)
		}
	}

	factors := s.resolveFactors(ctx, nil, req.HomeTeam, req.AwayTeam)
	factors.HomeTeam = 1

	adj := adjustForFactors(p1, p2, factors, teamImpact(impactsHome), teamImpact(impactsAway))

	res := s.buildResult(req.HomeTeam, req.AwayTeam, adj.P1, adj.P2)
	res.PlayerImpacts = append(impactsHome, impactsAway...)
	res.PerformanceFactors = &factors
	res.Explanation = adj.Contributions
	s.recordAudit(res, req.HomeTeam, req.AwayTeam, "simulation")
	return res, nil
}

// PredictionForGame produces the embedded game-card prediction. It never
// fails; any pipeline problem degrades to the flagged uniform split.
func (s *predictionService) PredictionForGame(ctx context.Context, homeTeam, awayTeam string) *models.GamePrediction {
	res, err := s.PredictTeams(ctx, homeTeam, awayTeam)
	if err != nil {
		s.logger.Warnw("Game card prediction failed, serving uniform split",
			"home", homeTeam, "away", awayTeam, "error", err)
		return &models.GamePrediction{HomeWinProbability: 0.5, AwayWinProbability: 0.5}
	}
	return &models.GamePrediction{
		HomeWinProbability: res.Team1WinProb,
		AwayWinProbability: res.Team2WinProb,
		ModelAvailable:     res.ModelAvailable,
	}
}

// resolveFactors returns the request's factors verbatim, or the neutral
// defaults enriched with each side's live schedule context when the client
// sent none.
func (s *predictionService) resolveFactors(ctx context.Context, supplied *models.PerformanceFactors, team1, team2 string) models.PerformanceFactors {
	if supplied != nil {
		return *supplied
	}
	f := models.DefaultPerformanceFactors()
	sit1 := s.provider.TeamSituation(ctx, team1)
	sit2 := s.provider.TeamSituation(ctx, team2)
	f.Team1RestDays = sit1.RestDays
	f.Team1RecentWins = sit1.RecentWins
	f.Team1RecentLosses = sit1.RecentLosses
	f.Team2RestDays = sit2.RestDays
	f.Team2RecentWins = sit2.RecentWins
	f.Team2RecentLosses = sit2.RecentLosses
	return f
}

func (s *predictionService) playerImpacts(ctx context.Context, team string, names []string) []models.PlayerImpact {
	out := make([]models.PlayerImpact, 0, len(names))
	for _, name := range names {
		rec := s.provider.PlayerStats(ctx, name)
		out = append(out, models.PlayerImpact{
			PlayerName: name,
			Team:       team,
			Impact:     PlayerImpactScore(rec),
		})
	}
	return out
}

func (s *predictionService) buildResult(team1, team2 string, p1, p2 float64) *models.PredictionResult {
	winner := team1
	if p2 > p1 {
		winner = team2
	}
	return &models.PredictionResult{
		Winner:         winner,
		Team1WinProb:   p1,
		Team2WinProb:   p2,
		ModelAvailable: true,
	}
}

// fallbackResult is the flagged uniform split served when the classifier is
// unavailable or degenerate. Deterministic on purpose.
func (s *predictionService) fallbackResult(team1, team2 string, cause error, endpoint string) *models.PredictionResult {
	s.logger.Warnw("Serving fallback prediction", "team1", team1, "team2", team2, "error", cause)
	res := &models.PredictionResult{
		Winner:         team1,
		Team1WinProb:   0.5,
		Team2WinProb:   0.5,
		ModelAvailable: s.artifacts != nil,
		Fallback:       true,
		Error:          cause.Error(),
	}
	s.recordAudit(res, team1, team2, endpoint)
	return res
}

func (s *predictionService) recordAudit(res *models.PredictionResult, team1, team2, endpoint string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(models.PredictionRecord{
		ID:           uuid.NewString(),
		Team1:        team1,
		Team2:        team2,
		Team1WinProb: res.Team1WinProb,
		Team2WinProb: res.Team2WinProb,
		Winner:       res.Winner,
		Fallback:     res.Fallback,
		Endpoint:     endpoint,
		CreatedAt:    time.Now().UTC(),
	})
}
