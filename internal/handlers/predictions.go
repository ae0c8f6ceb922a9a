package handlers

import (
	"errors"
	"net/http"

	"github.com/gamechanger/nba-stats-api/internal/logic"
	"github.com/gamechanger/nba-stats-api/internal/models"
)

// PredictWinner scores two raw stat records against each other.
// POST /api/predict-winner {team1_stats, team2_stats}
func (h *Handler) PredictWinner(w http.ResponseWriter, r *http.Request) {
	var req models.PredictWinnerRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.prediction.PredictFromStats(req.Team1Stats, req.Team2Stats)
	if err != nil {
		h.predictionError(w, err, req.Team1Stats.TeamAbbr, req.Team2Stats.TeamAbbr)
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// PredictTeams scores two teams by name; the data provider resolves stats.
// POST /predict {team1, team2}
func (h *Handler) PredictTeams(w http.ResponseWriter, r *http.Request) {
	var req models.PredictTeamsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.prediction.PredictTeams(r.Context(), req.Team1, req.Team2)
	if err != nil {
		h.predictionError(w, err, req.Team1, req.Team2)
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// PredictWithFactors runs the full pipeline: baseline, player availability,
// and situational factors.
// POST /predict-with-performance-factors
func (h *Handler) PredictWithFactors(w http.ResponseWriter, r *http.Request) {
	var req models.PredictWithFactorsRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.prediction.PredictWithFactors(r.Context(), &req)
	if err != nil {
		h.predictionError(w, err, req.Team1, req.Team2)
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// Simulate runs a custom matchup with player availability toggles.
// POST /api/simulation {home_team, away_team, player_adjustments}
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	var req models.SimulationRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.prediction.Simulate(r.Context(), &req)
	if err != nil {
		h.predictionError(w, err, req.HomeTeam, req.AwayTeam)
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// predictionError maps pipeline errors to responses. Malformed input is the
// client's fault; anything else gets a 500 carrying a valid-shaped fallback
// payload so UI clients can degrade instead of breaking.
func (h *Handler) predictionError(w http.ResponseWriter, err error, team1, team2 string) {
	if errors.Is(err, logic.ErrPreprocessing) {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	h.logger.Errorw("Prediction failed", "team1", team1, "team2", team2, "error", err)
	h.jsonResponse(w, http.StatusInternalServerError, models.PredictionResult{
		Winner:         team1,
		Team1WinProb:   0.5,
		Team2WinProb:   0.5,
		ModelAvailable: h.prediction.ModelAvailable(),
		Fallback:       true,
		Error:          err.Error(),
	})
}
