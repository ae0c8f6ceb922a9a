package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gamechanger/nba-stats-api/internal/models"
)

// GetGames returns the scoreboard, categorized by default or a single
// category when ?category= is present.
// GET /api/games?category=today|upcoming|live
func (h *Handler) GetGames(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		h.jsonResponse(w, http.StatusOK, h.games.Games(r.Context()))
		return
	}

	res, err := h.games.GamesByCategory(r.Context(), category)
	if err != nil {
		h.serviceError(w, err, "Games")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetGamePrediction returns the win-probability pair for one game card.
// GET /api/predictions/{gameID}
func (h *Handler) GetGamePrediction(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing game ID")
		return
	}

	g, err := h.games.GameByID(r.Context(), gameID)
	if err != nil {
		h.serviceError(w, err, "Game prediction")
		return
	}
	h.jsonResponse(w, http.StatusOK, models.GamePredictionResponse{
		GameID:     g.ID,
		HomeTeam:   g.HomeTeam.Name,
		AwayTeam:   g.AwayTeam.Name,
		Prediction: g.Prediction,
	})
}

// GetGameAnalysis returns the matchup breakdown for one game.
// GET /api/game-analysis/{gameID}
func (h *Handler) GetGameAnalysis(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing game ID")
		return
	}

	res, err := h.analysis.GameAnalysis(r.Context(), gameID)
	if err != nil {
		h.serviceError(w, err, "Game analysis")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetPredictionFactors explains the factors behind a game-card prediction.
// GET /api/prediction-factors/{gameID}
func (h *Handler) GetPredictionFactors(w http.ResponseWriter, r *http.Request) {
	gameID := chi.URLParam(r, "gameID")
	if gameID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing game ID")
		return
	}

	res, err := h.analysis.PredictionFactors(r.Context(), gameID)
	if err != nil {
		h.serviceError(w, err, "Prediction factors")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}
