package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// GetTeams lists the 30 franchises.
// GET /api/teams
func (h *Handler) GetTeams(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"teams": h.teamStats.Teams(),
	})
}

// GetTeamStandings returns the standings table.
// GET /api/team-standings?conference=East|West&sort_by=win_pct|wins|losses|team_name
func (h *Handler) GetTeamStandings(w http.ResponseWriter, r *http.Request) {
	conference := r.URL.Query().Get("conference")
	sortBy := r.URL.Query().Get("sort_by")

	res, err := h.teamStats.Standings(r.Context(), conference, sortBy)
	if err != nil {
		h.serviceError(w, err, "Team standings")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetPlayerStandings returns the player leaderboard. stat_category is an
// accepted alias for sort_by.
// GET /api/player-standings?conference=...&sort_by=points|rebounds|assists|steals|blocks&limit=N
func (h *Handler) GetPlayerStandings(w http.ResponseWriter, r *http.Request) {
	conference := r.URL.Query().Get("conference")
	sortBy := r.URL.Query().Get("sort_by")
	if sortBy == "" {
		sortBy = r.URL.Query().Get("stat_category")
	}

	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			h.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	res, err := h.playerStats.Standings(r.Context(), conference, sortBy, limit)
	if err != nil {
		h.serviceError(w, err, "Player standings")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetPlayer returns one player's season card, looked up by id or name.
// GET /api/player/{playerID}
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.errorResponse(w, http.StatusBadRequest, "Missing player ID")
		return
	}

	res, err := h.playerStats.Player(r.Context(), playerID)
	if err != nil {
		h.serviceError(w, err, "Player lookup")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetTeamOffensiveStats ranks teams by offense.
// GET /api/team-offensive-stats?conference=East|West
func (h *Handler) GetTeamOffensiveStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.teamStats.OffensiveStats(r.Context(), r.URL.Query().Get("conference"))
	if err != nil {
		h.serviceError(w, err, "Offensive stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}

// GetTeamDefensiveStats ranks teams by defense.
// GET /api/team-defensive-stats?conference=East|West
func (h *Handler) GetTeamDefensiveStats(w http.ResponseWriter, r *http.Request) {
	res, err := h.teamStats.DefensiveStats(r.Context(), r.URL.Query().Get("conference"))
	if err != nil {
		h.serviceError(w, err, "Defensive stats")
		return
	}
	h.jsonResponse(w, http.StatusOK, res)
}
