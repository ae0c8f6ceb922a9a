package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gamechanger/nba-stats-api/internal/logic"
)

// Index describes the API for anyone poking at the root path.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.jsonResponse(w, http.StatusOK, map[string]interface{}{
		"service":         "nba-stats-api",
		"model_available": h.prediction.ModelAvailable(),
		"endpoints": []string{
			"POST /api/predict-winner",
			"POST /predict",
			"POST /predict-with-performance-factors",
			"POST /api/simulation",
			"GET /api/games",
			"GET /api/teams",
			"GET /api/team-standings",
			"GET /api/player-standings",
			"GET /api/player/{playerID}",
			"GET /api/predictions/{gameID}",
			"GET /api/team-offensive-stats",
			"GET /api/team-defensive-stats",
			"GET /api/game-analysis/{gameID}",
			"GET /api/prediction-factors/{gameID}",
		},
	})
}

// Health check endpoint
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// Ready check endpoint. Only configured dependencies are checked; the
// service runs fine without Postgres or Redis.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	checks := map[string]bool{
		"model": h.prediction.ModelAvailable(),
	}
	if h.pg != nil {
		checks["postgres"] = h.pg.Ping(ctx) == nil
	}
	if h.redis != nil {
		checks["redis"] = h.redis.Ping(ctx).Err() == nil
	}

	// A missing model degrades predictions but does not make the service
	// unready; standings and games still work.
	ready := true
	for name, ok := range checks {
		if name != "model" && !ok {
			ready = false
			break
		}
	}

	body := map[string]interface{}{
		"ready":  ready,
		"checks": checks,
	}
	if h.audit != nil {
		body["auditQueueDepth"] = h.audit.QueueDepth()
	}

	w.Header().Set("Content-Type", "application/json")
	if !ready {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(body)
}

func (h *Handler) jsonResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) errorResponse(w http.ResponseWriter, status int, message string) {
	h.jsonResponse(w, status, map[string]string{"error": message})
}

// serviceError maps service failures onto the HTTP contract: bad parameters
// are the client's problem, everything else is a 500.
func (h *Handler) serviceError(w http.ResponseWriter, err error, what string) {
	if errors.Is(err, logic.ErrInvalidParam) {
		h.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	h.logger.Errorw(what+" failed", "error", err)
	h.errorResponse(w, http.StatusInternalServerError, err.Error())
}

func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}
	if err := h.validator.Struct(dest); err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Missing or invalid fields: "+err.Error())
		return false
	}
	return true
}
