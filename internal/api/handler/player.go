package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/davidgomes/haxball-clone/internal/api/request"
	"github.com/davidgomes/haxball-clone/internal/api/response"
	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/services/match"
	"github.com/davidgomes/haxball-clone/internal/services/position"
	"github.com/davidgomes/haxball-clone/internal/services/session"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	sessionService  *session.Service
	positionService *position.Service
	matchService    *match.Service
	metrics         *metrics.Metrics
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(sessionService *session.Service, positionService *position.Service, matchService *match.Service, m *metrics.Metrics) *PlayerHandler {
	return &PlayerHandler{
		sessionService:  sessionService,
		positionService: positionService,
		matchService:    matchService,
		metrics:         m,
	}
}

// Join handles POST /api/v1/players
func (h *PlayerHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	team, err := model.ParseTeam(req.Team)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.sessionService.Join(r.Context(), req.Name, team)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.PlayersJoined.Inc()
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Leave handles POST /api/v1/players/{id}/leave
func (h *PlayerHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	ok, err := h.sessionService.Leave(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaveResponse{Success: ok})
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.matchService.ListOnlinePlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// UpdatePosition handles PUT /api/v1/players/{id}/position
func (h *PlayerHandler) UpdatePosition(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.positionService.UpdatePlayerPosition(r.Context(), id, req.X, req.Y, req.VelocityX, req.VelocityY)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.PositionUpdates.Inc()
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Move handles POST /api/v1/players/{id}/move
func (h *PlayerHandler) Move(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.positionService.MovePlayer(r.Context(), id, req.DirectionX, req.DirectionY, req.Dt)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.PositionUpdates.Inc()
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
