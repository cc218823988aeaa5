package handler

import (
	"encoding/json"
	"net/http"

	"github.com/davidgomes/haxball-clone/internal/api/request"
	"github.com/davidgomes/haxball-clone/internal/api/response"
	"github.com/davidgomes/haxball-clone/internal/metrics"
	"github.com/davidgomes/haxball-clone/internal/model"
	"github.com/davidgomes/haxball-clone/internal/services/match"
	"github.com/davidgomes/haxball-clone/internal/services/position"
	"github.com/davidgomes/haxball-clone/internal/services/scoring"
)

// GameHandler handles match-level endpoints
type GameHandler struct {
	matchService    *match.Service
	scoringService  *scoring.Service
	positionService *position.Service
	metrics         *metrics.Metrics
}

// NewGameHandler creates a new game handler
func NewGameHandler(matchService *match.Service, scoringService *scoring.Service, positionService *position.Service, m *metrics.Metrics) *GameHandler {
	return &GameHandler{
		matchService:    matchService,
		scoringService:  scoringService,
		positionService: positionService,
		metrics:         m,
	}
}

// Initialize handles POST /api/v1/match/initialize
func (h *GameHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	state, ball, err := h.matchService.Initialize(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.InitializeResponse{
		GameState: response.GameStateFromModel(state),
		Ball:      response.BallFromModel(ball),
	})
}

// Snapshot handles GET /api/v1/snapshot
func (h *GameHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := h.matchService.Snapshot(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SnapshotFromModel(snap))
}

// UpdateBall handles PUT /api/v1/ball
func (h *GameHandler) UpdateBall(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ball, err := h.positionService.UpdateBall(r.Context(), req.X, req.Y, req.VelocityX, req.VelocityY)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BallFromModel(ball))
}

// ScoreGoal handles POST /api/v1/goals
func (h *GameHandler) ScoreGoal(w http.ResponseWriter, r *http.Request) {
	var req request.ScoreGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	team, err := model.ParseTeam(req.Team)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := h.scoringService.ScoreGoal(r.Context(), team)
	if err != nil {
		WriteError(w, err)
		return
	}

	h.metrics.Goals.WithLabelValues(string(team)).Inc()
	response.JSON(w, http.StatusOK, response.GameStateFromModel(state))
}
