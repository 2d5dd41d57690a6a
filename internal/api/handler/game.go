package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/chessfed-go/internal/api/request"
	"github.com/mcoot/chessfed-go/internal/api/response"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/services/game"
)

// GameHandler handles game, move, and result endpoints
type GameHandler struct {
	gameController *game.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameController *game.Controller) *GameHandler {
	return &GameHandler{
		gameController: gameController,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.CompetitionID == "" {
		WriteError(w, NewInvalidRequestError("competition_id is required"))
		return
	}
	if req.WhiteID == "" || req.BlackID == "" {
		WriteError(w, NewInvalidRequestError("white_id and black_id are required"))
		return
	}

	g, err := h.gameController.CreateGame(r.Context(),
		model.CompetitionID(req.CompetitionID),
		model.PlayerID(req.WhiteID),
		model.PlayerID(req.BlackID),
	)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	g, err := h.gameController.GetGame(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// ListByCompetition handles GET /api/v1/competitions/{id}/games
func (h *GameHandler) ListByCompetition(w http.ResponseWriter, r *http.Request) {
	compID := model.CompetitionID(mux.Vars(r)["id"])

	games, err := h.gameController.ListGamesByCompetition(r.Context(), compID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GamesFromModel(games))
}

// AddMove handles POST /api/v1/games/{id}/moves
func (h *GameHandler) AddMove(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.AddMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	g, err := h.gameController.AddMove(r.Context(), id, req.Ply, req.Notation)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(g))
}

// SetResult handles POST /api/v1/games/{id}/result
func (h *GameHandler) SetResult(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	var req request.SetResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	result, err := model.ParseGameResult(req.Result)
	if err != nil {
		WriteError(w, err)
		return
	}

	g, err := h.gameController.SetResult(r.Context(), id, result)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(g))
}

// Delete handles DELETE /api/v1/games/{id}
func (h *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	if err := h.gameController.DeleteGame(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
