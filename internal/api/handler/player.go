package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/chessfed-go/internal/api/request"
	"github.com/mcoot/chessfed-go/internal/api/response"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/services/player"
)

// PlayerHandler handles player-related endpoints
type PlayerHandler struct {
	playerController *player.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerController *player.Controller) *PlayerHandler {
	return &PlayerHandler{
		playerController: playerController,
	}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	rating := model.DefaultRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	p, err := h.playerController.CreatePlayer(r.Context(), req.FirstName, req.LastName, req.Email, rating)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(p))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	p, err := h.playerController.GetPlayer(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// List handles GET /api/v1/players, with an optional q= search filter
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var (
		players []*model.Player
		err     error
	)
	if query != "" {
		players, err = h.playerController.SearchPlayers(r.Context(), query)
	} else {
		players, err = h.playerController.ListPlayers(r.Context())
	}
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Leaderboard handles GET /api/v1/players/leaderboard
func (h *PlayerHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerController.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Update handles PUT /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.playerController.UpdatePlayer(r.Context(), id, req.FirstName, req.LastName, req.Email)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// CorrectRating handles PUT /api/v1/players/{id}/rating
func (h *PlayerHandler) CorrectRating(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.CorrectRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	p, err := h.playerController.CorrectRating(r.Context(), id, req.Rating)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(p))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.playerController.DeletePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
