package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mcoot/chessfed-go/internal/api/request"
	"github.com/mcoot/chessfed-go/internal/api/response"
	"github.com/mcoot/chessfed-go/internal/model"
	"github.com/mcoot/chessfed-go/internal/services/competition"
)

// CompetitionHandler handles competition and registration endpoints
type CompetitionHandler struct {
	competitionController *competition.Controller
}

// NewCompetitionHandler creates a new competition handler
func NewCompetitionHandler(competitionController *competition.Controller) *CompetitionHandler {
	return &CompetitionHandler{
		competitionController: competitionController,
	}
}

// Create handles POST /api/v1/competitions
func (h *CompetitionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	startDate, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		WriteError(w, NewInvalidRequestError("start_date must be RFC 3339"))
		return
	}

	comp, err := h.competitionController.CreateCompetition(r.Context(), req.Name, req.Location, startDate)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CompetitionFromModel(comp))
}

// Get handles GET /api/v1/competitions/{id}
func (h *CompetitionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])

	comp, err := h.competitionController.GetCompetition(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionFromModel(comp))
}

// List handles GET /api/v1/competitions
func (h *CompetitionHandler) List(w http.ResponseWriter, r *http.Request) {
	comps, err := h.competitionController.ListCompetitions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionsFromModel(comps))
}

// Update handles PUT /api/v1/competitions/{id}
func (h *CompetitionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])

	var req request.UpdateCompetitionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	comp, err := h.competitionController.UpdateCompetition(r.Context(), id, req.Name, req.Location)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CompetitionFromModel(comp))
}

// Delete handles DELETE /api/v1/competitions/{id}
func (h *CompetitionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])

	if err := h.competitionController.DeleteCompetition(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Register handles POST /api/v1/competitions/{id}/registrations
func (h *CompetitionHandler) Register(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])

	var req request.RegisterPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("player_id is required"))
		return
	}

	if err := h.competitionController.RegisterPlayer(r.Context(), id, model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	comp, err := h.competitionController.GetCompetition(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CompetitionFromModel(comp))
}

// Unregister handles DELETE /api/v1/competitions/{id}/registrations/{player_id}
func (h *CompetitionHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := model.CompetitionID(vars["id"])
	playerID := model.PlayerID(vars["player_id"])

	if err := h.competitionController.UnregisterPlayer(r.Context(), id, playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Players handles GET /api/v1/competitions/{id}/players
func (h *CompetitionHandler) Players(w http.ResponseWriter, r *http.Request) {
	id := model.CompetitionID(mux.Vars(r)["id"])

	players, err := h.competitionController.RegisteredPlayers(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}
