package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/chessfed-go/internal/api/handler"
	"github.com/mcoot/chessfed-go/internal/api/middleware"
	"github.com/mcoot/chessfed-go/internal/services/competition"
	"github.com/mcoot/chessfed-go/internal/services/game"
	"github.com/mcoot/chessfed-go/internal/services/player"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger                *slog.Logger
	PlayerController      *player.Controller
	CompetitionController *competition.Controller
	GameController        *game.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.PlayerController)
	competitionHandler := handler.NewCompetitionHandler(cfg.CompetitionController)
	gameHandler := handler.NewGameHandler(cfg.GameController)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes; fixed paths register before the {id} wildcard
	api.HandleFunc("/players/leaderboard", playerHandler.Leaderboard).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/rating", playerHandler.CorrectRating).Methods(http.MethodPut)

	// Competition routes
	api.HandleFunc("/competitions", competitionHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/competitions", competitionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/competitions/{id}", competitionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/competitions/{id}", competitionHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/competitions/{id}", competitionHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/competitions/{id}/registrations", competitionHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/competitions/{id}/registrations/{player_id}", competitionHandler.Unregister).Methods(http.MethodDelete)
	api.HandleFunc("/competitions/{id}/players", competitionHandler.Players).Methods(http.MethodGet)
	api.HandleFunc("/competitions/{id}/games", gameHandler.ListByCompetition).Methods(http.MethodGet)

	// Game routes
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}", gameHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/games/{id}/moves", gameHandler.AddMove).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}/result", gameHandler.SetResult).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
