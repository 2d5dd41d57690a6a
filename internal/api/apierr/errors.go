package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mcoot/chessfed-go/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest      = "INVALID_REQUEST"
	CodeValidation          = "VALIDATION_FAILED"
	CodePlayerNotFound      = "PLAYER_NOT_FOUND"
	CodeCompetitionNotFound = "COMPETITION_NOT_FOUND"
	CodeGameNotFound        = "GAME_NOT_FOUND"
	CodeEmailTaken          = "EMAIL_TAKEN"
	CodeAlreadyRegistered   = "ALREADY_REGISTERED"
	CodeNotRegistered       = "NOT_REGISTERED"
	CodeSamePlayer          = "SAME_PLAYER"
	CodeGameFinished        = "GAME_FINISHED"
	CodeResultAlreadySet    = "RESULT_ALREADY_SET"
	CodeInvalidResult       = "INVALID_RESULT"
	CodeMoveOutOfOrder      = "MOVE_OUT_OF_ORDER"
	CodeInternalError       = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrCompetitionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCompetitionNotFound, "Competition not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrEmailTaken):
		return &httpError{http.StatusConflict, APIError{CodeEmailTaken, "Email is already in use"}}
	case errors.Is(err, model.ErrAlreadyRegistered):
		return &httpError{http.StatusConflict, APIError{CodeAlreadyRegistered, "Player is already registered"}}
	case errors.Is(err, model.ErrNotRegistered):
		return &httpError{http.StatusConflict, APIError{CodeNotRegistered, "Both players must be registered for the competition"}}
	case errors.Is(err, model.ErrSamePlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeSamePlayer, "A player cannot play against themselves"}}
	case errors.Is(err, model.ErrGameFinished):
		return &httpError{http.StatusConflict, APIError{CodeGameFinished, "Game is already decided"}}
	case errors.Is(err, model.ErrResultAlreadySet):
		return &httpError{http.StatusConflict, APIError{CodeResultAlreadySet, "Result has already been recorded"}}
	case errors.Is(err, model.ErrInvalidResult):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidResult, "Result must be white_win, black_win, or draw"}}
	case errors.Is(err, model.ErrMoveOutOfOrder):
		return &httpError{http.StatusConflict, APIError{CodeMoveOutOfOrder, "Move ply must be greater than the last recorded ply"}}
	case errors.Is(err, model.ErrValidation):
		return &httpError{http.StatusBadRequest, APIError{CodeValidation, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
