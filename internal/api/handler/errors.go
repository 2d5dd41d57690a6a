package handler

import (
	"net/http"

	"github.com/mcoot/chessfed-go/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest      = apierr.CodeInvalidRequest
	CodeValidation          = apierr.CodeValidation
	CodePlayerNotFound      = apierr.CodePlayerNotFound
	CodeCompetitionNotFound = apierr.CodeCompetitionNotFound
	CodeGameNotFound        = apierr.CodeGameNotFound
	CodeEmailTaken          = apierr.CodeEmailTaken
	CodeAlreadyRegistered   = apierr.CodeAlreadyRegistered
	CodeNotRegistered       = apierr.CodeNotRegistered
	CodeSamePlayer          = apierr.CodeSamePlayer
	CodeGameFinished        = apierr.CodeGameFinished
	CodeResultAlreadySet    = apierr.CodeResultAlreadySet
	CodeInvalidResult       = apierr.CodeInvalidResult
	CodeMoveOutOfOrder      = apierr.CodeMoveOutOfOrder
	CodeInternalError       = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
