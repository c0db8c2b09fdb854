package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

// Stable numeric error codes carried next to the HTTP status.
const (
	codeUserNotFound      = 1001
	codeUserAlreadyExists = 1002
	codeIncorrectPassword = 1003
	codeUnprocessable     = 2001
	codeInvalidState      = 2002
	codeInternal          = 3001
	codeUnauthorized      = 4001
	codeForbidden         = 4002
	codeNotFound          = 5001
)

// errorResponse is the error envelope every failed request produces.
type errorResponse struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
	Errors    any    `json:"errors,omitempty"`
}

// listResponse is the envelope for paginated listings.
type listResponse struct {
	Data any             `json:"data"`
	Meta domain.PageMeta `json:"meta"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeList(w http.ResponseWriter, data any, meta domain.PageMeta) {
	writeJSON(w, http.StatusOK, listResponse{Data: data, Meta: meta})
}

func writeError(w http.ResponseWriter, status, code int, message string) {
	writeJSON(w, status, errorResponse{Message: message, ErrorCode: code})
}

// handleError maps domain errors to the error envelope. Internal failures
// are logged and never leak their cause to the caller.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Message:   "unprocessable entity",
			ErrorCode: codeUnprocessable,
			Errors:    vErr.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, codeUnprocessable, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, codeForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, domain.ErrDuplicateSlug),
		errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, codeUserAlreadyExists, "already exists")
	case errors.Is(err, domain.ErrInvalidState):
		writeError(w, http.StatusConflict, codeInvalidState, err.Error())
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, codeInternal, "internal server error")
	}
}
