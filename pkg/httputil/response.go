package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	apperrors "github.com/toyboxhq/toybox/pkg/errors"
	"github.com/toyboxhq/toybox/pkg/logger"
	"github.com/toyboxhq/toybox/pkg/validator"
)

// ErrorBody is the uniform error response shape used by every endpoint:
//
//	{ "message": "...", "code": "TOY_NOT_FOUND", "error": "..." }
//
// Successful responses carry the resource JSON directly, without an envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Error   string `json:"error,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// If encoding fails, headers are already sent so nothing meaningful can be done.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates an error into the uniform error body. Services attach
// an operation code and status to every expected failure via AppError; anything
// else is treated as an internal error and logged. It prefers the
// request-scoped logger from context (set by the RequestLogger middleware)
// over the fallback logger.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	l := logger.FromContext(r.Context())
	if l == slog.Default() {
		l = fallback
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			l.ErrorContext(r.Context(), "store failure",
				slog.String("code", appErr.Code),
				slog.String("error", err.Error()),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
		}
		WriteJSON(w, appErr.Status, ErrorBody{
			Message: appErr.Message,
			Code:    appErr.Code,
			Error:   appErr.Detail,
		})
		return
	}

	// An error escaped the service layer without a code. Log it and fall back
	// to a generic internal error; internals never leak to clients.
	l.ErrorContext(r.Context(), "unclassified error",
		slog.String("error", err.Error()),
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
	)
	WriteJSON(w, apperrors.HTTPStatus(err), ErrorBody{
		Message: "an internal error occurred",
		Code:    apperrors.CodeInternal,
	})
}

// ParseUUID validates a path parameter as a UUID, writing a 400 response and
// returning false when it does not parse.
func ParseUUID(w http.ResponseWriter, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(param)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{
			Message: "invalid UUID: " + param,
			Code:    apperrors.CodeInvalidQuery,
		})
		return uuid.Nil, false
	}
	return id, true
}

// WriteValidationError writes a 400 response for a request that failed schema
// validation, identifying the offending fields in the diagnostic detail.
// Validation is rejected before any store access.
func WriteValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		WriteJSON(w, http.StatusBadRequest, ErrorBody{
			Message: "request validation failed",
			Code:    apperrors.CodeInvalidQuery,
			Error:   valErr.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusBadRequest, ErrorBody{
		Message: "invalid request body",
		Code:    apperrors.CodeInvalidQuery,
		Error:   err.Error(),
	})
}
