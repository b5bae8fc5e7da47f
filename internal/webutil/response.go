package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go_5_flashcard_keep/internal/model"
)

// HandleError converts an error into the JSON error envelope. This is the
// single exit point for errors on the API surface; nothing above it writes
// error bodies by hand (the generate contract endpoint is the one exception,
// its body shape is fixed by the external contract).
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		// Known sentinels still get a reasonable code/message pair even when
		// nobody wrapped them in an AppError.
		switch {
		case errors.Is(err, model.ErrNotFound):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{Code: "NOT_FOUND", Message: "The requested resource was not found."}}
		case errors.Is(err, model.ErrConflict):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{Code: "CONFLICT", Message: "A resource with this name already exists."}}
		case errors.Is(err, model.ErrInvalidInput):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{Code: "INVALID_INPUT", Message: "The request is invalid."}}
		case errors.Is(err, model.ErrForbidden):
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{Code: "FORBIDDEN", Message: "You do not have access to this resource."}}
		default:
			logger.Error("Unhandled error", slog.Any("error", err))
			errResp = model.APIErrorResponse{Error: model.ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Message: "An internal error occurred."}}
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, model.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUpstream),
		errors.Is(err, model.ErrBadFormat),
		errors.Is(err, model.ErrBadSchema):
		// The generation service failing or returning garbage is not the
		// caller's fault; surfaced as a retryable server-side failure.
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as a JSON response.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to encode response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
