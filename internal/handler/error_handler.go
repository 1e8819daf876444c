package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/4NTx/desafioFacilita/internal/models"
)

// handleError maps service errors to HTTP responses
func handleError(w http.ResponseWriter, err error, logger *slog.Logger) {
	// Check for custom AppError
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		status := mapErrorCodeToHTTPStatus(appErr.Code)

		if appErr.Code == models.CodeStorageUnavailable {
			// Log the underlying cause but keep the client message generic
			// so internal store details never leak.
			logger.Error("storage unavailable",
				slog.String("error", appErr.Error()),
			)
			respondError(w, status, appErr.Code, "storage temporarily unavailable")
			return
		}

		respondErrorFields(w, status, appErr.Code, appErr.Message, appErr.Fields)
		return
	}

	// Check for common errors
	switch {
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, models.CodeNotFound, err.Error())

	case errors.Is(err, models.ErrStorageUnavailable):
		logger.Error("storage unavailable", slog.String("error", err.Error()))
		respondError(w, http.StatusServiceUnavailable, models.CodeStorageUnavailable, "storage temporarily unavailable")

	default:
		// Log internal errors but don't expose details to client
		logger.Error("internal server error",
			slog.String("error", err.Error()),
		)
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An unexpected error occurred")
	}
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case models.CodeValidationFailed:
		return http.StatusBadRequest
	case models.CodeInvalidArgument:
		return http.StatusBadRequest
	case models.CodeNotFound:
		return http.StatusNotFound
	case models.CodeStorageUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
