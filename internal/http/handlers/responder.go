package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-data-client/internal/http/middleware"
	"github.com/preston-bernstein/nba-data-client/internal/logging"
	"github.com/preston-bernstein/nba-data-client/internal/result"
)

type errorBody struct {
	Error     string `json:"error"`
	Kind      string `json:"kind,omitempty"`
	Code      int    `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, errorBody{Error: message, RequestID: requestID(r)}, logger)
}

// writeInvalid rejects a request before any upstream call is made.
func writeInvalid(w http.ResponseWriter, r *http.Request, message string, logger *slog.Logger) {
	writeResultError(w, r, result.NewError(result.KindValidation, message, 0, nil), logger)
}

// writeResultError renders a classified failure with its HTTP status.
func writeResultError(w http.ResponseWriter, r *http.Request, err *result.Error, logger *slog.Logger) {
	body := errorBody{
		Error:     err.Message,
		Kind:      string(err.Kind),
		RequestID: requestID(r),
	}
	if err.HasCode() {
		body.Code = err.Code
	}
	writeJSON(w, statusFor(err.Kind), body, logger)
}

func statusFor(kind result.Kind) int {
	switch kind {
	case result.KindValidation:
		return http.StatusBadRequest
	case result.KindNotFound:
		return http.StatusNotFound
	case result.KindUnauthorized, result.KindServerError, result.KindHTTPError:
		return http.StatusBadGateway
	case result.KindTimeout:
		return http.StatusGatewayTimeout
	case result.KindNoConnectivity, result.KindNetwork:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func requestID(r *http.Request) string {
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return r.Header.Get(middleware.HeaderRequestID)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
