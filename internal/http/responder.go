package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"

	"github.com/TheAlanNix/gamechanger-stats-ui/internal/providers"
)

func writeJSON(w nethttp.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w nethttp.ResponseWriter, status int, message string, logger *slog.Logger) {
	writeJSON(w, status, map[string]string{"error": message}, logger)
}

func writeAuthError(w nethttp.ResponseWriter, message string, logger *slog.Logger) {
	writeJSON(w, nethttp.StatusUnauthorized, map[string]any{
		"auth_error": true,
		"message":    message,
	}, logger)
}

// respondError maps provider failures onto API responses: auth errors become
// the 401 auth payload, upstream errors keep their status when it is an
// error status, anything else is a 500.
func respondError(w nethttp.ResponseWriter, err error, logger *slog.Logger) {
	if _, ok := providers.AsAuthError(err); ok {
		writeAuthError(w, "Authentication failed. Token may be expired or invalid.", logger)
		return
	}
	if upErr, ok := providers.AsUpstreamError(err); ok {
		status := upErr.StatusCode
		if status < 400 {
			status = nethttp.StatusBadGateway
		}
		writeError(w, status, upErr.Error(), logger)
		return
	}
	writeError(w, nethttp.StatusInternalServerError, err.Error(), logger)
}

// respondRotationError is respondError with the original token-update
// wording, and a 400 fallback for non-provider failures.
func respondRotationError(w nethttp.ResponseWriter, err error, logger *slog.Logger) {
	if _, ok := providers.AsAuthError(err); ok {
		writeAuthError(w, "Invalid token provided", logger)
		return
	}
	if upErr, ok := providers.AsUpstreamError(err); ok {
		status := upErr.StatusCode
		if status < 400 {
			status = nethttp.StatusBadGateway
		}
		writeError(w, status, upErr.Error(), logger)
		return
	}
	writeError(w, nethttp.StatusBadRequest, err.Error(), logger)
}
