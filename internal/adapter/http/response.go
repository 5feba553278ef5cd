package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// errorBody is the error payload of both servers.
type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		logger.Error("encode response error", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, status int, detail string) {
	writeJSON(w, logger, status, errorBody{Detail: detail})
}
