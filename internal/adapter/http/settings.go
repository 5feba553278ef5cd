package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"adperf/internal/adapter/usecase"
)

// maxSettingsBody bounds settings request bodies.
const maxSettingsBody = 1 << 20

// handleGetSettings returns the stored settings document, or the defaults
// when none is stored. Storage failures result in HTTP 500.
func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.settings.Get(r.Context())
	if err != nil {
		h.logger.Error("load settings error", slog.Any("error", err))
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to load settings: "+err.Error())
		return
	}
	writeRaw(w, doc)
}

// handlePutSettings stores the body verbatim and echoes it. The body must
// be a JSON object; anything else results in HTTP 422. Storage failures
// result in HTTP 400.
func (h *Handler) handlePutSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSettingsBody))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid body")
		return
	}

	doc, err := h.settings.Put(r.Context(), json.RawMessage(body))
	if errors.Is(err, usecase.ErrInvalidSettings) {
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("save settings error", slog.Any("error", err))
		writeError(w, h.logger, http.StatusBadRequest, "Failed to save settings: "+err.Error())
		return
	}
	writeRaw(w, doc)
}

func writeRaw(w http.ResponseWriter, doc json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}
