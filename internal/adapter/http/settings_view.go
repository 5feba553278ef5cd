package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adperf/internal/adapter/usecase"
	"adperf/internal/core/domain"
)

// EmployeeWarning flags an employee whose dates need attention.
type EmployeeWarning struct {
	Index   int    `json:"index"`
	Acronym string `json:"acronym"`
	Message string `json:"message"`
}

// SettingsView is the settings page: the document, the banner error and
// per-employee date warnings.
type SettingsView struct {
	Settings  domain.Settings   `json:"settings"`
	Error     *string           `json:"error"`
	IsLoading bool              `json:"isLoading"`
	Warnings  []EmployeeWarning `json:"warnings"`
}

func (h *DashboardHandler) settingsView() SettingsView {
	s := h.settings.Settings()
	view := SettingsView{
		Settings:  s,
		IsLoading: h.settings.Loading(),
		Warnings:  []EmployeeWarning{},
	}
	if msg := h.settings.Err(); msg != "" {
		view.Error = &msg
	}
	for i, e := range s.Employees {
		if msg := e.DateWarning(); msg != "" {
			view.Warnings = append(view.Warnings, EmployeeWarning{Index: i, Acronym: e.Acronym, Message: msg})
		}
	}
	return view
}

func (h *DashboardHandler) handleSettingsView(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.logger, http.StatusOK, h.settingsView())
}

// handleReplaceSettings replaces the whole document with the normalized
// body. A body that is not a JSON object results in HTTP 400.
func (h *DashboardHandler) handleReplaceSettings(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxSettingsBody))
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid body")
		return
	}
	m, err := usecase.ReplaceSettings(body)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}
	h.update(w, r, m)
}

func (h *DashboardHandler) handleAddEmployee(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, usecase.AddEmployee())
}

// handleUpdateEmployee applies a partial update to the employee at {index}.
func (h *DashboardHandler) handleUpdateEmployee(w http.ResponseWriter, r *http.Request) {
	i, ok := h.index(w, r)
	if !ok {
		return
	}
	var patch usecase.EmployeePatch
	if !h.decode(w, r, &patch) {
		return
	}
	h.update(w, r, usecase.UpdateEmployee(i, patch))
}

func (h *DashboardHandler) handleRemoveEmployee(w http.ResponseWriter, r *http.Request) {
	i, ok := h.index(w, r)
	if !ok {
		return
	}
	h.update(w, r, usecase.RemoveEmployee(i))
}

// handleUpdateThreshold changes the bounds of one band of one metric.
func (h *DashboardHandler) handleUpdateThreshold(w http.ResponseWriter, r *http.Request) {
	var patch usecase.ThresholdPatch
	if !h.decode(w, r, &patch) {
		return
	}
	metric := domain.Metric(chi.URLParam(r, "metric"))
	color := domain.Color(chi.URLParam(r, "color"))
	h.update(w, r, usecase.UpdateThreshold(metric, color, patch))
}

// update applies m and writes the settings view. A failed save keeps the
// change and is reported in the view with HTTP 200. Edits sent before the
// stored settings arrived are refused with 409.
func (h *DashboardHandler) update(w http.ResponseWriter, r *http.Request, m usecase.Mutator) {
	err := h.settings.Update(r.Context(), m)
	switch {
	case err == nil, errors.Is(err, usecase.ErrSettingsNotSaved):
		writeJSON(w, h.logger, http.StatusOK, h.settingsView())
	case errors.Is(err, usecase.ErrEmployeeNotFound),
		errors.Is(err, usecase.ErrUnknownMetric),
		errors.Is(err, usecase.ErrUnknownColor):
		writeError(w, h.logger, http.StatusNotFound, err.Error())
	case errors.Is(err, usecase.ErrSettingsLoading):
		writeError(w, h.logger, http.StatusConflict, err.Error())
	default:
		h.logger.Error("settings update error", slog.Any("error", err))
		writeError(w, h.logger, http.StatusInternalServerError, err.Error())
	}
}

func (h *DashboardHandler) index(w http.ResponseWriter, r *http.Request) (int, bool) {
	i, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeError(w, h.logger, http.StatusNotFound, usecase.ErrEmployeeNotFound.Error())
		return 0, false
	}
	return i, true
}

func (h *DashboardHandler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSettingsBody)).Decode(v); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid JSON")
		return false
	}
	return true
}
