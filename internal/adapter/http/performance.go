package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"adperf/internal/core/domain"
	"adperf/internal/core/port"
)

// handleSample returns a few raw rows of the performance table.
func (h *Handler) handleSample(w http.ResponseWriter, r *http.Request) {
	rows, err := h.perf.Sample(r.Context())
	if err != nil {
		h.writeWarehouseError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rows)
}

// handlePerformance returns the deduplicated ad rows of one employee. It
// accepts `employee_acronym` (required), optional `start_date` and
// `end_date` (YYYY-MM-DD, both or neither) and `p1_only` (default true).
// Invalid parameters result in HTTP 422.
func (h *Handler) handlePerformance(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePerformanceQuery(w, r)
	if !ok {
		return
	}
	rows, err := h.perf.Performance(r.Context(), q)
	if err != nil {
		h.writeWarehouseError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rows)
}

// handlePerformanceSummary is handlePerformance reduced to one summary.
func (h *Handler) handlePerformanceSummary(w http.ResponseWriter, r *http.Request) {
	q, ok := h.parsePerformanceQuery(w, r)
	if !ok {
		return
	}
	summary, err := h.perf.Summary(r.Context(), q)
	if err != nil {
		h.writeWarehouseError(w, err)
		return
	}
	writeJSON(w, h.logger, http.StatusOK, summary)
}

func (h *Handler) parsePerformanceQuery(w http.ResponseWriter, r *http.Request) (domain.PerformanceQuery, bool) {
	var (
		params = r.URL.Query()
		q      = domain.PerformanceQuery{Acronym: params.Get("employee_acronym"), P1Only: true}
		err    error
	)

	if q.Acronym == "" {
		writeError(w, h.logger, http.StatusUnprocessableEntity, "employee_acronym is required")
		return q, false
	}

	q.Range, err = domain.ParseDateRange(params.Get("start_date"), params.Get("end_date"))
	if err != nil {
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
		return q, false
	}

	if raw := params.Get("p1_only"); raw != "" {
		q.P1Only, err = strconv.ParseBool(raw)
		if err != nil {
			writeError(w, h.logger, http.StatusUnprocessableEntity, "invalid p1_only")
			return q, false
		}
	}
	return q, true
}

// writeWarehouseError maps warehouse failures: rejected queries are 422,
// configuration and availability problems 503, and query failures 502.
func (h *Handler) writeWarehouseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, port.ErrInvalidQuery):
		writeError(w, h.logger, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, port.ErrWarehouseNotConfigured),
		errors.Is(err, port.ErrWarehouseUnavailable),
		errors.Is(err, port.ErrWarehouseThrottled):
		writeError(w, h.logger, http.StatusServiceUnavailable, err.Error())
	default:
		h.logger.Error("warehouse error", slog.Any("error", err))
		writeError(w, h.logger, http.StatusBadGateway, "BigQuery request failed: "+err.Error())
	}
}
