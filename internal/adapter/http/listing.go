package httpadapter

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"training-courses/internal/core/port"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

// handleTrainingCourses proxies the case-management campaign list.
func (h *Handler) handleTrainingCourses(w http.ResponseWriter, r *http.Request) {
	admin, _ := strconv.ParseBool(r.URL.Query().Get("admin"))
	campaigns, err := h.svc.ListTrainingCourses(r.Context(), admin)
	if err != nil {
		h.logger.Error("list training courses error", slog.Any("error", err))
		h.writeMessage(w, http.StatusBadGateway, false, "Error when listing training courses")
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

func (h *Handler) handleUserOrganisationUnit(w http.ResponseWriter, r *http.Request) {
	ou, err := h.svc.UserOrganisationUnit(r.Context())
	if err != nil || ou == nil {
		h.logger.Warn("user organisation unit not found", slog.Any("error", err))
		h.writeMessage(w, http.StatusNotFound, false, "Organisation unit not found")
		return
	}
	h.writeJSON(w, http.StatusOK, ou)
}

func (h *Handler) handleOrganisationUnits(w http.ResponseWriter, r *http.Request) {
	units, err := h.svc.OrganisationUnits(r.Context())
	if err != nil {
		h.logger.Error("list organisation units error", slog.Any("error", err))
		h.writeMessage(w, http.StatusBadGateway, false, "Error when listing organisation units")
		return
	}
	if len(units) == 0 {
		h.writeMessage(w, http.StatusNotFound, false, "No organisation unit")
		return
	}
	h.writeJSON(w, http.StatusOK, units)
}

// handleRuns lists recent generation runs, newest first.
func (h *Handler) handleRuns(w http.ResponseWriter, r *http.Request) {
	limit := defaultRunsLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			h.writeMessage(w, http.StatusBadRequest, false, "invalid limit")
			return
		}
		limit = min(n, maxRunsLimit)
	}

	runs, err := h.svc.ListRuns(r.Context(), limit)
	switch {
	case errors.Is(err, port.ErrJournalDisabled):
		h.writeMessage(w, http.StatusNotImplemented, false, "Run journal is disabled")
	case err != nil:
		h.logger.Error("list runs error", slog.Any("error", err))
		h.writeMessage(w, http.StatusInternalServerError, false, "Error when listing runs")
	default:
		h.writeJSON(w, http.StatusOK, runs)
	}
}

// handleHealthcheck reports the reachability of both backends. It answers
// 503 when either is down.
func (h *Handler) handleHealthcheck(w http.ResponseWriter, r *http.Request) {
	report := h.svc.Health(r.Context())
	ok := report.CaseManagement && report.Questionnaire
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	h.writeMessage(w, status, ok, fmt.Sprintf("CaseManagement-API : %t - Questionnaire-API : %t",
		report.CaseManagement, report.Questionnaire))
}
