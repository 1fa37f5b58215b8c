package httpadapter

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"training-courses/internal/core/port"
)

// handleScenarios lists the available training scenarios.
func (h *Handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.ListScenarios(r.Context()))
}

// handleGenerate generates and publishes a training scenario. Parameters
// come from the query string; interviewers is a comma-separated list.
func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ref, err := strconv.ParseInt(q.Get("dateReference"), 10, 64)
	if err != nil {
		h.writeMessage(w, http.StatusBadRequest, false, "invalid dateReference")
		return
	}

	res, err := h.svc.Generate(r.Context(), port.GenerateRequest{
		ScenarioID:         q.Get("campaignId"),
		CampaignLabel:      q.Get("campaignLabel"),
		OrganisationUnitID: q.Get("organisationUnitId"),
		ReferenceDate:      ref,
		Trainees:           splitList(q.Get("interviewers")),
	})
	h.writeJSON(w, generateStatus(err), res)
}

func generateStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, port.ErrScenarioNotFound):
		return http.StatusNotFound
	case errors.Is(err, port.ErrPublicationFailed):
		return http.StatusBadGateway
	case errors.Is(err, port.ErrInvalidRequest),
		errors.Is(err, port.ErrTraineeValidation),
		errors.Is(err, port.ErrGenerationFailed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleDeleteCampaign deletes a campaign on both backends.
func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.svc.DeleteCampaign(r.Context(), id)
	switch {
	case err == nil:
		h.writeMessage(w, http.StatusOK, true, "Campaign "+id+" deleted")
	case errors.Is(err, port.ErrCampaignNotFound):
		h.writeMessage(w, http.StatusNotFound, false, "Campaign "+id+" not found")
	default:
		h.writeMessage(w, http.StatusBadGateway, false, "Error when deleting campaign "+id)
	}
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
