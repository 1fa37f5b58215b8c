package questionnaire

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"training-courses/internal/adapter/rest"
	"training-courses/internal/core/domain"
)

func newTestClient(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(rest.NewClient(srv.URL, time.Second, logger), logger)
}

func TestCreateCampaignOmitsModelsAndNomenclatures(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/campaigns", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.JSONEq(t, `"C1"`, string(body["id"]))
		assert.JSONEq(t, `["Q1_OU_1"]`, string(body["questionnaireIds"]))
		assert.NotContains(t, body, "questionnaireModels")
		assert.NotContains(t, body, "nomenclatures")
	})
	c := newTestClient(t, r)

	err := c.CreateCampaign(context.Background(), domain.QuestionnaireCampaign{
		ID:                  "C1",
		Label:               "l",
		QuestionnaireIDs:    []string{"Q1_OU_1"},
		QuestionnaireModels: []domain.QuestionnaireModel{{ID: "Q1_OU_1"}},
		Nomenclatures:       []domain.Nomenclature{{ID: "N1"}},
	})
	require.NoError(t, err)
}

func TestCreateSurveyUnitPath(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/campaign/{id}/survey-unit", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "C1", chi.URLParam(req, "id"))
		var body domain.QuestionnaireSurveyUnit
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "su-1", body.ID)
		assert.Equal(t, "Q1", body.QuestionnaireID)
		assert.JSONEq(t, `{"a":1}`, string(body.Data))
	})
	c := newTestClient(t, r)

	err := c.CreateSurveyUnit(context.Background(), "C1", domain.QuestionnaireSurveyUnit{
		ID: "su-1", QuestionnaireID: "Q1", Data: json.RawMessage(`{"a":1}`),
	})
	require.NoError(t, err)
}

func TestCreateModelAndNomenclatureFailures(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/questionnaire-models", func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "bad", http.StatusBadRequest)
	})
	r.Post("/api/nomenclature", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	c := newTestClient(t, r)

	assert.Error(t, c.CreateQuestionnaireModel(context.Background(), domain.QuestionnaireModel{ID: "Q"}))
	assert.NoError(t, c.CreateNomenclature(context.Background(), domain.Nomenclature{ID: "N"}))
}

func TestDeleteCampaignForces(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/api/campaign/{id}", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "true", req.URL.Query().Get("force"))
		w.WriteHeader(http.StatusOK)
	})
	r.Get("/api/healthcheck", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	c := newTestClient(t, r)

	assert.NoError(t, c.DeleteCampaign(context.Background(), "C1"))
	assert.Error(t, c.Healthcheck(context.Background()))
}
