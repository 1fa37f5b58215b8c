package casemanagement

import (
	"context"
	"encoding/json"
	"errors"
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
	"training-courses/internal/core/port"
)

func newTestClient(t *testing.T, r chi.Router) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(rest.NewClient(srv.URL, time.Second, logger), logger)
}

func TestCreateCampaignPayload(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/campaign", func(w http.ResponseWriter, req *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		assert.Equal(t, "C1", body["campaign"])
		assert.Equal(t, "label", body["campaignLabel"])
		vis := body["visibilities"].([]any)[0].(map[string]any)
		assert.Equal(t, "OU1", vis["organizationalUnit"])
		assert.EqualValues(t, 10, vis["fromDate"])
		w.WriteHeader(http.StatusOK)
	})
	c := newTestClient(t, r)

	err := c.CreateCampaign(context.Background(), domain.CaseManagementCampaign{
		ID:           "C1",
		Label:        "label",
		Visibilities: []domain.Visibility{{OrganizationalUnit: "OU1", FromDate: 10, ToDate: 20}},
	})
	require.NoError(t, err)
}

func TestCreateUsersEscapesOrganisationUnit(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/organization-unit/{id}/users", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "OU 1", chi.URLParam(req, "id"))
		http.Error(w, "exists", http.StatusConflict)
	})
	c := newTestClient(t, r)

	err := c.CreateUsers(context.Background(), "OU 1", []domain.User{domain.TrainingUser("u1")})
	assert.True(t, errors.Is(err, port.ErrAlreadyExists))
}

func TestListCampaignsAdminFlag(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/campaigns", func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Query().Get("admin") == "true" {
			_, _ = w.Write([]byte(`[{"id":"A","label":"all"},{"id":"B","label":"all"}]`))
			return
		}
		_, _ = w.Write([]byte(`[{"id":"A","label":"mine"}]`))
	})
	c := newTestClient(t, r)

	mine, err := c.ListCampaigns(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := c.ListCampaigns(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, []domain.CampaignSummary{{ID: "A", Label: "all"}, {ID: "B", Label: "all"}}, all)
}

func TestUserOrganisationUnit(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/user", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"id":"jdoe","organizationUnit":{"id":"OU-NORTH","label":"North"}}`))
	})
	c := newTestClient(t, r)

	ou, err := c.UserOrganisationUnit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "OU-NORTH", ou.ID)
}

func TestUserOrganisationUnitMissing(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/user", func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(`{"id":"jdoe"}`))
	})
	c := newTestClient(t, r)

	_, err := c.UserOrganisationUnit(context.Background())
	assert.Error(t, err)
}

func TestDeleteCampaignForces(t *testing.T) {
	var called bool
	r := chi.NewRouter()
	r.Delete("/api/campaign/{id}", func(w http.ResponseWriter, req *http.Request) {
		called = true
		assert.Equal(t, "C_I_OU1", chi.URLParam(req, "id"))
		assert.Equal(t, "true", req.URL.Query().Get("force"))
	})
	c := newTestClient(t, r)

	require.NoError(t, c.DeleteCampaign(context.Background(), "C_I_OU1"))
	assert.True(t, called)
}
