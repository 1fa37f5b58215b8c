package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
	"training-courses/internal/core/port/mocks"
	"training-courses/internal/requestctx"
)

func newTestHandler(t *testing.T) (*mocks.MockTrainingUseCase, http.Handler) {
	svc := mocks.NewMockTrainingUseCase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return svc, NewHandler(svc, logger).Router()
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) messageResponse {
	t.Helper()
	var body messageResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestGenerateParsesQuery(t *testing.T) {
	svc, h := newTestHandler(t)
	want := port.GenerateRequest{
		ScenarioID:         "onboarding",
		CampaignLabel:      "demo",
		OrganisationUnitID: "OU1",
		ReferenceDate:      1700000000000,
		Trainees:           []string{"alice", "bob"},
	}
	svc.EXPECT().Generate(mock.Anything, want).
		Return(port.GenerationResult{Success: true, Message: "ok", Campaigns: []string{"C1"}}, nil).Once()

	rec := serve(h, http.MethodPost,
		"/api/v1/training-course?campaignId=onboarding&campaignLabel=demo&organisationUnitId=OU1&dateReference=1700000000000&interviewers=alice,%20bob,")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"ok","campaigns":["C1"]}`, rec.Body.String())
}

func TestGenerateStatusMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{port.ErrScenarioNotFound, http.StatusNotFound},
		{port.ErrInvalidRequest, http.StatusBadRequest},
		{port.ErrTraineeValidation, http.StatusBadRequest},
		{port.ErrGenerationFailed, http.StatusBadRequest},
		{fmt.Errorf("%w: 1 of 2 campaigns", port.ErrPublicationFailed), http.StatusBadGateway},
		{errors.New("unexpected"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().Generate(mock.Anything, mock.Anything).
				Return(port.GenerationResult{Message: "failed"}, tc.err).Once()

			rec := serve(h, http.MethodPost, "/api/v1/training-course?campaignId=x&campaignLabel=l&organisationUnitId=o&dateReference=0")
			assert.Equal(t, tc.want, rec.Code)
			assert.False(t, decodeMessage(t, rec).Success)
		})
	}
}

func TestGenerateRejectsInvalidDate(t *testing.T) {
	_, h := newTestHandler(t)
	rec := serve(h, http.MethodPost, "/api/v1/training-course?campaignId=x&dateReference=tomorrow")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCallerIsPropagated(t *testing.T) {
	svc, h := newTestHandler(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"preferred_username": "trainer"}).
		SignedString([]byte("secret"))
	require.NoError(t, err)

	svc.EXPECT().ListScenarios(mock.Anything).
		RunAndReturn(func(ctx context.Context) []domain.ScenarioSummary {
			caller := requestctx.CallerFromContext(ctx)
			assert.Equal(t, token, caller.Token)
			assert.Equal(t, "trainer", caller.ID)
			return []domain.ScenarioSummary{{Label: "onboarding", Type: domain.ScenarioInterviewer}}
		}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/training-course-scenario", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"label":"onboarding","type":"INTERVIEWER"}]`, rec.Body.String())
}

func TestDeleteCampaign(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"deleted", nil, http.StatusOK},
		{"missing", fmt.Errorf("%w: X", port.ErrCampaignNotFound), http.StatusNotFound},
		{"backend down", errors.New("503"), http.StatusBadGateway},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, h := newTestHandler(t)
			svc.EXPECT().DeleteCampaign(mock.Anything, "X").Return(tc.err).Once()

			rec := serve(h, http.MethodDelete, "/api/v1/campaign/X")
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestTrainingCourses(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().ListTrainingCourses(mock.Anything, true).
		Return([]domain.CampaignSummary{{ID: "C1", Label: "demo"}}, nil).Once()

	rec := serve(h, http.MethodGet, "/api/v1/training-courses?admin=true")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"C1","label":"demo"}]`, rec.Body.String())
}

func TestOrganisationUnits(t *testing.T) {
	t.Run("user unit not resolved", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().UserOrganisationUnit(mock.Anything).Return(nil, errors.New("404")).Once()

		assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/user/organisationUnit").Code)
	})

	t.Run("empty list", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().OrganisationUnits(mock.Anything).Return(nil, nil).Once()

		assert.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/api/v1/organisation-units").Code)
	})

	t.Run("listed", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().OrganisationUnits(mock.Anything).
			Return([]domain.OrganisationUnit{{ID: "OU1", Label: "North"}}, nil).Once()

		rec := serve(h, http.MethodGet, "/api/v1/organisation-units")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":"OU1","label":"North"}]`, rec.Body.String())
	})
}

func TestTrainingRuns(t *testing.T) {
	t.Run("limit is capped", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListRuns(mock.Anything, maxRunsLimit).Return([]domain.TrainingRun{}, nil).Once()

		assert.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/api/v1/training-runs?limit=5000").Code)
	})

	t.Run("invalid limit", func(t *testing.T) {
		_, h := newTestHandler(t)
		assert.Equal(t, http.StatusBadRequest, serve(h, http.MethodGet, "/api/v1/training-runs?limit=-1").Code)
	})

	t.Run("journal disabled", func(t *testing.T) {
		svc, h := newTestHandler(t)
		svc.EXPECT().ListRuns(mock.Anything, defaultRunsLimit).Return(nil, port.ErrJournalDisabled).Once()

		assert.Equal(t, http.StatusNotImplemented, serve(h, http.MethodGet, "/api/v1/training-runs").Code)
	})
}

func TestHealthcheck(t *testing.T) {
	svc, h := newTestHandler(t)
	svc.EXPECT().Health(mock.Anything).Return(port.HealthReport{CaseManagement: true}).Once()

	rec := serve(h, http.MethodGet, "/api/v1/healthcheck")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, messageResponse{
		Success: false,
		Message: "CaseManagement-API : true - Questionnaire-API : false",
	}, decodeMessage(t, rec))
}
