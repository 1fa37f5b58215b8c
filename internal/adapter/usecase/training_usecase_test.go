package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
	"training-courses/internal/core/port/mocks"
)

type fixture struct {
	store     *mocks.MockTemplateStore
	cm        *mocks.MockCaseManagementAPI
	q         *mocks.MockQuestionnaireAPI
	publisher *mocks.MockPublisher
	journal   *mocks.MockRunJournal
	uc        *TrainingUseCase
}

func newFixture(t *testing.T, withJournal bool) *fixture {
	f := &fixture{
		store:     mocks.NewMockTemplateStore(t),
		cm:        mocks.NewMockCaseManagementAPI(t),
		q:         mocks.NewMockQuestionnaireAPI(t),
		publisher: mocks.NewMockPublisher(t),
	}
	var journal port.RunJournal
	if withJournal {
		f.journal = mocks.NewMockRunJournal(t)
		journal = f.journal
	}
	f.uc = NewTrainingUseCase(f.store, f.cm, f.q, f.publisher, journal, nil, discardLogger())
	return f
}

func scenarioOf(typ domain.ScenarioType, templateIDs ...string) *domain.TrainingScenario {
	s := &domain.TrainingScenario{Label: "onboarding", Type: typ}
	for _, id := range templateIDs {
		s.Campaigns = append(s.Campaigns, campaignTemplate(id))
	}
	return s
}

func generateRequest(trainees ...string) port.GenerateRequest {
	return port.GenerateRequest{
		ScenarioID:         "onboarding",
		CampaignLabel:      "demo",
		OrganisationUnitID: "OU1",
		ReferenceDate:      refDate,
		Trainees:           trainees,
	}
}

func (f *fixture) expectInterviewers(trainees ...string) {
	for _, trainee := range trainees {
		f.cm.EXPECT().CreateInterviewers(mock.Anything, []domain.Interviewer{domain.TrainingInterviewer(trainee)}).Return(nil).Once()
	}
}

func okReport(id string) port.PublishReport {
	return port.PublishReport{
		CampaignID:     id,
		CaseManagement: port.CaseManagementReport{Campaign: true, SurveyUnits: true, Assignments: true},
		Questionnaire:  port.QuestionnaireReport{Campaign: true},
	}
}

func TestGenerateSuccess(t *testing.T) {
	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioInterviewer, "TMPL"), true).Once()
	f.expectInterviewers("alice", "bob")

	var published *domain.GeneratedCampaign
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, c *domain.GeneratedCampaign) { published = c }).
		Return(okReport("TMPL_I_OU1_1700000000000_demo")).Once()

	var recorded domain.TrainingRun
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.TrainingRun) { recorded = run }).Return(nil).Once()

	res, err := f.uc.Generate(t.Context(), generateRequest("alice", "bob"))
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, []string{"TMPL_I_OU1_1700000000000_demo"}, res.Campaigns)
	assert.Equal(t, "Training scenario generated: 1 campaign(s), 4 survey-unit(s)", res.Message)
	require.NotNil(t, published)
	assert.Len(t, published.SurveyUnits, 4)

	assert.True(t, recorded.Success)
	assert.Equal(t, "anonymous", recorded.Requester)
	assert.Equal(t, []domain.RunCampaign{{
		TemplateID: "TMPL",
		CampaignID: "TMPL_I_OU1_1700000000000_demo",
		Status:     domain.CampaignPublished,
	}}, recorded.Campaigns)
}

func TestGenerateRejectsInvalidRequest(t *testing.T) {
	f := newFixture(t, false)
	req := generateRequest("alice")
	req.CampaignLabel = " "

	res, err := f.uc.Generate(t.Context(), req)
	assert.ErrorIs(t, err, port.ErrInvalidRequest)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "campaignLabel")
}

func TestGenerateUnknownScenario(t *testing.T) {
	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(nil, false).Once()

	res, err := f.uc.Generate(t.Context(), generateRequest("alice"))
	assert.ErrorIs(t, err, port.ErrScenarioNotFound)
	assert.Equal(t, "Scenario onboarding is not present", res.Message)
}

func TestGenerateStopsOnTraineeValidationFailure(t *testing.T) {
	t.Run("interviewer", func(t *testing.T) {
		f := newFixture(t, false)
		f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioInterviewer, "TMPL"), true).Once()
		f.cm.EXPECT().CreateInterviewers(mock.Anything, mock.Anything).Return(errors.New("500")).Once()

		res, err := f.uc.Generate(t.Context(), generateRequest("alice", "bob"))
		assert.ErrorIs(t, err, port.ErrTraineeValidation)
		assert.Equal(t, "Error when checking interviewers", res.Message)
	})

	t.Run("manager", func(t *testing.T) {
		f := newFixture(t, false)
		f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioManager, "TMPL"), true).Once()
		f.cm.EXPECT().UserOrganisationUnit(mock.Anything).Return(nil, errors.New("401")).Once()

		res, err := f.uc.Generate(t.Context(), generateRequest("m1"))
		assert.ErrorIs(t, err, port.ErrTraineeValidation)
		assert.Equal(t, "Error when checking users", res.Message)
	})
}

func TestGenerateRollsBackEveryCampaignWhenOnePublicationFails(t *testing.T) {
	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioInterviewer, "C1", "C2", "C3"), true).Once()
	f.expectInterviewers("alice")

	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.GeneratedCampaign) port.PublishReport {
			r := okReport(c.ID())
			if c.ID() == "C2_I_OU1_1700000000000_demo" {
				r.Questionnaire.Campaign = false
			}
			return r
		}).Times(3)

	var deleted []string
	f.publisher.EXPECT().Delete(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, id string) error {
			deleted = append(deleted, id)
			if id == "C3_I_OU1_1700000000000_demo" {
				return errors.New("503")
			}
			return nil
		}).Times(3)

	var recorded domain.TrainingRun
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.TrainingRun) { recorded = run }).Return(nil).Once()

	res, err := f.uc.Generate(t.Context(), generateRequest("alice"))
	assert.ErrorIs(t, err, port.ErrPublicationFailed)
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "Error when posting campaigns: C2_I_OU1_1700000000000_demo")
	assert.Equal(t, []string{
		"C1_I_OU1_1700000000000_demo",
		"C2_I_OU1_1700000000000_demo",
		"C3_I_OU1_1700000000000_demo",
	}, deleted)

	require.Len(t, recorded.Campaigns, 3)
	assert.False(t, recorded.Success)
	assert.Equal(t, domain.CampaignRolledBack, recorded.Campaigns[0].Status)
	assert.Equal(t, domain.CampaignRollbackFailed, recorded.Campaigns[2].Status)
}

func TestGenerateRollsBackOnlyGeneratedCampaigns(t *testing.T) {
	scenario := scenarioOf(domain.ScenarioInterviewer, "C1", "C2")
	scenario.Campaigns[1].SurveyUnits[0].Questionnaire.QuestionnaireID = "MISSING"

	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(scenario, true).Once()
	f.expectInterviewers("alice")
	f.publisher.EXPECT().Delete(mock.Anything, "C1_I_OU1_1700000000000_demo").Return(nil).Once()

	var recorded domain.TrainingRun
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.TrainingRun) { recorded = run }).Return(nil).Once()

	res, err := f.uc.Generate(t.Context(), generateRequest("alice"))
	assert.ErrorIs(t, err, port.ErrGenerationFailed)
	assert.Equal(t, "Error when loading campaigns", res.Message)
	assert.Equal(t, []domain.RunCampaign{
		{TemplateID: "C1", CampaignID: "C1_I_OU1_1700000000000_demo", Status: domain.CampaignRolledBack},
		{TemplateID: "C2", Status: domain.CampaignNotGenerated},
	}, recorded.Campaigns)
}

func TestGenerateRollbackTreatsMissingCampaignAsDeleted(t *testing.T) {
	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioInterviewer, "C1"), true).Once()
	f.expectInterviewers("alice")

	report := okReport("C1_I_OU1_1700000000000_demo")
	report.CaseManagement.Campaign = false
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(report).Once()
	f.publisher.EXPECT().Delete(mock.Anything, "C1_I_OU1_1700000000000_demo").
		Return(fmt.Errorf("delete campaign C1_I_OU1_1700000000000_demo: %w", port.ErrNotFound)).Once()

	var recorded domain.TrainingRun
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).
		Run(func(_ context.Context, run domain.TrainingRun) { recorded = run }).Return(nil).Once()

	_, err := f.uc.Generate(t.Context(), generateRequest("alice"))
	assert.ErrorIs(t, err, port.ErrPublicationFailed)
	assert.Equal(t, []domain.RunCampaign{
		{TemplateID: "C1", CampaignID: "C1_I_OU1_1700000000000_demo", Status: domain.CampaignRolledBack},
	}, recorded.Campaigns)
}

func TestGenerateSurvivesJournalFailure(t *testing.T) {
	f := newFixture(t, true)
	f.store.EXPECT().Scenario("onboarding").Return(scenarioOf(domain.ScenarioManager, "TMPL"), true).Once()
	f.cm.EXPECT().UserOrganisationUnit(mock.Anything).Return(&domain.OrganisationUnit{ID: "OU-NORTH"}, nil).Once()
	f.cm.EXPECT().CreateUsers(mock.Anything, "OU-NORTH", mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(okReport("TMPL_M_OU1_1700000000000_demo")).Once()
	f.journal.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("db down")).Once()

	res, err := f.uc.Generate(t.Context(), generateRequest("m1"))
	require.NoError(t, err)
	assert.Equal(t, "Training scenario generated: 1 campaign(s), 2 survey-unit(s)", res.Message)
}

func TestDeleteCampaign(t *testing.T) {
	t.Run("absent campaign is not deleted", func(t *testing.T) {
		f := newFixture(t, false)
		f.cm.EXPECT().ListCampaigns(mock.Anything, true).Return([]domain.CampaignSummary{{ID: "Y"}}, nil).Once()

		err := f.uc.DeleteCampaign(t.Context(), "X")
		assert.ErrorIs(t, err, port.ErrCampaignNotFound)
	})

	t.Run("listed campaign is deleted", func(t *testing.T) {
		f := newFixture(t, false)
		f.cm.EXPECT().ListCampaigns(mock.Anything, true).Return([]domain.CampaignSummary{{ID: "X"}}, nil).Once()
		f.publisher.EXPECT().Delete(mock.Anything, "X").Return(nil).Once()

		assert.NoError(t, f.uc.DeleteCampaign(t.Context(), "X"))
	})

	t.Run("listing failure", func(t *testing.T) {
		f := newFixture(t, false)
		f.cm.EXPECT().ListCampaigns(mock.Anything, true).Return(nil, errors.New("timeout")).Once()

		err := f.uc.DeleteCampaign(t.Context(), "X")
		require.Error(t, err)
		assert.NotErrorIs(t, err, port.ErrCampaignNotFound)
	})
}

func TestListRunsWithoutJournal(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.uc.ListRuns(t.Context(), 10)
	assert.ErrorIs(t, err, port.ErrJournalDisabled)
}

func TestListRuns(t *testing.T) {
	f := newFixture(t, true)
	runs := []domain.TrainingRun{{ID: "r1"}}
	f.journal.EXPECT().ListRuns(mock.Anything, 5).Return(runs, nil).Once()

	got, err := f.uc.ListRuns(t.Context(), 5)
	require.NoError(t, err)
	assert.Equal(t, runs, got)
}

func TestHealth(t *testing.T) {
	f := newFixture(t, false)
	f.cm.EXPECT().Healthcheck(mock.Anything).Return(nil).Once()
	f.q.EXPECT().Healthcheck(mock.Anything).Return(errors.New("refused")).Once()

	assert.Equal(t, port.HealthReport{CaseManagement: true, Questionnaire: false}, f.uc.Health(t.Context()))
}
