package usecase

import (
	"encoding/json"
	"io"
	"log/slog"

	"training-courses/internal/core/domain"
)

const (
	day     = int64(24 * 60 * 60 * 1000)
	refDate = int64(1700000000000)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func templateSurveyUnit(id, display, questionnaireID string) domain.SurveyUnit {
	return domain.SurveyUnit{
		ID: id,
		CaseManagement: domain.CaseManagementSurveyUnit{
			ID:                 id,
			DisplayName:        display,
			OrganizationUnitID: "OU-TEMPLATE",
			Campaign:           "TMPL",
			Persons: []domain.Person{{
				FirstName:    "Ada",
				LastName:     "Lovelace",
				PhoneNumbers: []domain.PhoneNumber{{Source: "FISCAL", Number: "0102030405"}},
			}},
			SampleIdentifiers: map[string]string{"ssech": "1"},
			States:            []domain.State{{Date: -2 * day, Type: "VIN"}, {Date: -day, Type: "APS"}},
			ContactAttempts:   []domain.ContactAttempt{{Date: -day, Status: "NOC", Medium: "TEL"}},
			ContactOutcome:    &domain.ContactOutcome{Date: -day / 2, Type: "INA", TotalNumberOfContactAttempts: 1},
		},
		Questionnaire: domain.QuestionnaireSurveyUnit{
			ID:              display,
			QuestionnaireID: questionnaireID,
			Data:            json.RawMessage(`{"COLLECTED":{}}`),
			StateData:       json.RawMessage(`{"state":"INIT"}`),
		},
	}
}

// campaignTemplate returns a template with two questionnaires, two survey
// units and one assignment (su-b has none).
func campaignTemplate(id string) domain.CampaignTemplate {
	return domain.CampaignTemplate{
		CaseManagement: domain.CaseManagementCampaign{
			ID:    id,
			Label: "Template label",
			Email: "training@example.org",
			Visibilities: []domain.Visibility{
				{OrganizationalUnit: "OU-TEMPLATE", FromDate: -3 * day, ToDate: 10 * day},
			},
			Referents: []domain.Referent{{FirstName: "Grace", LastName: "Hopper", Role: "PRIMARY"}},
		},
		Questionnaire: domain.QuestionnaireCampaign{
			ID:               id,
			Label:            "Template label",
			QuestionnaireIDs: []string{"Q1", "Q2"},
			QuestionnaireModels: []domain.QuestionnaireModel{
				{ID: "Q1", Label: "Household", RequiredNomenclatureIDs: []string{"N1"}, Value: json.RawMessage(`{"id":"Q1"}`)},
				{ID: "Q2", Label: "Individual", Value: json.RawMessage(`{"id":"Q2"}`)},
			},
			Nomenclatures: []domain.Nomenclature{{ID: "N1", Label: "Cities", Value: json.RawMessage(`[]`)}},
			Metadata:      json.RawMessage(`{"value":{"variables":[]}}`),
		},
		SurveyUnits: []domain.SurveyUnit{
			templateSurveyUnit("su-a", "home-a", "Q1"),
			templateSurveyUnit("su-b", "home-b", "Q2"),
		},
		Assignments: []domain.Assignment{{SurveyUnitID: "su-a", InterviewerID: "INT-001"}},
	}
}

func trainingConfig(trainees ...string) domain.TrainingConfiguration {
	return domain.TrainingConfiguration{
		CampaignLabel:      "demo",
		OrganisationUnitID: "OU1",
		ReferenceDate:      refDate,
		Trainees:           trainees,
		ScenarioLabel:      "onboarding",
	}
}
