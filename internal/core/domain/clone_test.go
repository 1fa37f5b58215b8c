package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"training-courses/internal/testutil"
)

func sampleSurveyUnit() SurveyUnit {
	return SurveyUnit{
		ID: "su-1",
		CaseManagement: CaseManagementSurveyUnit{
			ID:                "su-1",
			DisplayName:       "home-1",
			Persons:           []Person{{FirstName: "Ada", PhoneNumbers: []PhoneNumber{{Number: "0102"}}}},
			SampleIdentifiers: map[string]string{"ssech": "1"},
			ContactOutcome:    &ContactOutcome{Date: -10, Type: "INA"},
			ContactAttempts:   []ContactAttempt{{Date: -20, Status: "NOC"}},
			States:            []State{{Date: -30, Type: "VIN"}},
		},
		Questionnaire: QuestionnaireSurveyUnit{
			ID:        "home-1",
			Data:      json.RawMessage(`{"a":1}`),
			StateData: json.RawMessage(`{"state":"INIT"}`),
		},
	}
}

func TestSurveyUnitCloneSharesNothing(t *testing.T) {
	su := sampleSurveyUnit()
	clone := su.Clone()

	assert.Equal(t, su, clone)
	assert.Empty(t, testutil.SharedMemory(su, clone))
}

func TestCampaignClonesShareNothing(t *testing.T) {
	cm := CaseManagementCampaign{
		ID:           "C",
		Visibilities: []Visibility{{OrganizationalUnit: "OU", FromDate: 1, ToDate: 2}},
		Referents:    []Referent{{FirstName: "R"}},
	}
	q := QuestionnaireCampaign{
		ID:                  "C",
		QuestionnaireIDs:    []string{"Q"},
		QuestionnaireModels: []QuestionnaireModel{{ID: "Q", RequiredNomenclatureIDs: []string{"N"}, Value: json.RawMessage(`{}`)}},
		Nomenclatures:       []Nomenclature{{ID: "N", Value: json.RawMessage(`[]`)}},
		Metadata:            json.RawMessage(`{"m":true}`),
	}

	cmClone := cm.Clone()
	qClone := q.Clone()

	assert.Equal(t, cm, cmClone)
	assert.Equal(t, q, qClone)
	assert.Empty(t, testutil.SharedMemory(cm, cmClone))
	assert.Empty(t, testutil.SharedMemory(q, qClone))
}

func TestCloneKeepsNilCollections(t *testing.T) {
	clone := CaseManagementSurveyUnit{ID: "x"}.Clone()
	assert.Nil(t, clone.Persons)
	assert.Nil(t, clone.SampleIdentifiers)
	assert.Nil(t, clone.ContactOutcome)
	assert.Nil(t, QuestionnaireSurveyUnit{}.Clone().Data)
}
