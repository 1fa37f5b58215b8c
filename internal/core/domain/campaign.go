package domain

import "encoding/json"

// CaseManagementCampaign is the campaign as known by the case-management
// backend.
type CaseManagementCampaign struct {
	ID                          string       `json:"campaign" yaml:"campaign"`
	Label                       string       `json:"campaignLabel" yaml:"campaignLabel"`
	Email                       string       `json:"email,omitempty" yaml:"email"`
	IdentificationConfiguration string       `json:"identificationConfiguration,omitempty" yaml:"identificationConfiguration"`
	ContactAttemptConfiguration string       `json:"contactAttemptConfiguration,omitempty" yaml:"contactAttemptConfiguration"`
	ContactOutcomeConfiguration string       `json:"contactOutcomeConfiguration,omitempty" yaml:"contactOutcomeConfiguration"`
	Visibilities                []Visibility `json:"visibilities" yaml:"visibilities"`
	Referents                   []Referent   `json:"referents" yaml:"referents"`
}

// Visibility scopes a campaign to an organisation unit for a time window.
// In a template both bounds are millisecond offsets from the reference date;
// in a generated campaign they are epoch milliseconds.
type Visibility struct {
	OrganizationalUnit string `json:"organizationalUnit" yaml:"organizationalUnit"`
	FromDate           int64  `json:"fromDate" yaml:"fromDate"`
	ToDate             int64  `json:"toDate" yaml:"toDate"`
}

// Referent is a campaign contact person.
type Referent struct {
	FirstName   string `json:"firstName" yaml:"firstName"`
	LastName    string `json:"lastName" yaml:"lastName"`
	PhoneNumber string `json:"phoneNumber,omitempty" yaml:"phoneNumber"`
	Role        string `json:"role,omitempty" yaml:"role"`
}

// QuestionnaireCampaign is the campaign as known by the questionnaire-delivery
// backend. Models and nomenclatures are posted separately and are not part of
// the campaign payload.
type QuestionnaireCampaign struct {
	ID                  string               `json:"id"`
	Label               string               `json:"label"`
	QuestionnaireIDs    []string             `json:"questionnaireIds"`
	QuestionnaireModels []QuestionnaireModel `json:"-"`
	Nomenclatures       []Nomenclature       `json:"-"`
	Metadata            json.RawMessage      `json:"metadata,omitempty"`
}

// QuestionnaireModel is a questionnaire definition.
type QuestionnaireModel struct {
	ID                      string          `json:"idQuestionnaireModel"`
	Label                   string          `json:"label"`
	CampaignID              string          `json:"campaignId,omitempty"`
	RequiredNomenclatureIDs []string        `json:"requiredNomenclatureIds"`
	Value                   json.RawMessage `json:"value"`
}

// Nomenclature is a reference list used by questionnaires. Nomenclatures are
// shared reference data and keep their template id.
type Nomenclature struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Value json.RawMessage `json:"value"`
}

// CampaignTemplate is one full campaign extracted from a scenario template.
// It is read-only.
type CampaignTemplate struct {
	CaseManagement CaseManagementCampaign
	Questionnaire  QuestionnaireCampaign
	SurveyUnits    []SurveyUnit
	Assignments    []Assignment
}

// ID returns the template campaign id.
func (c *CampaignTemplate) ID() string {
	return c.CaseManagement.ID
}

// GeneratedCampaign is the output of cloning and dispatch. Every identifier is
// freshly derived and it is owned by a single generation run.
type GeneratedCampaign struct {
	CaseManagement CaseManagementCampaign
	Questionnaire  QuestionnaireCampaign
	SurveyUnits    []SurveyUnit
	Assignments    []Assignment
}

// ID returns the campaign id shared by both backends.
func (c *GeneratedCampaign) ID() string {
	return c.CaseManagement.ID
}

// CampaignSummary is a campaign as listed by the case-management backend.
type CampaignSummary struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}
