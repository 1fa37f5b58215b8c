package templates

import "training-courses/internal/core/domain"

const (
	infoFile           = "info.yaml"
	caseManagementFile = "case-management.yaml"
	questionnaireFile  = "questionnaire.yaml"
)

// scenarioInfo is the content of info.yaml.
type scenarioInfo struct {
	Label string              `yaml:"label"`
	Type  domain.ScenarioType `yaml:"type"`
}

// caseManagementExtraction is the content of case-management.yaml.
type caseManagementExtraction struct {
	Campaign    domain.CaseManagementCampaign     `yaml:"campaign"`
	SurveyUnits []domain.CaseManagementSurveyUnit `yaml:"surveyUnits"`
	Assignments []domain.Assignment               `yaml:"assignments"`
}

// questionnaireExtraction is the content of questionnaire.yaml. JSON
// payloads are stored next to it and referenced by relative path.
type questionnaireExtraction struct {
	Campaign struct {
		ID       string `yaml:"id"`
		Label    string `yaml:"label"`
		Metadata string `yaml:"metadata"`
	} `yaml:"campaign"`
	QuestionnaireModels []struct {
		ID                    string   `yaml:"id"`
		Label                 string   `yaml:"label"`
		RequiredNomenclatures []string `yaml:"requiredNomenclatures"`
		File                  string   `yaml:"file"`
	} `yaml:"questionnaireModels"`
	Nomenclatures []struct {
		ID    string `yaml:"id"`
		Label string `yaml:"label"`
		File  string `yaml:"file"`
	} `yaml:"nomenclatures"`
	SurveyUnits []questionnaireUnit `yaml:"surveyUnits"`
}

// questionnaireUnit is keyed by the case-management display name.
type questionnaireUnit struct {
	DisplayName     string `yaml:"displayName"`
	QuestionnaireID string `yaml:"questionnaireId"`
	Personalization string `yaml:"personalization"`
	Data            string `yaml:"data"`
	Comment         string `yaml:"comment"`
	StateData       string `yaml:"stateData"`
}
