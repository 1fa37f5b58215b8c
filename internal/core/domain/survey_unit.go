package domain

import "encoding/json"

// SurveyUnit pairs the two backend representations of one sampled unit. In a
// template ID is the case-management id used by assignments; in a generated
// campaign it is the freshly minted id shared by both records.
type SurveyUnit struct {
	ID             string
	CaseManagement CaseManagementSurveyUnit
	Questionnaire  QuestionnaireSurveyUnit
}

// CaseManagementSurveyUnit is the case-management record of a survey unit.
type CaseManagementSurveyUnit struct {
	ID                 string            `json:"id" yaml:"id"`
	DisplayName        string            `json:"displayName" yaml:"displayName"`
	Persons            []Person          `json:"persons" yaml:"persons"`
	Address            Address           `json:"address" yaml:"address"`
	OrganizationUnitID string            `json:"organizationUnitId" yaml:"organizationUnitId"`
	Priority           bool              `json:"priority" yaml:"priority"`
	Campaign           string            `json:"campaign" yaml:"campaign"`
	InterviewerID      string            `json:"interviewerId,omitempty" yaml:"interviewerId"`
	SampleIdentifiers  map[string]string `json:"sampleIdentifiers,omitempty" yaml:"sampleIdentifiers"`
	Comment            string            `json:"comment,omitempty" yaml:"comment"`
	ContactOutcome     *ContactOutcome   `json:"contactOutcome,omitempty" yaml:"contactOutcome"`
	ContactAttempts    []ContactAttempt  `json:"contactAttempts" yaml:"contactAttempts"`
	States             []State           `json:"states" yaml:"states"`
}

// Person is a respondent of a survey unit.
type Person struct {
	Title        string        `json:"title" yaml:"title"`
	FirstName    string        `json:"firstName" yaml:"firstName"`
	LastName     string        `json:"lastName" yaml:"lastName"`
	Email        string        `json:"email,omitempty" yaml:"email"`
	BirthDate    int64         `json:"birthdate,omitempty" yaml:"birthdate"`
	Privileged   bool          `json:"privileged" yaml:"privileged"`
	PhoneNumbers []PhoneNumber `json:"phoneNumbers" yaml:"phoneNumbers"`
}

// PhoneNumber belongs to a Person.
type PhoneNumber struct {
	Source   string `json:"source" yaml:"source"`
	Favorite bool   `json:"favorite" yaml:"favorite"`
	Number   string `json:"number" yaml:"number"`
}

// Address is the postal address of a survey unit.
type Address struct {
	L1 string `json:"l1,omitempty" yaml:"l1"`
	L2 string `json:"l2,omitempty" yaml:"l2"`
	L3 string `json:"l3,omitempty" yaml:"l3"`
	L4 string `json:"l4,omitempty" yaml:"l4"`
	L5 string `json:"l5,omitempty" yaml:"l5"`
	L6 string `json:"l6,omitempty" yaml:"l6"`
	L7 string `json:"l7,omitempty" yaml:"l7"`
}

// State is one entry of the survey-unit state history.
type State struct {
	Date int64  `json:"date" yaml:"date"`
	Type string `json:"type" yaml:"type"`
}

// ContactAttempt is one recorded attempt to reach the respondent.
type ContactAttempt struct {
	Date   int64  `json:"date" yaml:"date"`
	Status string `json:"status" yaml:"status"`
	Medium string `json:"medium,omitempty" yaml:"medium"`
}

// ContactOutcome is the final outcome of the contact phase.
type ContactOutcome struct {
	Date                         int64  `json:"date" yaml:"date"`
	Type                         string `json:"type" yaml:"type"`
	TotalNumberOfContactAttempts int    `json:"totalNumberOfContactAttempts" yaml:"totalNumberOfContactAttempts"`
}

// QuestionnaireSurveyUnit is the questionnaire-delivery record of a survey unit.
type QuestionnaireSurveyUnit struct {
	ID              string          `json:"id"`
	QuestionnaireID string          `json:"questionnaireId"`
	Personalization json.RawMessage `json:"personalization,omitempty"`
	Data            json.RawMessage `json:"data,omitempty"`
	Comment         json.RawMessage `json:"comment,omitempty"`
	StateData       json.RawMessage `json:"stateData,omitempty"`
}

// Assignment links a survey unit to its interviewer.
type Assignment struct {
	SurveyUnitID  string `json:"surveyUnitId" yaml:"surveyUnitId"`
	InterviewerID string `json:"interviewerId" yaml:"interviewerId"`
}
