package domain

import "time"

// TrainingConfiguration holds the per-request parameters of a generation run.
type TrainingConfiguration struct {
	CampaignLabel      string
	OrganisationUnitID string
	// ReferenceDate is the training day in epoch milliseconds.
	ReferenceDate int64
	Trainees      []string
	ScenarioLabel string
}

// CampaignStatus is the end state of one campaign of a generation run.
type CampaignStatus string

const (
	CampaignPublished      CampaignStatus = "published"
	CampaignRolledBack     CampaignStatus = "rolled_back"
	CampaignRollbackFailed CampaignStatus = "rollback_failed"
	CampaignNotGenerated   CampaignStatus = "not_generated"
)

// TrainingRun is the journal entry of one generation run.
type TrainingRun struct {
	ID                 string        `json:"id"`
	Scenario           string        `json:"scenario"`
	CampaignLabel      string        `json:"campaignLabel"`
	OrganisationUnitID string        `json:"organisationUnitId"`
	ReferenceDate      int64         `json:"dateReference"`
	Trainees           []string      `json:"trainees"`
	Requester          string        `json:"requester"`
	Success            bool          `json:"success"`
	Message            string        `json:"message"`
	Campaigns          []RunCampaign `json:"campaigns"`
	CreatedAt          time.Time     `json:"createdAt"`
}

// RunCampaign records the end state of one campaign of a run. TemplateID is
// set for every campaign; CampaignID is empty when generation failed.
type RunCampaign struct {
	TemplateID string         `json:"templateId"`
	CampaignID string         `json:"campaignId,omitempty"`
	Status     CampaignStatus `json:"status"`
}
