package port

import (
	"context"
	"fmt"

	"training-courses/internal/core/domain"
)

// Publisher pushes generated campaigns to both backends and deletes them.
type Publisher interface {
	// Publish creates every entity of the campaign on both backends. It never
	// returns transport errors; failures are reported in the PublishReport.
	Publish(ctx context.Context, campaign *domain.GeneratedCampaign) PublishReport
	// Delete force-deletes the campaign on both backends. The returned error
	// reflects the case-management backend only.
	Delete(ctx context.Context, id string) error
}

// PublishReport is the outcome of publishing one campaign.
type PublishReport struct {
	CampaignID     string
	CaseManagement CaseManagementReport
	Questionnaire  QuestionnaireReport
}

// OK reports whether every entity was accepted by both backends.
func (r PublishReport) OK() bool {
	return r.CaseManagement.OK() && r.Questionnaire.OK()
}

// String summarises the report for logs and user-facing messages.
func (r PublishReport) String() string {
	return fmt.Sprintf("%s [%s | %s]", r.CampaignID, r.CaseManagement, r.Questionnaire)
}

// CaseManagementReport holds per-call results on the case-management backend.
type CaseManagementReport struct {
	Campaign    bool
	SurveyUnits bool
	Assignments bool
}

// OK reports whether every call succeeded.
func (r CaseManagementReport) OK() bool {
	return r.Campaign && r.SurveyUnits && r.Assignments
}

func (r CaseManagementReport) String() string {
	return fmt.Sprintf("campaign: %t, survey-units: %t, assignments: %t",
		r.Campaign, r.SurveyUnits, r.Assignments)
}

// QuestionnaireReport holds created/expected counts on the
// questionnaire-delivery backend.
type QuestionnaireReport struct {
	Campaign      bool
	Nomenclatures Count
	Models        Count
	SurveyUnits   Count
}

// OK reports whether the campaign was created and every count is complete.
func (r QuestionnaireReport) OK() bool {
	return r.Campaign && r.Nomenclatures.Complete() && r.Models.Complete() && r.SurveyUnits.Complete()
}

func (r QuestionnaireReport) String() string {
	return fmt.Sprintf("campaign: %t, nomenclatures: %s, questionnaires: %s, survey-units: %s",
		r.Campaign, r.Nomenclatures, r.Models, r.SurveyUnits)
}

// Count is a created/expected pair.
type Count struct {
	Created  int
	Expected int
}

// Complete reports whether every expected entity was created.
func (c Count) Complete() bool {
	return c.Created == c.Expected
}

func (c Count) String() string {
	return fmt.Sprintf("%d/%d", c.Created, c.Expected)
}
