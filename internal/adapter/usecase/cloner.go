package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
)

// Cloner turns a campaign template into a generated campaign. It never
// writes to the template: every nested collection of the output is a copy.
type Cloner struct {
	newID func() string
}

// NewCloner returns a Cloner minting survey-unit ids with newID, or random
// UUIDs when newID is nil.
func NewCloner(newID func() string) *Cloner {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Cloner{newID: newID}
}

// Clone produces a campaign for cfg. The campaign id joins the template id,
// the policy tag, the organisation unit, the reference date and the campaign
// label; both backend representations share it.
func (c *Cloner) Clone(tmpl *domain.CampaignTemplate, cfg domain.TrainingConfiguration, p Policy) (*domain.GeneratedCampaign, error) {
	ref := strconv.FormatInt(cfg.ReferenceDate, 10)
	id := strings.Join([]string{tmpl.ID(), p.Tag(), cfg.OrganisationUnitID, ref, cfg.CampaignLabel}, "_")

	cm := tmpl.CaseManagement.Clone()
	cm.ID = id
	cm.Label = cfg.CampaignLabel
	for i := range cm.Visibilities {
		v := &cm.Visibilities[i]
		v.OrganizationalUnit = cfg.OrganisationUnitID
		v.FromDate += cfg.ReferenceDate
		v.ToDate += cfg.ReferenceDate
	}

	q := tmpl.Questionnaire.Clone()
	q.ID = id
	q.Label = cfg.CampaignLabel
	questionnaireIDs := make(map[string]string, len(q.QuestionnaireModels))
	q.QuestionnaireIDs = make([]string, 0, len(q.QuestionnaireModels))
	for i := range q.QuestionnaireModels {
		m := &q.QuestionnaireModels[i]
		newID := strings.Join([]string{m.ID, cfg.OrganisationUnitID, ref}, "_")
		questionnaireIDs[m.ID] = newID
		m.ID = newID
		m.CampaignID = id
		q.QuestionnaireIDs = append(q.QuestionnaireIDs, newID)
	}

	units, err := c.Dispatch(tmpl.SurveyUnits, id, cfg, tmpl.Assignments, p, questionnaireIDs)
	if err != nil {
		return nil, fmt.Errorf("campaign %s: %w", tmpl.ID(), err)
	}

	return &domain.GeneratedCampaign{
		CaseManagement: cm,
		Questionnaire:  q,
		SurveyUnits:    units,
		Assignments:    AssignmentsOf(units),
	}, nil
}

// Dispatch fans template units out according to the policy and rewrites
// every copy: new shared id, campaign, organisation unit, interviewer,
// questionnaire, and timestamps shifted by the reference date. A unit whose
// questionnaire is not in questionnaireIDs fails the whole dispatch.
func (c *Cloner) Dispatch(
	units []domain.SurveyUnit,
	campaignID string,
	cfg domain.TrainingConfiguration,
	assignments []domain.Assignment,
	p Policy,
	questionnaireIDs map[string]string,
) ([]domain.SurveyUnit, error) {
	placements := p.Assign(units, assignments, cfg.Trainees)
	out := make([]domain.SurveyUnit, 0, len(placements))
	for _, pl := range placements {
		questionnaireID, ok := questionnaireIDs[pl.Source.Questionnaire.QuestionnaireID]
		if !ok {
			return nil, fmt.Errorf("survey unit %s, questionnaire %q: %w",
				pl.Source.ID, pl.Source.Questionnaire.QuestionnaireID, port.ErrUnmappedQuestionnaire)
		}
		out = append(out, c.rewrite(pl, campaignID, cfg, questionnaireID))
	}
	return out, nil
}

func (c *Cloner) rewrite(pl Placement, campaignID string, cfg domain.TrainingConfiguration, questionnaireID string) domain.SurveyUnit {
	id := c.newID()
	su := pl.Source.Clone()
	su.ID = id

	cm := &su.CaseManagement
	cm.ID = id
	cm.Campaign = campaignID
	cm.OrganizationUnitID = cfg.OrganisationUnitID
	cm.InterviewerID = pl.InterviewerID
	for i := range cm.States {
		cm.States[i].Date += cfg.ReferenceDate
	}
	for i := range cm.ContactAttempts {
		cm.ContactAttempts[i].Date += cfg.ReferenceDate
	}
	if cm.ContactOutcome != nil {
		cm.ContactOutcome.Date += cfg.ReferenceDate
	}

	su.Questionnaire.ID = id
	su.Questionnaire.QuestionnaireID = questionnaireID
	return su
}

// AssignmentsOf derives the assignment list shipped to the case-management
// backend from generated units.
func AssignmentsOf(units []domain.SurveyUnit) []domain.Assignment {
	out := make([]domain.Assignment, 0, len(units))
	for _, su := range units {
		out = append(out, domain.Assignment{SurveyUnitID: su.ID, InterviewerID: su.CaseManagement.InterviewerID})
	}
	return out
}
