package domain

import (
	"encoding/json"
	"maps"
	"slices"
)

// The Clone methods below return values that share no slice, map or pointer
// with the receiver. Template data is read concurrently by generation runs,
// so nothing derived from it may alias it.

// Clone returns a deep copy of the campaign.
func (c CaseManagementCampaign) Clone() CaseManagementCampaign {
	out := c
	out.Visibilities = slices.Clone(c.Visibilities)
	out.Referents = slices.Clone(c.Referents)
	return out
}

// Clone returns a deep copy of the campaign, including models and
// nomenclatures.
func (c QuestionnaireCampaign) Clone() QuestionnaireCampaign {
	out := c
	out.QuestionnaireIDs = slices.Clone(c.QuestionnaireIDs)
	out.Metadata = cloneRaw(c.Metadata)
	if c.QuestionnaireModels != nil {
		out.QuestionnaireModels = make([]QuestionnaireModel, len(c.QuestionnaireModels))
		for i, qm := range c.QuestionnaireModels {
			out.QuestionnaireModels[i] = qm.Clone()
		}
	}
	if c.Nomenclatures != nil {
		out.Nomenclatures = make([]Nomenclature, len(c.Nomenclatures))
		for i, n := range c.Nomenclatures {
			out.Nomenclatures[i] = n.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the model.
func (m QuestionnaireModel) Clone() QuestionnaireModel {
	out := m
	out.RequiredNomenclatureIDs = slices.Clone(m.RequiredNomenclatureIDs)
	out.Value = cloneRaw(m.Value)
	return out
}

// Clone returns a deep copy of the nomenclature.
func (n Nomenclature) Clone() Nomenclature {
	out := n
	out.Value = cloneRaw(n.Value)
	return out
}

// Clone returns a deep copy of the survey unit record.
func (s CaseManagementSurveyUnit) Clone() CaseManagementSurveyUnit {
	out := s
	if s.Persons != nil {
		out.Persons = make([]Person, len(s.Persons))
		for i, p := range s.Persons {
			p.PhoneNumbers = slices.Clone(p.PhoneNumbers)
			out.Persons[i] = p
		}
	}
	out.SampleIdentifiers = maps.Clone(s.SampleIdentifiers)
	if s.ContactOutcome != nil {
		co := *s.ContactOutcome
		out.ContactOutcome = &co
	}
	out.ContactAttempts = slices.Clone(s.ContactAttempts)
	out.States = slices.Clone(s.States)
	return out
}

// Clone returns a deep copy of the survey unit record.
func (s QuestionnaireSurveyUnit) Clone() QuestionnaireSurveyUnit {
	out := s
	out.Personalization = cloneRaw(s.Personalization)
	out.Data = cloneRaw(s.Data)
	out.Comment = cloneRaw(s.Comment)
	out.StateData = cloneRaw(s.StateData)
	return out
}

// Clone returns a deep copy of both records.
func (s SurveyUnit) Clone() SurveyUnit {
	return SurveyUnit{
		ID:             s.ID,
		CaseManagement: s.CaseManagement.Clone(),
		Questionnaire:  s.Questionnaire.Clone(),
	}
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return slices.Clone(raw)
}
