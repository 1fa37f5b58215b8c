package domain

// ScenarioType is the dispatch policy of a training scenario.
type ScenarioType string

const (
	// ScenarioInterviewer replicates every survey unit for every trainee.
	ScenarioInterviewer ScenarioType = "INTERVIEWER"
	// ScenarioManager keeps survey units 1:1 with their original assignment.
	ScenarioManager ScenarioType = "MANAGER"
)

// TrainingScenario is a reusable training template bundling one or more
// campaign templates with a dispatch policy. Scenarios are loaded once at
// startup and never mutated afterwards.
type TrainingScenario struct {
	Label     string
	Type      ScenarioType
	Campaigns []CampaignTemplate
}

// ScenarioSummary is the public description of a scenario.
type ScenarioSummary struct {
	Label string       `json:"label"`
	Type  ScenarioType `json:"type"`
}

// Summary returns the label and type of the scenario.
func (s *TrainingScenario) Summary() ScenarioSummary {
	return ScenarioSummary{Label: s.Label, Type: s.Type}
}
