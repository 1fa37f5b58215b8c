package port

import "training-courses/internal/core/domain"

// TemplateStore is the read-only store of training scenarios. Returned
// scenarios are shared between concurrent runs and must not be mutated.
type TemplateStore interface {
	// Scenario returns the scenario with the given label, or false if absent.
	Scenario(label string) (*domain.TrainingScenario, bool)
	// Scenarios returns the label and type of every loaded scenario.
	Scenarios() []domain.ScenarioSummary
}
