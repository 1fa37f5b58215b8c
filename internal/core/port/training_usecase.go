package port

import (
	"context"

	"training-courses/internal/core/domain"
)

// TrainingUseCase defines the operations exposed to the HTTP layer. It is the
// primary port of the application.
type TrainingUseCase interface {
	// ListScenarios returns the label and policy of every available scenario.
	ListScenarios(ctx context.Context) []domain.ScenarioSummary

	// Generate clones every campaign of a scenario for the given trainees and
	// publishes them to both backends. On any failure after validation, every
	// known campaign id is deleted again. The returned result always carries a
	// human-readable message; the error wraps one of ErrScenarioNotFound,
	// ErrTraineeValidation, ErrGenerationFailed or ErrPublicationFailed.
	Generate(ctx context.Context, req GenerateRequest) (GenerationResult, error)

	// DeleteCampaign deletes a campaign on both backends. It returns
	// ErrCampaignNotFound without calling any delete endpoint when the
	// case-management backend does not list the id.
	DeleteCampaign(ctx context.Context, id string) error

	// ListTrainingCourses returns campaigns visible to the caller.
	ListTrainingCourses(ctx context.Context, admin bool) ([]domain.CampaignSummary, error)

	// UserOrganisationUnit returns the organisation unit of the caller.
	UserOrganisationUnit(ctx context.Context) (*domain.OrganisationUnit, error)

	// OrganisationUnits returns every organisation unit.
	OrganisationUnits(ctx context.Context) ([]domain.OrganisationUnit, error)

	// ListRuns returns recent generation runs from the journal.
	ListRuns(ctx context.Context, limit int) ([]domain.TrainingRun, error)

	// Health reports the reachability of both backends.
	Health(ctx context.Context) HealthReport
}

// GenerateRequest carries the caller-supplied generation parameters.
type GenerateRequest struct {
	ScenarioID         string
	CampaignLabel      string
	OrganisationUnitID string
	ReferenceDate      int64
	Trainees           []string
}

// GenerationResult is the user-facing outcome of Generate.
type GenerationResult struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message"`
	Campaigns []string `json:"campaigns,omitempty"`
}

// HealthReport tells whether each backend answered its health check.
type HealthReport struct {
	CaseManagement bool
	Questionnaire  bool
}
