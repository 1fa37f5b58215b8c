package port

import (
	"context"

	"training-courses/internal/core/domain"
)

// CaseManagementAPI is the outbound port to the case-management backend.
// Errors wrap ErrAlreadyExists when the backend reports a conflict.
type CaseManagementAPI interface {
	CreateCampaign(ctx context.Context, campaign domain.CaseManagementCampaign) error
	CreateSurveyUnits(ctx context.Context, units []domain.CaseManagementSurveyUnit) error
	CreateAssignments(ctx context.Context, assignments []domain.Assignment) error
	CreateInterviewers(ctx context.Context, interviewers []domain.Interviewer) error
	CreateUsers(ctx context.Context, organisationUnitID string, users []domain.User) error
	ListCampaigns(ctx context.Context, admin bool) ([]domain.CampaignSummary, error)
	UserOrganisationUnit(ctx context.Context) (*domain.OrganisationUnit, error)
	ListOrganisationUnits(ctx context.Context) ([]domain.OrganisationUnit, error)
	// DeleteCampaign deletes the campaign with force, bypassing backend
	// referential checks.
	DeleteCampaign(ctx context.Context, id string) error
	Healthcheck(ctx context.Context) error
}

// QuestionnaireAPI is the outbound port to the questionnaire-delivery backend.
type QuestionnaireAPI interface {
	CreateCampaign(ctx context.Context, campaign domain.QuestionnaireCampaign) error
	CreateSurveyUnit(ctx context.Context, campaignID string, unit domain.QuestionnaireSurveyUnit) error
	CreateNomenclature(ctx context.Context, nomenclature domain.Nomenclature) error
	CreateQuestionnaireModel(ctx context.Context, model domain.QuestionnaireModel) error
	DeleteCampaign(ctx context.Context, id string) error
	Healthcheck(ctx context.Context) error
}
