package port

import "errors"

var (
	ErrScenarioNotFound      = errors.New("scenario not found")
	ErrTraineeValidation     = errors.New("trainee validation failed")
	ErrGenerationFailed      = errors.New("campaign generation failed")
	ErrPublicationFailed     = errors.New("campaign publication failed")
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrUnknownPolicy         = errors.New("unknown scenario policy")
	ErrUnmappedQuestionnaire = errors.New("survey unit references an unknown questionnaire")
	ErrInvalidRequest        = errors.New("invalid request")
	ErrJournalDisabled       = errors.New("run journal disabled")
)
