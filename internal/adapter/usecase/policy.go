package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
)

// Policy is the dispatch strategy of a scenario. It is selected once per
// generation run with PolicyFor so no other step needs to switch on the
// scenario type.
type Policy interface {
	// Tag is the one-letter marker embedded in generated campaign ids.
	Tag() string
	// TraineeRole names what trainees are registered as, for messages.
	TraineeRole() string
	// CheckTrainees ensures every trainee exists on the case-management
	// backend. An already existing trainee counts as success.
	CheckTrainees(ctx context.Context, api port.CaseManagementAPI, trainees []string, logger *slog.Logger) bool
	// Assign decides which interviewer receives a copy of which template unit.
	Assign(units []domain.SurveyUnit, assignments []domain.Assignment, trainees []string) []Placement
}

// Placement is one survey unit to generate: a template unit and the
// interviewer it goes to. InterviewerID may be empty.
type Placement struct {
	Source        *domain.SurveyUnit
	InterviewerID string
}

// PolicyFor returns the strategy of a scenario type.
func PolicyFor(t domain.ScenarioType) (Policy, error) {
	switch t {
	case domain.ScenarioInterviewer:
		return InterviewerPolicy{}, nil
	case domain.ScenarioManager:
		return ManagerPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", port.ErrUnknownPolicy, t)
	}
}

// InterviewerPolicy gives every trainee an independent copy of every unit.
type InterviewerPolicy struct{}

func (InterviewerPolicy) Tag() string         { return "I" }
func (InterviewerPolicy) TraineeRole() string { return "interviewers" }

// CheckTrainees registers each trainee as an interviewer.
func (InterviewerPolicy) CheckTrainees(ctx context.Context, api port.CaseManagementAPI, trainees []string, logger *slog.Logger) bool {
	for _, trainee := range trainees {
		err := api.CreateInterviewers(ctx, []domain.Interviewer{domain.TrainingInterviewer(trainee)})
		if !ensured(err, "interviewer", trainee, logger) {
			return false
		}
	}
	return true
}

// Assign returns the cross product trainees × units.
func (InterviewerPolicy) Assign(units []domain.SurveyUnit, _ []domain.Assignment, trainees []string) []Placement {
	out := make([]Placement, 0, len(trainees)*len(units))
	for _, trainee := range trainees {
		for i := range units {
			out = append(out, Placement{Source: &units[i], InterviewerID: trainee})
		}
	}
	return out
}

// ManagerPolicy keeps units 1:1 with the template and carries over the
// original interviewer of each unit.
type ManagerPolicy struct{}

func (ManagerPolicy) Tag() string         { return "M" }
func (ManagerPolicy) TraineeRole() string { return "users" }

// CheckTrainees attaches each trainee as a user of the caller's
// organisation unit.
func (ManagerPolicy) CheckTrainees(ctx context.Context, api port.CaseManagementAPI, trainees []string, logger *slog.Logger) bool {
	ou, err := api.UserOrganisationUnit(ctx)
	if err != nil || ou == nil {
		logger.Warn("can't get organisation unit of caller", slog.Any("error", err))
		return false
	}
	for _, trainee := range trainees {
		err = api.CreateUsers(ctx, ou.ID, []domain.User{domain.TrainingUser(trainee)})
		if !ensured(err, "user", trainee, logger) {
			return false
		}
	}
	return true
}

// Assign looks up the template assignment of each unit. A unit without
// assignment gets an empty interviewer.
func (ManagerPolicy) Assign(units []domain.SurveyUnit, assignments []domain.Assignment, _ []string) []Placement {
	interviewerOf := make(map[string]string, len(assignments))
	for _, a := range assignments {
		interviewerOf[a.SurveyUnitID] = a.InterviewerID
	}
	out := make([]Placement, 0, len(units))
	for i := range units {
		out = append(out, Placement{Source: &units[i], InterviewerID: interviewerOf[units[i].ID]})
	}
	return out
}

func ensured(err error, kind, id string, logger *slog.Logger) bool {
	switch {
	case err == nil:
		logger.Info(kind+" created", slog.String("trainee", id))
		return true
	case errors.Is(err, port.ErrAlreadyExists):
		logger.Info(kind+" already present", slog.String("trainee", id))
		return true
	default:
		logger.Error(kind+" check failed", slog.String("trainee", id), slog.Any("error", err))
		return false
	}
}
