package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
	"training-courses/internal/requestctx"
)

// TrainingUseCase orchestrates scenario generation: resolve the scenario,
// validate trainees, clone and dispatch every campaign, publish, and roll
// back every known campaign on failure.
type TrainingUseCase struct {
	store          port.TemplateStore
	caseManagement port.CaseManagementAPI
	questionnaire  port.QuestionnaireAPI
	publisher      port.Publisher
	journal        port.RunJournal
	cloner         *Cloner
	logger         *slog.Logger
	tracer         trace.Tracer
	now            func() time.Time
}

// NewTrainingUseCase wires the orchestrator. journal may be nil, in which
// case runs are not recorded.
func NewTrainingUseCase(
	store port.TemplateStore,
	cm port.CaseManagementAPI,
	q port.QuestionnaireAPI,
	publisher port.Publisher,
	journal port.RunJournal,
	cloner *Cloner,
	logger *slog.Logger,
) *TrainingUseCase {
	if cloner == nil {
		cloner = NewCloner(nil)
	}
	return &TrainingUseCase{
		store:          store,
		caseManagement: cm,
		questionnaire:  q,
		publisher:      publisher,
		journal:        journal,
		cloner:         cloner,
		logger:         logger,
		tracer:         otel.Tracer("training-courses/usecase"),
		now:            time.Now,
	}
}

// ListScenarios returns the label and type of every scenario.
func (u *TrainingUseCase) ListScenarios(_ context.Context) []domain.ScenarioSummary {
	return u.store.Scenarios()
}

// Generate runs the whole pipeline for one request.
func (u *TrainingUseCase) Generate(ctx context.Context, req port.GenerateRequest) (port.GenerationResult, error) {
	ctx, span := u.tracer.Start(ctx, "generate", trace.WithAttributes(
		attribute.String("scenario", req.ScenarioID),
		attribute.Int("trainees", len(req.Trainees)),
	))
	defer span.End()

	logger := u.logger.With(
		slog.String("scenario", req.ScenarioID),
		slog.String("requester", requestctx.RequesterID(ctx)),
	)

	result, err := u.generate(ctx, req, logger)
	if err != nil {
		span.SetStatus(codes.Error, result.Message)
		logger.Warn("training scenario generation failed", slog.String("message", result.Message), slog.Any("error", err))
	} else {
		logger.Info("training scenario generated", slog.Any("campaigns", result.Campaigns))
	}
	return result, err
}

func (u *TrainingUseCase) generate(ctx context.Context, req port.GenerateRequest, logger *slog.Logger) (port.GenerationResult, error) {
	if err := validate(req); err != nil {
		return failure(err.Error()), err
	}

	scenario, ok := u.store.Scenario(req.ScenarioID)
	if !ok {
		return failure(fmt.Sprintf("Scenario %s is not present", req.ScenarioID)),
			fmt.Errorf("%w: %s", port.ErrScenarioNotFound, req.ScenarioID)
	}
	policy, err := PolicyFor(scenario.Type)
	if err != nil {
		return failure("Error when loading campaigns"), fmt.Errorf("%w: %w", port.ErrGenerationFailed, err)
	}

	if !policy.CheckTrainees(ctx, u.caseManagement, req.Trainees, logger) {
		return failure("Error when checking " + policy.TraineeRole()),
			fmt.Errorf("%w: %s", port.ErrTraineeValidation, policy.TraineeRole())
	}

	cfg := domain.TrainingConfiguration{
		CampaignLabel:      req.CampaignLabel,
		OrganisationUnitID: req.OrganisationUnitID,
		ReferenceDate:      req.ReferenceDate,
		Trainees:           req.Trainees,
		ScenarioLabel:      scenario.Label,
	}
	run := u.newRun(ctx, req)
	defer func() { u.record(ctx, run, logger) }()

	campaigns := u.generateCampaigns(scenario, cfg, policy, logger)
	for i, c := range campaigns {
		entry := domain.RunCampaign{TemplateID: scenario.Campaigns[i].ID(), Status: domain.CampaignNotGenerated}
		if c != nil {
			entry.CampaignID = c.ID()
		}
		run.Campaigns = append(run.Campaigns, entry)
	}

	// Only ids of generated campaigns are known; a template that failed to
	// generate has no id to roll back and is reported as not generated.
	if slices.Contains(campaigns, nil) {
		generated := slices.DeleteFunc(slices.Clone(campaigns), func(c *domain.GeneratedCampaign) bool { return c == nil })
		run.apply(u.rollback(ctx, ids(generated), logger))
		run.finish(false, "Error when loading campaigns")
		return failure(run.Message), port.ErrGenerationFailed
	}

	var failed []string
	for _, c := range campaigns {
		report := u.publisher.Publish(ctx, c)
		if !report.OK() {
			failed = append(failed, report.String())
		}
	}
	if len(failed) > 0 {
		// Publication is all-or-nothing at scenario level: every campaign is
		// deleted, not only the failed ones.
		run.apply(u.rollback(ctx, ids(campaigns), logger))
		run.finish(false, "Error when posting campaigns: "+strings.Join(failed, "; "))
		return failure(run.Message), fmt.Errorf("%w: %d of %d campaigns", port.ErrPublicationFailed, len(failed), len(campaigns))
	}

	units := 0
	for _, c := range campaigns {
		units += len(c.SurveyUnits)
	}
	for i := range run.Campaigns {
		run.Campaigns[i].Status = domain.CampaignPublished
	}
	run.finish(true, fmt.Sprintf("Training scenario generated: %d campaign(s), %d survey-unit(s)", len(campaigns), units))
	return port.GenerationResult{Success: true, Message: run.Message, Campaigns: ids(campaigns)}, nil
}

// generateCampaigns clones every campaign template. A template that fails
// yields a nil entry so the others still get generated.
func (u *TrainingUseCase) generateCampaigns(
	scenario *domain.TrainingScenario,
	cfg domain.TrainingConfiguration,
	policy Policy,
	logger *slog.Logger,
) []*domain.GeneratedCampaign {
	out := make([]*domain.GeneratedCampaign, len(scenario.Campaigns))
	for i := range scenario.Campaigns {
		tmpl := &scenario.Campaigns[i]
		c, err := u.cloneSafely(tmpl, cfg, policy)
		if err != nil {
			logger.Error("couldn't create training course", slog.String("template_id", tmpl.ID()), slog.Any("error", err))
			continue
		}
		out[i] = c
	}
	return out
}

func (u *TrainingUseCase) cloneSafely(tmpl *domain.CampaignTemplate, cfg domain.TrainingConfiguration, policy Policy) (c *domain.GeneratedCampaign, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, fmt.Errorf("campaign %s: panic during generation: %v", tmpl.ID(), r)
		}
	}()
	return u.cloner.Clone(tmpl, cfg, policy)
}

// rollback deletes campaigns one by one. A campaign the case-management
// backend does not know was never created there and counts as rolled back.
// Any other failed delete is logged for manual cleanup and not retried.
func (u *TrainingUseCase) rollback(ctx context.Context, campaignIDs []string, logger *slog.Logger) map[string]domain.CampaignStatus {
	ctx, span := u.tracer.Start(ctx, "rollback", trace.WithAttributes(attribute.StringSlice("campaign.ids", campaignIDs)))
	defer span.End()

	logger.Warn("roll back: deleting campaigns", slog.Any("campaign_ids", campaignIDs))
	statuses := make(map[string]domain.CampaignStatus, len(campaignIDs))
	for _, id := range campaignIDs {
		err := u.publisher.Delete(ctx, id)
		if errors.Is(err, port.ErrNotFound) {
			logger.Info("rollback: campaign absent from case-management", slog.String("campaign_id", id))
			err = nil
		}
		if err != nil {
			logger.Error("rollback delete failed, manual cleanup may be required",
				slog.String("campaign_id", id), slog.Bool("manual_cleanup", true), slog.Any("error", err))
			span.SetStatus(codes.Error, "rollback incomplete")
			statuses[id] = domain.CampaignRollbackFailed
			continue
		}
		statuses[id] = domain.CampaignRolledBack
	}
	return statuses
}

// DeleteCampaign deletes a campaign known to the case-management backend.
func (u *TrainingUseCase) DeleteCampaign(ctx context.Context, id string) error {
	logger := u.logger.With(slog.String("campaign_id", id), slog.String("requester", requestctx.RequesterID(ctx)))

	campaigns, err := u.caseManagement.ListCampaigns(ctx, true)
	if err != nil {
		return fmt.Errorf("list campaigns: %w", err)
	}
	if !slices.ContainsFunc(campaigns, func(c domain.CampaignSummary) bool { return c.ID == id }) {
		logger.Error("delete campaign resulting in 404 because it does not exist")
		return fmt.Errorf("%w: %s", port.ErrCampaignNotFound, id)
	}
	logger.Warn("deleting campaign")
	return u.publisher.Delete(ctx, id)
}

// ListTrainingCourses returns campaigns visible to the caller.
func (u *TrainingUseCase) ListTrainingCourses(ctx context.Context, admin bool) ([]domain.CampaignSummary, error) {
	return u.caseManagement.ListCampaigns(ctx, admin)
}

// UserOrganisationUnit returns the organisation unit of the caller.
func (u *TrainingUseCase) UserOrganisationUnit(ctx context.Context) (*domain.OrganisationUnit, error) {
	return u.caseManagement.UserOrganisationUnit(ctx)
}

// OrganisationUnits returns every organisation unit.
func (u *TrainingUseCase) OrganisationUnits(ctx context.Context) ([]domain.OrganisationUnit, error) {
	return u.caseManagement.ListOrganisationUnits(ctx)
}

// ListRuns returns recent runs from the journal.
func (u *TrainingUseCase) ListRuns(ctx context.Context, limit int) ([]domain.TrainingRun, error) {
	if u.journal == nil {
		return nil, port.ErrJournalDisabled
	}
	return u.journal.ListRuns(ctx, limit)
}

// Health checks both backends.
func (u *TrainingUseCase) Health(ctx context.Context) port.HealthReport {
	cmErr := u.caseManagement.Healthcheck(ctx)
	qErr := u.questionnaire.Healthcheck(ctx)
	if cmErr != nil || qErr != nil {
		u.logger.Warn("backend health check failed",
			slog.Any("case_management_error", cmErr), slog.Any("questionnaire_error", qErr))
	}
	return port.HealthReport{CaseManagement: cmErr == nil, Questionnaire: qErr == nil}
}

type runRecord struct {
	domain.TrainingRun
}

func (u *TrainingUseCase) newRun(ctx context.Context, req port.GenerateRequest) *runRecord {
	return &runRecord{domain.TrainingRun{
		ID:                 uuid.NewString(),
		Scenario:           req.ScenarioID,
		CampaignLabel:      req.CampaignLabel,
		OrganisationUnitID: req.OrganisationUnitID,
		ReferenceDate:      req.ReferenceDate,
		Trainees:           slices.Clone(req.Trainees),
		Requester:          requestctx.RequesterID(ctx),
		CreatedAt:          u.now().UTC(),
	}}
}

func (r *runRecord) apply(statuses map[string]domain.CampaignStatus) {
	for i, c := range r.Campaigns {
		if s, ok := statuses[c.CampaignID]; ok && c.CampaignID != "" {
			r.Campaigns[i].Status = s
		}
	}
}

func (r *runRecord) finish(success bool, message string) {
	r.Success = success
	r.Message = message
}

func (u *TrainingUseCase) record(ctx context.Context, run *runRecord, logger *slog.Logger) {
	if u.journal == nil {
		return
	}
	if err := u.journal.Record(context.WithoutCancel(ctx), run.TrainingRun); err != nil {
		logger.Error("failed to record training run", slog.String("run_id", run.ID), slog.Any("error", err))
	}
}

func validate(req port.GenerateRequest) error {
	var missing []string
	if strings.TrimSpace(req.ScenarioID) == "" {
		missing = append(missing, "campaignId")
	}
	if strings.TrimSpace(req.CampaignLabel) == "" {
		missing = append(missing, "campaignLabel")
	}
	if strings.TrimSpace(req.OrganisationUnitID) == "" {
		missing = append(missing, "organisationUnitId")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", port.ErrInvalidRequest, strings.Join(missing, ", "))
	}
	if slices.ContainsFunc(req.Trainees, func(t string) bool { return strings.TrimSpace(t) == "" }) {
		return fmt.Errorf("%w: empty trainee id", port.ErrInvalidRequest)
	}
	return nil
}

func failure(message string) port.GenerationResult {
	return port.GenerationResult{Success: false, Message: message}
}

func ids(campaigns []*domain.GeneratedCampaign) []string {
	out := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.ID())
	}
	return out
}

var (
	_ port.TrainingUseCase = (*TrainingUseCase)(nil)
	_ port.Publisher       = (*Publisher)(nil)
)
