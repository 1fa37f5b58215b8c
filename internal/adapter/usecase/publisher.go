package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
	"training-courses/internal/requestctx"
)

// DefaultPublishWorkers bounds concurrent entity creates when no explicit
// worker count is configured.
const DefaultPublishWorkers = 8

// Publisher implements port.Publisher against both backends.
type Publisher struct {
	caseManagement port.CaseManagementAPI
	questionnaire  port.QuestionnaireAPI
	workers        int
	logger         *slog.Logger
	tracer         trace.Tracer
}

// NewPublisher returns a publisher running at most workers concurrent
// creates per entity type.
func NewPublisher(cm port.CaseManagementAPI, q port.QuestionnaireAPI, workers int, logger *slog.Logger) *Publisher {
	if workers <= 0 {
		workers = DefaultPublishWorkers
	}
	return &Publisher{
		caseManagement: cm,
		questionnaire:  q,
		workers:        workers,
		logger:         logger,
		tracer:         otel.Tracer("training-courses/publisher"),
	}
}

// Publish creates the campaign on both backends. Each backend is evaluated
// independently; a failed call never stops its siblings. Calls are not
// cancelled once started, even if ctx is.
func (p *Publisher) Publish(ctx context.Context, campaign *domain.GeneratedCampaign) port.PublishReport {
	ctx, span := p.tracer.Start(ctx, "publish", trace.WithAttributes(attribute.String("campaign.id", campaign.ID())))
	defer span.End()
	ctx = context.WithoutCancel(ctx)

	report := port.PublishReport{
		CampaignID:     campaign.ID(),
		CaseManagement: p.publishCaseManagement(ctx, campaign),
		Questionnaire:  p.publishQuestionnaire(ctx, campaign),
	}
	p.logger.Info("campaign published", slog.String("campaign_id", campaign.ID()),
		slog.Bool("success", report.OK()), slog.String("report", report.String()))
	if !report.OK() {
		span.SetStatus(codes.Error, "publication incomplete")
	}
	return report
}

func (p *Publisher) publishCaseManagement(ctx context.Context, c *domain.GeneratedCampaign) port.CaseManagementReport {
	units := make([]domain.CaseManagementSurveyUnit, 0, len(c.SurveyUnits))
	for _, su := range c.SurveyUnits {
		units = append(units, su.CaseManagement)
	}

	return port.CaseManagementReport{
		Campaign: p.run(func() error { return p.caseManagement.CreateCampaign(ctx, c.CaseManagement) },
			"case-management campaign creation failed", c.ID()),
		SurveyUnits: p.run(func() error { return p.caseManagement.CreateSurveyUnits(ctx, units) },
			"case-management survey-units creation failed", c.ID()),
		Assignments: p.run(func() error { return p.caseManagement.CreateAssignments(ctx, c.Assignments) },
			"case-management assignments creation failed", c.ID()),
	}
}

// publishQuestionnaire creates nomenclatures and models, then the campaign,
// then its survey units. Entities of one kind are created concurrently.
func (p *Publisher) publishQuestionnaire(ctx context.Context, c *domain.GeneratedCampaign) port.QuestionnaireReport {
	caller := requestctx.CallerFromContext(ctx)
	q := c.Questionnaire

	var report port.QuestionnaireReport
	report.Nomenclatures = port.Count{
		Expected: len(q.Nomenclatures),
		Created: scatter(ctx, caller, p.workers, q.Nomenclatures, p.logger, "POST nomenclature failed",
			func(n domain.Nomenclature) string { return n.ID },
			p.ensureNomenclature),
	}
	report.Models = port.Count{
		Expected: len(q.QuestionnaireModels),
		Created: scatter(ctx, caller, p.workers, q.QuestionnaireModels, p.logger, "POST questionnaire failed",
			func(m domain.QuestionnaireModel) string { return m.ID },
			p.questionnaire.CreateQuestionnaireModel),
	}

	report.Campaign = p.run(func() error { return p.questionnaire.CreateCampaign(ctx, q) },
		"questionnaire campaign creation failed", c.ID())

	units := make([]domain.QuestionnaireSurveyUnit, 0, len(c.SurveyUnits))
	for _, su := range c.SurveyUnits {
		units = append(units, su.Questionnaire)
	}
	report.SurveyUnits = port.Count{
		Expected: len(units),
		Created: scatter(ctx, caller, p.workers, units, p.logger, "POST surveyUnit failed",
			func(su domain.QuestionnaireSurveyUnit) string { return su.ID },
			func(ctx context.Context, su domain.QuestionnaireSurveyUnit) error {
				return p.questionnaire.CreateSurveyUnit(ctx, c.ID(), su)
			}),
	}
	return report
}

// ensureNomenclature creates a nomenclature. Nomenclatures keep their
// template id across runs, so one left by an earlier run is reused.
func (p *Publisher) ensureNomenclature(ctx context.Context, n domain.Nomenclature) error {
	err := p.questionnaire.CreateNomenclature(ctx, n)
	if errors.Is(err, port.ErrAlreadyExists) {
		p.logger.Info("nomenclature already present", slog.String("entity_id", n.ID))
		return nil
	}
	return err
}

// Delete force-deletes the campaign on both backends. Both deletes are
// always attempted; only the case-management result is returned.
func (p *Publisher) Delete(ctx context.Context, id string) error {
	ctx = context.WithoutCancel(ctx)
	cmErr := p.caseManagement.DeleteCampaign(ctx, id)
	qErr := p.questionnaire.DeleteCampaign(ctx, id)
	p.logger.Info("campaign deleted", slog.String("campaign_id", id),
		slog.Any("case_management_error", cmErr), slog.Any("questionnaire_error", qErr))
	if cmErr != nil {
		return fmt.Errorf("delete campaign %s: %w", id, cmErr)
	}
	return nil
}

func (p *Publisher) run(call func() error, failure, entityID string) bool {
	if err := call(); err != nil {
		p.logger.Error(failure, slog.String("entity_id", entityID), slog.Any("error", err))
		return false
	}
	return true
}

// scatter runs call for every item on at most workers goroutines and
// returns how many succeeded. The caller identity is captured before the
// fan-out and set explicitly on the context of every task.
func scatter[T any](
	ctx context.Context,
	caller requestctx.Caller,
	workers int,
	items []T,
	logger *slog.Logger,
	failure string,
	entityID func(T) string,
	call func(context.Context, T) error,
) int {
	var (
		created atomic.Int64
		g       errgroup.Group
	)
	g.SetLimit(workers)
	for _, item := range items {
		g.Go(func() error {
			taskCtx := requestctx.WithCaller(ctx, caller)
			if err := call(taskCtx, item); err != nil {
				logger.Error(failure, slog.String("entity_id", entityID(item)), slog.Any("error", err))
				return nil
			}
			created.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(created.Load())
}
