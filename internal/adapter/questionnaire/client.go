// Package questionnaire is the outbound adapter for the
// questionnaire-delivery backend API.
package questionnaire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"training-courses/internal/adapter/rest"
	"training-courses/internal/core/domain"
	"training-courses/internal/core/port"
)

// Client implements port.QuestionnaireAPI over HTTP.
type Client struct {
	rest   *rest.Client
	logger *slog.Logger
}

// NewClient wraps a rest.Client pointed at the backend base URL.
func NewClient(c *rest.Client, logger *slog.Logger) *Client {
	return &Client{rest: c, logger: logger}
}

// CreateCampaign posts a campaign.
func (c *Client) CreateCampaign(ctx context.Context, campaign domain.QuestionnaireCampaign) error {
	c.logger.Info("creating campaign", slog.String("campaign_id", campaign.ID))
	return c.rest.Do(ctx, http.MethodPost, "/api/campaigns", campaign, nil)
}

// CreateSurveyUnit posts one survey unit under a campaign.
func (c *Client) CreateSurveyUnit(ctx context.Context, campaignID string, unit domain.QuestionnaireSurveyUnit) error {
	c.logger.Debug("creating survey-unit", slog.String("entity_id", unit.ID))
	path := fmt.Sprintf("/api/campaign/%s/survey-unit", url.PathEscape(campaignID))
	return c.rest.Do(ctx, http.MethodPost, path, unit, nil)
}

// CreateNomenclature posts a nomenclature.
func (c *Client) CreateNomenclature(ctx context.Context, nomenclature domain.Nomenclature) error {
	c.logger.Debug("creating nomenclature", slog.String("entity_id", nomenclature.ID))
	return c.rest.Do(ctx, http.MethodPost, "/api/nomenclature", nomenclature, nil)
}

// CreateQuestionnaireModel posts a questionnaire model.
func (c *Client) CreateQuestionnaireModel(ctx context.Context, model domain.QuestionnaireModel) error {
	c.logger.Debug("creating questionnaire model", slog.String("entity_id", model.ID))
	return c.rest.Do(ctx, http.MethodPost, "/api/questionnaire-models", model, nil)
}

// DeleteCampaign force-deletes a campaign and its children.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/campaign/%s?force=true", url.PathEscape(id))
	return c.rest.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Healthcheck calls the backend health endpoint.
func (c *Client) Healthcheck(ctx context.Context) error {
	return c.rest.Do(ctx, http.MethodGet, "/api/healthcheck", nil, nil)
}

var _ port.QuestionnaireAPI = (*Client)(nil)
