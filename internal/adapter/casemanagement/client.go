// Package casemanagement is the outbound adapter for the case-management
// backend API.
package casemanagement

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

// Client implements port.CaseManagementAPI over HTTP.
type Client struct {
	rest   *rest.Client
	logger *slog.Logger
}

// NewClient wraps a rest.Client pointed at the backend base URL.
func NewClient(c *rest.Client, logger *slog.Logger) *Client {
	return &Client{rest: c, logger: logger}
}

// CreateCampaign posts a campaign.
func (c *Client) CreateCampaign(ctx context.Context, campaign domain.CaseManagementCampaign) error {
	c.logger.Info("creating campaign", slog.String("campaign_id", campaign.ID))
	return c.rest.Do(ctx, http.MethodPost, "/api/campaign", campaign, nil)
}

// CreateSurveyUnits posts survey units in bulk.
func (c *Client) CreateSurveyUnits(ctx context.Context, units []domain.CaseManagementSurveyUnit) error {
	c.logger.Info("creating survey-units", slog.Int("count", len(units)))
	return c.rest.Do(ctx, http.MethodPost, "/api/survey-units", units, nil)
}

// CreateAssignments posts survey-unit/interviewer assignments in bulk.
func (c *Client) CreateAssignments(ctx context.Context, assignments []domain.Assignment) error {
	c.logger.Info("creating assignments", slog.Int("count", len(assignments)))
	return c.rest.Do(ctx, http.MethodPost, "/api/survey-units/interviewers", assignments, nil)
}

// CreateInterviewers posts interviewers.
func (c *Client) CreateInterviewers(ctx context.Context, interviewers []domain.Interviewer) error {
	return c.rest.Do(ctx, http.MethodPost, "/api/interviewers", interviewers, nil)
}

// CreateUsers attaches users to an organisation unit.
func (c *Client) CreateUsers(ctx context.Context, organisationUnitID string, users []domain.User) error {
	path := fmt.Sprintf("/api/organization-unit/%s/users", url.PathEscape(organisationUnitID))
	return c.rest.Do(ctx, http.MethodPost, path, users, nil)
}

// ListCampaigns returns the campaigns visible to the caller, or every
// campaign when admin is set.
func (c *Client) ListCampaigns(ctx context.Context, admin bool) ([]domain.CampaignSummary, error) {
	path := "/api/campaigns"
	if admin {
		path += "?admin=true"
	}
	var campaigns []domain.CampaignSummary
	if err := c.rest.Do(ctx, http.MethodGet, path, nil, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// UserOrganisationUnit returns the organisation unit of the caller.
func (c *Client) UserOrganisationUnit(ctx context.Context) (*domain.OrganisationUnit, error) {
	var user struct {
		ID               string                  `json:"id"`
		OrganisationUnit *domain.OrganisationUnit `json:"organizationUnit"`
	}
	if err := c.rest.Do(ctx, http.MethodGet, "/api/user", nil, &user); err != nil {
		return nil, err
	}
	if user.OrganisationUnit == nil {
		return nil, fmt.Errorf("user %q has no organisation unit", user.ID)
	}
	return user.OrganisationUnit, nil
}

// ListOrganisationUnits returns every organisation unit.
func (c *Client) ListOrganisationUnits(ctx context.Context) ([]domain.OrganisationUnit, error) {
	var units []domain.OrganisationUnit
	if err := c.rest.Do(ctx, http.MethodGet, "/api/organization-units", nil, &units); err != nil {
		return nil, err
	}
	return units, nil
}

// DeleteCampaign force-deletes a campaign.
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/campaign/%s?force=true", url.PathEscape(id))
	return c.rest.Do(ctx, http.MethodDelete, path, nil, nil)
}

// Healthcheck calls the backend health endpoint.
func (c *Client) Healthcheck(ctx context.Context) error {
	return c.rest.Do(ctx, http.MethodGet, "/api/healthcheck", nil, nil)
}

var _ port.CaseManagementAPI = (*Client)(nil)
