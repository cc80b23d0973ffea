package coachdesk

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// planService implements the PlanService interface
type planService struct {
	client *Client
}

// List retrieves the plans for a team
func (s *planService) List(ctx context.Context, teamID string) ([]*TrainingPlan, error) {
	query := url.Values{}
	query.Set("teamId", teamID)

	var result struct {
		Plans []*TrainingPlan `json:"plans"`
	}

	if err := s.client.do(ctx, "GET", "/plans?"+query.Encode(), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list plans")
	}

	return result.Plans, nil
}

// Get retrieves a single plan by ID
func (s *planService) Get(ctx context.Context, planID string) (*TrainingPlan, error) {
	var result struct {
		Plan *TrainingPlan `json:"plan"`
	}

	if err := s.client.do(ctx, "GET", planPath(planID), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get plan")
	}

	return result.Plan, nil
}

// Create creates a new training plan
func (s *planService) Create(ctx context.Context, params *CreatePlanParams) (*TrainingPlan, error) {
	var result struct {
		Plan *TrainingPlan `json:"plan"`
	}

	if err := s.client.do(ctx, "POST", "/plans", params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create plan")
	}

	return result.Plan, nil
}

// Update updates a training plan
func (s *planService) Update(ctx context.Context, planID string, params *UpdatePlanParams) (*TrainingPlan, error) {
	var result struct {
		Plan *TrainingPlan `json:"plan"`
	}

	if err := s.client.do(ctx, "PATCH", planPath(planID), params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update plan")
	}

	return result.Plan, nil
}

// Delete deletes a training plan
func (s *planService) Delete(ctx context.Context, planID string) error {
	if err := s.client.do(ctx, "DELETE", planPath(planID), nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete plan")
	}

	return nil
}

// Sessions retrieves the scheduled sessions for a team in a date range
func (s *planService) Sessions(ctx context.Context, teamID string, from, to Date) ([]*TrainingSession, error) {
	query := url.Values{}
	query.Set("teamId", teamID)
	if !from.IsZero() {
		query.Set("from", from.String())
	}
	if !to.IsZero() {
		query.Set("to", to.String())
	}

	var result struct {
		Sessions []*TrainingSession `json:"sessions"`
	}

	if err := s.client.do(ctx, "GET", "/plans/sessions?"+query.Encode(), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list sessions")
	}

	return result.Sessions, nil
}

func planPath(planID string) string {
	return "/plans/" + url.PathEscape(planID)
}
