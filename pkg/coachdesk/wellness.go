package coachdesk

import (
	"context"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validateWellness = validator.New()

// wellnessService implements the WellnessService interface
type wellnessService struct {
	client *Client
}

// Submit records a daily wellness report. Scores are validated locally
// before any network call.
func (s *wellnessService) Submit(ctx context.Context, params *WellnessReportParams) (*WellnessReport, error) {
	if err := validateWellness.Struct(params); err != nil {
		return nil, errors.Wrap(err, "invalid wellness report")
	}

	var result struct {
		Report *WellnessReport `json:"report"`
	}

	if err := s.client.do(ctx, "POST", "/wellness/reports", params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to submit wellness report")
	}

	return result.Report, nil
}

// List retrieves a player's reports in a date range
func (s *wellnessService) List(ctx context.Context, playerID string, from, to Date) ([]*WellnessReport, error) {
	query := url.Values{}
	query.Set("playerId", playerID)
	if !from.IsZero() {
		query.Set("from", from.String())
	}
	if !to.IsZero() {
		query.Set("to", to.String())
	}

	var result struct {
		Reports []*WellnessReport `json:"reports"`
	}

	if err := s.client.do(ctx, "GET", "/wellness/reports?"+query.Encode(), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list wellness reports")
	}

	return result.Reports, nil
}

// TeamSummary aggregates a team's reports for one day
func (s *wellnessService) TeamSummary(ctx context.Context, teamID string, day Date) (*WellnessSummary, error) {
	query := url.Values{}
	query.Set("teamId", teamID)
	if !day.IsZero() {
		query.Set("day", day.String())
	}

	var result struct {
		Summary *WellnessSummary `json:"summary"`
	}

	if err := s.client.do(ctx, "GET", "/wellness/summary?"+query.Encode(), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get wellness summary")
	}

	return result.Summary, nil
}
