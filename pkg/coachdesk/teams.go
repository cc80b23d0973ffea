package coachdesk

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
)

// teamService implements the TeamService interface
type teamService struct {
	client *Client
}

// List retrieves all teams visible to the caller
func (s *teamService) List(ctx context.Context) ([]*Team, error) {
	var result struct {
		Teams []*Team `json:"teams"`
	}

	if err := s.client.do(ctx, "GET", "/teams", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list teams")
	}

	return result.Teams, nil
}

// Get retrieves a single team by ID
func (s *teamService) Get(ctx context.Context, teamID string) (*Team, error) {
	var result struct {
		Team *Team `json:"team"`
	}

	if err := s.client.do(ctx, "GET", teamPath(teamID), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get team")
	}

	return result.Team, nil
}

// Create creates a new team
func (s *teamService) Create(ctx context.Context, params *CreateTeamParams) (*Team, error) {
	var result struct {
		Team *Team `json:"team"`
	}

	if err := s.client.do(ctx, "POST", "/teams", params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create team")
	}

	return result.Team, nil
}

// Update updates an existing team
func (s *teamService) Update(ctx context.Context, teamID string, params *UpdateTeamParams) (*Team, error) {
	var result struct {
		Team *Team `json:"team"`
	}

	if err := s.client.do(ctx, "PATCH", teamPath(teamID), params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update team")
	}

	return result.Team, nil
}

// Delete deletes a team
func (s *teamService) Delete(ctx context.Context, teamID string) error {
	if err := s.client.do(ctx, "DELETE", teamPath(teamID), nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete team")
	}

	return nil
}

// Roster retrieves the players on a team
func (s *teamService) Roster(ctx context.Context, teamID string) ([]*Player, error) {
	var result struct {
		Players []*Player `json:"players"`
	}

	if err := s.client.do(ctx, "GET", teamPath(teamID)+"/players", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get roster")
	}

	return result.Players, nil
}

// AddPlayer adds a player to the team roster
func (s *teamService) AddPlayer(ctx context.Context, teamID, playerID string) error {
	body := map[string]interface{}{"playerId": playerID}

	if err := s.client.do(ctx, "POST", teamPath(teamID)+"/players", body, nil); err != nil {
		return errors.Wrap(err, "failed to add player to team")
	}

	return nil
}

// RemovePlayer removes a player from the team roster
func (s *teamService) RemovePlayer(ctx context.Context, teamID, playerID string) error {
	path := fmt.Sprintf("%s/players/%s", teamPath(teamID), url.PathEscape(playerID))

	if err := s.client.do(ctx, "DELETE", path, nil, nil); err != nil {
		return errors.Wrap(err, "failed to remove player from team")
	}

	return nil
}

func teamPath(teamID string) string {
	return "/teams/" + url.PathEscape(teamID)
}
