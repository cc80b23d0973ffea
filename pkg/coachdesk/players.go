package coachdesk

import (
	"context"
	"net/url"

	"github.com/pkg/errors"
)

// playerService implements the PlayerService interface
type playerService struct {
	client *Client
}

// List retrieves all athletes visible to the caller
func (s *playerService) List(ctx context.Context) ([]*Player, error) {
	var result struct {
		Players []*Player `json:"players"`
	}

	if err := s.client.do(ctx, "GET", "/players", nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	return result.Players, nil
}

// Get retrieves a single athlete by ID
func (s *playerService) Get(ctx context.Context, playerID string) (*Player, error) {
	var result struct {
		Player *Player `json:"player"`
	}

	if err := s.client.do(ctx, "GET", playerPath(playerID), nil, &result); err != nil {
		return nil, errors.Wrap(err, "failed to get player")
	}

	return result.Player, nil
}

// Create creates a new athlete record
func (s *playerService) Create(ctx context.Context, params *CreatePlayerParams) (*Player, error) {
	var result struct {
		Player *Player `json:"player"`
	}

	if err := s.client.do(ctx, "POST", "/players", params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to create player")
	}

	return result.Player, nil
}

// Update updates an athlete record
func (s *playerService) Update(ctx context.Context, playerID string, params *UpdatePlayerParams) (*Player, error) {
	var result struct {
		Player *Player `json:"player"`
	}

	if err := s.client.do(ctx, "PATCH", playerPath(playerID), params, &result); err != nil {
		return nil, errors.Wrap(err, "failed to update player")
	}

	return result.Player, nil
}

// Delete deletes an athlete record
func (s *playerService) Delete(ctx context.Context, playerID string) error {
	if err := s.client.do(ctx, "DELETE", playerPath(playerID), nil, nil); err != nil {
		return errors.Wrap(err, "failed to delete player")
	}

	return nil
}

func playerPath(playerID string) string {
	return "/players/" + url.PathEscape(playerID)
}
