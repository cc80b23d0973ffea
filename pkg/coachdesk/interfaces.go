package coachdesk

import (
	"context"
)

// AuthService handles authentication and session lifecycle
type AuthService interface {
	// Login authenticates a coach
	Login(ctx context.Context, email, password string) (*Session, error)

	// LoginPlayer authenticates a player
	LoginPlayer(ctx context.Context, email, password string) (*Session, error)

	// Register creates a coach account and returns the server message
	Register(ctx context.Context, params *RegisterParams) (string, error)

	// RegisterPlayer creates a player account from a team invite
	RegisterPlayer(ctx context.Context, params *RegisterPlayerParams) (string, error)

	// CheckEmail reports whether an account exists for the address
	CheckEmail(ctx context.Context, email string) (bool, error)

	// Refresh forces a coordinated token refresh. Concurrent refreshes,
	// including ones triggered by 401 responses, share a single call.
	Refresh(ctx context.Context) error

	// Logout revokes the refresh credential (best-effort) and clears the
	// local session. Safe to call when already logged out.
	Logout(ctx context.Context) error

	// Session returns the current session
	Session() (*Session, error)

	// SaveSession saves session to file
	SaveSession(path string) error

	// LoadSession loads session from file
	LoadSession(path string) error
}

// TeamService handles team and roster operations
type TeamService interface {
	// List retrieves all teams visible to the caller
	List(ctx context.Context) ([]*Team, error)

	// Get retrieves a single team by ID
	Get(ctx context.Context, teamID string) (*Team, error)

	// Create creates a new team
	Create(ctx context.Context, params *CreateTeamParams) (*Team, error)

	// Update updates an existing team
	Update(ctx context.Context, teamID string, params *UpdateTeamParams) (*Team, error)

	// Delete deletes a team
	Delete(ctx context.Context, teamID string) error

	// Roster retrieves the players on a team
	Roster(ctx context.Context, teamID string) ([]*Player, error)

	// AddPlayer adds a player to the team roster
	AddPlayer(ctx context.Context, teamID, playerID string) error

	// RemovePlayer removes a player from the team roster
	RemovePlayer(ctx context.Context, teamID, playerID string) error
}

// PlayerService handles athlete records
type PlayerService interface {
	// List retrieves all athletes visible to the caller
	List(ctx context.Context) ([]*Player, error)

	// Get retrieves a single athlete by ID
	Get(ctx context.Context, playerID string) (*Player, error)

	// Create creates a new athlete record
	Create(ctx context.Context, params *CreatePlayerParams) (*Player, error)

	// Update updates an athlete record
	Update(ctx context.Context, playerID string, params *UpdatePlayerParams) (*Player, error)

	// Delete deletes an athlete record
	Delete(ctx context.Context, playerID string) error
}

// PlanService handles training plans and scheduled sessions
type PlanService interface {
	// List retrieves the plans for a team
	List(ctx context.Context, teamID string) ([]*TrainingPlan, error)

	// Get retrieves a single plan by ID
	Get(ctx context.Context, planID string) (*TrainingPlan, error)

	// Create creates a new training plan
	Create(ctx context.Context, params *CreatePlanParams) (*TrainingPlan, error)

	// Update updates a training plan
	Update(ctx context.Context, planID string, params *UpdatePlanParams) (*TrainingPlan, error)

	// Delete deletes a training plan
	Delete(ctx context.Context, planID string) error

	// Sessions retrieves the scheduled sessions for a team in a date range
	Sessions(ctx context.Context, teamID string, from, to Date) ([]*TrainingSession, error)
}

// WellnessService handles daily athlete self-reports
type WellnessService interface {
	// Submit records a daily wellness report
	Submit(ctx context.Context, params *WellnessReportParams) (*WellnessReport, error)

	// List retrieves a player's reports in a date range
	List(ctx context.Context, playerID string, from, to Date) ([]*WellnessReport, error)

	// TeamSummary aggregates a team's reports for one day
	TeamSummary(ctx context.Context, teamID string, day Date) (*WellnessSummary, error)
}
