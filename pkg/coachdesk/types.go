package coachdesk

import (
	"time"

	"github.com/coachdesk/coachdesk-go/internal/auth"
)

// Session is the public view of the authenticated session
type Session struct {
	Token      string    `json:"token"`
	UserID     string    `json:"userId"`
	Role       string    `json:"role"`
	Email      string    `json:"email"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	ExpiresAt  time.Time `json:"expiresAt"`
	DeviceUUID string    `json:"deviceUuid"`
}

// Profile represents the authenticated identity
type Profile struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// Team represents a coached team
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Sport       string    `json:"sport"`
	Season      string    `json:"season"`
	CoachID     string    `json:"coachId"`
	InviteCode  string    `json:"inviteCode,omitempty"`
	PlayerCount int       `json:"playerCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Player represents an athlete on the roster
type Player struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Position  string   `json:"position,omitempty"`
	Number    int      `json:"number,omitempty"`
	BirthDate Date     `json:"birthDate,omitempty"`
	HeightCM  float64  `json:"heightCm,omitempty"`
	WeightKG  float64  `json:"weightKg,omitempty"`
	TeamIDs   []string `json:"teamIds,omitempty"`
}

// TrainingPlan represents a scheduled block of training for a team
type TrainingPlan struct {
	ID          string    `json:"id"`
	TeamID      string    `json:"teamId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartDate   Date      `json:"startDate"`
	EndDate     Date      `json:"endDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TrainingSession represents a single scheduled session within a plan
type TrainingSession struct {
	ID              string `json:"id"`
	PlanID          string `json:"planId"`
	TeamID          string `json:"teamId"`
	Title           string `json:"title"`
	Day             Date   `json:"day"`
	StartTime       string `json:"startTime,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	Location        string `json:"location,omitempty"`
	Focus           string `json:"focus,omitempty"`
	Completed       bool   `json:"completed"`
}

// WellnessReport is a daily athlete self-report. Scores are 1 (worst)
// through 5 (best).
type WellnessReport struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"playerId"`
	Day         Date      `json:"day"`
	Sleep       int       `json:"sleep"`
	Fatigue     int       `json:"fatigue"`
	Soreness    int       `json:"soreness"`
	Stress      int       `json:"stress"`
	Mood        int       `json:"mood"`
	Comment     string    `json:"comment,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// WellnessSummary aggregates a team's reports for one day
type WellnessSummary struct {
	TeamID          string  `json:"teamId"`
	Day             Date    `json:"day"`
	Responses       int     `json:"responses"`
	RosterSize      int     `json:"rosterSize"`
	AverageSleep    float64 `json:"averageSleep"`
	AverageFatigue  float64 `json:"averageFatigue"`
	AverageSoreness float64 `json:"averageSoreness"`
	AverageStress   float64 `json:"averageStress"`
	AverageMood     float64 `json:"averageMood"`
}

// RegisterParams are the fields for coach registration
type RegisterParams = auth.RegisterParams

// RegisterPlayerParams are the fields for player self-registration
type RegisterPlayerParams = auth.RegisterPlayerParams

// CreateTeamParams are the fields for creating a team
type CreateTeamParams struct {
	Name   string `json:"name"`
	Sport  string `json:"sport"`
	Season string `json:"season,omitempty"`
}

// UpdateTeamParams are the fields for updating a team. Nil fields are left
// unchanged.
type UpdateTeamParams struct {
	Name   *string `json:"name,omitempty"`
	Sport  *string `json:"sport,omitempty"`
	Season *string `json:"season,omitempty"`
}

// CreatePlayerParams are the fields for adding an athlete
type CreatePlayerParams struct {
	Email     string  `json:"email,omitempty"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Position  string  `json:"position,omitempty"`
	Number    int     `json:"number,omitempty"`
	BirthDate *Date   `json:"birthDate,omitempty"`
	HeightCM  float64 `json:"heightCm,omitempty"`
	WeightKG  float64 `json:"weightKg,omitempty"`
}

// UpdatePlayerParams are the fields for updating an athlete
type UpdatePlayerParams struct {
	Position *string  `json:"position,omitempty"`
	Number   *int     `json:"number,omitempty"`
	HeightCM *float64 `json:"heightCm,omitempty"`
	WeightKG *float64 `json:"weightKg,omitempty"`
}

// CreatePlanParams are the fields for creating a training plan
type CreatePlanParams struct {
	TeamID      string `json:"teamId"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	StartDate   Date   `json:"startDate"`
	EndDate     Date   `json:"endDate"`
}

// UpdatePlanParams are the fields for updating a training plan
type UpdatePlanParams struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	StartDate   *Date   `json:"startDate,omitempty"`
	EndDate     *Date   `json:"endDate,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// WellnessReportParams are the fields for submitting a daily report
type WellnessReportParams struct {
	PlayerID string `json:"playerId" validate:"required"`
	Day      Date   `json:"day"`
	Sleep    int    `json:"sleep" validate:"min=1,max=5"`
	Fatigue  int    `json:"fatigue" validate:"min=1,max=5"`
	Soreness int    `json:"soreness" validate:"min=1,max=5"`
	Stress   int    `json:"stress" validate:"min=1,max=5"`
	Mood     int    `json:"mood" validate:"min=1,max=5"`
	Comment  string `json:"comment,omitempty"`
}
