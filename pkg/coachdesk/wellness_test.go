package coachdesk

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWellnessService_Submit(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"report": {
			"id": "report-1",
			"playerId": "player-1",
			"day": "2026-09-01",
			"sleep": 4,
			"fatigue": 3,
			"soreness": 2,
			"stress": 4,
			"mood": 5
		}
	}`

	mockTransport.On("Do", mock.Anything, "POST", "/wellness/reports", mock.MatchedBy(func(body interface{}) bool {
		params, ok := body.(*WellnessReportParams)
		return ok && params.PlayerID == "player-1" && params.Sleep == 4
	}), mock.Anything).Return(response, nil)

	report, err := client.Wellness.Submit(context.Background(), &WellnessReportParams{
		PlayerID: "player-1",
		Day:      NewDate(2026, time.September, 1),
		Sleep:    4,
		Fatigue:  3,
		Soreness: 2,
		Stress:   4,
		Mood:     5,
	})

	assert.NoError(t, err)
	require.NotNil(t, report)
	assert.Equal(t, "report-1", report.ID)
	assert.Equal(t, 5, report.Mood)

	mockTransport.AssertExpectations(t)
}

func TestWellnessService_SubmitValidatesScores(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	// Score out of range: rejected locally, nothing sent
	report, err := client.Wellness.Submit(context.Background(), &WellnessReportParams{
		PlayerID: "player-1",
		Sleep:    9,
		Fatigue:  3,
		Soreness: 2,
		Stress:   4,
		Mood:     5,
	})

	assert.Nil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid wellness report")
	mockTransport.AssertNotCalled(t, "Do", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWellnessService_List(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"reports": [
			{"id": "report-1", "playerId": "player-1", "day": "2026-08-30", "sleep": 3},
			{"id": "report-2", "playerId": "player-1", "day": "2026-08-31", "sleep": 4}
		]
	}`

	mockTransport.On("Do", mock.Anything, "GET",
		"/wellness/reports?from=2026-08-30&playerId=player-1&to=2026-08-31", nil, mock.Anything).
		Return(response, nil)

	reports, err := client.Wellness.List(context.Background(), "player-1",
		NewDate(2026, time.August, 30), NewDate(2026, time.August, 31))

	assert.NoError(t, err)
	assert.Len(t, reports, 2)
	assert.Equal(t, "2026-08-30", reports[0].Day.String())

	mockTransport.AssertExpectations(t)
}

func TestWellnessService_TeamSummary(t *testing.T) {
	mockTransport := new(MockTransport)
	client := newTestClient(mockTransport)

	response := `{
		"summary": {
			"teamId": "team-1",
			"day": "2026-09-01",
			"responses": 16,
			"rosterSize": 18,
			"averageSleep": 3.8,
			"averageFatigue": 3.1,
			"averageSoreness": 2.9,
			"averageStress": 3.4,
			"averageMood": 4.0
		}
	}`

	mockTransport.On("Do", mock.Anything, "GET", "/wellness/summary?day=2026-09-01&teamId=team-1", nil, mock.Anything).
		Return(response, nil)

	summary, err := client.Wellness.TeamSummary(context.Background(), "team-1", NewDate(2026, time.September, 1))

	assert.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 16, summary.Responses)
	assert.InDelta(t, 3.8, summary.AverageSleep, 0.001)

	mockTransport.AssertExpectations(t)
}
