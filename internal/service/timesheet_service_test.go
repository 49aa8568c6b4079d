package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
)

func TestShiftValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewTimesheetService(newLocalSelector(t), NewErrorLog())

	cases := []domain.TimesheetShift{
		{Date: "2024-03-01", StartMin: 540, EndMin: 660},                   // no coach
		{CoachID: 1, Date: "bad", StartMin: 540, EndMin: 660},              // bad date
		{CoachID: 1, Date: "2024-03-01", StartMin: 660, EndMin: 540},       // inverted
		{CoachID: 1, Date: "2024-03-01", StartMin: 540, EndMin: 540},       // empty
		{CoachID: 1, Date: "2024-03-01", StartMin: -10, EndMin: 60},        // before midnight
		{CoachID: 1, Date: "2024-03-01", StartMin: 540, EndMin: 24*60 + 1}, // past midnight
	}
	for _, shift := range cases {
		s := shift
		_, err := svc.CreateShift(ctx, &s)
		assert.Error(t, err)
	}
}

func TestMonthlySummaries(t *testing.T) {
	ctx := context.Background()
	svc := NewTimesheetService(newLocalSelector(t), NewErrorLog())

	shifts := []domain.TimesheetShift{
		{CoachID: 1, Date: "2024-03-04", StartMin: 17 * 60, EndMin: 19 * 60},
		{CoachID: 1, Date: "2024-03-06", StartMin: 17 * 60, EndMin: 18*60 + 30},
		{CoachID: 1, Date: "2024-04-02", StartMin: 9 * 60, EndMin: 12 * 60},
		{CoachID: 2, Date: "2024-03-04", StartMin: 10 * 60, EndMin: 11 * 60}, // other coach
	}
	for _, shift := range shifts {
		s := shift
		_, err := svc.CreateShift(ctx, &s)
		require.NoError(t, err)
	}

	summaries, err := svc.MonthlySummaries(ctx, 1)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, "2024-04", summaries[0].Month, "newest month first")
	assert.Equal(t, 1, summaries[0].Shifts)
	assert.Equal(t, 180, summaries[0].TotalMinutes)
	assert.Equal(t, "2024-03", summaries[1].Month)
	assert.Equal(t, 2, summaries[1].Shifts)
	assert.Equal(t, 120+90, summaries[1].TotalMinutes)
}

func TestLocations(t *testing.T) {
	ctx := context.Background()
	svc := NewTimesheetService(newLocalSelector(t), NewErrorLog())

	_, err := svc.CreateLocation(ctx, &domain.TimesheetLocation{})
	assert.Error(t, err)

	_, err = svc.CreateLocation(ctx, &domain.TimesheetLocation{Name: "Piscine olympique"})
	require.NoError(t, err)

	locations, err := svc.ListLocations(ctx)
	require.NoError(t, err)
	require.Len(t, locations, 1)
	assert.Equal(t, "Piscine olympique", locations[0].Name)
}
