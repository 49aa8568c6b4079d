package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swimtrack/training-tracker/internal/domain"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestEstimateOneRm(t *testing.T) {
	require.NotNil(t, EstimateOneRm(100, 1))
	assert.Equal(t, 100, *EstimateOneRm(100, 1))

	// 100 x (1 + 10/30) = 133.33 -> 133
	require.NotNil(t, EstimateOneRm(100, 10))
	assert.Equal(t, 133, *EstimateOneRm(100, 10))

	// 80 x (1 + 5/30) = 93.33 -> 93
	require.NotNil(t, EstimateOneRm(80, 5))
	assert.Equal(t, 93, *EstimateOneRm(80, 5))

	assert.Nil(t, EstimateOneRm(0, 5))
	assert.Nil(t, EstimateOneRm(-10, 5))
	assert.Nil(t, EstimateOneRm(100, 0))
	assert.Nil(t, EstimateOneRm(100, -1))
}

func TestOrderStrengthItems(t *testing.T) {
	items := []domain.StrengthItem{
		{ID: 1, Position: intPtr(2)},
		{ID: 2, Position: intPtr(0)},
		{ID: 3, Position: intPtr(1)},
	}
	ordered := OrderStrengthItems(items)
	assert.Equal(t, int64(2), ordered[0].ID)
	assert.Equal(t, int64(3), ordered[1].ID)
	assert.Equal(t, int64(1), ordered[2].ID)
}

func TestOrderStrengthItemsNoPositions(t *testing.T) {
	items := []domain.StrengthItem{{ID: 5}, {ID: 3}, {ID: 9}}
	ordered := OrderStrengthItems(items)
	assert.Equal(t, items, ordered)
}

func TestOrderStrengthItemsMixedPositions(t *testing.T) {
	// a single unindexed item disables sorting for the whole list
	items := []domain.StrengthItem{
		{ID: 1, Position: intPtr(2)},
		{ID: 2},
		{ID: 3, Position: intPtr(0)},
	}
	ordered := OrderStrengthItems(items)
	assert.Equal(t, items, ordered)
}

func TestOrderStrengthItemsStableOnTies(t *testing.T) {
	items := []domain.StrengthItem{
		{ID: 1, Position: intPtr(1)},
		{ID: 2, Position: intPtr(1)},
		{ID: 3, Position: intPtr(0)},
	}
	ordered := OrderStrengthItems(items)
	assert.Equal(t, int64(3), ordered[0].ID)
	assert.Equal(t, int64(1), ordered[1].ID)
	assert.Equal(t, int64(2), ordered[2].ID)
}

func TestValidateStrengthItems(t *testing.T) {
	valid := []domain.StrengthItem{
		{Sets: intPtr(3), Reps: intPtr(10)},
		{},
		{RestSec: intPtr(0)},
	}
	assert.NoError(t, ValidateStrengthItems(valid))

	invalid := []domain.StrengthItem{
		{Sets: intPtr(3)},
		{Reps: intPtr(8)},
		{Reps: intPtr(-1)},
	}
	err := ValidateStrengthItems(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "#3")
}

func TestResolveCycleParams(t *testing.T) {
	ex := &domain.Exercise{
		Endurance:    domain.CycleParams{Sets: intPtr(4), Reps: intPtr(15), Percent1RM: floatPtr(60)},
		Hypertrophie: domain.CycleParams{Sets: intPtr(4), Reps: intPtr(10), Percent1RM: floatPtr(0)},
		Force:        domain.CycleParams{Sets: intPtr(-2)},
	}

	endurance := ResolveCycleParams(ex, domain.CycleEndurance)
	require.NotNil(t, endurance.Sets)
	assert.Equal(t, 4, *endurance.Sets)
	assert.Equal(t, 60.0, *endurance.Percent1RM)

	hyper := ResolveCycleParams(ex, domain.CycleHypertrophie)
	assert.Nil(t, hyper.Percent1RM, "zero percent resolves to unspecified")

	force := ResolveCycleParams(ex, domain.CycleForce)
	assert.Nil(t, force.Sets, "negative sets resolve to unspecified")
	assert.Nil(t, force.Reps)
}

func TestAggregateHistoryByWeek(t *testing.T) {
	at := func(day string) time.Time {
		ts, err := time.Parse("2006-01-02", day)
		require.NoError(t, err)
		return ts
	}
	logs := []domain.SetLog{
		{Reps: 10, Weight: 50, LoggedAt: at("2024-01-01")}, // ISO week 2024-W01
		{Reps: 8, Weight: 60, LoggedAt: at("2024-01-03")},  // same week
		{Reps: 5, Weight: 100, LoggedAt: at("2024-01-08")}, // 2024-W02
	}

	buckets := AggregateHistory(logs, PeriodWeek, HistoryRange{}, false)
	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-W01", buckets[0].Period)
	assert.Equal(t, 18, buckets[0].Volume)
	assert.Equal(t, 980.0, buckets[0].Tonnage)
	assert.Equal(t, "2024-W02", buckets[1].Period)
	assert.Equal(t, 5, buckets[1].Volume)
	assert.Equal(t, 500.0, buckets[1].Tonnage)

	descending := AggregateHistory(logs, PeriodWeek, HistoryRange{}, true)
	assert.Equal(t, "2024-W02", descending[0].Period)
}

func TestAggregateHistoryIsoWeekBoundary(t *testing.T) {
	// 2023-12-31 is a Sunday and still belongs to ISO week 2023-W52
	ts, err := time.Parse("2006-01-02", "2023-12-31")
	require.NoError(t, err)
	buckets := AggregateHistory([]domain.SetLog{{Reps: 1, Weight: 10, LoggedAt: ts}}, PeriodWeek, HistoryRange{}, false)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2023-W52", buckets[0].Period)
}

func TestAggregateHistoryBounds(t *testing.T) {
	at := func(day string) time.Time {
		ts, _ := time.Parse("2006-01-02", day)
		return ts
	}
	logs := []domain.SetLog{
		{Reps: 10, Weight: 40, LoggedAt: at("2024-01-05")},
		{Reps: 10, Weight: 40, LoggedAt: at("2024-02-05")},
		{Reps: 10, Weight: 40, LoggedAt: at("2024-03-05")},
	}
	buckets := AggregateHistory(logs, PeriodMonth, HistoryRange{From: "2024-02-01", To: "2024-02-29"}, false)
	require.Len(t, buckets, 1)
	assert.Equal(t, "2024-02", buckets[0].Period)
	assert.Equal(t, 400.0, buckets[0].Tonnage)
}
