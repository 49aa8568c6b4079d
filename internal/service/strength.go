package service

import (
	"fmt"
	"math"
	"sort"

	"swimtrack/training-tracker/internal/domain"
)

// ResolvedParams is the per-cycle prescription of an exercise after
// normalization: absent or non-positive values become nil ("unspecified",
// rendered as a dash), never 0.
type ResolvedParams struct {
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
	Percent1RM      *float64 `json:"percent1rm"`
	RestSetSec      *int     `json:"restSetSec"`
	RestExerciseSec *int     `json:"restExerciseSec"`
}

// ResolveCycleParams picks the exercise parameter group for the selected
// cycle and normalizes it.
func ResolveCycleParams(exercise *domain.Exercise, cycle domain.Cycle) ResolvedParams {
	p := exercise.ParamsFor(cycle)
	return ResolvedParams{
		Sets:            positiveInt(p.Sets),
		Reps:            positiveInt(p.Reps),
		Percent1RM:      positiveFloat(p.Percent1RM),
		RestSetSec:      positiveInt(p.RestSetSec),
		RestExerciseSec: positiveInt(p.RestExerciseSec),
	}
}

func positiveInt(v *int) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	return v
}

func positiveFloat(v *float64) *float64 {
	if v == nil || *v <= 0 || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// OrderItems sorts items ascending by their persisted position index, with
// the original slot as tiebreak. When no item carries a position at all the
// input order is returned untouched: ordering data that never existed must
// not cause a reorder.
func OrderItems[T any](items []T, position func(T) *int) []T {
	indexed := 0
	for _, item := range items {
		if position(item) != nil {
			indexed++
		}
	}
	if indexed < len(items) || len(items) == 0 {
		return items
	}

	ordered := make([]T, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool {
		return *position(ordered[i]) < *position(ordered[j])
	})
	return ordered
}

// OrderStrengthItems is OrderItems specialized for strength session items.
func OrderStrengthItems(items []domain.StrengthItem) []domain.StrengthItem {
	return OrderItems(items, func(item domain.StrengthItem) *int { return item.Position })
}

// OrderSwimItems is OrderItems specialized for swim session items.
func OrderSwimItems(items []domain.SwimItem) []domain.SwimItem {
	return OrderItems(items, func(item domain.SwimItem) *int { return item.Position })
}

// EstimateOneRm estimates a one-rep max from a performed set, Epley style:
// a single rep is the weight itself, otherwise weight x (1 + reps/30),
// rounded. Nil when weight or reps is non-positive or non-finite.
func EstimateOneRm(weight float64, reps int) *int {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 || reps <= 0 {
		return nil
	}
	var estimate float64
	if reps == 1 {
		estimate = weight
	} else {
		estimate = weight * (1 + float64(reps)/30)
	}
	r := int(math.Round(estimate))
	return &r
}

// ValidateStrengthItems rejects a whole item list when any item carries a
// negative sets, reps or rest value. The error names the offending item by
// its 1-based position.
func ValidateStrengthItems(items []domain.StrengthItem) error {
	for i, item := range items {
		if isNegative(item.Sets) || isNegative(item.Reps) || isNegative(item.RestSec) {
			return fmt.Errorf("invalid strength item #%d: sets, reps and rest must not be negative", i+1)
		}
	}
	return nil
}

func isNegative(v *int) bool {
	return v != nil && *v < 0
}

// HistoryPeriod selects the bucketing granularity for run history.
type HistoryPeriod string

const (
	PeriodDay   HistoryPeriod = "day"
	PeriodWeek  HistoryPeriod = "week"
	PeriodMonth HistoryPeriod = "month"
)

// HistoryBucket is one aggregated period of set logs.
type HistoryBucket struct {
	Period  string  `json:"period"`  // "2024-01-05", "2024-W02" or "2024-01"
	Volume  int     `json:"volume"`  // total reps
	Tonnage float64 `json:"tonnage"` // sum of reps x weight
}

// HistoryRange bounds the logs considered, inclusive ISO dates; empty bounds
// mean unbounded.
type HistoryRange struct {
	From string
	To   string
}

// AggregateHistory groups set logs into period buckets and accumulates
// volume and tonnage per bucket. Buckets come back sorted by period key,
// ascending by default, descending when desc is set. Weeks follow ISO-8601
// numbering (Thursday-anchored).
func AggregateHistory(logs []domain.SetLog, period HistoryPeriod, bounds HistoryRange, desc bool) []HistoryBucket {
	totals := make(map[string]*HistoryBucket)
	for _, log := range logs {
		day := log.LoggedAt.Format("2006-01-02")
		if bounds.From != "" && day < bounds.From {
			continue
		}
		if bounds.To != "" && day > bounds.To {
			continue
		}

		var key string
		switch period {
		case PeriodWeek:
			year, week := log.LoggedAt.ISOWeek()
			key = fmt.Sprintf("%04d-W%02d", year, week)
		case PeriodMonth:
			key = log.LoggedAt.Format("2006-01")
		default:
			key = day
		}

		bucket, ok := totals[key]
		if !ok {
			bucket = &HistoryBucket{Period: key}
			totals[key] = bucket
		}
		bucket.Volume += log.Reps
		bucket.Tonnage += float64(log.Reps) * log.Weight
	}

	buckets := make([]HistoryBucket, 0, len(totals))
	for _, bucket := range totals {
		buckets = append(buckets, *bucket)
	}
	sort.Slice(buckets, func(i, j int) bool {
		if desc {
			return buckets[i].Period > buckets[j].Period
		}
		return buckets[i].Period < buckets[j].Period
	})
	return buckets
}
