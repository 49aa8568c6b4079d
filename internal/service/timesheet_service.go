package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository/selector"
)

// MonthlySummary totals a coach's shifts for one month.
type MonthlySummary struct {
	Month        string `json:"month"` // "2024-03"
	Shifts       int    `json:"shifts"`
	TotalMinutes int    `json:"totalMinutes"`
}

// TimesheetService defines operations on coach shifts and venues.
type TimesheetService interface {
	CreateShift(ctx context.Context, shift *domain.TimesheetShift) (int64, error)
	ListShifts(ctx context.Context, coachID int64) ([]domain.TimesheetShift, error)
	UpdateShift(ctx context.Context, shift *domain.TimesheetShift) error
	DeleteShift(ctx context.Context, id int64) error
	MonthlySummaries(ctx context.Context, coachID int64) ([]MonthlySummary, error)

	CreateLocation(ctx context.Context, location *domain.TimesheetLocation) (int64, error)
	ListLocations(ctx context.Context) ([]domain.TimesheetLocation, error)
}

type timesheetService struct {
	sel    *selector.Selector
	errLog *ErrorLog
}

// NewTimesheetService creates a new instance of TimesheetService.
func NewTimesheetService(sel *selector.Selector, errLog *ErrorLog) TimesheetService {
	return &timesheetService{sel: sel, errLog: errLog}
}

func validateShift(shift *domain.TimesheetShift) error {
	if shift.CoachID == 0 {
		return errors.New("shift needs a coach")
	}
	if _, err := time.Parse("2006-01-02", shift.Date); err != nil {
		return fmt.Errorf("invalid shift date %q", shift.Date)
	}
	if shift.StartMin < 0 || shift.EndMin > 24*60 {
		return errors.New("shift times must fall within the day")
	}
	if shift.EndMin <= shift.StartMin {
		return errors.New("shift must end after it starts")
	}
	return nil
}

func (s *timesheetService) CreateShift(ctx context.Context, shift *domain.TimesheetShift) (int64, error) {
	if err := validateShift(shift); err != nil {
		return 0, err
	}
	now := time.Now()
	shift.CreatedAt = now
	shift.UpdatedAt = now
	id, err := s.sel.Provider().Timesheet().CreateShift(ctx, shift)
	if err != nil {
		return 0, s.errLog.Wrap("shift create", err)
	}
	return id, nil
}

func (s *timesheetService) ListShifts(ctx context.Context, coachID int64) ([]domain.TimesheetShift, error) {
	shifts, err := s.sel.Provider().Timesheet().ListShifts(ctx, coachID)
	if err != nil {
		return nil, s.errLog.Wrap("shift list", err)
	}
	return shifts, nil
}

func (s *timesheetService) UpdateShift(ctx context.Context, shift *domain.TimesheetShift) error {
	if err := validateShift(shift); err != nil {
		return err
	}
	shift.UpdatedAt = time.Now()
	if err := s.sel.Provider().Timesheet().UpdateShift(ctx, shift); err != nil {
		return s.errLog.Wrap("shift update", err)
	}
	return nil
}

func (s *timesheetService) DeleteShift(ctx context.Context, id int64) error {
	if err := s.sel.Provider().Timesheet().DeleteShift(ctx, id); err != nil {
		return s.errLog.Wrap("shift delete", err)
	}
	return nil
}

// MonthlySummaries groups a coach's shifts by month, newest month first.
func (s *timesheetService) MonthlySummaries(ctx context.Context, coachID int64) ([]MonthlySummary, error) {
	shifts, err := s.ListShifts(ctx, coachID)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*MonthlySummary)
	var months []string
	for i := range shifts {
		shift := &shifts[i]
		if len(shift.Date) < 7 {
			continue
		}
		month := shift.Date[:7]
		summary, ok := totals[month]
		if !ok {
			summary = &MonthlySummary{Month: month}
			totals[month] = summary
			months = append(months, month)
		}
		summary.Shifts++
		summary.TotalMinutes += shift.DurationMinutes()
	}

	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	summaries := make([]MonthlySummary, 0, len(months))
	for _, month := range months {
		summaries = append(summaries, *totals[month])
	}
	return summaries, nil
}

func (s *timesheetService) CreateLocation(ctx context.Context, location *domain.TimesheetLocation) (int64, error) {
	if location.Name == "" {
		return 0, errors.New("location name is required")
	}
	location.CreatedAt = time.Now()
	id, err := s.sel.Provider().Timesheet().CreateLocation(ctx, location)
	if err != nil {
		return 0, s.errLog.Wrap("location create", err)
	}
	return id, nil
}

func (s *timesheetService) ListLocations(ctx context.Context) ([]domain.TimesheetLocation, error) {
	locations, err := s.sel.Provider().Timesheet().ListLocations(ctx)
	if err != nil {
		return nil, s.errLog.Wrap("location list", err)
	}
	return locations, nil
}
