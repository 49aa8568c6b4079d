package mongo

import (
	"strings"
	"time"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/scale"
)

// Row schemas, one per backend collection. Mapping rules shared by every
// pair below:
//   - toDomain returns nil (never an error) when a required field is missing
//     or blank after trimming; list reads filter nils out.
//   - a missing numeric maps to a nil pointer, never 0: zero is a valid
//     recorded value.
//   - nested arrays surface as empty slices, never nil, so consumers can
//     iterate unconditionally.

// --- training sessions ---

// sessionRow persists ratings on the backend's 1-10 scale; the mapper
// converts to and from the domain's 1-5 scale.
type sessionRow struct {
	ID          int64     `bson:"_id"`
	AthleteID   *int64    `bson:"athlete_id,omitempty"`
	AthleteName string    `bson:"athlete_name"`
	Date        string    `bson:"date"`
	Slot        string    `bson:"slot"`
	Effort      *int      `bson:"effort,omitempty"`
	Feeling     *int      `bson:"feeling,omitempty"`
	Performance *int      `bson:"performance,omitempty"`
	Engagement  *int      `bson:"engagement,omitempty"`
	Fatigue     *int      `bson:"fatigue,omitempty"`
	Distance    *int      `bson:"distance,omitempty"`
	Duration    *int      `bson:"duration,omitempty"`
	Comments    string    `bson:"comments,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func sessionToDomain(row sessionRow) *domain.TrainingSession {
	name := strings.TrimSpace(row.AthleteName)
	if strings.TrimSpace(row.Date) == "" {
		return nil
	}
	if name == "" && row.AthleteID == nil {
		return nil
	}
	return &domain.TrainingSession{
		ID:          row.ID,
		AthleteID:   row.AthleteID,
		AthleteName: name,
		Date:        row.Date,
		Slot:        domain.TimeSlot(row.Slot),
		Effort:      scale.TenToFive(row.Effort),
		Feeling:     scale.TenToFive(row.Feeling),
		Performance: scale.TenToFive(row.Performance),
		Engagement:  scale.TenToFive(row.Engagement),
		Fatigue:     scale.TenToFive(row.Fatigue),
		Distance:    row.Distance,
		Duration:    row.Duration,
		Comments:    row.Comments,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func sessionToRow(s *domain.TrainingSession) sessionRow {
	return sessionRow{
		ID:          s.ID,
		AthleteID:   s.AthleteID,
		AthleteName: s.AthleteName,
		Date:        s.Date,
		Slot:        string(s.Slot),
		Effort:      scale.FiveToTen(s.Effort),
		Feeling:     scale.FiveToTen(s.Feeling),
		Performance: scale.FiveToTen(s.Performance),
		Engagement:  scale.FiveToTen(s.Engagement),
		Fatigue:     scale.FiveToTen(s.Fatigue),
		Distance:    s.Distance,
		Duration:    s.Duration,
		Comments:    s.Comments,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// --- exercises ---

type cycleParamsRow struct {
	Sets            *int     `bson:"sets,omitempty"`
	Reps            *int     `bson:"reps,omitempty"`
	Percent1RM      *float64 `bson:"percent_1rm,omitempty"`
	RestSetSec      *int     `bson:"rest_set_sec,omitempty"`
	RestExerciseSec *int     `bson:"rest_exercise_sec,omitempty"`
}

type exerciseRow struct {
	ID           int64          `bson:"_id"`
	Name         string         `bson:"name"`
	Description  string         `bson:"description,omitempty"`
	Illustration string         `bson:"illustration,omitempty"`
	Kind         string         `bson:"kind"`
	Endurance    cycleParamsRow `bson:"endurance"`
	Hypertrophie cycleParamsRow `bson:"hypertrophie"`
	Force        cycleParamsRow `bson:"force"`
	CreatedAt    time.Time      `bson:"created_at"`
	UpdatedAt    time.Time      `bson:"updated_at"`
}

func cycleParamsToDomain(row cycleParamsRow) domain.CycleParams {
	return domain.CycleParams{
		Sets:            row.Sets,
		Reps:            row.Reps,
		Percent1RM:      row.Percent1RM,
		RestSetSec:      row.RestSetSec,
		RestExerciseSec: row.RestExerciseSec,
	}
}

func cycleParamsToRow(p domain.CycleParams) cycleParamsRow {
	return cycleParamsRow{
		Sets:            p.Sets,
		Reps:            p.Reps,
		Percent1RM:      p.Percent1RM,
		RestSetSec:      p.RestSetSec,
		RestExerciseSec: p.RestExerciseSec,
	}
}

// exerciseToDomain keeps the three per-cycle groups symmetric: all three are
// always present on the entity, fields stay nil where the row had nothing.
func exerciseToDomain(row exerciseRow) *domain.Exercise {
	if strings.TrimSpace(row.Name) == "" {
		return nil
	}
	return &domain.Exercise{
		ID:           row.ID,
		Name:         strings.TrimSpace(row.Name),
		Description:  row.Description,
		Illustration: row.Illustration,
		Kind:         domain.ExerciseKind(row.Kind),
		Endurance:    cycleParamsToDomain(row.Endurance),
		Hypertrophie: cycleParamsToDomain(row.Hypertrophie),
		Force:        cycleParamsToDomain(row.Force),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func exerciseToRow(e *domain.Exercise) exerciseRow {
	return exerciseRow{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Illustration: e.Illustration,
		Kind:         string(e.Kind),
		Endurance:    cycleParamsToRow(e.Endurance),
		Hypertrophie: cycleParamsToRow(e.Hypertrophie),
		Force:        cycleParamsToRow(e.Force),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// --- strength sessions and items ---

type strengthSessionRow struct {
	ID          int64     `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	Cycle       string    `bson:"cycle"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type strengthItemRow struct {
	ID         int64    `bson:"_id"`
	SessionID  int64    `bson:"session_id"`
	ExerciseID int64    `bson:"exercise_id"`
	Sets       *int     `bson:"sets,omitempty"`
	Reps       *int     `bson:"reps,omitempty"`
	Percent1RM *float64 `bson:"percent_1rm,omitempty"`
	RestSec    *int     `bson:"rest_sec,omitempty"`
	Cycle      string   `bson:"cycle"`
	Notes      string   `bson:"notes,omitempty"`
	Position   *int     `bson:"position,omitempty"`
}

func strengthSessionToDomain(row strengthSessionRow, items []strengthItemRow) *domain.StrengthSession {
	if strings.TrimSpace(row.Title) == "" {
		return nil
	}
	session := &domain.StrengthSession{
		ID:          row.ID,
		Title:       strings.TrimSpace(row.Title),
		Description: row.Description,
		Cycle:       domain.Cycle(row.Cycle),
		Items:       make([]domain.StrengthItem, 0, len(items)),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	for _, item := range items {
		session.Items = append(session.Items, strengthItemToDomain(item))
	}
	return session
}

func strengthSessionToRow(s *domain.StrengthSession) strengthSessionRow {
	return strengthSessionRow{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Cycle:       string(s.Cycle),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func strengthItemToDomain(row strengthItemRow) domain.StrengthItem {
	return domain.StrengthItem{
		ID:         row.ID,
		SessionID:  row.SessionID,
		ExerciseID: row.ExerciseID,
		Sets:       row.Sets,
		Reps:       row.Reps,
		Percent1RM: row.Percent1RM,
		RestSec:    row.RestSec,
		Cycle:      domain.Cycle(row.Cycle),
		Notes:      row.Notes,
		Position:   row.Position,
	}
}

func strengthItemToRow(item domain.StrengthItem) strengthItemRow {
	return strengthItemRow{
		ID:         item.ID,
		SessionID:  item.SessionID,
		ExerciseID: item.ExerciseID,
		Sets:       item.Sets,
		Reps:       item.Reps,
		Percent1RM: item.Percent1RM,
		RestSec:    item.RestSec,
		Cycle:      string(item.Cycle),
		Notes:      item.Notes,
		Position:   item.Position,
	}
}

// --- runs and set logs ---

type runRow struct {
	ID           int64      `bson:"_id"`
	SessionID    int64      `bson:"session_id"`
	AssignmentID *int64     `bson:"assignment_id,omitempty"`
	AthleteID    int64      `bson:"athlete_id"`
	Status       string     `bson:"status"`
	Progress     int        `bson:"progress"`
	StartedAt    time.Time  `bson:"started_at"`
	CompletedAt  *time.Time `bson:"completed_at,omitempty"`
	UpdatedAt    time.Time  `bson:"updated_at"`
}

type setLogRow struct {
	ID         int64     `bson:"_id"`
	RunID      int64     `bson:"run_id"`
	ExerciseID int64     `bson:"exercise_id"`
	SetIndex   int       `bson:"set_index"`
	Reps       int       `bson:"reps"`
	Weight     float64   `bson:"weight"`
	RestSec    *int      `bson:"rest_sec,omitempty"`
	Notes      string    `bson:"notes,omitempty"`
	LoggedAt   time.Time `bson:"logged_at"`
}

func runToDomain(row runRow, logs []setLogRow) *domain.StrengthRun {
	if row.AthleteID == 0 {
		return nil
	}
	run := &domain.StrengthRun{
		ID:           row.ID,
		SessionID:    row.SessionID,
		AssignmentID: row.AssignmentID,
		AthleteID:    row.AthleteID,
		Status:       domain.RunStatus(row.Status),
		Progress:     row.Progress,
		Logs:         make([]domain.SetLog, 0, len(logs)),
		StartedAt:    row.StartedAt,
		CompletedAt:  row.CompletedAt,
		UpdatedAt:    row.UpdatedAt,
	}
	for _, log := range logs {
		run.Logs = append(run.Logs, setLogToDomain(log))
	}
	return run
}

func runToRow(run *domain.StrengthRun) runRow {
	return runRow{
		ID:           run.ID,
		SessionID:    run.SessionID,
		AssignmentID: run.AssignmentID,
		AthleteID:    run.AthleteID,
		Status:       string(run.Status),
		Progress:     run.Progress,
		StartedAt:    run.StartedAt,
		CompletedAt:  run.CompletedAt,
		UpdatedAt:    run.UpdatedAt,
	}
}

func setLogToDomain(row setLogRow) domain.SetLog {
	return domain.SetLog{
		ID:         row.ID,
		RunID:      row.RunID,
		ExerciseID: row.ExerciseID,
		SetIndex:   row.SetIndex,
		Reps:       row.Reps,
		Weight:     row.Weight,
		RestSec:    row.RestSec,
		Notes:      row.Notes,
		LoggedAt:   row.LoggedAt,
	}
}

func setLogToRow(log domain.SetLog) setLogRow {
	return setLogRow{
		ID:         log.ID,
		RunID:      log.RunID,
		ExerciseID: log.ExerciseID,
		SetIndex:   log.SetIndex,
		Reps:       log.Reps,
		Weight:     log.Weight,
		RestSec:    log.RestSec,
		Notes:      log.Notes,
		LoggedAt:   log.LoggedAt,
	}
}

// --- swim catalog ---

type swimSessionRow struct {
	ID          int64     `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description,omitempty"`
	CreatedBy   string    `bson:"created_by,omitempty"`
	Folder      string    `bson:"folder,omitempty"`
	Archived    bool      `bson:"archived"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type swimItemRow struct {
	ID             int64  `bson:"_id"`
	SessionID      int64  `bson:"session_id"`
	Position       *int   `bson:"position,omitempty"`
	Block          string `bson:"block,omitempty"`
	Exercise       string `bson:"exercise,omitempty"`
	Stroke         string `bson:"stroke,omitempty"`
	Intensity      string `bson:"intensity,omitempty"`
	Equipment      string `bson:"equipment,omitempty"`
	RestType       string `bson:"rest_type,omitempty"`
	Label          string `bson:"label,omitempty"`
	Distance       *int   `bson:"distance,omitempty"`
	Duration       *int   `bson:"duration,omitempty"`
	IntensityLabel string `bson:"intensity_label,omitempty"`
	Notes          string `bson:"notes,omitempty"`
}

func swimSessionToDomain(row swimSessionRow, items []swimItemRow) *domain.SwimSession {
	if strings.TrimSpace(row.Name) == "" {
		return nil
	}
	session := &domain.SwimSession{
		ID:          row.ID,
		Name:        strings.TrimSpace(row.Name),
		Description: row.Description,
		CreatedBy:   row.CreatedBy,
		Folder:      row.Folder,
		Archived:    row.Archived,
		Items:       make([]domain.SwimItem, 0, len(items)),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
	for _, item := range items {
		session.Items = append(session.Items, swimItemToDomain(item))
	}
	return session
}

func swimSessionToRow(s *domain.SwimSession) swimSessionRow {
	return swimSessionRow{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		CreatedBy:   s.CreatedBy,
		Folder:      s.Folder,
		Archived:    s.Archived,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func swimItemToDomain(row swimItemRow) domain.SwimItem {
	return domain.SwimItem{
		ID:             row.ID,
		SessionID:      row.SessionID,
		Position:       row.Position,
		Block:          row.Block,
		Exercise:       row.Exercise,
		Stroke:         row.Stroke,
		Intensity:      row.Intensity,
		Equipment:      row.Equipment,
		RestType:       row.RestType,
		Label:          row.Label,
		Distance:       row.Distance,
		Duration:       row.Duration,
		IntensityLabel: row.IntensityLabel,
		Notes:          row.Notes,
	}
}

func swimItemToRow(item domain.SwimItem) swimItemRow {
	return swimItemRow{
		ID:             item.ID,
		SessionID:      item.SessionID,
		Position:       item.Position,
		Block:          item.Block,
		Exercise:       item.Exercise,
		Stroke:         item.Stroke,
		Intensity:      item.Intensity,
		Equipment:      item.Equipment,
		RestType:       item.RestType,
		Label:          item.Label,
		Distance:       item.Distance,
		Duration:       item.Duration,
		IntensityLabel: item.IntensityLabel,
		Notes:          item.Notes,
	}
}

// --- assignments ---

type assignmentRow struct {
	ID        int64     `bson:"_id"`
	SessionID int64     `bson:"session_id"`
	Kind      string    `bson:"kind"`
	UserID    *int64    `bson:"user_id,omitempty"`
	GroupID   *int64    `bson:"group_id,omitempty"`
	Date      string    `bson:"date"`
	Slot      string    `bson:"slot"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func assignmentToDomain(row assignmentRow) *domain.Assignment {
	if row.SessionID == 0 {
		return nil
	}
	if row.UserID == nil && row.GroupID == nil {
		return nil
	}
	return &domain.Assignment{
		ID:        row.ID,
		SessionID: row.SessionID,
		Kind:      domain.SessionKind(row.Kind),
		UserID:    row.UserID,
		GroupID:   row.GroupID,
		Date:      row.Date,
		Slot:      domain.TimeSlot(row.Slot),
		Status:    domain.AssignmentStatus(row.Status),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func assignmentToRow(a *domain.Assignment) assignmentRow {
	return assignmentRow{
		ID:        a.ID,
		SessionID: a.SessionID,
		Kind:      string(a.Kind),
		UserID:    a.UserID,
		GroupID:   a.GroupID,
		Date:      a.Date,
		Slot:      string(a.Slot),
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// --- notifications ---

type notificationRow struct {
	ID        int64     `bson:"_id"`
	Title     string    `bson:"title"`
	Body      string    `bson:"body,omitempty"`
	Type      string    `bson:"type"`
	Read      bool      `bson:"read"`
	CreatedAt time.Time `bson:"created_at"`
}

type notificationTargetRow struct {
	ID             int64  `bson:"_id"`
	NotificationID int64  `bson:"notification_id"`
	UserID         *int64 `bson:"user_id,omitempty"`
	GroupID        *int64 `bson:"group_id,omitempty"`
}

func notificationToDomain(row notificationRow, targets []notificationTargetRow) *domain.Notification {
	if strings.TrimSpace(row.Title) == "" {
		return nil
	}
	n := &domain.Notification{
		ID:        row.ID,
		Title:     row.Title,
		Body:      row.Body,
		Type:      domain.NotificationType(row.Type),
		Read:      row.Read,
		Targets:   make([]domain.NotificationTarget, 0, len(targets)),
		CreatedAt: row.CreatedAt,
	}
	for _, t := range targets {
		n.Targets = append(n.Targets, domain.NotificationTarget{UserID: t.UserID, GroupID: t.GroupID})
	}
	return n
}

func notificationToRow(n *domain.Notification) notificationRow {
	return notificationRow{
		ID:        n.ID,
		Title:     n.Title,
		Body:      n.Body,
		Type:      string(n.Type),
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

// --- records ---

type oneRmRow struct {
	ID         int64     `bson:"_id"`
	AthleteID  int64     `bson:"athlete_id"`
	ExerciseID int64     `bson:"exercise_id"`
	Max        float64   `bson:"max"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func oneRmToDomain(row oneRmRow) *domain.OneRmRecord {
	if row.AthleteID == 0 || row.ExerciseID == 0 {
		return nil
	}
	return &domain.OneRmRecord{
		ID:         row.ID,
		AthleteID:  row.AthleteID,
		ExerciseID: row.ExerciseID,
		Max:        row.Max,
		RecordedAt: row.RecordedAt,
	}
}

func oneRmToRow(r *domain.OneRmRecord) oneRmRow {
	return oneRmRow{
		ID:         r.ID,
		AthleteID:  r.AthleteID,
		ExerciseID: r.ExerciseID,
		Max:        r.Max,
		RecordedAt: r.RecordedAt,
	}
}

type swimRecordRow struct {
	ID         int64     `bson:"_id"`
	AthleteID  int64     `bson:"athlete_id"`
	Event      string    `bson:"event"`
	Pool       string    `bson:"pool"`
	Seconds    float64   `bson:"seconds"`
	RecordedAt time.Time `bson:"recorded_at"`
}

func swimRecordToDomain(row swimRecordRow) *domain.SwimRecord {
	if row.AthleteID == 0 || strings.TrimSpace(row.Event) == "" {
		return nil
	}
	return &domain.SwimRecord{
		ID:         row.ID,
		AthleteID:  row.AthleteID,
		Event:      row.Event,
		Pool:       row.Pool,
		Seconds:    row.Seconds,
		RecordedAt: row.RecordedAt,
	}
}

func swimRecordToRow(r *domain.SwimRecord) swimRecordRow {
	return swimRecordRow{
		ID:         r.ID,
		AthleteID:  r.AthleteID,
		Event:      r.Event,
		Pool:       r.Pool,
		Seconds:    r.Seconds,
		RecordedAt: r.RecordedAt,
	}
}

type clubRecordRow struct {
	ID          int64     `bson:"_id"`
	Event       string    `bson:"event"`
	Pool        string    `bson:"pool"`
	Category    string    `bson:"category,omitempty"`
	Gender      string    `bson:"gender,omitempty"`
	AthleteID   int64     `bson:"athlete_id"`
	AthleteName string    `bson:"athlete_name,omitempty"`
	Seconds     float64   `bson:"seconds"`
	RecordedAt  time.Time `bson:"recorded_at"`
}

func clubRecordToDomain(row clubRecordRow) *domain.ClubRecord {
	if strings.TrimSpace(row.Event) == "" {
		return nil
	}
	return &domain.ClubRecord{
		ID:          row.ID,
		Event:       row.Event,
		Pool:        row.Pool,
		Category:    row.Category,
		Gender:      row.Gender,
		AthleteID:   row.AthleteID,
		AthleteName: row.AthleteName,
		Seconds:     row.Seconds,
		RecordedAt:  row.RecordedAt,
	}
}

func clubRecordToRow(r *domain.ClubRecord) clubRecordRow {
	return clubRecordRow{
		ID:          r.ID,
		Event:       r.Event,
		Pool:        r.Pool,
		Category:    r.Category,
		Gender:      r.Gender,
		AthleteID:   r.AthleteID,
		AthleteName: r.AthleteName,
		Seconds:     r.Seconds,
		RecordedAt:  r.RecordedAt,
	}
}

// --- users, groups, timesheet ---

type userRow struct {
	ID           int64     `bson:"_id"`
	Name         string    `bson:"name"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Role         string    `bson:"role"`
	Birthday     string    `bson:"birthday,omitempty"`
	FederationID string    `bson:"federation_id,omitempty"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func userToDomain(row userRow, groupIDs []int64) *domain.User {
	if strings.TrimSpace(row.Email) == "" {
		return nil
	}
	if groupIDs == nil {
		groupIDs = []int64{}
	}
	return &domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Role:         domain.Role(row.Role),
		GroupIDs:     groupIDs,
		Birthday:     row.Birthday,
		FederationID: row.FederationID,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func userToRow(u *domain.User) userRow {
	return userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Birthday:     u.Birthday,
		FederationID: u.FederationID,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

type groupRow struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}

type groupMemberRow struct {
	ID      int64 `bson:"_id"`
	GroupID int64 `bson:"group_id"`
	UserID  int64 `bson:"user_id"`
}

type shiftRow struct {
	ID         int64     `bson:"_id"`
	CoachID    int64     `bson:"coach_id"`
	LocationID int64     `bson:"location_id"`
	Date       string    `bson:"date"`
	StartMin   int       `bson:"start_min"`
	EndMin     int       `bson:"end_min"`
	Notes      string    `bson:"notes,omitempty"`
	CreatedAt  time.Time `bson:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func shiftToDomain(row shiftRow) *domain.TimesheetShift {
	if row.CoachID == 0 || strings.TrimSpace(row.Date) == "" {
		return nil
	}
	return &domain.TimesheetShift{
		ID:         row.ID,
		CoachID:    row.CoachID,
		LocationID: row.LocationID,
		Date:       row.Date,
		StartMin:   row.StartMin,
		EndMin:     row.EndMin,
		Notes:      row.Notes,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func shiftToRow(s *domain.TimesheetShift) shiftRow {
	return shiftRow{
		ID:         s.ID,
		CoachID:    s.CoachID,
		LocationID: s.LocationID,
		Date:       s.Date,
		StartMin:   s.StartMin,
		EndMin:     s.EndMin,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

type locationRow struct {
	ID        int64     `bson:"_id"`
	Name      string    `bson:"name"`
	CreatedAt time.Time `bson:"created_at"`
}
