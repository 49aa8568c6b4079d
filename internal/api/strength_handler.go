package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/service"
)

// StrengthHandler serves strength session templates, runs and one-rep-max
// endpoints.
type StrengthHandler struct {
	strengthService service.StrengthService
	exerciseService service.ExerciseService
}

// NewStrengthHandler creates a new StrengthHandler.
func NewStrengthHandler(strengthService service.StrengthService, exerciseService service.ExerciseService) *StrengthHandler {
	return &StrengthHandler{strengthService: strengthService, exerciseService: exerciseService}
}

type StrengthItemRequest struct {
	ExerciseID int64        `json:"exerciseId" binding:"required"`
	Sets       *int         `json:"sets"`
	Reps       *int         `json:"reps"`
	Percent1RM *float64     `json:"percent1rm"`
	RestSec    *int         `json:"restSec"`
	Cycle      domain.Cycle `json:"cycle"`
	Notes      string       `json:"notes"`
	Position   *int         `json:"position"`
}

type StrengthSessionRequest struct {
	Title       string                `json:"title" binding:"required"`
	Description string                `json:"description"`
	Cycle       domain.Cycle          `json:"cycle" binding:"required"`
	Items       []StrengthItemRequest `json:"items"`
}

func (r *StrengthSessionRequest) toDomain(id int64) *domain.StrengthSession {
	session := &domain.StrengthSession{
		ID:          id,
		Title:       r.Title,
		Description: r.Description,
		Cycle:       r.Cycle,
	}
	for _, item := range r.Items {
		cycle := item.Cycle
		if cycle == "" {
			cycle = r.Cycle
		}
		session.Items = append(session.Items, domain.StrengthItem{
			ExerciseID: item.ExerciseID,
			Sets:       item.Sets,
			Reps:       item.Reps,
			Percent1RM: item.Percent1RM,
			RestSec:    item.RestSec,
			Cycle:      cycle,
			Notes:      item.Notes,
			Position:   item.Position,
		})
	}
	return session
}

func (h *StrengthHandler) CreateSession(c *gin.Context) {
	var req StrengthSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	id, err := h.strengthService.CreateSession(c.Request.Context(), req.toDomain(0))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *StrengthHandler) GetSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := h.strengthService.GetSession(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *StrengthHandler) ListSessions(c *gin.Context) {
	sessions, err := h.strengthService.ListSessions(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *StrengthHandler) UpdateSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req StrengthSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.strengthService.UpdateSession(c.Request.Context(), req.toDomain(id)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StrengthHandler) DeleteSession(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.strengthService.DeleteSession(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ResolveParams returns the effective per-cycle prescription of one exercise.
func (h *StrengthHandler) ResolveParams(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cycle := domain.Cycle(c.Query("cycle"))
	if !cycle.Valid() {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("unknown cycle %q", cycle))
		return
	}
	exercise, err := h.exerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.ResolveCycleParams(exercise, cycle))
}

type StartRunRequest struct {
	SessionID    int64  `json:"sessionId" binding:"required"`
	AssignmentID *int64 `json:"assignmentId"`
}

func (h *StrengthHandler) StartRun(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req StartRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	run, err := h.strengthService.StartRun(c.Request.Context(), userID, req.SessionID, req.AssignmentID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, run)
}

func (h *StrengthHandler) ListRuns(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	runs, err := h.strengthService.ListRuns(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, runs)
}

type SetLogRequest struct {
	ExerciseID int64   `json:"exerciseId" binding:"required"`
	SetIndex   int     `json:"setIndex"`
	Reps       int     `json:"reps" binding:"required"`
	Weight     float64 `json:"weight"`
	RestSec    *int    `json:"restSec"`
	Notes      string  `json:"notes"`
}

func (r *SetLogRequest) toDomain() domain.SetLog {
	return domain.SetLog{
		ExerciseID: r.ExerciseID,
		SetIndex:   r.SetIndex,
		Reps:       r.Reps,
		Weight:     r.Weight,
		RestSec:    r.RestSec,
		Notes:      r.Notes,
	}
}

func (h *StrengthHandler) LogSet(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SetLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	log := req.toDomain()
	id, err := h.strengthService.LogSet(c.Request.Context(), runID, &log)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

type ProgressRequest struct {
	Progress int `json:"progress"`
}

func (h *StrengthHandler) UpdateProgress(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.strengthService.UpdateProgress(c.Request.Context(), runID, req.Progress); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type SaveRunRequest struct {
	Logs []SetLogRequest `json:"logs"`
}

func (h *StrengthHandler) SaveRun(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SaveRunRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	logs := make([]domain.SetLog, 0, len(req.Logs))
	for _, l := range req.Logs {
		logs = append(logs, l.toDomain())
	}
	if err := h.strengthService.SaveRun(c.Request.Context(), runID, logs); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StrengthHandler) AbandonRun(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.strengthService.AbandonRun(c.Request.Context(), runID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StrengthHandler) DeleteRun(c *gin.Context) {
	runID, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.strengthService.DeleteRun(c.Request.Context(), runID); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// History aggregates the athlete's set logs by day, week or month.
func (h *StrengthHandler) History(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	period := service.HistoryPeriod(c.DefaultQuery("period", string(service.PeriodDay)))
	switch period {
	case service.PeriodDay, service.PeriodWeek, service.PeriodMonth:
	default:
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("unknown period %q", period))
		return
	}
	bounds := service.HistoryRange{From: c.Query("from"), To: c.Query("to")}
	desc := c.Query("order") == "desc"

	buckets, err := h.strengthService.RunHistory(c.Request.Context(), userID, period, bounds, desc)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, buckets)
}

func (h *StrengthHandler) OneRm(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	records, err := h.strengthService.OneRmForAthlete(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
