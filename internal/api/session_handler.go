package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/repository"
	"swimtrack/training-tracker/internal/service"
)

// SessionHandler serves the swim log endpoints.
type SessionHandler struct {
	sessionService service.SessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type SessionRequest struct {
	ID          int64           `json:"id"`
	AthleteID   *int64          `json:"athleteId"`
	AthleteName string          `json:"athleteName"`
	Date        string          `json:"date" binding:"required"`
	Slot        domain.TimeSlot `json:"slot" binding:"required,oneof=morning evening"`
	Effort      *int            `json:"effort" binding:"required"`
	Feeling     *int            `json:"feeling" binding:"required"`
	Performance *int            `json:"performance"`
	Engagement  *int            `json:"engagement"`
	Fatigue     *int            `json:"fatigue"`
	Distance    *int            `json:"distance"`
	Duration    *int            `json:"duration"`
	Comments    string          `json:"comments"`
}

func (r *SessionRequest) toDomain() *domain.TrainingSession {
	return &domain.TrainingSession{
		ID:          r.ID,
		AthleteID:   r.AthleteID,
		AthleteName: r.AthleteName,
		Date:        r.Date,
		Slot:        r.Slot,
		Effort:      r.Effort,
		Feeling:     r.Feeling,
		Performance: r.Performance,
		Engagement:  r.Engagement,
		Fatigue:     r.Fatigue,
		Distance:    r.Distance,
		Duration:    r.Duration,
		Comments:    r.Comments,
	}
}

// Sync creates or updates a swim log entry.
func (h *SessionHandler) Sync(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	id, err := h.sessionService.Sync(c.Request.Context(), req.toDomain())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// List returns swim log entries, optionally filtered by athlete and date range.
func (h *SessionHandler) List(c *gin.Context) {
	filter := repository.SessionFilter{
		AthleteName: c.Query("athlete"),
		DateFrom:    c.Query("from"),
		DateTo:      c.Query("to"),
	}
	if athleteID, ok := queryID(c, "athleteId"); ok {
		filter.AthleteID = &athleteID
	}

	sessions, err := h.sessionService.List(c.Request.Context(), filter)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *SessionHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := h.sessionService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.sessionService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
