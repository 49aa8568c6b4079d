package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/service"
)

// AssignmentHandler serves session assignment endpoints.
type AssignmentHandler struct {
	assignmentService service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

type AssignRequest struct {
	SessionID int64              `json:"sessionId" binding:"required"`
	Kind      domain.SessionKind `json:"kind" binding:"required,oneof=swim strength"`
	Date      string             `json:"date" binding:"required"`
	Slot      domain.TimeSlot    `json:"slot" binding:"required,oneof=morning evening"`
	UserID    *int64             `json:"userId"`
	GroupIDs  []int64            `json:"groupIds"`
}

// Assign schedules a session for one user or fans it out to several groups.
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	template := &domain.Assignment{
		SessionID: req.SessionID,
		Kind:      req.Kind,
		Date:      req.Date,
		Slot:      req.Slot,
		UserID:    req.UserID,
	}

	if len(req.GroupIDs) > 0 {
		result, err := h.assignmentService.AssignToGroups(c.Request.Context(), template, req.GroupIDs)
		if err != nil && result == nil {
			abortWithServiceError(c, err)
			return
		}
		status := http.StatusCreated
		if result.Failed > 0 {
			// partial success still reports what was written
			status = http.StatusMultiStatus
		}
		c.JSON(status, result)
		return
	}

	id, err := h.assignmentService.AssignToUser(c.Request.Context(), template)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// ListMine returns the calling user's assignments, direct and via groups.
func (h *AssignmentHandler) ListMine(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	assignments, err := h.assignmentService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

type AssignmentStatusRequest struct {
	Status domain.AssignmentStatus `json:"status" binding:"required"`
}

func (h *AssignmentHandler) SetStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req AssignmentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.assignmentService.SetStatus(c.Request.Context(), id, req.Status); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.assignmentService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
