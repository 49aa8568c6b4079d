package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/service"
)

// TimesheetHandler serves coach shift and venue endpoints.
type TimesheetHandler struct {
	timesheetService service.TimesheetService
}

// NewTimesheetHandler creates a new TimesheetHandler.
func NewTimesheetHandler(timesheetService service.TimesheetService) *TimesheetHandler {
	return &TimesheetHandler{timesheetService: timesheetService}
}

type ShiftRequest struct {
	LocationID int64  `json:"locationId"`
	Date       string `json:"date" binding:"required"`
	StartMin   int    `json:"startMin"`
	EndMin     int    `json:"endMin"`
	Notes      string `json:"notes"`
}

func (h *TimesheetHandler) CreateShift(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	id, err := h.timesheetService.CreateShift(c.Request.Context(), &domain.TimesheetShift{
		CoachID:    coachID,
		LocationID: req.LocationID,
		Date:       req.Date,
		StartMin:   req.StartMin,
		EndMin:     req.EndMin,
		Notes:      req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *TimesheetHandler) ListShifts(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	shifts, err := h.timesheetService.ListShifts(c.Request.Context(), coachID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

func (h *TimesheetHandler) UpdateShift(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err = h.timesheetService.UpdateShift(c.Request.Context(), &domain.TimesheetShift{
		ID:         id,
		CoachID:    coachID,
		LocationID: req.LocationID,
		Date:       req.Date,
		StartMin:   req.StartMin,
		EndMin:     req.EndMin,
		Notes:      req.Notes,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TimesheetHandler) DeleteShift(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.timesheetService.DeleteShift(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TimesheetHandler) MonthlySummaries(c *gin.Context) {
	coachID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	summaries, err := h.timesheetService.MonthlySummaries(c.Request.Context(), coachID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

type LocationRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *TimesheetHandler) CreateLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	id, err := h.timesheetService.CreateLocation(c.Request.Context(), &domain.TimesheetLocation{Name: req.Name})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *TimesheetHandler) ListLocations(c *gin.Context) {
	locations, err := h.timesheetService.ListLocations(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, locations)
}
