package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/importer"
	"swimtrack/training-tracker/internal/service"
)

// RecordsHandler serves swim records, club records, the hall of fame and the
// federation import endpoints.
type RecordsHandler struct {
	recordsService service.RecordsService
	importClient   *importer.Client // nil when no importer is configured
}

// NewRecordsHandler creates a new RecordsHandler.
func NewRecordsHandler(recordsService service.RecordsService, importClient *importer.Client) *RecordsHandler {
	return &RecordsHandler{recordsService: recordsService, importClient: importClient}
}

type SwimRecordRequest struct {
	AthleteID int64   `json:"athleteId" binding:"required"`
	Event     string  `json:"event" binding:"required"`
	Pool      string  `json:"pool" binding:"required,oneof=25m 50m"`
	Seconds   float64 `json:"seconds" binding:"required"`
}

func (h *RecordsHandler) SaveSwimRecord(c *gin.Context) {
	var req SwimRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	written, err := h.recordsService.SaveSwimRecord(c.Request.Context(), &domain.SwimRecord{
		AthleteID: req.AthleteID,
		Event:     req.Event,
		Pool:      req.Pool,
		Seconds:   req.Seconds,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"written": written})
}

func (h *RecordsHandler) ListSwimRecords(c *gin.Context) {
	athleteID, ok := pathID(c, "athleteId")
	if !ok {
		return
	}
	records, err := h.recordsService.ListSwimRecords(c.Request.Context(), athleteID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) ListClubRecords(c *gin.Context) {
	records, err := h.recordsService.ListClubRecords(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RecordsHandler) HallOfFame(c *gin.Context) {
	hof, err := h.recordsService.HallOfFame(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, hof)
}

// ImportAthlete pulls an athlete's federation results into their records.
func (h *RecordsHandler) ImportAthlete(c *gin.Context) {
	if h.importClient == nil {
		abortWithError(c, http.StatusServiceUnavailable, "federation importer is not configured")
		return
	}
	athleteID, ok := pathID(c, "athleteId")
	if !ok {
		return
	}
	result, err := h.importClient.ImportAthlete(c.Request.Context(), athleteID)
	if err != nil {
		if errors.Is(err, importer.ErrNoFederationID) {
			abortWithError(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// RecalculateClubRecords rebuilds the club record table from personal bests.
func (h *RecordsHandler) RecalculateClubRecords(c *gin.Context) {
	if h.importClient == nil {
		abortWithError(c, http.StatusServiceUnavailable, "federation importer is not configured")
		return
	}
	if err := h.importClient.RecalculateClubRecords(c.Request.Context()); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
