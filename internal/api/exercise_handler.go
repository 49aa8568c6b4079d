package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/service"
)

// ExerciseHandler serves the exercise catalog endpoints.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

type ExerciseRequest struct {
	Name         string              `json:"name" binding:"required"`
	Description  string              `json:"description"`
	Illustration string              `json:"illustration"`
	Kind         domain.ExerciseKind `json:"kind"`
	Endurance    domain.CycleParams  `json:"endurance"`
	Hypertrophie domain.CycleParams  `json:"hypertrophie"`
	Force        domain.CycleParams  `json:"force"`
}

func (r *ExerciseRequest) toDomain(id int64) *domain.Exercise {
	return &domain.Exercise{
		ID:           id,
		Name:         r.Name,
		Description:  r.Description,
		Illustration: r.Illustration,
		Kind:         r.Kind,
		Endurance:    r.Endurance,
		Hypertrophie: r.Hypertrophie,
		Force:        r.Force,
	}
}

func (h *ExerciseHandler) Create(c *gin.Context) {
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	id, err := h.exerciseService.Create(c.Request.Context(), req.toDomain(0))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *ExerciseHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	exercise, err := h.exerciseService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

func (h *ExerciseHandler) List(c *gin.Context) {
	exercises, err := h.exerciseService.List(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercises)
}

func (h *ExerciseHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.exerciseService.Update(c.Request.Context(), req.toDomain(id)); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExerciseHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.exerciseService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type IllustrationUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

// RequestIllustrationUpload hands out a presigned PUT URL for an illustration.
func (h *ExerciseHandler) RequestIllustrationUpload(c *gin.Context) {
	var req IllustrationUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	upload, err := h.exerciseService.RequestIllustrationUpload(c.Request.Context(), req.ContentType)
	if err != nil {
		if err == service.ErrStorageUnavailable {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, upload)
}

// IllustrationURL hands out a presigned GET URL for an exercise illustration.
func (h *ExerciseHandler) IllustrationURL(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	url, err := h.exerciseService.IllustrationURL(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrStorageUnavailable {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
