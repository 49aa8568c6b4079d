package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swimtrack/training-tracker/internal/domain"
	"swimtrack/training-tracker/internal/service"
)

// CatalogHandler serves the swim session catalog endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type SwimSessionRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Folder      string            `json:"folder"`
	Items       []domain.SwimItem `json:"items"`
}

func (r *SwimSessionRequest) toDomain(id int64, createdBy string) *domain.SwimSession {
	return &domain.SwimSession{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		CreatedBy:   createdBy,
		Folder:      r.Folder,
		Items:       r.Items,
	}
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req SwimSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	id, err := h.catalogService.Create(c.Request.Context(), req.toDomain(0, ""))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func (h *CatalogHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	session, err := h.catalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *CatalogHandler) List(c *gin.Context) {
	includeArchived := c.Query("archived") == "true"
	sessions, err := h.catalogService.List(c.Request.Context(), includeArchived)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *CatalogHandler) Folders(c *gin.Context) {
	folders, err := h.catalogService.Folders(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, folders)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req SwimSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.catalogService.Update(c.Request.Context(), req.toDomain(id, "")); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ArchiveRequest struct {
	Archived bool `json:"archived"`
}

func (h *CatalogHandler) SetArchived(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req ArchiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.catalogService.SetArchived(c.Request.Context(), id, req.Archived); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.catalogService.Delete(c.Request.Context(), id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
