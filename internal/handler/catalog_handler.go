package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipmark/internal/service"
)

// CatalogHandler handles master catalog management endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// Upload handles POST /api/v1/catalog/upload
func (h *CatalogHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	if err := h.catalogService.Replace(c.Request.Context(), header.Filename, file); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, h.catalogService.Info(c.Request.Context()))
}

// Info handles GET /api/v1/catalog/info
func (h *CatalogHandler) Info(c *gin.Context) {
	RespondOK(c, h.catalogService.Info(c.Request.Context()))
}
