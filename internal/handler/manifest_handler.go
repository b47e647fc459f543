package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipmark/internal/service"
)

// ManifestHandler handles manifest upload endpoints.
type ManifestHandler struct {
	manifestService service.ManifestService
}

// NewManifestHandler creates a new ManifestHandler.
func NewManifestHandler(manifestService service.ManifestService) *ManifestHandler {
	return &ManifestHandler{manifestService: manifestService}
}

// Upload handles POST /api/v1/manifests/:zone/upload
func (h *ManifestHandler) Upload(c *gin.Context) {
	zone, ok := parseZoneParam(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	result, err := h.manifestService.Process(c.Request.Context(), service.ManifestUploadInput{
		Zone:   zone,
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}
