package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipmark/internal/service"
)

// InspectionHandler handles inspection checklist endpoints.
type InspectionHandler struct {
	inspectionService service.InspectionService
}

// NewInspectionHandler creates a new InspectionHandler.
func NewInspectionHandler(inspectionService service.InspectionService) *InspectionHandler {
	return &InspectionHandler{inspectionService: inspectionService}
}

// Upload handles POST /api/v1/inspection/upload/:zone
func (h *InspectionHandler) Upload(c *gin.Context) {
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

	view, err := h.inspectionService.Upload(c.Request.Context(), service.InspectionUploadInput{
		Zone:   zone,
		File:   file,
		Header: header,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, view)
}

// GetTask handles GET /api/v1/inspection/task/:zone
func (h *InspectionHandler) GetTask(c *gin.Context) {
	zone, ok := parseZoneParam(c)
	if !ok {
		return
	}

	view, err := h.inspectionService.GetTask(c.Request.Context(), zone)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, view)
}

type updateProgressRequest struct {
	ItemID     string `json:"item_id" binding:"required"`
	ScannedQty int    `json:"scanned_qty"`
}

// UpdateProgress handles POST /api/v1/inspection/update/:zone
func (h *InspectionHandler) UpdateProgress(c *gin.Context) {
	if _, ok := parseZoneParam(c); !ok {
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	item, err := h.inspectionService.UpdateProgress(c.Request.Context(), req.ItemID, req.ScannedQty)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, item)
}

// Clear handles POST /api/v1/inspection/clear/:zone
func (h *InspectionHandler) Clear(c *gin.Context) {
	zone, ok := parseZoneParam(c)
	if !ok {
		return
	}

	if err := h.inspectionService.Clear(c.Request.Context(), zone); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"cleared": true})
}
