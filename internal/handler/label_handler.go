package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shipmark/internal/domain"
	"shipmark/internal/service"
)

// LabelHandler handles catalog search and on-demand label rendering.
type LabelHandler struct {
	labelService service.LabelService
}

// NewLabelHandler creates a new LabelHandler.
func NewLabelHandler(labelService service.LabelService) *LabelHandler {
	return &LabelHandler{labelService: labelService}
}

// Search handles GET /api/v1/labels/search
func (h *LabelHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		RespondError(c, http.StatusBadRequest, "MISSING_QUERY", "q parameter is required")
		return
	}

	hits, err := h.labelService.Search(c.Request.Context(), query)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"results": hits, "count": len(hits)})
}

type renderRequest struct {
	Item    string            `json:"item"`
	Barcode string            `json:"barcode"`
	Matched map[string]string `json:"matched_data"`
	Qty     int               `json:"qty"`
	Status  string            `json:"status" binding:"required"`
}

// Render handles POST /api/v1/labels/render
func (h *LabelHandler) Render(c *gin.Context) {
	var req renderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body: "+err.Error())
		return
	}

	doc, err := h.labelService.Render(c.Request.Context(), service.LabelRenderInput{
		Item:    req.Item,
		Barcode: req.Barcode,
		Matched: req.Matched,
		Qty:     req.Qty,
		Status:  domain.RowStatus(req.Status),
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"html": doc})
}
