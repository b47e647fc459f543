package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"shipmark/internal/catalog"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	db      *sqlx.DB
	catalog *catalog.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db *sqlx.DB, catalogStore *catalog.Store) *HealthHandler {
	return &HealthHandler{db: db, catalog: catalogStore}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.db.PingContext(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	// A missing catalog degrades matching but does not fail readiness.
	info := h.catalog.Info()
	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"catalog_loaded": info.CurrentFile != "",
	})
}
