package router

import (
	"github.com/gin-gonic/gin"

	"shipmark/internal/handler"
	"shipmark/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	manifestH *handler.ManifestHandler,
	catalogH *handler.CatalogHandler,
	labelH *handler.LabelHandler,
	inspectionH *handler.InspectionHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Manifest pipeline
	manifests := v1.Group("/manifests")
	manifests.POST("/:zone/upload", manifestH.Upload)

	// Master catalog
	catalog := v1.Group("/catalog")
	catalog.POST("/upload", catalogH.Upload)
	catalog.GET("/info", catalogH.Info)

	// Label hub
	labels := v1.Group("/labels")
	labels.GET("/search", labelH.Search)
	labels.POST("/render", labelH.Render)

	// Inspection checklists
	inspection := v1.Group("/inspection")
	inspection.POST("/upload/:zone", inspectionH.Upload)
	inspection.GET("/task/:zone", inspectionH.GetTask)
	inspection.POST("/update/:zone", inspectionH.UpdateProgress)
	inspection.POST("/clear/:zone", inspectionH.Clear)

	return r
}
