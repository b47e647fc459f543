package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"shipmark/internal/barcode"
	"shipmark/internal/catalog"
	"shipmark/internal/config"
	"shipmark/internal/handler"
	"shipmark/internal/label"
	"shipmark/internal/pdf"
	"shipmark/internal/repository/postgres"
	"shipmark/internal/router"
	"shipmark/internal/service"
	s3storage "shipmark/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories and storage
	inspectionRepo := postgres.NewInspectionRepo(db)
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize pipeline components
	catalogStore := catalog.NewStore(cfg.Catalog.DataDir)
	extractor := pdf.NewTextExtractor()
	pageFilter := pdf.NewPageFilter()
	renderer := label.NewRenderer(barcode.NewCode128Encoder(), label.LoadFontCSS(cfg.Label.FontPath))

	cleanup := service.NewCleanupWorker(s3Client, service.CleanupConfig{
		Bucket: cfg.S3.Bucket,
		Delay:  time.Duration(cfg.Pipeline.CleanupDelaySecs) * time.Second,
	})
	go cleanup.Start(ctx)

	// Initialize services
	manifestSvc := service.NewManifestService(
		extractor, pageFilter, catalogStore, renderer, s3Client, cleanup,
		&cfg.S3, &cfg.Pipeline)
	catalogSvc := service.NewCatalogService(catalogStore)
	labelSvc := service.NewLabelService(catalogStore, renderer)
	inspectionSvc := service.NewInspectionService(extractor, inspectionRepo, &cfg.S3)

	// Initialize handlers
	manifestH := handler.NewManifestHandler(manifestSvc)
	catalogH := handler.NewCatalogHandler(catalogSvc)
	labelH := handler.NewLabelHandler(labelSvc)
	inspectionH := handler.NewInspectionHandler(inspectionSvc)
	healthH := handler.NewHealthHandler(db, catalogStore)

	// Setup router
	r := router.Setup(manifestH, catalogH, labelH, inspectionH, healthH, cfg.CORS.AllowedOrigins)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Printf("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
