package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"shipmark/internal/config"
	"shipmark/internal/domain"
	"shipmark/internal/manifest"
	"shipmark/internal/port"
)

// InspectionUploadInput is the DTO for inspection checklist uploads.
type InspectionUploadInput struct {
	Zone   domain.Zone
	File   multipart.File
	Header *multipart.FileHeader
}

// InspectionTaskView is the task plus its seq-ordered items.
type InspectionTaskView struct {
	Task  *domain.InspectionTask  `json:"task"`
	Items []domain.InspectionItem `json:"items"`
}

// InspectionService manages per-zone inspection checklists: building one
// from a manifest upload and tracking scan progress against it.
type InspectionService interface {
	Upload(ctx context.Context, input InspectionUploadInput) (*InspectionTaskView, error)
	GetTask(ctx context.Context, zone domain.Zone) (*InspectionTaskView, error)
	UpdateProgress(ctx context.Context, itemID string, scannedQty int) (*domain.InspectionItem, error)
	Clear(ctx context.Context, zone domain.Zone) error
}

type inspectionService struct {
	extractor port.TextExtractor
	repo      port.InspectionRepository
	s3Cfg     *config.S3Config
}

// NewInspectionService creates a new InspectionService implementation.
func NewInspectionService(extractor port.TextExtractor, repo port.InspectionRepository, s3Cfg *config.S3Config) InspectionService {
	return &inspectionService{extractor: extractor, repo: repo, s3Cfg: s3Cfg}
}

func (s *inspectionService) Upload(ctx context.Context, input InspectionUploadInput) (*InspectionTaskView, error) {
	if !strings.EqualFold(filepath.Ext(input.Header.Filename), ".pdf") {
		return nil, domain.ErrUnsupportedFileType
	}
	maxBytes := s.s3Cfg.MaxFileSizeMB * 1024 * 1024
	if input.Header.Size > maxBytes {
		return nil, domain.ErrFileTooLarge
	}

	content, err := io.ReadAll(input.File)
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}

	pages, err := s.extractor.ExtractPages(content)
	if err != nil {
		return nil, err
	}

	// Merge mode: pages sharing a product number collapse into one checklist
	// row with the quantities summed. Pages with no usable tokens contribute
	// no row.
	profile := manifest.InspectionProfile()
	lineItems := make([]domain.LineItem, 0, len(pages))
	for _, page := range pages {
		lines := manifest.Tokenize(page.Text)
		if len(lines) == 0 {
			continue
		}
		fields := manifest.Extract(lines, page.Text, profile)
		lineItems = append(lineItems, domain.LineItem{
			ProductNo:   fields.ProductNo,
			Name:        fields.Name,
			Barcode:     fields.Barcode,
			Quantity:    fields.Quantity,
			SourcePages: []int{page.Number},
		})
	}
	merged := manifest.Merge(lineItems)

	items := make([]domain.InspectionItem, 0, len(merged))
	for i, it := range merged {
		items = append(items, domain.InspectionItem{
			Zone:        input.Zone,
			Seq:         i + 1,
			ProductNo:   it.ProductNo,
			Name:        it.Name,
			TargetQty:   it.Quantity,
			ScannedQty:  0,
			Barcode:     it.Barcode,
			Status:      domain.InspectionPending,
			IsDuplicate: it.IsDuplicate,
		})
	}

	task := &domain.InspectionTask{
		Zone:     input.Zone,
		Filename: filepath.Base(input.Header.Filename),
	}

	log.Printf("inspectionService.Upload: zone=%s file=%s pages=%d items=%d",
		input.Zone, task.Filename, len(pages), len(items))

	if err := s.repo.ReplaceTask(ctx, task, items); err != nil {
		return nil, err
	}
	return &InspectionTaskView{Task: task, Items: items}, nil
}

func (s *inspectionService) GetTask(ctx context.Context, zone domain.Zone) (*InspectionTaskView, error) {
	task, items, err := s.repo.GetTask(ctx, zone)
	if err != nil {
		return nil, err
	}
	return &InspectionTaskView{Task: task, Items: items}, nil
}

func (s *inspectionService) UpdateProgress(ctx context.Context, itemID string, scannedQty int) (*domain.InspectionItem, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	// Scanned counts clamp into [0, target]; over-scans count as complete.
	if scannedQty < 0 {
		scannedQty = 0
	}
	if scannedQty > item.TargetQty {
		scannedQty = item.TargetQty
	}

	status := domain.InspectionPending
	switch {
	case scannedQty >= item.TargetQty && item.TargetQty > 0:
		status = domain.InspectionCompleted
	case scannedQty > 0:
		status = domain.InspectionPartial
	}

	if err := s.repo.UpdateProgress(ctx, itemID, scannedQty, status); err != nil {
		return nil, err
	}
	item.ScannedQty = scannedQty
	item.Status = status
	return item, nil
}

func (s *inspectionService) Clear(ctx context.Context, zone domain.Zone) error {
	log.Printf("inspectionService.Clear: zone=%s", zone)
	return s.repo.ClearTask(ctx, zone)
}
