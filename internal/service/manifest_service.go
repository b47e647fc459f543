package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"shipmark/internal/catalog"
	"shipmark/internal/config"
	"shipmark/internal/domain"
	"shipmark/internal/label"
	"shipmark/internal/manifest"
	"shipmark/internal/port"
)

// ManifestUploadInput is the DTO for manifest upload requests.
type ManifestUploadInput struct {
	Zone   domain.Zone
	File   multipart.File
	Header *multipart.FileHeader
}

// ManifestService runs the full manifest pipeline: text extraction, field
// extraction, catalog matching, label classification, rendering, and the
// filtered output document.
type ManifestService interface {
	Process(ctx context.Context, input ManifestUploadInput) (*domain.ManifestResult, error)
}

type manifestService struct {
	extractor port.TextExtractor
	filter    port.PageFilter
	catalog   *catalog.Store
	renderer  *label.Renderer
	storage   port.ObjectStorage
	cleanup   *CleanupWorker
	s3Cfg     *config.S3Config
	pipeCfg   *config.PipelineConfig
}

// NewManifestService creates a new ManifestService implementation.
func NewManifestService(
	extractor port.TextExtractor,
	filter port.PageFilter,
	catalogStore *catalog.Store,
	renderer *label.Renderer,
	storage port.ObjectStorage,
	cleanup *CleanupWorker,
	s3Cfg *config.S3Config,
	pipeCfg *config.PipelineConfig,
) ManifestService {
	return &manifestService{
		extractor: extractor,
		filter:    filter,
		catalog:   catalogStore,
		renderer:  renderer,
		storage:   storage,
		cleanup:   cleanup,
		s3Cfg:     s3Cfg,
		pipeCfg:   pipeCfg,
	}
}

func (s *manifestService) Process(ctx context.Context, input ManifestUploadInput) (*domain.ManifestResult, error) {
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

	log.Printf("manifestService.Process: zone=%s file=%s pages=%d",
		input.Zone, input.Header.Filename, len(pages))

	// The catalog is optional for barcode-literal zones; a missing snapshot
	// just means every lookup misses.
	snap, err := s.catalog.Get()
	if err != nil {
		log.Printf("manifestService.Process: catalog unavailable, matching disabled: %v", err)
		snap = nil
	}

	items := s.extractItems(input.Zone, pages, snap)

	duplicates := manifest.DuplicateReport(items)
	dupProducts := make(map[string]bool, len(duplicates))
	for _, d := range duplicates {
		dupProducts[d.ProductNo] = true
	}
	for i := range items {
		items[i].IsDuplicate = dupProducts[items[i].ProductNo]
	}

	result := &domain.ManifestResult{
		Items:      items,
		Duplicates: duplicates,
		Summary: domain.UploadSummary{
			TotalPages:    len(items),
			HasDuplicates: len(duplicates) > 0,
		},
	}

	output, err := s.buildOutput(ctx, input, content, items)
	if err != nil {
		return nil, err
	}
	result.Output = output

	return result, nil
}

// pageTokens pairs a source page with its tokenized lines.
type pageTokens struct {
	page  port.PageText
	lines []string
}

// extractItems runs field extraction, matching, classification, and rendering
// for each page under a bounded semaphore. Pages with no usable tokens
// (blank or image-only) contribute no item. Items come back in page order.
func (s *manifestService) extractItems(zone domain.Zone, pages []port.PageText, snap *catalog.Snapshot) []domain.LineItem {
	profile := manifest.ZoneProfile(zone)

	kept := make([]pageTokens, 0, len(pages))
	for _, page := range pages {
		lines := manifest.Tokenize(page.Text)
		if len(lines) == 0 {
			continue
		}
		kept = append(kept, pageTokens{page: page, lines: lines})
	}
	if skipped := len(pages) - len(kept); skipped > 0 {
		log.Printf("manifestService.extractItems: skipped %d empty pages", skipped)
	}

	items := make([]domain.LineItem, len(kept))

	concurrency := s.pipeCfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i := range kept {
		page := kept[i].page
		lines := kept[i].lines
		sem <- struct{}{} // acquire
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }() // release

			fields := manifest.Extract(lines, page.Text, profile)
			row := catalog.Match(snap, fields.ProductNo, fields.Barcode)
			labelType := label.Classify(zone, fields, row)

			printDoc := ""
			if labelType.NeedsPrint() {
				printDoc = s.renderer.Render(labelType, zone, fields, row, fields.Quantity)
			}

			items[idx] = domain.LineItem{
				ID:            uuid.NewString(),
				ProductNo:     fields.ProductNo,
				Name:          fields.Name,
				Barcode:       fields.Barcode,
				Quantity:      fields.Quantity,
				Date:          fields.Date,
				Zone:          zone,
				LabelType:     labelType,
				PrintDocument: printDoc,
				SourcePages:   []int{page.Number},
			}
		}(i)
	}
	wg.Wait()
	return items
}

// buildOutput produces the filtered copy of the manifest that keeps only the
// pages that yielded an item, stores it, and schedules its deletion.
// Returns nil when no page yielded one.
func (s *manifestService) buildOutput(ctx context.Context, input ManifestUploadInput, content []byte, items []domain.LineItem) (*domain.OutputDocument, error) {
	var itemPages []int
	for _, it := range items {
		itemPages = append(itemPages, it.SourcePages...)
	}
	if len(itemPages) == 0 {
		return nil, nil
	}

	filtered, err := s.filter.KeepPages(content, itemPages)
	if err != nil {
		return nil, fmt.Errorf("filtering output pages: %w", err)
	}

	key := fmt.Sprintf("manifests/%s/%s/%s",
		input.Zone, uuid.New(), filepath.Base(input.Header.Filename))

	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3Cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(filtered),
		ContentType: "application/pdf",
		Size:        int64(len(filtered)),
	})
	if err != nil {
		log.Printf("manifestService.buildOutput: upload failed for %s: %v", key, err)
		return nil, domain.ErrUploadFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.s3Cfg.Bucket, key, s.s3Cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning output document: %w", err)
	}

	s.cleanup.Schedule(key)

	return &domain.OutputDocument{Key: key, URL: url}, nil
}
