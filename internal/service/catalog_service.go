package service

import (
	"context"
	"io"
	"log"
	"path/filepath"
	"strings"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
)

// CatalogService manages the master catalog file behind the matching and
// search endpoints.
type CatalogService interface {
	Replace(ctx context.Context, filename string, content io.Reader) error
	Info(ctx context.Context) domain.CatalogInfo
}

type catalogService struct {
	store *catalog.Store
}

// NewCatalogService creates a new CatalogService implementation.
func NewCatalogService(store *catalog.Store) CatalogService {
	return &catalogService{store: store}
}

func (s *catalogService) Replace(ctx context.Context, filename string, content io.Reader) error {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".csv", ".xlsx", ".xls":
	default:
		return domain.ErrUnsupportedFileType
	}

	log.Printf("catalogService.Replace: installing %s catalog from %s", ext, filepath.Base(filename))
	return s.store.Replace(ext, content)
}

func (s *catalogService) Info(ctx context.Context) domain.CatalogInfo {
	return s.store.Info()
}
