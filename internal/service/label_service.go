package service

import (
	"context"

	"shipmark/internal/catalog"
	"shipmark/internal/domain"
	"shipmark/internal/label"
)

// LabelRenderInput is the DTO for on-demand label rendering requests.
type LabelRenderInput struct {
	Item    string
	Barcode string
	Matched map[string]string
	Qty     int
	Status  domain.RowStatus
}

// LabelService backs the label hub: catalog search plus rendering a label
// for a row the operator picked by hand.
type LabelService interface {
	Search(ctx context.Context, query string) ([]domain.SearchHit, error)
	Render(ctx context.Context, input LabelRenderInput) (string, error)
}

type labelService struct {
	store    *catalog.Store
	renderer *label.Renderer
}

// NewLabelService creates a new LabelService implementation.
func NewLabelService(store *catalog.Store, renderer *label.Renderer) LabelService {
	return &labelService{store: store, renderer: renderer}
}

func (s *labelService) Search(ctx context.Context, query string) ([]domain.SearchHit, error) {
	snap, err := s.store.Get()
	if err != nil {
		return nil, err
	}

	rows := catalog.Search(snap, query)
	hits := make([]domain.SearchHit, 0, len(rows))
	for _, row := range rows {
		hits = append(hits, domain.SearchHit{
			ProductNo: row.ProductNo,
			Barcode:   row.Barcode,
			Name:      row.Name,
			Status:    catalog.Classify(row),
			Matched:   row.Fields,
		})
	}
	return hits, nil
}

func (s *labelService) Render(ctx context.Context, input LabelRenderInput) (string, error) {
	row := catalog.RowFromMap(input.Matched)
	qty := input.Qty
	if qty < 1 {
		qty = 1
	}

	switch input.Status {
	case domain.RowStatusInsect:
		return s.renderer.Insect(row, qty), nil
	case domain.RowStatusCaution:
		text := catalog.CautionText(row)
		if text == "" {
			text = "Caution Column Empty"
		}
		return s.renderer.Caution(text, qty), nil
	case domain.RowStatusFood:
		// The operator-picked barcode wins; Food falls back to the row's
		// barcode when it is blank or a sentinel.
		return s.renderer.Food(input.Item, input.Barcode, row, qty), nil
	}
	return "", domain.ErrNoLabelData
}
