package port

import (
	"context"

	"shipmark/internal/domain"
)

// InspectionRepository persists the per-zone inspection checklist. ReplaceTask
// swaps the zone's task and items atomically: readers never see a task with
// another upload's items.
type InspectionRepository interface {
	ReplaceTask(ctx context.Context, task *domain.InspectionTask, items []domain.InspectionItem) error
	GetTask(ctx context.Context, zone domain.Zone) (*domain.InspectionTask, []domain.InspectionItem, error)
	GetItem(ctx context.Context, itemID string) (*domain.InspectionItem, error)
	UpdateProgress(ctx context.Context, itemID string, scannedQty int, status domain.InspectionStatus) error
	ClearTask(ctx context.Context, zone domain.Zone) error
}
