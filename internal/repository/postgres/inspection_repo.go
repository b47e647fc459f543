package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"shipmark/internal/domain"
	"shipmark/internal/port"
)

type inspectionRepo struct {
	db *sqlx.DB
}

// NewInspectionRepo creates a new PostgreSQL-backed InspectionRepository.
func NewInspectionRepo(db *sqlx.DB) port.InspectionRepository {
	return &inspectionRepo{db: db}
}

func (r *inspectionRepo) ReplaceTask(ctx context.Context, task *domain.InspectionTask, items []domain.InspectionItem) error {
	task.CreatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inspectionRepo.ReplaceTask begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM inspection_items WHERE zone = $1", task.Zone); err != nil {
		return fmt.Errorf("inspectionRepo.ReplaceTask clear items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM inspection_tasks WHERE zone = $1", task.Zone); err != nil {
		return fmt.Errorf("inspectionRepo.ReplaceTask clear task: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO inspection_tasks (zone, filename, created_at) VALUES ($1, $2, $3)`,
		task.Zone, task.Filename, task.CreatedAt)
	if err != nil {
		return fmt.Errorf("inspectionRepo.ReplaceTask insert task: %w", err)
	}

	for i := range items {
		item := &items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.Zone = task.Zone
		_, err = tx.ExecContext(ctx,
			`INSERT INTO inspection_items
				(id, zone, seq, product_no, name, target_qty, scanned_qty, barcode, status, is_duplicate)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			item.ID, item.Zone, item.Seq, item.ProductNo, item.Name,
			item.TargetQty, item.ScannedQty, item.Barcode, item.Status, item.IsDuplicate)
		if err != nil {
			return fmt.Errorf("inspectionRepo.ReplaceTask insert item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("inspectionRepo.ReplaceTask commit: %w", err)
	}
	return nil
}

func (r *inspectionRepo) GetTask(ctx context.Context, zone domain.Zone) (*domain.InspectionTask, []domain.InspectionItem, error) {
	var task domain.InspectionTask
	err := r.db.GetContext(ctx, &task, "SELECT * FROM inspection_tasks WHERE zone = $1", zone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrNoTask
		}
		return nil, nil, fmt.Errorf("inspectionRepo.GetTask: %w", err)
	}

	var items []domain.InspectionItem
	err = r.db.SelectContext(ctx, &items,
		"SELECT * FROM inspection_items WHERE zone = $1 ORDER BY seq", zone)
	if err != nil {
		return nil, nil, fmt.Errorf("inspectionRepo.GetTask items: %w", err)
	}
	return &task, items, nil
}

func (r *inspectionRepo) GetItem(ctx context.Context, itemID string) (*domain.InspectionItem, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return nil, domain.ErrItemNotFound
	}

	var item domain.InspectionItem
	err = r.db.GetContext(ctx, &item, "SELECT * FROM inspection_items WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("inspectionRepo.GetItem: %w", err)
	}
	return &item, nil
}

func (r *inspectionRepo) UpdateProgress(ctx context.Context, itemID string, scannedQty int, status domain.InspectionStatus) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return domain.ErrItemNotFound
	}

	result, err := r.db.ExecContext(ctx,
		"UPDATE inspection_items SET scanned_qty = $1, status = $2 WHERE id = $3",
		scannedQty, status, id)
	if err != nil {
		return fmt.Errorf("inspectionRepo.UpdateProgress: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *inspectionRepo) ClearTask(ctx context.Context, zone domain.Zone) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("inspectionRepo.ClearTask begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM inspection_items WHERE zone = $1", zone); err != nil {
		return fmt.Errorf("inspectionRepo.ClearTask items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM inspection_tasks WHERE zone = $1", zone); err != nil {
		return fmt.Errorf("inspectionRepo.ClearTask task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("inspectionRepo.ClearTask commit: %w", err)
	}
	return nil
}
