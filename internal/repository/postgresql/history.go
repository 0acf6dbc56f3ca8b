package postgresql

import (
	"context"
	"fmt"

	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

type HistoryRepo struct {
	db db.DB
}

func NewHistoryRepo(db db.DB) storage.HistoryRepository {
	return &HistoryRepo{db: db}
}

func (r *HistoryRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO order_history (order_id, status, changed_at)
        VALUES ($1, $2, $3)
    `, entry.OrderID, entry.Status, entry.ChangedAt)
	if err != nil {
		return fmt.Errorf("failed to insert history entry: %w", err)
	}
	return nil
}

func (r *HistoryRepo) GetByOrderID(ctx context.Context, orderID string) ([]*repository.HistoryEntry, error) {
	var entries []*repository.HistoryEntry
	err := r.db.Select(ctx, &entries,
		"SELECT * FROM order_history WHERE order_id = $1 ORDER BY changed_at", orderID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
