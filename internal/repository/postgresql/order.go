package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/pgxscan"

	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

type OrderRepo struct {
	db db.DB
}

func NewOrderRepo(db db.DB) storage.OrderRepository {
	return &OrderRepo{db: db}
}

// CreateTx inserts the order together with its entries. Seq numbers follow
// the submitted entry order; reconciliation iterates them in this order.
func (r *OrderRepo) CreateTx(ctx context.Context, tx db.Tx, order *repository.Order, entries []repository.OrderEntry) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO orders (id, user_id, status, deliver_at, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, order.ID, order.UserID, order.Status, order.DeliverAt, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range entries {
		entry := &entries[i]
		entry.OrderID = order.ID
		entry.Seq = i + 1

		_, err := tx.Exec(ctx, `
            INSERT INTO order_entries (id, order_id, product_id, quantity, seq, created_at)
            VALUES ($1, $2, $3, $4, $5, $6)
        `, entry.ID, entry.OrderID, entry.ProductID, entry.Quantity, entry.Seq, entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert order entry for order %s: %w", order.ID, err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*repository.Order, error) {
	var order repository.Order
	err := r.db.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetByIDTx locks the order row for the rest of the transaction, so two
// concurrent settlements of the same order serialize on it.
func (r *OrderRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Order, error) {
	var order repository.Order
	err := tx.Get(ctx, &order, "SELECT * FROM orders WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepo) GetEntries(ctx context.Context, orderID string) ([]*repository.OrderEntry, error) {
	var entries []*repository.OrderEntry
	err := r.db.Select(ctx, &entries,
		"SELECT * FROM order_entries WHERE order_id = $1 ORDER BY seq", orderID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OrderRepo) GetEntriesTx(ctx context.Context, tx db.Tx, orderID string) ([]*repository.OrderEntry, error) {
	var entries []*repository.OrderEntry
	err := tx.Select(ctx, &entries,
		"SELECT * FROM order_entries WHERE order_id = $1 ORDER BY seq", orderID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OrderRepo) GetByUserID(ctx context.Context, userID string) ([]*repository.Order, error) {
	var orders []*repository.Order
	err := r.db.Select(ctx, &orders,
		"SELECT * FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx db.Tx, id, status string) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE orders SET status = $2, updated_at = $3 WHERE id = $1
    `, id, status, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update status of order %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// OpenEntriesByProductTx returns entries of not-yet-closed orders that
// reference the product, oldest entry first. This ordering decides which
// baskets shrink when a farmer cuts a committed reservation. Runs inside
// the caller's transaction so the cut and the reads see one snapshot.
func (r *OrderRepo) OpenEntriesByProductTx(ctx context.Context, tx db.Tx, productID string) ([]*repository.OrderEntry, error) {
	var entries []*repository.OrderEntry
	err := tx.Select(ctx, &entries, `
        SELECT e.id, e.order_id, e.product_id, e.quantity, e.seq, e.created_at
        FROM order_entries e
        JOIN orders o ON o.id = e.order_id
        WHERE e.product_id = $1 AND o.status NOT IN ('COMPLETED', 'LOCKED')
        ORDER BY e.created_at, e.seq
    `, productID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *OrderRepo) UpdateEntryQuantityTx(ctx context.Context, tx db.Tx, entryID string, quantity int) error {
	cmdTag, err := tx.Exec(ctx,
		"UPDATE order_entries SET quantity = $2 WHERE id = $1", entryID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OrderRepo) DeleteEntryTx(ctx context.Context, tx db.Tx, entryID string) error {
	cmdTag, err := tx.Exec(ctx, "DELETE FROM order_entries WHERE id = $1", entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// LockOpen closes every open basket at the end of the weekly cycle.
// Already-locked orders are untouched, so a repeated rollover is a no-op.
func (r *OrderRepo) LockOpen(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `
        UPDATE orders
        SET status = 'LOCKED', updated_at = $1
        WHERE status NOT IN ('COMPLETED', 'LOCKED')
    `, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to lock open orders: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
