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

type ProductRepo struct {
	db db.DB
}

func NewProductRepo(db db.DB) storage.ProductRepository {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) Create(ctx context.Context, product *repository.Product) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO products (
            id, farmer_id, category_id, name, price, available, reserved, sold, public, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `, product.ID, product.FarmerID, product.CategoryID, product.Name, product.Price,
		product.Available, product.Reserved, product.Sold, product.Public,
		product.CreatedAt, product.UpdatedAt)
	return err
}

func (r *ProductRepo) GetByID(ctx context.Context, id string) (*repository.Product, error) {
	var product repository.Product
	err := r.db.Get(ctx, &product, "SELECT * FROM products WHERE id = $1", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

// GetByIDTx locks the product row for the rest of the transaction, so a
// concurrent farmer edit and order check serialize on it.
func (r *ProductRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Product, error) {
	var product repository.Product
	err := tx.Get(ctx, &product, "SELECT * FROM products WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if pgxscan.NotFound(err) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) ListAll(ctx context.Context) ([]*repository.Product, error) {
	var products []*repository.Product
	err := r.db.Select(ctx, &products, "SELECT * FROM products ORDER BY created_at")
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepo) ListByFarmer(ctx context.Context, farmerID string) ([]*repository.Product, error) {
	var products []*repository.Product
	err := r.db.Select(ctx, &products,
		"SELECT * FROM products WHERE farmer_id = $1 ORDER BY created_at", farmerID)
	if err != nil {
		return nil, err
	}
	return products, nil
}

// ReserveTx moves quantity units from available to reserved in a single
// conditional update. Concurrent reservations against the same product
// serialize on the row and can never drive available below zero.
func (r *ProductRepo) ReserveTx(ctx context.Context, tx db.Tx, id string, quantity int) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE products
        SET available = available - $2,
            reserved = reserved + $2,
            updated_at = $3
        WHERE id = $1 AND available >= $2
    `, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reserve %d of product %s: %w", quantity, id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}

// ReleaseTx gives reserved units back to available.
func (r *ProductRepo) ReleaseTx(ctx context.Context, tx db.Tx, id string, quantity int) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE products
        SET available = available + $2,
            reserved = reserved - $2,
            updated_at = $3
        WHERE id = $1 AND reserved >= $2
    `, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to release %d of product %s: %w", quantity, id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}

// SellTx converts reserved units to sold on order settlement.
func (r *ProductRepo) SellTx(ctx context.Context, tx db.Tx, id string, quantity int) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE products
        SET reserved = reserved - $2,
            sold = sold + $2,
            updated_at = $3
        WHERE id = $1 AND reserved >= $2
    `, id, quantity, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to sell %d of product %s: %w", quantity, id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrConditionFailed
	}
	return nil
}

// SetCountsTx writes farmer-declared counters after window validation.
func (r *ProductRepo) SetCountsTx(ctx context.Context, tx db.Tx, id string, available, reserved int) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE products
        SET available = $2,
            reserved = $3,
            updated_at = $4
        WHERE id = $1
    `, id, available, reserved, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set counts for product %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *ProductRepo) UpdateTx(ctx context.Context, tx db.Tx, product *repository.Product) error {
	cmdTag, err := tx.Exec(ctx, `
        UPDATE products
        SET name = $2,
            price = $3,
            category_id = $4,
            public = $5,
            updated_at = $6
        WHERE id = $1
    `, product.ID, product.Name, product.Price, product.CategoryID, product.Public, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to update product %s: %w", product.ID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

// ResetAll zeroes every stock counter. Re-running it in the same instant
// re-zeroes the same rows, so the weekly rollover may fire twice safely.
func (r *ProductRepo) ResetAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
        UPDATE products
        SET available = 0,
            reserved = 0,
            sold = 0,
            updated_at = $1
    `, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to reset product counters: %w", err)
	}
	return nil
}
