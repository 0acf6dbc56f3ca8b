package postgresql

import (
	"context"
	"fmt"

	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

type TransactionRepo struct {
	db db.DB
}

func NewTransactionRepo(db db.DB) storage.TransactionRepository {
	return &TransactionRepo{db: db}
}

func (r *TransactionRepo) CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO transactions (id, user_id, order_id, amount, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `, t.ID, t.UserID, t.OrderID, t.Amount, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (r *TransactionRepo) GetByUserID(ctx context.Context, userID string) ([]*repository.Transaction, error) {
	var transactions []*repository.Transaction
	err := r.db.Select(ctx, &transactions,
		"SELECT * FROM transactions WHERE user_id = $1 ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, err
	}
	return transactions, nil
}
