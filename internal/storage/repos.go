//go:generate mockgen -source repos.go -destination mocks/repos.go -package mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/repository"
)

type ProductRepository interface {
	Create(ctx context.Context, product *repository.Product) error
	GetByID(ctx context.Context, id string) (*repository.Product, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Product, error)
	ListAll(ctx context.Context) ([]*repository.Product, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]*repository.Product, error)
	ReserveTx(ctx context.Context, tx db.Tx, id string, quantity int) error
	ReleaseTx(ctx context.Context, tx db.Tx, id string, quantity int) error
	SellTx(ctx context.Context, tx db.Tx, id string, quantity int) error
	SetCountsTx(ctx context.Context, tx db.Tx, id string, available, reserved int) error
	UpdateTx(ctx context.Context, tx db.Tx, product *repository.Product) error
	ResetAll(ctx context.Context) error
}

type OrderRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, order *repository.Order, entries []repository.OrderEntry) error
	GetByID(ctx context.Context, id string) (*repository.Order, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.Order, error)
	GetEntries(ctx context.Context, orderID string) ([]*repository.OrderEntry, error)
	GetEntriesTx(ctx context.Context, tx db.Tx, orderID string) ([]*repository.OrderEntry, error)
	GetByUserID(ctx context.Context, userID string) ([]*repository.Order, error)
	UpdateStatusTx(ctx context.Context, tx db.Tx, id, status string) error
	OpenEntriesByProductTx(ctx context.Context, tx db.Tx, productID string) ([]*repository.OrderEntry, error)
	UpdateEntryQuantityTx(ctx context.Context, tx db.Tx, entryID string, quantity int) error
	DeleteEntryTx(ctx context.Context, tx db.Tx, entryID string) error
	LockOpen(ctx context.Context) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *repository.User, password string) error
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetByUsername(ctx context.Context, username string) (*repository.User, error)
	ValidateUser(ctx context.Context, username, password string) (*repository.User, error)
	DebitBalanceTx(ctx context.Context, tx db.Tx, id string, amount int) error
	CreditBalanceTx(ctx context.Context, tx db.Tx, id string, amount int) error
}

type TransactionRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, t *repository.Transaction) error
	GetByUserID(ctx context.Context, userID string) ([]*repository.Transaction, error)
}

type HistoryRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.HistoryEntry) error
	GetByOrderID(ctx context.Context, orderID string) ([]*repository.HistoryEntry, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasks(ctx context.Context, db db.DB, limit int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}
