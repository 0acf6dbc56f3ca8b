package repository

import (
	"errors"
	"time"
)

var (
	ErrObjectNotFound = errors.New("not found")
	// ErrConditionFailed means a conditional update found the row but the
	// guard clause rejected it (not enough stock or balance left).
	ErrConditionFailed = errors.New("conditional update failed")
)

// Role gates which product fields a user may edit and whose products they
// may see.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleFarmer   Role = "farmer"
	RoleAdmin    Role = "admin"
)

type User struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
	Role     Role   `db:"role"`
	// Balance in cents; settlement debits it with a conditional update.
	Balance int `db:"balance"`
}

type Product struct {
	ID         string    `db:"id"`
	FarmerID   string    `db:"farmer_id"`
	CategoryID string    `db:"category_id"`
	Name       string    `db:"name"`
	Price      int       `db:"price"`
	Available  int       `db:"available"`
	Reserved   int       `db:"reserved"`
	Sold       int       `db:"sold"`
	Public     bool      `db:"public"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

type Order struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	Status    string     `db:"status"`
	DeliverAt *time.Time `db:"deliver_at"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

// OrderEntry rows carry a per-order sequence number so that reconciliation
// sees entries in their original creation order, independent of any
// storage-layer default ordering.
type OrderEntry struct {
	ID        string    `db:"id"`
	OrderID   string    `db:"order_id"`
	ProductID string    `db:"product_id"`
	Quantity  int       `db:"quantity"`
	Seq       int       `db:"seq"`
	CreatedAt time.Time `db:"created_at"`
}

// Transaction is one balance-ledger row. Amount is signed: settlement
// debits are negative, refunds positive.
type Transaction struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	OrderID   string    `db:"order_id"`
	Amount    int       `db:"amount"`
	CreatedAt time.Time `db:"created_at"`
}

type HistoryEntry struct {
	ID        int64     `db:"id"`
	OrderID   string    `db:"order_id"`
	Status    string    `db:"status"`
	ChangedAt time.Time `db:"changed_at"`
}
