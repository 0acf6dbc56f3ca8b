package storage

import "time"

// OrderStatus values form a fixed forward-only ordering. A status may
// jump ahead (DRAFT straight to COMPLETED) but never move back.
type OrderStatus string

const (
	StatusDraft     OrderStatus = "DRAFT"
	StatusPaid      OrderStatus = "PAID"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusLocked    OrderStatus = "LOCKED"
)

var statusRank = map[OrderStatus]int{
	StatusDraft:     0,
	StatusPaid:      1,
	StatusCompleted: 2,
	StatusLocked:    3,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether from may become to: both must be known
// statuses and to must not rank earlier than from.
func CanTransition(from, to OrderStatus) bool {
	fromRank, ok := statusRank[from]
	if !ok {
		return false
	}
	toRank, ok := statusRank[to]
	if !ok {
		return false
	}
	return toRank >= fromRank
}

type Product struct {
	ID         string    `json:"id"`
	FarmerID   string    `json:"farmer_id"`
	CategoryID string    `json:"category_id"`
	Name       string    `json:"name"`
	Price      int       `json:"price"`
	Available  int       `json:"available"`
	Reserved   int       `json:"reserved"`
	Sold       int       `json:"sold"`
	Public     bool      `json:"public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ProductUpdate carries a farmer's (or employee's) partial product edit.
// Nil fields are untouched.
type ProductUpdate struct {
	Name       *string `json:"name,omitempty"`
	Price      *int    `json:"price,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
	Public     *bool   `json:"public,omitempty"`
	Available  *int    `json:"available,omitempty"`
	Reserved   *int    `json:"reserved,omitempty"`
}

type OrderEntry struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Seq       int    `json:"seq"`
}

type Order struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Status    OrderStatus  `json:"status"`
	DeliverAt *time.Time   `json:"deliver_at,omitempty"`
	Entries   []OrderEntry `json:"entries"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// NewOrder is a prospective order as submitted by a customer or employee.
type NewOrder struct {
	UserID    string          `json:"user_id"`
	DeliverAt *time.Time      `json:"deliver_at,omitempty"`
	Entries   []NewOrderEntry `json:"entries"`
}

type NewOrderEntry struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// NewProduct is a prospective product as submitted by a farmer or
// employee.
type NewProduct struct {
	FarmerID   string `json:"farmer_id"`
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Public     bool   `json:"public"`
}

// Ledger is a user's balance together with their transaction history.
// Entry amounts are signed: settlement debits negative, top-ups positive.
type Ledger struct {
	UserID       string        `json:"user_id"`
	Balance      int           `json:"balance"`
	Transactions []LedgerEntry `json:"transactions"`
}

type LedgerEntry struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id,omitempty"`
	Amount    int       `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

type HistoryEntry struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
