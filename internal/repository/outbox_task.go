package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// OrderEventPayload is published on order acceptance and on every status
// change.
type OrderEventPayload struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	Entries   int       `json:"entries,omitempty"`
}

// MarketEventPayload is published when the weekly cycle closes.
type MarketEventPayload struct {
	Timestamp    time.Time `json:"timestamp"`
	Action       string    `json:"action"`
	LockedOrders int64     `json:"locked_orders"`
	NextCycleAt  time.Time `json:"next_cycle_at"`
}
