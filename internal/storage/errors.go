package storage

import "errors"

// Request-level validation failures. Each maps to one machine-readable
// kind surfaced directly to the caller; none are retried.
var (
	ErrEmptyOrder               = errors.New("cannot create an empty order")
	ErrInvalidQuantity          = errors.New("entry quantity must be greater than zero")
	ErrInvalidDeliveryDate      = errors.New("delivery date outside the permitted range (Wed 08:00 - Fri 18:00)")
	ErrProductNotFound          = errors.New("order entry references an unknown product")
	ErrInsufficientStock        = errors.New("not enough available stock to satisfy the entry")
	ErrInvalidStatusTransition  = errors.New("order status cannot move backwards")
	ErrReservationWindowClosed  = errors.New("cannot edit reserved count now")
	ErrAvailabilityWindowClosed = errors.New("cannot edit available count now")
	ErrReservationUnderflow     = errors.New("reservation cut exceeds open order entries")
	ErrProductNotOwned          = errors.New("product does not belong to this farmer")
	ErrOrderNotOwned            = errors.New("order does not belong to this user")
	ErrInvalidProduct           = errors.New("product needs a name, a positive price and a farmer")
	ErrInvalidAmount            = errors.New("credit amount must be greater than zero")
	ErrInsufficientBalance      = errors.New("user balance cannot satisfy this order")
	ErrOrderNotFound            = errors.New("order not found")
	ErrUserNotFound             = errors.New("user not found")
)
