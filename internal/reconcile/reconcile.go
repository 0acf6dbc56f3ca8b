// Package reconcile computes the edits needed to shrink the open order
// entries of a product after a farmer reduces its committed reservation
// count. The policy is greedy and order dependent: earliest entry first,
// so the oldest orders absorb the cut.
package reconcile

import "errors"

// ErrUnderflow is returned when the requested reduction exceeds the total
// quantity of the open entries. The plan is rejected as a whole; callers
// never see a partial plan.
var ErrUnderflow = errors.New("reconcile: reduction exceeds open reservations")

// Entry is one open order entry referencing the product, in stable
// creation order.
type Entry struct {
	ID       string
	Quantity int
}

type OpKind int

const (
	OpDelete OpKind = iota
	OpTruncate
)

// Op is a single edit. OpDelete removes the entry; OpTruncate sets its
// quantity to NewQuantity (always > 0 — an entry consumed to zero becomes
// a delete, never a kept zero-quantity row).
type Op struct {
	Kind        OpKind
	EntryID     string
	NewQuantity int
}

// Plan walks entries left to right consuming diff: an entry smaller than
// the remainder is deleted whole, the entry that covers the remainder is
// truncated and the walk stops. diff == 0 yields an empty plan.
func Plan(entries []Entry, diff int) ([]Op, error) {
	if diff <= 0 {
		return nil, nil
	}

	var ops []Op
	deleted := 0
	for _, e := range entries {
		remaining := diff - deleted
		if remaining < e.Quantity {
			ops = append(ops, Op{Kind: OpTruncate, EntryID: e.ID, NewQuantity: e.Quantity - remaining})
			return ops, nil
		}
		ops = append(ops, Op{Kind: OpDelete, EntryID: e.ID})
		deleted += e.Quantity
		if deleted == diff {
			return ops, nil
		}
	}

	return nil, ErrUnderflow
}
