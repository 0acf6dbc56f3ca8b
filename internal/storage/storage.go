package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/verdantmarket/farmstand/internal/clock"
	"github.com/verdantmarket/farmstand/internal/db"
	"github.com/verdantmarket/farmstand/internal/reconcile"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/window"
)

// Kafka topics fed through the outbox.
const (
	TopicOrders = "farmstand.orders"
	TopicMarket = "farmstand.market"
)

// MarketStorage is the domain facade over the repositories: order entry
// validation and reservation, window-gated product edits with
// reconciliation, settlement and the weekly rollover primitives.
type MarketStorage struct {
	db           db.DB
	products     ProductRepository
	orders       OrderRepository
	users        UserRepository
	transactions TransactionRepository
	history      HistoryRepository
	outbox       OutboxTaskRepository
	clk          clock.Clock
}

func NewMarketStorage(
	database db.DB,
	products ProductRepository,
	orders OrderRepository,
	users UserRepository,
	transactions TransactionRepository,
	history HistoryRepository,
	outbox OutboxTaskRepository,
	clk clock.Clock,
) *MarketStorage {
	return &MarketStorage{
		db:           database,
		products:     products,
		orders:       orders,
		users:        users,
		transactions: transactions,
		history:      history,
		outbox:       outbox,
		clk:          clk,
	}
}

// CheckOrder validates a prospective order and reserves its stock. All
// entries are reserved inside one transaction: either the whole order is
// accepted or no counter moves.
func (s *MarketStorage) CheckOrder(ctx context.Context, in NewOrder) (*Order, error) {
	now := s.clk.Now()

	if len(in.Entries) == 0 {
		return nil, ErrEmptyOrder
	}
	if in.DeliverAt != nil && !window.Delivery(now).Contains(*in.DeliverAt) {
		return nil, ErrInvalidDeliveryDate
	}
	for _, entry := range in.Entries {
		if entry.Quantity <= 0 {
			return nil, ErrInvalidQuantity
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	order := &repository.Order{
		ID:        uuid.NewString(),
		UserID:    in.UserID,
		Status:    string(StatusDraft),
		DeliverAt: in.DeliverAt,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	entries := make([]repository.OrderEntry, 0, len(in.Entries))
	for _, entry := range in.Entries {
		product, err := s.products.GetByIDTx(ctx, tx, entry.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, fmt.Errorf("failed to fetch product %s: %w", entry.ProductID, err)
		}
		if product.Available < entry.Quantity {
			return nil, ErrInsufficientStock
		}
		if err := s.products.ReserveTx(ctx, tx, product.ID, entry.Quantity); err != nil {
			if errors.Is(err, repository.ErrConditionFailed) {
				return nil, ErrInsufficientStock
			}
			return nil, err
		}

		entries = append(entries, repository.OrderEntry{
			ID:        uuid.NewString(),
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			CreatedAt: now.UTC(),
		})
	}

	if err := s.orders.CreateTx(ctx, tx, order, entries); err != nil {
		return nil, err
	}
	if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
		OrderID:   order.ID,
		Status:    order.Status,
		ChangedAt: now.UTC(),
	}); err != nil {
		return nil, err
	}
	if err := s.enqueueOrderEvent(ctx, tx, repository.OrderEventPayload{
		Timestamp: now.UTC(),
		Action:    "order_accepted",
		OrderID:   order.ID,
		UserID:    order.UserID,
		NewStatus: order.Status,
		Entries:   len(entries),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return composeOrder(order, entries), nil
}

// UpdateOrderStatus enforces the forward-only status ordering. Setting
// the current status again is a no-op.
func (s *MarketStorage) UpdateOrderStatus(ctx context.Context, orderID string, newStatus OrderStatus) error {
	if !newStatus.Valid() {
		return ErrInvalidStatusTransition
	}

	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}

	current := OrderStatus(order.Status)
	if current == newStatus {
		return nil
	}
	if !CanTransition(current, newStatus) {
		return ErrInvalidStatusTransition
	}

	now := s.clk.Now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(newStatus)); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
		OrderID:   orderID,
		Status:    string(newStatus),
		ChangedAt: now,
	}); err != nil {
		return err
	}
	if err := s.enqueueOrderEvent(ctx, tx, repository.OrderEventPayload{
		Timestamp: now,
		Action:    "status_changed",
		OrderID:   orderID,
		UserID:    order.UserID,
		OldStatus: order.Status,
		NewStatus: string(newStatus),
	}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ValidateProductUpdate applies a window-gated product edit on behalf of
// actor. A reserved count lower than the committed one triggers the
// greedy reconciliation of open order entries in the same transaction.
func (s *MarketStorage) ValidateProductUpdate(ctx context.Context, productID string, upd ProductUpdate, actor *repository.User) error {
	now := s.clk.Now()

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	product, err := s.products.GetByIDTx(ctx, tx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	if actor.Role == repository.RoleFarmer {
		if product.FarmerID != actor.ID {
			return ErrProductNotOwned
		}
		// Visibility stays an employee decision.
		upd.Public = nil
	}

	if upd.Reserved != nil && !window.ReservationEdit(now).Contains(now) {
		return ErrReservationWindowClosed
	}
	if upd.Available != nil && !window.AvailabilityEdit(now).Contains(now) {
		return ErrAvailabilityWindowClosed
	}
	if (upd.Reserved != nil && *upd.Reserved < 0) || (upd.Available != nil && *upd.Available < 0) {
		return ErrInvalidQuantity
	}

	if upd.Reserved != nil && *upd.Reserved < product.Reserved {
		diff := product.Reserved - *upd.Reserved
		if err := s.reconcileEntries(ctx, tx, product.ID, diff); err != nil {
			return err
		}
	}

	available := product.Available
	if upd.Available != nil {
		available = *upd.Available
	}
	reserved := product.Reserved
	if upd.Reserved != nil {
		reserved = *upd.Reserved
	}
	if available != product.Available || reserved != product.Reserved {
		if err := s.products.SetCountsTx(ctx, tx, product.ID, available, reserved); err != nil {
			return err
		}
	}

	if upd.Name != nil || upd.Price != nil || upd.CategoryID != nil || upd.Public != nil {
		next := *product
		if upd.Name != nil {
			next.Name = *upd.Name
		}
		if upd.Price != nil {
			next.Price = *upd.Price
		}
		if upd.CategoryID != nil {
			next.CategoryID = *upd.CategoryID
		}
		if upd.Public != nil {
			next.Public = *upd.Public
		}
		if err := s.products.UpdateTx(ctx, tx, &next); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// reconcileEntries shrinks open order entries referencing the product by
// diff units, earliest entry first. The plan either covers the whole cut
// or nothing is touched.
func (s *MarketStorage) reconcileEntries(ctx context.Context, tx db.Tx, productID string, diff int) error {
	rows, err := s.orders.OpenEntriesByProductTx(ctx, tx, productID)
	if err != nil {
		return fmt.Errorf("failed to fetch open entries for product %s: %w", productID, err)
	}

	entries := make([]reconcile.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, reconcile.Entry{ID: row.ID, Quantity: row.Quantity})
	}

	plan, err := reconcile.Plan(entries, diff)
	if err != nil {
		if errors.Is(err, reconcile.ErrUnderflow) {
			return ErrReservationUnderflow
		}
		return err
	}

	for _, op := range plan {
		switch op.Kind {
		case reconcile.OpTruncate:
			err = s.orders.UpdateEntryQuantityTx(ctx, tx, op.EntryID, op.NewQuantity)
		case reconcile.OpDelete:
			err = s.orders.DeleteEntryTx(ctx, tx, op.EntryID)
		}
		if err != nil {
			return fmt.Errorf("failed to apply reconciliation to entry %s: %w", op.EntryID, err)
		}
	}
	return nil
}

// SettleOrder debits the buyer for the order total, converts the reserved
// units to sold and marks the order PAID. The order row is locked for the
// whole transaction, so two concurrent settlements serialize and the
// loser fails the status check instead of double-debiting.
func (s *MarketStorage) SettleOrder(ctx context.Context, orderID string) (*Order, error) {
	now := s.clk.Now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	order, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	if !CanTransition(OrderStatus(order.Status), StatusPaid) {
		return nil, ErrInvalidStatusTransition
	}

	rows, err := s.orders.GetEntriesTx(ctx, tx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries of order %s: %w", orderID, err)
	}

	total := 0
	for _, entry := range rows {
		product, err := s.products.GetByIDTx(ctx, tx, entry.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, ErrProductNotFound
			}
			return nil, err
		}
		total += entry.Quantity * product.Price

		if err := s.products.SellTx(ctx, tx, entry.ProductID, entry.Quantity); err != nil {
			if errors.Is(err, repository.ErrConditionFailed) {
				return nil, ErrReservationUnderflow
			}
			return nil, err
		}
	}

	if err := s.users.DebitBalanceTx(ctx, tx, order.UserID, total); err != nil {
		if errors.Is(err, repository.ErrConditionFailed) {
			return nil, ErrInsufficientBalance
		}
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.transactions.CreateTx(ctx, tx, &repository.Transaction{
		ID:        uuid.NewString(),
		UserID:    order.UserID,
		OrderID:   orderID,
		Amount:    -total,
		CreatedAt: now,
	}); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(StatusPaid)); err != nil {
		return nil, err
	}
	if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
		OrderID:   orderID,
		Status:    string(StatusPaid),
		ChangedAt: now,
	}); err != nil {
		return nil, err
	}
	if err := s.enqueueOrderEvent(ctx, tx, repository.OrderEventPayload{
		Timestamp: now,
		Action:    "order_settled",
		OrderID:   orderID,
		UserID:    order.UserID,
		OldStatus: order.Status,
		NewStatus: string(StatusPaid),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit settlement: %w", err)
	}

	entries := make([]repository.OrderEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *row)
	}
	order.Status = string(StatusPaid)
	return composeOrder(order, entries), nil
}

// CancelOrder releases the order's reservations back to available stock
// and closes the basket. Only draft orders can be cancelled; a settled
// order holds money and has to stay in the ledger.
func (s *MarketStorage) CancelOrder(ctx context.Context, orderID string, actor *repository.User) (*Order, error) {
	now := s.clk.Now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	order, err := s.orders.GetByIDTx(ctx, tx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	if actor.Role == repository.RoleCustomer && order.UserID != actor.ID {
		return nil, ErrOrderNotOwned
	}
	if OrderStatus(order.Status) != StatusDraft {
		return nil, ErrInvalidStatusTransition
	}

	rows, err := s.orders.GetEntriesTx(ctx, tx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries of order %s: %w", orderID, err)
	}

	for _, entry := range rows {
		if err := s.products.ReleaseTx(ctx, tx, entry.ProductID, entry.Quantity); err != nil {
			if errors.Is(err, repository.ErrConditionFailed) {
				return nil, ErrReservationUnderflow
			}
			return nil, err
		}
	}

	if err := s.orders.UpdateStatusTx(ctx, tx, orderID, string(StatusLocked)); err != nil {
		return nil, err
	}
	if err := s.history.CreateTx(ctx, tx, &repository.HistoryEntry{
		OrderID:   orderID,
		Status:    string(StatusLocked),
		ChangedAt: now,
	}); err != nil {
		return nil, err
	}
	if err := s.enqueueOrderEvent(ctx, tx, repository.OrderEventPayload{
		Timestamp: now,
		Action:    "order_cancelled",
		OrderID:   orderID,
		UserID:    order.UserID,
		OldStatus: order.Status,
		NewStatus: string(StatusLocked),
	}); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit cancellation: %w", err)
	}

	entries := make([]repository.OrderEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *row)
	}
	order.Status = string(StatusLocked)
	return composeOrder(order, entries), nil
}

// ResetStock zeroes every product's counters for the next weekly cycle.
func (s *MarketStorage) ResetStock(ctx context.Context) error {
	return s.products.ResetAll(ctx)
}

// LockBaskets closes every open order and reports how many were locked.
func (s *MarketStorage) LockBaskets(ctx context.Context) (int64, error) {
	return s.orders.LockOpen(ctx)
}

func (s *MarketStorage) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	rows, err := s.orders.GetEntries(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries of order %s: %w", orderID, err)
	}

	entries := make([]repository.OrderEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *row)
	}
	return composeOrder(order, entries), nil
}

func (s *MarketStorage) GetUserOrders(ctx context.Context, userID string) ([]Order, error) {
	rows, err := s.orders.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders of user %s: %w", userID, err)
	}

	orders := make([]Order, 0, len(rows))
	for _, row := range rows {
		entryRows, err := s.orders.GetEntries(ctx, row.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch entries of order %s: %w", row.ID, err)
		}
		entries := make([]repository.OrderEntry, 0, len(entryRows))
		for _, e := range entryRows {
			entries = append(entries, *e)
		}
		orders = append(orders, *composeOrder(row, entries))
	}
	return orders, nil
}

func (s *MarketStorage) GetOrderHistory(ctx context.Context, orderID string) ([]HistoryEntry, error) {
	rows, err := s.history.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch history of order %s: %w", orderID, err)
	}

	history := make([]HistoryEntry, 0, len(rows))
	for _, row := range rows {
		history = append(history, HistoryEntry{
			OrderID:   row.OrderID,
			Status:    row.Status,
			ChangedAt: row.ChangedAt,
		})
	}
	return history, nil
}

// ListStock returns the stock view for the acting user: farmers see only
// their own products, everyone else sees all of them.
func (s *MarketStorage) ListStock(ctx context.Context, actor *repository.User) ([]Product, error) {
	var (
		rows []*repository.Product
		err  error
	)
	if actor.Role == repository.RoleFarmer {
		rows, err = s.products.ListByFarmer(ctx, actor.ID)
	} else {
		rows, err = s.products.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list stock: %w", err)
	}

	products := make([]Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, ProductFromRow(row))
	}
	return products, nil
}

func (s *MarketStorage) GetStockProduct(ctx context.Context, productID string, actor *repository.User) (*Product, error) {
	row, err := s.products.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}
	if actor.Role == repository.RoleFarmer && row.FarmerID != actor.ID {
		return nil, ErrProductNotOwned
	}

	product := ProductFromRow(row)
	return &product, nil
}

// CreateProduct registers a new product. Farmers always create under
// their own ID and the product starts hidden; visibility stays an
// employee decision, same as on edits.
func (s *MarketStorage) CreateProduct(ctx context.Context, in NewProduct, actor *repository.User) (*Product, error) {
	if actor.Role == repository.RoleFarmer {
		in.FarmerID = actor.ID
		in.Public = false
	}
	if in.Name == "" || in.Price <= 0 || in.FarmerID == "" {
		return nil, ErrInvalidProduct
	}

	now := s.clk.Now().UTC()
	row := &repository.Product{
		ID:         uuid.NewString(),
		FarmerID:   in.FarmerID,
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Price:      in.Price,
		Public:     in.Public,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.products.Create(ctx, row); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	product := ProductFromRow(row)
	return &product, nil
}

// GetUserLedger returns a user's balance together with their signed
// transaction history, newest first as the repo orders them.
func (s *MarketStorage) GetUserLedger(ctx context.Context, userID string) (*Ledger, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}

	rows, err := s.transactions.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions of user %s: %w", userID, err)
	}

	ledger := &Ledger{
		UserID:       user.ID,
		Balance:      user.Balance,
		Transactions: make([]LedgerEntry, 0, len(rows)),
	}
	for _, row := range rows {
		ledger.Transactions = append(ledger.Transactions, LedgerEntry{
			ID:        row.ID,
			OrderID:   row.OrderID,
			Amount:    row.Amount,
			CreatedAt: row.CreatedAt,
		})
	}
	return ledger, nil
}

// CreditBalance tops up a user's balance and records the credit in the
// ledger. Amounts are in cents and must be positive; debits only happen
// through settlement.
func (s *MarketStorage) CreditBalance(ctx context.Context, userID string, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	now := s.clk.Now().UTC()
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := s.users.CreditBalanceTx(ctx, tx, userID, amount); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if err := s.transactions.CreateTx(ctx, tx, &repository.Transaction{
		ID:        uuid.NewString(),
		UserID:    userID,
		Amount:    amount,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// EnqueueMarketEvent records a weekly-cycle event through the outbox.
func (s *MarketStorage) EnqueueMarketEvent(ctx context.Context, payload repository.MarketEventPayload) error {
	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal market event: %w", err)
	}
	if err := s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   TopicMarket,
		Payload: raw,
	}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *MarketStorage) enqueueOrderEvent(ctx context.Context, tx db.Tx, payload repository.OrderEventPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	return s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Topic:   TopicOrders,
		Payload: raw,
	})
}

func composeOrder(order *repository.Order, entries []repository.OrderEntry) *Order {
	out := &Order{
		ID:        order.ID,
		UserID:    order.UserID,
		Status:    OrderStatus(order.Status),
		DeliverAt: order.DeliverAt,
		Entries:   make([]OrderEntry, 0, len(entries)),
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
	for _, entry := range entries {
		out.Entries = append(out.Entries, OrderEntry{
			ID:        entry.ID,
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
			Seq:       entry.Seq,
		})
	}
	return out
}

// ProductFromRow maps a repository row onto the API product shape.
func ProductFromRow(row *repository.Product) Product {
	return Product{
		ID:         row.ID,
		FarmerID:   row.FarmerID,
		CategoryID: row.CategoryID,
		Name:       row.Name,
		Price:      row.Price,
		Available:  row.Available,
		Reserved:   row.Reserved,
		Sold:       row.Sold,
		Public:     row.Public,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}
