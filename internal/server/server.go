//go:generate mockgen -source ./server.go -destination=./mocks/server.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/verdantmarket/farmstand/internal/cache"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

// Market is the storage surface the HTTP handlers drive.
type Market interface {
	CheckOrder(ctx context.Context, in storage.NewOrder) (*storage.Order, error)
	GetOrder(ctx context.Context, orderID string) (*storage.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, newStatus storage.OrderStatus) error
	SettleOrder(ctx context.Context, orderID string) (*storage.Order, error)
	CancelOrder(ctx context.Context, orderID string, actor *repository.User) (*storage.Order, error)
	GetOrderHistory(ctx context.Context, orderID string) ([]storage.HistoryEntry, error)
	GetUserOrders(ctx context.Context, userID string) ([]storage.Order, error)
	ListStock(ctx context.Context, actor *repository.User) ([]storage.Product, error)
	GetStockProduct(ctx context.Context, productID string, actor *repository.User) (*storage.Product, error)
	CreateProduct(ctx context.Context, in storage.NewProduct, actor *repository.User) (*storage.Product, error)
	ValidateProductUpdate(ctx context.Context, productID string, upd storage.ProductUpdate, actor *repository.User) error
	GetUserLedger(ctx context.Context, userID string) (*storage.Ledger, error)
	CreditBalance(ctx context.Context, userID string, amount int) error
}

type UserRepo interface {
	ValidateUser(ctx context.Context, username, password string) (*repository.User, error)
}

// CycleCloser runs one weekly rollover on demand.
type CycleCloser interface {
	Trigger(ctx context.Context, controlled bool) error
}

type Server struct {
	market       Market
	userRepo     UserRepo
	cycle        CycleCloser
	products     *cache.ProductCache
	server       *http.Server
	AuditManager *AuditManager
}

func New(market Market, userRepo UserRepo, cycle CycleCloser, products *cache.ProductCache) *Server {
	auditManager := NewAuditManager(2, 5, 500*time.Millisecond)
	return &Server{
		market:       market,
		userRepo:     userRepo,
		cycle:        cycle,
		products:     products,
		AuditManager: auditManager,
	}
}

func (s *Server) Run(ctx context.Context, port string) error {
	router := s.setupRoutes()

	s.server = &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.AuditManager.Start(ctx)

	log.Printf("Server starting on port %s", port)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down server...")

	if err := s.server.Shutdown(ctx); err != nil {
		return err
	}
	log.Println("HTTP server shutdown completed")

	s.AuditManager.Shutdown(ctx)
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	router := mux.NewRouter()

	// Metrics bypass auth and audit.
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	api.Use(s.auditLogMiddleware)
	api.Use(s.basicAuthMiddleware)

	api.HandleFunc("/orders", s.handleCreateOrder).Methods(http.MethodPost).Name("handleCreateOrder")
	api.HandleFunc("/orders/{id}", s.handleGetOrder).Methods(http.MethodGet).Name("handleGetOrder")
	api.HandleFunc("/orders/{id}/status", s.handleUpdateOrderStatus).Methods(http.MethodPut).Name("handleUpdateOrderStatus")
	api.HandleFunc("/orders/{id}/settle", s.handleSettleOrder).Methods(http.MethodPost).Name("handleSettleOrder")
	api.HandleFunc("/orders/{id}/history", s.handleOrderHistory).Methods(http.MethodGet).Name("handleOrderHistory")
	api.HandleFunc("/orders/{id}", s.handleCancelOrder).Methods(http.MethodDelete).Name("handleCancelOrder")
	api.HandleFunc("/users/{userID}/orders", s.handleListOrders).Methods(http.MethodGet).Name("handleListOrders")
	api.HandleFunc("/users/{userID}/transactions", s.handleUserLedger).Methods(http.MethodGet).Name("handleUserLedger")
	api.HandleFunc("/users/{userID}/balance", s.handleTopUpBalance).Methods(http.MethodPost).Name("handleTopUpBalance")

	api.HandleFunc("/stock", s.handleListStock).Methods(http.MethodGet).Name("handleListStock")
	api.HandleFunc("/stock/{id}", s.handleGetStockProduct).Methods(http.MethodGet).Name("handleGetStockProduct")
	api.HandleFunc("/products", s.handleCreateProduct).Methods(http.MethodPost).Name("handleCreateProduct")
	api.HandleFunc("/products/{id}", s.handleUpdateProduct).Methods(http.MethodPatch).Name("handleUpdateProduct")

	api.HandleFunc("/process/close", s.handleCloseCycle).Methods(http.MethodPost).Name("handleCloseCycle")

	return router
}

type actorKey struct{}

func actorFrom(ctx context.Context) *repository.User {
	actor, _ := ctx.Value(actorKey{}).(*repository.User)
	return actor
}

func (s *Server) basicAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := s.userRepo.ValidateUser(r.Context(), username, password)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), actorKey{}, user)))
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondStorageError translates the storage error taxonomy into HTTP
// statuses: bad input 400, balance 402, ownership 403, missing rows 404,
// state conflicts (stock, windows, status ordering) 409.
func respondStorageError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrEmptyOrder),
		errors.Is(err, storage.ErrInvalidQuantity),
		errors.Is(err, storage.ErrInvalidDeliveryDate),
		errors.Is(err, storage.ErrInvalidProduct),
		errors.Is(err, storage.ErrInvalidAmount):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, storage.ErrInsufficientBalance):
		respondError(w, http.StatusPaymentRequired, err.Error())
	case errors.Is(err, storage.ErrProductNotOwned),
		errors.Is(err, storage.ErrOrderNotOwned):
		respondError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, storage.ErrOrderNotFound),
		errors.Is(err, storage.ErrProductNotFound),
		errors.Is(err, storage.ErrUserNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, storage.ErrInsufficientStock),
		errors.Is(err, storage.ErrInvalidStatusTransition),
		errors.Is(err, storage.ErrReservationWindowClosed),
		errors.Is(err, storage.ErrAvailabilityWindowClosed),
		errors.Is(err, storage.ErrReservationUnderflow):
		respondError(w, http.StatusConflict, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
