package server

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/verdantmarket/farmstand/internal/metrics"
	"github.com/verdantmarket/farmstand/internal/repository"
	"github.com/verdantmarket/farmstand/internal/storage"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())

	var orderRequest struct {
		UserID    string `json:"user_id"`
		DeliverAt string `json:"deliver_at"`
		Entries   []struct {
			ProductID string `json:"product_id"`
			Quantity  int    `json:"quantity"`
		} `json:"entries"`
	}

	if err := json.NewDecoder(r.Body).Decode(&orderRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := orderRequest.UserID
	if userID == "" {
		userID = actor.ID
	}
	// Customers only order for themselves.
	if actor.Role == repository.RoleCustomer && userID != actor.ID {
		respondError(w, http.StatusForbidden, "Cannot place an order for another user")
		return
	}

	in := storage.NewOrder{UserID: userID}
	if orderRequest.DeliverAt != "" {
		deliverAt, err := time.Parse(time.RFC3339, orderRequest.DeliverAt)
		if err != nil {
			respondError(w, http.StatusBadRequest, "Invalid deliver_at format. Use RFC3339")
			return
		}
		in.DeliverAt = &deliverAt
	}
	for _, entry := range orderRequest.Entries {
		in.Entries = append(in.Entries, storage.NewOrderEntry{
			ProductID: entry.ProductID,
			Quantity:  entry.Quantity,
		})
	}

	order, err := s.market.CheckOrder(r.Context(), in)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("check_order").Inc()
		respondStorageError(w, err)
		return
	}

	// Reserved counts moved, cached quantities are stale.
	for _, entry := range order.Entries {
		s.products.Delete(entry.ProductID)
	}

	metrics.OrdersAcceptedTotal.Inc()
	respondJSON(w, http.StatusCreated, order)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := s.market.GetOrder(r.Context(), orderID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var statusRequest struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.market.UpdateOrderStatus(r.Context(), orderID, storage.OrderStatus(statusRequest.Status)); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_status").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Order status updated successfully",
	})
}

func (s *Server) handleSettleOrder(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := s.market.SettleOrder(r.Context(), orderID)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("settle_order").Inc()
		respondStorageError(w, err)
		return
	}

	// Reserved moved to sold, cached quantities are stale.
	for _, entry := range order.Entries {
		s.products.Delete(entry.ProductID)
	}

	metrics.OrdersSettledTotal.Inc()
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	orderID := mux.Vars(r)["id"]

	order, err := s.market.CancelOrder(r.Context(), orderID, actor)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("cancel_order").Inc()
		respondStorageError(w, err)
		return
	}

	// Reservations went back to available.
	for _, entry := range order.Entries {
		s.products.Delete(entry.ProductID)
	}

	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleOrderHistory(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	history, err := s.market.GetOrderHistory(r.Context(), orderID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, history)
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	userID := mux.Vars(r)["userID"]

	if actor.Role == repository.RoleCustomer && userID != actor.ID {
		respondError(w, http.StatusForbidden, "Cannot list another user's orders")
		return
	}

	orders, err := s.market.GetUserOrders(r.Context(), userID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	products, err := s.market.ListStock(r.Context(), actorFrom(r.Context()))
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (s *Server) handleGetStockProduct(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	productID := mux.Vars(r)["id"]

	if cached, ok := s.products.Get(productID); ok {
		if actor.Role != repository.RoleFarmer || cached.FarmerID == actor.ID {
			respondJSON(w, http.StatusOK, cached)
			return
		}
	}

	product, err := s.market.GetStockProduct(r.Context(), productID, actor)
	if err != nil {
		respondStorageError(w, err)
		return
	}
	s.products.Set(*product)

	respondJSON(w, http.StatusOK, product)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor.Role == repository.RoleCustomer {
		respondError(w, http.StatusForbidden, "Customers cannot create products")
		return
	}

	var in storage.NewProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := s.market.CreateProduct(r.Context(), in, actor)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("create_product").Inc()
		respondStorageError(w, err)
		return
	}
	s.products.Set(*product)

	respondJSON(w, http.StatusCreated, product)
}

func (s *Server) handleUserLedger(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	userID := mux.Vars(r)["userID"]

	if actor.Role == repository.RoleCustomer && userID != actor.ID {
		respondError(w, http.StatusForbidden, "Cannot view another user's ledger")
		return
	}

	ledger, err := s.market.GetUserLedger(r.Context(), userID)
	if err != nil {
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ledger)
}

func (s *Server) handleTopUpBalance(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor.Role != repository.RoleEmployee && actor.Role != repository.RoleAdmin {
		respondError(w, http.StatusForbidden, "Only employees may top up balances")
		return
	}

	userID := mux.Vars(r)["userID"]

	var topUpRequest struct {
		Amount int `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&topUpRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.market.CreditBalance(r.Context(), userID, topUpRequest.Amount); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("credit_balance").Inc()
		respondStorageError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Balance topped up successfully",
	})
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	productID := mux.Vars(r)["id"]

	var upd storage.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := s.market.ValidateProductUpdate(r.Context(), productID, upd, actor); err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("update_product").Inc()
		respondStorageError(w, err)
		return
	}

	if upd.Reserved != nil {
		metrics.ReservationCutsTotal.Inc()
	}
	s.products.Delete(productID)

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Product updated successfully",
	})
}

func (s *Server) handleCloseCycle(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r.Context())
	if actor.Role != repository.RoleEmployee && actor.Role != repository.RoleAdmin {
		respondError(w, http.StatusForbidden, "Only employees may close the cycle")
		return
	}

	controlled := r.URL.Query().Get("controlled") == "true"

	if err := s.cycle.Trigger(r.Context(), controlled); err != nil {
		log.Printf("Manual cycle close failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Error: "+err.Error())
		return
	}

	s.products.Flush()

	respondJSON(w, http.StatusOK, map[string]string{
		"message": "Weekly cycle closed",
	})
}
