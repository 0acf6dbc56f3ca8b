package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/verdantmarket/farmstand/internal/cache"
	"github.com/verdantmarket/farmstand/internal/repository"
	mock_server "github.com/verdantmarket/farmstand/internal/server/mocks"
	"github.com/verdantmarket/farmstand/internal/storage"
)

var (
	testCustomer = &repository.User{ID: "user123", Username: "alice", Role: repository.RoleCustomer}
	testFarmer   = &repository.User{ID: "farmer1", Username: "bob", Role: repository.RoleFarmer}
	testEmployee = &repository.User{ID: "emp1", Username: "carol", Role: repository.RoleEmployee}
)

func newTestServer(ctrl *gomock.Controller) (*Server, *mock_server.MockMarket, *mock_server.MockUserRepo, *mock_server.MockCycleCloser) {
	mockMarket := mock_server.NewMockMarket(ctrl)
	mockUserRepo := mock_server.NewMockUserRepo(ctrl)
	mockCycle := mock_server.NewMockCycleCloser(ctrl)
	server := New(mockMarket, mockUserRepo, mockCycle, cache.NewProductCache(nil))
	return server, mockMarket, mockUserRepo, mockCycle
}

func withActor(req *http.Request, actor *repository.User) *http.Request {
	return req.WithContext(context.WithValue(req.Context(), actorKey{}, actor))
}

func TestHandleCreateOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	tests := []struct {
		name           string
		actor          *repository.User
		requestBody    map[string]interface{}
		setupMocks     func()
		expectedStatus int
		expectedBody   string
	}{
		{
			name:  "successful order creation",
			actor: testCustomer,
			requestBody: map[string]interface{}{
				"deliver_at": "2025-03-13T12:00:00Z",
				"entries": []map[string]interface{}{
					{"product_id": "prod-1", "quantity": 2},
				},
			},
			setupMocks: func() {
				mockMarket.EXPECT().
					CheckOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in storage.NewOrder) (*storage.Order, error) {
						assert.Equal(t, "user123", in.UserID)
						require.Len(t, in.Entries, 1)
						assert.Equal(t, 2, in.Entries[0].Quantity)
						require.NotNil(t, in.DeliverAt)
						assert.Equal(t, time.Date(2025, 3, 13, 12, 0, 0, 0, time.UTC), in.DeliverAt.UTC())
						return &storage.Order{
							ID:     "order123",
							UserID: in.UserID,
							Status: storage.StatusDraft,
							Entries: []storage.OrderEntry{
								{ID: "e1", ProductID: "prod-1", Quantity: 2, Seq: 1},
							},
						}, nil
					})
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"order123"`,
		},
		{
			name:  "customer cannot order for another user",
			actor: testCustomer,
			requestBody: map[string]interface{}{
				"user_id": "someone-else",
				"entries": []map[string]interface{}{
					{"product_id": "prod-1", "quantity": 1},
				},
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"Cannot place an order for another user"`,
		},
		{
			name:  "insufficient stock maps to conflict",
			actor: testCustomer,
			requestBody: map[string]interface{}{
				"entries": []map[string]interface{}{
					{"product_id": "prod-1", "quantity": 50},
				},
			},
			setupMocks: func() {
				mockMarket.EXPECT().
					CheckOrder(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrInsufficientStock)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error"`,
		},
		{
			name:  "bad delivery date maps to bad request",
			actor: testCustomer,
			requestBody: map[string]interface{}{
				"entries": []map[string]interface{}{
					{"product_id": "prod-1", "quantity": 1},
				},
			},
			setupMocks: func() {
				mockMarket.EXPECT().
					CheckOrder(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrInvalidDeliveryDate)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error"`,
		},
		{
			name:  "malformed deliver_at",
			actor: testCustomer,
			requestBody: map[string]interface{}{
				"deliver_at": "next thursday",
			},
			setupMocks:     func() {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"Invalid deliver_at format. Use RFC3339"`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setupMocks()

			body, err := json.Marshal(tc.requestBody)
			require.NoError(t, err)
			req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = withActor(req, tc.actor)

			rr := httptest.NewRecorder()
			server.handleCreateOrder(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}

func TestHandleGetOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("order found", func(t *testing.T) {
		mockMarket.EXPECT().
			GetOrder(gomock.Any(), "order123").
			Return(&storage.Order{ID: "order123", UserID: "user123", Status: storage.StatusDraft}, nil)

		req := httptest.NewRequest(http.MethodGet, "/orders/order123", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleGetOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"id":"order123"`)
	})

	t.Run("order not found", func(t *testing.T) {
		mockMarket.EXPECT().
			GetOrder(gomock.Any(), "ghost").
			Return(nil, storage.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/orders/ghost", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "ghost"})

		rr := httptest.NewRecorder()
		server.handleGetOrder(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestHandleUpdateOrderStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("successful status update", func(t *testing.T) {
		mockMarket.EXPECT().
			UpdateOrderStatus(gomock.Any(), "order123", storage.StatusPaid).
			Return(nil)

		body := bytes.NewBufferString(`{"status":"PAID"}`)
		req := httptest.NewRequest(http.MethodPut, "/orders/order123/status", body)
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleUpdateOrderStatus(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("status regression maps to conflict", func(t *testing.T) {
		mockMarket.EXPECT().
			UpdateOrderStatus(gomock.Any(), "order123", storage.StatusDraft).
			Return(storage.ErrInvalidStatusTransition)

		body := bytes.NewBufferString(`{"status":"DRAFT"}`)
		req := httptest.NewRequest(http.MethodPut, "/orders/order123/status", body)
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleUpdateOrderStatus(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleSettleOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("successful settlement", func(t *testing.T) {
		mockMarket.EXPECT().SettleOrder(gomock.Any(), "order123").
			Return(&storage.Order{
				ID:     "order123",
				Status: storage.StatusPaid,
				Entries: []storage.OrderEntry{
					{ID: "e1", ProductID: "prod-1", Quantity: 2, Seq: 1},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodPost, "/orders/order123/settle", nil)
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleSettleOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"PAID"`)
	})

	t.Run("insufficient balance maps to payment required", func(t *testing.T) {
		mockMarket.EXPECT().
			SettleOrder(gomock.Any(), "order123").
			Return(nil, storage.ErrInsufficientBalance)

		req := httptest.NewRequest(http.MethodPost, "/orders/order123/settle", nil)
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleSettleOrder(rr, req)

		assert.Equal(t, http.StatusPaymentRequired, rr.Code)
	})
}

func TestHandleSettleOrder_CacheInvalidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	server.products.Set(storage.Product{ID: "prod-1", Name: "Carrots", Public: true, Reserved: 2})

	mockMarket.EXPECT().SettleOrder(gomock.Any(), "order123").
		Return(&storage.Order{
			ID:     "order123",
			Status: storage.StatusPaid,
			Entries: []storage.OrderEntry{
				{ID: "e1", ProductID: "prod-1", Quantity: 2, Seq: 1},
			},
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/orders/order123/settle", nil)
	req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"id": "order123"})

	rr := httptest.NewRecorder()
	server.handleSettleOrder(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	// Settlement moved reserved to sold; the stale entry must be gone.
	_, found := server.products.Get("prod-1")
	assert.False(t, found)
}

func TestHandleCancelOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("draft order cancelled and cache invalidated", func(t *testing.T) {
		server.products.Set(storage.Product{ID: "prod-1", Name: "Carrots", Public: true, Reserved: 2})

		mockMarket.EXPECT().CancelOrder(gomock.Any(), "order123", testCustomer).
			Return(&storage.Order{
				ID:     "order123",
				Status: storage.StatusLocked,
				Entries: []storage.OrderEntry{
					{ID: "e1", ProductID: "prod-1", Quantity: 2, Seq: 1},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodDelete, "/orders/order123", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "order123"})

		rr := httptest.NewRecorder()
		server.handleCancelOrder(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"status":"LOCKED"`)
		_, found := server.products.Get("prod-1")
		assert.False(t, found)
	})

	t.Run("foreign order maps to forbidden", func(t *testing.T) {
		mockMarket.EXPECT().CancelOrder(gomock.Any(), "order456", testCustomer).
			Return(nil, storage.ErrOrderNotOwned)

		req := httptest.NewRequest(http.MethodDelete, "/orders/order456", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "order456"})

		rr := httptest.NewRecorder()
		server.handleCancelOrder(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("paid order maps to conflict", func(t *testing.T) {
		mockMarket.EXPECT().CancelOrder(gomock.Any(), "order789", testCustomer).
			Return(nil, storage.ErrInvalidStatusTransition)

		req := httptest.NewRequest(http.MethodDelete, "/orders/order789", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "order789"})

		rr := httptest.NewRecorder()
		server.handleCancelOrder(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestHandleCreateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("farmer creates a product", func(t *testing.T) {
		mockMarket.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any(), testFarmer).
			DoAndReturn(func(_ context.Context, in storage.NewProduct, _ *repository.User) (*storage.Product, error) {
				assert.Equal(t, "Honey", in.Name)
				assert.Equal(t, 120, in.Price)
				return &storage.Product{ID: "prod-9", FarmerID: "farmer1", Name: in.Name, Price: in.Price}, nil
			})

		body, _ := json.Marshal(map[string]interface{}{"name": "Honey", "price": 120})
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(body))
		req = withActor(req, testFarmer)

		rr := httptest.NewRecorder()
		server.handleCreateProduct(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Honey"`)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte(`{}`)))
		req = withActor(req, testCustomer)

		rr := httptest.NewRecorder()
		server.handleCreateProduct(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("invalid product maps to bad request", func(t *testing.T) {
		mockMarket.EXPECT().
			CreateProduct(gomock.Any(), gomock.Any(), testEmployee).
			Return(nil, storage.ErrInvalidProduct)

		req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte(`{"name":"Honey"}`)))
		req = withActor(req, testEmployee)

		rr := httptest.NewRecorder()
		server.handleCreateProduct(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleUserLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("customer reads their own ledger", func(t *testing.T) {
		mockMarket.EXPECT().GetUserLedger(gomock.Any(), "user123").
			Return(&storage.Ledger{
				UserID:  "user123",
				Balance: 55,
				Transactions: []storage.LedgerEntry{
					{ID: "t1", OrderID: "order123", Amount: -95},
				},
			}, nil)

		req := httptest.NewRequest(http.MethodGet, "/users/user123/transactions", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"userID": "user123"})

		rr := httptest.NewRecorder()
		server.handleUserLedger(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"balance":55`)
	})

	t.Run("customer cannot read a foreign ledger", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/other/transactions", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"userID": "other"})

		rr := httptest.NewRecorder()
		server.handleUserLedger(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandleTopUpBalance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("employee tops up a customer", func(t *testing.T) {
		mockMarket.EXPECT().CreditBalance(gomock.Any(), "user123", 200).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/users/user123/balance",
			bytes.NewReader([]byte(`{"amount":200}`)))
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"userID": "user123"})

		rr := httptest.NewRecorder()
		server.handleTopUpBalance(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("customer may not top up", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/users/user123/balance",
			bytes.NewReader([]byte(`{"amount":200}`)))
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"userID": "user123"})

		rr := httptest.NewRecorder()
		server.handleTopUpBalance(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("non-positive amount maps to bad request", func(t *testing.T) {
		mockMarket.EXPECT().CreditBalance(gomock.Any(), "user123", 0).
			Return(storage.ErrInvalidAmount)

		req := httptest.NewRequest(http.MethodPost, "/users/user123/balance",
			bytes.NewReader([]byte(`{"amount":0}`)))
		req = mux.SetURLVars(withActor(req, testEmployee), map[string]string{"userID": "user123"})

		rr := httptest.NewRecorder()
		server.handleTopUpBalance(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestHandleUpdateProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	t.Run("farmer lowers reserved", func(t *testing.T) {
		mockMarket.EXPECT().
			ValidateProductUpdate(gomock.Any(), "prod-1", gomock.Any(), testFarmer).
			DoAndReturn(func(_ context.Context, _ string, upd storage.ProductUpdate, _ *repository.User) error {
				require.NotNil(t, upd.Reserved)
				assert.Equal(t, 3, *upd.Reserved)
				return nil
			})

		body := bytes.NewBufferString(`{"reserved":3}`)
		req := httptest.NewRequest(http.MethodPatch, "/products/prod-1", body)
		req = mux.SetURLVars(withActor(req, testFarmer), map[string]string{"id": "prod-1"})

		rr := httptest.NewRecorder()
		server.handleUpdateProduct(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("closed window maps to conflict", func(t *testing.T) {
		mockMarket.EXPECT().
			ValidateProductUpdate(gomock.Any(), "prod-1", gomock.Any(), testFarmer).
			Return(storage.ErrReservationWindowClosed)

		body := bytes.NewBufferString(`{"reserved":3}`)
		req := httptest.NewRequest(http.MethodPatch, "/products/prod-1", body)
		req = mux.SetURLVars(withActor(req, testFarmer), map[string]string{"id": "prod-1"})

		rr := httptest.NewRecorder()
		server.handleUpdateProduct(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("foreign product maps to forbidden", func(t *testing.T) {
		mockMarket.EXPECT().
			ValidateProductUpdate(gomock.Any(), "prod-9", gomock.Any(), testFarmer).
			Return(storage.ErrProductNotOwned)

		body := bytes.NewBufferString(`{"available":10}`)
		req := httptest.NewRequest(http.MethodPatch, "/products/prod-9", body)
		req = mux.SetURLVars(withActor(req, testFarmer), map[string]string{"id": "prod-9"})

		rr := httptest.NewRecorder()
		server.handleUpdateProduct(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestHandleGetStockProduct_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, mockMarket, _, _ := newTestServer(ctrl)

	// First request misses and fills the cache.
	mockMarket.EXPECT().
		GetStockProduct(gomock.Any(), "prod-1", testCustomer).
		Return(&storage.Product{ID: "prod-1", Name: "Carrots", Public: true, Available: 10}, nil)

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/stock/prod-1", nil)
		req = mux.SetURLVars(withActor(req, testCustomer), map[string]string{"id": "prod-1"})

		rr := httptest.NewRecorder()
		server.handleGetStockProduct(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"name":"Carrots"`)
	}
}

func TestHandleCloseCycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _, _, mockCycle := newTestServer(ctrl)

	t.Run("employee triggers a controlled close", func(t *testing.T) {
		mockCycle.EXPECT().Trigger(gomock.Any(), true).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/process/close?controlled=true", nil)
		req = withActor(req, testEmployee)

		rr := httptest.NewRecorder()
		server.handleCloseCycle(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process/close", nil)
		req = withActor(req, testCustomer)

		rr := httptest.NewRecorder()
		server.handleCloseCycle(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestBasicAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server, _, mockUserRepo, _ := newTestServer(ctrl)

	protected := server.basicAuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := actorFrom(r.Context())
		require.NotNil(t, actor)
		assert.Equal(t, "alice", actor.Username)
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("missing credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/stock", nil)
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, `Basic realm="Restricted"`, rr.Header().Get("WWW-Authenticate"))
	})

	t.Run("wrong password", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "alice", "wrong").
			Return(nil, repository.ErrObjectNotFound)

		req := httptest.NewRequest(http.MethodGet, "/stock", nil)
		req.SetBasicAuth("alice", "wrong")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("valid credentials populate the actor", func(t *testing.T) {
		mockUserRepo.EXPECT().
			ValidateUser(gomock.Any(), "alice", "secret").
			Return(testCustomer, nil)

		req := httptest.NewRequest(http.MethodGet, "/stock", nil)
		req.SetBasicAuth("alice", "secret")
		rr := httptest.NewRecorder()
		protected.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
