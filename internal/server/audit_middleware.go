package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
)

func (s *Server) auditLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		entry := AuditLogEntry{
			Timestamp: time.Now(),
			Method:    r.Method,
			Path:      r.URL.Path,
		}
		if route := mux.CurrentRoute(r); route != nil {
			entry.Handler = route.GetName()
		}
		if username, _, ok := r.BasicAuth(); ok {
			entry.Username = username
		}

		vars := mux.Vars(r)
		if strings.HasPrefix(r.URL.Path, "/orders/") {
			entry.OrderID = vars["id"]
		}
		if strings.HasPrefix(r.URL.Path, "/products/") || strings.HasPrefix(r.URL.Path, "/stock/") {
			entry.ProductID = vars["id"]
		}

		if r.Body != nil {
			requestBody, _ := io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewBuffer(requestBody))
			entry.Request = string(requestBody)

			if entry.OrderID != "" && strings.HasSuffix(r.URL.Path, "/status") {
				var statusRequest struct {
					Status string `json:"status"`
				}
				if err := json.Unmarshal(requestBody, &statusRequest); err == nil {
					if order, err := s.market.GetOrder(r.Context(), entry.OrderID); err == nil {
						entry.OldStatus = string(order.Status)
						entry.NewStatus = statusRequest.Status
					}
				}
			}
		}

		wrw := newResponseWriterWrapper(w)

		next.ServeHTTP(wrw, r)

		entry.StatusCode = wrw.GetStatusCode()
		entry.Response = string(wrw.GetBody())

		s.AuditManager.LogEntry(r.Context(), entry)
	})
}
