package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"github.com/shopsmart/order-service/internal/orders"
	"github.com/shopsmart/order-service/internal/redisx"
)

type PlaceOrderReq struct {
	Items []orders.LineItemInput `json:"items"`
}

type RejectedResp struct {
	OutOfStock []orders.OutOfStockItem `json:"out_of_stock"`
}

type OrdersHandler struct {
	Service *orders.Service
	Redis   *redis.Client // nil disables the read cache
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/api/order", h.placeOrder)
	r.Get("/api/order", h.listOrders)
	r.Get("/api/order/{orderNumber}", h.getOrder)
	r.Delete("/api/order/{orderNumber}", h.cancelOrder)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *OrdersHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	// Headroom for the retry budget on the inventory call.
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	dec, err := h.Service.PlaceOrder(ctx, req.Items)
	if err != nil {
		var verr *orders.ValidationError
		switch {
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": verr.Error()})
		case errors.Is(err, orders.ErrInventoryUnavailable):
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "inventory service unavailable, try again later"})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	if !dec.Accepted {
		writeJSON(w, http.StatusConflict, RejectedResp{OutOfStock: dec.OutOfStock})
		return
	}
	writeJSON(w, http.StatusCreated, dec.Order)
}

func (h *OrdersHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Service.GetAllOrders(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "orderNumber")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	// 1) cache
	key := fmt.Sprintf(redisx.KeyOrderByNumber, number)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	// 2) fallback store
	o, err := h.Service.GetOrder(ctx, number)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("order %s not found", number)})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	b, _ := json.Marshal(o)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, b, redisx.TTLOrderCache).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *OrdersHandler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	number := chi.URLParam(r, "orderNumber")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.Service.CancelOrder(ctx, number)
	if err != nil {
		if errors.Is(err, orders.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": fmt.Sprintf("order %s not found", number)})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if h.Redis != nil {
		_ = h.Redis.Del(ctx, fmt.Sprintf(redisx.KeyOrderByNumber, number)).Err()
	}
	writeJSON(w, http.StatusOK, o)
}
