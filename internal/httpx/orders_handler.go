package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/vitacare/commerce/internal/commerce"
	kafkax "github.com/vitacare/commerce/internal/kafka"
	"github.com/vitacare/commerce/internal/redisx"
)

type OrdersHandler struct {
	Repo          *commerce.Repo
	Producer      *kafkax.Producer // publishes order.paid
	Redis         *redis.Client
	Service       string
	SettlementLoc *time.Location
}

type CreateOrderReq struct {
	ExternalID string               `json:"external_id"`
	UserID     string               `json:"user_id"`
	OrderType  commerce.OrderType   `json:"order_type"`
	Items      []commerce.ItemInput `json:"items"`
}

type CreateOrderResp struct {
	OrderID    string `json:"order_id"`
	TotalCents int    `json:"total_cents"`
	Idempotent bool   `json:"idempotent"`
}

type RunSettlementReq struct {
	DealerID    string `json:"dealer_id"`
	AmountCents int    `json:"amount_cents"`
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Post("/orders/{id}/pay", h.payOrder)
	r.Post("/orders/{id}/refund", h.refundOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Post("/settlements/run", h.runSettlement)
}

func (h *OrdersHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.ExternalID == "" || req.UserID == "" || len(req.Items) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing fields"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	orderID, total, existed, err := h.Repo.CreateOrderTx(ctx, req.ExternalID, req.UserID, req.OrderType, req.Items)
	if err != nil {
		writeErr(w, err)
		return
	}

	idemKey := fmt.Sprintf(redisx.KeyIdemOrderCreate, req.ExternalID)
	_ = h.Redis.Set(ctx, idemKey, orderID, redisx.TTLIdempotency).Err()
	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, statusKey, `{"payment_status":"PENDING"}`, redisx.TTLStatusCache).Err()

	writeJSON(w, http.StatusCreated, CreateOrderResp{OrderID: orderID, TotalCents: total, Idempotent: existed})
}

// payOrder moves PENDING -> PAID and hands the order to the fulfillment
// worker through the paid topic.
func (h *OrdersHandler) payOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	o, err := h.Repo.GetOrder(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if err := h.Repo.UpdatePaymentStatus(ctx, orderID, o.PaymentStatus, commerce.PaymentPaid); err != nil {
		writeErr(w, err)
		return
	}

	items, err := h.Repo.ListItems(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	paid := make([]commerce.PaidItem, 0, len(items))
	for _, it := range items {
		paid = append(paid, commerce.PaidItem{ItemType: it.ItemType, Qty: it.Qty, PriceCents: it.PriceCents})
	}

	ev := commerce.Envelope{
		EventID:       uuid.NewString(),
		EventType:     commerce.EventOrderPaid,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: orderID,
		Payload: kafkax.MustMarshal(commerce.OrderPaidPayload{
			OrderID: orderID, OrderType: o.OrderType, UserID: o.UserID, Items: paid, TotalCents: o.TotalCents,
		}),
	}
	h.Producer.Publish(commerce.PartitionKey(orderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(commerce.EventOrderPaid)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)

	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, statusKey, `{"payment_status":"PAID"}`, redisx.TTLStatusCache).Err()

	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID, "payment_status": string(commerce.PaymentPaid)})
}

// refundOrder asks the refund gate before touching the payment status: one
// successful redemption anywhere under the order blocks the refund.
func (h *OrdersHandler) refundOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	o, err := h.Repo.GetOrder(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	redeemed, err := h.Repo.CountSuccessRedemptions(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	if d := commerce.CanRefundUnredeemed(redeemed); !d.OK {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error_code": d.ErrorCode})
		return
	}
	if err := h.Repo.UpdatePaymentStatus(ctx, orderID, o.PaymentStatus, commerce.PaymentRefunded); err != nil {
		writeErr(w, err)
		return
	}

	statusKey := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	_ = h.Redis.Set(ctx, statusKey, `{"payment_status":"REFUNDED"}`, redisx.TTLStatusCache).Err()

	writeJSON(w, http.StatusOK, map[string]string{"order_id": orderID, "payment_status": string(commerce.PaymentRefunded)})
}

func (h *OrdersHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	ctx, cancel := contextWithTimeout(r, 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyOrderStatus, orderID)
	if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
		writeJSON(w, http.StatusOK, json.RawMessage(s))
		return
	}

	o, err := h.Repo.GetOrder(ctx, orderID)
	if err != nil {
		writeErr(w, err)
		return
	}
	body := map[string]any{"payment_status": o.PaymentStatus, "order_type": o.OrderType, "total_cents": o.TotalCents}
	b, _ := json.Marshal(body)
	_ = h.Redis.Set(ctx, key, b, redisx.TTLStatusCache).Err()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// runSettlement computes the cycle from now in the organization's settlement
// timezone and inserts at most one record per (dealer, cycle).
func (h *OrdersHandler) runSettlement(w http.ResponseWriter, r *http.Request) {
	var req RunSettlementReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	if req.DealerID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing dealer_id"})
		return
	}

	ctx, cancel := contextWithTimeout(r, 5*time.Second)
	defer cancel()

	cycle := commerce.MonthlyCycle(time.Now().In(h.SettlementLoc))
	inserted, err := h.Repo.InsertSettlement(ctx, req.DealerID, cycle, req.AmountCents)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"dealer_id": req.DealerID, "cycle": cycle, "inserted": inserted})
}
