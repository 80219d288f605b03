package commerce

import (
	"encoding/json"
	"time"
)

const (
	EventOrderPaid              = "OrderPaid"
	EventOrderFulfilled         = "OrderFulfilled"
	EventFulfillmentFailed      = "FulfillmentFailed"
	EventEntitlementTransferred = "EntitlementTransferred"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // one of the consts above
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g. "commerce-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // usually order_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Per-event payloads ----

type PaidItem struct {
	ItemType   OrderType `json:"item_type"`
	ServiceID  string    `json:"service_id,omitempty"`
	Qty        int       `json:"qty"`
	PriceCents int       `json:"price_cents"`
}

type OrderPaidPayload struct {
	OrderID    string     `json:"order_id"`
	OrderType  OrderType  `json:"order_type"`
	UserID     string     `json:"user_id"`
	Items      []PaidItem `json:"items"`
	TotalCents int        `json:"total_cents"`
}

type OrderFulfilledPayload struct {
	OrderID        string          `json:"order_id"`
	Flow           FulfillmentFlow `json:"flow"`
	EntitlementIDs []string        `json:"entitlement_ids,omitempty"`
}

type FulfillmentFailedPayload struct {
	OrderID string `json:"order_id"`
	Reason  string `json:"reason"` // e.g. UNSUPPORTED_ORDER_TYPE
}

type EntitlementTransferredPayload struct {
	PackageID   string   `json:"package_id"`
	FromOwnerID string   `json:"from_owner_id"`
	ToOwnerID   string   `json:"to_owner_id"`
	NewIDs      []string `json:"new_entitlement_ids"`
}
