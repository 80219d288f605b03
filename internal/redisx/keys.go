package redisx

import "time"

const (
	// Idempotency for order creation: idem:order:create:{external_id} -> order_id
	KeyIdemOrderCreate = "idem:order:create:%s"

	// Idempotency for redemption attempts: idem:entitlement:redeem:{attempt_id}
	KeyIdemRedeem = "idem:entitlement:redeem:%s"

	// Order status cache: order_status:{order_id} -> {"payment_status": "..."}
	KeyOrderStatus = "order_status:%s"

	// Entitlement status cache: entitlement_status:{entitlement_id}
	KeyEntitlementStatus = "entitlement_status:%s"

	// Dedup for event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLIdempotency = 24 * time.Hour
	TTLStatusCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
