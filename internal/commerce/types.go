package commerce

// OrderType is the closed set of purchasable order kinds. Every item under
// an order must carry the same type as the order itself.
type OrderType string

const (
	OrderTypeProduct        OrderType = "PRODUCT"
	OrderTypeVirtualVoucher OrderType = "VIRTUAL_VOUCHER"
	OrderTypeServicePackage OrderType = "SERVICE_PACKAGE"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

type EntitlementStatus string

const (
	EntitlementActive      EntitlementStatus = "ACTIVE"
	EntitlementUsed        EntitlementStatus = "USED"
	EntitlementExpired     EntitlementStatus = "EXPIRED"
	EntitlementRefunded    EntitlementStatus = "REFUNDED"
	EntitlementTransferred EntitlementStatus = "TRANSFERRED"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

type BindingStatus string

const (
	BindingPending  BindingStatus = "PENDING"
	BindingApproved BindingStatus = "APPROVED"
	BindingRejected BindingStatus = "REJECTED"
)

// UnitPriceType tags where an item's unit price came from.
type UnitPriceType string

const (
	PriceActivity UnitPriceType = "ACTIVITY"
	PriceMember   UnitPriceType = "MEMBER"
	PriceEmployee UnitPriceType = "EMPLOYEE"
	PriceOriginal UnitPriceType = "ORIGINAL"
)

// FulfillmentFlow is the downstream processing path triggered once an
// order's payment succeeds.
type FulfillmentFlow string

const (
	FlowService        FulfillmentFlow = "SERVICE"
	FlowVoucher        FulfillmentFlow = "VOUCHER"
	FlowServicePackage FulfillmentFlow = "SERVICE_PACKAGE"
)

type RedemptionOutcome string

const (
	RedemptionSuccess RedemptionOutcome = "SUCCESS"
	RedemptionFailed  RedemptionOutcome = "FAILED"
)
