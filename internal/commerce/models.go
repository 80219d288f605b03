package commerce

import "time"

type Order struct {
	ID            string
	ExternalID    string
	UserID        string
	OrderType     OrderType
	PaymentStatus PaymentStatus
	TotalCents    int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID            string
	OrderID       string
	ItemType      OrderType // must equal the parent order's OrderType
	UnitPriceType UnitPriceType
	PriceCents    int
	Qty           int
}

// Entitlement is a unit of purchased service usage. It always materializes
// with both a scannable code and a presentable code, and its activator, once
// set, never changes.
type Entitlement struct {
	ID              string
	OrderID         string
	PackageID       string
	OwnerID         string
	Status          EntitlementStatus
	QRCode          string
	VoucherCode     string
	RemainingCount  int
	TotalCount      int
	ActivatorID     string
	BookingRequired bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Booking struct {
	ID            string
	EntitlementID string
	SlotID        string
	Status        BookingStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CapacitySlot struct {
	ID                string
	ServiceType       string
	Capacity          int
	RemainingCapacity int // bounded by [0, Capacity]
	StartsAt          time.Time
}

type Redemption struct {
	ID            string
	EntitlementID string
	AttemptID     string
	Outcome       RedemptionOutcome
	CreatedAt     time.Time
}

type EntitlementTransfer struct {
	ID            string
	PackageID     string
	EntitlementID string
	FromOwnerID   string
	ToOwnerID     string
	CreatedAt     time.Time
}

type EnterpriseBinding struct {
	ID           string
	UserID       string
	EnterpriseID string
	Status       BindingStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SettlementRecord is unique per (DealerID, Cycle); the repo enforces that
// at the storage boundary, the cycle string comes from MonthlyCycle.
type SettlementRecord struct {
	ID          string
	DealerID    string
	Cycle       string
	AmountCents int
	CreatedAt   time.Time
}
