package commerce

import "fmt"

// ValidateEntitlementShape checks the three fields every entitlement must
// materialize with: an owner, a scannable code and a presentable code. The
// first empty field (checked owner, then qr, then voucher, on the raw
// string) is named in the error.
func ValidateEntitlementShape(ownerID, qrCode, voucherCode string) error {
	if ownerID == "" {
		return fmt.Errorf("%w: owner id is empty", ErrInvalidArgument)
	}
	if qrCode == "" {
		return fmt.Errorf("%w: qr code is empty", ErrInvalidArgument)
	}
	if voucherCode == "" {
		return fmt.Errorf("%w: voucher code is empty", ErrInvalidArgument)
	}
	return nil
}

// ItemsMatchOrderType reports whether every item type equals the order's
// type. Vacuously true for an empty item list.
func ItemsMatchOrderType(orderType OrderType, itemTypes []OrderType) bool {
	for _, t := range itemTypes {
		if t != orderType {
			return false
		}
	}
	return true
}
