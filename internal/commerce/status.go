package commerce

import "fmt"

// Transition tables. A pair absent from its table is rejected; terminal
// states map to an empty set. Adding a new status means declaring its row
// here before anything can move through it.

var paymentNext = map[PaymentStatus]map[PaymentStatus]bool{
	PaymentPending:  {PaymentPaid: true, PaymentFailed: true},
	PaymentPaid:     {PaymentRefunded: true},
	PaymentFailed:   {},
	PaymentRefunded: {},
}

var entitlementNext = map[EntitlementStatus]map[EntitlementStatus]bool{
	EntitlementActive: {
		EntitlementUsed:        true,
		EntitlementExpired:     true,
		EntitlementRefunded:    true,
		EntitlementTransferred: true,
	},
	EntitlementUsed:        {},
	EntitlementExpired:     {},
	EntitlementRefunded:    {},
	EntitlementTransferred: {},
}

var bookingNext = map[BookingStatus]map[BookingStatus]bool{
	BookingPending:   {BookingConfirmed: true, BookingCancelled: true},
	BookingConfirmed: {BookingCompleted: true, BookingCancelled: true},
	BookingCancelled: {},
	BookingCompleted: {},
}

func CanTransitionPayment(from, to PaymentStatus) bool {
	return paymentNext[from][to]
}

func CanTransitionEntitlement(from, to EntitlementStatus) bool {
	return entitlementNext[from][to]
}

func CanTransitionBooking(from, to BookingStatus) bool {
	return bookingNext[from][to]
}

// TransitionPayment validates from -> to against the payment table and
// returns the target status. The caller persists the result only after
// acceptance, inside its own transaction boundary.
func TransitionPayment(from, to PaymentStatus) (PaymentStatus, error) {
	if !CanTransitionPayment(from, to) {
		return from, fmt.Errorf("%w: payment %s -> %s", ErrStateConflict, from, to)
	}
	return to, nil
}

func TransitionEntitlement(from, to EntitlementStatus) (EntitlementStatus, error) {
	if !CanTransitionEntitlement(from, to) {
		return from, fmt.Errorf("%w: entitlement %s -> %s", ErrStateConflict, from, to)
	}
	return to, nil
}

func TransitionBooking(from, to BookingStatus) (BookingStatus, error) {
	if !CanTransitionBooking(from, to) {
		return from, fmt.Errorf("%w: booking %s -> %s", ErrStateConflict, from, to)
	}
	return to, nil
}
