package commerce

import (
	"errors"
	"testing"
)

var allPayment = []PaymentStatus{PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded}
var allEntitlement = []EntitlementStatus{EntitlementActive, EntitlementUsed, EntitlementExpired, EntitlementRefunded, EntitlementTransferred}
var allBooking = []BookingStatus{BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted}

func TestCanTransitionPayment(t *testing.T) {
	allowed := map[[2]PaymentStatus]bool{
		{PaymentPending, PaymentPaid}:   true,
		{PaymentPending, PaymentFailed}: true,
		{PaymentPaid, PaymentRefunded}:  true,
	}
	for _, from := range allPayment {
		for _, to := range allPayment {
			want := allowed[[2]PaymentStatus{from, to}]
			if got := CanTransitionPayment(from, to); got != want {
				t.Errorf("CanTransitionPayment(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionEntitlement(t *testing.T) {
	for _, from := range allEntitlement {
		for _, to := range allEntitlement {
			want := from == EntitlementActive && to != EntitlementActive
			if got := CanTransitionEntitlement(from, to); got != want {
				t.Errorf("CanTransitionEntitlement(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestCanTransitionBooking(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{BookingPending, BookingConfirmed}:   true,
		{BookingPending, BookingCancelled}:   true,
		{BookingConfirmed, BookingCompleted}: true,
		{BookingConfirmed, BookingCancelled}: true,
	}
	for _, from := range allBooking {
		for _, to := range allBooking {
			want := allowed[[2]BookingStatus{from, to}]
			if got := CanTransitionBooking(from, to); got != want {
				t.Errorf("CanTransitionBooking(%s, %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []PaymentStatus{PaymentFailed, PaymentRefunded} {
		for _, to := range allPayment {
			if CanTransitionPayment(from, to) {
				t.Errorf("payment %s should be terminal, allows -> %s", from, to)
			}
		}
	}
	for _, from := range []EntitlementStatus{EntitlementUsed, EntitlementExpired, EntitlementRefunded, EntitlementTransferred} {
		for _, to := range allEntitlement {
			if CanTransitionEntitlement(from, to) {
				t.Errorf("entitlement %s should be terminal, allows -> %s", from, to)
			}
		}
	}
	for _, from := range []BookingStatus{BookingCancelled, BookingCompleted} {
		for _, to := range allBooking {
			if CanTransitionBooking(from, to) {
				t.Errorf("booking %s should be terminal, allows -> %s", from, to)
			}
		}
	}
}

func TestTransitionPayment(t *testing.T) {
	got, err := TransitionPayment(PaymentPending, PaymentPaid)
	if err != nil {
		t.Fatalf("TransitionPayment(PENDING, PAID) err = %v", err)
	}
	if got != PaymentPaid {
		t.Errorf("TransitionPayment(PENDING, PAID) = %s, want PAID", got)
	}

	got, err = TransitionPayment(PaymentRefunded, PaymentPaid)
	if !errors.Is(err, ErrStateConflict) {
		t.Fatalf("TransitionPayment(REFUNDED, PAID) err = %v, want ErrStateConflict", err)
	}
	if got != PaymentRefunded {
		t.Errorf("rejected transition should keep current status, got %s", got)
	}
}

func TestTransitionEntitlement(t *testing.T) {
	if _, err := TransitionEntitlement(EntitlementActive, EntitlementTransferred); err != nil {
		t.Errorf("ACTIVE -> TRANSFERRED should be allowed, got %v", err)
	}
	if _, err := TransitionEntitlement(EntitlementUsed, EntitlementActive); !errors.Is(err, ErrStateConflict) {
		t.Errorf("USED -> ACTIVE err = %v, want ErrStateConflict", err)
	}
}

func TestTransitionBooking(t *testing.T) {
	if _, err := TransitionBooking(BookingConfirmed, BookingCompleted); err != nil {
		t.Errorf("CONFIRMED -> COMPLETED should be allowed, got %v", err)
	}
	if _, err := TransitionBooking(BookingCompleted, BookingCancelled); !errors.Is(err, ErrStateConflict) {
		t.Errorf("COMPLETED -> CANCELLED err = %v, want ErrStateConflict", err)
	}
	if _, err := TransitionBooking(BookingPending, BookingCompleted); !errors.Is(err, ErrStateConflict) {
		t.Errorf("PENDING -> COMPLETED must pass through CONFIRMED, err = %v, want ErrStateConflict", err)
	}
}
