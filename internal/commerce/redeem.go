package commerce

// CanRedeem gates a consumption attempt on the booking requirement: when the
// service requires a booking, redemption is allowed only against a CONFIRMED
// booking; otherwise it is always allowed.
func CanRedeem(bookingRequired, hasConfirmedBooking bool) bool {
	if !bookingRequired {
		return true
	}
	return hasConfirmedBooking
}

// ApplyRedeem returns the remaining-use count after a consumption attempt.
// Only a successful attempt decrements, floored at zero — an already-zero
// count passed by the caller saturates instead of going negative.
func ApplyRedeem(remaining int, success bool) int {
	if !success {
		return remaining
	}
	if remaining <= 0 {
		return 0
	}
	return remaining - 1
}
