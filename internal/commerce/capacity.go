package commerce

// CanReserve reports whether a slot with the given remaining capacity can
// accept one more reservation.
func CanReserve(remaining int) bool { return remaining > 0 }

// Reserve takes one unit of capacity. Precondition: remaining > 0 — callers
// must check CanReserve first; a violation is a caller bug, not a reported
// error.
func Reserve(remaining int) int { return remaining - 1 }

// Release returns one unit of capacity, clamped so the result never exceeds
// capacity and never goes below zero. Negative capacity is normalized to 0.
// Always safe to call, even against an already-full slot.
func Release(remaining, capacity int) int {
	if capacity < 0 {
		capacity = 0
	}
	next := remaining + 1
	if next > capacity {
		next = capacity
	}
	return next
}
