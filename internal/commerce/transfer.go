package commerce

// CanTransferPackage decides whether a whole service-package instance may be
// handed to a new owner. Two dimensions must independently hold: the
// redemption log shows zero successful redemptions, and every entitlement in
// the package is untouched (remaining == total). An empty entitlement set is
// never transferable — there is nothing to transfer.
func CanTransferPackage(entitlements []Entitlement, successRedemptionCount int) bool {
	if len(entitlements) == 0 {
		return false
	}
	if successRedemptionCount != 0 {
		return false
	}
	for _, e := range entitlements {
		if e.RemainingCount != e.TotalCount {
			return false
		}
	}
	return true
}
