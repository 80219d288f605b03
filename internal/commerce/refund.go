package commerce

// CodeRefundNotAllowed is the reason code attached to a rejected refund.
const CodeRefundNotAllowed = "REFUND_NOT_ALLOWED"

// RefundDecision is an explicit result value: "not allowed" is an expected
// outcome the caller branches on, not an error.
type RefundDecision struct {
	OK        bool
	ErrorCode string
}

// CanRefundUnredeemed allows a refund only when no successful redemption has
// been recorded against the order's entitlements. Eligibility depends only
// on the aggregate count, not on which entitlement produced it.
func CanRefundUnredeemed(successRedemptionCount int) RefundDecision {
	if successRedemptionCount == 0 {
		return RefundDecision{OK: true}
	}
	return RefundDecision{OK: false, ErrorCode: CodeRefundNotAllowed}
}
