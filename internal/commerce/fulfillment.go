package commerce

import "fmt"

// ResolveFulfillmentFlow maps an order type to the downstream flow that
// handles it after payment. The mapping is total over the closed order-type
// set; anything else is a programming or data error, never silently skipped.
func ResolveFulfillmentFlow(orderType OrderType) (FulfillmentFlow, error) {
	switch orderType {
	case OrderTypeProduct:
		return FlowService, nil
	case OrderTypeVirtualVoucher:
		return FlowVoucher, nil
	case OrderTypeServicePackage:
		return FlowServicePackage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedOrderType, orderType)
	}
}
