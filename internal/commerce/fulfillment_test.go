package commerce

import (
	"errors"
	"testing"
)

func TestResolveFulfillmentFlow(t *testing.T) {
	tests := []struct {
		orderType OrderType
		want      FulfillmentFlow
	}{
		{OrderTypeProduct, FlowService},
		{OrderTypeVirtualVoucher, FlowVoucher},
		{OrderTypeServicePackage, FlowServicePackage},
	}
	for _, tt := range tests {
		t.Run(string(tt.orderType), func(t *testing.T) {
			got, err := ResolveFulfillmentFlow(tt.orderType)
			if err != nil {
				t.Fatalf("ResolveFulfillmentFlow(%s) err = %v", tt.orderType, err)
			}
			if got != tt.want {
				t.Errorf("ResolveFulfillmentFlow(%s) = %s, want %s", tt.orderType, got, tt.want)
			}
		})
	}
}

func TestResolveFulfillmentFlowUnknown(t *testing.T) {
	for _, bad := range []OrderType{"", "GIFT_CARD", "product"} {
		if _, err := ResolveFulfillmentFlow(bad); !errors.Is(err, ErrUnsupportedOrderType) {
			t.Errorf("ResolveFulfillmentFlow(%q) err = %v, want ErrUnsupportedOrderType", bad, err)
		}
	}
}
