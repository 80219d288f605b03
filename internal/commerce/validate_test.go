package commerce

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateEntitlementShape(t *testing.T) {
	tests := []struct {
		name                         string
		ownerID, qrCode, voucherCode string
		wantErr                      bool
		wantField                    string
	}{
		{"all present", "u1", "QR-1", "V-1", false, ""},
		{"missing owner", "", "QR-1", "V-1", true, "owner"},
		{"missing qr", "u1", "", "V-1", true, "qr"},
		{"missing voucher", "u1", "QR-1", "", true, "voucher"},
		{"all missing names owner first", "", "", "", true, "owner"},
		{"whitespace owner is not empty", " ", "QR-1", "V-1", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEntitlementShape(tt.ownerID, tt.qrCode, tt.voucherCode)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
			if !strings.Contains(err.Error(), tt.wantField) {
				t.Errorf("err %q should name the %s field", err, tt.wantField)
			}
		})
	}
}

func TestItemsMatchOrderType(t *testing.T) {
	tests := []struct {
		name      string
		orderType OrderType
		itemTypes []OrderType
		want      bool
	}{
		{"empty items", OrderTypeProduct, nil, true},
		{"all match", OrderTypeServicePackage, []OrderType{OrderTypeServicePackage, OrderTypeServicePackage}, true},
		{"one mismatch", OrderTypeProduct, []OrderType{OrderTypeProduct, OrderTypeVirtualVoucher}, false},
		{"all mismatch", OrderTypeVirtualVoucher, []OrderType{OrderTypeProduct}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemsMatchOrderType(tt.orderType, tt.itemTypes); got != tt.want {
				t.Errorf("ItemsMatchOrderType(%s, %v) = %v, want %v", tt.orderType, tt.itemTypes, got, tt.want)
			}
		})
	}
}
