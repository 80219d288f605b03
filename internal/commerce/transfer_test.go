package commerce

import "testing"

func TestCanTransferPackage(t *testing.T) {
	untouched := func(remaining, total int) Entitlement {
		return Entitlement{Status: EntitlementActive, RemainingCount: remaining, TotalCount: total}
	}

	tests := []struct {
		name         string
		entitlements []Entitlement
		successCount int
		want         bool
	}{
		{"empty package", nil, 0, false},
		{"empty package with clean log", []Entitlement{}, 0, false},
		{"single untouched", []Entitlement{untouched(5, 5)}, 0, true},
		{"all untouched", []Entitlement{untouched(1, 1), untouched(10, 10)}, 0, true},
		{"redemption log dirty", []Entitlement{untouched(5, 5)}, 1, false},
		{"one entitlement partially used", []Entitlement{untouched(5, 5), untouched(4, 5)}, 0, false},
		{"both dimensions dirty", []Entitlement{untouched(4, 5)}, 2, false},
		{"fully drained entitlement", []Entitlement{untouched(0, 5)}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransferPackage(tt.entitlements, tt.successCount); got != tt.want {
				t.Errorf("CanTransferPackage(%d entitlements, %d redeemed) = %v, want %v",
					len(tt.entitlements), tt.successCount, got, tt.want)
			}
		})
	}
}
