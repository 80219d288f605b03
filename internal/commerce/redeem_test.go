package commerce

import "testing"

func TestCanRedeem(t *testing.T) {
	tests := []struct {
		name                string
		bookingRequired     bool
		hasConfirmedBooking bool
		want                bool
	}{
		{"no booking needed, none held", false, false, true},
		{"no booking needed, one held anyway", false, true, true},
		{"booking needed, none confirmed", true, false, false},
		{"booking needed, confirmed", true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanRedeem(tt.bookingRequired, tt.hasConfirmedBooking); got != tt.want {
				t.Errorf("CanRedeem(%v, %v) = %v, want %v", tt.bookingRequired, tt.hasConfirmedBooking, got, tt.want)
			}
		})
	}
}

func TestApplyRedeem(t *testing.T) {
	for remaining := 0; remaining <= 50; remaining++ {
		if got := ApplyRedeem(remaining, false); got != remaining {
			t.Errorf("ApplyRedeem(%d, false) = %d, want %d (failed attempt must not consume)", remaining, got, remaining)
		}
		want := remaining - 1
		if want < 0 {
			want = 0
		}
		if got := ApplyRedeem(remaining, true); got != want {
			t.Errorf("ApplyRedeem(%d, true) = %d, want %d", remaining, got, want)
		}
	}
}

func TestApplyRedeemFloorsAtZero(t *testing.T) {
	if got := ApplyRedeem(0, true); got != 0 {
		t.Errorf("ApplyRedeem(0, true) = %d, want 0 (saturate, don't go negative)", got)
	}
}
